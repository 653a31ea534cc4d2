package appointmentRepo

import (
	"time"

	"salonbook/models"
)

// AppointmentRepository is the persistence contract for appointment records.
// The booking coordinator owns all writes and serializes them; implementations
// only need each individual operation to be atomic.
type AppointmentRepository interface {
	Insert(appt *models.Appointment) error
	ListByDate(date string) ([]models.Appointment, error)
	ListAll() ([]models.Appointment, error)
	// UpdateStatus sets the status and updatedAt of the appointment with the
	// given id and returns the updated record, or (nil, nil) if no such
	// appointment exists.
	UpdateStatus(id string, status models.AppointmentStatus, updatedAt time.Time) (*models.Appointment, error)
}
