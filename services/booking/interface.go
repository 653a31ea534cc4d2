package booking

import (
	"sync"

	appointmentRepo "salonbook/database/repository/appointment"
	closeddayRepo "salonbook/database/repository/closedday"
	"salonbook/models"

	"github.com/go-redis/redis/v8"
)

// BookingService coordinates every mutation of the appointment and closure
// record sets and answers availability queries.
type BookingService interface {
	// CreateAppointment books a slot on behalf of a client. New bookings start
	// as pending, sourced from the website.
	CreateAppointment(input models.AppointmentInput) (*models.Appointment, error)
	// CreateAdminAppointment books a slot on behalf of the admin (walk-in,
	// phone or WhatsApp requests). Bookings are confirmed immediately.
	CreateAdminAppointment(input models.AppointmentInput) (*models.Appointment, error)
	// ListAppointments returns active appointments, optionally filtered to one
	// date, ordered by date then time.
	ListAppointments(date string) ([]models.Appointment, error)
	// ListAppointmentsAdmin returns appointments matching the optional range
	// and status filters. Cancelled appointments are included unless a status
	// filter excludes them.
	ListAppointmentsAdmin(startDate, endDate, status string) ([]models.Appointment, error)
	// GetAvailableSlots computes the bookable and blocked slots for a date.
	GetAvailableSlots(date string) (*models.AvailableSlotsResult, error)
	// UpdateAppointmentStatus moves an appointment to any of the known
	// statuses. There is no transition graph; confirmed may move back to
	// pending.
	UpdateAppointmentStatus(id string, status string) (*models.Appointment, error)

	AddClosedDay(date, reason string) (*models.ClosedDay, error)
	RemoveClosedDay(date string) error
	ListClosedDays() ([]models.ClosedDay, error)
}

// NotificationDispatcher hands a committed appointment off for delivery. The
// coordinator never waits on delivery and never fails a booking over it.
type NotificationDispatcher interface {
	DispatchAppointmentNotification(appt models.Appointment) error
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo       appointmentRepo.AppointmentRepository
	ClosedRepo closeddayRepo.ClosedDayRepository
	Notifier   NotificationDispatcher
	Cache      *redis.Client // optional availability cache

	// Each record set gets its own lock, held for the whole validate-then-write
	// sequence. Concurrent bookings for the same slot must not both pass
	// validation.
	apptMu   sync.Mutex
	closedMu sync.Mutex
}
