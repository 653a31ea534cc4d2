package closeddayRepo

import "salonbook/models"

// ClosedDayRepository is the persistence contract for day closures.
type ClosedDayRepository interface {
	Insert(day *models.ClosedDay) error
	// GetByDate returns the closure for the given date, or (nil, nil) when the
	// date is open.
	GetByDate(date string) (*models.ClosedDay, error)
	ListAll() ([]models.ClosedDay, error)
	// DeleteByDate removes the closure for the given date. The bool reports
	// whether a record was actually removed.
	DeleteByDate(date string) (bool, error)
}
