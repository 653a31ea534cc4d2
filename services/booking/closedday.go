package booking

import (
	"sort"
	"time"

	"salonbook/models"
	"salonbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AddClosedDay marks a date as unbookable. Bookings already on the date are
// untouched; closing only blocks new ones.
func (s *DefaultBookingService) AddClosedDay(date, reason string) (*models.ClosedDay, error) {
	if date == "" {
		return nil, NewValidationError("date is required")
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, NewValidationError("date must be in YYYY-MM-DD format")
	}
	if reason == "" {
		reason = "Closed"
	}

	s.closedMu.Lock()
	defer s.closedMu.Unlock()

	existing, err := s.ClosedRepo.GetByDate(date)
	if err != nil {
		return nil, NewPersistenceError(err)
	}
	if existing != nil {
		return nil, NewAlreadyClosedError(date)
	}

	day := &models.ClosedDay{
		ID:        uuid.New().String(),
		Date:      date,
		Reason:    reason,
		CreatedAt: time.Now(),
	}
	if err := s.ClosedRepo.Insert(day); err != nil {
		return nil, NewPersistenceError(err)
	}

	s.invalidateSlotsCache(date)
	utils.GetLogger().Info("day closed", zap.String("date", date), zap.String("reason", reason))
	return day, nil
}

// RemoveClosedDay reopens a date for bookings.
func (s *DefaultBookingService) RemoveClosedDay(date string) error {
	s.closedMu.Lock()
	defer s.closedMu.Unlock()

	removed, err := s.ClosedRepo.DeleteByDate(date)
	if err != nil {
		return NewPersistenceError(err)
	}
	if !removed {
		return NewNotFoundError("closed day not found: " + date)
	}

	s.invalidateSlotsCache(date)
	utils.GetLogger().Info("day reopened", zap.String("date", date))
	return nil
}

// ListClosedDays returns all closures ordered by date.
func (s *DefaultBookingService) ListClosedDays() ([]models.ClosedDay, error) {
	days, err := s.ClosedRepo.ListAll()
	if err != nil {
		return nil, NewPersistenceError(err)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days, nil
}
