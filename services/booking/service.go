package booking

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"salonbook/models"
	"salonbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// CreateAppointment books a slot for a client-submitted request.
func (s *DefaultBookingService) CreateAppointment(input models.AppointmentInput) (*models.Appointment, error) {
	return s.create(input, createDefaults{
		status:   models.StatusPending,
		source:   models.SourceWebsite,
		language: models.LanguageArabic,
	})
}

// CreateAdminAppointment books a slot entered manually by the admin.
func (s *DefaultBookingService) CreateAdminAppointment(input models.AppointmentInput) (*models.Appointment, error) {
	return s.create(input, createDefaults{
		status:    models.StatusConfirmed,
		source:    models.SourceWhatsApp,
		language:  models.LanguageTurkish,
		createdBy: "admin",
	})
}

type createDefaults struct {
	status    models.AppointmentStatus
	source    models.AppointmentSource
	language  string
	createdBy string
}

func (s *DefaultBookingService) create(input models.AppointmentInput, defaults createDefaults) (*models.Appointment, error) {
	logger := utils.GetLogger()

	if input.Name == "" || input.Phone == "" || input.Service == "" || input.Date == "" || input.Time == "" {
		return nil, NewValidationError("name, phone, service, date and time are required")
	}
	if !models.ValidService(input.Service) {
		return nil, NewValidationError("unknown service: " + input.Service)
	}
	if _, err := time.Parse(dateLayout, input.Date); err != nil {
		return nil, NewValidationError("date must be in YYYY-MM-DD format")
	}
	if !OnGrid(input.Time) {
		return nil, NewValidationError("time is not a bookable slot")
	}

	source := defaults.source
	if input.Source != "" {
		source = models.AppointmentSource(input.Source)
		if !source.Valid() {
			return nil, NewValidationError("unknown source: " + input.Source)
		}
	}
	language := defaults.language
	if input.Language != "" {
		if !models.ValidLanguage(input.Language) {
			return nil, NewValidationError("unknown language: " + input.Language)
		}
		language = input.Language
	}

	// Validate against the current record set and commit as one unit. Without
	// the lock two concurrent requests for the same slot could both pass.
	s.apptMu.Lock()
	defer s.apptMu.Unlock()

	closed, err := s.ClosedRepo.GetByDate(input.Date)
	if err != nil {
		return nil, NewPersistenceError(err)
	}
	if closed != nil {
		return nil, NewDayClosedError(input.Date)
	}

	dayAppts, err := s.Repo.ListByDate(input.Date)
	if err != nil {
		return nil, NewPersistenceError(err)
	}
	active := activeOnly(dayAppts)

	blocked := BlockedSlots(active)
	for _, slot := range blocked {
		if slot == input.Time {
			return nil, NewSlotBlockedError(input.Date, input.Time)
		}
	}

	// The buffer window always covers the appointment's own slot, so this
	// check cannot trigger today. It stays as a guard in case the buffer
	// policy ever stops blocking the exact slot.
	for _, appt := range active {
		if appt.Time == input.Time {
			return nil, NewDirectConflictError(input.Date, input.Time)
		}
	}

	appt := &models.Appointment{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Phone:     input.Phone,
		Service:   input.Service,
		Date:      input.Date,
		Time:      input.Time,
		Status:    defaults.status,
		Language:  language,
		Source:    source,
		CreatedBy: defaults.createdBy,
		CreatedAt: time.Now(),
	}
	if err := s.Repo.Insert(appt); err != nil {
		return nil, NewPersistenceError(err)
	}

	s.invalidateSlotsCache(appt.Date)

	// Fire-and-forget: a failed handoff is logged, never surfaced, and the
	// booking stands either way.
	if s.Notifier != nil {
		go func(a models.Appointment) {
			if err := s.Notifier.DispatchAppointmentNotification(a); err != nil {
				logger.Warn("failed to dispatch appointment notification",
					zap.String("appointmentID", a.ID), zap.Error(err))
			}
		}(*appt)
	}

	logger.Info("appointment created",
		zap.String("appointmentID", appt.ID),
		zap.String("date", appt.Date),
		zap.String("time", appt.Time),
		zap.String("source", string(appt.Source)))
	return appt, nil
}

// ListAppointments returns active appointments, optionally filtered by date.
func (s *DefaultBookingService) ListAppointments(date string) ([]models.Appointment, error) {
	var appts []models.Appointment
	var err error
	if date != "" {
		appts, err = s.Repo.ListByDate(date)
	} else {
		appts, err = s.Repo.ListAll()
	}
	if err != nil {
		return nil, NewPersistenceError(err)
	}

	appts = activeOnly(appts)
	sortAppointments(appts)
	return appts, nil
}

// ListAppointmentsAdmin returns appointments matching the optional filters.
// Unlike the client listing it does not hide cancelled appointments.
func (s *DefaultBookingService) ListAppointmentsAdmin(startDate, endDate, status string) ([]models.Appointment, error) {
	if status != "" && !models.AppointmentStatus(status).Valid() {
		return nil, NewValidationError("unknown status: " + status)
	}

	appts, err := s.Repo.ListAll()
	if err != nil {
		return nil, NewPersistenceError(err)
	}

	filtered := appts[:0]
	for _, appt := range appts {
		// The range filter only applies when both ends are given. Dates in
		// YYYY-MM-DD form order correctly under string comparison.
		if startDate != "" && endDate != "" && (appt.Date < startDate || appt.Date > endDate) {
			continue
		}
		if status != "" && appt.Status != models.AppointmentStatus(status) {
			continue
		}
		filtered = append(filtered, appt)
	}
	sortAppointments(filtered)
	return filtered, nil
}

// UpdateAppointmentStatus moves an appointment to the given status.
func (s *DefaultBookingService) UpdateAppointmentStatus(id string, status string) (*models.Appointment, error) {
	target := models.AppointmentStatus(status)
	if !target.Valid() {
		return nil, NewValidationError("unknown status: " + status)
	}

	s.apptMu.Lock()
	defer s.apptMu.Unlock()

	updated, err := s.Repo.UpdateStatus(id, target, time.Now())
	if err != nil {
		return nil, NewPersistenceError(err)
	}
	if updated == nil {
		return nil, NewNotFoundError("appointment not found: " + id)
	}

	// A status change can free or re-occupy slots on the appointment's date.
	s.invalidateSlotsCache(updated.Date)
	return updated, nil
}

// GetAvailableSlots computes the available and blocked slots for a date.
func (s *DefaultBookingService) GetAvailableSlots(date string) (*models.AvailableSlotsResult, error) {
	if date == "" {
		return nil, NewValidationError("date is required")
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, NewValidationError("date must be in YYYY-MM-DD format")
	}

	if cached := s.cachedSlots(date); cached != nil {
		return cached, nil
	}

	// Compute and store under both record-set locks. Outside them, a mutation
	// could commit and invalidate the cache between this read and the store,
	// leaving a stale entry in place for the full TTL.
	s.apptMu.Lock()
	defer s.apptMu.Unlock()
	s.closedMu.Lock()
	defer s.closedMu.Unlock()

	closed, err := s.ClosedRepo.GetByDate(date)
	if err != nil {
		return nil, NewPersistenceError(err)
	}

	result := &models.AvailableSlotsResult{AllSlots: AllTimeSlots()}
	if closed != nil {
		result.Closed = true
		result.Available = []string{}
		result.Blocked = AllTimeSlots()
	} else {
		appts, err := s.Repo.ListByDate(date)
		if err != nil {
			return nil, NewPersistenceError(err)
		}
		result.Available, result.Blocked = ComputeSlots(activeOnly(appts))
	}

	s.storeSlotsCache(date, result)
	return result, nil
}

func activeOnly(appts []models.Appointment) []models.Appointment {
	active := make([]models.Appointment, 0, len(appts))
	for _, appt := range appts {
		if appt.Active() {
			active = append(active, appt)
		}
	}
	return active
}

func sortAppointments(appts []models.Appointment) {
	sort.SliceStable(appts, func(i, j int) bool {
		if appts[i].Date != appts[j].Date {
			return appts[i].Date < appts[j].Date
		}
		return appts[i].Time < appts[j].Time
	})
}

// Availability cache helpers. The cache is a pure read-through layer: every
// mutation touching a date drops that date's entry, so a cache outage only
// costs recomputation.

func (s *DefaultBookingService) cachedSlots(date string) *models.AvailableSlotsResult {
	if s.Cache == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	data, err := s.Cache.Get(ctx, utils.SlotsCachePrefix+date).Result()
	if err != nil {
		return nil
	}
	var result models.AvailableSlotsResult
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		return nil
	}
	return &result
}

func (s *DefaultBookingService) storeSlotsCache(date string, result *models.AvailableSlotsResult) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := s.Cache.Set(ctx, utils.SlotsCachePrefix+date, data, utils.SlotsCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache available slots", zap.String("date", date), zap.Error(err))
	}
}

func (s *DefaultBookingService) invalidateSlotsCache(date string) {
	if s.Cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := s.Cache.Del(ctx, utils.SlotsCachePrefix+date).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate slots cache", zap.String("date", date), zap.Error(err))
	}
}
