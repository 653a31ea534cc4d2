package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"salonbook/models"
	"salonbook/services/booking"

	"github.com/gin-gonic/gin"
)

// stubBookingService lets each test script the coordinator's answers.
type stubBookingService struct {
	createFn      func(models.AppointmentInput) (*models.Appointment, error)
	adminCreateFn func(models.AppointmentInput) (*models.Appointment, error)
	listFn        func(string) ([]models.Appointment, error)
	listAdminFn   func(string, string, string) ([]models.Appointment, error)
	slotsFn       func(string) (*models.AvailableSlotsResult, error)
	updateFn      func(string, string) (*models.Appointment, error)
}

func (s *stubBookingService) CreateAppointment(in models.AppointmentInput) (*models.Appointment, error) {
	return s.createFn(in)
}

func (s *stubBookingService) CreateAdminAppointment(in models.AppointmentInput) (*models.Appointment, error) {
	return s.adminCreateFn(in)
}

func (s *stubBookingService) ListAppointments(date string) ([]models.Appointment, error) {
	return s.listFn(date)
}

func (s *stubBookingService) ListAppointmentsAdmin(start, end, status string) ([]models.Appointment, error) {
	return s.listAdminFn(start, end, status)
}

func (s *stubBookingService) GetAvailableSlots(date string) (*models.AvailableSlotsResult, error) {
	return s.slotsFn(date)
}

func (s *stubBookingService) UpdateAppointmentStatus(id, status string) (*models.Appointment, error) {
	return s.updateFn(id, status)
}

func (s *stubBookingService) AddClosedDay(date, reason string) (*models.ClosedDay, error) {
	return nil, nil
}

func (s *stubBookingService) RemoveClosedDay(date string) error { return nil }

func (s *stubBookingService) ListClosedDays() ([]models.ClosedDay, error) { return nil, nil }

func performRequest(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func newRouter(svc booking.BookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewBookingHandler(svc)
	r.POST("/api/appointments", h.CreateAppointmentHandler)
	r.GET("/api/appointments/available-slots", h.AvailableSlotsHandler)
	r.PUT("/api/appointments/:id/status", h.UpdateStatusHandler)
	return r
}

func TestCreateAppointmentHandler_Created(t *testing.T) {
	svc := &stubBookingService{
		createFn: func(in models.AppointmentInput) (*models.Appointment, error) {
			return &models.Appointment{ID: "a1", Name: in.Name, Status: models.StatusPending}, nil
		},
	}
	w := performRequest(newRouter(svc), http.MethodPost, "/api/appointments", models.AppointmentInput{
		Name: "Alice", Phone: "555-0100", Service: "haircut", Date: "2025-03-10", Time: "10:00",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Success     bool               `json:"success"`
		Appointment models.Appointment `json:"appointment"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if !resp.Success || resp.Appointment.ID != "a1" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestCreateAppointmentHandler_RuleViolations(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation", booking.NewValidationError("missing name"), http.StatusBadRequest, booking.CodeValidation},
		{"day closed", booking.NewDayClosedError("2025-03-10"), http.StatusBadRequest, booking.CodeDayClosed},
		{"slot blocked", booking.NewSlotBlockedError("2025-03-10", "11:00"), http.StatusBadRequest, booking.CodeSlotBlocked},
		{"direct conflict", booking.NewDirectConflictError("2025-03-10", "10:00"), http.StatusBadRequest, booking.CodeDirectConflict},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &stubBookingService{
				createFn: func(models.AppointmentInput) (*models.Appointment, error) { return nil, tc.err },
			}
			w := performRequest(newRouter(svc), http.MethodPost, "/api/appointments", models.AppointmentInput{Name: "x"})

			if w.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d", tc.wantStatus, w.Code)
			}
			var resp struct {
				Success bool   `json:"success"`
				Error   string `json:"error"`
			}
			json.Unmarshal(w.Body.Bytes(), &resp)
			if resp.Success || resp.Error != tc.wantCode {
				t.Errorf("unexpected response: %s", w.Body.String())
			}
		})
	}
}

func TestCreateAppointmentHandler_PersistenceFailureIsGeneric(t *testing.T) {
	svc := &stubBookingService{
		createFn: func(models.AppointmentInput) (*models.Appointment, error) {
			return nil, booking.NewPersistenceError(errors.New("socket reset by peer"))
		},
	}
	w := performRequest(newRouter(svc), http.MethodPost, "/api/appointments", models.AppointmentInput{Name: "x"})

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if bytes.Contains(w.Body.Bytes(), []byte("socket")) {
		t.Errorf("storage details must not leak to the caller: %s", w.Body.String())
	}
}

func TestUpdateStatusHandler_NotFound(t *testing.T) {
	svc := &stubBookingService{
		updateFn: func(id, status string) (*models.Appointment, error) {
			return nil, booking.NewNotFoundError("appointment not found: " + id)
		},
	}
	w := performRequest(newRouter(svc), http.MethodPut, "/api/appointments/nope/status", map[string]string{"status": "confirmed"})

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestAvailableSlotsHandler(t *testing.T) {
	svc := &stubBookingService{
		slotsFn: func(date string) (*models.AvailableSlotsResult, error) {
			if date != "2025-03-10" {
				t.Errorf("expected date query to be forwarded, got %q", date)
			}
			return &models.AvailableSlotsResult{
				Available: []string{"09:00"},
				Blocked:   []string{"10:00"},
				AllSlots:  []string{"09:00", "10:00"},
			}, nil
		},
	}
	w := performRequest(newRouter(svc), http.MethodGet, "/api/appointments/available-slots?date=2025-03-10", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		Success        bool     `json:"success"`
		AvailableSlots []string `json:"availableSlots"`
		BlockedSlots   []string `json:"blockedSlots"`
		AllTimeSlots   []string `json:"allTimeSlots"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if !resp.Success || len(resp.AvailableSlots) != 1 || len(resp.BlockedSlots) != 1 {
		t.Errorf("unexpected response: %s", w.Body.String())
	}
}
