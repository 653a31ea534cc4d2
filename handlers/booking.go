package handlers

import (
	"net/http"

	"salonbook/models"
	"salonbook/services/booking"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the client-facing booking endpoints.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CreateAppointmentHandler books a slot for a client request.
func (h *BookingHandler) CreateAppointmentHandler(c *gin.Context) {
	var input models.AppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid input", "details": err.Error()})
		return
	}

	appt, err := h.Service.CreateAppointment(input)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"appointment": appt,
	})
}

// ListAppointmentsHandler returns active appointments, optionally for one date.
func (h *BookingHandler) ListAppointmentsHandler(c *gin.Context) {
	appts, err := h.Service.ListAppointments(c.Query("date"))
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"appointments": appts,
	})
}

// AvailableSlotsHandler answers the availability query for a date.
func (h *BookingHandler) AvailableSlotsHandler(c *gin.Context) {
	result, err := h.Service.GetAvailableSlots(c.Query("date"))
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"availableSlots": result.Available,
		"blockedSlots":   result.Blocked,
		"allTimeSlots":   result.AllSlots,
		"closed":         result.Closed,
	})
}

// UpdateStatusHandler moves an appointment to a new status.
func (h *BookingHandler) UpdateStatusHandler(c *gin.Context) {
	var input struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid input", "details": err.Error()})
		return
	}

	appt, err := h.Service.UpdateAppointmentStatus(c.Param("id"), input.Status)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"appointment": appt,
	})
}
