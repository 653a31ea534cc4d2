package handlers

import (
	"net/http"

	"salonbook/models"
	"salonbook/services/booking"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes the admin booking and closure endpoints.
type AdminHandler struct {
	Service booking.BookingService
}

func NewAdminHandler(svc booking.BookingService) *AdminHandler {
	return &AdminHandler{Service: svc}
}

// CreateAppointmentHandler records a booking taken over WhatsApp, phone or in
// person. These are confirmed on the spot.
func (h *AdminHandler) CreateAppointmentHandler(c *gin.Context) {
	var input models.AppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid input", "details": err.Error()})
		return
	}

	appt, err := h.Service.CreateAdminAppointment(input)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"appointment": appt,
	})
}

// ListAppointmentsHandler returns appointments matching the optional range and
// status filters, cancelled ones included.
func (h *AdminHandler) ListAppointmentsHandler(c *gin.Context) {
	appts, err := h.Service.ListAppointmentsAdmin(
		c.Query("startDate"),
		c.Query("endDate"),
		c.Query("status"),
	)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"appointments": appts,
	})
}

// ListClosedDaysHandler returns all closures, both as bare dates and as full
// records.
func (h *AdminHandler) ListClosedDaysHandler(c *gin.Context) {
	days, err := h.Service.ListClosedDays()
	if err != nil {
		respondBookingError(c, err)
		return
	}

	dates := make([]string, 0, len(days))
	for _, day := range days {
		dates = append(dates, day.Date)
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"closedDays": dates,
		"fullData":   days,
	})
}

// AddClosedDayHandler marks a date as closed.
func (h *AdminHandler) AddClosedDayHandler(c *gin.Context) {
	var input struct {
		Date   string `json:"date"`
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid input", "details": err.Error()})
		return
	}

	day, err := h.Service.AddClosedDay(input.Date, input.Reason)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"message":   "Day marked as closed successfully",
		"closedDay": day,
	})
}

// RemoveClosedDayHandler reopens a date.
func (h *AdminHandler) RemoveClosedDayHandler(c *gin.Context) {
	if err := h.Service.RemoveClosedDay(c.Param("date")); err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Closed day removed successfully",
	})
}
