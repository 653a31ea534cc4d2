package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct for route
// registration.
type HandlerBundle struct {
	// Client booking endpoints
	CreateAppointment       gin.HandlerFunc
	ListAppointments        gin.HandlerFunc
	AvailableSlots          gin.HandlerFunc
	UpdateAppointmentStatus gin.HandlerFunc

	// Admin endpoints
	AdminCreateAppointment gin.HandlerFunc
	AdminListAppointments  gin.HandlerFunc
	ListClosedDays         gin.HandlerFunc
	AddClosedDay           gin.HandlerFunc
	RemoveClosedDay        gin.HandlerFunc
}
