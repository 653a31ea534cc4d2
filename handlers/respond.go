package handlers

import (
	"errors"
	"net/http"

	"salonbook/services/booking"
	"salonbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondBookingError maps a coordinator error onto an HTTP response. Rule
// violations are user-correctable and come back as 400s with their code;
// persistence failures are surfaced as a generic 500.
func respondBookingError(c *gin.Context, err error) {
	var be *booking.BookingError
	if !errors.As(err, &be) {
		utils.GetLogger().Error("unexpected booking failure", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	switch be.Code {
	case booking.CodeNotFound:
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": be.Code, "message": be.Message})
	case booking.CodePersistence:
		utils.GetLogger().Error("storage failure", zap.Error(be))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": be.Code, "message": be.Message})
	}
}
