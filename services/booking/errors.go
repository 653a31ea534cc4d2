package booking

import (
	"errors"
	"fmt"
)

// Error codes for booking rule violations. Handlers map these to HTTP
// statuses; everything except persistenceError is user-correctable.
const (
	CodeValidation     = "validationError"
	CodeDayClosed      = "dayClosed"
	CodeSlotBlocked    = "slotBlocked"
	CodeDirectConflict = "directConflict"
	CodeNotFound       = "notFound"
	CodeAlreadyClosed  = "alreadyClosed"
	CodePersistence    = "persistenceError"
)

// BookingError is a typed failure returned by the coordinator.
type BookingError struct {
	Code    string
	Message string
	Err     error // underlying cause, if any
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BookingError) Unwrap() error {
	return e.Err
}

func NewValidationError(msg string) error {
	return &BookingError{Code: CodeValidation, Message: msg}
}

func NewDayClosedError(date string) error {
	return &BookingError{Code: CodeDayClosed, Message: fmt.Sprintf("day %s is closed for bookings", date)}
}

func NewSlotBlockedError(date, slot string) error {
	return &BookingError{Code: CodeSlotBlocked, Message: fmt.Sprintf("slot %s on %s is not available due to another appointment", slot, date)}
}

func NewDirectConflictError(date, slot string) error {
	return &BookingError{Code: CodeDirectConflict, Message: fmt.Sprintf("slot %s on %s is already booked", slot, date)}
}

func NewNotFoundError(msg string) error {
	return &BookingError{Code: CodeNotFound, Message: msg}
}

func NewAlreadyClosedError(date string) error {
	return &BookingError{Code: CodeAlreadyClosed, Message: fmt.Sprintf("day %s is already marked as closed", date)}
}

func NewPersistenceError(err error) error {
	return &BookingError{Code: CodePersistence, Message: "storage operation failed", Err: err}
}

// ErrorCode extracts the booking error code from err, or "" if err is not a
// BookingError.
func ErrorCode(err error) string {
	var be *BookingError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
