package assignment

import (
	"errors"

	"hotel/internal/access"
	"hotel/internal/modules/booking"
)

var (
	ErrValidation      = errors.New("validation error")
	ErrGuestNotFound   = errors.New("guest not found")
	ErrServiceNotFound = errors.New("service not found")
	ErrConflict        = errors.New("concurrent assignment conflict")

	ErrNoActiveBooking = booking.ErrNoActiveBooking
	ErrAccessDenied    = access.ErrAccessDenied
)
