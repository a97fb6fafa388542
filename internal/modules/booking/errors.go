package booking

import "errors"

var (
	ErrValidation      = errors.New("validation error")
	ErrBookingNotFound = errors.New("booking not found")
	ErrNoActiveBooking = errors.New("no active booking")
	ErrGuestNotFound   = errors.New("guest not found")
	ErrRoomNotFound    = errors.New("room not found")
	ErrOverlap         = errors.New("guest already has a booking for these dates")
	ErrOverpayment     = errors.New("payment exceeds total cost")
)
