package repository

import "errors"

var (
	ErrEmailTaken         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidOTP         = errors.New("invalid otp")
	ErrOTPExpired         = errors.New("otp has expired")

	ErrEventNotFound      = errors.New("event not found or not available")
	ErrRegistrationClosed = errors.New("registration is closed for this event")
	ErrEventFull          = errors.New("event is full")
	ErrDuplicateBooking   = errors.New("duplicate registration for this event")
	ErrBookingNotFound    = errors.New("booking not found")

	ErrInvalidPaymentStatus = errors.New("invalid payment status")
)
