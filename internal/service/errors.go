package service

import "errors"

// Sentinel errors translated by handlers into HTTP statuses.
// ErrInvalidCredentials is returned uniformly whether the account is
// missing or the password is wrong, so the API never leaks which.
var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrContactTaken        = errors.New("contact number already registered")
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidSecretKey    = errors.New("invalid secret key")
	ErrPatientNotFound     = errors.New("patient not found")
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrUnknownRole         = errors.New("unknown principal role")
	ErrInvalidSeverity     = errors.New("severity must be mild, moderate or severe")
	ErrInvalidStatus       = errors.New("status must be pending, completed or cancelled")
	ErrTerminalStatus      = errors.New("appointment is already completed or cancelled")
	ErrNotAppointmentOwner = errors.New("you can only cancel your own appointments")
	ErrCodeExhausted       = errors.New("could not allocate a unique appointment code")
)
