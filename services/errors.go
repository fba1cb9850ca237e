package services

import "errors"

// Errors the controllers translate into HTTP responses. Login failures
// other than pending/deactivated collapse into ErrInvalidCredentials so
// account existence does not leak.
var (
	ErrEmailExists        = errors.New("email already exists")
	ErrVenueNotFound      = errors.New("invalid venue code")
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrRoomNotFound       = errors.New("chat room not found")
	ErrPendingApproval    = errors.New("your account is pending approval")
	ErrDeactivated        = errors.New("your account has been deactivated")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ValidationError carries a human-readable message about malformed or
// missing input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationError(msg string) error {
	return &ValidationError{Message: msg}
}
