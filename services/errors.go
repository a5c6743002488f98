package services

import "errors"

var (
	// ErrGuestNotFound means no guest with the requested id exists.
	ErrGuestNotFound = errors.New("guest not found")
	// ErrEmailExists means another guest already owns the normalized email.
	ErrEmailExists = errors.New("email already exists")
	// ErrDuplicateEmail is the store-level uniqueness violation on the Rsvps
	// table. It never reaches a controller: callers recover by retrying the
	// write as an update by email.
	ErrDuplicateEmail = errors.New("duplicate rsvp email")

	ErrUserExists         = errors.New("username already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError reports malformed or missing request input. It is always
// raised before any write happens.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

// IsValidationError reports whether err is a ValidationError.
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
