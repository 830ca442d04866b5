package services

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by every service. Handlers map them to HTTP
// status codes; nothing here is fatal to the process.
var (
	// ErrForbidden refuses an action outright: self-like, touching
	// another user's comment or notification.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound surfaces a missing post, comment, place or user.
	ErrNotFound = errors.New("not found")
)

// ValidationError reports bad input shape or range. It is returned to the
// caller for correction and never retried automatically.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func newValidationError(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
