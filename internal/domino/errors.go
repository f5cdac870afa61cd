package domino

import (
	"errors"
	"fmt"
)

// Sentinels carried by ValidationError. Match with errors.Is.
var (
	ErrInvalidPip   = errors.New("pip out of range")
	ErrInvalidTotal = errors.New("total is not an integer")
	ErrInvalidOrder = errors.New("unknown sort order")
)

// ValidationError reports input the transforms refuse to accept.
type ValidationError struct {
	Field   string // "first", "second", "total", "order"
	Value   string // offending input as given
	Message string // human-readable reason
	Cause   error  // one of the Err* sentinels
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Message)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *ValidationError) Unwrap() error {
	return e.Cause
}

func pipError(field string, v int) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   fmt.Sprint(v),
		Message: fmt.Sprintf("domino values must be between %d and %d", MinPip, MaxPip),
		Cause:   ErrInvalidPip,
	}
}

// IsValidation reports whether err is, or wraps, a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
