package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an update targets an id that does not exist.
	ErrNotFound = errors.New("entity not found")
	// ErrValidation marks input rejected at the boundary.
	ErrValidation = errors.New("validation failed")
)

// Invalid wraps ErrValidation with a human readable reason.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
