package scheduler

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned for malformed start dates and negative week counts
var ErrInvalidInput = errors.New("invalid input")

// InputError wraps a specific input failure with the offending field
type InputError struct {
	Field string
	Value string
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: invalid %s %q: %v", ErrInvalidInput, e.Field, e.Value, e.Err)
}

// Unwrap exposes both the sentinel and the underlying cause
func (e *InputError) Unwrap() []error {
	return []error{ErrInvalidInput, e.Err}
}
