package assay

import (
	"errors"
	"fmt"
)

var (
	// ErrSimulationFailed is reported when the computation fails for a
	// reason other than invalid input.
	ErrSimulationFailed = errors.New("assay: simulation failed unexpectedly")

	// ErrUnknownTarget indicates a reference target name with no entry.
	ErrUnknownTarget = errors.New("assay: unknown reference target")
)

// ValidationError names the input field and the constraint it violates.
type ValidationError struct {
	Field   string
	Reason  string
	Wrapped error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Wrapped
}

func invalid(field, reason string, wrapped error) *ValidationError {
	return &ValidationError{Field: field, Reason: reason, Wrapped: wrapped}
}
