package amplify

import (
	"errors"
	"fmt"
)

// Parameter validation errors.
var (
	// ErrInvalidCycles indicates a cycle count below one.
	ErrInvalidCycles = errors.New("amplify: cycles must be a positive integer")

	// ErrInvalidEfficiency indicates an efficiency outside (0, 1].
	ErrInvalidEfficiency = errors.New("amplify: efficiency must be in (0, 1]")

	// ErrInvalidThreshold indicates a threshold that is not strictly positive.
	ErrInvalidThreshold = errors.New("amplify: threshold must be positive")
)

// ParamError wraps a validation error with the offending parameter.
type ParamError struct {
	Param   string
	Value   float64
	Wrapped error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s=%g: %v", e.Param, e.Value, e.Wrapped)
}

func (e *ParamError) Unwrap() error {
	return e.Wrapped
}
