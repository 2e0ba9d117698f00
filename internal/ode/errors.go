package ode

import "errors"

// Domain errors for integration and error-analysis operations.
var (
	// ErrInvalidStep indicates a non-positive step size.
	ErrInvalidStep = errors.New("ode: step size must be positive")

	// ErrInvalidRange indicates t_max precedes t_min.
	ErrInvalidRange = errors.New("ode: invalid time range")

	// ErrZeroReference indicates the analytic reference is exactly zero at a
	// grid point, making percent error undefined there.
	ErrZeroReference = errors.New("ode: analytic reference is zero")

	// ErrInvalidState indicates a NaN or Inf where a finite value is required.
	ErrInvalidState = errors.New("ode: invalid value (NaN or Inf detected)")

	// ErrLengthMismatch indicates trajectory and time grid differ in length.
	ErrLengthMismatch = errors.New("ode: trajectory and grid lengths differ")
)

// RunError wraps an error with the grid position where it occurred.
type RunError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *RunError) Error() string {
	return e.Wrapped.Error()
}

func (e *RunError) Unwrap() error {
	return e.Wrapped
}
