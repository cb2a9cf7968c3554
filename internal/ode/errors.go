package ode

import (
	"errors"
	"fmt"
)

// Domain errors for integration.
var (
	// ErrInvalidState indicates the state picked up a NaN or Inf component.
	ErrInvalidState = errors.New("ode: invalid state (NaN or Inf detected)")

	// ErrStepTooSmall indicates the adaptive step size underflowed its floor
	// without meeting the error tolerance.
	ErrStepTooSmall = errors.New("ode: adaptive step below minimum")

	// ErrBudgetExceeded indicates the integrator ran out of its step budget
	// before reaching the end of the time span.
	ErrBudgetExceeded = errors.New("ode: step budget exceeded")
)

// StepError wraps an integration error with the step index and time at
// which it occurred.
type StepError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (t=%.6g): %v", e.Step, e.Time, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
