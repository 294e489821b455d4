package align

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument indicates input that cannot be swept, such as a
	// non-positive step count or items whose two points differ in dimension.
	ErrInvalidArgument = errors.New("align: invalid argument")

	// ErrInvalidPoint indicates a NaN or Inf coordinate in an input space.
	ErrInvalidPoint = errors.New("align: invalid point (NaN or Inf detected)")
)

// StepError wraps an observer failure with the step it happened on.
type StepError struct {
	Step    int
	Steps   int
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d/%d: %v", e.Step, e.Steps, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
