package pipeline

import (
	"context"
	"errors"
	"time"

	"github.com/san-kum/contrastviz/internal/storage"
)

type Pipeline interface {
	Name() string
	Dir() string
	// Check reports missing external dependencies without side effects.
	Check() error
	Run(ctx context.Context) (*storage.Manifest, error)
}

type Outcome struct {
	Name     string
	Dir      string
	Duration time.Duration
	Manifest *storage.Manifest
	Err      error
}

func (o Outcome) OK() bool { return o.Err == nil }

type Report struct {
	Outcomes []Outcome
}

func (r *Report) Failed() []Outcome {
	failed := make([]Outcome, 0)
	for _, o := range r.Outcomes {
		if o.Err != nil {
			failed = append(failed, o)
		}
	}
	return failed
}

// ExitCode is 0 when every pipeline succeeded, 3 when the only failures were
// missing dependencies, and 1 otherwise.
func (r *Report) ExitCode() int {
	failed := r.Failed()
	if len(failed) == 0 {
		return 0
	}
	for _, o := range failed {
		if !errors.Is(o.Err, ErrMissingDependency) {
			return 1
		}
	}
	return 3
}

// GapCurve returns the first recorded convergence curve, if any pipeline
// produced one.
func (r *Report) GapCurve() []float64 {
	for _, o := range r.Outcomes {
		if o.Manifest != nil && len(o.Manifest.GapCurve) > 0 {
			return o.Manifest.GapCurve
		}
	}
	return nil
}
