package align

import (
	"context"
	"fmt"

	"github.com/san-kum/contrastviz/internal/space"
)

type Driver struct {
	easing    Easing
	lift      space.Point
	metrics   []Metric
	observers []Observer
}

type Option func(*Driver)

// WithEasing shapes the interpolation weight. Endpoints are pinned, so the
// first and last snapshots are unaffected by the curve.
func WithEasing(e Easing) Option {
	return func(d *Driver) {
		if e != nil {
			d.easing = e
		}
	}
}

// WithLift offsets the shared target of every item. Both spaces still meet
// at the same point.
func WithLift(p space.Point) Option {
	return func(d *Driver) { d.lift = p.Clone() }
}

func New(opts ...Option) *Driver {
	d := &Driver{
		easing:    Linear,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Driver) AddMetric(m Metric)     { d.metrics = append(d.metrics, m) }
func (d *Driver) AddObserver(o Observer) { d.observers = append(d.observers, o) }

// Run sweeps the two spaces from step 0 to steps inclusive. Each snapshot is
// passed to the metrics, then the registered observers, then fn (which may be
// nil) before the next step is computed. The inputs are never modified.
func (d *Driver) Run(ctx context.Context, image, text space.Space, steps int, fn func(Snapshot) error) (*Result, error) {
	if err := d.validate(image, text, steps); err != nil {
		return nil, err
	}

	shared := image.Shared(text)
	targets := make(map[string]space.Point, len(shared))
	for _, item := range shared {
		target := space.Midpoint(image[item], text[item])
		if d.lift != nil {
			target = target.Add(d.lift)
		}
		targets[item] = target
	}

	for _, m := range d.metrics {
		m.Reset()
	}

	result := &Result{
		Shared:  shared,
		Metrics: make(map[string]float64),
	}

	for s := 0; s <= steps; s++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		t := d.weight(s, steps)
		snap := Snapshot{
			Step:  s,
			Steps: steps,
			T:     t,
			Image: advance(image, targets, t),
			Text:  advance(text, targets, t),
		}

		for _, m := range d.metrics {
			m.Observe(snap)
		}
		for _, obs := range d.observers {
			if err := obs.OnSnapshot(snap); err != nil {
				return result, &StepError{Step: s, Steps: steps, Wrapped: err}
			}
		}
		if fn != nil {
			if err := fn(snap); err != nil {
				return result, &StepError{Step: s, Steps: steps, Wrapped: err}
			}
		}
		result.Snapshots++
	}

	for _, m := range d.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

// Snapshots runs the sweep and collects every snapshot.
func (d *Driver) Snapshots(ctx context.Context, image, text space.Space, steps int) ([]Snapshot, error) {
	if steps <= 0 {
		return nil, fmt.Errorf("%w: steps must be positive, got %d", ErrInvalidArgument, steps)
	}
	out := make([]Snapshot, 0, steps+1)
	_, err := d.Run(ctx, image, text, steps, func(s Snapshot) error {
		out = append(out, s)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (d *Driver) weight(s, steps int) float64 {
	switch s {
	case 0:
		return 0
	case steps:
		return 1
	}
	return d.easing(float64(s) / float64(steps))
}

func (d *Driver) validate(image, text space.Space, steps int) error {
	if steps <= 0 {
		return fmt.Errorf("%w: steps must be positive, got %d", ErrInvalidArgument, steps)
	}
	for _, item := range image.Shared(text) {
		a, b := image[item], text[item]
		if len(a) != len(b) {
			return fmt.Errorf("%w: item %q has dimension %d in image space and %d in text space",
				ErrInvalidArgument, item, len(a), len(b))
		}
		if d.lift != nil && len(d.lift) != len(a) {
			return fmt.Errorf("%w: lift has dimension %d, item %q has %d",
				ErrInvalidArgument, len(d.lift), item, len(a))
		}
		if !a.IsValid() || !b.IsValid() {
			return fmt.Errorf("%w: item %q", ErrInvalidPoint, item)
		}
	}
	return nil
}

func advance(src space.Space, targets map[string]space.Point, t float64) space.Space {
	out := make(space.Space, len(src))
	for item, p := range src {
		if target, ok := targets[item]; ok {
			out[item] = Interpolate(p, target, t)
		} else {
			out[item] = p.Clone()
		}
	}
	return out
}

// Interpolate returns orig*(1-t) + target*t.
func Interpolate(orig, target space.Point, t float64) space.Point {
	return space.Lerp(orig, target, t)
}

// Midpoints returns the shared target of every item present in both spaces.
func Midpoints(image, text space.Space) space.Space {
	out := make(space.Space)
	for _, item := range image.Shared(text) {
		out[item] = space.Midpoint(image[item], text[item])
	}
	return out
}
