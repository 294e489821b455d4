package metrics

import (
	"context"
	"math"
	"testing"

	"github.com/san-kum/contrastviz/internal/align"
	"github.com/san-kum/contrastviz/internal/space"
)

func run(t *testing.T, steps int, ms ...align.Metric) *align.Result {
	t.Helper()
	d := align.New()
	for _, m := range ms {
		d.AddMetric(m)
	}
	image := space.Space{"cat": {0, 0}, "dog": {0, 1}}
	text := space.Space{"cat": {2, 2}, "dog": {0, 1}}
	res, err := d.Run(context.Background(), image, text, steps, nil)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	return res
}

func TestMeanGapHistory(t *testing.T) {
	gap := NewMeanGap()
	res := run(t, 4, gap)

	history := gap.History()
	if len(history) != 5 {
		t.Fatalf("expected 5 samples, got %d", len(history))
	}

	// cat starts sqrt(8) apart, dog starts aligned
	expected := math.Sqrt(8) / 2
	if math.Abs(history[0]-expected) > 1e-12 {
		t.Errorf("expected initial mean gap %f, got %f", expected, history[0])
	}
	if res.Metrics["mean_gap"] > 1e-12 {
		t.Errorf("expected final mean gap 0, got %f", res.Metrics["mean_gap"])
	}
	for i := 1; i < len(history); i++ {
		if history[i] > history[i-1]+1e-12 {
			t.Errorf("gap grew at step %d: %f -> %f", i, history[i-1], history[i])
		}
	}
}

func TestInitialGap(t *testing.T) {
	g := NewInitialGap()
	res := run(t, 3, g)

	if math.Abs(res.Metrics["initial_max_gap"]-math.Sqrt(8)) > 1e-12 {
		t.Errorf("expected sqrt(8), got %f", res.Metrics["initial_max_gap"])
	}

	g.Reset()
	if g.Value() != 0 {
		t.Error("reset should clear the gap")
	}
}

func TestConvergenceNoViolations(t *testing.T) {
	res := run(t, 10, NewConvergence(1e-9))
	if res.Metrics["convergence_violations"] != 0 {
		t.Errorf("expected no violations, got %f", res.Metrics["convergence_violations"])
	}
}

func TestConvergenceDetectsGrowth(t *testing.T) {
	c := NewConvergence(1e-9)
	c.Observe(align.Snapshot{Image: space.Space{"cat": {0, 0}}, Text: space.Space{"cat": {1, 0}}})
	c.Observe(align.Snapshot{Image: space.Space{"cat": {0, 0}}, Text: space.Space{"cat": {2, 0}}})

	if c.Value() != 1 {
		t.Errorf("expected 1 violation, got %f", c.Value())
	}
}

func TestTravel(t *testing.T) {
	res := run(t, 2, NewTravel())

	// each cat point moves half of sqrt(8) in total
	expected := math.Sqrt(8)
	if math.Abs(res.Metrics["total_travel"]-expected) > 1e-9 {
		t.Errorf("expected travel %f, got %f", expected, res.Metrics["total_travel"])
	}
}

func TestDefaults(t *testing.T) {
	names := map[string]bool{}
	for _, m := range Defaults() {
		names[m.Name()] = true
	}
	for _, want := range []string{"mean_gap", "initial_max_gap", "convergence_violations", "total_travel"} {
		if !names[want] {
			t.Errorf("missing default metric %s", want)
		}
	}
}
