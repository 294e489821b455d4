package metrics

import (
	"math"

	"github.com/san-kum/contrastviz/internal/align"
)

// MeanGap tracks the mean image-to-text distance over shared items. Value is
// the gap at the last observed step; History holds one entry per step.
type MeanGap struct {
	name    string
	history []float64
}

func NewMeanGap() *MeanGap {
	return &MeanGap{name: "mean_gap"}
}

func (g *MeanGap) Name() string { return g.name }

func (g *MeanGap) Observe(s align.Snapshot) {
	sum, n := 0.0, 0
	for _, item := range s.Image.Shared(s.Text) {
		d, _ := s.Gap(item)
		sum += d
		n++
	}
	if n == 0 {
		g.history = append(g.history, 0)
		return
	}
	g.history = append(g.history, sum/float64(n))
}

func (g *MeanGap) Value() float64 {
	if len(g.history) == 0 {
		return 0
	}
	return g.history[len(g.history)-1]
}

func (g *MeanGap) History() []float64 {
	out := make([]float64, len(g.history))
	copy(out, g.history)
	return out
}

func (g *MeanGap) Reset() {
	g.history = g.history[:0]
}

// InitialGap records the largest item gap seen at step 0.
type InitialGap struct {
	name string
	max  float64
}

func NewInitialGap() *InitialGap {
	return &InitialGap{name: "initial_max_gap"}
}

func (g *InitialGap) Name() string { return g.name }

func (g *InitialGap) Observe(s align.Snapshot) {
	if s.Step != 0 {
		return
	}
	for _, item := range s.Image.Shared(s.Text) {
		d, _ := s.Gap(item)
		g.max = math.Max(g.max, d)
	}
}

func (g *InitialGap) Value() float64 { return g.max }

func (g *InitialGap) Reset() { g.max = 0 }
