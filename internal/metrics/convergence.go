package metrics

import (
	"github.com/san-kum/contrastviz/internal/align"
)

// Convergence counts steps where some item's gap grew compared with the
// previous step. A healthy sweep reports zero.
type Convergence struct {
	name       string
	tolerance  float64
	previous   map[string]float64
	violations int
}

func NewConvergence(tolerance float64) *Convergence {
	return &Convergence{
		name:      "convergence_violations",
		tolerance: tolerance,
		previous:  make(map[string]float64),
	}
}

func (c *Convergence) Name() string {
	return c.name
}

func (c *Convergence) Observe(s align.Snapshot) {
	grew := false
	for _, item := range s.Image.Shared(s.Text) {
		d, _ := s.Gap(item)
		if prev, ok := c.previous[item]; ok && d > prev+c.tolerance {
			grew = true
		}
		c.previous[item] = d
	}
	if grew {
		c.violations++
	}
}

func (c *Convergence) Value() float64 {
	return float64(c.violations)
}

func (c *Convergence) Reset() {
	c.violations = 0
	c.previous = make(map[string]float64)
}
