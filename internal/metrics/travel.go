package metrics

import (
	"github.com/san-kum/contrastviz/internal/align"
	"github.com/san-kum/contrastviz/internal/space"
)

// Travel sums how far every point moved between consecutive steps, across
// both spaces.
type Travel struct {
	name  string
	sum   float64
	image space.Space
	text  space.Space
}

func NewTravel() *Travel {
	return &Travel{
		name: "total_travel",
	}
}

func (t *Travel) Name() string {
	return t.name
}

func (t *Travel) Observe(s align.Snapshot) {
	if t.image != nil {
		t.sum += moved(t.image, s.Image) + moved(t.text, s.Text)
	}
	t.image = s.Image
	t.text = s.Text
}

func moved(prev, cur space.Space) float64 {
	total := 0.0
	for item, p := range cur {
		if q, ok := prev[item]; ok && len(p) == len(q) {
			total += space.Distance(p, q)
		}
	}
	return total
}

func (t *Travel) Value() float64 {
	return t.sum
}

func (t *Travel) Reset() {
	t.sum = 0
	t.image = nil
	t.text = nil
}

// Defaults returns the metric set attached to every pipeline run.
func Defaults() []align.Metric {
	return []align.Metric{
		NewMeanGap(),
		NewInitialGap(),
		NewConvergence(1e-9),
		NewTravel(),
	}
}
