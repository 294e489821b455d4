package align

import "github.com/san-kum/contrastviz/internal/space"

// Snapshot is the state of both spaces at one step of the sweep. The spaces
// are owned by the snapshot and are not modified after delivery.
type Snapshot struct {
	Step  int
	Steps int
	// T is the interpolation weight after easing.
	T     float64
	Image space.Space
	Text  space.Space
}

// Progress is the linear fraction of the sweep completed, Step/Steps.
func (s Snapshot) Progress() float64 {
	if s.Steps == 0 {
		return 0
	}
	return float64(s.Step) / float64(s.Steps)
}

func (s Snapshot) Final() bool { return s.Step == s.Steps }

// Gap returns the distance between an item's image and text positions, and
// false when the item is not in both spaces.
func (s Snapshot) Gap(item string) (float64, bool) {
	a, ok := s.Image[item]
	if !ok {
		return 0, false
	}
	b, ok := s.Text[item]
	if !ok {
		return 0, false
	}
	return space.Distance(a, b), true
}

type Observer interface {
	OnSnapshot(s Snapshot) error
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(s Snapshot) error

func (f ObserverFunc) OnSnapshot(s Snapshot) error { return f(s) }

type Metric interface {
	Name() string
	Observe(s Snapshot)
	Value() float64
	Reset()
}

type Result struct {
	Snapshots int
	Shared    []string
	Metrics   map[string]float64
}
