package align

import "github.com/tanema/gween/ease"

// Easing maps linear progress in [0,1] to interpolation weight in [0,1]. It
// must be non-decreasing with Easing(0) = 0 and Easing(1) = 1.
type Easing func(t float64) float64

func Linear(t float64) float64 { return t }

func InOutCubic(t float64) float64 {
	return float64(ease.InOutCubic(float32(t), 0, 1, 1))
}

func InOutSine(t float64) float64 {
	return float64(ease.InOutSine(float32(t), 0, 1, 1))
}

var easings = map[string]Easing{
	"linear":       Linear,
	"in-out-cubic": InOutCubic,
	"in-out-sine":  InOutSine,
}

// EasingByName resolves a named easing curve.
func EasingByName(name string) (Easing, bool) {
	e, ok := easings[name]
	return e, ok
}
