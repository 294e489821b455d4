package space

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

type Point []float64

func (p Point) Clone() Point {
	c := make(Point, len(p))
	copy(c, p)
	return c
}

func (p Point) Dim() int { return len(p) }

func (p Point) IsValid() bool {
	for _, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (p Point) Add(other Point) Point {
	result := make(Point, len(p))
	for i := range p {
		if i < len(other) {
			result[i] = p[i] + other[i]
		} else {
			result[i] = p[i]
		}
	}
	return result
}

func (p Point) Sub(other Point) Point {
	result := make(Point, len(p))
	for i := range p {
		if i < len(other) {
			result[i] = p[i] - other[i]
		} else {
			result[i] = p[i]
		}
	}
	return result
}

func (p Point) Scale(factor float64) Point {
	result := make(Point, len(p))
	for i := range p {
		result[i] = p[i] * factor
	}
	return result
}

func (p Point) Norm() float64 { return floats.Norm(p, 2) }

func (p Point) Equal(other Point) bool {
	return len(p) == len(other) && floats.Equal(p, other)
}

// Distance is the Euclidean distance between a and b. Both must have the same
// dimension.
func Distance(a, b Point) float64 { return floats.Distance(a, b, 2) }

// Midpoint returns the elementwise mean of a and b.
func Midpoint(a, b Point) Point { return a.Add(b).Scale(0.5) }

// Lerp returns a*(1-t) + b*t.
func Lerp(a, b Point, t float64) Point {
	result := make(Point, len(a))
	for i := range a {
		result[i] = a[i]*(1-t) + b[i]*t
	}
	return result
}
