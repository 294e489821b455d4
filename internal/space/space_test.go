package space

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLerpEndpoints(t *testing.T) {
	a := Point{0, 0}
	b := Point{2, 4}

	assert.Equal(t, a, Lerp(a, b, 0))
	assert.Equal(t, b, Lerp(a, b, 1))
	assert.Equal(t, Point{1, 2}, Lerp(a, b, 0.5))
}

func TestMidpointAndDistance(t *testing.T) {
	a := Point{0, 0}
	b := Point{2, 2}

	assert.Equal(t, Point{1, 1}, Midpoint(a, b))
	assert.InDelta(t, math.Sqrt(8), Distance(a, b), 1e-12)
}

func TestPointValidity(t *testing.T) {
	assert.True(t, Point{1, 2}.IsValid())
	assert.False(t, Point{math.NaN(), 0}.IsValid())
	assert.False(t, Point{0, math.Inf(1)}.IsValid())
}

func TestSpaceShared(t *testing.T) {
	image := Space{"cat": {0, 0}, "dog": {1, 1}}
	text := Space{"cat": {2, 2}, "car": {3, 3}}

	assert.Equal(t, []string{"cat"}, image.Shared(text))
	assert.Equal(t, []string{"cat", "dog"}, image.Keys())
}

func TestSpaceCloneIsDeep(t *testing.T) {
	s := Space{"cat": {0, 0}}
	c := s.Clone()
	c["cat"][0] = 5

	assert.Equal(t, 0.0, s["cat"][0])
}

func TestGenerate2D(t *testing.T) {
	gen := NewGenerator(DefaultSeed)
	image, text := gen.Generate2D()

	require.Len(t, image, 24)
	require.Len(t, text, 24)
	assert.Equal(t, 2, image.Dim())
	assert.Equal(t, 2, text.Dim())

	// text = R90 * image + 0.1
	for item, p := range image {
		q := text[item]
		assert.InDelta(t, -p[1]+0.1, q[0], 1e-12, item)
		assert.InDelta(t, p[0]+0.1, q[1], 1e-12, item)
	}
}

func TestGenerate3D(t *testing.T) {
	gen := NewGenerator(DefaultSeed)
	image, text := gen.Generate3D()

	require.Len(t, image, 24)
	assert.Equal(t, 3, image.Dim())
	assert.Equal(t, 3, text.Dim())

	for item, p := range image {
		q := text[item]
		assert.InDelta(t, p[2]+0.1, q[0], 1e-9, item)
		assert.InDelta(t, p[1]+0.1, q[1], 1e-9, item)
		assert.InDelta(t, -p[0]+0.1, q[2], 1e-9, item)
	}
}

func TestGeneratorDeterministic(t *testing.T) {
	a, _ := NewGenerator(7).Generate2D()
	b, _ := NewGenerator(7).Generate2D()
	c, _ := NewGenerator(8).Generate2D()

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestColorOf(t *testing.T) {
	cats := DefaultCategories()
	assert.Equal(t, Animals.Color, ColorOf(cats, "cat"))
	assert.Equal(t, Nature.Color, ColorOf(cats, "cloud"))

	_, ok := Lookup(cats, "spaceship")
	assert.False(t, ok)
}
