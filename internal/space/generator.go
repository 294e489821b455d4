package space

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

const (
	DefaultSeed   = 42
	DefaultJitter = 0.07
)

var (
	centers2D = map[string]Point{
		"animals":  {0.75, 0.75},
		"vehicles": {0.25, 0.25},
		"food":     {0.25, 0.75},
		"nature":   {0.75, 0.25},
	}
	centers3D = map[string]Point{
		"animals":  {0.7, 0.7, 0.7},
		"vehicles": {0.3, 0.3, 0.3},
		"food":     {0.3, 0.7, 0.3},
		"nature":   {0.7, 0.3, 0.7},
	}
)

// Generator produces the image and text spaces for a run. The image space
// clusters items around per-category centers; the text space is the image
// space under a fixed rotation and offset.
type Generator struct {
	Categories []Category
	Seed       int64
	Jitter     float64
}

func NewGenerator(seed int64) *Generator {
	return &Generator{
		Categories: DefaultCategories(),
		Seed:       seed,
		Jitter:     DefaultJitter,
	}
}

// Generate2D returns image and text spaces in the unit square.
func (g *Generator) Generate2D() (Space, Space) {
	rotation := mat.NewDense(2, 2, []float64{
		0, -1,
		1, 0,
	})
	return g.generate(centers2D, 2, rotation, Point{0.1, 0.1})
}

// Generate3D returns image and text spaces in the unit cube. The text space
// is rotated 90 degrees around the y axis.
func (g *Generator) Generate3D() (Space, Space) {
	theta := math.Pi / 2
	rotation := mat.NewDense(3, 3, []float64{
		math.Cos(theta), 0, math.Sin(theta),
		0, 1, 0,
		-math.Sin(theta), 0, math.Cos(theta),
	})
	return g.generate(centers3D, 3, rotation, Point{0.1, 0.1, 0.1})
}

func (g *Generator) generate(centers map[string]Point, dim int, rotation *mat.Dense, offset Point) (Space, Space) {
	rng := rand.New(rand.NewSource(g.Seed))
	image := make(Space)
	text := make(Space)

	for _, cat := range g.Categories {
		center, ok := centers[cat.Name]
		if !ok {
			center = make(Point, dim)
			for i := range center {
				center[i] = 0.5
			}
		}
		for _, item := range cat.Items {
			p := make(Point, dim)
			for i := range p {
				p[i] = center[i] + rng.NormFloat64()*g.Jitter
			}
			image[item] = p

			var rotated mat.VecDense
			rotated.MulVec(rotation, mat.NewVecDense(dim, p.Clone()))
			text[item] = Point(rotated.RawVector().Data).Add(offset)
		}
	}

	return image, text
}
