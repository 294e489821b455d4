package render

import (
	"image"
	"math"

	"github.com/san-kum/contrastviz/internal/space"
)

// Bounds is the data range shown on a 2D panel.
type Bounds struct {
	MinX, MaxX, MinY, MaxY float64
}

// UnitBounds covers the unit square.
var UnitBounds = Bounds{0, 1, 0, 1}

// FitBounds returns the bounding box of every point in the given spaces,
// padded by 10% on each side. Interpolated positions stay inside the box of
// the originals, so fitting once keeps the axes fixed across a run.
func FitBounds(spaces ...space.Space) Bounds {
	b := Bounds{math.Inf(1), math.Inf(-1), math.Inf(1), math.Inf(-1)}
	for _, s := range spaces {
		for _, p := range s {
			if len(p) < 2 {
				continue
			}
			b.MinX = math.Min(b.MinX, p[0])
			b.MaxX = math.Max(b.MaxX, p[0])
			b.MinY = math.Min(b.MinY, p[1])
			b.MaxY = math.Max(b.MaxY, p[1])
		}
	}
	if math.IsInf(b.MinX, 1) {
		return UnitBounds
	}

	rangeX := b.MaxX - b.MinX
	rangeY := b.MaxY - b.MinY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	b.MinX -= rangeX * 0.1
	b.MaxX += rangeX * 0.1
	b.MinY -= rangeY * 0.1
	b.MaxY += rangeY * 0.1
	return b
}

// panel maps data coordinates onto a pixel rectangle, y pointing up.
type panel struct {
	rect   image.Rectangle
	bounds Bounds
}

func (p panel) toPixel(x, y float64) (int, int) {
	w := float64(p.rect.Dx())
	h := float64(p.rect.Dy())
	px := (x - p.bounds.MinX) / (p.bounds.MaxX - p.bounds.MinX) * w
	py := h - (y-p.bounds.MinY)/(p.bounds.MaxY-p.bounds.MinY)*h
	return p.rect.Min.X + int(math.Round(px)), p.rect.Min.Y + int(math.Round(py))
}

func (p panel) contains(x, y int) bool {
	return image.Pt(x, y).In(p.rect)
}
