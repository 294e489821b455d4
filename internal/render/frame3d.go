package render

import (
	"fmt"
	"image"
	"math"
	"sort"
	"strings"

	"github.com/san-kum/contrastviz/internal/align"
	"github.com/san-kum/contrastviz/internal/space"
)

// Renderer3D draws both spaces in one perspective scene.
type Renderer3D struct {
	Categories    []space.Category
	Width, Height int
	center        space.Point
	extent        float64
}

func NewRenderer3D(categories []space.Category, width, height int) *Renderer3D {
	return &Renderer3D{
		Categories: categories,
		Width:      width,
		Height:     height,
		center:     space.Point{0.5, 0.5, 0.5},
		extent:     1,
	}
}

// Fit centers the scene on the bounding box of the given spaces.
func (r *Renderer3D) Fit(spaces ...space.Space) {
	lo := space.Point{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi := space.Point{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, s := range spaces {
		for _, p := range s {
			if len(p) < 3 {
				continue
			}
			for i := 0; i < 3; i++ {
				lo[i] = math.Min(lo[i], p[i])
				hi[i] = math.Max(hi[i], p[i])
			}
		}
	}
	if math.IsInf(lo[0], 1) {
		return
	}
	r.center = space.Midpoint(lo, hi)
	r.extent = 0
	for i := 0; i < 3; i++ {
		r.extent = math.Max(r.extent, hi[i]-lo[i])
	}
	if r.extent == 0 {
		r.extent = 1
	}
}

// world maps a data point (z up) into the camera's frame (y up), scaled so
// the fitted box spans one unit.
func (r *Renderer3D) world(p space.Point) Vec3 {
	q := p.Sub(r.center).Scale(1 / r.extent)
	return Vec3{X: q[0], Y: q[2], Z: q[1]}
}

type marker struct {
	x, y   int
	depth  float64
	item   string
	text   bool
	colorI int
}

// Frame renders one step with a camera that follows the sweep progress.
func (r *Renderer3D) Frame(s align.Snapshot) image.Image {
	c := NewCanvas(r.Width, r.Height, PanelBg)
	cam := Sweep(s.Progress())
	project := func(v Vec3) (int, int, float64, bool) {
		return cam.Project(v, r.Width, r.Height)
	}

	for _, e := range CubeEdges(1) {
		x0, y0, _, ok0 := project(e[0])
		x1, y1, _, ok1 := project(e[1])
		if ok0 || ok1 {
			c.DrawLine(x0, y0, x1, y1, GridColor, 1, 0)
		}
	}

	for _, item := range s.Image.Shared(s.Text) {
		a, b := s.Image[item], s.Text[item]
		if len(a) < 3 || len(b) < 3 {
			continue
		}
		alpha := math.Min(1, space.Distance(a, b)) * 0.5
		x0, y0, _, _ := project(r.world(a))
		x1, y1, _, _ := project(r.world(b))
		c.DrawLine(x0, y0, x1, y1, Grey, alpha, 5)
	}

	markers := make([]marker, 0, len(s.Image)+len(s.Text))
	for ci, cat := range r.Categories {
		for _, item := range cat.Items {
			if p, ok := s.Image[item]; ok && len(p) >= 3 {
				if x, y, d, vis := project(r.world(p)); vis {
					markers = append(markers, marker{x, y, d, item, false, ci})
				}
			}
			if p, ok := s.Text[item]; ok && len(p) >= 3 {
				if x, y, d, vis := project(r.world(p)); vis {
					markers = append(markers, marker{x, y, d, item, true, ci})
				}
			}
		}
	}
	sort.SliceStable(markers, func(i, j int) bool { return markers[i].depth < markers[j].depth })

	for _, m := range markers {
		col := r.Categories[m.colorI].Color
		label := strings.ToUpper(m.item)
		if m.text {
			c.Square(m.x, m.y, markerSize-1, col, White, 0.8)
			label = "'" + label + "'"
		} else {
			c.Dot(m.x, m.y, markerSize, col, White, 0.8)
		}
		c.TextCentered(m.x, m.y-markerSize-3, label, Black)
	}

	r.drawLegend(c)

	title, explanation := Stage(s.Progress())
	c.TextCentered(r.Width/2, 24, title, Black)
	c.TextCentered(r.Width/2, r.Height-32, fmt.Sprintf("Training Progress: %d%%", int(s.Progress()*100)), Black)
	c.TextCentered(r.Width/2, r.Height-12, explanation, Black)
	return c.Image()
}

func (r *Renderer3D) drawLegend(c *Canvas) {
	x := r.Width - 110
	y := 50
	for i, cat := range r.Categories {
		cy := y + i*18
		c.Dot(x, cy-4, 5, cat.Color, White, 1)
		c.Text(x+12, cy, capitalize(cat.Name), Black)
	}
}
