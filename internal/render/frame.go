package render

import (
	"image"
	"image/color"
	"strings"

	"github.com/san-kum/contrastviz/internal/align"
	"github.com/san-kum/contrastviz/internal/space"
)

const (
	titleBand   = 44
	captionBand = 34
	margin      = 30
	markerSize  = 7
)

// textNudge shifts text markers on the combined view so aligned pairs do not
// hide each other.
const textNudge = markerSize + 2

// Renderer draws 2D frames: the image and text spaces side by side.
type Renderer struct {
	Categories    []space.Category
	Width, Height int
	Bounds        Bounds
}

func NewRenderer(categories []space.Category, width, height int) *Renderer {
	return &Renderer{
		Categories: categories,
		Width:      width,
		Height:     height,
		Bounds:     UnitBounds,
	}
}

// Fit sets the panel range from the original spaces of a run.
func (r *Renderer) Fit(spaces ...space.Space) {
	r.Bounds = FitBounds(spaces...)
}

// Frame renders one step of the sweep.
func (r *Renderer) Frame(s align.Snapshot) image.Image {
	c := NewCanvas(r.Width, r.Height, White)
	left, right := r.panels()

	c.TextCentered(r.Width/2, 26, stepTitle(s.Step, s.Steps), Black)

	r.drawPanel(c, left, "Image Space")
	r.drawPanel(c, right, "Text Space")
	r.drawPoints(c, left, s.Image, "", false, 0.7, image.Point{})
	r.drawPoints(c, right, s.Text, "T:", true, 0.7, image.Point{})

	c.TextCentered(r.Width/2, r.Height-12, Caption(s.Step, s.Steps), Black)
	return c.Image()
}

// Combined renders both spaces overlaid on a single panel, with a dashed
// line joining each item's two positions. Text markers are drawn up and to
// the right of their true position by textNudge pixels.
func (r *Renderer) Combined(imageSpace, textSpace space.Space) image.Image {
	c := NewCanvas(r.Width, r.Height, White)
	p := panel{
		rect:   image.Rect(margin, titleBand, r.Width-margin, r.Height-captionBand),
		bounds: r.Bounds,
	}

	c.TextCentered(r.Width/2, 26, "Aligned Shared Space", Black)
	r.drawPanel(c, p, "")

	for _, item := range imageSpace.Shared(textSpace) {
		a, b := imageSpace[item], textSpace[item]
		x0, y0 := p.toPixel(a[0], a[1])
		x1, y1 := p.toPixel(b[0], b[1])
		c.DrawLine(x0, y0, x1+textNudge, y1-textNudge, Black, 0.3, 4)
	}
	r.drawPoints(c, p, imageSpace, "", false, 0.7, image.Point{})
	r.drawPoints(c, p, textSpace, "T:", true, 0.4, image.Pt(textNudge, -textNudge))
	r.drawLegend(c, p)

	c.TextCentered(r.Width/2, r.Height-12, "Image and text representations now occupy the same semantic space", Black)
	return c.Image()
}

func (r *Renderer) panels() (panel, panel) {
	top := titleBand + 16
	bottom := r.Height - captionBand
	half := r.Width / 2
	left := panel{rect: image.Rect(margin, top, half-margin/2, bottom), bounds: r.Bounds}
	right := panel{rect: image.Rect(half+margin/2, top, r.Width-margin, bottom), bounds: r.Bounds}
	return left, right
}

func (r *Renderer) drawPanel(c *Canvas, p panel, title string) {
	c.FillRect(p.rect, PanelBg, 1)
	const divisions = 5
	for i := 1; i < divisions; i++ {
		x := p.rect.Min.X + p.rect.Dx()*i/divisions
		y := p.rect.Min.Y + p.rect.Dy()*i/divisions
		c.DrawLine(x, p.rect.Min.Y, x, p.rect.Max.Y-1, GridColor, 1, 0)
		c.DrawLine(p.rect.Min.X, y, p.rect.Max.X-1, y, GridColor, 1, 0)
	}
	c.StrokeRect(p.rect, Grey)
	if title != "" {
		c.TextCentered(p.rect.Min.X+p.rect.Dx()/2, p.rect.Min.Y-6, title, Black)
	}
}

func (r *Renderer) drawPoints(c *Canvas, p panel, s space.Space, prefix string, square bool, alpha float64, shift image.Point) {
	for _, cat := range r.Categories {
		for _, item := range cat.Items {
			pt, ok := s[item]
			if !ok || len(pt) < 2 {
				continue
			}
			x, y := p.toPixel(pt[0], pt[1])
			if !p.contains(x, y) {
				continue
			}
			x, y = x+shift.X, y+shift.Y
			if square {
				c.Square(x, y, markerSize-1, cat.Color, Black, alpha)
			} else {
				c.Dot(x, y, markerSize, cat.Color, Black, alpha)
			}
			c.TextCentered(x, y-markerSize-3, prefix+strings.ToUpper(item), Black)
		}
	}
}

func (r *Renderer) drawLegend(c *Canvas, p panel) {
	x := p.rect.Max.X - 110
	y := p.rect.Min.Y + 16
	box := image.Rect(x-10, y-14, p.rect.Max.X-8, y+len(r.Categories)*18-6)
	c.FillRect(box, White, 0.85)
	c.StrokeRect(box, Grey)
	for i, cat := range r.Categories {
		cy := y + i*18
		c.Dot(x, cy-4, 5, cat.Color, Black, 1)
		c.Text(x+12, cy, capitalize(cat.Name), color.Black)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
