package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	White     = color.RGBA{0xff, 0xff, 0xff, 0xff}
	Black     = color.RGBA{0x00, 0x00, 0x00, 0xff}
	Grey      = color.RGBA{0x88, 0x88, 0x88, 0xff}
	GridColor = color.RGBA{0xdd, 0xdd, 0xdd, 0xff}
	PanelBg   = color.RGBA{0xf8, 0xf9, 0xfa, 0xff}
)

// Canvas is an RGBA raster with the handful of primitives the frames need.
// Coordinates are pixels with the origin at the top left.
type Canvas struct {
	Width, Height int
	img           *image.RGBA
	face          font.Face
}

func NewCanvas(w, h int, bg color.Color) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	return &Canvas{
		Width:  w,
		Height: h,
		img:    img,
		face:   basicfont.Face7x13,
	}
}

func (c *Canvas) Image() *image.RGBA { return c.img }

// Blend mixes col into the pixel at (x, y) with the given opacity.
func (c *Canvas) Blend(x, y int, col color.RGBA, alpha float64) {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return
	}
	if alpha >= 1 {
		c.img.SetRGBA(x, y, col)
		return
	}
	if alpha <= 0 {
		return
	}
	dst := c.img.RGBAAt(x, y)
	mix := func(s, d uint8) uint8 {
		return uint8(float64(s)*alpha + float64(d)*(1-alpha) + 0.5)
	}
	c.img.SetRGBA(x, y, color.RGBA{mix(col.R, dst.R), mix(col.G, dst.G), mix(col.B, dst.B), 0xff})
}

// DrawLine draws a line using Bresenham's algorithm. A positive dash skips
// every other run of dash pixels.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, col color.RGBA, alpha float64, dash int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for n := 0; ; n++ {
		if dash <= 0 || (n/dash)%2 == 0 {
			c.Blend(x0, y0, col, alpha)
		}
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) FillCircle(cx, cy, r int, col color.RGBA, alpha float64) {
	for y := -r; y <= r; y++ {
		for x := -r; x <= r; x++ {
			if x*x+y*y <= r*r {
				c.Blend(cx+x, cy+y, col, alpha)
			}
		}
	}
}

func (c *Canvas) StrokeCircle(cx, cy, r int, col color.RGBA) {
	inner := (r - 1) * (r - 1)
	for y := -r; y <= r; y++ {
		for x := -r; x <= r; x++ {
			d := x*x + y*y
			if d <= r*r && d > inner {
				c.Blend(cx+x, cy+y, col, 1)
			}
		}
	}
}

func (c *Canvas) FillRect(r image.Rectangle, col color.RGBA, alpha float64) {
	r = r.Intersect(c.img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c.Blend(x, y, col, alpha)
		}
	}
}

func (c *Canvas) StrokeRect(r image.Rectangle, col color.RGBA) {
	c.DrawLine(r.Min.X, r.Min.Y, r.Max.X-1, r.Min.Y, col, 1, 0)
	c.DrawLine(r.Min.X, r.Max.Y-1, r.Max.X-1, r.Max.Y-1, col, 1, 0)
	c.DrawLine(r.Min.X, r.Min.Y, r.Min.X, r.Max.Y-1, col, 1, 0)
	c.DrawLine(r.Max.X-1, r.Min.Y, r.Max.X-1, r.Max.Y-1, col, 1, 0)
}

// Square draws a filled square marker centered on (cx, cy) with an outline.
func (c *Canvas) Square(cx, cy, half int, fill, outline color.RGBA, alpha float64) {
	r := image.Rect(cx-half, cy-half, cx+half+1, cy+half+1)
	c.FillRect(r, fill, alpha)
	c.StrokeRect(r, outline)
}

// Dot draws a filled circle marker with an outline.
func (c *Canvas) Dot(cx, cy, r int, fill, outline color.RGBA, alpha float64) {
	c.FillCircle(cx, cy, r, fill, alpha)
	c.StrokeCircle(cx, cy, r, outline)
}

// Text draws s with its baseline starting at (x, y).
func (c *Canvas) Text(x, y int, s string, col color.Color) {
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: c.face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// TextCentered draws s horizontally centered on cx.
func (c *Canvas) TextCentered(cx, y int, s string, col color.Color) {
	c.Text(cx-c.TextWidth(s)/2, y, s, col)
}

func (c *Canvas) TextWidth(s string) int {
	return font.MeasureString(c.face, s).Ceil()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
