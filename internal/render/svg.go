package render

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/san-kum/contrastviz/internal/space"
)

// SVG renders the overlaid image and text spaces as a standalone SVG
// document: circles for image points, squares for text points, dashed lines
// joining shared items. Squares are nudged the same way as on the
// combined PNG.
func (r *Renderer) SVG(imageSpace, textSpace space.Space, title string) string {
	width, height := r.Width, r.Height
	p := panel{
		rect:   rectOf(margin, titleBand, width-margin, height-captionBand),
		bounds: r.Bounds,
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
<rect x="%d" y="%d" width="%d" height="%d" fill="#f8f9fa" stroke="#888888"/>
<text x="%d" y="26" text-anchor="middle" font-family="sans-serif" font-size="18" font-weight="bold">%s</text>
`, width, height, width, height,
		p.rect.Min.X, p.rect.Min.Y, p.rect.Dx(), p.rect.Dy(),
		width/2, escape(title)))

	sb.WriteString(`<g stroke="#000000" stroke-opacity="0.3" stroke-dasharray="4,4">` + "\n")
	for _, item := range imageSpace.Shared(textSpace) {
		a, b := imageSpace[item], textSpace[item]
		x0, y0 := p.toPixel(a[0], a[1])
		x1, y1 := p.toPixel(b[0], b[1])
		sb.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d"/>
`, x0, y0, x1+textNudge, y1-textNudge))
	}
	sb.WriteString("</g>\n")

	for _, cat := range r.Categories {
		fill := hex(cat.Color)
		sb.WriteString(fmt.Sprintf(`<g class="%s" fill="%s" stroke="#000000">
`, cat.Name, fill))
		for _, item := range cat.Items {
			if pt, ok := imageSpace[item]; ok && len(pt) >= 2 {
				x, y := p.toPixel(pt[0], pt[1])
				sb.WriteString(fmt.Sprintf(`<circle cx="%d" cy="%d" r="%d" fill-opacity="0.7"><title>%s</title></circle>
`, x, y, markerSize, item))
			}
			if pt, ok := textSpace[item]; ok && len(pt) >= 2 {
				x, y := p.toPixel(pt[0], pt[1])
				x, y = x+textNudge, y-textNudge
				sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" fill-opacity="0.4"><title>T:%s</title></rect>
`, x-markerSize+1, y-markerSize+1, 2*markerSize-1, 2*markerSize-1, item))
			}
		}
		sb.WriteString("</g>\n")
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func escape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}
