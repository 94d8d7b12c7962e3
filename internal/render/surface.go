// Package render paints a document onto a drawing surface: an anti-aliased
// raster image for the window and PNG export, or a PDF page.
package render

import "image/color"

// Vec is a device-space position.
type Vec struct {
	X, Y float64
}

// Surface receives device-space drawing calls. Stroke widths are in device
// units. Implementations need not support alpha.
type Surface interface {
	FillRect(x, y, w, h float64, c color.RGBA)
	StrokeRect(x, y, w, h, width float64, c color.RGBA)
	StrokeLine(a, b Vec, width float64, c color.RGBA)
	FillEllipse(cx, cy, rx, ry float64, c color.RGBA)
	StrokeEllipse(cx, cy, rx, ry, width float64, c color.RGBA)
	FillPolygon(pts []Vec, c color.RGBA)
	StrokePolygon(pts []Vec, width float64, c color.RGBA)
	FillCircle(center Vec, r float64, c color.RGBA)
	Label(at Vec, text string, c color.RGBA)
}
