package render

import (
	"image/color"
	"strconv"

	"github.com/example/shapecanvas/internal/document"
	"github.com/example/shapecanvas/internal/geom"
	"github.com/example/shapecanvas/internal/shape"
)

const (
	markerRadius = 4
	labelOffsetX = 5
	labelOffsetY = -5
)

// DefaultMarker is the color of pending polygon vertex markers.
var DefaultMarker = color.RGBA{255, 0, 0, 255}

// Scene is everything needed to paint one frame.
type Scene struct {
	Canvas  document.Canvas
	Shapes  []shape.Shape
	Preview *shape.Shape
	Pending []geom.Point
	Tool    shape.Kind
	View    geom.Transform
	Marker  color.RGBA
}

// SceneOf captures the document as seen through view.
func SceneOf(d *document.Document, view geom.Transform) Scene {
	sc := Scene{
		Canvas:  d.Canvas(),
		Shapes:  d.Shapes(),
		Pending: d.Pending(),
		Tool:    d.Tool(),
		View:    view,
		Marker:  DefaultMarker,
	}
	if p, ok := d.Preview(); ok {
		sc.Preview = &p
	}
	return sc
}

// Render paints the canvas background, the committed shapes in order, the
// preview on top and, while the Polygon tool is active, a numbered marker per
// pending vertex.
func Render(s Surface, sc Scene) {
	v := sc.View
	if v.Scale == 0 {
		v = *geom.NewTransform()
	}
	x0, y0 := v.ToDevice(geom.Point{})
	s.FillRect(x0, y0, float64(sc.Canvas.Width)*v.Scale, float64(sc.Canvas.Height)*v.Scale, sc.Canvas.Background.RGBA())

	for _, sh := range sc.Shapes {
		drawShape(s, v, sh)
	}
	if sc.Preview != nil {
		drawShape(s, v, *sc.Preview)
	}
	if sc.Tool != shape.Polygon {
		return
	}
	marker := sc.Marker
	if marker.A == 0 {
		marker = DefaultMarker
	}
	for i, p := range sc.Pending {
		c := device(v, p)
		s.FillCircle(c, markerRadius*v.Scale, marker)
		s.Label(Vec{c.X + labelOffsetX*v.Scale, c.Y + labelOffsetY*v.Scale}, strconv.Itoa(i+1), marker)
	}
}

func device(v geom.Transform, p geom.Point) Vec {
	x, y := v.ToDevice(p)
	return Vec{x, y}
}

func drawShape(s Surface, v geom.Transform, sh shape.Shape) {
	stroke := sh.Stroke.RGBA()
	width := float64(sh.Width) * v.Scale
	box := sh.Bounds()
	bx, by := v.ToDevice(geom.Pt(box.X, box.Y))
	bw, bh := float64(box.W)*v.Scale, float64(box.H)*v.Scale

	switch sh.Kind {
	case shape.Line:
		s.StrokeLine(device(v, sh.Start), device(v, sh.End), width, stroke)
	case shape.Rectangle:
		s.StrokeRect(bx, by, bw, bh, width, stroke)
		if sh.Filled() {
			s.FillRect(bx, by, bw, bh, sh.Fill.RGBA())
		}
	case shape.Oval:
		cx, cy, rx, ry := bx+bw/2, by+bh/2, bw/2, bh/2
		s.StrokeEllipse(cx, cy, rx, ry, width, stroke)
		if sh.Filled() {
			s.FillEllipse(cx, cy, rx, ry, sh.Fill.RGBA())
		}
	case shape.Polygon:
		pts := make([]Vec, len(sh.Vertices))
		for i, p := range sh.Vertices {
			pts[i] = device(v, p)
		}
		s.StrokePolygon(pts, width, stroke)
		if sh.Filled() {
			s.FillPolygon(pts, sh.Fill.RGBA())
		}
	}
}
