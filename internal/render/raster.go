package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Raster draws anti-aliased geometry into an RGBA image.
type Raster struct {
	img    *image.RGBA
	filler *rasterx.Filler
	dasher *rasterx.Dasher
}

var _ Surface = (*Raster)(nil)

// NewRaster allocates a w by h transparent image to draw on.
func NewRaster(w, h int) *Raster {
	return NewRasterOn(image.NewRGBA(image.Rect(0, 0, w, h)))
}

// NewRasterOn draws onto an existing image, such as a window buffer.
func NewRasterOn(img *image.RGBA) *Raster {
	b := img.Bounds()
	scanner := rasterx.NewScannerGV(b.Dx(), b.Dy(), img, b)
	return &Raster{
		img:    img,
		filler: rasterx.NewFiller(b.Dx(), b.Dy(), scanner),
		dasher: rasterx.NewDasher(b.Dx(), b.Dy(), scanner),
	}
}

// Image returns the target image.
func (r *Raster) Image() *image.RGBA { return r.img }

// Fill paints the whole image with c.
func (r *Raster) Fill(c color.Color) {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// EncodePNG writes the image as PNG.
func (r *Raster) EncodePNG(w io.Writer) error { return png.Encode(w, r.img) }

func (r *Raster) stroke(width float64, c color.RGBA, path func(rasterx.Adder)) {
	if width < 1 {
		width = 1
	}
	r.dasher.SetStroke(fixed.Int26_6(width*64), fixed.Int26_6(10*64), rasterx.SquareCap, rasterx.SquareCap, rasterx.FlatGap, rasterx.Miter, nil, 0)
	r.dasher.SetColor(c)
	path(r.dasher)
	r.dasher.Draw()
	r.dasher.Clear()
}

func (r *Raster) fill(c color.RGBA, path func(rasterx.Adder)) {
	r.filler.SetColor(c)
	path(r.filler)
	r.filler.Draw()
	r.filler.Clear()
}

func (r *Raster) FillRect(x, y, w, h float64, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	r.fill(c, func(a rasterx.Adder) { rasterx.AddRect(x, y, x+w, y+h, 0, a) })
}

func (r *Raster) StrokeRect(x, y, w, h, width float64, c color.RGBA) {
	if w == 0 && h == 0 {
		r.dot(Vec{x, y}, width, c)
		return
	}
	r.stroke(width, c, func(a rasterx.Adder) { rasterx.AddRect(x, y, x+w, y+h, 0, a) })
}

func (r *Raster) StrokeLine(p, q Vec, width float64, c color.RGBA) {
	if p == q {
		r.dot(p, width, c)
		return
	}
	r.stroke(width, c, func(a rasterx.Adder) {
		a.Start(rasterx.ToFixedP(p.X, p.Y))
		a.Line(rasterx.ToFixedP(q.X, q.Y))
		a.Stop(false)
	})
}

func (r *Raster) FillEllipse(cx, cy, rx, ry float64, c color.RGBA) {
	if rx <= 0 || ry <= 0 {
		return
	}
	r.fill(c, func(a rasterx.Adder) { rasterx.AddEllipse(cx, cy, rx, ry, 0, a) })
}

func (r *Raster) StrokeEllipse(cx, cy, rx, ry, width float64, c color.RGBA) {
	if rx <= 0 || ry <= 0 {
		// A flat ellipse is the segment across its long axis.
		r.StrokeLine(Vec{cx - rx, cy - ry}, Vec{cx + rx, cy + ry}, width, c)
		return
	}
	r.stroke(width, c, func(a rasterx.Adder) { rasterx.AddEllipse(cx, cy, rx, ry, 0, a) })
}

func (r *Raster) FillPolygon(pts []Vec, c color.RGBA) {
	if len(pts) < 3 {
		return
	}
	r.fill(c, func(a rasterx.Adder) { polyPath(a, pts) })
}

func (r *Raster) StrokePolygon(pts []Vec, width float64, c color.RGBA) {
	if len(pts) == 0 {
		return
	}
	r.stroke(width, c, func(a rasterx.Adder) { polyPath(a, pts) })
}

func (r *Raster) FillCircle(center Vec, radius float64, c color.RGBA) {
	if radius <= 0 {
		return
	}
	r.fill(c, func(a rasterx.Adder) { rasterx.AddCircle(center.X, center.Y, radius, a) })
}

// Label draws text with its baseline starting at the given point.
func (r *Raster) Label(at Vec, text string, c color.RGBA) {
	d := &font.Drawer{Dst: r.img, Src: image.NewUniform(c), Face: basicfont.Face7x13}
	d.Dot = fixed.P(int(at.X), int(at.Y))
	d.DrawString(text)
}

func (r *Raster) dot(p Vec, width float64, c color.RGBA) {
	radius := width / 2
	if radius < 0.5 {
		radius = 0.5
	}
	r.FillCircle(p, radius, c)
}

func polyPath(a rasterx.Adder, pts []Vec) {
	a.Start(rasterx.ToFixedP(pts[0].X, pts[0].Y))
	for _, p := range pts[1:] {
		a.Line(rasterx.ToFixedP(p.X, p.Y))
	}
	a.Stop(true)
}
