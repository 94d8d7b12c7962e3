package render

import (
	"fmt"
	"image/color"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// PDF draws onto a single page sized to the canvas, one point per pixel.
type PDF struct {
	doc *gofpdf.Fpdf
}

var _ Surface = (*PDF)(nil)

// NewPDF starts a document with one w by h point page.
func NewPDF(w, h float64, title string) *PDF {
	doc := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: w, Ht: h},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.SetCreator("shapecanvas", true)
	if title != "" {
		doc.SetTitle(title, true)
	}
	doc.AddPage()
	doc.SetLineCapStyle("square")
	doc.SetLineJoinStyle("miter")
	doc.SetFont("Helvetica", "B", 9)
	return &PDF{doc: doc}
}

// Write finishes the document and writes it to w.
func (p *PDF) Write(w io.Writer) error {
	if err := p.doc.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func (p *PDF) draw(width float64, c color.RGBA) {
	p.doc.SetDrawColor(int(c.R), int(c.G), int(c.B))
	p.doc.SetLineWidth(width)
}

func (p *PDF) fill(c color.RGBA) {
	p.doc.SetFillColor(int(c.R), int(c.G), int(c.B))
}

func (p *PDF) FillRect(x, y, w, h float64, c color.RGBA) {
	p.fill(c)
	p.doc.Rect(x, y, w, h, "F")
}

func (p *PDF) StrokeRect(x, y, w, h, width float64, c color.RGBA) {
	p.draw(width, c)
	p.doc.Rect(x, y, w, h, "D")
}

func (p *PDF) StrokeLine(a, b Vec, width float64, c color.RGBA) {
	p.draw(width, c)
	p.doc.Line(a.X, a.Y, b.X, b.Y)
}

func (p *PDF) FillEllipse(cx, cy, rx, ry float64, c color.RGBA) {
	p.fill(c)
	p.doc.Ellipse(cx, cy, rx, ry, 0, "F")
}

func (p *PDF) StrokeEllipse(cx, cy, rx, ry, width float64, c color.RGBA) {
	p.draw(width, c)
	p.doc.Ellipse(cx, cy, rx, ry, 0, "D")
}

func (p *PDF) FillPolygon(pts []Vec, c color.RGBA) {
	p.fill(c)
	p.doc.Polygon(pdfPoints(pts), "F")
}

func (p *PDF) StrokePolygon(pts []Vec, width float64, c color.RGBA) {
	p.draw(width, c)
	p.doc.Polygon(pdfPoints(pts), "D")
}

func (p *PDF) FillCircle(center Vec, r float64, c color.RGBA) {
	p.fill(c)
	p.doc.Circle(center.X, center.Y, r, "F")
}

func (p *PDF) Label(at Vec, text string, c color.RGBA) {
	p.doc.SetTextColor(int(c.R), int(c.G), int(c.B))
	p.doc.Text(at.X, at.Y, text)
}

func pdfPoints(pts []Vec) []gofpdf.PointType {
	out := make([]gofpdf.PointType, len(pts))
	for i, v := range pts {
		out[i] = gofpdf.PointType{X: v.X, Y: v.Y}
	}
	return out
}
