// Package document is the drawing state machine: the committed shapes, the
// shape being dragged, the polygon under construction and the undo history.
package document

import (
	"github.com/example/shapecanvas/internal/geom"
	"github.com/example/shapecanvas/internal/history"
	"github.com/example/shapecanvas/internal/shape"
)

// Document owns every shape on one canvas. It is not safe for concurrent use.
type Document struct {
	canvas Canvas
	style  Style
	tool   shape.Kind

	committed []shape.Shape
	preview   *shape.Shape
	start     *geom.Point
	pending   []geom.Point

	history  *history.History
	onChange []func()
}

// Option modifies a Document during creation.
type Option func(*Document)

// WithCanvas sets the canvas size and background. Invalid sizes are ignored.
func WithCanvas(c Canvas) Option {
	return func(d *Document) {
		if ValidateSize(c.Width, c.Height) == nil {
			d.canvas = c
		}
	}
}

// WithStyle sets the initial drawing style.
func WithStyle(s Style) Option { return func(d *Document) { d.style = s } }

// WithTool selects the initial tool.
func WithTool(k shape.Kind) Option { return func(d *Document) { d.tool = k } }

// WithChangeListener registers fn to run after every visible change.
func WithChangeListener(fn func()) Option {
	return func(d *Document) { d.onChange = append(d.onChange, fn) }
}

// New creates an empty document on the default canvas using the Line tool.
func New(opts ...Option) *Document {
	d := &Document{
		canvas:    DefaultCanvas(),
		style:     DefaultStyle(),
		tool:      shape.Line,
		committed: []shape.Shape{},
		history:   history.New(),
	}
	for _, o := range opts {
		o(d)
	}
	d.style.Width = ClampWidth(d.style.Width)
	return d
}

// OnChange registers fn to run after every visible change.
func (d *Document) OnChange(fn func()) { d.onChange = append(d.onChange, fn) }

func (d *Document) changed() {
	for _, fn := range d.onChange {
		fn()
	}
}

// Canvas returns the current canvas settings.
func (d *Document) Canvas() Canvas { return d.canvas }

// Resize changes the canvas extent. Existing shapes keep their coordinates.
func (d *Document) Resize(w, h int) error {
	if err := ValidateSize(w, h); err != nil {
		return err
	}
	d.canvas.Width, d.canvas.Height = w, h
	d.changed()
	return nil
}

// SetBackground changes the canvas color.
func (d *Document) SetBackground(c shape.RGB) {
	d.canvas.Background = c
	d.changed()
}

// Style returns the style new shapes will use.
func (d *Document) Style() Style { return d.style }

// SetStyle replaces the drawing style. The width is clamped to the valid range.
// Shapes already committed or previewed are unaffected.
func (d *Document) SetStyle(s Style) {
	s.Width = ClampWidth(s.Width)
	d.style = s
}

// Tool returns the active tool.
func (d *Document) Tool() shape.Kind { return d.tool }

// SwitchTool selects a tool and abandons any drag or polygon in progress.
func (d *Document) SwitchTool(k shape.Kind) {
	d.tool = k
	d.preview = nil
	d.start = nil
	d.pending = nil
	d.changed()
}

// Drawing reports whether a drag is in progress.
func (d *Document) Drawing() bool { return d.start != nil }

// Begin handles a press at logical point p. Presses outside the canvas are
// ignored. With the Polygon tool p becomes the next pending vertex;
// otherwise it starts a drag.
func (d *Document) Begin(p geom.Point) bool {
	if !d.canvas.Bounds().Contains(p) {
		return false
	}
	if d.tool == shape.Polygon {
		d.pending = append(d.pending, p)
		d.changed()
		return true
	}
	start := p
	d.start = &start
	d.preview = nil
	return true
}

// Update moves the free end of the drag to p, clamped to the canvas, and
// rebuilds the preview with the current style.
func (d *Document) Update(p geom.Point) bool {
	if d.start == nil {
		return false
	}
	p = d.canvas.Bounds().Clamp(p)
	s := d.newShape(*d.start, p)
	d.preview = &s
	d.changed()
	return true
}

// Commit ends the drag, keeping the preview or, if the pointer never moved,
// a zero-size shape at the start point.
func (d *Document) Commit() bool {
	if d.start == nil {
		return false
	}
	var s shape.Shape
	if d.preview != nil {
		s = *d.preview
	} else {
		s = d.newShape(*d.start, *d.start)
	}
	d.committed = append(d.committed, s)
	d.history.Commit(d.committed)
	d.preview = nil
	d.start = nil
	d.changed()
	return true
}

// FinishPolygon commits the pending vertices as a Polygon. Fewer than three
// vertices leaves everything as it is.
func (d *Document) FinishPolygon() bool {
	if len(d.pending) <= 2 {
		return false
	}
	s := shape.Shape{
		Kind:     shape.Polygon,
		Vertices: d.pending,
		Stroke:   d.style.Stroke,
		Fill:     d.style.fillFor(shape.Polygon),
		Width:    d.style.Width,
	}
	d.committed = append(d.committed, s)
	d.history.Commit(d.committed)
	d.pending = nil
	d.changed()
	return true
}

// Undo restores the committed list to the previous snapshot.
func (d *Document) Undo() bool {
	shapes, ok := d.history.Undo()
	if !ok {
		return false
	}
	d.committed = shapes
	d.changed()
	return true
}

// HistoryLen is the number of undo steps available.
func (d *Document) HistoryLen() int { return d.history.Len() }

// Shapes returns a copy of the committed shapes in paint order.
func (d *Document) Shapes() []shape.Shape { return shape.CloneAll(d.committed) }

// Preview returns the shape being dragged, if any.
func (d *Document) Preview() (shape.Shape, bool) {
	if d.preview == nil {
		return shape.Shape{}, false
	}
	return d.preview.Clone(), true
}

// Pending returns the polygon vertices placed so far.
func (d *Document) Pending() []geom.Point {
	return append([]geom.Point(nil), d.pending...)
}

func (d *Document) newShape(a, b geom.Point) shape.Shape {
	return shape.Shape{
		Kind:   d.tool,
		Start:  a,
		End:    b,
		Stroke: d.style.Stroke,
		Fill:   d.style.fillFor(d.tool),
		Width:  d.style.Width,
	}
}
