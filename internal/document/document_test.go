package document

import (
	"errors"
	"testing"

	"github.com/example/shapecanvas/internal/geom"
	"github.com/example/shapecanvas/internal/shape"
)

func TestDragRectangleThenUndo(t *testing.T) {
	d := New(WithTool(shape.Rectangle))
	if !d.Begin(geom.Pt(50, 40)) {
		t.Fatalf("begin inside canvas rejected")
	}
	d.Update(geom.Pt(30, 35))
	d.Update(geom.Pt(10, 10))
	if !d.Commit() {
		t.Fatalf("commit failed")
	}
	shapes := d.Shapes()
	if len(shapes) != 1 {
		t.Fatalf("got %d shapes", len(shapes))
	}
	got := shapes[0]
	if got.Kind != shape.Rectangle || got.Start != geom.Pt(50, 40) || got.End != geom.Pt(10, 10) {
		t.Fatalf("unexpected shape %v", got)
	}
	if got.Bounds() != (shape.Box{X: 10, Y: 10, W: 40, H: 30}) {
		t.Fatalf("bounds = %+v", got.Bounds())
	}
	if d.HistoryLen() != 1 {
		t.Fatalf("history len = %d", d.HistoryLen())
	}
	if _, ok := d.Preview(); ok {
		t.Fatalf("preview should be cleared after commit")
	}
	if !d.Undo() || len(d.Shapes()) != 0 {
		t.Fatalf("undo should empty the document")
	}
	if d.Undo() {
		t.Fatalf("second undo should be a no-op")
	}
	if len(d.Shapes()) != 0 || d.HistoryLen() != 0 {
		t.Fatalf("empty undo changed state")
	}
}

func TestPolygonNeedsThreeVertices(t *testing.T) {
	d := New()
	d.SwitchTool(shape.Polygon)
	d.Begin(geom.Pt(100, 100))
	d.Begin(geom.Pt(200, 100))
	if d.FinishPolygon() {
		t.Fatalf("finish with two vertices should be a no-op")
	}
	if len(d.Shapes()) != 0 || len(d.Pending()) != 2 {
		t.Fatalf("no-op finish changed state: shapes=%d pending=%d", len(d.Shapes()), len(d.Pending()))
	}
	d.Begin(geom.Pt(150, 180))
	if !d.FinishPolygon() {
		t.Fatalf("finish with three vertices failed")
	}
	shapes := d.Shapes()
	if len(shapes) != 1 || shapes[0].Kind != shape.Polygon {
		t.Fatalf("unexpected shapes %v", shapes)
	}
	want := []geom.Point{{X: 100, Y: 100}, {X: 200, Y: 100}, {X: 150, Y: 180}}
	for i, v := range shapes[0].Vertices {
		if v != want[i] {
			t.Fatalf("vertex %d = %v, want %v", i, v, want[i])
		}
	}
	if len(d.Pending()) != 0 || d.HistoryLen() != 1 {
		t.Fatalf("pending=%d history=%d", len(d.Pending()), d.HistoryLen())
	}
}

func TestBeginOutsideCanvasIgnored(t *testing.T) {
	d := New()
	if d.Begin(geom.Pt(-1, 10)) || d.Begin(geom.Pt(801, 10)) {
		t.Fatalf("press outside canvas accepted")
	}
	if d.Drawing() || d.Commit() {
		t.Fatalf("commit without start should be a no-op")
	}
	if !d.Begin(geom.Pt(800, 600)) {
		t.Fatalf("canvas edge should be accepted")
	}
	d.SwitchTool(shape.Polygon)
	if d.Begin(geom.Pt(900, 900)) || len(d.Pending()) != 0 {
		t.Fatalf("polygon vertex outside canvas accepted")
	}
}

func TestUpdateClampsAndKeepsCommitted(t *testing.T) {
	d := New(WithTool(shape.Line))
	d.Begin(geom.Pt(10, 10))
	d.Update(geom.Pt(2000, -50))
	p, ok := d.Preview()
	if !ok || p.End != geom.Pt(800, 0) {
		t.Fatalf("preview = %v, %v", p, ok)
	}
	if len(d.Shapes()) != 0 {
		t.Fatalf("update must not commit")
	}
	if d.Update(geom.Pt(1, 1)) != true {
		t.Fatalf("update while drawing should succeed")
	}
	d.Commit()
	if d.Update(geom.Pt(5, 5)) {
		t.Fatalf("update after commit should be ignored")
	}
}

func TestCommitWithoutDragIsDegenerate(t *testing.T) {
	d := New(WithTool(shape.Oval))
	d.Begin(geom.Pt(40, 40))
	d.Commit()
	s := d.Shapes()[0]
	if s.Start != s.End || s.Start != geom.Pt(40, 40) {
		t.Fatalf("degenerate shape = %v", s)
	}
}

func TestSwitchToolClearsTransientState(t *testing.T) {
	d := New(WithTool(shape.Polygon))
	d.Begin(geom.Pt(1, 1))
	d.Begin(geom.Pt(5, 1))
	d.SwitchTool(shape.Polygon)
	if len(d.Pending()) != 0 {
		t.Fatalf("switch should clear pending vertices")
	}
	d.SwitchTool(shape.Rectangle)
	d.Begin(geom.Pt(1, 1))
	d.Update(geom.Pt(9, 9))
	d.SwitchTool(shape.Line)
	if _, ok := d.Preview(); ok || d.Drawing() {
		t.Fatalf("switch should clear preview and start")
	}
}

func TestStyleAppliedAtCreation(t *testing.T) {
	d := New(WithTool(shape.Rectangle))
	d.SetStyle(Style{Stroke: shape.Red, FillColor: shape.White, FillEnabled: true, Width: 42})
	if d.Style().Width != MaxWidth {
		t.Fatalf("width should clamp to %d, got %d", MaxWidth, d.Style().Width)
	}
	d.Begin(geom.Pt(0, 0))
	d.Update(geom.Pt(10, 10))
	d.Commit()
	d.SetStyle(DefaultStyle())
	s := d.Shapes()[0]
	if s.Stroke != shape.Red || s.Fill == nil || *s.Fill != shape.White || s.Width != MaxWidth {
		t.Fatalf("shape did not keep creation style: %v", s)
	}

	d.SwitchTool(shape.Line)
	d.SetStyle(Style{Stroke: shape.Black, FillColor: shape.Red, FillEnabled: true, Width: 0})
	d.Begin(geom.Pt(0, 0))
	d.Commit()
	if line := d.Shapes()[1]; line.Fill != nil || line.Width != MinWidth {
		t.Fatalf("line should have no fill and min width: %v", line)
	}
}

func TestUndoIsInverseOfCommit(t *testing.T) {
	d := New(WithTool(shape.Line))
	for i := 0; i < 4; i++ {
		before := d.Shapes()
		d.Begin(geom.Pt(i, i))
		d.Update(geom.Pt(i+10, i+20))
		d.Commit()
		d.Undo()
		after := d.Shapes()
		if len(after) != len(before) {
			t.Fatalf("undo did not restore list: %v vs %v", after, before)
		}
		for j := range before {
			if !before[j].Equal(after[j]) {
				t.Fatalf("shape %d differs after undo", j)
			}
		}
		// Keep one shape per round so later rounds start non-empty.
		d.Begin(geom.Pt(i, i))
		d.Commit()
	}
	if len(d.Shapes()) != 4 {
		t.Fatalf("got %d shapes", len(d.Shapes()))
	}
}

func TestCommitAfterUndoDropsUndoneShape(t *testing.T) {
	d := New(WithTool(shape.Line))
	d.Begin(geom.Pt(0, 0))
	d.Update(geom.Pt(100, 50))
	d.Commit()
	first := d.Shapes()[0]

	d.SwitchTool(shape.Oval)
	d.Begin(geom.Pt(20, 20))
	d.Update(geom.Pt(60, 40))
	d.Commit()
	undone := d.Shapes()[1]
	d.Undo()

	d.SwitchTool(shape.Rectangle)
	d.Begin(geom.Pt(5, 5))
	d.Update(geom.Pt(15, 25))
	d.Commit()
	shapes := d.Shapes()
	if len(shapes) != 2 {
		t.Fatalf("got %d shapes, want 2: %v", len(shapes), shapes)
	}
	if !shapes[0].Equal(first) {
		t.Fatalf("first shape changed: %v vs %v", shapes[0], first)
	}
	want := shape.Shape{Kind: shape.Rectangle, Start: geom.Pt(5, 5), End: geom.Pt(15, 25), Stroke: DefaultStyle().Stroke, Width: DefaultStyle().Width}
	if !shapes[1].Equal(want) {
		t.Fatalf("second shape = %v, want %v", shapes[1], want)
	}
	for _, s := range shapes {
		if s.Equal(undone) {
			t.Fatalf("undone shape came back: %v", shapes)
		}
	}
	if d.Undo(); len(d.Shapes()) != 1 || !d.Shapes()[0].Equal(first) {
		t.Fatalf("undo after recommit = %v", d.Shapes())
	}
}

func TestShapesReturnsCopies(t *testing.T) {
	d := New(WithTool(shape.Polygon))
	d.Begin(geom.Pt(1, 1))
	d.Begin(geom.Pt(2, 5))
	d.Begin(geom.Pt(6, 1))
	d.FinishPolygon()
	got := d.Shapes()
	got[0].Vertices[0] = geom.Pt(99, 99)
	if d.Shapes()[0].Vertices[0] != geom.Pt(1, 1) {
		t.Fatalf("caller mutated committed shape")
	}
}

func TestResizeAndBackground(t *testing.T) {
	d := New(WithCanvas(Canvas{Width: 100, Height: 50, Background: shape.Black}))
	if d.Canvas().Width != 100 || d.Canvas().Background != shape.Black {
		t.Fatalf("canvas option not applied: %+v", d.Canvas())
	}
	if err := d.Resize(0, 10); !errors.Is(err, ErrInvalidCanvasSize) {
		t.Fatalf("expected ErrInvalidCanvasSize, got %v", err)
	}
	if err := d.Resize(20, -1); !errors.Is(err, ErrInvalidCanvasSize) {
		t.Fatalf("expected ErrInvalidCanvasSize, got %v", err)
	}
	if err := d.Resize(300, 200); err != nil {
		t.Fatalf("resize: %v", err)
	}
	if d.Canvas().Width != 300 || d.Canvas().Height != 200 {
		t.Fatalf("resize not applied: %+v", d.Canvas())
	}
	d.SetBackground(shape.Red)
	if d.Canvas().Background != shape.Red {
		t.Fatalf("background not applied")
	}
	ignored := New(WithCanvas(Canvas{Width: -5, Height: 5}))
	if ignored.Canvas() != DefaultCanvas() {
		t.Fatalf("invalid canvas option should be ignored")
	}
}

func TestChangeListenerFires(t *testing.T) {
	n := 0
	d := New(WithChangeListener(func() { n++ }))
	d.Begin(geom.Pt(1, 1))
	d.Update(geom.Pt(3, 3))
	d.Commit()
	d.Undo()
	if n != 3 {
		t.Fatalf("listener fired %d times, want 3", n)
	}
	d.OnChange(func() { n += 10 })
	d.SwitchTool(shape.Oval)
	if n != 14 {
		t.Fatalf("listener count = %d", n)
	}
}
