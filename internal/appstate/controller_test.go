package appstate

import (
	"context"
	"image"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"

	"github.com/example/shapecanvas/internal/geom"
	"github.com/example/shapecanvas/internal/session"
	"github.com/example/shapecanvas/internal/shape"
	"github.com/example/shapecanvas/internal/theme"
)

func newTestController(t *testing.T) *controller {
	t.Helper()
	sess := session.New(session.WithOutput(io.Discard), session.WithLogger(log.New(io.Discard, "", 0)))
	c := newController(sess, theme.Default(), t.TempDir(), "drawing")
	c.resize(400, 600)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	return c
}

func at(x, y int, b mouse.Button, d mouse.Direction) mouse.Event {
	return mouse.Event{X: float32(toolbarWidth + x), Y: float32(y), Button: b, Direction: d}
}

func press(r rune) key.Event { return key.Event{Rune: r, Direction: key.DirPress} }

func TestDragDrawsLine(t *testing.T) {
	c := newTestController(t)
	if !c.handleMouse(at(10, 10, mouse.ButtonLeft, mouse.DirPress)) {
		t.Fatalf("press inside the page should repaint")
	}
	c.handleMouse(at(30, 20, mouse.ButtonNone, mouse.DirNone))
	if _, ok := c.sess.Doc.Preview(); !ok {
		t.Fatalf("expected a preview while dragging")
	}
	c.handleMouse(at(60, 50, mouse.ButtonLeft, mouse.DirRelease))
	shapes := c.sess.Doc.Shapes()
	if len(shapes) != 1 || shapes[0].Start != geom.Pt(10, 10) || shapes[0].End != geom.Pt(30, 20) {
		t.Fatalf("release should commit the previewed end, shapes = %v", shapes)
	}
	if c.sess.Doc.Drawing() {
		t.Fatalf("release should end the drag")
	}
}

func TestReleaseWithoutMoveCommitsPoint(t *testing.T) {
	c := newTestController(t)
	c.handleMouse(at(10, 10, mouse.ButtonLeft, mouse.DirPress))
	c.handleMouse(at(40, 40, mouse.ButtonLeft, mouse.DirRelease))
	shapes := c.sess.Doc.Shapes()
	if len(shapes) != 1 || shapes[0].Start != geom.Pt(10, 10) || shapes[0].End != geom.Pt(10, 10) {
		t.Fatalf("shapes = %v", shapes)
	}
}

func TestPressOutsidePageIgnored(t *testing.T) {
	c := newTestController(t)
	c.sess.View.Pan(100, 100)
	c.handleMouse(at(10, 10, mouse.ButtonLeft, mouse.DirPress))
	if c.sess.Doc.Drawing() {
		t.Fatalf("press left of the page should not start a drag")
	}
	// Status bar row.
	c.handleMouse(mouse.Event{X: float32(toolbarWidth + 150), Y: 595, Button: mouse.ButtonLeft, Direction: mouse.DirPress})
	if c.sess.Doc.Drawing() {
		t.Fatalf("press on the status bar should not start a drag")
	}
}

func TestKeysSwitchToolsAndUndo(t *testing.T) {
	c := newTestController(t)
	c.handleKey(press('r'))
	if c.sess.Doc.Tool() != shape.Rectangle {
		t.Fatalf("tool = %v", c.sess.Doc.Tool())
	}
	c.handleMouse(at(5, 5, mouse.ButtonLeft, mouse.DirPress))
	c.handleMouse(at(25, 25, mouse.ButtonLeft, mouse.DirRelease))
	if len(c.sess.Doc.Shapes()) != 1 {
		t.Fatalf("rectangle not committed")
	}

	c.handleKey(key.Event{Rune: -1, Code: key.CodeZ, Modifiers: key.ModControl, Direction: key.DirPress})
	if len(c.sess.Doc.Shapes()) != 0 {
		t.Fatalf("ctrl+z should undo")
	}
	c.handleKey(key.Event{Rune: 'z', Modifiers: key.ModControl, Direction: key.DirPress})
	if c.paintState().message != "nothing to undo" {
		t.Fatalf("expected undo message, got %q", c.paintState().message)
	}

	if c.handleKey(key.Event{Rune: 'r', Direction: key.DirRelease}) {
		t.Fatalf("key release should be ignored")
	}
	if c.handleKey(press('k')) {
		t.Fatalf("unbound key should not repaint")
	}
}

func TestPolygonFinishWithEnter(t *testing.T) {
	c := newTestController(t)
	c.handleKey(press('p'))
	for _, p := range []geom.Point{{X: 100, Y: 100}, {X: 200, Y: 100}} {
		c.handleMouse(at(p.X, p.Y, mouse.ButtonLeft, mouse.DirPress))
		c.handleMouse(at(p.X, p.Y, mouse.ButtonLeft, mouse.DirRelease))
	}
	enter := key.Event{Rune: '\r', Code: key.CodeReturnEnter, Direction: key.DirPress}
	c.handleKey(enter)
	if len(c.sess.Doc.Shapes()) != 0 || len(c.sess.Doc.Pending()) != 2 {
		t.Fatalf("two points must not close a polygon")
	}
	c.handleMouse(at(150, 180, mouse.ButtonLeft, mouse.DirPress))
	c.handleKey(enter)
	shapes := c.sess.Doc.Shapes()
	if len(shapes) != 1 || shapes[0].Kind != shape.Polygon || len(shapes[0].Vertices) != 3 {
		t.Fatalf("shapes = %v", shapes)
	}
	if len(c.paintState().scene.Pending) != 0 {
		t.Fatalf("pending not cleared")
	}
}

func TestPanAndWheelZoom(t *testing.T) {
	c := newTestController(t)
	c.handleMouse(at(200, 100, mouse.ButtonMiddle, mouse.DirPress))
	c.handleMouse(at(210, 95, mouse.ButtonNone, mouse.DirNone))
	c.handleMouse(at(210, 95, mouse.ButtonMiddle, mouse.DirRelease))
	if c.sess.View.Origin != geom.Off(10, -5) {
		t.Fatalf("origin = %v", c.sess.View.Origin)
	}
	c.handleMouse(at(50, 50, mouse.ButtonWheelUp, mouse.DirStep))
	if c.sess.View.Scale <= 1 {
		t.Fatalf("wheel up should zoom in, scale %v", c.sess.View.Scale)
	}
	c.handleKey(press('0'))
	if c.sess.View.Scale != 1 {
		t.Fatalf("home should reset zoom")
	}
}

func TestToolbarClicks(t *testing.T) {
	c := newTestController(t)
	click := func(x, y int, b mouse.Button) {
		c.handleMouse(mouse.Event{X: float32(x), Y: float32(y), Button: b, Direction: mouse.DirPress})
	}
	click(10, 2*buttonHeight+10, mouse.ButtonLeft)
	if c.sess.Doc.Tool() != shape.Oval {
		t.Fatalf("tool button did not select oval: %v", c.sess.Doc.Tool())
	}

	sw := c.tb.swatches
	click(sw[2].Min.X+2, sw[2].Min.Y+2, mouse.ButtonLeft)
	click(sw[4].Min.X+2, sw[4].Min.Y+2, mouse.ButtonRight)
	st := c.sess.Doc.Style()
	if st.Stroke != shape.Palette[2].Color || st.FillColor != shape.Palette[4].Color || !st.FillEnabled {
		t.Fatalf("style after swatches = %+v", st)
	}

	click(c.tb.fill.Min.X+2, c.tb.fill.Min.Y+2, mouse.ButtonLeft)
	if c.sess.Doc.Style().FillEnabled {
		t.Fatalf("fill toggle did not turn fill off")
	}

	click(c.tb.widths[4].Min.X+2, c.tb.widths[4].Min.Y+2, mouse.ButtonLeft)
	if c.sess.Doc.Style().Width != 5 {
		t.Fatalf("width = %d", c.sess.Doc.Style().Width)
	}

	if !c.handleMouse(mouse.Event{X: 10, Y: 10, Direction: mouse.DirNone}) || c.hover != 0 {
		t.Fatalf("hovering a button should repaint and record hover")
	}
}

func TestStyleKeys(t *testing.T) {
	c := newTestController(t)
	c.handleKey(press(']'))
	c.handleKey(press(']'))
	c.handleKey(press('['))
	if c.sess.Doc.Style().Width != 2 {
		t.Fatalf("width = %d", c.sess.Doc.Style().Width)
	}
	c.handleKey(press('x'))
	if c.sess.Doc.Style().Stroke != shape.Palette[len(shape.Palette)-1].Color {
		t.Fatalf("color-prev should wrap to the last palette entry")
	}
	c.handleKey(press('c'))
	c.handleKey(press('c'))
	if c.sess.Doc.Style().Stroke != shape.White {
		t.Fatalf("stroke = %v", c.sess.Doc.Style().Stroke)
	}
	c.handleKey(press('f'))
	if !c.sess.Doc.Style().FillEnabled {
		t.Fatalf("f should toggle fill")
	}
	c.handleKey(press('q'))
	if !c.quit {
		t.Fatalf("q should quit")
	}
}

func TestSaveAndCopyMessages(t *testing.T) {
	c := newTestController(t)
	c.handleKey(key.Event{Rune: 's', Modifiers: key.ModControl, Direction: key.DirPress})
	path := filepath.Join(c.saveDir, "drawing.png")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected %s: %v", path, err)
	}
	if got := c.paintState().message; got != "saved "+path {
		t.Fatalf("message = %q", got)
	}
	c.handleKey(key.Event{Rune: 'e', Modifiers: key.ModControl, Direction: key.DirPress})
	if _, err := os.Stat(filepath.Join(c.saveDir, "GeneratedDrawing.java")); err != nil {
		t.Fatalf("code not saved: %v", err)
	}

	c.handleKey(key.Event{Rune: 'g', Modifiers: key.ModControl, Direction: key.DirPress})
	if got := c.paintState().message; got != "copy failed" {
		t.Fatalf("copy without clipboard should fail, message %q", got)
	}
	later := c.now().Add(3 * time.Second)
	c.now = func() time.Time { return later }
	if c.paintState().message != "" {
		t.Fatalf("message should expire")
	}
}

func TestComposeFrame(t *testing.T) {
	c := newTestController(t)
	if err := c.sess.Exec("size 100 80"); err != nil {
		t.Fatal(err)
	}
	c.home()
	st := c.paintState()
	dst := image.NewRGBA(image.Rect(0, 0, st.width, st.height))
	composeFrame(context.Background(), dst, st)

	th := c.th
	area := c.canvasArea()
	page := pageRect(c.sess.Doc.Canvas(), *c.sess.View).Add(area.Min)
	mid := image.Pt((page.Min.X+page.Max.X)/2, (page.Min.Y+page.Max.Y)/2)
	if got := dst.RGBAAt(mid.X, mid.Y); got != shape.White.RGBA() {
		t.Errorf("page center = %v", got)
	}
	if got := dst.RGBAAt(area.Min.X+5, 5); got != th.Backdrop {
		t.Errorf("backdrop = %v", got)
	}
	if got := dst.RGBAAt(toolbarWidth-4, 2); got != th.ToolActive {
		t.Errorf("active tool button = %v", got)
	}
	if got := dst.RGBAAt(st.width-2, st.height-1); got != th.StatusBackground {
		t.Errorf("status bar = %v", got)
	}

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	blank := image.NewRGBA(dst.Bounds())
	composeFrame(cancelled, blank, st)
	if blank.RGBAAt(toolbarWidth-4, 2).A != 0 {
		t.Errorf("cancelled frame should stop before the toolbar")
	}
}
