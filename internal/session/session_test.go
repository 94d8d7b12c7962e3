package session

import (
	"bytes"
	"errors"
	"image"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/shapecanvas/internal/document"
	"github.com/example/shapecanvas/internal/geom"
	"github.com/example/shapecanvas/internal/shape"
)

func newTestSession(t *testing.T, opts ...Option) (*Session, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	opts = append([]Option{WithOutput(&out), WithLogger(log.New(io.Discard, "", 0))}, opts...)
	return New(opts...), &out
}

func TestRectangleScriptThenUndo(t *testing.T) {
	s, _ := newTestSession(t)
	script := `
# drag a rectangle right to left
tool rect
down 50 40
move 30 20
move 10 10
up
`
	if err := s.Run(strings.NewReader(script)); err != nil {
		t.Fatalf("run: %v", err)
	}
	shapes := s.Doc.Shapes()
	if len(shapes) != 1 || shapes[0].Bounds() != (shape.Box{X: 10, Y: 10, W: 40, H: 30}) {
		t.Fatalf("shapes = %v", shapes)
	}
	if s.Doc.HistoryLen() != 1 {
		t.Fatalf("history = %d", s.Doc.HistoryLen())
	}
	if err := s.Exec("undo"); err != nil {
		t.Fatalf("undo: %v", err)
	}
	if len(s.Doc.Shapes()) != 0 || s.Doc.HistoryLen() != 0 {
		t.Fatalf("undo did not empty the document")
	}
	if err := s.Exec("undo"); err != nil {
		t.Fatalf("undo on empty history should not fail: %v", err)
	}
}

func TestPolygonScript(t *testing.T) {
	s, out := newTestSession(t)
	script := "tool polygon\ndown 100 100\ndown 200 100\nfinish\n"
	if err := s.Run(strings.NewReader(script)); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(s.Doc.Shapes()) != 0 || len(s.Doc.Pending()) != 2 {
		t.Fatalf("two vertices should not commit")
	}
	if err := s.Run(strings.NewReader("down 150 180\nfinish\ncode\n")); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(s.Doc.Shapes()) != 1 || s.Doc.HistoryLen() != 1 {
		t.Fatalf("polygon not committed")
	}
	if !strings.Contains(out.String(), "g2d.drawPolygon(new int[] {100, 200, 150}, new int[] {100, 100, 180}, 3);") {
		t.Fatalf("generated code missing polygon:\n%s", out.String())
	}
}

func TestPointerUsesView(t *testing.T) {
	s, _ := newTestSession(t)
	cmds := []string{"pan 100 50", "zoom 100 50 in", "tool line", "down 100 50", "move 216 166", "up"}
	for _, c := range cmds {
		if err := s.Exec(c); err != nil {
			t.Fatalf("%s: %v", c, err)
		}
	}
	got := s.Doc.Shapes()[0]
	if got.Start != geom.Pt(0, 0) || got.End != geom.Pt(105, 105) {
		t.Fatalf("line = %v", got)
	}
	if err := s.Exec("home"); err != nil || s.View.Scale != 1 || s.View.Origin != (geom.Offset{}) {
		t.Fatalf("home did not reset view: %+v", s.View)
	}
}

func TestStyleCommands(t *testing.T) {
	s, out := newTestSession(t)
	for _, c := range []string{"color red", "fill #00FF00", "width 25", "background navy", "tool oval", "down 1 1", "move 9 9", "up", "status", "shapes"} {
		if err := s.Exec(c); err != nil {
			t.Fatalf("%s: %v", c, err)
		}
	}
	sh := s.Doc.Shapes()[0]
	if sh.Stroke != shape.Red || sh.Fill == nil || *sh.Fill != (shape.RGB{G: 255}) || sh.Width != document.MaxWidth {
		t.Fatalf("shape style = %v", sh)
	}
	if s.Doc.Canvas().Background != (shape.RGB{B: 128}) {
		t.Fatalf("background = %v", s.Doc.Canvas().Background)
	}
	for _, want := range []string{"tool Oval", "fill #00FF00", "1 shape(s)", "1: Oval"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
	if err := s.Exec("fill off"); err != nil || s.Doc.Style().FillEnabled {
		t.Fatalf("fill off: %v", err)
	}
	if err := s.Exec("fill on"); err != nil || !s.Doc.Style().FillEnabled {
		t.Fatalf("fill on: %v", err)
	}
}

func TestSizeErrors(t *testing.T) {
	s, _ := newTestSession(t)
	for _, c := range []string{"size 0 10", "size -3 10", "size abc 10", "size 10 1.5"} {
		if err := s.Exec(c); !errors.Is(err, document.ErrInvalidCanvasSize) {
			t.Errorf("%s: expected ErrInvalidCanvasSize, got %v", c, err)
		}
	}
	if err := s.Exec("size 320 200"); err != nil {
		t.Fatalf("size: %v", err)
	}
	if c := s.Doc.Canvas(); c.Width != 320 || c.Height != 200 {
		t.Fatalf("canvas = %+v", c)
	}
}

func TestCommandErrors(t *testing.T) {
	s, _ := newTestSession(t)
	if err := s.Exec("jump"); !errors.Is(err, ErrUnknownCommand) {
		t.Fatalf("expected ErrUnknownCommand, got %v", err)
	}
	for _, c := range []string{"tool", "down 1", "zoom 1 1 sideways", "move a b", "save png"} {
		if err := s.Exec(c); !errors.Is(err, ErrUsage) {
			t.Errorf("%s: expected ErrUsage, got %v", c, err)
		}
	}
	if err := s.Exec("tool hexagon"); err == nil {
		t.Fatalf("expected error for unknown tool")
	}
	if err := s.Exec("copy code"); !errors.Is(err, ErrNoClipboard) {
		t.Fatalf("expected ErrNoClipboard, got %v", err)
	}
	err := s.Run(strings.NewReader("tool line\nbogus\n"))
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("expected line number in error, got %v", err)
	}
}

type fakeClipboard struct {
	text string
	img  image.Image
	err  error
}

func (f *fakeClipboard) WriteText(s string) error       { f.text = s; return f.err }
func (f *fakeClipboard) WriteImage(i image.Image) error { f.img = i; return f.err }

func TestCopy(t *testing.T) {
	clip := &fakeClipboard{}
	var copied []string
	s, _ := newTestSession(t, WithClipboard(clip), WithCopyListener(func(kind string) { copied = append(copied, kind) }))
	if err := s.Run(strings.NewReader("size 40 30\ndown 1 1\nmove 20 20\nup\ncopy code\ncopy image\n")); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(clip.text, "g2d.drawLine(1, 1, 20, 20);") {
		t.Fatalf("clipboard text:\n%s", clip.text)
	}
	if clip.img == nil || clip.img.Bounds() != image.Rect(0, 0, 40, 30) {
		t.Fatalf("clipboard image bounds wrong")
	}
	if strings.Join(copied, ",") != "code,image" {
		t.Fatalf("copy listener got %v", copied)
	}
	if err := s.Exec("copy svg"); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
	clip.err = errors.New("no display")
	if err := s.Exec("copy code"); err == nil || !strings.Contains(err.Error(), "no display") {
		t.Fatalf("expected wrapped clipboard error, got %v", err)
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	var saved []string
	s, _ := newTestSession(t, WithSaveListener(func(kind, path string) { saved = append(saved, kind+":"+filepath.Base(path)) }))
	if err := s.Run(strings.NewReader("tool rect\ndown 5 5\nmove 50 40\nup\n")); err != nil {
		t.Fatalf("run: %v", err)
	}
	for kind, prefix := range map[string]string{"png": "\x89PNG", "pdf": "%PDF-", "code": "import java.awt.*;"} {
		path := filepath.Join(dir, "out."+kind)
		if err := s.Exec("save " + kind + " " + path); err != nil {
			t.Fatalf("save %s: %v", kind, err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read %s: %v", path, err)
		}
		if !bytes.HasPrefix(data, []byte(prefix)) {
			t.Fatalf("%s output has wrong header", kind)
		}
	}
	if len(saved) != 3 {
		t.Fatalf("save listener calls = %v", saved)
	}
	if err := s.Save("bmp", filepath.Join(dir, "x.bmp")); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
	if err := s.Save("png", filepath.Join(dir, "missing", "x.png")); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}

func TestImageIgnoresViewAndPreview(t *testing.T) {
	s, _ := newTestSession(t)
	if err := s.Run(strings.NewReader("size 20 20\nbackground black\nzoom 0 0 in\npan 7 7\ndown 1 1\nmove 5 5\n")); err != nil {
		t.Fatalf("run: %v", err)
	}
	img := s.Image()
	if img.Bounds() != image.Rect(0, 0, 20, 20) {
		t.Fatalf("image bounds = %v", img.Bounds())
	}
	if got := img.RGBAAt(0, 0); got.R != 0 || got.A != 255 {
		t.Fatalf("background at origin = %v", got)
	}
	if len(s.ID) != 36 {
		t.Fatalf("session id %q is not a uuid", s.ID)
	}
}
