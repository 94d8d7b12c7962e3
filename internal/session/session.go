// Package session binds a document to a view and exposes the pointer
// gestures and text commands that drive it. The window, the REPL and
// scripted runs all go through a Session.
package session

import (
	"fmt"
	"image"
	"io"
	"log"
	"os"

	"github.com/google/uuid"

	"github.com/example/shapecanvas/internal/codegen"
	"github.com/example/shapecanvas/internal/document"
	"github.com/example/shapecanvas/internal/geom"
	"github.com/example/shapecanvas/internal/render"
)

// Clipboard is where copy commands publish code and images.
type Clipboard interface {
	WriteText(string) error
	WriteImage(image.Image) error
}

// Session is one drawing document plus its view. It is not safe for
// concurrent use.
type Session struct {
	ID   string
	Doc  *document.Document
	View *geom.Transform

	out    io.Writer
	logger *log.Logger
	clip   Clipboard
	onSave func(kind, path string)
	onCopy func(kind string)
}

// Option modifies a Session during creation.
type Option func(*Session)

// WithDocument uses an existing document.
func WithDocument(d *document.Document) Option { return func(s *Session) { s.Doc = d } }

// WithView uses an existing view transform.
func WithView(v *geom.Transform) Option { return func(s *Session) { s.View = v } }

// WithOutput sets where command output such as generated code is written.
func WithOutput(w io.Writer) Option { return func(s *Session) { s.out = w } }

// WithLogger replaces the session logger.
func WithLogger(l *log.Logger) Option { return func(s *Session) { s.logger = l } }

// WithClipboard enables the copy command.
func WithClipboard(c Clipboard) Option { return func(s *Session) { s.clip = c } }

// WithSaveListener is called after a file is written. kind is code, png or pdf.
func WithSaveListener(fn func(kind, path string)) Option { return func(s *Session) { s.onSave = fn } }

// WithCopyListener is called after the clipboard is written. kind is code or image.
func WithCopyListener(fn func(kind string)) Option { return func(s *Session) { s.onCopy = fn } }

// New creates a session with a fresh document and view unless supplied.
func New(opts ...Option) *Session {
	s := &Session{ID: uuid.NewString(), out: os.Stdout}
	for _, o := range opts {
		o(s)
	}
	if s.Doc == nil {
		s.Doc = document.New()
	}
	if s.View == nil {
		s.View = geom.NewTransform()
	}
	if s.logger == nil {
		s.logger = log.New(log.Writer(), fmt.Sprintf("session %s: ", s.ID[:8]), log.Flags())
	}
	return s
}

// Press handles a primary button press at a device pixel.
func (s *Session) Press(device geom.Point) bool {
	return s.Doc.Begin(s.View.ToLogical(device))
}

// Drag moves the free end of the current drag to a device pixel.
func (s *Session) Drag(device geom.Point) bool {
	return s.Doc.Update(s.View.ToLogical(device))
}

// Release ends the current drag.
func (s *Session) Release() bool {
	if !s.Doc.Commit() {
		return false
	}
	s.logger.Printf("committed %d shape(s)", len(s.Doc.Shapes()))
	return true
}

// Finish closes the pending polygon.
func (s *Session) Finish() bool {
	if !s.Doc.FinishPolygon() {
		return false
	}
	s.logger.Printf("committed polygon, %d shape(s)", len(s.Doc.Shapes()))
	return true
}

// Undo reverts the last commit.
func (s *Session) Undo() bool {
	if !s.Doc.Undo() {
		return false
	}
	s.logger.Printf("undo, %d shape(s) left", len(s.Doc.Shapes()))
	return true
}

// Program generates code for the committed shapes.
func (s *Session) Program() codegen.Program {
	return codegen.Generate(s.Doc.Shapes(), s.Doc.Canvas())
}

// Scene captures the current frame through the session's view.
func (s *Session) Scene() render.Scene {
	return render.SceneOf(s.Doc, *s.View)
}

// Image renders the committed drawing at canvas size, ignoring pan and zoom.
func (s *Session) Image() *image.RGBA {
	c := s.Doc.Canvas()
	r := render.NewRaster(c.Width, c.Height)
	sc := render.SceneOf(s.Doc, *geom.NewTransform())
	sc.Preview = nil
	sc.Pending = nil
	render.Render(r, sc)
	return r.Image()
}

// WritePNG encodes Image as PNG.
func (s *Session) WritePNG(w io.Writer) error {
	c := s.Doc.Canvas()
	r := render.NewRasterOn(s.Image())
	if err := r.EncodePNG(w); err != nil {
		return fmt.Errorf("encode %dx%d png: %w", c.Width, c.Height, err)
	}
	return nil
}

// WritePDF writes the committed drawing as a one page PDF.
func (s *Session) WritePDF(w io.Writer) error {
	c := s.Doc.Canvas()
	p := render.NewPDF(float64(c.Width), float64(c.Height), "Generated Drawing")
	sc := render.SceneOf(s.Doc, *geom.NewTransform())
	sc.Preview = nil
	sc.Pending = nil
	render.Render(p, sc)
	return p.Write(w)
}

// WriteCode writes the generated program text.
func (s *Session) WriteCode(w io.Writer) error {
	_, err := s.Program().WriteTo(w)
	return err
}

// Save writes kind (code, png or pdf) to path.
func (s *Session) Save(kind, path string) error {
	var write func(io.Writer) error
	switch kind {
	case "code":
		write = s.WriteCode
	case "png":
		write = s.WritePNG
	case "pdf":
		write = s.WritePDF
	default:
		return fmt.Errorf("save %s: %w", kind, ErrUnknownFormat)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save %s: %w", kind, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("save %s %s: %w", kind, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("save %s %s: %w", kind, path, err)
	}
	s.logger.Printf("saved %s %s", kind, path)
	if s.onSave != nil {
		s.onSave(kind, path)
	}
	return nil
}

// Copy publishes the generated code or the rendered image to the clipboard.
func (s *Session) Copy(kind string) error {
	if s.clip == nil {
		return fmt.Errorf("copy %s: %w", kind, ErrNoClipboard)
	}
	var err error
	switch kind {
	case "code":
		err = s.clip.WriteText(s.Program().String())
	case "image":
		err = s.clip.WriteImage(s.Image())
	default:
		return fmt.Errorf("copy %s: %w", kind, ErrUnknownFormat)
	}
	if err != nil {
		return fmt.Errorf("copy %s: %w", kind, err)
	}
	s.logger.Printf("copied %s to clipboard", kind)
	if s.onCopy != nil {
		s.onCopy(kind)
	}
	return nil
}
