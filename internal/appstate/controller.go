package appstate

import (
	"fmt"
	"image"
	"log"
	"path/filepath"
	"time"
	"unicode"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"

	"github.com/example/shapecanvas/internal/document"
	"github.com/example/shapecanvas/internal/geom"
	"github.com/example/shapecanvas/internal/session"
	"github.com/example/shapecanvas/internal/shape"
	"github.com/example/shapecanvas/internal/theme"
)

const messageDuration = 2 * time.Second

// controller turns window events into session calls. It is owned by the
// event loop goroutine.
type controller struct {
	sess     *session.Session
	th       *theme.Theme
	tb       *toolbar
	saveDir  string
	baseName string

	width, height int
	hover         int
	pointer       geom.Point
	panning       bool
	panLast       geom.Point

	message      string
	messageUntil time.Time
	quit         bool

	actions map[string]func()
	keys    map[KeyShortcut]string
	now     func() time.Time
}

func newController(sess *session.Session, th *theme.Theme, saveDir, baseName string) *controller {
	c := &controller{
		sess:     sess,
		th:       th,
		saveDir:  saveDir,
		baseName: baseName,
		hover:    -1,
		actions:  map[string]func(){},
		keys:     map[KeyShortcut]string{},
		now:      time.Now,
	}
	c.tb = newToolbar(th, c.run)
	c.registerActions()
	return c
}

func (c *controller) register(name string, keys KeyboardShortcuts, fn func()) {
	c.actions[name] = fn
	if keys != nil {
		for _, sc := range keys.KeyboardShortcuts() {
			c.keys[sc] = name
		}
	}
}

func (c *controller) registerActions() {
	for _, k := range shape.Kinds() {
		k := k
		r := unicode.ToLower(rune(k.String()[0]))
		c.register("tool-"+k.String(), shortcutList{{Rune: r}}, func() { c.sess.Doc.SwitchTool(k) })
	}
	c.register("finish", shortcutList{{Code: key.CodeReturnEnter}, {Code: key.CodeKeypadEnter}}, func() {
		if !c.sess.Finish() && c.sess.Doc.Tool() == shape.Polygon {
			c.setMessage("a polygon needs at least 3 points")
		}
	})
	c.register("cancel", shortcutList{{Code: key.CodeEscape}}, func() {
		c.sess.Doc.SwitchTool(c.sess.Doc.Tool())
	})
	c.register("undo", ctrl('z', key.CodeZ), func() {
		if !c.sess.Undo() {
			c.setMessage("nothing to undo")
		}
	})
	c.register("copy-image", ctrl('c', key.CodeC), func() { c.copy("image") })
	c.register("copy-code", ctrl('g', key.CodeG), func() { c.copy("code") })
	c.register("save-png", ctrl('s', key.CodeS), func() { c.save("png", c.baseName+".png") })
	c.register("save-pdf", ctrl('p', key.CodeP), func() { c.save("pdf", c.baseName+".pdf") })
	c.register("save-code", ctrl('e', key.CodeE), func() { c.save("code", "GeneratedDrawing.java") })
	c.register("home", shortcutList{{Rune: '0'}}, c.home)
	c.register("zoom-in", shortcutList{{Rune: '+'}, {Rune: '='}}, func() { c.sess.View.Zoom(c.canvasCenter(), geom.ZoomIn) })
	c.register("zoom-out", shortcutList{{Rune: '-'}}, func() { c.sess.View.Zoom(c.canvasCenter(), geom.ZoomOut) })
	c.register("fill", shortcutList{{Rune: 'f'}}, func() {
		st := c.sess.Doc.Style()
		st.FillEnabled = !st.FillEnabled
		c.sess.Doc.SetStyle(st)
	})
	c.register("width-down", shortcutList{{Rune: '['}}, func() { c.setWidth(c.sess.Doc.Style().Width - 1) })
	c.register("width-up", shortcutList{{Rune: ']'}}, func() { c.setWidth(c.sess.Doc.Style().Width + 1) })
	c.register("color-next", shortcutList{{Rune: 'c'}}, func() { c.cycleColor(1) })
	c.register("color-prev", shortcutList{{Rune: 'x'}}, func() { c.cycleColor(-1) })
	c.register("quit", shortcutList{{Rune: 'q'}, {Rune: 'w', Modifiers: key.ModControl}}, func() { c.quit = true })
}

// run triggers a named action. Unknown names are ignored.
func (c *controller) run(name string) {
	if fn, ok := c.actions[name]; ok {
		fn()
	}
}

func (c *controller) setMessage(msg string) {
	c.message = msg
	log.Print(msg)
	c.messageUntil = c.now().Add(messageDuration)
}

func (c *controller) copy(kind string) {
	if err := c.sess.Copy(kind); err != nil {
		log.Printf("copy: %v", err)
		c.setMessage("copy failed")
		return
	}
	c.setMessage(fmt.Sprintf("%s copied to clipboard", kind))
}

func (c *controller) save(kind, name string) {
	path := filepath.Join(c.saveDir, name)
	if err := c.sess.Save(kind, path); err != nil {
		log.Printf("save: %v", err)
		c.setMessage("save failed")
		return
	}
	c.setMessage(fmt.Sprintf("saved %s", path))
}

func (c *controller) setWidth(w int) {
	st := c.sess.Doc.Style()
	st.Width = document.ClampWidth(w)
	c.sess.Doc.SetStyle(st)
}

func (c *controller) cycleColor(step int) {
	st := c.sess.Doc.Style()
	idx := shape.PaletteIndex(st.Stroke) + step
	n := len(shape.Palette)
	idx = ((idx % n) + n) % n
	st.Stroke = shape.Palette[idx].Color
	c.sess.Doc.SetStyle(st)
}

// home resets pan and zoom and centers the page in the canvas area.
func (c *controller) home() {
	c.sess.View.Reset()
	a := c.canvasArea()
	cv := c.sess.Doc.Canvas()
	c.sess.View.Pan(max((a.Dx()-cv.Width)/2, 0), max((a.Dy()-cv.Height)/2, 0))
}

func (c *controller) resize(w, h int) {
	c.width, c.height = w, h
}

// canvasArea is the window region the view transform maps into.
func (c *controller) canvasArea() image.Rectangle {
	return image.Rect(toolbarWidth, 0, c.width, c.height-statusHeight)
}

func (c *controller) canvasCenter() geom.Point {
	a := c.canvasArea()
	return geom.Pt(a.Dx()/2, a.Dy()/2)
}

// devicePoint converts window pixels to the canvas area's device space.
func (c *controller) devicePoint(x, y float32) geom.Point {
	return geom.Pt(int(x)-toolbarWidth, int(y))
}

// handleMouse reports whether the frame needs repainting.
func (c *controller) handleMouse(e mouse.Event) bool {
	repaint := false
	if c.message != "" && c.now().Before(c.messageUntil) && e.Direction == mouse.DirPress {
		c.messageUntil = time.Time{}
		repaint = true
	}
	p := image.Pt(int(e.X), int(e.Y))
	dp := c.devicePoint(e.X, e.Y)
	c.pointer = c.sess.View.ToLogical(dp)

	// Drags keep going when the pointer leaves the canvas; the document
	// clamps the far end.
	if c.sess.Doc.Drawing() {
		switch {
		case e.Button == mouse.ButtonLeft && e.Direction == mouse.DirRelease:
			// Commit what the preview shows; the release pixel is not a move.
			c.sess.Release()
			return true
		case e.Direction == mouse.DirNone:
			return c.sess.Drag(dp) || repaint
		}
	}
	if c.panning {
		switch {
		case e.Button == mouse.ButtonMiddle && e.Direction == mouse.DirRelease:
			c.panning = false
		case e.Direction == mouse.DirNone:
			d := dp.Sub(c.panLast)
			c.panLast = dp
			c.sess.View.Pan(d.X, d.Y)
			return true
		}
		return repaint
	}

	if p.X < toolbarWidth {
		return c.handleToolbar(p, e) || repaint
	}
	if c.hover != -1 {
		c.hover = -1
		repaint = true
	}
	if !p.In(c.canvasArea()) {
		return repaint
	}

	switch e.Button {
	case mouse.ButtonLeft:
		if e.Direction == mouse.DirPress {
			return c.sess.Press(dp) || repaint
		}
	case mouse.ButtonMiddle:
		if e.Direction == mouse.DirPress {
			c.panning = true
			c.panLast = dp
		}
	case mouse.ButtonWheelUp:
		if e.Direction != mouse.DirRelease {
			return c.sess.View.Zoom(dp, geom.ZoomIn) || repaint
		}
	case mouse.ButtonWheelDown:
		if e.Direction != mouse.DirRelease {
			return c.sess.View.Zoom(dp, geom.ZoomOut) || repaint
		}
	}
	// Pointer moves update the coordinate readout in the status bar.
	return repaint || e.Direction == mouse.DirNone
}

func (c *controller) handleToolbar(p image.Point, e mouse.Event) bool {
	kind, idx := c.tb.hit(p)
	hover := -1
	if kind == hitButton {
		hover = idx
	}
	repaint := hover != c.hover
	c.hover = hover
	if e.Direction != mouse.DirPress {
		return repaint
	}
	st := c.sess.Doc.Style()
	switch kind {
	case hitButton:
		if e.Button == mouse.ButtonLeft {
			c.tb.buttons[idx].Activate()
		}
	case hitSwatch:
		col := shape.Palette[idx].Color
		switch e.Button {
		case mouse.ButtonLeft:
			st.Stroke = col
		case mouse.ButtonRight:
			st.FillColor = col
			st.FillEnabled = true
		}
		c.sess.Doc.SetStyle(st)
	case hitFill:
		c.run("fill")
	case hitWidth:
		c.setWidth(document.MinWidth + idx)
	default:
		return repaint
	}
	return true
}

// handleKey reports whether the frame needs repainting.
func (c *controller) handleKey(e key.Event) bool {
	if e.Direction != key.DirPress {
		return false
	}
	mods := e.Modifiers &^ key.ModShift
	name, ok := c.keys[KeyShortcut{Rune: unicode.ToLower(e.Rune), Modifiers: mods}]
	if !ok || e.Rune <= 0 {
		name, ok = c.keys[KeyShortcut{Code: e.Code, Modifiers: mods}]
	}
	if !ok {
		return false
	}
	c.run(name)
	return true
}

func (c *controller) status() string {
	st := c.sess.Doc.Style()
	fill := "off"
	if st.FillEnabled {
		fill = st.FillColor.Hex()
	}
	s := fmt.Sprintf("%s  width %d  color %s  fill %s  zoom %.0f%%  %v  %d shapes",
		c.sess.Doc.Tool(), st.Width, st.Stroke.Hex(), fill, c.sess.View.Scale*100, c.pointer, len(c.sess.Doc.Shapes()))
	if n := len(c.sess.Doc.Pending()); n > 0 && c.sess.Doc.Tool() == shape.Polygon {
		s += fmt.Sprintf("  %d points, Enter to close", n)
	}
	return s
}

func (c *controller) paintState() paintState {
	sc := c.sess.Scene()
	sc.Marker = c.th.Marker
	st := paintState{
		width:   c.width,
		height:  c.height,
		scene:   sc,
		style:   c.sess.Doc.Style(),
		hover:   c.hover,
		status:  c.status(),
		th:      c.th,
		toolbar: c.tb,
	}
	if c.now().Before(c.messageUntil) {
		st.message = c.message
	}
	return st
}
