// Package appstate is the interactive drawing window built on shiny.
package appstate

import (
	"context"
	"log"
	"sync"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/shapecanvas/internal/session"
	"github.com/example/shapecanvas/internal/theme"
)

// frameDropThreshold caps how many in-flight frames a newer paint may cancel
// in a row, so a steady drag still shows progress.
const frameDropThreshold = 10

// AppState holds application configuration for the UI.
type AppState struct {
	Session  *session.Session
	Theme    *theme.Theme
	SaveDir  string
	BaseName string
	Title    string

	onClose   func()
	closeOnce sync.Once
}

// Option modifies an AppState during creation.
type Option func(*AppState)

// WithSession sets the session the window edits.
func WithSession(s *session.Session) Option { return func(a *AppState) { a.Session = s } }

// WithTheme sets the window colors.
func WithTheme(t *theme.Theme) Option { return func(a *AppState) { a.Theme = t } }

// WithSaveDir sets the directory keyboard saves write to.
func WithSaveDir(dir string) Option { return func(a *AppState) { a.SaveDir = dir } }

// WithBaseName sets the file name, without extension, for PNG and PDF saves.
func WithBaseName(name string) Option { return func(a *AppState) { a.BaseName = name } }

// WithTitle sets the window title.
func WithTitle(title string) Option { return func(a *AppState) { a.Title = title } }

// WithOnClose registers a callback invoked once the window closes.
func WithOnClose(fn func()) Option { return func(a *AppState) { a.onClose = fn } }

// New creates an AppState with defaults for anything not supplied.
func New(opts ...Option) *AppState {
	a := &AppState{SaveDir: ".", BaseName: "drawing", Title: "shapecanvas"}
	for _, o := range opts {
		o(a)
	}
	if a.Session == nil {
		a.Session = session.New()
	}
	if a.Theme == nil {
		a.Theme = theme.Default()
	}
	return a
}

func (a *AppState) notifyClose() {
	a.closeOnce.Do(func() {
		if a.onClose != nil {
			a.onClose()
		}
	})
}

// Run executes the UI loop using shiny's driver.
func (a *AppState) Run() { driver.Main(a.Main) }

// Main runs the window until it is closed.
func (a *AppState) Main(s screen.Screen) {
	ctl := newController(a.Session, a.Theme, a.SaveDir, a.BaseName)

	// Widen the toolbar so every label fits.
	d := &font.Drawer{Face: basicfont.Face7x13}
	for _, lbl := range ctl.tb.labels() {
		if w := d.MeasureString(lbl).Ceil() + 8; w > toolbarWidth {
			toolbarWidth = w
		}
	}
	ctl.tb.layout()

	c := a.Session.Doc.Canvas()
	width := c.Width + toolbarWidth + 40
	height := c.Height + statusHeight + 40
	w, err := s.NewWindow(&screen.NewWindowOptions{Width: width, Height: height, Title: a.Title})
	if err != nil {
		log.Fatalf("new window: %v", err)
	}
	defer w.Release()
	defer a.notifyClose()

	ctl.resize(width, height)
	ctl.home()

	// Document changes from outside the event loop, such as script commands,
	// still need a repaint.
	a.Session.Doc.OnChange(func() { w.Send(paint.Event{}) })

	var paintMu sync.Mutex
	var paintCancel context.CancelFunc
	var dropCount int
	paintCh := make(chan paintState, 1)
	go func() {
		for st := range paintCh {
			ctx, cancel := context.WithCancel(context.Background())
			paintMu.Lock()
			paintCancel = cancel
			paintMu.Unlock()
			drawFrame(ctx, s, w, st)
			paintMu.Lock()
			paintCancel = nil
			if ctx.Err() == nil {
				dropCount = 0
			}
			paintMu.Unlock()
			cancel()
		}
	}()
	defer close(paintCh)

	stop := func() {
		paintMu.Lock()
		if paintCancel != nil {
			paintCancel()
		}
		paintMu.Unlock()
	}

	for {
		var repaint bool
		switch e := w.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				stop()
				return
			}
		case size.Event:
			ctl.resize(e.WidthPx, e.HeightPx)
			repaint = true
		case paint.Event:
			paintMu.Lock()
			if paintCancel != nil && dropCount < frameDropThreshold {
				paintCancel()
				dropCount++
			}
			paintMu.Unlock()
			st := ctl.paintState()
			select {
			case paintCh <- st:
			default:
				<-paintCh
				paintCh <- st
			}
		case mouse.Event:
			repaint = ctl.handleMouse(e)
		case key.Event:
			repaint = ctl.handleKey(e)
		case error:
			log.Printf("window: %v", e)
		}
		if ctl.quit {
			stop()
			return
		}
		if repaint {
			w.Send(paint.Event{})
		}
	}
}
