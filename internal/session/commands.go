package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/example/shapecanvas/internal/document"
	"github.com/example/shapecanvas/internal/geom"
	"github.com/example/shapecanvas/internal/shape"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("usage")
	ErrUnknownFormat  = errors.New("unknown format")
	ErrNoClipboard    = errors.New("clipboard not available")
)

// CommandHelp lists the text commands in the order help prints them.
var CommandHelp = []struct{ Usage, Summary string }{
	{"tool line|rect|oval|polygon", "select the drawing tool"},
	{"color <color>", "set the stroke color"},
	{"fill <color>|on|off", "set the fill color or toggle filling"},
	{"width <1-10>", "set the stroke width"},
	{"background <color>", "set the canvas color"},
	{"size <w> <h>", "resize the canvas"},
	{"down <x> <y>", "press at a device pixel"},
	{"move <x> <y>", "drag to a device pixel"},
	{"up", "release and commit the drag"},
	{"finish", "close the polygon being built"},
	{"undo", "revert the last commit"},
	{"pan <dx> <dy>", "shift the view"},
	{"zoom <x> <y> in|out", "zoom one step around a device pixel"},
	{"home", "reset pan and zoom"},
	{"code", "print the generated program"},
	{"save code|png|pdf <file>", "write the drawing to a file"},
	{"copy code|image", "copy the drawing to the clipboard"},
	{"shapes", "list committed shapes"},
	{"status", "show tool, style and view"},
	{"help", "show this list"},
}

// Exec runs one command line. Blank lines and # comments do nothing.
func (s *Session) Exec(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}
	args := strings.Fields(line)
	name, args := strings.ToLower(args[0]), args[1:]
	switch name {
	case "tool":
		if len(args) != 1 {
			return usage(name)
		}
		k, err := shape.ParseKind(args[0])
		if err != nil {
			return fmt.Errorf("tool: %w", err)
		}
		s.Doc.SwitchTool(k)
	case "color":
		if len(args) != 1 {
			return usage(name)
		}
		c, err := shape.ParseColor(args[0])
		if err != nil {
			return fmt.Errorf("color: %w", err)
		}
		st := s.Doc.Style()
		st.Stroke = c
		s.Doc.SetStyle(st)
	case "fill":
		if len(args) != 1 {
			return usage(name)
		}
		st := s.Doc.Style()
		switch strings.ToLower(args[0]) {
		case "on":
			st.FillEnabled = true
		case "off":
			st.FillEnabled = false
		default:
			c, err := shape.ParseColor(args[0])
			if err != nil {
				return fmt.Errorf("fill: %w", err)
			}
			st.FillColor = c
			st.FillEnabled = true
		}
		s.Doc.SetStyle(st)
	case "width":
		if len(args) != 1 {
			return usage(name)
		}
		w, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("width: %w", err)
		}
		st := s.Doc.Style()
		st.Width = w
		s.Doc.SetStyle(st)
	case "background":
		if len(args) != 1 {
			return usage(name)
		}
		c, err := shape.ParseColor(args[0])
		if err != nil {
			return fmt.Errorf("background: %w", err)
		}
		s.Doc.SetBackground(c)
	case "size":
		if len(args) != 2 {
			return usage(name)
		}
		w, errW := strconv.Atoi(args[0])
		h, errH := strconv.Atoi(args[1])
		if errW != nil || errH != nil {
			return fmt.Errorf("size %s %s: %w", args[0], args[1], document.ErrInvalidCanvasSize)
		}
		if err := s.Doc.Resize(w, h); err != nil {
			return fmt.Errorf("size: %w", err)
		}
	case "down", "move", "zoom", "pan":
		return s.execPointer(name, args)
	case "up":
		s.Release()
	case "finish":
		s.Finish()
	case "undo":
		s.Undo()
	case "home":
		s.View.Reset()
	case "code":
		return s.WriteCode(s.out)
	case "save":
		if len(args) != 2 {
			return usage(name)
		}
		return s.Save(strings.ToLower(args[0]), args[1])
	case "copy":
		if len(args) != 1 {
			return usage(name)
		}
		return s.Copy(strings.ToLower(args[0]))
	case "shapes":
		for i, sh := range s.Doc.Shapes() {
			fmt.Fprintf(s.out, "%d: %v\n", i+1, sh)
		}
	case "status":
		s.writeStatus()
	case "help":
		for _, h := range CommandHelp {
			fmt.Fprintf(s.out, "  %-28s %s\n", h.Usage, h.Summary)
		}
	default:
		return fmt.Errorf("%q: %w", name, ErrUnknownCommand)
	}
	return nil
}

func (s *Session) execPointer(name string, args []string) error {
	want := 2
	if name == "zoom" {
		want = 3
	}
	if len(args) != want {
		return usage(name)
	}
	x, errX := strconv.Atoi(args[0])
	y, errY := strconv.Atoi(args[1])
	if errX != nil || errY != nil {
		return fmt.Errorf("%s: coordinates must be integers: %w", name, ErrUsage)
	}
	p := geom.Pt(x, y)
	switch name {
	case "down":
		s.Press(p)
	case "move":
		s.Drag(p)
	case "pan":
		s.View.Pan(x, y)
	case "zoom":
		var dir geom.Direction
		switch strings.ToLower(args[2]) {
		case "in":
			dir = geom.ZoomIn
		case "out":
			dir = geom.ZoomOut
		default:
			return usage(name)
		}
		s.View.Zoom(p, dir)
	}
	return nil
}

func (s *Session) writeStatus() {
	st := s.Doc.Style()
	c := s.Doc.Canvas()
	fill := "off"
	if st.FillEnabled {
		fill = st.FillColor.Hex()
	}
	fmt.Fprintf(s.out, "tool %s, color %s, fill %s, width %d\n", s.Doc.Tool(), st.Stroke.Hex(), fill, st.Width)
	fmt.Fprintf(s.out, "canvas %dx%d %s, scale %.3f, origin %v\n", c.Width, c.Height, c.Background.Hex(), s.View.Scale, s.View.Origin)
	fmt.Fprintf(s.out, "%d shape(s), %d undo step(s), %d pending vertex(es)\n", len(s.Doc.Shapes()), s.Doc.HistoryLen(), len(s.Doc.Pending()))
}

func usage(name string) error {
	for _, h := range CommandHelp {
		if strings.HasPrefix(h.Usage, name+" ") || h.Usage == name {
			return fmt.Errorf("%w: %s", ErrUsage, h.Usage)
		}
	}
	return fmt.Errorf("%w: %s", ErrUsage, name)
}

// Run executes commands from r, one per line, stopping at the first error.
func (s *Session) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		if err := s.Exec(scanner.Text()); err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}
	}
	return scanner.Err()
}
