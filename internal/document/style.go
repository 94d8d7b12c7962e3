package document

import (
	"errors"
	"fmt"

	"github.com/example/shapecanvas/internal/geom"
	"github.com/example/shapecanvas/internal/shape"
)

const (
	MinWidth       = 1
	MaxWidth       = 10
	DefaultWidth   = 1
	DefaultCanvasW = 800
	DefaultCanvasH = 600
)

// ErrInvalidCanvasSize is returned for a non-positive canvas dimension.
var ErrInvalidCanvasSize = errors.New("invalid canvas size")

// Style is what a new shape picks up at the moment it is created.
type Style struct {
	Stroke      shape.RGB
	FillColor   shape.RGB
	FillEnabled bool
	Width       int
}

// DefaultStyle draws 1px black outlines with fill off and white fill ready.
func DefaultStyle() Style {
	return Style{Stroke: shape.Black, FillColor: shape.White, Width: DefaultWidth}
}

// ClampWidth keeps a stroke width within [MinWidth, MaxWidth].
func ClampWidth(w int) int {
	if w < MinWidth {
		return MinWidth
	}
	if w > MaxWidth {
		return MaxWidth
	}
	return w
}

func (s Style) fillFor(k shape.Kind) *shape.RGB {
	if !s.FillEnabled || !k.Closed() {
		return nil
	}
	f := s.FillColor
	return &f
}

// Canvas is the logical drawing area.
type Canvas struct {
	Width      int
	Height     int
	Background shape.RGB
}

// DefaultCanvas is an 800x600 white page.
func DefaultCanvas() Canvas {
	return Canvas{Width: DefaultCanvasW, Height: DefaultCanvasH, Background: shape.White}
}

// Bounds returns the clamp and hit area for the canvas.
func (c Canvas) Bounds() geom.Bounds { return geom.Bounds{W: c.Width, H: c.Height} }

// ValidateSize checks a requested canvas size.
func ValidateSize(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%dx%d: %w", w, h, ErrInvalidCanvasSize)
	}
	return nil
}
