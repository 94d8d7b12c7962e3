// Package shape holds the drawable primitives placed on a canvas.
package shape

import (
	"fmt"
	"strings"

	"github.com/example/shapecanvas/internal/geom"
)

// Kind identifies a primitive. It doubles as the drawing tool that creates it.
type Kind int

const (
	Line Kind = iota
	Rectangle
	Oval
	Polygon
)

var kindNames = [...]string{"Line", "Rectangle", "Oval", "Polygon"}

// Kinds lists every primitive in toolbar order.
func Kinds() []Kind { return []Kind{Line, Rectangle, Oval, Polygon} }

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Closed reports whether the primitive encloses an area that can be filled.
func (k Kind) Closed() bool { return k != Line }

// ParseKind accepts a kind name or a common abbreviation, ignoring case.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "line", "l":
		return Line, nil
	case "rectangle", "rect", "r":
		return Rectangle, nil
	case "oval", "ellipse", "o":
		return Oval, nil
	case "polygon", "poly", "p":
		return Polygon, nil
	}
	return Line, fmt.Errorf("unknown shape %q", s)
}

// Box is a normalized bounding box with non-negative extent.
type Box struct {
	X, Y, W, H int
}

// Shape is one placed primitive. Line, Rectangle and Oval use Start and End;
// Polygon uses Vertices. A nil Fill means the shape is not filled.
type Shape struct {
	Kind     Kind
	Start    geom.Point
	End      geom.Point
	Vertices []geom.Point
	Stroke   RGB
	Fill     *RGB
	Width    int
}

// Bounds returns the box covered by the shape's defining points.
// Start and End may be in any order.
func (s Shape) Bounds() Box {
	if s.Kind == Polygon {
		if len(s.Vertices) == 0 {
			return Box{}
		}
		minX, minY := s.Vertices[0].X, s.Vertices[0].Y
		maxX, maxY := minX, minY
		for _, v := range s.Vertices[1:] {
			minX, maxX = min(minX, v.X), max(maxX, v.X)
			minY, maxY = min(minY, v.Y), max(maxY, v.Y)
		}
		return Box{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
	}
	return Box{
		X: min(s.Start.X, s.End.X),
		Y: min(s.Start.Y, s.End.Y),
		W: absInt(s.Start.X - s.End.X),
		H: absInt(s.Start.Y - s.End.Y),
	}
}

// Filled reports whether a fill pass applies. Lines never fill.
func (s Shape) Filled() bool { return s.Fill != nil && s.Kind.Closed() }

// Clone returns a copy that shares no memory with s.
func (s Shape) Clone() Shape {
	out := s
	if s.Vertices != nil {
		out.Vertices = append([]geom.Point(nil), s.Vertices...)
	}
	if s.Fill != nil {
		f := *s.Fill
		out.Fill = &f
	}
	return out
}

// Equal compares two shapes by value.
func (s Shape) Equal(o Shape) bool {
	if s.Kind != o.Kind || s.Start != o.Start || s.End != o.End || s.Stroke != o.Stroke || s.Width != o.Width {
		return false
	}
	if (s.Fill == nil) != (o.Fill == nil) || (s.Fill != nil && *s.Fill != *o.Fill) {
		return false
	}
	if len(s.Vertices) != len(o.Vertices) {
		return false
	}
	for i := range s.Vertices {
		if s.Vertices[i] != o.Vertices[i] {
			return false
		}
	}
	return true
}

func (s Shape) String() string {
	var b strings.Builder
	b.WriteString(s.Kind.String())
	if s.Kind == Polygon {
		for _, v := range s.Vertices {
			b.WriteString(" ")
			b.WriteString(v.String())
		}
	} else {
		fmt.Fprintf(&b, " %v-%v", s.Start, s.End)
	}
	fmt.Fprintf(&b, " stroke=%s width=%d", s.Stroke.Hex(), s.Width)
	if s.Fill != nil {
		fmt.Fprintf(&b, " fill=%s", s.Fill.Hex())
	}
	return b.String()
}

// CloneAll deep-copies a list of shapes. The result is never nil.
func CloneAll(in []Shape) []Shape {
	out := make([]Shape, len(in))
	for i, s := range in {
		out[i] = s.Clone()
	}
	return out
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
