// Package geom maps between device pixels and logical canvas coordinates.
package geom

import "fmt"

// Point is an integer position. Whether it is a device or a logical
// coordinate depends on where it came from.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Offset is a device translation. It keeps the fraction left over by zoom
// steps so the anchor point does not drift.
type Offset struct {
	X, Y float64
}

// Off is shorthand for Offset{X: x, Y: y}.
func Off(x, y float64) Offset { return Offset{X: x, Y: y} }

func (o Offset) String() string { return fmt.Sprintf("(%g,%g)", o.X, o.Y) }

// Bounds is the logical drawing area [0,W]x[0,H]. Both edges are inclusive.
type Bounds struct {
	W, H int
}

// Contains reports whether p lies inside b, edges included.
func (b Bounds) Contains(p Point) bool {
	return p.X >= 0 && p.X <= b.W && p.Y >= 0 && p.Y <= b.H
}

// Clamp moves p onto the nearest point inside b.
func (b Bounds) Clamp(p Point) Point {
	return Point{X: clampInt(p.X, 0, b.W), Y: clampInt(p.Y, 0, b.H)}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
