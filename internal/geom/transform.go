package geom

import "math"

const (
	DefaultScale      = 1.0
	DefaultMinScale   = 0.5
	DefaultMaxScale   = 5.0
	DefaultZoomFactor = 1.1
)

// Direction selects which way a zoom step goes.
type Direction int

const (
	ZoomIn Direction = iota
	ZoomOut
)

func (d Direction) String() string {
	if d == ZoomIn {
		return "in"
	}
	return "out"
}

// Transform is the view of the canvas: a uniform scale followed by a
// translation. device = logical*Scale + Origin.
type Transform struct {
	Scale    float64
	Origin   Offset
	MinScale float64
	MaxScale float64
	Factor   float64
}

// Option configures a Transform created by NewTransform.
type Option func(*Transform)

// WithScaleLimits bounds the zoom range. Invalid pairs are ignored.
func WithScaleLimits(min, max float64) Option {
	return func(t *Transform) {
		if min > 0 && max >= min {
			t.MinScale = min
			t.MaxScale = max
		}
	}
}

// WithZoomFactor sets the multiplier applied per zoom step.
func WithZoomFactor(f float64) Option {
	return func(t *Transform) {
		if f > 1 {
			t.Factor = f
		}
	}
}

// WithOrigin starts the view at a device offset.
func WithOrigin(p Point) Option {
	return func(t *Transform) { t.Origin = Off(float64(p.X), float64(p.Y)) }
}

// NewTransform returns an identity view with the default zoom limits.
func NewTransform(opts ...Option) *Transform {
	t := &Transform{
		Scale:    DefaultScale,
		MinScale: DefaultMinScale,
		MaxScale: DefaultMaxScale,
		Factor:   DefaultZoomFactor,
	}
	for _, o := range opts {
		o(t)
	}
	t.Scale = math.Max(t.MinScale, math.Min(t.MaxScale, t.Scale))
	return t
}

// ToLogical converts a device pixel to canvas coordinates, truncating
// toward zero.
func (t *Transform) ToLogical(device Point) Point {
	x, y := t.logical(device)
	return Point{X: int(snap(x)), Y: int(snap(y))}
}

func (t *Transform) logical(device Point) (x, y float64) {
	return (float64(device.X) - t.Origin.X) / t.Scale,
		(float64(device.Y) - t.Origin.Y) / t.Scale
}

// snap removes rounding noise so values a hair under an integer do not
// truncate to the one below.
func snap(v float64) float64 {
	if r := math.Round(v); math.Abs(v-r) < 1e-9 {
		return r
	}
	return v
}

// ToDevice converts a logical coordinate to an unrounded device position.
func (t *Transform) ToDevice(logical Point) (x, y float64) {
	return float64(logical.X)*t.Scale + t.Origin.X,
		float64(logical.Y)*t.Scale + t.Origin.Y
}

// Pan shifts the view by a device delta. There is no bound on the origin.
func (t *Transform) Pan(dx, dy int) {
	t.Origin.X += float64(dx)
	t.Origin.Y += float64(dy)
}

// Zoom scales the view by one step around anchor, a device pixel that keeps
// showing the same logical point. It reports false, leaving the view
// untouched, when the scale is already at the limit in that direction.
func (t *Transform) Zoom(anchor Point, dir Direction) bool {
	next := t.Scale
	switch dir {
	case ZoomIn:
		next = math.Min(t.MaxScale, t.Scale*t.Factor)
	case ZoomOut:
		next = math.Max(t.MinScale, t.Scale/t.Factor)
	}
	if next == t.Scale {
		return false
	}
	ux, uy := t.logical(anchor)
	t.Scale = next
	t.Origin = Offset{
		X: float64(anchor.X) - ux*next,
		Y: float64(anchor.Y) - uy*next,
	}
	return true
}

// Reset returns to scale 1 with no offset.
func (t *Transform) Reset() {
	t.Scale = DefaultScale
	t.Origin = Offset{}
}
