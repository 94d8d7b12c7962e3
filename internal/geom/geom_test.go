package geom

import "testing"

func TestBoundsClamp(t *testing.T) {
	b := Bounds{W: 800, H: 600}
	cases := []struct {
		in, want Point
	}{
		{Pt(10, 20), Pt(10, 20)},
		{Pt(-5, 20), Pt(0, 20)},
		{Pt(900, 700), Pt(800, 600)},
		{Pt(800, 0), Pt(800, 0)},
		{Pt(-1, -1), Pt(0, 0)},
	}
	for _, c := range cases {
		got := b.Clamp(c.in)
		if got != c.want {
			t.Errorf("Clamp(%v) = %v, want %v", c.in, got, c.want)
		}
		if again := b.Clamp(got); again != got {
			t.Errorf("Clamp not idempotent for %v: %v then %v", c.in, got, again)
		}
		if !b.Contains(got) {
			t.Errorf("clamped point %v outside bounds", got)
		}
	}
}

func TestBoundsContainsEdges(t *testing.T) {
	b := Bounds{W: 10, H: 10}
	if !b.Contains(Pt(10, 10)) || !b.Contains(Pt(0, 0)) {
		t.Fatalf("edges should be inside")
	}
	if b.Contains(Pt(11, 0)) || b.Contains(Pt(0, -1)) {
		t.Fatalf("points past the edge should be outside")
	}
}

func TestToLogicalTruncates(t *testing.T) {
	tr := NewTransform()
	tr.Scale = 2
	tr.Origin = Off(10, 10)
	if got := tr.ToLogical(Pt(15, 13)); got != Pt(2, 1) {
		t.Fatalf("ToLogical = %v, want (2,1)", got)
	}
	// (5-10)/2 = -2.5 truncates to -2, not -3.
	if got := tr.ToLogical(Pt(5, 5)); got != Pt(-2, -2) {
		t.Fatalf("ToLogical = %v, want (-2,-2)", got)
	}
}

func TestToDeviceInvertsToLogical(t *testing.T) {
	tr := NewTransform(WithOrigin(Pt(30, -20)))
	tr.Scale = 2
	x, y := tr.ToDevice(Pt(7, 9))
	if x != 44 || y != -2 {
		t.Fatalf("ToDevice = (%v,%v), want (44,-2)", x, y)
	}
	if got := tr.ToLogical(Pt(int(x), int(y))); got != Pt(7, 9) {
		t.Fatalf("round trip = %v", got)
	}
}

func TestPanUnbounded(t *testing.T) {
	tr := NewTransform()
	tr.Pan(-5000, 12)
	tr.Pan(3, 3)
	if tr.Origin != Off(-4997, 15) {
		t.Fatalf("origin = %v", tr.Origin)
	}
}

func TestZoomKeepsAnchor(t *testing.T) {
	tr := NewTransform()
	tr.Origin = Off(13, 7)
	anchors := []Point{Pt(400, 300), Pt(13, 7), Pt(799, 2), Pt(250, 450)}
	for _, dir := range []Direction{ZoomIn, ZoomIn, ZoomOut, ZoomIn, ZoomOut, ZoomOut} {
		for _, a := range anchors {
			before := tr.ToLogical(a)
			tr.Zoom(a, dir)
			after := tr.ToLogical(a)
			if after != before {
				t.Fatalf("zoom %v at %v moved the logical point %v -> %v", dir, a, before, after)
			}
		}
	}
}

func TestZoomAnchorDoesNotDrift(t *testing.T) {
	for ox := -40; ox <= 40; ox += 7 {
		for oy := -40; oy <= 40; oy += 11 {
			tr := NewTransform(WithOrigin(Pt(ox, oy)))
			for _, a := range []Point{Pt(0, 0), Pt(1, 1), Pt(123, 77), Pt(640, 480)} {
				want := tr.ToLogical(a)
				for i := 0; i < 20; i++ {
					tr.Zoom(a, ZoomIn)
					if got := tr.ToLogical(a); got != want {
						t.Fatalf("origin (%d,%d) anchor %v step %d scale %.4f: %v -> %v", ox, oy, a, i, tr.Scale, want, got)
					}
				}
				for i := 0; i < 40; i++ {
					tr.Zoom(a, ZoomOut)
					if got := tr.ToLogical(a); got != want {
						t.Fatalf("origin (%d,%d) anchor %v zoom out %d scale %.4f: %v -> %v", ox, oy, a, i, tr.Scale, want, got)
					}
				}
			}
		}
	}
}

func TestZoomInThenOutRestoresAnchor(t *testing.T) {
	tr := NewTransform(WithOrigin(Pt(-20, -20)))
	a := Pt(0, 0)
	want := tr.ToLogical(a)
	if want != Pt(20, 20) {
		t.Fatalf("ToLogical = %v", want)
	}
	tr.Zoom(a, ZoomIn)
	tr.Zoom(a, ZoomIn)
	tr.Zoom(a, ZoomOut)
	tr.Zoom(a, ZoomOut)
	if got := tr.ToLogical(a); got != want {
		t.Fatalf("after in/out: %v, want %v", got, want)
	}
	if d := tr.Scale - 1; d > 1e-9 || d < -1e-9 {
		t.Fatalf("scale = %v, want 1", tr.Scale)
	}
}

func TestZoomStepAndLimits(t *testing.T) {
	tr := NewTransform()
	if !tr.Zoom(Pt(0, 0), ZoomIn) {
		t.Fatalf("first zoom in should change scale")
	}
	if diff := tr.Scale - 1.1; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("scale = %v, want 1.1", tr.Scale)
	}
	for i := 0; i < 100; i++ {
		tr.Zoom(Pt(0, 0), ZoomIn)
	}
	if tr.Scale != DefaultMaxScale {
		t.Fatalf("scale = %v, want max %v", tr.Scale, DefaultMaxScale)
	}
	origin := tr.Origin
	if tr.Zoom(Pt(100, 100), ZoomIn) {
		t.Fatalf("zoom past max should be a no-op")
	}
	if tr.Origin != origin {
		t.Fatalf("no-op zoom moved origin")
	}
	for i := 0; i < 100; i++ {
		tr.Zoom(Pt(0, 0), ZoomOut)
	}
	if tr.Scale != DefaultMinScale {
		t.Fatalf("scale = %v, want min %v", tr.Scale, DefaultMinScale)
	}
	if tr.Zoom(Pt(0, 0), ZoomOut) {
		t.Fatalf("zoom past min should be a no-op")
	}
}

func TestTransformOptions(t *testing.T) {
	tr := NewTransform(WithScaleLimits(2, 3), WithZoomFactor(2))
	if tr.Scale != 2 {
		t.Fatalf("scale should clamp into limits, got %v", tr.Scale)
	}
	tr.Zoom(Pt(0, 0), ZoomIn)
	if tr.Scale != 3 {
		t.Fatalf("scale = %v, want 3", tr.Scale)
	}
	ignored := NewTransform(WithScaleLimits(5, 1), WithZoomFactor(0.5))
	if ignored.MinScale != DefaultMinScale || ignored.Factor != DefaultZoomFactor {
		t.Fatalf("invalid options should be ignored: %+v", ignored)
	}
	ignored.Pan(4, 4)
	ignored.Reset()
	if ignored.Origin != (Offset{}) || ignored.Scale != DefaultScale {
		t.Fatalf("reset: %+v", ignored)
	}
}
