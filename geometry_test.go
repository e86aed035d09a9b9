package patternkit

import (
	"math"
	"slices"
	"testing"
)

func TestAffineBasic(t *testing.T) {
	const epsilon = 1e-9
	p := Pt(3, 4)

	assertNear(t, p.Transform(Identity), p, epsilon)
	assertNear(t, p.Transform(Scale(2, 2)), Pt(6, 8), epsilon)
	assertNear(t, p.Transform(Rotate(0)), p, epsilon)
	assertNear(t, p.Transform(Rotate(math.Pi/2)), Pt(-4, 3), epsilon)
	assertNear(t, p.Transform(Translate(Vec(5, 6))), Pt(8, 10), epsilon)
	assertNear(t, p.Transform(RotateAbout(math.Pi, Pt(3, 0))), Pt(3, -4), epsilon)
}

func TestAffineMul(t *testing.T) {
	const epsilon = 1e-9
	a1 := Affine{1, 2, 3, 4, 5, 6}
	a2 := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}

	for _, p := range []Point{Pt(1, 0), Pt(0, 1), Pt(1, 1)} {
		assertNear(t, p.Transform(a2).Transform(a1), p.Transform(a1.Mul(a2)), epsilon)
	}
}

func TestReflection(t *testing.T) {
	diff(t, Affine{1, 0, 0, -1, 0, 0}, Reflect(Point{}, Vec(1, 0)), approx)
	diff(t, Affine{-1, 0, 0, 1, 0, 0}, Reflect(Point{}, Vec(0, 1)), approx)
	diff(t, Affine{0, 1, 1, 0, 0, 0}, Reflect(Point{}, Vec(1, 1)), approx)

	const epsilon = 1e-9
	aff := Reflect(Pt(5, 0), Vec(0, 1))
	assertNear(t, Pt(0, 7).Transform(aff), Pt(10, 7), epsilon)
	assertNear(t, Pt(5, -3).Transform(aff), Pt(5, -3), epsilon)
	if d := aff.Determinant(); d >= 0 {
		t.Errorf("reflection has determinant %g, want negative", d)
	}
	if s := aff.LinearScale(); math.Abs(s-1) > epsilon {
		t.Errorf("reflection scales by %g, want 1", s)
	}
}

func TestPointReflect(t *testing.T) {
	diff(t, Pt(14, 6), Pt(6, 4).Reflect(Pt(10, 5)))
}

func TestPointDistance(t *testing.T) {
	if d := Pt(-11, 1).Distance(Pt(-7, -2)); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
	if d := Vec(3, -4).Manhattan(); d != 7 {
		t.Errorf("got manhattan length %v, want 7", d)
	}
}

func TestRectUnion(t *testing.T) {
	r := EmptyRect()
	for _, p := range []Point{Pt(3, 4), Pt(-1, 10), Pt(2, -5)} {
		r = r.UnionPoint(p)
	}
	diff(t, Rect{-1, -5, 3, 10}, r)
	diff(t, Rect{-2, -6, 4, 11}, r.Inflate(1, 1))
	if !r.Contains(Pt(3, 10)) {
		t.Error("edges should be inclusive")
	}
	if r.Contains(Pt(3.1, 0)) {
		t.Error("point outside rect reported as contained")
	}
}

func TestLineNearest(t *testing.T) {
	l := Line{Pt(0, 0), Pt(10, 0)}
	for _, tc := range []struct {
		pt     Point
		distSq float64
		t      float64
	}{
		{Pt(5, 3), 9, 0.5},
		{Pt(-4, 3), 25, 0},
		{Pt(13, 4), 25, 1},
	} {
		d, tt := l.Nearest(tc.pt)
		if d != tc.distSq || tt != tc.t {
			t.Errorf("Nearest(%s) = (%v, %v), want (%v, %v)", tc.pt, d, tt, tc.distSq, tc.t)
		}
	}

	degenerate := Line{Pt(1, 1), Pt(1, 1)}
	if d, _ := degenerate.Nearest(Pt(4, 5)); d != 25 {
		t.Errorf("zero-length line: got %v, want 25", d)
	}
}

func TestBezierEval(t *testing.T) {
	const epsilon = 1e-12
	q := QuadBez{Pt(0, 0), Pt(1, 2), Pt(2, 0)}
	assertNear(t, q.Eval(0), q.P0, epsilon)
	assertNear(t, q.Eval(0.5), Pt(1, 1), epsilon)
	assertNear(t, q.Eval(1), q.P2, epsilon)

	c := CubicBez{Pt(0, 0), Pt(0, 3), Pt(3, 3), Pt(3, 0)}
	assertNear(t, c.Eval(0.5), Pt(1.5, 2.25), epsilon)

	r := c.Reverse()
	assertNear(t, r.Eval(0.25), c.Eval(0.75), epsilon)
	if a, b := r.SignedArea(), c.SignedArea(); math.Abs(a+b) > 1e-9 {
		t.Errorf("reversed area %v, want %v", a, -b)
	}
}

func TestArcCubics(t *testing.T) {
	for _, a := range []Arc{
		{Center: Pt(0, 0), Radius: 10, StartAngle: 0, EndAngle: math.Pi / 2},
		{Center: Pt(5, 5), Radius: 3, StartAngle: 0, EndAngle: -3 * math.Pi / 2},
		{Center: Pt(-2, 1), Radius: 7, StartAngle: math.Pi, EndAngle: 3 * math.Pi},
	} {
		cubics := slices.Collect(a.Cubics())
		if len(cubics) == 0 {
			t.Fatalf("%v: no cubics", a)
		}
		assertNear(t, cubics[0].P0, a.Start(), 1e-9)
		assertNear(t, cubics[len(cubics)-1].P3, a.End(), 1e-9)
		for _, c := range cubics {
			for i := range 9 {
				p := c.Eval(float64(i) / 8)
				if err := math.Abs(p.Distance(a.Center) - a.Radius); err > a.Radius*1e-3 {
					t.Errorf("%v: point %s is %g off the circle", a, p, err)
				}
			}
		}
	}

	if n := len(slices.Collect(Arc{Radius: 1}.Cubics())); n != 0 {
		t.Errorf("zero sweep arc produced %d cubics", n)
	}
}

func TestOutlineElements(t *testing.T) {
	got := slices.Collect(OutlineElements(Pt(0, 0), []Segment{
		LineSeg(Pt(10, 0)),
		QuadSeg(Pt(15, 5), Pt(10, 10)),
		CubicSeg(Pt(5, 15), Pt(0, 15), Pt(0, 10)),
	}, true))
	want := []PathElement{
		MoveTo(Pt(0, 0)),
		LineTo(Pt(10, 0)),
		QuadTo(Pt(15, 5), Pt(10, 10)),
		CubicTo(Pt(5, 15), Pt(0, 15), Pt(0, 10)),
		ClosePath(),
	}
	diff(t, want, got)
}

func TestOutlineElementsArcJoin(t *testing.T) {
	// The arc starts at (20, 0) while the pen is at (10, 0).
	els := slices.Collect(OutlineElements(Pt(0, 0), []Segment{
		LineSeg(Pt(10, 0)),
		ArcSeg(Pt(20, 10), 10, -math.Pi/2, 0),
	}, false))
	if len(els) < 3 {
		t.Fatalf("got %d elements, want at least 3", len(els))
	}
	if els[2].Kind != LineToKind {
		t.Fatalf("got %s, want a joining LineTo", els[2])
	}
	assertNear(t, els[2].P0, Pt(20, 0), 1e-9)
	end, _ := els[len(els)-1].EndPoint()
	assertNear(t, end, Pt(30, 10), 1e-9)
}
