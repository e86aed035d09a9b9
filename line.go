package patternkit

// Line represents a line segment between two points. Flattened outlines
// are measured against it.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Nearest returns the squared distance from pt to the closest point of the
// line, and the parameter of that point. A zero-length line degrades to the
// distance to P0.
func (l Line) Nearest(pt Point) (distSq, t float64) {
	d := l.P1.Sub(l.P0)
	dotp := d.Dot(pt.Sub(l.P0))
	dSquared := d.Dot(d)
	if dotp <= 0.0 {
		return pt.Sub(l.P0).Hypot2(), 0.0
	} else if dotp >= dSquared {
		return pt.Sub(l.P1).Hypot2(), 1.0
	} else {
		t := dotp / dSquared
		dist := pt.Sub(l.Eval(t)).Hypot2()
		return dist, t
	}
}

// SignedArea returns the line's contribution to the shoelace sum of a
// closed polygon.
func (l Line) SignedArea() float64 {
	return Vec2(l.P0).Cross(Vec2(l.P1)) * 0.5
}

// CrossesRay reports whether the line crosses the horizontal ray cast from
// pt towards positive x. It is the even-odd step of point-in-polygon.
func (l Line) CrossesRay(pt Point) bool {
	if (l.P0.Y > pt.Y) == (l.P1.Y > pt.Y) {
		return false
	}
	x := (l.P1.X-l.P0.X)*(pt.Y-l.P0.Y)/(l.P1.Y-l.P0.Y) + l.P0.X
	return pt.X < x
}
