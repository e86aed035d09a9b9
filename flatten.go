package patternkit

// Number of polyline steps used when flattening each segment kind.
const (
	QuadSteps  = 16
	CubicSteps = 20
	ArcSteps   = 20
)

// FlattenSegment appends the polyline approximation of seg, which starts at
// prev, to dst. The start point prev itself is not appended. An arc whose
// start point differs from prev contributes its start point as well, so the
// polyline stays connected.
func FlattenSegment(dst []Point, prev Point, seg Segment) []Point {
	switch seg.Kind {
	case LineSegment:
		return append(dst, seg.End)
	case QuadSegment:
		q := seg.Quad(prev)
		for i := 1; i <= QuadSteps; i++ {
			dst = append(dst, q.Eval(float64(i)/QuadSteps))
		}
	case CubicSegment:
		c := seg.Cubic(prev)
		for i := 1; i <= CubicSteps; i++ {
			dst = append(dst, c.Eval(float64(i)/CubicSteps))
		}
	case ArcSegment:
		a := seg.Arc()
		if start := a.Start(); start.DistanceSquared(prev) > arcJoinEpsilon*arcJoinEpsilon {
			dst = append(dst, start)
		}
		for i := 1; i <= ArcSteps; i++ {
			dst = append(dst, a.Eval(float64(i)/ArcSteps))
		}
	}
	return dst
}

// FlattenOutline returns the polyline through origin and the flattened
// segments. An empty outline flattens to the origin alone.
func FlattenOutline(origin Point, segs []Segment) []Point {
	pts := make([]Point, 0, 1+len(segs)*4)
	pts = append(pts, origin)
	prev := origin
	for _, seg := range segs {
		pts = FlattenSegment(pts, prev, seg)
		prev = pts[len(pts)-1]
	}
	return pts
}

// Flatten returns the flattened outline of p.
func (p Piece) Flatten() []Point {
	return FlattenOutline(p.Origin, p.Outline)
}

// Perimeter returns the length of the flattened outline, including the
// closing edge back to the origin.
func (p Piece) Perimeter() float64 {
	pts := p.Flatten()
	var sum float64
	for i := range pts {
		j := (i + 1) % len(pts)
		sum += pts[i].Distance(pts[j])
	}
	return sum
}
