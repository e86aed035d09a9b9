package patternkit

import "math"

// HitTolerancePx is the screen-space distance within which a pointer hits a
// piece's edge.
const HitTolerancePx = 6

// PointInPolygon reports whether pt is inside the closed polygon using the
// even-odd rule.
func PointInPolygon(pt Point, polygon []Point) bool {
	inside := false
	for i, j := 0, len(polygon)-1; i < len(polygon); j, i = i, i+1 {
		if (Line{polygon[j], polygon[i]}).CrossesRay(pt) {
			inside = !inside
		}
	}
	return inside
}

// DistanceToPolyline returns the smallest distance from pt to any edge of
// the open polyline. A single point polyline measures to that point, and an
// empty one returns +Inf.
func DistanceToPolyline(pt Point, pts []Point) float64 {
	switch len(pts) {
	case 0:
		return math.Inf(1)
	case 1:
		return pt.Distance(pts[0])
	}
	best := math.Inf(1)
	for i := 1; i < len(pts); i++ {
		d, _ := Line{pts[i-1], pts[i]}.Nearest(pt)
		best = min(best, d)
	}
	return math.Sqrt(best)
}

// DistanceToOutline returns the smallest distance from pt to the flattened
// outline of p. The implicit closing edge is not measured.
func DistanceToOutline(pt Point, p Piece) float64 {
	return DistanceToPolyline(pt, p.Flatten())
}

// HitTestPiece reports whether pt, in world space, hits p. A point hits when
// it lies inside the flattened outline, or within tolPx screen pixels of it
// at the given zoom.
func HitTestPiece(pt Point, p Piece, tolPx, zoom float64) bool {
	tol := tolPx / zoom
	if !p.ControlBounds().Inflate(tol, tol).Contains(pt) {
		return false
	}
	poly := p.Flatten()
	if PointInPolygon(pt, poly) {
		return true
	}
	return DistanceToPolyline(pt, poly) < tol
}

// HitTestPieces returns the topmost piece hit by pt, or nil. Later pieces
// are drawn on top, so they are tested first.
func HitTestPieces(pt Point, pieces []Piece, zoom float64) *Piece {
	for i := len(pieces) - 1; i >= 0; i-- {
		if HitTestPiece(pt, pieces[i], HitTolerancePx, zoom) {
			return &pieces[i]
		}
	}
	return nil
}

// SignedArea returns the exact signed area enclosed by the outline and its
// closing edge. Arcs are measured through their cubic approximation. The
// sign follows the winding: positive for a clockwise outline in the
// editor's Y-down world.
func (p Piece) SignedArea() float64 {
	var area float64
	cur := p.Origin
	for el := range OutlineElements(p.Origin, p.Outline, false) {
		switch el.Kind {
		case LineToKind:
			area += Line{cur, el.P0}.SignedArea()
		case QuadToKind:
			area += QuadBez{cur, el.P0, el.P1}.SignedArea()
		case CubicToKind:
			area += CubicBez{cur, el.P0, el.P1, el.P2}.SignedArea()
		}
		if end, ok := el.EndPoint(); ok {
			cur = end
		}
	}
	return area + Line{cur, p.Origin}.SignedArea()
}

// Area returns the absolute enclosed area in square millimetres.
func (p Piece) Area() float64 {
	return math.Abs(p.SignedArea())
}
