package patternkit

import (
	"slices"

	"github.com/google/uuid"
)

// Translate returns p moved by v. Every point moves: the origin, segment
// ends, controls and arc centers, the grain line, notches and internal
// lines.
func (p Piece) Translate(v Vec2) Piece {
	out := p.Clone()
	out.Origin = p.Origin.Translate(v)
	for i, seg := range out.Outline {
		out.Outline[i] = seg.Translate(v)
	}
	if out.GrainLine != nil {
		out.GrainLine[0] = out.GrainLine[0].Translate(v)
		out.GrainLine[1] = out.GrainLine[1].Translate(v)
	}
	for i, n := range out.Notches {
		out.Notches[i] = n.Translate(v)
	}
	for _, l := range out.InternalLines {
		for i, seg := range l {
			l[i] = seg.Translate(v)
		}
	}
	return out
}

// Duplicate returns a deep copy of p with a fresh id and " copy" appended to
// its name.
func (p Piece) Duplicate() Piece {
	out := p.Clone()
	out.ID = uuid.NewString()
	out.Name = p.Name + " copy"
	return out
}

// MirrorX returns p reflected left to right across the vertical line through
// the center of [Piece.Bounds]. The outline is re-wound so it keeps its
// original winding direction and starts at the mirrored end point.
func (p Piece) MirrorX() Piece {
	cx := p.Bounds().Center().X
	return p.Transform(Reflect(Pt(cx, 0), Vec(0, 1)))
}

// MirrorY returns p reflected top to bottom across the horizontal line
// through the center of [Piece.Bounds].
func (p Piece) MirrorY() Piece {
	cy := p.Bounds().Center().Y
	return p.Transform(Reflect(Pt(0, cy), Vec(1, 0)))
}

// Rotate returns p turned by th radians about the center of
// [Piece.Bounds]. Positive angles turn clockwise on screen.
func (p Piece) Rotate(th float64) Piece {
	return p.Transform(RotateAbout(th, p.Bounds().Center()))
}

// Transform returns p mapped through aff. When aff reverses orientation, as
// reflections do, the outline is traversed backwards so its winding matches
// the original. Arcs stay circular only under similarity transforms.
func (p Piece) Transform(aff Affine) Piece {
	out := p.Clone()
	if aff.Determinant() < 0 && len(p.Outline) > 0 {
		out.Origin, out.Outline = reverseOutline(p.Origin, p.Outline, aff)
	} else {
		out.Origin = p.Origin.Transform(aff)
		for i, seg := range out.Outline {
			out.Outline[i] = seg.Transform(aff)
		}
	}
	if out.GrainLine != nil {
		out.GrainLine[0] = out.GrainLine[0].Transform(aff)
		out.GrainLine[1] = out.GrainLine[1].Transform(aff)
	}
	for i, n := range out.Notches {
		out.Notches[i] = n.Transform(aff)
	}
	for _, l := range out.InternalLines {
		for i, seg := range l {
			l[i] = seg.Transform(aff)
		}
	}
	return out
}

// reverseOutline maps the outline through aff and traverses it from its last
// end point back to origin. Segment i of the reversed outline ends at the
// mapped start of the original segment. Cubics are reversed, and arcs
// swap their angles. An arc that did not start where the previous segment
// ended gets a line appended to reach that point.
func reverseOutline(origin Point, segs []Segment, aff Affine) (Point, []Segment) {
	starts := make([]Point, len(segs))
	prev := origin
	for i, seg := range segs {
		starts[i] = prev
		prev = seg.EndPoint()
	}

	out := make([]Segment, 0, len(segs))
	for i, seg := range slices.Backward(segs) {
		to := starts[i].Transform(aff)
		switch seg.Kind {
		case LineSegment:
			out = append(out, LineSeg(to))
		case QuadSegment:
			out = append(out, QuadSeg(seg.Control.Transform(aff), to))
		case CubicSegment:
			r := seg.Cubic(starts[i]).Reverse()
			out = append(out, CubicSeg(r.P1.Transform(aff), r.P2.Transform(aff), to))
		case ArcSegment:
			t := seg.Transform(aff)
			t.StartAngle, t.EndAngle = t.EndAngle, t.StartAngle
			out = append(out, t)
			if seg.Arc().Start().DistanceSquared(starts[i]) > arcJoinEpsilon*arcJoinEpsilon {
				out = append(out, LineSeg(to))
			}
		}
	}
	return prev.Transform(aff), out
}
