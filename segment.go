package patternkit

import (
	"encoding/json"
	"fmt"
	"math"
)

type SegmentKind int

const (
	// A straight line to End.
	LineSegment SegmentKind = iota + 1
	// A quadratic Bézier through Control to End.
	QuadSegment
	// A cubic Bézier through Control1 and Control2 to End.
	CubicSegment
	// A circular arc around Center. Its end point is derived from EndAngle.
	ArcSegment
)

func (k SegmentKind) String() string {
	switch k {
	case LineSegment:
		return "Line"
	case QuadSegment:
		return "QuadraticBezier"
	case CubicSegment:
		return "CubicBezier"
	case ArcSegment:
		return "Arc"
	default:
		return fmt.Sprintf("SegmentKind(%d)", int(k))
	}
}

// arcJoinEpsilon is the distance below which an arc's start point counts as
// coincident with the previous segment's end.
const arcJoinEpsilon = 1e-6

// Segment is one piece of an outline. Line, quadratic and cubic segments
// start where the previous segment ended, or at the piece origin for the
// first one. Only the fields relevant to Kind are meaningful.
type Segment struct {
	Kind SegmentKind

	Control  Point
	Control1 Point
	Control2 Point
	End      Point

	Center     Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
}

// LineSeg returns a straight segment ending at end.
func LineSeg(end Point) Segment {
	return Segment{Kind: LineSegment, End: end}
}

// QuadSeg returns a quadratic Bézier segment.
func QuadSeg(control, end Point) Segment {
	return Segment{Kind: QuadSegment, Control: control, End: end}
}

// CubicSeg returns a cubic Bézier segment.
func CubicSeg(control1, control2, end Point) Segment {
	return Segment{Kind: CubicSegment, Control1: control1, Control2: control2, End: end}
}

// ArcSeg returns a circular arc segment. Angles are in radians.
func ArcSeg(center Point, radius, startAngle, endAngle float64) Segment {
	return Segment{
		Kind:       ArcSegment,
		Center:     center,
		Radius:     radius,
		StartAngle: startAngle,
		EndAngle:   endAngle,
	}
}

func (seg Segment) String() string {
	switch seg.Kind {
	case LineSegment:
		return fmt.Sprintf("Line{end: %s}", seg.End)
	case QuadSegment:
		return fmt.Sprintf("QuadraticBezier{control: %s, end: %s}", seg.Control, seg.End)
	case CubicSegment:
		return fmt.Sprintf("CubicBezier{control1: %s, control2: %s, end: %s}", seg.Control1, seg.Control2, seg.End)
	case ArcSegment:
		return fmt.Sprintf("Arc{center: %s, radius: %g, start_angle: %g, end_angle: %g}",
			seg.Center, seg.Radius, seg.StartAngle, seg.EndAngle)
	default:
		return seg.Kind.String()
	}
}

// Arc returns the segment as an [Arc]. It is only meaningful for arc segments.
func (seg Segment) Arc() Arc {
	return Arc{
		Center:     seg.Center,
		Radius:     seg.Radius,
		StartAngle: seg.StartAngle,
		EndAngle:   seg.EndAngle,
	}
}

// EndPoint returns where the segment ends. For arcs this is the point of the
// circle at EndAngle.
func (seg Segment) EndPoint() Point {
	if seg.Kind == ArcSegment {
		return seg.Arc().End()
	}
	return seg.End
}

// StartPoint returns where the segment starts, given the end of the previous
// segment. Arcs start at their own StartAngle regardless of prev.
func (seg Segment) StartPoint(prev Point) Point {
	if seg.Kind == ArcSegment {
		return seg.Arc().Start()
	}
	return prev
}

// Cubic returns the cubic form of a cubic segment starting at start.
func (seg Segment) Cubic(start Point) CubicBez {
	return CubicBez{start, seg.Control1, seg.Control2, seg.End}
}

// Quad returns the quadratic form of a quadratic segment starting at start.
func (seg Segment) Quad(start Point) QuadBez {
	return QuadBez{start, seg.Control, seg.End}
}

// Translate moves every point of the segment by v. Arc angles and radius are
// unchanged.
func (seg Segment) Translate(v Vec2) Segment {
	switch seg.Kind {
	case LineSegment:
		seg.End = seg.End.Translate(v)
	case QuadSegment:
		seg.Control = seg.Control.Translate(v)
		seg.End = seg.End.Translate(v)
	case CubicSegment:
		seg.Control1 = seg.Control1.Translate(v)
		seg.Control2 = seg.Control2.Translate(v)
		seg.End = seg.End.Translate(v)
	case ArcSegment:
		seg.Center = seg.Center.Translate(v)
	}
	return seg
}

// Transform maps the segment through aff without changing its direction of
// travel. An arc keeps its sweep magnitude; the sweep flips sign when aff
// reverses orientation. Only similarity transforms keep arcs exact.
func (seg Segment) Transform(aff Affine) Segment {
	switch seg.Kind {
	case LineSegment:
		seg.End = seg.End.Transform(aff)
	case QuadSegment:
		seg.Control = seg.Control.Transform(aff)
		seg.End = seg.End.Transform(aff)
	case CubicSegment:
		seg.Control1 = seg.Control1.Transform(aff)
		seg.Control2 = seg.Control2.Transform(aff)
		seg.End = seg.End.Transform(aff)
	case ArcSegment:
		sweep := seg.EndAngle - seg.StartAngle
		start := aff.TransformVec(VecFromAngle(seg.StartAngle)).Angle()
		if aff.Determinant() < 0 {
			sweep = -sweep
		}
		seg.Center = seg.Center.Transform(aff)
		seg.Radius *= aff.LinearScale()
		seg.StartAngle = start
		seg.EndAngle = start + sweep
	}
	return seg
}

// Points returns every stored point of the segment: controls and end for
// curves, the center for arcs.
func (seg Segment) Points() []Point {
	switch seg.Kind {
	case LineSegment:
		return []Point{seg.End}
	case QuadSegment:
		return []Point{seg.Control, seg.End}
	case CubicSegment:
		return []Point{seg.Control1, seg.Control2, seg.End}
	case ArcSegment:
		return []Point{seg.Center}
	default:
		return nil
	}
}

func (seg Segment) IsNaN() bool {
	for _, pt := range seg.Points() {
		if pt.IsNaN() {
			return true
		}
	}
	return math.IsNaN(seg.Radius) || math.IsNaN(seg.StartAngle) || math.IsNaN(seg.EndAngle)
}

type jsonSegment struct {
	Type       string   `json:"type"`
	Control    *Point   `json:"control,omitempty"`
	Control1   *Point   `json:"control1,omitempty"`
	Control2   *Point   `json:"control2,omitempty"`
	End        *Point   `json:"end,omitempty"`
	Center     *Point   `json:"center,omitempty"`
	Radius     *float64 `json:"radius,omitempty"`
	StartAngle *float64 `json:"start_angle,omitempty"`
	EndAngle   *float64 `json:"end_angle,omitempty"`
}

// MarshalJSON encodes the segment in its internally tagged form, for example
// {"type":"Line","end":{"x":1,"y":2}}.
func (seg Segment) MarshalJSON() ([]byte, error) {
	js := jsonSegment{Type: seg.Kind.String()}
	switch seg.Kind {
	case LineSegment:
		js.End = &seg.End
	case QuadSegment:
		js.Control, js.End = &seg.Control, &seg.End
	case CubicSegment:
		js.Control1, js.Control2, js.End = &seg.Control1, &seg.Control2, &seg.End
	case ArcSegment:
		js.Center = &seg.Center
		js.Radius, js.StartAngle, js.EndAngle = &seg.Radius, &seg.StartAngle, &seg.EndAngle
	default:
		return nil, fmt.Errorf("marshal segment: unknown kind %d", int(seg.Kind))
	}
	return json.Marshal(js)
}

func (seg *Segment) UnmarshalJSON(data []byte) error {
	var js jsonSegment
	if err := json.Unmarshal(data, &js); err != nil {
		return err
	}
	pt := func(p *Point) Point {
		if p == nil {
			return Point{}
		}
		return *p
	}
	num := func(f *float64) float64 {
		if f == nil {
			return 0
		}
		return *f
	}
	switch js.Type {
	case "Line":
		*seg = LineSeg(pt(js.End))
	case "QuadraticBezier":
		*seg = QuadSeg(pt(js.Control), pt(js.End))
	case "CubicBezier":
		*seg = CubicSeg(pt(js.Control1), pt(js.Control2), pt(js.End))
	case "Arc":
		*seg = ArcSeg(pt(js.Center), num(js.Radius), num(js.StartAngle), num(js.EndAngle))
	default:
		return fmt.Errorf("unmarshal segment: unknown type %q", js.Type)
	}
	return nil
}
