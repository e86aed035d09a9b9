// Package render draws the editor frame: the adaptive grid, pattern pieces,
// rulers and tool overlays. Drawing goes through the [Surface] interface so
// the same code can target a raster canvas ([GGSurface]) or a recorder in
// tests.
package render

import (
	"image/color"
	"iter"
	"math"

	"github.com/patternkit/patternkit"
)

// Surface is a 2D drawing target with a current transform, paint state and
// path. Coordinates passed to path methods are in user space, which is
// mapped to device pixels through the current transform.
//
// Stroke and Fill consume the current path.
type Surface interface {
	// Push saves the transform and paint state. Pop restores it.
	Push()
	Pop()
	// Transform concatenates aff with the current transform, so that aff
	// is applied to user coordinates first.
	Transform(aff patternkit.Affine)

	SetColor(c color.Color)
	SetLineWidth(w float64)
	// SetDash sets the dash pattern in user units. No lengths means solid.
	SetDash(lengths ...float64)

	MoveTo(p patternkit.Point)
	LineTo(p patternkit.Point)
	QuadTo(c, p patternkit.Point)
	CubicTo(c1, c2, p patternkit.Point)
	ClosePath()

	Stroke()
	Fill()

	// Text draws s with the given font size in user units. The anchor
	// (ax, ay) selects which point of the text box lands on at: (0, 0) is
	// the top left and (0.5, 0.5) the center.
	Text(s string, at patternkit.Point, size, ax, ay float64)
	// MeasureText returns the extent of s in user units.
	MeasureText(s string, size float64) (w, h float64)
}

// TracePath appends els to the current path of s.
func TracePath(s Surface, els iter.Seq[patternkit.PathElement]) {
	for el := range els {
		switch el.Kind {
		case patternkit.MoveToKind:
			s.MoveTo(el.P0)
		case patternkit.LineToKind:
			s.LineTo(el.P0)
		case patternkit.QuadToKind:
			s.QuadTo(el.P0, el.P1)
		case patternkit.CubicToKind:
			s.CubicTo(el.P0, el.P1, el.P2)
		case patternkit.ClosePathKind:
			s.ClosePath()
		}
	}
}

// Circle appends a closed circle to the current path of s.
func Circle(s Surface, center patternkit.Point, r float64) {
	if r <= 0 {
		return
	}
	arc := patternkit.Arc{Center: center, Radius: r, EndAngle: 2 * math.Pi}
	s.MoveTo(arc.Start())
	for c := range arc.Cubics() {
		s.CubicTo(c.P1, c.P2, c.P3)
	}
	s.ClosePath()
}

// Rectangle appends the closed rectangle r to the current path of s.
func Rectangle(s Surface, r patternkit.Rect) {
	s.MoveTo(patternkit.Pt(r.X0, r.Y0))
	s.LineTo(patternkit.Pt(r.X1, r.Y0))
	s.LineTo(patternkit.Pt(r.X1, r.Y1))
	s.LineTo(patternkit.Pt(r.X0, r.Y1))
	s.ClosePath()
}

// RoundedRectangle appends r with corners rounded by radius to the current
// path of s. The radius is limited to half the shorter side.
func RoundedRectangle(s Surface, r patternkit.Rect, radius float64) {
	r = r.Abs()
	radius = min(radius, r.Width()/2, r.Height()/2)
	if radius <= 0 {
		Rectangle(s, r)
		return
	}
	const q = math.Pi / 2
	origin := patternkit.Pt(r.X0+radius, r.Y0)
	segs := []patternkit.Segment{
		patternkit.LineSeg(patternkit.Pt(r.X1-radius, r.Y0)),
		patternkit.ArcSeg(patternkit.Pt(r.X1-radius, r.Y0+radius), radius, -q, 0),
		patternkit.LineSeg(patternkit.Pt(r.X1, r.Y1-radius)),
		patternkit.ArcSeg(patternkit.Pt(r.X1-radius, r.Y1-radius), radius, 0, q),
		patternkit.LineSeg(patternkit.Pt(r.X0+radius, r.Y1)),
		patternkit.ArcSeg(patternkit.Pt(r.X0+radius, r.Y1-radius), radius, q, 2*q),
		patternkit.LineSeg(patternkit.Pt(r.X0, r.Y0+radius)),
		patternkit.ArcSeg(patternkit.Pt(r.X0+radius, r.Y0+radius), radius, 2*q, 3*q),
	}
	TracePath(s, patternkit.OutlineElements(origin, segs, true))
}

func fill(s Surface, c color.Color) {
	s.SetColor(c)
	s.Fill()
}

func stroke(s Surface, c color.Color, width float64) {
	s.SetColor(c)
	s.SetLineWidth(width)
	s.Stroke()
}
