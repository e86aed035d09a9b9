package render

import (
	"math"

	"github.com/patternkit/patternkit"
	"github.com/patternkit/patternkit/viewport"
)

// Clear prepares s for a new w×h frame. Surfaces with a Clear method of
// their own use it, others get the background painted over.
func Clear(s Surface, w, h float64) {
	if c, ok := s.(interface{ Clear() }); ok {
		c.Clear()
		return
	}
	Rectangle(s, patternkit.Rect{X1: w, Y1: h})
	fill(s, Background)
}

// gridLines calls fn for every multiple of step in [lo, hi].
func gridLines(lo, hi, step float64, fn func(v float64)) {
	start := math.Floor(lo/step) * step
	for i := 0; ; i++ {
		v := start + float64(i)*step
		if v > hi {
			return
		}
		fn(v)
	}
}

// DrawGrid draws the minor and major grid lines and the origin crosshair
// covering a w×h pixel viewport.
func DrawGrid(s Surface, cam viewport.Camera, w, h float64) {
	step := viewport.GridStepFor(cam.Zoom)
	view := cam.VisibleWorld(w, h)

	s.Push()
	defer s.Pop()
	s.Transform(cam.Affine())
	s.SetDash()

	lines := func(step float64) {
		gridLines(view.X0, view.X1, step, func(x float64) {
			s.MoveTo(patternkit.Pt(x, view.Y0))
			s.LineTo(patternkit.Pt(x, view.Y1))
		})
		gridLines(view.Y0, view.Y1, step, func(y float64) {
			s.MoveTo(patternkit.Pt(view.X0, y))
			s.LineTo(patternkit.Pt(view.X1, y))
		})
	}
	lines(step.Minor)
	stroke(s, GridMinor, 1/cam.Zoom)
	lines(step.Major)
	stroke(s, GridMajor, 1/cam.Zoom)

	s.MoveTo(patternkit.Pt(view.X0, 0))
	s.LineTo(patternkit.Pt(view.X1, 0))
	s.MoveTo(patternkit.Pt(0, view.Y0))
	s.LineTo(patternkit.Pt(0, view.Y1))
	stroke(s, OriginMarker, 2/cam.Zoom)
}

// DrawPieces draws every piece in order, so later pieces end up on top.
// Selected pieces are filled and outlined in the accent color, the hovered
// piece gets a darker outline.
func DrawPieces(s Surface, cam viewport.Camera, pieces []patternkit.Piece, selected func(id string) bool, hovered string) {
	s.Push()
	defer s.Pop()
	s.Transform(cam.Affine())

	for _, p := range pieces {
		isSelected := selected != nil && selected(p.ID)
		if isSelected {
			TracePath(s, p.PathElements())
			fill(s, FillSelected)
		}

		color, width := Outline, 1/cam.Zoom
		switch {
		case isSelected:
			color, width = OutlineSelected, 2/cam.Zoom
		case p.ID == hovered:
			color = OutlineHovered
		}
		s.SetDash()
		TracePath(s, patternkit.OutlineElements(p.Origin, p.Outline, false))
		stroke(s, color, width)

		drawGrainLine(s, p, cam.Zoom)
		drawNotches(s, p, cam.Zoom)
		drawPieceName(s, p, cam.Zoom)
	}
}

func drawGrainLine(s Surface, p patternkit.Piece, zoom float64) {
	if p.GrainLine == nil {
		return
	}
	start, end := p.GrainLine[0], p.GrainLine[1]
	s.SetDash(4/zoom, 4/zoom)
	s.MoveTo(start)
	s.LineTo(end)
	stroke(s, GrainLine, 1/zoom)
	s.SetDash()

	d := end.Sub(start)
	if d.Hypot() < 1 {
		return
	}
	u := d.Normalize()
	size := 6 / zoom
	back := u.Mul(-size)
	side := patternkit.Vec(u.Y, -u.X).Mul(size * 0.5)
	s.MoveTo(end)
	s.LineTo(end.Translate(back.Add(side)))
	s.MoveTo(end)
	s.LineTo(end.Translate(back.Sub(side)))
	stroke(s, GrainLine, 1/zoom)
}

func drawNotches(s Surface, p patternkit.Piece, zoom float64) {
	if len(p.Notches) == 0 {
		return
	}
	for _, n := range p.Notches {
		Circle(s, n, 4/zoom)
	}
	fill(s, Notch)
}

// NameSize returns the font size of piece names in world units at zoom.
func NameSize(zoom float64) float64 {
	return max(10, 12/zoom)
}

// nameAnchor averages the origin with the end point of every segment that
// has one.
func nameAnchor(p patternkit.Piece) patternkit.Point {
	sum := patternkit.Vec2(p.Origin)
	n := 1.0
	for _, seg := range p.Outline {
		if seg.Kind == patternkit.ArcSegment {
			continue
		}
		sum = sum.Add(patternkit.Vec2(seg.End))
		n++
	}
	return patternkit.Point(sum.Div(n))
}

func drawPieceName(s Surface, p patternkit.Piece, zoom float64) {
	if p.Name == "" {
		return
	}
	s.SetColor(PieceName)
	s.Text(p.Name, nameAnchor(p), NameSize(zoom), 0.5, 0.5)
}

const (
	// RulerSize is the thickness of the rulers in pixels.
	RulerSize     = 24
	rulerFontSize = 9
	majorTick     = 8
	minorTick     = 4
	cursorMarker  = 4
)

// DrawRulers draws the top and left rulers of a w×h pixel viewport in
// screen space. Tick labels are in world millimetres. When hasCursor is set,
// a marker shows the cursor's screen position on both rulers.
func DrawRulers(s Surface, cam viewport.Camera, w, h float64, cursor patternkit.Point, hasCursor bool) {
	step := viewport.GridStepFor(cam.Zoom)
	view := cam.VisibleWorld(w, h)
	const size = RulerSize

	s.Push()
	defer s.Pop()
	s.SetDash()

	isMajor := func(v float64) bool {
		return math.Abs(math.Remainder(v, step.Major)) < step.Minor*0.01
	}

	// Top.
	Rectangle(s, patternkit.Rect{X0: size, X1: w, Y1: size})
	fill(s, RulerBackground)
	gridLines(view.X0, view.X1, step.Minor, func(wx float64) {
		sx := wx*cam.Zoom + cam.X
		if sx < size || sx > w {
			return
		}
		tick := float64(minorTick)
		if isMajor(wx) {
			tick = majorTick
			s.SetColor(RulerText)
			s.Text(viewport.FormatValue(wx, ""), patternkit.Pt(sx, 2), rulerFontSize, 0.5, 0)
		}
		s.MoveTo(patternkit.Pt(sx, size-tick))
		s.LineTo(patternkit.Pt(sx, size))
	})
	stroke(s, RulerTick, 1)
	if hasCursor && cursor.X >= size && cursor.X <= w {
		s.MoveTo(patternkit.Pt(cursor.X, size))
		s.LineTo(patternkit.Pt(cursor.X-cursorMarker, size-cursorMarker))
		s.LineTo(patternkit.Pt(cursor.X+cursorMarker, size-cursorMarker))
		s.ClosePath()
		fill(s, RulerCursor)
	}

	// Left. Labels are drawn horizontally next to their tick.
	Rectangle(s, patternkit.Rect{Y0: size, X1: size, Y1: h})
	fill(s, RulerBackground)
	gridLines(view.Y0, view.Y1, step.Minor, func(wy float64) {
		sy := wy*cam.Zoom + cam.Y
		if sy < size || sy > h {
			return
		}
		tick := float64(minorTick)
		if isMajor(wy) {
			tick = majorTick
			s.SetColor(RulerText)
			s.Text(viewport.FormatValue(wy, ""), patternkit.Pt(2, sy+1), rulerFontSize, 0, 0)
		}
		s.MoveTo(patternkit.Pt(size-tick, sy))
		s.LineTo(patternkit.Pt(size, sy))
	})
	stroke(s, RulerTick, 1)
	if hasCursor && cursor.Y >= size && cursor.Y <= h {
		s.MoveTo(patternkit.Pt(size, cursor.Y))
		s.LineTo(patternkit.Pt(size-cursorMarker, cursor.Y-cursorMarker))
		s.LineTo(patternkit.Pt(size-cursorMarker, cursor.Y+cursorMarker))
		s.ClosePath()
		fill(s, RulerCursor)
	}

	Rectangle(s, patternkit.Rect{X1: size, Y1: size})
	fill(s, RulerBackground)

	s.MoveTo(patternkit.Pt(size, 0))
	s.LineTo(patternkit.Pt(size, h))
	s.MoveTo(patternkit.Pt(0, size))
	s.LineTo(patternkit.Pt(w, size))
	stroke(s, RulerBorder, 1)
}
