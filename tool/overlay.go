package tool

import (
	"fmt"

	"github.com/patternkit/patternkit"
	"github.com/patternkit/patternkit/render"
	"github.com/patternkit/patternkit/viewport"
)

// Overlay glyphs are sized in screen pixels and divided by zoom, so they
// look the same at any zoom.

const snapLineExtent = 30

func beginOverlay(s render.Surface, cam viewport.Camera) {
	s.Push()
	s.Transform(cam.Affine())
}

func endOverlay(s render.Surface) {
	s.SetDash()
	s.Pop()
}

func drawPoint(s render.Surface, p patternkit.Point, zoom float64, first bool) {
	r := 4 / zoom
	c := render.DraftPoint
	if first {
		r = 5 / zoom
		c = render.DraftPointFirst
	}
	render.Circle(s, p, r)
	s.SetColor(c)
	s.Fill()

	if first {
		s.SetDash()
		render.Circle(s, p, r+3/zoom)
		s.SetLineWidth(1.5 / zoom)
		s.Stroke()
	}
}

func previewStyle(s render.Surface, zoom float64) {
	s.SetColor(render.PreviewLine)
	s.SetLineWidth(1.5 / zoom)
	s.SetDash(6/zoom, 4/zoom)
}

func previewLine(from, to patternkit.Point) patternkit.BezPath {
	var p patternkit.BezPath
	p.MoveTo(from)
	p.LineTo(to)
	return p
}

func previewBezier(from, c1, c2, to patternkit.Point) patternkit.BezPath {
	var p patternkit.BezPath
	p.MoveTo(from)
	p.CubicTo(c1, c2, to)
	return p
}

// drawPreview strokes p as a dashed draft edge.
func drawPreview(s render.Surface, p patternkit.BezPath, zoom float64) {
	previewStyle(s, zoom)
	render.TracePath(s, p.Elements())
	s.Stroke()
	s.SetDash()
}

func drawControlHandle(s render.Surface, anchor, handle patternkit.Point, zoom float64) {
	s.SetDash()
	s.SetColor(render.HandleLine)
	s.SetLineWidth(1 / zoom)
	s.MoveTo(anchor)
	s.LineTo(handle)
	s.Stroke()

	render.Circle(s, handle, 3/zoom)
	s.SetColor(render.HandleDot)
	s.Fill()
}

// DistanceLabel formats the distance between two world points in
// millimetres with one decimal.
func DistanceLabel(from, to patternkit.Point) string {
	return fmt.Sprintf("%.1f mm", from.Distance(to))
}

func drawDistanceLabel(s render.Surface, from, to patternkit.Point, zoom float64) {
	label := DistanceLabel(from, to)
	mid := from.Midpoint(to)

	size := render.NameSize(zoom)
	w, _ := s.MeasureText(label, size)
	padX, padY := 6/zoom, 4/zoom
	bgW := w + 2*padX
	bgH := size + 2*padY
	bgX := mid.X - bgW/2
	bgY := mid.Y - bgH/2 - 10/zoom

	render.RoundedRectangle(s, patternkit.Rect{X0: bgX, Y0: bgY, X1: bgX + bgW, Y1: bgY + bgH}, 4/zoom)
	s.SetColor(render.DistanceBg)
	s.Fill()

	s.SetColor(render.DistanceText)
	s.Text(label, patternkit.Pt(mid.X, bgY+bgH/2), size, 0.5, 0.5)
}

func drawCloseIndicator(s render.Surface, p patternkit.Point, zoom float64) {
	render.Circle(s, p, 8/zoom)
	s.SetColor(render.CloseIndicator)
	s.Fill()
}

func drawSnapIndicator(s render.Surface, p patternkit.Point, zoom float64, snapX, snapY bool) {
	ext := snapLineExtent / zoom
	s.SetColor(render.SnapIndicator)
	s.SetLineWidth(1 / zoom)
	s.SetDash(3/zoom, 3/zoom)
	if snapX {
		s.MoveTo(patternkit.Pt(p.X, p.Y-ext))
		s.LineTo(patternkit.Pt(p.X, p.Y+ext))
		s.Stroke()
	}
	if snapY {
		s.MoveTo(patternkit.Pt(p.X-ext, p.Y))
		s.LineTo(patternkit.Pt(p.X+ext, p.Y))
		s.Stroke()
	}
	s.SetDash()
}
