package tool

import (
	"github.com/patternkit/patternkit"
	"github.com/patternkit/patternkit/render"
	"github.com/patternkit/patternkit/viewport"
)

// penPoint is a placed pen point. A smooth point carries symmetric handles:
// handleOut where the drag was released and handleIn mirrored through the
// point.
type penPoint struct {
	pos       patternkit.Point
	smooth    bool
	handleIn  patternkit.Point
	handleOut patternkit.Point
}

// in returns the incoming control point, which is the point itself for a
// corner.
func (p penPoint) in() patternkit.Point {
	if p.smooth {
		return p.handleIn
	}
	return p.pos
}

func (p penPoint) out() patternkit.Point {
	if p.smooth {
		return p.handleOut
	}
	return p.pos
}

// penSegment joins two pen points: a line between corners, a cubic as soon
// as either side has a handle.
func penSegment(from, to penPoint, end patternkit.Point) patternkit.Segment {
	if from.smooth || to.smooth {
		return patternkit.CubicSeg(from.out(), to.in(), end)
	}
	return patternkit.LineSeg(end)
}

// PenTool draws outlines of corner and smooth points. A click places a
// corner; pressing, dragging and releasing places a smooth point whose
// outgoing handle follows the drag.
type PenTool struct {
	ctx Context

	points   []penPoint
	mouse    patternkit.Point
	hasMouse bool

	down     bool
	downPos  patternkit.Point
	dragging bool
	handle   patternkit.Point
}

// NewPenTool returns a pen tool working on ctx.
func NewPenTool(ctx Context) *PenTool {
	return &PenTool{ctx: ctx}
}

func (t *PenTool) Kind() Kind { return Pen }

func (t *PenTool) Cleanup() {
	*t = PenTool{ctx: t.ctx}
}

func (t *PenTool) nearFirst(pt patternkit.Point) bool {
	if len(t.points) == 0 {
		return false
	}
	return nearFirst(t.points[0].pos, pt, len(t.points), t.ctx.Camera().Zoom)
}

func (t *PenTool) segments(closed bool) []patternkit.Segment {
	n := len(t.points)
	origin := t.points[0].pos
	segs := make([]patternkit.Segment, 0, n)
	for i := 1; i < n; i++ {
		segs = append(segs, penSegment(t.points[i-1], t.points[i], t.points[i].pos))
	}
	switch {
	case closed:
		segs = append(segs, penSegment(t.points[n-1], t.points[0], origin))
	case n >= minClosePoints:
		segs = append(segs, patternkit.LineSeg(origin))
	}
	return segs
}

func (t *PenTool) finish(closed bool) {
	if len(t.points) < 2 {
		return
	}
	commit(t.ctx, Pen, t.points[0].pos, t.segments(closed))
	t.Cleanup()
}

func (t *PenTool) PointerDown(st PointerState) {
	if st.Button != ButtonLeft {
		return
	}
	if t.nearFirst(st.World) {
		t.finish(true)
		return
	}
	t.down = true
	t.dragging = false
	t.downPos = st.World
}

func (t *PenTool) PointerMove(st PointerState) {
	t.mouse = st.World
	t.hasMouse = true
	if t.down && st.World.Distance(t.downPos) > dragThresholdPx/t.ctx.Camera().Zoom {
		t.dragging = true
		t.handle = st.World
	}
}

func (t *PenTool) PointerUp(PointerState) {
	if !t.down {
		return
	}
	pt := penPoint{pos: t.downPos}
	if t.dragging {
		pt.smooth = true
		pt.handleOut = t.handle
		pt.handleIn = t.handle.Reflect(t.downPos)
	}
	t.points = append(t.points, pt)
	t.down = false
	t.dragging = false
}

func (t *PenTool) DoubleClick(PointerState) {
	t.points = dropDoubleClickPoint(t.points)
	t.finish(false)
}

func (t *PenTool) KeyDown(k Key) {
	switch k {
	case KeyEnter:
		t.finish(false)
	case KeyEscape:
		t.Cleanup()
	}
}

func (t *PenTool) Cursor() Cursor { return CursorCrosshair }

func (t *PenTool) DrawOverlay(s render.Surface, cam viewport.Camera) {
	if len(t.points) == 0 && !t.down {
		return
	}
	zoom := cam.Zoom
	beginOverlay(s, cam)
	defer endOverlay(s)

	for i := 1; i < len(t.points); i++ {
		from, to := t.points[i-1], t.points[i]
		if from.smooth || to.smooth {
			drawPreview(s, previewBezier(from.pos, from.out(), to.in(), to.pos), zoom)
		} else {
			drawPreview(s, previewLine(from.pos, to.pos), zoom)
		}
	}

	if n := len(t.points); n > 0 {
		last := t.points[n-1]
		switch {
		case t.down && t.dragging:
			drawPreview(s, previewBezier(last.pos, last.out(), t.handle.Reflect(t.downPos), t.downPos), zoom)
		case t.down:
			t.previewTo(s, last, t.downPos, zoom)
		case t.hasMouse:
			t.previewTo(s, last, t.mouse, zoom)
		}
	}

	if t.hasMouse && !t.down && t.nearFirst(t.mouse) {
		drawCloseIndicator(s, t.points[0].pos, zoom)
	}

	for i, pt := range t.points {
		drawPoint(s, pt.pos, zoom, i == 0)
		if pt.smooth {
			drawControlHandle(s, pt.pos, pt.handleOut, zoom)
			drawControlHandle(s, pt.pos, pt.handleIn, zoom)
		}
	}

	if t.down {
		drawPoint(s, t.downPos, zoom, false)
		if t.dragging {
			drawControlHandle(s, t.downPos, t.handle, zoom)
			drawControlHandle(s, t.downPos, t.handle.Reflect(t.downPos), zoom)
		}
	}
}

func (t *PenTool) previewTo(s render.Surface, last penPoint, target patternkit.Point, zoom float64) {
	if last.smooth {
		drawPreview(s, previewBezier(last.pos, last.handleOut, target, target), zoom)
	} else {
		drawPreview(s, previewLine(last.pos, target), zoom)
	}
}
