package tool

import (
	"github.com/patternkit/patternkit"
	"github.com/patternkit/patternkit/render"
	"github.com/patternkit/patternkit/viewport"
)

// curvePoint is a placed anchor. A smooth anchor has an outgoing handle; its
// incoming handle is the mirror image, which keeps the outline C1
// continuous through the anchor.
type curvePoint struct {
	pos       patternkit.Point
	smooth    bool
	handleOut patternkit.Point
}

func (p curvePoint) in() patternkit.Point {
	if p.smooth {
		return p.handleOut.Reflect(p.pos)
	}
	return p.pos
}

func (p curvePoint) out() patternkit.Point {
	if p.smooth {
		return p.handleOut
	}
	return p.pos
}

func curveSegment(from, to curvePoint, end patternkit.Point) patternkit.Segment {
	if from.smooth || to.smooth {
		return patternkit.CubicSeg(from.out(), to.in(), end)
	}
	return patternkit.LineSeg(end)
}

// CurveTool places anchors by clicking. Holding the button down while
// placing an anchor and dragging makes it smooth, with the drag defining
// its outgoing handle.
type CurveTool struct {
	ctx Context

	points   []curvePoint
	mouse    patternkit.Point
	hasMouse bool

	down      bool
	downPos   patternkit.Point
	hasHandle bool
	handle    patternkit.Point
}

// NewCurveTool returns a curve tool working on ctx.
func NewCurveTool(ctx Context) *CurveTool {
	return &CurveTool{ctx: ctx}
}

func (t *CurveTool) Kind() Kind { return Curve }

func (t *CurveTool) Cleanup() {
	*t = CurveTool{ctx: t.ctx}
}

func (t *CurveTool) nearFirst(pt patternkit.Point) bool {
	if len(t.points) == 0 {
		return false
	}
	return nearFirst(t.points[0].pos, pt, len(t.points), t.ctx.Camera().Zoom)
}

func (t *CurveTool) finish(closed bool) {
	n := len(t.points)
	if n < 2 {
		return
	}
	origin := t.points[0].pos
	segs := make([]patternkit.Segment, 0, n)
	for i := 1; i < n; i++ {
		segs = append(segs, curveSegment(t.points[i-1], t.points[i], t.points[i].pos))
	}
	switch {
	case closed && n >= minClosePoints:
		segs = append(segs, curveSegment(t.points[n-1], t.points[0], origin))
	case n >= minClosePoints:
		segs = append(segs, patternkit.LineSeg(origin))
	}
	commit(t.ctx, Curve, origin, segs)
	t.Cleanup()
}

func (t *CurveTool) PointerDown(st PointerState) {
	if st.Button != ButtonLeft {
		return
	}
	if t.nearFirst(st.World) {
		t.finish(true)
		return
	}
	t.down = true
	t.downPos = st.World
	t.hasHandle = false
}

func (t *CurveTool) PointerMove(st PointerState) {
	t.mouse = st.World
	t.hasMouse = true
	if t.down {
		t.handle = st.World
		t.hasHandle = true
	}
}

func (t *CurveTool) PointerUp(PointerState) {
	if !t.down {
		return
	}
	pt := curvePoint{pos: t.downPos}
	if t.hasHandle && t.handle.Distance(t.downPos) > dragThresholdPx/t.ctx.Camera().Zoom {
		pt.smooth = true
		pt.handleOut = t.handle
	}
	t.points = append(t.points, pt)
	t.down = false
	t.hasHandle = false
}

func (t *CurveTool) DoubleClick(PointerState) {
	t.points = dropDoubleClickPoint(t.points)
	t.finish(false)
}

func (t *CurveTool) KeyDown(k Key) {
	switch k {
	case KeyEnter:
		t.finish(false)
	case KeyEscape:
		t.Cleanup()
	}
}

func (t *CurveTool) Cursor() Cursor { return CursorCrosshair }

func (t *CurveTool) DrawOverlay(s render.Surface, cam viewport.Camera) {
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
		case t.down:
			next := curvePoint{pos: t.downPos}
			if t.hasHandle {
				next = curvePoint{pos: t.downPos, smooth: true, handleOut: t.handle}
			}
			if last.smooth || next.smooth {
				drawPreview(s, previewBezier(last.pos, last.out(), next.in(), t.downPos), zoom)
			} else {
				drawPreview(s, previewLine(last.pos, t.downPos), zoom)
			}
		case t.hasMouse && last.smooth:
			drawPreview(s, previewBezier(last.pos, last.handleOut, t.mouse, t.mouse), zoom)
		case t.hasMouse:
			drawPreview(s, previewLine(last.pos, t.mouse), zoom)
		}
	}

	if t.down && t.hasHandle {
		drawControlHandle(s, t.downPos, t.handle, zoom)
		drawControlHandle(s, t.downPos, t.handle.Reflect(t.downPos), zoom)
	}

	if t.hasMouse && !t.down && t.nearFirst(t.mouse) {
		drawCloseIndicator(s, t.points[0].pos, zoom)
	}

	for i, pt := range t.points {
		drawPoint(s, pt.pos, zoom, i == 0)
		if pt.smooth {
			drawControlHandle(s, pt.pos, pt.handleOut, zoom)
			drawControlHandle(s, pt.pos, pt.in(), zoom)
		}
	}
	if t.down {
		drawPoint(s, t.downPos, zoom, false)
	}
}
