package tool

import (
	"github.com/patternkit/patternkit"
	"github.com/patternkit/patternkit/render"
	"github.com/patternkit/patternkit/viewport"
)

// LineTool draws straight-edged outlines. Points snap to the grid, and with
// Shift held each new edge is constrained to a multiple of 45°.
type LineTool struct {
	ctx Context

	points   []patternkit.Point
	mouse    patternkit.Point
	hasMouse bool
	snap     viewport.SnapResult
}

// NewLineTool returns a line tool working on ctx.
func NewLineTool(ctx Context) *LineTool {
	return &LineTool{ctx: ctx}
}

func (t *LineTool) Kind() Kind { return Line }

func (t *LineTool) Cleanup() {
	t.points = nil
	t.hasMouse = false
	t.snap = viewport.SnapResult{}
}

// process constrains and snaps a pointer position.
func (t *LineTool) process(world patternkit.Point, shift bool) patternkit.Point {
	pt := world
	if shift && len(t.points) > 0 {
		pt = viewport.ConstrainAngle(t.points[len(t.points)-1], pt)
	}
	t.snap = viewport.SnapToGrid(pt, t.ctx.Camera().Zoom, t.ctx.SnapEnabled())
	return t.snap.Point
}

func (t *LineTool) nearFirst(pt patternkit.Point) bool {
	if len(t.points) == 0 {
		return false
	}
	return nearFirst(t.points[0], pt, len(t.points), t.ctx.Camera().Zoom)
}

// finish commits the draft. An outline of three or more points is always
// closed back to its first point.
func (t *LineTool) finish(closed bool) {
	if len(t.points) < 2 {
		return
	}
	origin := t.points[0]
	segs := make([]patternkit.Segment, 0, len(t.points))
	for _, pt := range t.points[1:] {
		segs = append(segs, patternkit.LineSeg(pt))
	}
	if closed || len(t.points) >= minClosePoints {
		segs = append(segs, patternkit.LineSeg(origin))
	}
	commit(t.ctx, Line, origin, segs)
	t.Cleanup()
}

func (t *LineTool) PointerDown(st PointerState) {
	if st.Button != ButtonLeft {
		return
	}
	pt := t.process(st.World, st.Shift)
	if t.nearFirst(pt) {
		t.finish(true)
		return
	}
	t.points = append(t.points, pt)
}

func (t *LineTool) PointerMove(st PointerState) {
	t.mouse = t.process(st.World, st.Shift)
	t.hasMouse = true
}

func (t *LineTool) PointerUp(PointerState) {}

func (t *LineTool) DoubleClick(PointerState) {
	t.points = dropDoubleClickPoint(t.points)
	t.finish(false)
}

func (t *LineTool) KeyDown(k Key) {
	switch k {
	case KeyEnter:
		t.finish(false)
	case KeyEscape:
		t.Cleanup()
	}
}

func (t *LineTool) Cursor() Cursor { return CursorCrosshair }

func (t *LineTool) DrawOverlay(s render.Surface, cam viewport.Camera) {
	if len(t.points) == 0 && !t.hasMouse {
		return
	}
	beginOverlay(s, cam)
	defer endOverlay(s)

	for i := 1; i < len(t.points); i++ {
		drawPreview(s, previewLine(t.points[i-1], t.points[i]), cam.Zoom)
	}
	if len(t.points) > 0 && t.hasMouse {
		drawPreview(s, previewLine(t.points[len(t.points)-1], t.mouse), cam.Zoom)
	}
	if t.hasMouse && t.nearFirst(t.mouse) {
		drawCloseIndicator(s, t.points[0], cam.Zoom)
	}
	if t.hasMouse && (t.snap.SnapX || t.snap.SnapY) {
		drawSnapIndicator(s, t.mouse, cam.Zoom, t.snap.SnapX, t.snap.SnapY)
	}
	for i, pt := range t.points {
		drawPoint(s, pt, cam.Zoom, i == 0)
	}
}
