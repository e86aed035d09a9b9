package tool

import (
	"github.com/patternkit/patternkit"
	"github.com/patternkit/patternkit/render"
	"github.com/patternkit/patternkit/viewport"
)

// MeasureTool measures the distance between two clicked points. It never
// touches the pieces. A third click starts a new measurement.
type MeasureTool struct {
	ctx Context

	// n is the number of placed points, 0 to 2.
	n        int
	a, b     patternkit.Point
	mouse    patternkit.Point
	hasMouse bool
}

// NewMeasureTool returns a measure tool working on ctx.
func NewMeasureTool(ctx Context) *MeasureTool {
	return &MeasureTool{ctx: ctx}
}

func (t *MeasureTool) Kind() Kind { return Measure }

func (t *MeasureTool) Cleanup() {
	*t = MeasureTool{ctx: t.ctx}
}

func (t *MeasureTool) PointerDown(st PointerState) {
	if st.Button != ButtonLeft {
		return
	}
	switch t.n {
	case 0:
		t.a, t.n = st.World, 1
	case 1:
		t.b, t.n = st.World, 2
	default:
		t.a, t.n = st.World, 1
	}
}

func (t *MeasureTool) PointerMove(st PointerState) {
	t.mouse = st.World
	t.hasMouse = true
}

func (t *MeasureTool) PointerUp(PointerState)   {}
func (t *MeasureTool) DoubleClick(PointerState) {}

func (t *MeasureTool) KeyDown(k Key) {
	if k == KeyEscape {
		t.Cleanup()
	}
}

func (t *MeasureTool) Cursor() Cursor { return CursorCrosshair }

// Segment returns the measured segment. While only one point is placed the
// pointer position stands in for the second. ok is false when there is
// nothing to measure yet.
func (t *MeasureTool) Segment() (from, to patternkit.Point, ok bool) {
	switch {
	case t.n == 2:
		return t.a, t.b, true
	case t.n == 1 && t.hasMouse:
		return t.a, t.mouse, true
	}
	return patternkit.Point{}, patternkit.Point{}, false
}

// Label returns the distance label shown for the current measurement, or
// the empty string.
func (t *MeasureTool) Label() string {
	from, to, ok := t.Segment()
	if !ok {
		return ""
	}
	return DistanceLabel(from, to)
}

func (t *MeasureTool) DrawOverlay(s render.Surface, cam viewport.Camera) {
	if t.n == 0 {
		return
	}
	beginOverlay(s, cam)
	defer endOverlay(s)

	if from, to, ok := t.Segment(); ok {
		drawPreview(s, previewLine(from, to), cam.Zoom)
		drawDistanceLabel(s, from, to, cam.Zoom)
	}
	drawPoint(s, t.a, cam.Zoom, true)
	if t.n == 2 {
		drawPoint(s, t.b, cam.Zoom, false)
	}
}
