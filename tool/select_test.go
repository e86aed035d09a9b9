package tool

import (
	"testing"

	"github.com/patternkit/patternkit"
	"github.com/patternkit/patternkit/render"
	"github.com/patternkit/patternkit/render/rendertest"
)

// twoRects returns a context holding two default rectangles, spanning x 0
// to 200 and 250 to 450.
func twoRects() (*fakeContext, patternkit.Piece, patternkit.Piece) {
	var f patternkit.Factory
	a, b := f.DefaultRectangle(), f.DefaultRectangle()
	return newFakeContext(a, b), a, b
}

func alt(st PointerState) PointerState {
	st.Alt = true
	return st
}

func hasPoint(pts []patternkit.Point, want patternkit.Point) bool {
	for _, p := range pts {
		if p.Distance(want) < 1e-9 {
			return true
		}
	}
	return false
}

func TestSelectClick(t *testing.T) {
	ctx, a, b := twoRects()
	tl := NewSelectTool(ctx)

	click(tl, 100, 100)
	diff(t, []string{a.ID}, ctx.selected)
	click(tl, 300, 100)
	diff(t, []string{b.ID}, ctx.selected)
	click(tl, 1000, 1000)
	diff(t, []string(nil), ctx.selected)
	diff(t, []string(nil), ctx.updated)
}

func TestSelectShiftToggles(t *testing.T) {
	ctx, a, b := twoRects()
	tl := NewSelectTool(ctx)

	click(tl, 100, 100)
	tl.PointerDown(shifted(left(300, 100)))
	tl.PointerUp(shifted(left(300, 100)))
	diff(t, []string{a.ID, b.ID}, ctx.selected)

	tl.PointerDown(shifted(left(100, 100)))
	tl.PointerUp(shifted(left(100, 100)))
	diff(t, []string{b.ID}, ctx.selected)
}

func TestSelectDragMoves(t *testing.T) {
	ctx, a, b := twoRects()
	tl := NewSelectTool(ctx)

	drag(tl, 100, 100, 150, 120)
	diff(t, []string{a.ID}, ctx.updated)
	diff(t, pt(50, 20), ctx.pieces[0].Origin)
	diff(t, pt(250, 20), ctx.pieces[0].Outline[0].End)
	diff(t, b, ctx.pieces[1])
	diff(t, CursorDefault, tl.Cursor())
}

func TestSelectDragMovesSelection(t *testing.T) {
	ctx, a, b := twoRects()
	tl := NewSelectTool(ctx)
	click(tl, 100, 100)
	tl.PointerDown(shifted(left(300, 100)))
	tl.PointerUp(shifted(left(300, 100)))

	drag(tl, 100, 100, 100, 110)
	diff(t, []string{a.ID, b.ID}, ctx.updated)
	diff(t, pt(0, 10), ctx.pieces[0].Origin)
	diff(t, pt(250, 10), ctx.pieces[1].Origin)
	diff(t, []string{a.ID, b.ID}, ctx.selected)
}

func TestSelectDeadZone(t *testing.T) {
	ctx, _, _ := twoRects()
	ctx.cam.Zoom = 2
	tl := NewSelectTool(ctx)

	// Less than 2 screen pixels at zoom 2.
	drag(tl, 100, 100, 100.4, 100.5)
	diff(t, []string(nil), ctx.updated)

	drag(tl, 100, 100, 100.5, 100.5)
	diff(t, 1, len(ctx.updated))
	diff(t, pt(0.5, 0.5), ctx.pieces[0].Origin)
}

func TestSelectAltDuplicates(t *testing.T) {
	ctx, a, _ := twoRects()
	tl := NewSelectTool(ctx)

	tl.PointerDown(alt(left(100, 100)))
	tl.PointerMove(alt(left(100, 500)))
	tl.PointerUp(alt(left(100, 500)))

	diff(t, 3, len(ctx.pieces))
	diff(t, a, ctx.pieces[0])
	cp := ctx.last()
	diff(t, "Piece 1 copy", cp.Name)
	diff(t, pt(0, 400), cp.Origin)
	diff(t, []string{cp.ID}, ctx.selected)
	diff(t, []string{cp.ID}, ctx.created)
	diff(t, []string(nil), ctx.updated)
	if cp.ID == a.ID {
		t.Error("duplicate shares the id of its source")
	}
}

func TestSelectAltShiftMirrors(t *testing.T) {
	var f patternkit.Factory
	tri := f.FromOutline(pt(0, 0), []patternkit.Segment{
		line(pt(100, 0)),
		line(pt(0, 50)),
		line(pt(0, 0)),
	})
	ctx := newFakeContext(tri)
	tl := NewSelectTool(ctx)

	st := shifted(alt(left(10, 10)))
	tl.PointerDown(st)
	st.World = pt(10, 210)
	tl.PointerMove(st)
	tl.PointerUp(st)

	diff(t, 2, len(ctx.pieces))
	cp := ctx.last()
	diff(t, []string{cp.ID}, ctx.selected)
	anchors := cp.Anchors()
	for _, want := range []patternkit.Point{pt(100, 200), pt(0, 200), pt(100, 250)} {
		if !hasPoint(anchors, want) {
			t.Errorf("mirrored copy %v lacks %v", anchors, want)
		}
	}
	if hasPoint(anchors, pt(0, 250)) {
		t.Errorf("mirrored copy %v was not mirrored", anchors)
	}
	diff(t, tri.Area(), cp.Area(), approx)
}

func TestSelectDelete(t *testing.T) {
	ctx, a, b := twoRects()
	tl := NewSelectTool(ctx)

	tl.KeyDown(KeyDelete)
	diff(t, []string(nil), ctx.deleted)

	click(tl, 100, 100)
	tl.KeyDown(KeyBackspace)
	diff(t, []string{a.ID}, ctx.deleted)
	diff(t, []patternkit.Piece{b}, ctx.pieces)
	diff(t, []string(nil), ctx.selected)
}

func TestSelectRotate(t *testing.T) {
	ctx, a, b := twoRects()
	tl := NewSelectTool(ctx)

	tl.KeyDown(KeyRotate)
	diff(t, []string(nil), ctx.updated)

	click(tl, 100, 100)
	tl.KeyDown(KeyRotate)
	diff(t, []string{a.ID}, ctx.updated)
	got := ctx.pieces[0]
	diff(t, patternkit.Pt(250, 50), got.Origin, approx)
	diff(t, patternkit.Rect{X0: -50, Y0: 50, X1: 250, Y1: 250}, got.Bounds(), approx)
	diff(t, a.Area(), got.Area(), approx)
	diff(t, b, ctx.pieces[1])

	tl.KeyDown(KeyRotateBack)
	diff(t, a.Origin, ctx.pieces[0].Origin, approx)
	diff(t, a.Outline, ctx.pieces[0].Outline, approx)
}

func TestSelectDoubleClickEditsNodes(t *testing.T) {
	ctx, _, b := twoRects()
	tl := NewSelectTool(ctx)

	tl.DoubleClick(left(1000, 1000))
	diff(t, Kind(""), ctx.active)

	tl.DoubleClick(left(300, 100))
	diff(t, NodeEdit, ctx.active)
	diff(t, []string{b.ID}, ctx.selected)
}

func TestSelectHover(t *testing.T) {
	ctx, a, _ := twoRects()
	tl := NewSelectTool(ctx)

	tl.PointerMove(left(100, 100))
	diff(t, a.ID, ctx.hovered)
	diff(t, CursorPointer, tl.Cursor())
	tl.PointerMove(left(1000, 100))
	diff(t, "", ctx.hovered)
	diff(t, CursorDefault, tl.Cursor())
}

func TestSelectGhostOverlay(t *testing.T) {
	ctx, _, _ := twoRects()
	ctx.cam.Zoom = 2
	tl := NewSelectTool(ctx)

	rec := rendertest.New()
	tl.PointerDown(left(100, 100))
	tl.DrawOverlay(rec, ctx.cam)
	diff(t, 0, len(rec.Ops))

	tl.PointerMove(left(110, 100))
	diff(t, CursorGrabbing, tl.Cursor())
	tl.DrawOverlay(rec, ctx.cam)
	ghosts := rec.Filter("stroke", render.Ghost)
	diff(t, 1, len(ghosts))
	diff(t, patternkit.MoveTo(pt(20, 0)), ghosts[0].Path[0])
	diff(t, 0, rec.Depth())
	diff(t, []string(nil), ctx.updated)
}
