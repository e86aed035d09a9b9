package tool

import (
	"testing"

	"github.com/patternkit/patternkit"
	"github.com/patternkit/patternkit/render"
	"github.com/patternkit/patternkit/render/rendertest"
)

// editing returns a context with one default rectangle selected. Its
// anchors are (200,0), (200,300), (0,300) and (0,0).
func editing() (*fakeContext, patternkit.Piece) {
	var f patternkit.Factory
	p := f.DefaultRectangle()
	ctx := newFakeContext(p)
	ctx.selected = []string{p.ID}
	return ctx, p
}

func TestNodeEditDragAnchor(t *testing.T) {
	ctx, p := editing()
	tl := NewNodeEditTool(ctx)

	drag(tl, 200, 0, 205, 5)
	diff(t, []string{p.ID}, ctx.updated)
	want := p.Clone()
	want.Outline[0].End = pt(205, 5)
	diff(t, want, ctx.pieces[0])
	diff(t, []patternkit.NodeRef{patternkit.AnchorAt(0)}, tl.Selected())
}

func TestNodeEditSnapsFirstSelectedNode(t *testing.T) {
	ctx, p := editing()
	ctx.snap = true
	tl := NewNodeEditTool(ctx)

	drag(tl, 200, 300, 247, 302)
	diff(t, pt(250, 300), ctx.pieces[0].Outline[1].End)
	diff(t, p.Outline[0], ctx.pieces[0].Outline[0])
}

func TestNodeEditMultiSelect(t *testing.T) {
	ctx, p := editing()
	tl := NewNodeEditTool(ctx)

	click(tl, 200, 0)
	tl.PointerDown(shifted(left(200, 300)))
	tl.PointerUp(shifted(left(200, 300)))
	diff(t, []patternkit.NodeRef{patternkit.AnchorAt(0), patternkit.AnchorAt(1)}, tl.Selected())
	diff(t, []string(nil), ctx.updated)

	drag(tl, 200, 300, 210, 310)
	got := ctx.pieces[0]
	diff(t, pt(210, 10), got.Outline[0].End)
	diff(t, pt(210, 310), got.Outline[1].End)
	diff(t, p.Outline[2:], got.Outline[2:])
	diff(t, p.Origin, got.Origin)

	tl.PointerDown(shifted(left(210, 10)))
	tl.PointerUp(shifted(left(210, 10)))
	diff(t, []patternkit.NodeRef{patternkit.AnchorAt(1)}, tl.Selected())
}

func TestNodeEditTopmostNodeWins(t *testing.T) {
	ctx, _ := editing()
	tl := NewNodeEditTool(ctx)

	// The origin and the last anchor coincide.
	click(tl, 1, 1)
	diff(t, []patternkit.NodeRef{patternkit.AnchorAt(3)}, tl.Selected())
}

func TestNodeEditClearSelection(t *testing.T) {
	ctx, _ := editing()
	tl := NewNodeEditTool(ctx)

	click(tl, 200, 0)
	click(tl, 100, 100)
	diff(t, 0, len(tl.Selected()))

	click(tl, 200, 0)
	tl.KeyDown(KeyEscape)
	diff(t, 0, len(tl.Selected()))
}

func TestNodeEditRequiresSingleSelection(t *testing.T) {
	var f patternkit.Factory
	a, b := f.DefaultRectangle(), f.DefaultRectangle()
	for _, sel := range [][]string{nil, {a.ID, b.ID}} {
		ctx := newFakeContext(a, b)
		ctx.selected = sel
		tl := NewNodeEditTool(ctx)

		drag(tl, 200, 0, 210, 0)
		diff(t, []string(nil), ctx.updated)
		diff(t, 0, len(tl.Selected()))

		rec := rendertest.New()
		tl.DrawOverlay(rec, ctx.cam)
		diff(t, 0, len(rec.Ops))
	}
}

func TestNodeEditDragHandle(t *testing.T) {
	var f patternkit.Factory
	p := f.FromOutline(pt(0, 0), []patternkit.Segment{
		patternkit.CubicSeg(pt(30, -30), pt(70, -30), pt(100, 0)),
		line(pt(0, 0)),
	})
	ctx := newFakeContext(p)
	ctx.selected = []string{p.ID}
	tl := NewNodeEditTool(ctx)

	drag(tl, 31, -29, 31, -49)
	want := patternkit.CubicSeg(pt(30, -50), pt(70, -30), pt(100, 0))
	diff(t, want, ctx.pieces[0].Outline[0])
	diff(t, []patternkit.NodeRef{patternkit.HandleAt(0, patternkit.SlotControl1)}, tl.Selected())
}

func TestNodeEditOverlay(t *testing.T) {
	var f patternkit.Factory
	p := f.FromOutline(pt(0, 0), []patternkit.Segment{
		patternkit.CubicSeg(pt(30, -30), pt(70, -30), pt(100, 0)),
		line(pt(0, 0)),
	})
	ctx := newFakeContext(p)
	ctx.selected = []string{p.ID}
	tl := NewNodeEditTool(ctx)
	click(tl, 100, 0)

	rec := rendertest.New()
	tl.DrawOverlay(rec, ctx.cam)
	diff(t, 0, rec.Depth())
	diff(t, 2, len(rec.Filter("stroke", render.HandleLine)))
	diff(t, 2, len(rec.Filter("fill", render.HandleUnselected)))
	diff(t, 3, len(rec.Filter("fill", render.AnchorBorder)))
	diff(t, 1, len(rec.Filter("fill", render.AnchorSelected)))
	diff(t, 2, len(rec.Filter("fill", render.AnchorUnselected)))

	// While dragging, the selected anchor is drawn at its drop position.
	tl.PointerDown(left(100, 0))
	tl.PointerMove(left(120, 0))
	diff(t, CursorGrabbing, tl.Cursor())
	rec.Reset()
	tl.DrawOverlay(rec, ctx.cam)
	sel := rec.Filter("fill", render.AnchorSelected)
	diff(t, 1, len(sel))
	diff(t, patternkit.MoveTo(pt(117.5, -2.5)), sel[0].Path[0])
}
