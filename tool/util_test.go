package tool

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/patternkit/patternkit"
	"github.com/patternkit/patternkit/viewport"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var approx = cmpopts.EquateApprox(0, 1e-9)

// fakeContext is an in-memory Context.
type fakeContext struct {
	cam      viewport.Camera
	pieces   []patternkit.Piece
	selected []string
	hovered  string
	snap     bool
	factory  patternkit.Factory
	active   Kind

	created []string
	updated []string
	deleted []string
}

func newFakeContext(pieces ...patternkit.Piece) *fakeContext {
	return &fakeContext{cam: viewport.NewCamera(), pieces: pieces}
}

func (c *fakeContext) Camera() viewport.Camera      { return c.cam }
func (c *fakeContext) Pieces() []patternkit.Piece   { return c.pieces }
func (c *fakeContext) SelectedIDs() []string        { return c.selected }
func (c *fakeContext) IsSelected(id string) bool    { return slices.Contains(c.selected, id) }
func (c *fakeContext) HoveredID() string            { return c.hovered }
func (c *fakeContext) SnapEnabled() bool            { return c.snap }
func (c *fakeContext) Factory() *patternkit.Factory { return &c.factory }
func (c *fakeContext) SetHovered(id string)         { c.hovered = id }
func (c *fakeContext) SetActiveTool(k Kind)         { c.active = k }
func (c *fakeContext) SelectPiece(id string)        { c.selected = []string{id} }
func (c *fakeContext) ClearSelection()              { c.selected = nil }

func (c *fakeContext) CreatePiece(p patternkit.Piece) {
	c.pieces = append(c.pieces, p)
	c.created = append(c.created, p.ID)
}

func (c *fakeContext) UpdatePiece(id string, p patternkit.Piece) {
	i := slices.IndexFunc(c.pieces, func(q patternkit.Piece) bool { return q.ID == id })
	if i >= 0 {
		c.pieces[i] = p
		c.updated = append(c.updated, id)
	}
}

func (c *fakeContext) DeletePiece(id string) {
	c.pieces = slices.DeleteFunc(c.pieces, func(q patternkit.Piece) bool { return q.ID == id })
	c.deleted = append(c.deleted, id)
}

func (c *fakeContext) TogglePiece(id string) {
	if i := slices.Index(c.selected, id); i >= 0 {
		c.selected = slices.Delete(c.selected, i, i+1)
	} else {
		c.selected = append(c.selected, id)
	}
}

func (c *fakeContext) last() patternkit.Piece {
	return c.pieces[len(c.pieces)-1]
}

func left(x, y float64) PointerState {
	return PointerState{World: patternkit.Pt(x, y), Screen: patternkit.Pt(x, y)}
}

func shifted(st PointerState) PointerState {
	st.Shift = true
	return st
}

// click sends a pointer down and up at the same place.
func click(tl Tool, x, y float64) {
	tl.PointerDown(left(x, y))
	tl.PointerUp(left(x, y))
}

// drag presses at (x0, y0), moves to (x1, y1) and releases there.
func drag(tl Tool, x0, y0, x1, y1 float64) {
	tl.PointerDown(left(x0, y0))
	tl.PointerMove(left(x1, y1))
	tl.PointerUp(left(x1, y1))
}

var (
	pt   = patternkit.Pt
	line = patternkit.LineSeg
)
