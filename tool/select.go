package tool

import (
	"math"
	"slices"

	"github.com/patternkit/patternkit"
	"github.com/patternkit/patternkit/render"
	"github.com/patternkit/patternkit/viewport"
)

// SelectTool selects, moves, duplicates, rotates and deletes whole pieces.
//
// Dragging a piece moves the whole selection. With Alt held when the drag
// starts, the dragged pieces are duplicated at the drop position instead,
// and with Shift held as well the copies are mirrored left to right.
// KeyRotate turns every selected piece a quarter turn clockwise about its
// own center and KeyRotateBack turns it back.
type SelectTool struct {
	ctx Context

	dragging  bool
	moved     bool
	duplicate bool
	mirror    bool
	dragIDs   []string
	start     patternkit.Point
	offset    patternkit.Vec2
}

// NewSelectTool returns a select tool working on ctx.
func NewSelectTool(ctx Context) *SelectTool {
	return &SelectTool{ctx: ctx}
}

func (t *SelectTool) Kind() Kind { return Select }

func (t *SelectTool) Cleanup() {
	*t = SelectTool{ctx: t.ctx}
}

func (t *SelectTool) hit(world patternkit.Point) *patternkit.Piece {
	return patternkit.HitTestPieces(world, t.ctx.Pieces(), t.ctx.Camera().Zoom)
}

func (t *SelectTool) PointerDown(st PointerState) {
	if st.Button != ButtonLeft {
		return
	}
	hit := t.hit(st.World)
	if hit == nil {
		t.ctx.ClearSelection()
		return
	}

	switch {
	case st.Shift && !st.Alt:
		t.ctx.TogglePiece(hit.ID)
	case !t.ctx.IsSelected(hit.ID):
		t.ctx.SelectPiece(hit.ID)
	}

	t.dragIDs = slices.Clone(t.ctx.SelectedIDs())
	if !slices.Contains(t.dragIDs, hit.ID) {
		t.dragIDs = append(t.dragIDs, hit.ID)
	}
	t.dragging = true
	t.moved = false
	t.duplicate = st.Alt
	t.mirror = st.Alt && st.Shift
	t.start = st.World
	t.offset = patternkit.Vec2{}
}

func (t *SelectTool) PointerMove(st PointerState) {
	if t.dragging {
		d := st.World.Sub(t.start)
		if !t.moved && !beyondDeadZone(d, t.ctx.Camera().Zoom) {
			return
		}
		t.moved = true
		t.offset = d
		return
	}

	var id string
	if hit := t.hit(st.World); hit != nil {
		id = hit.ID
	}
	if id != t.ctx.HoveredID() {
		t.ctx.SetHovered(id)
	}
}

// dragged returns p as it will look once dropped.
func (t *SelectTool) dragged(p patternkit.Piece) patternkit.Piece {
	if t.mirror {
		p = p.MirrorX()
	}
	return p.Translate(t.offset)
}

func (t *SelectTool) PointerUp(PointerState) {
	if t.dragging && t.moved {
		if t.duplicate {
			t.dropCopies()
		} else {
			for _, id := range t.dragIDs {
				if p, ok := findPiece(t.ctx, id); ok {
					t.ctx.UpdatePiece(id, p.Translate(t.offset))
				}
			}
		}
	}
	t.Cleanup()
}

func (t *SelectTool) dropCopies() {
	var created []string
	for _, id := range t.dragIDs {
		p, ok := findPiece(t.ctx, id)
		if !ok {
			continue
		}
		cp := t.dragged(p).Duplicate()
		t.ctx.CreatePiece(cp)
		created = append(created, cp.ID)
	}
	patternkit.Logger().Debug("pieces duplicated", "count", len(created), "mirrored", t.mirror)
	if len(created) == 0 {
		return
	}
	t.ctx.ClearSelection()
	for _, id := range created {
		t.ctx.TogglePiece(id)
	}
}

func (t *SelectTool) DoubleClick(st PointerState) {
	hit := t.hit(st.World)
	if hit == nil {
		return
	}
	t.ctx.SelectPiece(hit.ID)
	t.ctx.SetActiveTool(NodeEdit)
}

func (t *SelectTool) KeyDown(k Key) {
	switch k {
	case KeyDelete, KeyBackspace:
		ids := slices.Clone(t.ctx.SelectedIDs())
		if len(ids) == 0 {
			return
		}
		for _, id := range ids {
			t.ctx.DeletePiece(id)
		}
		t.ctx.ClearSelection()
	case KeyRotate:
		t.rotateSelection(math.Pi / 2)
	case KeyRotateBack:
		t.rotateSelection(-math.Pi / 2)
	}
}

func (t *SelectTool) rotateSelection(th float64) {
	if t.dragging {
		return
	}
	for _, id := range t.ctx.SelectedIDs() {
		if p, ok := findPiece(t.ctx, id); ok {
			t.ctx.UpdatePiece(id, p.Rotate(th))
		}
	}
}

func (t *SelectTool) Cursor() Cursor {
	switch {
	case t.dragging && t.moved:
		return CursorGrabbing
	case t.ctx.HoveredID() != "":
		return CursorPointer
	}
	return CursorDefault
}

// DrawOverlay draws a dashed ghost of every dragged piece at its drop
// position.
func (t *SelectTool) DrawOverlay(s render.Surface, cam viewport.Camera) {
	if !t.dragging || !t.moved || len(t.dragIDs) == 0 {
		return
	}
	beginOverlay(s, cam)
	defer endOverlay(s)

	s.SetColor(render.Ghost)
	s.SetLineWidth(1.5 / cam.Zoom)
	s.SetDash(4/cam.Zoom, 4/cam.Zoom)
	for _, id := range t.dragIDs {
		p, ok := findPiece(t.ctx, id)
		if !ok {
			continue
		}
		g := t.dragged(p)
		render.TracePath(s, patternkit.OutlineElements(g.Origin, g.Outline, false))
		s.Stroke()
	}
}
