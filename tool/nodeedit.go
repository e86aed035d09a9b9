package tool

import (
	"github.com/patternkit/patternkit"
	"github.com/patternkit/patternkit/render"
	"github.com/patternkit/patternkit/viewport"
)

const (
	anchorHitPx = 6
	handleHitPx = 5
	anchorSize  = 5
)

// NodeEditTool moves the individual points of the one selected piece: its
// origin, segment anchors and Bézier handles.
type NodeEditTool struct {
	ctx Context

	selected patternkit.NodeSet
	dragging bool
	moved    bool
	start    patternkit.Point
	offset   patternkit.Vec2
}

// NewNodeEditTool returns a node edit tool working on ctx.
func NewNodeEditTool(ctx Context) *NodeEditTool {
	return &NodeEditTool{ctx: ctx, selected: patternkit.NewNodeSet()}
}

func (t *NodeEditTool) Kind() Kind { return NodeEdit }

func (t *NodeEditTool) Cleanup() {
	*t = NodeEditTool{ctx: t.ctx, selected: patternkit.NewNodeSet()}
}

// Selected returns the selected nodes in path order.
func (t *NodeEditTool) Selected() []patternkit.NodeRef {
	return t.selected.Sorted()
}

// target returns the piece being edited, which requires exactly one
// selected piece.
func (t *NodeEditTool) target() (patternkit.Piece, bool) {
	ids := t.ctx.SelectedIDs()
	if len(ids) != 1 {
		return patternkit.Piece{}, false
	}
	return findPiece(t.ctx, ids[0])
}

// hitNode returns the topmost node within its hit radius of world. Nodes
// later in path order are on top.
func hitNode(world patternkit.Point, nodes []patternkit.Node, zoom float64) (patternkit.Node, bool) {
	for i := len(nodes) - 1; i >= 0; i-- {
		n := nodes[i]
		r := float64(anchorHitPx)
		if n.Ref.IsHandle() {
			r = handleHitPx
		}
		if world.Distance(n.Position) < r/zoom {
			return n, true
		}
	}
	return patternkit.Node{}, false
}

func (t *NodeEditTool) PointerDown(st PointerState) {
	if st.Button != ButtonLeft {
		return
	}
	p, ok := t.target()
	if !ok {
		return
	}
	hit, ok := hitNode(st.World, patternkit.ExtractNodes(p), t.ctx.Camera().Zoom)
	if !ok {
		t.selected = patternkit.NewNodeSet()
		return
	}

	switch {
	case st.Shift:
		t.selected.Toggle(hit.Ref)
	case !t.selected.Has(hit.Ref):
		t.selected = patternkit.NewNodeSet(hit.Ref)
	}
	t.dragging = true
	t.moved = false
	t.start = st.World
	t.offset = patternkit.Vec2{}
}

// PointerMove snaps the first selected node's destination to the grid and
// moves every other selected node by the same offset.
func (t *NodeEditTool) PointerMove(st PointerState) {
	if !t.dragging {
		return
	}
	cam := t.ctx.Camera()
	d := st.World.Sub(t.start)
	if !t.moved && !beyondDeadZone(d, cam.Zoom) {
		return
	}
	t.moved = true

	p, ok := t.target()
	if !ok {
		return
	}
	t.offset = d
	for _, n := range patternkit.ExtractNodes(p) {
		if !t.selected.Has(n.Ref) {
			continue
		}
		snapped := viewport.SnapToGrid(n.Position.Translate(d), cam.Zoom, t.ctx.SnapEnabled())
		t.offset = snapped.Point.Sub(n.Position)
		break
	}
}

func (t *NodeEditTool) PointerUp(PointerState) {
	if t.dragging && t.moved && len(t.selected) > 0 {
		if p, ok := t.target(); ok {
			patternkit.Logger().Debug("nodes moved", "id", p.ID, "nodes", len(t.selected), "offset", t.offset)
			t.ctx.UpdatePiece(p.ID, p.MoveNodes(t.selected, t.offset))
		}
	}
	t.dragging = false
	t.moved = false
	t.offset = patternkit.Vec2{}
}

func (t *NodeEditTool) DoubleClick(PointerState) {}

func (t *NodeEditTool) KeyDown(k Key) {
	if k == KeyEscape {
		t.selected = patternkit.NewNodeSet()
	}
}

func (t *NodeEditTool) Cursor() Cursor {
	if t.dragging && t.moved {
		return CursorGrabbing
	}
	return CursorDefault
}

// DrawOverlay draws handle connectors, square anchors and round handles.
// While dragging, selected nodes are drawn at their drop position.
func (t *NodeEditTool) DrawOverlay(s render.Surface, cam viewport.Camera) {
	p, ok := t.target()
	if !ok {
		return
	}
	zoom := cam.Zoom
	nodes := patternkit.ExtractNodes(p)

	var offset patternkit.Vec2
	if t.moved {
		offset = t.offset
	}
	pos := make(map[patternkit.NodeRef]patternkit.Point, len(nodes))
	for _, n := range nodes {
		at := n.Position
		if t.selected.Has(n.Ref) {
			at = at.Translate(offset)
		}
		pos[n.Ref] = at
	}

	beginOverlay(s, cam)
	defer endOverlay(s)

	s.SetColor(render.HandleLine)
	s.SetLineWidth(1 / zoom)
	s.SetDash(3/zoom, 2/zoom)
	for _, n := range nodes {
		if !n.Ref.IsHandle() {
			continue
		}
		s.MoveTo(pos[n.Parent])
		s.LineTo(pos[n.Ref])
		s.Stroke()
	}
	s.SetDash()

	for _, n := range nodes {
		at := pos[n.Ref]
		sel := t.selected.Has(n.Ref)
		if n.Ref.IsHandle() {
			render.Circle(s, at, 3/zoom)
			s.SetColor(render.HandleUnselected)
			if sel {
				s.SetColor(render.HandleSelected)
			}
			s.Fill()
			continue
		}
		half := anchorSize / zoom / 2
		border := 1 / zoom
		render.Rectangle(s, patternkit.Rect{X0: at.X - half - border, Y0: at.Y - half - border, X1: at.X + half + border, Y1: at.Y + half + border})
		s.SetColor(render.AnchorBorder)
		s.Fill()
		render.Rectangle(s, patternkit.Rect{X0: at.X - half, Y0: at.Y - half, X1: at.X + half, Y1: at.Y + half})
		s.SetColor(render.AnchorUnselected)
		if sel {
			s.SetColor(render.AnchorSelected)
		}
		s.Fill()
	}
}
