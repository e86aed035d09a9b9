package patternkit

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
)

type NodeKind uint8

const (
	// The piece origin, where the outline starts.
	OriginNode NodeKind = iota
	// The end point of a segment.
	AnchorNode
	// A Bézier control point of a segment.
	HandleNode
)

// HandleSlot names which control point of a segment a handle is.
type HandleSlot uint8

const (
	SlotNone HandleSlot = iota
	// The single control point of a quadratic segment.
	SlotControl
	// The first control point of a cubic segment.
	SlotControl1
	// The second control point of a cubic segment.
	SlotControl2
)

func (s HandleSlot) String() string {
	switch s {
	case SlotControl:
		return "control"
	case SlotControl1:
		return "control1"
	case SlotControl2:
		return "control2"
	default:
		return "none"
	}
}

// NodeRef addresses one editable point of a piece. It is comparable and can
// be used as a map key. Construct it with [OriginRef], [AnchorAt] or
// [HandleAt].
type NodeRef struct {
	Kind    NodeKind
	Segment int
	Slot    HandleSlot
}

func OriginRef() NodeRef {
	return NodeRef{Kind: OriginNode}
}

// AnchorAt refers to the end point of outline segment i.
func AnchorAt(i int) NodeRef {
	return NodeRef{Kind: AnchorNode, Segment: i}
}

// HandleAt refers to a control point of outline segment i.
func HandleAt(i int, slot HandleSlot) NodeRef {
	return NodeRef{Kind: HandleNode, Segment: i, Slot: slot}
}

func (r NodeRef) IsHandle() bool { return r.Kind == HandleNode }

func (r NodeRef) String() string {
	switch r.Kind {
	case OriginNode:
		return "origin"
	case AnchorNode:
		return fmt.Sprintf("anchor[%d]", r.Segment)
	default:
		return fmt.Sprintf("handle[%d].%s", r.Segment, r.Slot)
	}
}

// rank orders nodes within a segment: its handles, then its anchor.
func (r NodeRef) rank() (int, int) {
	switch r.Kind {
	case OriginNode:
		return -1, 0
	case AnchorNode:
		return r.Segment, 4
	default:
		return r.Segment, int(r.Slot)
	}
}

// Compare orders node references the way the outline is traversed: the
// origin first, then for each segment its handles followed by its anchor.
func (r NodeRef) Compare(o NodeRef) int {
	rs, rr := r.rank()
	os, or := o.rank()
	if c := cmp.Compare(rs, os); c != 0 {
		return c
	}
	return cmp.Compare(rr, or)
}

// parent returns the anchor a handle is attached to. control and control1
// hang off the segment's start, control2 off its end.
func (r NodeRef) parent() NodeRef {
	if r.Kind != HandleNode {
		return r
	}
	if r.Slot == SlotControl2 {
		return AnchorAt(r.Segment)
	}
	if r.Segment == 0 {
		return OriginRef()
	}
	return AnchorAt(r.Segment - 1)
}

// NodeSet is a set of selected nodes.
type NodeSet map[NodeRef]struct{}

// NewNodeSet returns a set holding refs.
func NewNodeSet(refs ...NodeRef) NodeSet {
	s := make(NodeSet, len(refs))
	for _, r := range refs {
		s[r] = struct{}{}
	}
	return s
}

func (s NodeSet) Has(r NodeRef) bool {
	_, ok := s[r]
	return ok
}

func (s NodeSet) Add(r NodeRef) { s[r] = struct{}{} }

// Toggle adds r if absent and removes it otherwise.
func (s NodeSet) Toggle(r NodeRef) {
	if s.Has(r) {
		delete(s, r)
	} else {
		s[r] = struct{}{}
	}
}

// Sorted returns the members in path order.
func (s NodeSet) Sorted() []NodeRef {
	return slices.SortedFunc(maps.Keys(s), NodeRef.Compare)
}

// Node is an editable point of a piece as extracted by [ExtractNodes].
type Node struct {
	Ref      NodeRef
	Position Point
	// Parent is the anchor a handle is attached to. For anchors and the
	// origin it equals Ref.
	Parent NodeRef
}

// ExtractNodes lists the editable points of p in path order: the origin,
// then for each segment its handles followed by its anchor. An arc's anchor
// sits at its end point.
func ExtractNodes(p Piece) []Node {
	nodes := make([]Node, 0, 1+2*len(p.Outline))
	nodes = append(nodes, Node{Ref: OriginRef(), Position: p.Origin, Parent: OriginRef()})
	handle := func(i int, slot HandleSlot, pos Point) {
		ref := HandleAt(i, slot)
		nodes = append(nodes, Node{Ref: ref, Position: pos, Parent: ref.parent()})
	}
	for i, seg := range p.Outline {
		switch seg.Kind {
		case QuadSegment:
			handle(i, SlotControl, seg.Control)
		case CubicSegment:
			handle(i, SlotControl1, seg.Control1)
			handle(i, SlotControl2, seg.Control2)
		}
		ref := AnchorAt(i)
		nodes = append(nodes, Node{Ref: ref, Position: seg.EndPoint(), Parent: ref})
	}
	return nodes
}

// NodePosition returns the position of ref in p, or false if p has no such
// node.
func NodePosition(p Piece, ref NodeRef) (Point, bool) {
	if ref.Kind == OriginNode {
		return p.Origin, true
	}
	if ref.Segment < 0 || ref.Segment >= len(p.Outline) {
		return Point{}, false
	}
	seg := p.Outline[ref.Segment]
	if ref.Kind == AnchorNode {
		return seg.EndPoint(), true
	}
	switch {
	case seg.Kind == QuadSegment && ref.Slot == SlotControl:
		return seg.Control, true
	case seg.Kind == CubicSegment && ref.Slot == SlotControl1:
		return seg.Control1, true
	case seg.Kind == CubicSegment && ref.Slot == SlotControl2:
		return seg.Control2, true
	}
	return Point{}, false
}

// MoveNodes returns p with every node in refs moved by v. All other points
// are copied unchanged. Moving an arc's anchor moves the whole arc.
func (p Piece) MoveNodes(refs NodeSet, v Vec2) Piece {
	out := p.Clone()
	if refs.Has(OriginRef()) {
		out.Origin = p.Origin.Translate(v)
	}
	for i, seg := range out.Outline {
		anchor := refs.Has(AnchorAt(i))
		switch seg.Kind {
		case LineSegment:
			if anchor {
				seg.End = seg.End.Translate(v)
			}
		case QuadSegment:
			if anchor {
				seg.End = seg.End.Translate(v)
			}
			if refs.Has(HandleAt(i, SlotControl)) {
				seg.Control = seg.Control.Translate(v)
			}
		case CubicSegment:
			if anchor {
				seg.End = seg.End.Translate(v)
			}
			if refs.Has(HandleAt(i, SlotControl1)) {
				seg.Control1 = seg.Control1.Translate(v)
			}
			if refs.Has(HandleAt(i, SlotControl2)) {
				seg.Control2 = seg.Control2.Translate(v)
			}
		case ArcSegment:
			if anchor {
				seg.Center = seg.Center.Translate(v)
			}
		}
		out.Outline[i] = seg
	}
	return out
}
