package patternkit

import (
	"iter"
	"slices"
)

// Metadata holds the cutting information of a piece.
type Metadata struct {
	FabricType  *string `json:"fabric_type"`
	CutQuantity int     `json:"cut_quantity"`
	Mirror      bool    `json:"mirror"`
	Notes       string  `json:"notes"`
}

// Piece is a pattern piece: a curved outline starting at Origin, plus the
// annotations drawn on it.
//
// Pieces are owned by a store. Operations on a Piece never modify the
// receiver; they return a new value that shares no slices with it.
type Piece struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Origin          Point       `json:"origin"`
	Outline         []Segment   `json:"outline"`
	GrainLine       *[2]Point   `json:"grain_line"`
	SeamAllowanceMM float64     `json:"seam_allowance_mm"`
	Notches         []Point     `json:"notches"`
	InternalLines   [][]Segment `json:"internal_lines"`
	Metadata        Metadata    `json:"metadata"`
}

// Clone returns a deep copy of p.
func (p Piece) Clone() Piece {
	out := p
	out.Outline = slices.Clone(p.Outline)
	if p.GrainLine != nil {
		gl := *p.GrainLine
		out.GrainLine = &gl
	}
	out.Notches = slices.Clone(p.Notches)
	if p.InternalLines != nil {
		out.InternalLines = make([][]Segment, len(p.InternalLines))
		for i, l := range p.InternalLines {
			out.InternalLines[i] = slices.Clone(l)
		}
	}
	if p.Metadata.FabricType != nil {
		ft := *p.Metadata.FabricType
		out.Metadata.FabricType = &ft
	}
	return out
}

// EndPoint returns where the outline ends, which is Origin for an empty
// outline.
func (p Piece) EndPoint() Point {
	if len(p.Outline) == 0 {
		return p.Origin
	}
	return p.Outline[len(p.Outline)-1].EndPoint()
}

// IsClosed reports whether the outline returns to its origin.
func (p Piece) IsClosed() bool {
	return len(p.Outline) > 0 && p.EndPoint().DistanceSquared(p.Origin) < closeEpsilon*closeEpsilon
}

const closeEpsilon = 1e-6

// Anchors returns the outline vertices: the origin followed by the end of
// every segment.
func (p Piece) Anchors() []Point {
	out := make([]Point, 0, len(p.Outline)+1)
	out = append(out, p.Origin)
	for _, seg := range p.Outline {
		out = append(out, seg.EndPoint())
	}
	return out
}

// PathElements streams the outline for drawing, closing the path.
func (p Piece) PathElements() iter.Seq[PathElement] {
	return OutlineElements(p.Origin, p.Outline, true)
}

// Bounds returns the box around the origin and every segment end, with arcs
// counted by their full circle. Control points are not included. It is the
// box the mirror operations reflect across.
func (p Piece) Bounds() Rect {
	r := EmptyRect().UnionPoint(p.Origin)
	for _, seg := range p.Outline {
		if seg.Kind == ArcSegment {
			r = r.Union(seg.Arc().Bounds())
			continue
		}
		r = r.UnionPoint(seg.End)
	}
	return r
}

// ControlBounds returns the box around the origin, every anchor and control
// point, and the full circle of every arc. Hit-testing rejects points
// outside of it.
func (p Piece) ControlBounds() Rect {
	r := EmptyRect().UnionPoint(p.Origin)
	for _, seg := range p.Outline {
		if seg.Kind == ArcSegment {
			r = r.Union(seg.Arc().Bounds())
			continue
		}
		for _, pt := range seg.Points() {
			r = r.UnionPoint(pt)
		}
	}
	return r
}
