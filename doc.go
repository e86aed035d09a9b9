// Package patternkit is the geometric core of an interactive pattern-piece
// editor. It owns the data model of a pattern piece (a curved outline plus
// grain line, notches and internal lines) and the exact and approximate
// geometry that editing tools are built on.
//
// # Coordinates
//
// World coordinates are millimetres with Y pointing down. [Point] is a
// position, [Vec2] a displacement and [Affine] an affine transform in the
// usual augmented matrix form.
//
// # Outlines
//
// An outline is a slice of [Segment], a tagged variant of lines, quadratic
// and cubic Béziers, and circular arcs. Every segment except an arc starts
// where the previous one ended, or at the piece origin for the first one.
// [OutlineElements] streams an outline as [PathElement] values for drawing,
// and [FlattenOutline] approximates it with a polyline for hit-testing.
//
// # Operations
//
// Pieces are values. [Piece.Translate], [Piece.Duplicate], [Piece.MirrorX]
// and [Piece.MoveNodes] return new pieces and leave their receiver alone.
// Mirroring re-winds the outline so fills and point-in-polygon tests see
// the same winding as before.
//
// Editable points are addressed by [NodeRef]: the origin, the anchor at the
// end of each segment, and the Bézier handles of each segment.
//
// # Sub-packages
//
// The viewport package holds camera and snapping math, render draws pieces
// and grids onto a drawing surface, tool implements the interactive tools,
// and session ties them into an editing session.
package patternkit
