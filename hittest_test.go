package patternkit

import (
	"testing"
)

func TestFlattenOutline(t *testing.T) {
	pieces := testPieces()
	if n := len(pieces[1].Flatten()); n != 1+CubicSteps+QuadSteps+2 {
		t.Errorf("curvy piece flattened to %d points", n)
	}
	// The arc of the gap piece contributes its start point as well.
	if n := len(pieces[3].Flatten()); n != 1+1+1+ArcSteps+2 {
		t.Errorf("gap piece flattened to %d points", n)
	}
	diff(t, []Point{Pt(3, 4)}, FlattenOutline(Pt(3, 4), nil))
}

func TestPointInPolygon(t *testing.T) {
	square := []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10)}
	if !PointInPolygon(Pt(5, 5), square) {
		t.Error("center of square not inside")
	}
	if PointInPolygon(Pt(15, 5), square) {
		t.Error("point right of square inside")
	}
	// Reversing the winding does not change the even-odd result.
	reversed := []Point{Pt(0, 10), Pt(10, 10), Pt(10, 0), Pt(0, 0)}
	if !PointInPolygon(Pt(5, 5), reversed) {
		t.Error("center of reversed square not inside")
	}
	if PointInPolygon(Pt(5, 5), nil) {
		t.Error("empty polygon contains a point")
	}
}

func TestHitTestPiece(t *testing.T) {
	for i, p := range testPieces() {
		if !HitTestPiece(p.Origin, p, HitTolerancePx, 1) {
			t.Errorf("piece %d: origin is not a hit", i)
		}
		far := p.ControlBounds().Inflate(50, 50)
		for _, pt := range []Point{Pt(far.X0, far.Y0), Pt(far.X1, far.Y1)} {
			if HitTestPiece(pt, p, HitTolerancePx, 1) {
				t.Errorf("piece %d: %s is a hit", i, pt)
			}
		}
	}
}

func TestHitTestPieceTolerance(t *testing.T) {
	rect := testPieces()[0]
	// 5 world units left of the left edge.
	pt := Pt(-5, 150)
	if !HitTestPiece(pt, rect, HitTolerancePx, 1) {
		t.Error("point within 6px at zoom 1 should hit")
	}
	if HitTestPiece(pt, rect, HitTolerancePx, 2) {
		t.Error("point 10px away at zoom 2 should not hit")
	}
	if !HitTestPiece(pt, rect, HitTolerancePx, 0.5) {
		t.Error("point 2.5px away at zoom 0.5 should hit")
	}
}

func TestHitTestPiecesTopmost(t *testing.T) {
	var f Factory
	a := f.FromOutline(Pt(0, 0), []Segment{LineSeg(Pt(100, 0)), LineSeg(Pt(100, 100)), LineSeg(Pt(0, 100)), LineSeg(Pt(0, 0))})
	b := a.Translate(Vec(50, 50))
	b.ID = "b"
	pieces := []Piece{a, b}

	if hit := HitTestPieces(Pt(75, 75), pieces, 1); hit == nil || hit.ID != "b" {
		t.Errorf("overlap: got %v, want b", hit)
	}
	if hit := HitTestPieces(Pt(10, 10), pieces, 1); hit == nil || hit.ID != a.ID {
		t.Errorf("got %v, want a", hit)
	}
	if hit := HitTestPieces(Pt(500, 500), pieces, 1); hit != nil {
		t.Errorf("got %v, want no hit", hit.ID)
	}
}

func TestDistanceToOutline(t *testing.T) {
	rect := testPieces()[0]
	if d := DistanceToOutline(Pt(100, -7), rect); d != 7 {
		t.Errorf("got %v, want 7", d)
	}
}
