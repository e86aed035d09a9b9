package patternkit

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

var approx = cmpopts.EquateApprox(0, 1e-9)

// testPieces returns a set of pieces exercising every segment kind.
func testPieces() []Piece {
	var f Factory
	rect := f.DefaultRectangle()

	curvy := f.FromOutline(Pt(0, 0), []Segment{
		CubicSeg(Pt(40, -30), Pt(80, -30), Pt(120, 0)),
		QuadSeg(Pt(150, 60), Pt(120, 120)),
		LineSeg(Pt(0, 120)),
		LineSeg(Pt(0, 0)),
	})

	// A slot with a rounded end: the arc starts where the line ends.
	slot := f.FromOutline(Pt(0, 0), []Segment{
		LineSeg(Pt(100, 0)),
		ArcSeg(Pt(100, 25), 25, -math.Pi/2, math.Pi/2),
		LineSeg(Pt(0, 50)),
		LineSeg(Pt(0, 0)),
	})
	slot.InternalLines = [][]Segment{{LineSeg(Pt(50, 10)), LineSeg(Pt(50, 40))}}

	// The arc here does not start where the previous segment ends.
	gap := f.FromOutline(Pt(10, 10), []Segment{
		LineSeg(Pt(60, 10)),
		ArcSeg(Pt(80, 40), 20, -math.Pi/2, 0),
		LineSeg(Pt(10, 60)),
		LineSeg(Pt(10, 10)),
	})
	return []Piece{rect, curvy, slot, gap}
}
