package patternkit

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

const (
	DefaultSeamAllowanceMM = 10
	DefaultCutQuantity     = 2

	defaultRectWidth  = 200
	defaultRectHeight = 300
	defaultRectGap    = 50
)

// Factory creates new pieces with sequential names. The zero value is ready
// to use; the first piece it creates is "Piece 1".
type Factory struct {
	counter atomic.Int64
}

func (f *Factory) next() int64 {
	return f.counter.Add(1)
}

// FromOutline returns a new piece with a fresh id tracing segs from origin.
func (f *Factory) FromOutline(origin Point, segs []Segment) Piece {
	n := f.next()
	return newPiece(n, origin, segs)
}

// DefaultRectangle returns a 200×300 rectangle with a vertical grain line
// and two notches. Successive rectangles are laid out side by side.
func (f *Factory) DefaultRectangle() Piece {
	n := f.next()
	const w, h = defaultRectWidth, defaultRectHeight
	ox := float64(n-1) * (w + defaultRectGap)

	p := newPiece(n, Pt(ox, 0), []Segment{
		LineSeg(Pt(ox+w, 0)),
		LineSeg(Pt(ox+w, h)),
		LineSeg(Pt(ox, h)),
		LineSeg(Pt(ox, 0)),
	})
	p.GrainLine = &[2]Point{
		Pt(ox+w/2, 20),
		Pt(ox+w/2, h-20),
	}
	p.Notches = []Point{
		Pt(ox+w/2, 0),
		Pt(ox+w, h/2),
	}
	return p
}

func newPiece(n int64, origin Point, segs []Segment) Piece {
	return Piece{
		ID:              uuid.NewString(),
		Name:            fmt.Sprintf("Piece %d", n),
		Origin:          origin,
		Outline:         segs,
		SeamAllowanceMM: DefaultSeamAllowanceMM,
		Notches:         []Point{},
		InternalLines:   [][]Segment{},
		Metadata: Metadata{
			CutQuantity: DefaultCutQuantity,
		},
	}
}
