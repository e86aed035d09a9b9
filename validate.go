package patternkit

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyOutline         = errors.New("piece has no outline segments")
	ErrNoName               = errors.New("piece has no name")
	ErrNegativeSeam         = errors.New("seam allowance cannot be negative")
	ErrCutQuantity          = errors.New("cut quantity must be at least 1")
	ErrOpenOutline          = errors.New("outline does not return to its origin")
	ErrDegenerateSegment    = errors.New("zero-length segment")
	ErrNonFiniteCoordinates = errors.New("non-finite coordinates")
)

// Validate reports structural problems with p. It returns nil for a
// well-formed piece, otherwise all problems joined with [errors.Join].
// Pattern-making rules such as seam clearance are not checked.
func (p Piece) Validate() error {
	var errs []error
	if len(p.Outline) == 0 {
		errs = append(errs, ErrEmptyOutline)
	}
	if p.Name == "" {
		errs = append(errs, ErrNoName)
	}
	if p.SeamAllowanceMM < 0 {
		errs = append(errs, fmt.Errorf("%w: %g", ErrNegativeSeam, p.SeamAllowanceMM))
	}
	if p.Metadata.CutQuantity < 1 {
		errs = append(errs, fmt.Errorf("%w: %d", ErrCutQuantity, p.Metadata.CutQuantity))
	}
	if len(p.Outline) > 0 && !p.IsClosed() {
		errs = append(errs, ErrOpenOutline)
	}
	if p.Origin.IsNaN() || p.Origin.IsInf() {
		errs = append(errs, ErrNonFiniteCoordinates)
	}
	prev := p.Origin
	for i, seg := range p.Outline {
		if seg.IsNaN() {
			errs = append(errs, fmt.Errorf("segment %d: %w", i, ErrNonFiniteCoordinates))
			continue
		}
		end := seg.EndPoint()
		degenerate := end == seg.StartPoint(prev)
		if seg.Kind == ArcSegment {
			degenerate = seg.Radius == 0 || seg.StartAngle == seg.EndAngle
		}
		if degenerate {
			errs = append(errs, fmt.Errorf("segment %d: %w", i, ErrDegenerateSegment))
		}
		prev = end
	}
	return errors.Join(errs...)
}
