package tool

import (
	"github.com/patternkit/patternkit"
)

const (
	// closeThresholdPx is how close to the first point, in screen pixels,
	// a click must land to close the outline.
	closeThresholdPx = 10
	// dragThresholdPx separates a click from a drag, in screen pixels.
	dragThresholdPx = 2
	// minClosePoints is the number of points needed before a draft can
	// be closed.
	minClosePoints = 3
)

// nearFirst reports whether world is close enough to the first of n draft
// points to close the outline.
func nearFirst(first, world patternkit.Point, n int, zoom float64) bool {
	if n < minClosePoints {
		return false
	}
	return world.Distance(first) < closeThresholdPx/zoom
}

// beyondDeadZone reports whether a drag by d has left the dead zone around
// its start.
func beyondDeadZone(d patternkit.Vec2, zoom float64) bool {
	return d.Manhattan() >= dragThresholdPx/zoom
}

// commit creates a piece from a finished draft and selects it.
func commit(ctx Context, k Kind, origin patternkit.Point, segs []patternkit.Segment) {
	p := ctx.Factory().FromOutline(origin, segs)
	patternkit.Logger().Debug("piece drawn", "tool", k, "id", p.ID, "segments", len(segs))
	ctx.CreatePiece(p)
	ctx.SelectPiece(p.ID)
}

// dropDoubleClickPoint removes the point that the second click of a double
// click added before the double click event itself arrives.
func dropDoubleClickPoint[T any](pts []T) []T {
	if len(pts) > 1 {
		return pts[:len(pts)-1]
	}
	return pts
}
