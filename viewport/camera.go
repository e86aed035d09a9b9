// Package viewport converts between screen pixels and world millimetres,
// and implements the grid and snapping rules that depend on zoom.
package viewport

import (
	"math"

	"github.com/patternkit/patternkit"
)

const (
	MinZoom = 0.05
	MaxZoom = 50
	// ZoomFactor is the zoom change of one wheel step.
	ZoomFactor = 1.1
)

// Camera maps world space to screen space: a world point p is drawn at
// p*Zoom + (X, Y). X and Y are the pan offset in screen pixels.
type Camera struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Zoom float64 `json:"zoom"`
}

// NewCamera returns the identity camera.
func NewCamera() Camera {
	return Camera{Zoom: 1}
}

// Clamp returns c with its zoom limited to [MinZoom, MaxZoom]. A zoom that
// is not a finite positive number resets to 1.
func (c Camera) Clamp() Camera {
	if math.IsNaN(c.Zoom) || math.IsInf(c.Zoom, 0) || c.Zoom <= 0 {
		c.Zoom = 1
	}
	c.Zoom = min(MaxZoom, max(MinZoom, c.Zoom))
	return c
}

// ScreenToWorld returns the world point under the screen pixel (sx, sy).
func (c Camera) ScreenToWorld(sx, sy float64) patternkit.Point {
	return patternkit.Pt((sx-c.X)/c.Zoom, (sy-c.Y)/c.Zoom)
}

// WorldToScreen returns the screen position of the world point p.
func (c Camera) WorldToScreen(p patternkit.Point) (sx, sy float64) {
	return p.X*c.Zoom + c.X, p.Y*c.Zoom + c.Y
}

// Affine returns the world to screen transform.
func (c Camera) Affine() patternkit.Affine {
	return patternkit.Affine{N0: c.Zoom, N3: c.Zoom, N4: c.X, N5: c.Y}
}

// ZoomAtPoint zooms one wheel step around the screen point (sx, sy), which
// keeps showing the same world point. A positive delta zooms out.
func (c Camera) ZoomAtPoint(sx, sy, delta float64) Camera {
	direction := ZoomFactor
	if delta > 0 {
		direction = 1 / ZoomFactor
	}
	zoom := min(MaxZoom, max(MinZoom, c.Zoom*direction))
	ratio := zoom / c.Zoom
	return Camera{
		X:    sx - (sx-c.X)*ratio,
		Y:    sy - (sy-c.Y)*ratio,
		Zoom: zoom,
	}
}

// Pan moves the view by (dx, dy) screen pixels.
func (c Camera) Pan(dx, dy float64) Camera {
	c.X += dx
	c.Y += dy
	return c
}

// VisibleWorld returns the world rectangle shown in a w×h pixel viewport.
func (c Camera) VisibleWorld(w, h float64) patternkit.Rect {
	return patternkit.NewRectFromPoints(c.ScreenToWorld(0, 0), c.ScreenToWorld(w, h))
}

// PercentZoom returns the zoom as a rounded percentage, as shown to users.
func (c Camera) PercentZoom() int {
	return int(math.Round(c.Zoom * 100))
}
