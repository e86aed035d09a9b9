package viewport

import (
	"math"

	"github.com/patternkit/patternkit"
)

// SnapTolerancePx is how close, in screen pixels, a coordinate must be to a
// grid line to snap to it.
const SnapTolerancePx = 8

type SnapResult struct {
	Point   patternkit.Point
	Snapped bool
	SnapX   bool
	SnapY   bool
}

// SnapToGrid snaps each axis of p independently to the nearest minor grid
// line when it lies within SnapTolerancePx at zoom. When disabled, p is
// returned unchanged.
func SnapToGrid(p patternkit.Point, zoom float64, enabled bool) SnapResult {
	if !enabled {
		return SnapResult{Point: p}
	}
	minor := GridStepFor(zoom).Minor
	tol := SnapTolerancePx / Camera{Zoom: zoom}.Clamp().Zoom

	nx := math.Round(p.X/minor) * minor
	ny := math.Round(p.Y/minor) * minor
	res := SnapResult{
		Point: p,
		SnapX: math.Abs(p.X-nx) < tol,
		SnapY: math.Abs(p.Y-ny) < tol,
	}
	if res.SnapX {
		res.Point.X = nx
	}
	if res.SnapY {
		res.Point.Y = ny
	}
	res.Snapped = res.SnapX || res.SnapY
	return res
}

// compass holds unit vectors for 0°, 45°, …, 315°, Y down.
var compass = [8]patternkit.Vec2{
	{X: 1, Y: 0},
	{X: math.Sqrt2 / 2, Y: math.Sqrt2 / 2},
	{X: 0, Y: 1},
	{X: -math.Sqrt2 / 2, Y: math.Sqrt2 / 2},
	{X: -1, Y: 0},
	{X: -math.Sqrt2 / 2, Y: -math.Sqrt2 / 2},
	{X: 0, Y: -1},
	{X: math.Sqrt2 / 2, Y: -math.Sqrt2 / 2},
}

// ConstrainAngle returns the point at the same distance from anchor as
// target, in the nearest of the eight compass directions. Exact ties go to
// the smaller angle. Targets within 0.001 of the anchor are returned as is.
func ConstrainAngle(anchor, target patternkit.Point) patternkit.Point {
	d := target.Sub(anchor)
	dist := d.Hypot()
	if dist < 0.001 {
		return target
	}
	deg := d.Angle() * 180 / math.Pi
	deg = math.Mod(math.Mod(deg, 360)+360, 360)
	k := int(math.Ceil(deg/45-0.5)) % 8
	return anchor.Translate(compass[k].Mul(dist))
}
