package viewport

import (
	"math"
	"strconv"
)

const (
	gridBaseStep = 10
	// Grid lines are kept between these many screen pixels apart.
	gridMinPx = 20
	gridMaxPx = 200
)

// GridStep is the spacing of grid lines in world units. Major is always five
// times Minor.
type GridStep struct {
	Minor float64
	Major float64
}

// GridStepFor returns the grid spacing at zoom. Starting at 10 mm, the step is
// multiplied or divided by 5 until it spans 20 to 200 screen pixels.
func GridStepFor(zoom float64) GridStep {
	zoom = Camera{Zoom: zoom}.Clamp().Zoom
	step := float64(gridBaseStep)
	for step*zoom < gridMinPx {
		step *= 5
	}
	for step*zoom > gridMaxPx {
		step /= 5
	}
	return GridStep{Minor: step, Major: step * 5}
}

// FormatValue formats n for labels: integers verbatim, anything else with
// one decimal. A non-empty unit is appended after a space.
func FormatValue(n float64, unit string) string {
	var s string
	if n == math.Trunc(n) && !math.IsInf(n, 0) {
		s = strconv.FormatFloat(n, 'f', -1, 64)
	} else {
		s = strconv.FormatFloat(n, 'f', 1, 64)
	}
	if unit != "" {
		return s + " " + unit
	}
	return s
}
