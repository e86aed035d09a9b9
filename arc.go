package patternkit

import (
	"iter"
	"math"
)

// Arc is a circular arc swept from StartAngle to EndAngle. The sweep is
// EndAngle − StartAngle, so a negative difference runs the other way round
// the circle.
type Arc struct {
	Center     Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
}

func (a Arc) Sweep() float64 {
	return a.EndAngle - a.StartAngle
}

// PointAt returns the point of the circle at angle th.
func (a Arc) PointAt(th float64) Point {
	return a.Center.Translate(VecFromAngle(th).Mul(a.Radius))
}

func (a Arc) Start() Point { return a.PointAt(a.StartAngle) }
func (a Arc) End() Point   { return a.PointAt(a.EndAngle) }

// Eval returns the point at parameter t ∈ [0, 1], interpolating the angle
// linearly over the sweep.
func (a Arc) Eval(t float64) Point {
	return a.PointAt(a.StartAngle + t*a.Sweep())
}

// Bounds returns the box of the full circle.
func (a Arc) Bounds() Rect {
	return Rect{
		X0: a.Center.X - a.Radius,
		Y0: a.Center.Y - a.Radius,
		X1: a.Center.X + a.Radius,
		Y1: a.Center.Y + a.Radius,
	}
}

// Cubics approximates the arc with cubic Béziers. Each cubic spans at most
// a quarter turn, which keeps the radial error below 0.03%.
func (a Arc) Cubics() iter.Seq[CubicBez] {
	return func(yield func(CubicBez) bool) {
		sweep := a.Sweep()
		if sweep == 0 || a.Radius == 0 {
			return
		}
		n := max(1, math.Ceil(math.Abs(sweep)/(math.Pi/2)-1e-9))
		angleStep := sweep / n
		armLen := math.Copysign((4.0/3.0)*math.Tan(math.Abs(0.25*angleStep)), sweep) * a.Radius
		angle0 := a.StartAngle
		p0 := a.PointAt(angle0)

		for range int(n) {
			angle1 := angle0 + angleStep
			p1 := p0.Translate(VecFromAngle(angle0 + math.Pi/2).Mul(armLen))
			p3 := a.PointAt(angle1)
			p2 := p3.Translate(VecFromAngle(angle1 + math.Pi/2).Mul(-armLen))

			if !yield(CubicBez{p0, p1, p2, p3}) {
				return
			}
			angle0 = angle1
			p0 = p3
		}
	}
}
