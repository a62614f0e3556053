package animation

import "math"

// Interpolator maps the elapsed fraction of an animation, in [0,1), to the
// fraction of the change to apply.
type Interpolator interface {
	Interpolation(t float64) float64
}

type InterpolatorFunc func(t float64) float64

func (f InterpolatorFunc) Interpolation(t float64) float64 { return f(t) }

var Linear Interpolator = InterpolatorFunc(func(t float64) float64 { return t })

// Accelerate starts slowly and speeds up. A zero Factor behaves as 1, which
// is the parabola t².
type Accelerate struct {
	Factor float64
}

func (a Accelerate) Interpolation(t float64) float64 {
	if a.Factor == 0 || a.Factor == 1 {
		return t * t
	}
	return math.Pow(t, 2*a.Factor)
}

// Decelerate starts quickly and slows down, mirroring Accelerate.
type Decelerate struct {
	Factor float64
}

func (d Decelerate) Interpolation(t float64) float64 {
	if d.Factor == 0 || d.Factor == 1 {
		return 1 - (1-t)*(1-t)
	}
	return 1 - math.Pow(1-t, 2*d.Factor)
}
