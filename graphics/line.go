package graphics

import (
	"fmt"
	"math"
)

// Line is an infinite line in slope-intercept form, y = K*x + B. A NaN slope
// marks a vertical line, in which case B holds its x value: x = B.
type Line struct {
	K float64
	B float64
}

func NewLine(k, b float64) Line {
	return Line{K: k, B: b}
}

// Line through p with slope k.
func LineFromSlope(k float64, p Point) Line {
	return Line{K: k, B: p.Y - k*p.X}
}

// Line through two points. If the points share an x value the line is
// vertical. Identical points also produce a vertical line.
func LineThrough(p1, p2 Point) Line {
	v := p1.X - p2.X
	if v != 0 {
		k := (p1.Y - p2.Y) / v
		return Line{K: k, B: p1.Y - p1.X*k}
	}
	return VerticalLine(p1.X)
}

func VerticalLine(x float64) Line {
	return Line{K: math.NaN(), B: x}
}

// Whether the line is perpendicular to the x axis, i.e. has no slope.
func (l Line) IsVertical() bool {
	return math.IsNaN(l.K)
}

func (l Line) IsHorizontal() bool {
	return l.K == 0
}

// Y value of the line at x. Vertical lines have no single answer and return
// NaN.
func (l Line) SolveForY(x float64) float64 {
	if l.IsVertical() {
		return math.NaN()
	}
	return l.K*x + l.B
}

// Equality is bitwise per field, except that a NaN slope equals any other NaN
// slope. Two vertical lines are therefore equal exactly when their x values
// are. Note that this also means 0 and -0 are distinct.
func (l Line) Equal(o Line) bool {
	if o.IsVertical() {
		if l.IsVertical() {
			return sameFloat(o.B, l.B)
		}
		return false
	}
	return sameFloat(o.K, l.K) && sameFloat(o.B, l.B)
}

func (l Line) String() string {
	return fmt.Sprintf("Line(%v, %v)", l.K, l.B)
}

func sameFloat(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	return math.Float64bits(a) == math.Float64bits(b)
}
