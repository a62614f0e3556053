package graphics

import (
	"fmt"
	"math"
)

// Point is an immutable pair of coordinates. Everything in this package passes
// points by value, so a caller's points are never modified.
type Point struct {
	X float64
	Y float64
}

func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Euclidean distance between two points.
func (p Point) Distance(q Point) float64 {
	dx := q.X - p.X
	dy := q.Y - p.Y
	return math.Sqrt(dx*dx + dy*dy)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

type Segment struct {
	Start Point
	End   Point
}

// Axis aligned bounding box of the segment, inclusive on every side.
type Rect struct {
	Left, Top, Right, Bottom float64
}

func (s Segment) Bounds() Rect {
	return Rect{
		Left:   math.Min(s.Start.X, s.End.X),
		Top:    math.Min(s.Start.Y, s.End.Y),
		Right:  math.Max(s.Start.X, s.End.X),
		Bottom: math.Max(s.Start.Y, s.End.Y),
	}
}

func (r Rect) Contains(p Point) bool {
	return r.Left <= p.X && p.X <= r.Right && r.Top <= p.Y && p.Y <= r.Bottom
}

func (r Rect) Width() float64 {
	return r.Right - r.Left
}

func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}
