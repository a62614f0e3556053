// Package formula has distance and bearing formulas in screen coordinates,
// where x grows to the right and y grows downward.
package formula

import "math"

func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// Shortest distance from (x, y) to the segment from (x1, y1) to (x2, y2).
func DistanceToSegment(x, y, x1, y1, x2, y2 float64) float64 {
	cross := (x2-x1)*(x-x1) + (y2-y1)*(y-y1)
	if cross <= 0 {
		return math.Sqrt((x-x1)*(x-x1) + (y-y1)*(y-y1))
	}
	d2 := (x2-x1)*(x2-x1) + (y2-y1)*(y2-y1)
	if cross >= d2 {
		return math.Sqrt((x-x2)*(x-x2) + (y-y2)*(y-y2))
	}
	// Project onto the segment
	r := cross / d2
	px := x1 + (x2-x1)*r
	py := y1 + (y2-y1)*r
	return math.Sqrt((x-px)*(x-px) + (py-y)*(py-y))
}

// Shortest distance from (x, y) to the infinite line through (x1, y1) and
// (x2, y2).
func DistanceToLine(x, y, x1, y1, x2, y2 float64) float64 {
	return math.Abs((y2-y1)*x+(x1-x2)*y+(x2*y1-x1*y2)) /
		math.Sqrt(math.Pow(y2-y1, 2)+math.Pow(x1-x2, 2))
}
