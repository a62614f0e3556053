package graphics

import "math"

type Circle struct {
	Center Point
	Radius float64
}

func (c Circle) Contains(p Point) bool {
	return c.Center.Distance(p) <= c.Radius
}

func (c Circle) IntersectLine(p1, p2 Point) []Point {
	return IntersectLine(p1, p2, c.Center, c.Radius)
}

func (c Circle) IntersectSegment(p1, p2 Point) []Point {
	return IntersectSegment(p1, p2, c.Center, c.Radius)
}

// Perpendicular distance from p to the infinite line through p1 and p2.
func DistanceToLine(p, p1, p2 Point) float64 {
	return math.Abs((p2.Y-p1.Y)*p.X+(p1.X-p2.X)*p.Y+(p2.X*p1.Y-p1.X*p2.Y)) /
		math.Sqrt(math.Pow(p2.Y-p1.Y, 2)+math.Pow(p1.X-p2.X, 2))
}

// Intersection of the infinite line through p1 and p2 with the circle centered
// at c. The result holds zero, one or two points; nil means the line misses the
// circle.
//
// Tangency is detected with exact float comparison. In the sloped case a
// discriminant that rounds to slightly below zero is reported as a miss, even
// though the true line may be tangent.
func IntersectLine(p1, p2, c Point, radius float64) []Point {
	line := LineThrough(p1, p2)
	switch {
	case line.IsVertical():
		x := line.B
		dis := math.Abs(c.X - x)
		switch {
		case dis == 0:
			return []Point{{c.X, c.Y - radius}, {c.X, c.Y + radius}}
		case dis > radius:
			return nil
		case dis == radius:
			return []Point{{x, c.Y}}
		default:
			dy := math.Sin(math.Acos(dis/radius)) * radius
			return []Point{{x, c.Y - dy}, {x, c.Y + dy}}
		}
	case line.IsHorizontal():
		y := line.B
		dis := math.Abs(c.Y - y)
		switch {
		case dis == 0:
			return []Point{{c.X - radius, c.Y}, {c.X + radius, c.Y}}
		case dis > radius:
			return nil
		case dis == radius:
			return []Point{{c.X, y}}
		default:
			dx := math.Sin(math.Acos(dis/radius)) * radius
			return []Point{{c.X - dx, y}, {c.X + dx, y}}
		}
	}

	if DistanceToLine(c, p1, p2) > radius {
		return nil
	}

	// Substitute y = kx + b into (x-cx)² + (y-cy)² = r²
	a := line.K*line.K + 1
	b := 2 * (line.K*line.B - line.K*c.Y - c.X)
	cc := c.X*c.X + math.Pow(line.B-c.Y, 2) - radius*radius
	delta := b*b - 4*a*cc
	if delta < 0 {
		return nil
	}
	x1 := (-b - math.Sqrt(delta)) / (2 * a)
	y1 := line.K*x1 + line.B
	x2 := (-b + math.Sqrt(delta)) / (2 * a)
	y2 := line.K*x2 + line.B
	if x1 == x2 && y1 == y2 {
		return []Point{{x1, y1}}
	}
	return []Point{{x1, y1}, {x2, y2}}
}

// Intersection of the segment from p1 to p2 with the circle. Points of the
// full line intersection outside the segment's bounding box are dropped. When
// two points survive they are ordered by distance from p1, so the first point
// is the one met first travelling along the segment.
func IntersectSegment(p1, p2, c Point, radius float64) []Point {
	points := IntersectLine(p1, p2, c, radius)
	if len(points) == 0 {
		return nil
	}
	bounds := Segment{p1, p2}.Bounds()

	var result []Point
	for _, p := range points {
		if bounds.Contains(p) {
			result = append(result, p)
		}
	}
	if len(result) == 2 && !(p1.Distance(result[0]) < p1.Distance(result[1])) {
		result[0], result[1] = result[1], result[0]
	}
	return result
}

// Flattened form of IntersectLine: x1, y1[, x2, y2], or nil.
func IntersectLineCoords(px1, py1, px2, py2, cx, cy, radius float64) []float64 {
	return flatten(IntersectLine(Pt(px1, py1), Pt(px2, py2), Pt(cx, cy), radius))
}

// Flattened form of IntersectSegment.
func IntersectSegmentCoords(px1, py1, px2, py2, cx, cy, radius float64) []float64 {
	return flatten(IntersectSegment(Pt(px1, py1), Pt(px2, py2), Pt(cx, cy), radius))
}

func flatten(points []Point) []float64 {
	if len(points) == 0 {
		return nil
	}
	coords := make([]float64, 0, len(points)*2)
	for _, p := range points {
		coords = append(coords, p.X, p.Y)
	}
	return coords
}
