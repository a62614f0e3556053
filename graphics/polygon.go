package graphics

import (
	"math"
	"sort"

	"github.com/osuushi/support/internal/mathutil"
)

// A closed polygon. The last point connects back to the first.
type Polygon struct {
	Points []Point
}

// Even-odd point-in-polygon test. Points exactly on an edge may land on either
// side.
func (poly Polygon) Contains(p Point) bool {
	return poly.CrossingCount(p)%2 == 1
}

// Number of polygon edges crossed by a ray cast from p towards +x.
func (poly Polygon) CrossingCount(p Point) int {
	n := len(poly.Points)
	crossingCount := 0
	for i, vertex := range poly.Points {
		next := poly.Points[mathutil.CircularIndex(i+1, n)]
		if (vertex.Y > p.Y) == (next.Y > p.Y) {
			continue
		}
		// x where the edge crosses the horizontal through p
		x := vertex.X + (p.Y-vertex.Y)*(next.X-vertex.X)/(next.Y-vertex.Y)
		if p.X < x {
			crossingCount++
		}
	}
	return crossingCount
}

func (poly Polygon) Bounds() Rect {
	r := Rect{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
	for _, p := range poly.Points {
		r.Left = math.Min(r.Left, p.X)
		r.Top = math.Min(r.Top, p.Y)
		r.Right = math.Max(r.Right, p.X)
		r.Bottom = math.Max(r.Bottom, p.Y)
	}
	return r
}

// Arc length table resolution used when walking an ellipse.
const ovalSamples = 720

// Points spaced evenly along the ellipse inscribed in bounds. The walk starts
// at the rightmost point and runs counterclockwise on screen (y grows
// downward). The perimeter is split into ceil(perimeter/distance) equal units,
// and the first point sits start units (clamped to [0, 1]) along. Returns nil
// if that yields fewer than two units.
func OvalSplitPoints(bounds Rect, distance, start float64) []Point {
	if !(distance > 0) {
		return nil
	}
	center := Pt((bounds.Left+bounds.Right)/2, (bounds.Top+bounds.Bottom)/2)
	a := bounds.Width() / 2
	b := bounds.Height() / 2
	at := func(theta float64) Point {
		return Pt(center.X+a*math.Cos(theta), center.Y-b*math.Sin(theta))
	}

	lengths := make([]float64, ovalSamples+1)
	prev := at(0)
	for i := 1; i <= ovalSamples; i++ {
		p := at(2 * math.Pi * float64(i) / ovalSamples)
		lengths[i] = lengths[i-1] + prev.Distance(p)
		prev = p
	}
	length := lengths[ovalSamples]

	count := int(math.Ceil(length / distance))
	if count < 2 {
		return nil
	}
	unit := length / float64(count)
	start = mathutil.Clamp(start, 0, 1)
	points := make([]Point, 0, count)
	for n := 0; n < count; n++ {
		l := unit * (start + float64(n))
		if l >= length {
			break
		}
		i := sort.SearchFloat64s(lengths, l)
		if i == 0 {
			points = append(points, at(0))
			continue
		}
		t := (l - lengths[i-1]) / (lengths[i] - lengths[i-1])
		points = append(points, at(2*math.Pi*(float64(i-1)+t)/ovalSamples))
	}
	return points
}
