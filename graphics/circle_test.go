package graphics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-9

func assertPointsInDelta(t *testing.T, expected, actual []Point) {
	t.Helper()
	require.Len(t, actual, len(expected))
	for i := range expected {
		assert.InDelta(t, expected[i].X, actual[i].X, epsilon, "x of point %d", i)
		assert.InDelta(t, expected[i].Y, actual[i].Y, epsilon, "y of point %d", i)
	}
}

func TestIntersectLine_TangentVertical(t *testing.T) {
	for _, r := range []float64{1, 2.5, 5} {
		points := IntersectLine(Pt(r, -10), Pt(r, 10), Pt(0, 0), r)
		assert.Equal(t, []Point{{r, 0}}, points)
	}
}

func TestIntersectLine_VerticalThroughCenter(t *testing.T) {
	points := IntersectLine(Pt(0, -1), Pt(0, 1), Pt(0, 0), 5)
	assert.Equal(t, []Point{{0, -5}, {0, 5}}, points)
}

func TestIntersectLine_VerticalChord(t *testing.T) {
	points := IntersectLine(Pt(3, 0), Pt(3, 1), Pt(0, 0), 5)
	assertPointsInDelta(t, []Point{{3, -4}, {3, 4}}, points)
}

func TestIntersectLine_VerticalMiss(t *testing.T) {
	assert.Empty(t, IntersectLine(Pt(6, 0), Pt(6, 1), Pt(0, 0), 5))
}

func TestIntersectLine_HorizontalMiss(t *testing.T) {
	assert.Empty(t, IntersectLine(Pt(-10, 10), Pt(10, 10), Pt(0, 0), 5))
}

func TestIntersectLine_Horizontal(t *testing.T) {
	t.Run("through center", func(t *testing.T) {
		points := IntersectLine(Pt(-1, 2), Pt(1, 2), Pt(3, 2), 1)
		assert.Equal(t, []Point{{2, 2}, {4, 2}}, points)
	})
	t.Run("tangent", func(t *testing.T) {
		points := IntersectLine(Pt(-1, 5), Pt(1, 5), Pt(0, 0), 5)
		assert.Equal(t, []Point{{0, 5}}, points)
	})
	t.Run("chord", func(t *testing.T) {
		points := IntersectLine(Pt(-1, -3), Pt(1, -3), Pt(0, 0), 5)
		assertPointsInDelta(t, []Point{{-4, -3}, {4, -3}}, points)
	})
}

func TestIntersectLine_Diagonal(t *testing.T) {
	h := math.Sqrt2 / 2
	points := IntersectLine(Pt(-1, -1), Pt(1, 1), Pt(0, 0), 1)
	require.Len(t, points, 2)
	assert.ElementsMatch(t, roundAll([]Point{{h, h}, {-h, -h}}), roundAll(points))
}

func TestIntersectLine_SlopedMiss(t *testing.T) {
	// y = x + 10 is roughly 7.07 away from the origin
	assert.Nil(t, IntersectLine(Pt(0, 10), Pt(1, 11), Pt(0, 0), 5))
}

func TestIntersectLine_SlopedOffCenter(t *testing.T) {
	c := Pt(2, 3)
	points := IntersectLine(Pt(0, 1), Pt(1, 2), c, 2)
	require.Len(t, points, 2)
	for _, p := range points {
		assert.InDelta(t, 2, c.Distance(p), epsilon)
		assert.InDelta(t, p.X+1, p.Y, epsilon)
	}
	assert.Less(t, points[0].X, points[1].X)
}

func TestIntersectSegment_Diagonal(t *testing.T) {
	h := math.Sqrt2 / 2
	points := IntersectSegment(Pt(-1, -1), Pt(1, 1), Pt(0, 0), 1)
	assertPointsInDelta(t, []Point{{-h, -h}, {h, h}}, points)

	// Reversing the segment reverses the order
	points = IntersectSegment(Pt(1, 1), Pt(-1, -1), Pt(0, 0), 1)
	assertPointsInDelta(t, []Point{{h, h}, {-h, -h}}, points)
}

func TestIntersectSegment_OrderedFromStart(t *testing.T) {
	points := IntersectSegment(Pt(0, 10), Pt(0, -10), Pt(0, 0), 5)
	assert.Equal(t, []Point{{0, 5}, {0, -5}}, points)
}

func TestIntersectSegment_BothOutside(t *testing.T) {
	// The infinite line crosses the circle, but the segment stops short
	require.Len(t, IntersectLine(Pt(2, 2), Pt(3, 3), Pt(0, 0), 1), 2)
	assert.Empty(t, IntersectSegment(Pt(2, 2), Pt(3, 3), Pt(0, 0), 1))
}

func TestIntersectSegment_OneInside(t *testing.T) {
	points := IntersectSegment(Pt(0, 0), Pt(0, 10), Pt(0, 0), 5)
	assert.Equal(t, []Point{{0, 5}}, points)
}

func TestIntersectSegment_Tangent(t *testing.T) {
	assert.Equal(t, []Point{{5, 0}}, IntersectSegment(Pt(5, -1), Pt(5, 1), Pt(0, 0), 5))
	assert.Empty(t, IntersectSegment(Pt(5, 1), Pt(5, 2), Pt(0, 0), 5))
}

func TestIntersectCoords(t *testing.T) {
	assert.Equal(t, []float64{5, 0}, IntersectLineCoords(5, -1, 5, 1, 0, 0, 5))
	assert.Equal(t, []float64{0, -5, 0, 5}, IntersectLineCoords(0, -1, 0, 1, 0, 0, 5))
	assert.Nil(t, IntersectLineCoords(-10, 10, 10, 10, 0, 0, 5))
	assert.Equal(t, []float64{0, 5, 0, -5}, IntersectSegmentCoords(0, 10, 0, -10, 0, 0, 5))
	assert.Nil(t, IntersectSegmentCoords(2, 2, 3, 3, 0, 0, 1))
}

func TestCircleMethods(t *testing.T) {
	c := Circle{Center: Pt(0, 0), Radius: 5}
	assert.True(t, c.Contains(Pt(3, 4)))
	assert.False(t, c.Contains(Pt(4, 4)))
	assert.Equal(t, []Point{{5, 0}}, c.IntersectLine(Pt(5, 1), Pt(5, 2)))
	assert.Empty(t, c.IntersectSegment(Pt(5, 1), Pt(5, 2)))
}

func TestDistanceToLine(t *testing.T) {
	assert.InDelta(t, 5, DistanceToLine(Pt(0, 0), Pt(5, -1), Pt(5, 1)), epsilon)
	assert.InDelta(t, math.Sqrt2, DistanceToLine(Pt(0, 2), Pt(0, 0), Pt(1, 1)), epsilon)
}

func roundAll(points []Point) []Point {
	result := make([]Point, len(points))
	for i, p := range points {
		result[i] = Pt(math.Round(p.X*1e9)/1e9, math.Round(p.Y*1e9)/1e9)
	}
	return result
}
