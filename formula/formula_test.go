package formula

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	assert.Equal(t, 5.0, Distance(0, 0, 3, 4))
	assert.Equal(t, 5.0, Distance(3, 4, 0, 0))
	assert.Equal(t, 0.0, Distance(1, 1, 1, 1))
}

func TestDistanceToSegment(t *testing.T) {
	// Projection falls inside the segment
	assert.InDelta(t, 2, DistanceToSegment(5, 2, 0, 0, 10, 0), 1e-12)
	// Before the start
	assert.InDelta(t, 5, DistanceToSegment(-3, 4, 0, 0, 10, 0), 1e-12)
	// Past the end
	assert.InDelta(t, 5, DistanceToSegment(13, -4, 0, 0, 10, 0), 1e-12)
	// Degenerate segment
	assert.InDelta(t, 5, DistanceToSegment(3, 4, 0, 0, 0, 0), 1e-12)
}

func TestDistanceToLine(t *testing.T) {
	// Unlike the segment version, the line continues past the points
	assert.InDelta(t, 4, DistanceToLine(13, -4, 0, 0, 10, 0), 1e-12)
	assert.InDelta(t, math.Sqrt2, DistanceToLine(0, 2, 0, 0, 1, 1), 1e-12)
}

func TestDegrees(t *testing.T) {
	h := math.Sqrt(3)
	cases := []struct {
		axis     Axis
		dir      Direction
		rot      Rotation
		x, y     float64
		expected float64
	}{
		{AxisX, Positive, Clockwise, 0, 0, 0},
		{AxisX, Positive, Clockwise, 1, 0, 0},
		{AxisX, Positive, Clockwise, 1, 1, 45},
		{AxisX, Positive, Clockwise, 0, 1, 90},
		{AxisX, Positive, Clockwise, -1, 1, 135},
		{AxisX, Positive, Clockwise, -1, 0, 180},
		{AxisX, Positive, Clockwise, -1, -1, 225},
		{AxisX, Positive, Clockwise, 0, -1, 270},
		{AxisX, Positive, Clockwise, 1, -1, 315},
		{AxisX, Positive, Clockwise, 1, h, 60},
		{AxisX, Positive, Clockwise, -1, h, 120},
		{AxisX, Positive, Clockwise, 1, -h, 300},

		{AxisX, Positive, CounterClockwise, 1, -1, 45},
		{AxisX, Positive, CounterClockwise, 0, -1, 90},
		{AxisX, Positive, CounterClockwise, -1, -1, 135},
		{AxisX, Positive, CounterClockwise, -1, 1, 225},
		{AxisX, Positive, CounterClockwise, 0, 1, 270},
		{AxisX, Positive, CounterClockwise, 1, 1, 315},
		{AxisX, Positive, CounterClockwise, 1, -h, 60},

		{AxisX, Negative, Clockwise, -1, 0, 0},
		{AxisX, Negative, Clockwise, -1, -1, 45},
		{AxisX, Negative, Clockwise, 0, -1, 90},
		{AxisX, Negative, Clockwise, 1, -1, 135},
		{AxisX, Negative, Clockwise, 1, 0, 180},
		{AxisX, Negative, Clockwise, 1, 1, 225},
		{AxisX, Negative, Clockwise, 0, 1, 270},
		{AxisX, Negative, Clockwise, -1, 1, 315},

		{AxisX, Negative, CounterClockwise, -1, 1, 45},
		{AxisX, Negative, CounterClockwise, 0, 1, 90},
		{AxisX, Negative, CounterClockwise, 1, 1, 135},
		{AxisX, Negative, CounterClockwise, 1, -1, 225},
		{AxisX, Negative, CounterClockwise, 0, -1, 270},
		{AxisX, Negative, CounterClockwise, -1, -1, 315},

		{AxisY, Positive, Clockwise, 0, -1, 0},
		{AxisY, Positive, Clockwise, 1, 0, 90},
		{AxisY, Positive, Clockwise, 0, 1, 180},
		{AxisY, Positive, Clockwise, -1, 0, 270},
		{AxisY, Positive, CounterClockwise, 0, -1, 0},
		{AxisY, Positive, CounterClockwise, -1, 0, 90},
		{AxisY, Positive, CounterClockwise, 1, 0, 270},

		{AxisY, Negative, Clockwise, 0, 1, 0},
		{AxisY, Negative, Clockwise, -1, 0, 90},
		{AxisY, Negative, Clockwise, 1, 0, 270},
		{AxisY, Negative, CounterClockwise, 0, 1, 0},
		{AxisY, Negative, CounterClockwise, 1, 0, 90},
		{AxisY, Negative, CounterClockwise, 0, -1, 180},
	}
	for _, c := range cases {
		name := fmt.Sprintf("%v %v %v (%g,%g)", c.axis, c.dir, c.rot, c.x, c.y)
		t.Run(name, func(t *testing.T) {
			actual := Degrees(c.axis, c.dir, c.rot, c.x, c.y)
			assert.InDelta(t, c.expected, actual, 1e-9)
			assert.GreaterOrEqual(t, actual, 0.0)
			assert.Less(t, actual, 360.0)
		})
	}
}

func TestDegreesRange(t *testing.T) {
	for _, axis := range []Axis{AxisX, AxisY} {
		for _, dir := range []Direction{Positive, Negative} {
			for _, rot := range []Rotation{Clockwise, CounterClockwise} {
				for i := 0; i < 24; i++ {
					a := float64(i) * math.Pi / 12
					d := Degrees(axis, dir, rot, math.Cos(a), math.Sin(a))
					assert.GreaterOrEqual(t, d, 0.0)
					assert.Less(t, d, 360.0)
				}
			}
		}
	}
}

func TestDegreesFrom(t *testing.T) {
	assert.Equal(t, 45.0, DegreesFrom(AxisX, Positive, Clockwise, 10, 10, 12, 12))
	assert.Equal(t, 0.0, DegreesFrom(AxisY, Negative, Clockwise, 3, 3, 3, 8))
}

func TestDegreesNearFullTurn(t *testing.T) {
	// Just below the negative x axis, which rounds to a whole turn
	assert.Equal(t, 0.0, Degrees(AxisX, Negative, Clockwise, -1, 1e-17))
}
