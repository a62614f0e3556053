package formula

import "math"

type Axis int

const (
	AxisX Axis = iota
	AxisY
)

type Direction int

const (
	Positive Direction = iota
	Negative
)

type Rotation int

const (
	Clockwise Rotation = iota
	CounterClockwise
)

func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

func (d Direction) String() string {
	if d == Negative {
		return "negative"
	}
	return "positive"
}

func (r Rotation) String() string {
	if r == CounterClockwise {
		return "ccw"
	}
	return "cw"
}

// Angle in degrees, in [0, 360), swept from the chosen direction of the chosen
// axis to the vector from the origin to (x, y), turning the chosen way on
// screen. The zero vector is 0. Exact diagonals give exact multiples of 45.
func Degrees(axis Axis, dir Direction, rot Rotation, x, y float64) float64 {
	var degrees float64
	switch {
	case dir == Positive && rot == Clockwise:
		degrees = degreesXPositiveCW(x, y)
	case dir == Positive:
		degrees = degreesXPositiveCCW(x, y)
	case rot == Clockwise:
		degrees = degreesXNegativeCW(x, y)
	default:
		degrees = degreesXNegativeCCW(x, y)
	}
	if axis == AxisX {
		// Tiny negative angles can round up to a full turn
		return normalize(degrees)
	}
	// Y angles are measured from "up" for Positive and "down" for Negative, a
	// quarter turn counterclockwise from the matching x direction.
	if rot == Clockwise {
		degrees += 90
	} else {
		degrees -= 90
	}
	return normalize(degrees)
}

// Same as Degrees, for the vector from (ox, oy) to (x, y).
func DegreesFrom(axis Axis, dir Direction, rot Rotation, ox, oy, x, y float64) float64 {
	return Degrees(axis, dir, rot, x-ox, y-oy)
}

func normalize(degrees float64) float64 {
	for degrees < 0 {
		degrees += 360
	}
	for degrees >= 360 {
		degrees -= 360
	}
	return degrees
}

func toDegrees(radians float64) float64 {
	return radians * (180 / math.Pi)
}

func degreesXPositiveCW(x, y float64) float64 {
	switch {
	case y == 0:
		if x >= 0 {
			return 0
		}
		return 180
	case x == 0:
		if y > 0 {
			return 90
		}
		return 270
	case x > 0 && y > 0: // bottom right
		if x == y {
			return 45
		}
		return toDegrees(math.Atan(y / x))
	case x < 0 && y > 0: // bottom left
		if -x == y {
			return 135
		}
		return toDegrees(math.Pi - math.Atan(-y/x))
	case x < 0 && y < 0: // top left
		if x == y {
			return 225
		}
		return toDegrees(math.Pi + math.Atan(y/x))
	case x > 0 && y < 0: // top right
		if x == -y {
			return 315
		}
		return toDegrees(math.Pi*2 - math.Atan(-y/x))
	}
	return 0
}

func degreesXPositiveCCW(x, y float64) float64 {
	switch {
	case y == 0:
		if x >= 0 {
			return 0
		}
		return 180
	case x == 0:
		if y > 0 {
			return 270
		}
		return 90
	case x > 0 && y < 0: // top right
		if x == -y {
			return 45
		}
		return toDegrees(math.Atan(-y / x))
	case x < 0 && y < 0: // top left
		if x == y {
			return 135
		}
		return toDegrees(math.Pi - math.Atan(y/x))
	case x < 0 && y > 0: // bottom left
		if -x == y {
			return 225
		}
		return toDegrees(math.Pi + math.Atan(-y/x))
	case x > 0 && y > 0: // bottom right
		if x == y {
			return 315
		}
		return toDegrees(math.Pi*2 - math.Atan(y/x))
	}
	return 0
}

func degreesXNegativeCW(x, y float64) float64 {
	switch {
	case y == 0:
		if x <= 0 {
			return 0
		}
		return 180
	case x == 0:
		if y < 0 {
			return 90
		}
		return 270
	case x < 0 && y < 0: // top left
		if x == y {
			return 45
		}
		return toDegrees(math.Atan(y / x))
	case x > 0 && y < 0: // top right
		if x == -y {
			return 135
		}
		return toDegrees(math.Pi - math.Atan(-y/x))
	case x > 0 && y > 0: // bottom right
		if x == y {
			return 225
		}
		return toDegrees(math.Pi + math.Atan(y/x))
	case x < 0 && y > 0: // bottom left
		if -x == y {
			return 315
		}
		return toDegrees(math.Pi*2 - math.Atan(-y/x))
	}
	return 0
}

func degreesXNegativeCCW(x, y float64) float64 {
	switch {
	case y == 0:
		if x <= 0 {
			return 0
		}
		return 180
	case x == 0:
		if y > 0 {
			return 90
		}
		return 270
	case x < 0 && y > 0: // bottom left
		if -x == y {
			return 45
		}
		return toDegrees(math.Atan(-y / x))
	case x > 0 && y > 0: // bottom right
		if x == y {
			return 135
		}
		return toDegrees(math.Pi - math.Atan(y/x))
	case x > 0 && y < 0: // top right
		if x == -y {
			return 225
		}
		return toDegrees(math.Pi + math.Atan(-y/x))
	case x < 0 && y < 0: // top left
		if x == y {
			return 315
		}
		return toDegrees(math.Pi*2 - math.Atan(y/x))
	}
	return 0
}
