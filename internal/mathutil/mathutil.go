package mathutil

import "golang.org/x/exp/constraints"

func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Index i wrapped into [0, n), for walking a polygon's points as a ring.
// Negative i wraps from the end, unlike the % operator.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
