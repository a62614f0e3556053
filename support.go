// Everyday geometry, string and file helpers for Go.
//
// The centerpiece is line/circle intersection: given a line (or a segment)
// and a circle, find the zero, one or two points where they meet. The rest of
// the module is a set of independent helpers, each in its own package:
//
//   - formula: distances and bearings in screen coordinates
//   - natural: Windows Explorer style "natural" string ordering
//   - fileutil: copying, deleting and hashing files and directory trees
//   - fileutil: also charset aware text files, filters and file name cleanup
//   - uriutil: opening and copying what file and http(s) URIs point at
//   - mcc: mobile country code to ISO 3166 lookups
//   - charutil: Unicode block tests for CJK text
//   - idutil: 64-bit ids from UUIDs
//   - display: dip to pixel conversion
//   - animation: a small time interpolation driver
//   - accounts: typed user data on top of a key/value store
//
// The graphics package holds the geometry itself, and cmd/support puts most
// of the above on the command line.
//
// This package re-exports the geometry types so that simple uses only need
// one import.
package support

import "github.com/osuushi/support/graphics"

type Point = graphics.Point
type Line = graphics.Line
type Circle = graphics.Circle
type Segment = graphics.Segment

// Intersection of the infinite line through p1 and p2 with a circle. An empty
// result means there is no intersection; otherwise there are one (tangent) or
// two points.
func IntersectLine(p1, p2, center Point, radius float64) []Point {
	points := graphics.IntersectLine(p1, p2, center, radius)
	Logger().Debug("intersect line",
		"p1", p1, "p2", p2, "center", center, "radius", radius, "count", len(points))
	return points
}

// Intersection of the segment from p1 to p2 with a circle. If there are two
// points, the one nearer to p1 comes first.
func IntersectSegment(p1, p2, center Point, radius float64) []Point {
	points := graphics.IntersectSegment(p1, p2, center, radius)
	Logger().Debug("intersect segment",
		"p1", p1, "p2", p2, "center", center, "radius", radius, "count", len(points))
	return points
}
