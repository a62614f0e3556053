// Package scene reads intersection scenes out of SVG documents. This is not a
// general svg reader. It only looks at <line> and <circle> elements:
//
//   - <line x1 y1 x2 y2> is a segment, or an infinite line with class="line"
//   - <circle cx cy r> is a circle, or an expected intersection point with
//     class="expected" (the radius is then only cosmetic)
//
// Everything else in the document is ignored, so fixtures can carry whatever
// extra decoration makes them readable in a browser.
package scene

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"

	"github.com/osuushi/support/graphics"
	"github.com/osuushi/support/internal/throw"
)

type Scene struct {
	Lines    []graphics.Segment
	Segments []graphics.Segment
	Circles  []graphics.Circle
	Expected []graphics.Point
}

func Load(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open scene")
	}
	defer f.Close()
	return Parse(f)
}

func Parse(r io.Reader) (s *Scene, err error) {
	defer func() {
		if recovered := throw.Recover(recover()); recovered != nil {
			s, err = nil, recovered
		}
	}()

	root, err := svgparser.Parse(r, false)
	throw.Wrapf(err, "parse svg")

	s = &Scene{}
	for _, el := range root.FindAll("line") {
		segment := graphics.Segment{
			Start: graphics.Pt(attr(el, "x1"), attr(el, "y1")),
			End:   graphics.Pt(attr(el, "x2"), attr(el, "y2")),
		}
		if hasClass(el, "line") {
			s.Lines = append(s.Lines, segment)
		} else {
			s.Segments = append(s.Segments, segment)
		}
	}

	for _, el := range root.FindAll("circle") {
		center := graphics.Pt(attr(el, "cx"), attr(el, "cy"))
		if hasClass(el, "expected") {
			s.Expected = append(s.Expected, center)
			continue
		}
		r := attr(el, "r")
		if r < 0 {
			throw.Fatalf("negative radius %v", r)
		}
		s.Circles = append(s.Circles, graphics.Circle{Center: center, Radius: r})
	}
	return s, nil
}

// Intersections of every line and segment with every circle, in document
// order.
func (s *Scene) Intersections() []graphics.Point {
	var result []graphics.Point
	for _, c := range s.Circles {
		for _, l := range s.Lines {
			result = append(result, c.IntersectLine(l.Start, l.End)...)
		}
		for _, seg := range s.Segments {
			result = append(result, c.IntersectSegment(seg.Start, seg.End)...)
		}
	}
	return result
}

func attr(el *svgparser.Element, name string) float64 {
	raw, ok := el.Attributes[name]
	if !ok {
		throw.Fatalf("<%s> is missing %q", el.Name, name)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	throw.Wrapf(err, "<%s> has invalid %s", el.Name, name)
	return v
}

func hasClass(el *svgparser.Element, class string) bool {
	for _, c := range strings.Fields(el.Attributes["class"]) {
		if c == class {
			return true
		}
	}
	return false
}
