package scene

import (
	"bufio"
	"fmt"
	"io"

	"github.com/jbeda/geom"
	"github.com/pkg/errors"

	"github.com/osuushi/support/graphics"
)

// Radius of the dots marking expected points.
const markerRadius = 0.05

func coord(p graphics.Point) geom.Coord {
	return geom.Coord{X: p.X, Y: p.Y}
}

// Bounds of every shape in the scene, circles included. An empty scene has
// empty bounds at the origin.
func (s *Scene) Bounds() geom.Rect {
	var points []geom.Coord
	for _, l := range append(append([]graphics.Segment{}, s.Lines...), s.Segments...) {
		points = append(points, coord(l.Start), coord(l.End))
	}
	for _, c := range s.Circles {
		points = append(points,
			geom.Coord{X: c.Center.X - c.Radius, Y: c.Center.Y - c.Radius},
			geom.Coord{X: c.Center.X + c.Radius, Y: c.Center.Y + c.Radius},
		)
	}
	for _, p := range s.Expected {
		points = append(points, coord(p))
	}
	if len(points) == 0 {
		return geom.Rect{}
	}
	r := geom.Rect{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		r.ExpandToContainCoord(p)
	}
	return r
}

// Encode writes s as an SVG document that Parse reads back into the same
// scene. The view box is the scene bounds plus margin on every side.
func Encode(w io.Writer, s *Scene, margin float64) error {
	box := s.Bounds()
	box.Min = box.Min.Minus(geom.Coord{X: margin, Y: margin})
	box.Max = box.Max.Plus(geom.Coord{X: margin, Y: margin})

	out := bufio.NewWriter(w)
	fmt.Fprintf(out, "<svg xmlns=\"http://www.w3.org/2000/svg\" viewBox=\"%g %g %g %g\">\n",
		box.Min.X, box.Min.Y, box.Width(), box.Height())
	for _, c := range s.Circles {
		fmt.Fprintf(out, "  <circle cx=\"%g\" cy=\"%g\" r=\"%g\" fill=\"none\" stroke=\"black\"/>\n",
			c.Center.X, c.Center.Y, c.Radius)
	}
	for _, l := range s.Lines {
		fmt.Fprintf(out, "  <line class=\"line\" x1=\"%g\" y1=\"%g\" x2=\"%g\" y2=\"%g\" stroke=\"gray\"/>\n",
			l.Start.X, l.Start.Y, l.End.X, l.End.Y)
	}
	for _, seg := range s.Segments {
		fmt.Fprintf(out, "  <line x1=\"%g\" y1=\"%g\" x2=\"%g\" y2=\"%g\" stroke=\"blue\"/>\n",
			seg.Start.X, seg.Start.Y, seg.End.X, seg.End.Y)
	}
	for _, p := range s.Expected {
		fmt.Fprintf(out, "  <circle class=\"expected\" cx=\"%g\" cy=\"%g\" r=\"%g\" fill=\"red\"/>\n",
			p.X, p.Y, markerRadius)
	}
	fmt.Fprint(out, "</svg>\n")
	return errors.Wrap(out.Flush(), "write svg")
}
