package main

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/support"
	"github.com/osuushi/support/dbg"
	"github.com/osuushi/support/formula"
	"github.com/osuushi/support/graphics"
	"github.com/osuushi/support/internal/scene"
)

func (c *cli) geometryCommands(app *kingpin.Application) []command {
	intersect := app.Command("intersect", "Intersect every line and segment of an SVG scene with its circles.")
	intersectPath := intersect.Arg("scene", "SVG scene file.").Required().ExistingFile()
	intersectCheck := intersect.Flag("check", "Fail unless the result matches the scene's expected points.").Bool()

	line := app.Command("line", "Intersect the line through two points with a circle.")
	lineSegment := line.Flag("segment", "Treat the points as the ends of a segment.").Bool()
	lineArgs := line.Arg("x1 y1 x2 y2 cx cy r", "Line points, circle center and radius.").Required().Strings()

	draw := app.Command("draw", "Render an SVG scene and its intersections.")
	drawPath := draw.Arg("scene", "SVG scene file.").Required().ExistingFile()
	drawOut := draw.Flag("out", "Write a PNG here.").Short('o').String()
	drawSVG := draw.Flag("svg", "Write the normalized scene as SVG here.").String()
	drawScale := draw.Flag("scale", "Pixels per scene unit.").Default("20").Float64()
	drawShow := draw.Flag("imgcat", "Print the image to the terminal (iTerm only).").Bool()

	degrees := app.Command("degrees", "Bearing of a point, or of a point seen from an origin.")
	degreesAxis := degrees.Flag("axis", "Reference axis.").Default("x").Enum("x", "y")
	degreesDir := degrees.Flag("direction", "Direction along the axis.").Default("positive").Enum("positive", "negative")
	degreesRot := degrees.Flag("rotation", "Turning direction on screen.").Default("cw").Enum("cw", "ccw")
	degreesArgs := degrees.Arg("[ox oy] x y", "Point, optionally preceded by an origin.").Required().Strings()

	distance := app.Command("distance", "Distance between two points, or from a point to a segment with --segment.")
	distanceSegment := distance.Flag("segment", "Measure from the first point to the segment through the others.").Bool()
	distanceLine := distance.Flag("line", "Measure from the first point to the line through the others.").Bool()
	distanceArgs := distance.Arg("coords", "x1 y1 x2 y2, or x y x1 y1 x2 y2.").Required().Strings()

	oval := app.Command("oval", "Evenly spaced points around the ellipse inscribed in a rectangle.")
	ovalArgs := oval.Arg("left top right bottom", "Bounding rectangle.").Required().Strings()
	ovalDistance := oval.Flag("distance", "Spacing along the outline.").Required().Float64()
	ovalStart := oval.Flag("start", "Offset of the first point as a fraction of the spacing.").Float64()

	return []command{
		{intersect, func() error {
			s, err := scene.Load(*intersectPath)
			if err != nil {
				return err
			}
			if c.debug {
				dbg.Dump(os.Stderr, s)
			}
			points := s.Intersections()
			c.printPoints(points, "no intersection")
			if *intersectCheck && !samePoints(points, s.Expected) {
				return errors.Errorf("expected %v, got %v", s.Expected, points)
			}
			return nil
		}},
		{line, func() error {
			v, err := floats(*lineArgs, 7)
			if err != nil {
				return err
			}
			p1, p2, center := support.Point{X: v[0], Y: v[1]}, support.Point{X: v[2], Y: v[3]}, support.Point{X: v[4], Y: v[5]}
			if *lineSegment {
				c.printPoints(support.IntersectSegment(p1, p2, center, v[6]), "no intersection")
			} else {
				c.printPoints(support.IntersectLine(p1, p2, center, v[6]), "no intersection")
			}
			return nil
		}},
		{draw, func() error {
			s, err := scene.Load(*drawPath)
			if err != nil {
				return err
			}
			if *drawOut != "" {
				if err := writeFile(*drawOut, func(f *os.File) error { return dbg.RenderPNG(f, s, *drawScale) }); err != nil {
					return err
				}
			}
			if *drawSVG != "" {
				if err := writeFile(*drawSVG, func(f *os.File) error { return scene.Encode(f, s, 1) }); err != nil {
					return err
				}
			}
			if *drawShow {
				return dbg.Show(s, *drawScale)
			}
			return nil
		}},
		{degrees, func() error {
			v, err := floats(*degreesArgs, 2, 4)
			if err != nil {
				return err
			}
			axis, dir, rot := formula.AxisX, formula.Positive, formula.Clockwise
			if *degreesAxis == "y" {
				axis = formula.AxisY
			}
			if *degreesDir == "negative" {
				dir = formula.Negative
			}
			if *degreesRot == "ccw" {
				rot = formula.CounterClockwise
			}
			var result float64
			if len(v) == 4 {
				result = formula.DegreesFrom(axis, dir, rot, v[0], v[1], v[2], v[3])
			} else {
				result = formula.Degrees(axis, dir, rot, v[0], v[1])
			}
			c.printf("%s\n", c.au.Green(strconv.FormatFloat(result, 'g', -1, 64)))
			return nil
		}},
		{distance, func() error {
			var result float64
			switch {
			case *distanceSegment || *distanceLine:
				v, err := floats(*distanceArgs, 6)
				if err != nil {
					return err
				}
				if *distanceSegment {
					result = formula.DistanceToSegment(v[0], v[1], v[2], v[3], v[4], v[5])
				} else {
					result = formula.DistanceToLine(v[0], v[1], v[2], v[3], v[4], v[5])
				}
			default:
				v, err := floats(*distanceArgs, 4)
				if err != nil {
					return err
				}
				result = formula.Distance(v[0], v[1], v[2], v[3])
			}
			c.printf("%s\n", c.au.Green(strconv.FormatFloat(result, 'g', -1, 64)))
			return nil
		}},
		{oval, func() error {
			v, err := floats(*ovalArgs, 4)
			if err != nil {
				return err
			}
			bounds := graphics.Rect{Left: v[0], Top: v[1], Right: v[2], Bottom: v[3]}
			c.printPoints(graphics.OvalSplitPoints(bounds, *ovalDistance, *ovalStart), "spacing too wide")
			return nil
		}},
	}
}

func (c *cli) printPoints(points []graphics.Point, none string) {
	if len(points) == 0 {
		c.printf("%s\n", c.au.Red(none))
		return
	}
	for _, p := range points {
		c.printf("%s\n", c.au.Green(p))
	}
}

func samePoints(a, b []graphics.Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Distance(b[i]) > 1e-9 {
			return false
		}
	}
	return true
}

// floats parses args as numbers, requiring one of the given counts.
func floats(args []string, counts ...int) ([]float64, error) {
	ok := false
	for _, n := range counts {
		ok = ok || len(args) == n
	}
	if !ok {
		return nil, errors.Errorf("expected %v numbers, got %d", counts, len(args))
	}
	v := make([]float64, len(args))
	for i, arg := range args {
		f, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "argument %d", i+1)
		}
		v[i] = f
	}
	return v, nil
}

func writeFile(path string, write func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	err = write(f)
	if closeErr := f.Close(); err == nil && closeErr != nil {
		err = errors.Wrap(closeErr, "close output")
	}
	return err
}
