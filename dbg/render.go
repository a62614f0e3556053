package dbg

import (
	"image"
	"io"
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
	"golang.org/x/image/font/basicfont"

	"github.com/osuushi/support/graphics"
	"github.com/osuushi/support/internal/scene"
)

// Padding in pixels around the scene, so that lines visibly run off past the
// shapes.
const drawPadding = 40

// Render draws the scene at scale pixels per unit: circles in white, infinite
// lines in gray across the whole canvas, segments in blue, expected points in
// red and computed intersections in green. Every circle is labelled with its
// readable name.
func Render(s *scene.Scene, scale float64) image.Image {
	return draw(s, scale).Image()
}

func RenderPNG(w io.Writer, s *scene.Scene, scale float64) error {
	return errors.Wrap(draw(s, scale).EncodePNG(w), "encode png")
}

// Show renders the scene and prints it to the terminal (iTerm only).
func Show(s *scene.Scene, scale float64) error {
	return show(os.Stdout, s, scale)
}

func show(w io.Writer, s *scene.Scene, scale float64) error {
	f, err := os.CreateTemp("", "scene-*.png")
	if err != nil {
		return errors.Wrap(err, "create image")
	}
	defer os.Remove(f.Name())
	err = RenderPNG(f, s, scale)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return err
	}
	return errors.Wrap(imgcat.CatFile(f.Name(), w), "print image")
}

func draw(s *scene.Scene, scale float64) *gg.Context {
	if !(scale > 0) {
		scale = 1
	}
	box := s.Bounds()
	width := int(math.Ceil(scale*box.Width())) + drawPadding*2
	height := int(math.Ceil(scale*box.Height())) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Scene coordinates are svg coordinates, so y already points down.
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-box.Min.X, -box.Min.Y)

	// Canvas edges in scene coordinates, for drawing lines at infinity.
	pad := drawPadding / scale
	view := graphics.Rect{
		Left:   box.Min.X - pad,
		Top:    box.Min.Y - pad,
		Right:  box.Max.X + pad,
		Bottom: box.Max.Y + pad,
	}

	c.SetLineWidth(2)
	c.SetRGB(1, 1, 1)
	for _, circle := range s.Circles {
		c.DrawCircle(circle.Center.X, circle.Center.Y, circle.Radius)
		c.Stroke()
	}
	c.SetRGB(0.5, 0.5, 0.5)
	for _, l := range s.Lines {
		from, to := clipLine(l, view)
		c.DrawLine(from.X, from.Y, to.X, to.Y)
		c.Stroke()
	}
	c.SetRGB(0.2, 0.4, 1)
	for _, seg := range s.Segments {
		c.DrawLine(seg.Start.X, seg.Start.Y, seg.End.X, seg.End.Y)
		c.Stroke()
	}

	marker := 4 / scale
	c.SetRGB(1, 0.2, 0.2)
	for _, p := range s.Expected {
		c.DrawCircle(p.X, p.Y, marker*1.5)
		c.Fill()
	}
	c.SetRGB(0.2, 1, 0.2)
	for _, p := range s.Intersections() {
		c.DrawCircle(p.X, p.Y, marker)
		c.Fill()
	}

	c.SetFontFace(basicfont.Face7x13)
	c.SetRGB(1, 1, 1)
	for i := range s.Circles {
		circle := &s.Circles[i]
		// Text is drawn in device space so it does not scale with the scene.
		x, y := c.TransformPoint(circle.Center.X, circle.Center.Y)
		c.Push()
		c.Identity()
		c.DrawStringAnchored(Name(circle), x, y, 0.5, 0.5)
		c.Pop()
	}
	return c
}

// clipLine returns two points on the infinite line through l that lie on or
// beyond the edges of view.
func clipLine(l graphics.Segment, view graphics.Rect) (graphics.Point, graphics.Point) {
	line := graphics.LineThrough(l.Start, l.End)
	if line.IsVertical() {
		return graphics.Pt(line.B, view.Top), graphics.Pt(line.B, view.Bottom)
	}
	return graphics.Pt(view.Left, line.SolveForY(view.Left)),
		graphics.Pt(view.Right, line.SolveForY(view.Right))
}
