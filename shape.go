package icongen

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/gogpu/gg"
)

// arcSegments is the number of line segments used to approximate a full elliptical arc.
const arcSegments = 96

// Point is a position on the canvas.
type Point struct {
	X, Y float64
}

// Box is an axis aligned bounding box given by its top-left and bottom-right corners.
type Box struct {
	X0, Y0, X1, Y1 float64
}

// Dx returns the width of the box.
func (b Box) Dx() float64 { return b.X1 - b.X0 }

// Dy returns the height of the box.
func (b Box) Dy() float64 { return b.Y1 - b.Y0 }

// Center returns the center point of the box.
func (b Box) Center() Point {
	return Point{X: (b.X0 + b.X1) / 2, Y: (b.Y0 + b.Y1) / 2}
}

// Inset shrinks the box by d on every side.
func (b Box) Inset(d float64) Box {
	return Box{X0: b.X0 + d, Y0: b.Y0 + d, X1: b.X1 - d, Y1: b.Y1 - d}
}

// Style defines how a shape is painted. A nil color disables the corresponding pass.
// The outline is drawn inside the shape bounds, so it never exceeds them.
type Style struct {
	Fill    color.Color
	Outline color.Color
	Width   float64
}

// Shape is a drawing primitive which can be rendered on a canvas.
type Shape interface {
	Draw(c *Canvas) error
}

// tracer adds the outline of a shape to the current path, inset by the given amount.
type tracer func(dc *gg.Context, inset float64)

// Ellipse is an ellipse inscribed into its bounding box.
type Ellipse struct {
	Box
	Style
}

// Draw implements the Shape interface.
func (e Ellipse) Draw(c *Canvas) error {
	return c.paint(e.Style, func(dc *gg.Context, inset float64) {
		b := e.Box.Inset(inset)
		ct := b.Center()
		dc.DrawEllipse(ct.X, ct.Y, b.Dx()/2, b.Dy()/2)
	})
}

// Rect is an axis aligned rectangle.
type Rect struct {
	Box
	Style
}

// Draw implements the Shape interface.
func (r Rect) Draw(c *Canvas) error {
	return c.paint(r.Style, func(dc *gg.Context, inset float64) {
		b := r.Box.Inset(inset)
		dc.DrawRectangle(b.X0, b.Y0, b.Dx(), b.Dy())
	})
}

// RoundedRect is a rectangle with circular corners of the given radius.
type RoundedRect struct {
	Box
	Radius float64
	Style
}

// Draw implements the Shape interface.
func (r RoundedRect) Draw(c *Canvas) error {
	return c.paint(r.Style, func(dc *gg.Context, inset float64) {
		b := r.Box.Inset(inset)
		dc.DrawRoundedRectangle(b.X0, b.Y0, b.Dx(), b.Dy(), math.Max(r.Radius-inset, 0))
	})
}

// Polygon is a closed polygon through the given points.
type Polygon struct {
	Points []Point
	Style
}

// Draw implements the Shape interface. The outline of a polygon is centered on its edges.
func (p Polygon) Draw(c *Canvas) error {
	if len(p.Points) < 3 {
		return nil
	}
	return c.paint(p.Style, func(dc *gg.Context, _ float64) {
		dc.MoveTo(p.Points[0].X, p.Points[0].Y)
		for _, pt := range p.Points[1:] {
			dc.LineTo(pt.X, pt.Y)
		}
		dc.ClosePath()
	})
}

// Arc is an open elliptical arc inscribed into its bounding box.
// Angles are in degrees, measured clockwise from the 3 o'clock position.
type Arc struct {
	Box
	Start, End float64
	Color      color.Color
	Width      float64
}

// Draw implements the Shape interface.
func (a Arc) Draw(c *Canvas) error {
	style := Style{Outline: a.Color, Width: a.Width}
	return c.paint(style, func(dc *gg.Context, inset float64) {
		b := a.Box.Inset(inset)
		ct := b.Center()
		rx, ry := b.Dx()/2, b.Dy()/2

		end := a.End
		for end < a.Start {
			end += 360
		}
		n := int(math.Ceil(arcSegments * (end - a.Start) / 360))
		if n < 1 {
			n = 1
		}
		for i := 0; i <= n; i++ {
			theta := (a.Start + (end-a.Start)*float64(i)/float64(n)) * math.Pi / 180
			x, y := ct.X+rx*math.Cos(theta), ct.Y+ry*math.Sin(theta)
			if i == 0 {
				dc.MoveTo(x, y)
			} else {
				dc.LineTo(x, y)
			}
		}
	})
}

// paint rasterizes a shape on a transparent layer and blends it over the canvas.
// The fill uses the exact shape bounds, the outline pass is inset by half of its width.
func (c *Canvas) paint(st Style, trace tracer) error {
	size := c.Size()
	dc := gg.NewContext(size, size)
	defer dc.Close()

	if st.Fill != nil {
		trace(dc, 0)
		setColor(dc, st.Fill)
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("fill shape: %w", err)
		}
	}

	if st.Outline != nil && st.Width > 0 {
		trace(dc, st.Width/2)
		setColor(dc, st.Outline)
		dc.SetLineWidth(st.Width)
		dc.SetLineJoin(gg.LineJoinRound)
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("stroke shape: %w", err)
		}
	}

	c.composite(dc.Image(), image.Point{})
	return nil
}

// setColor sets the drawing color of the context using non-premultiplied components.
func setColor(dc *gg.Context, col color.Color) {
	c := color.NRGBAModel.Convert(col).(color.NRGBA)
	dc.SetRGBA(
		float64(c.R)/0xff,
		float64(c.G)/0xff,
		float64(c.B)/0xff,
		float64(c.A)/0xff,
	)
}
