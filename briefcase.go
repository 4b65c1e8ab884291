package icongen

import (
	"image/color"

	"github.com/esimov/icongen/utils"
)

// Briefcase draws the web application icon: a turquoise gradient tile with
// rounded corners carrying a briefcase outline with a Bitcoin sign inside.
type Briefcase struct {
	Size   int
	Top    color.NRGBA
	Bottom color.NRGBA
	Ink    color.NRGBA
}

// NewBriefcase returns the briefcase icon with its default turquoise theme.
func NewBriefcase() *Briefcase {
	return &Briefcase{
		Size:   WorkingSize,
		Top:    color.NRGBA{R: 64, G: 224, B: 208, A: 0xff}, // medium turquoise
		Bottom: color.NRGBA{R: 0, G: 206, B: 209, A: 0xff},  // dark turquoise
		Ink:    color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 230},
	}
}

// CornerRadius returns the radius of the rounded tile corners.
func (b *Briefcase) CornerRadius() float64 {
	return float64(b.Size / 8)
}

// Compose implements the Composer interface.
func (b *Briefcase) Compose() (*Canvas, error) {
	c := NewCanvas(b.Size)
	c.FillGradient(b.Top, b.Bottom)
	c.ApplyMask(NewRoundedMask(b.Size, b.CornerRadius()))

	if err := c.Draw(b.glyph()...); err != nil {
		return nil, err
	}
	return c, nil
}

// glyph lays out the briefcase and the Bitcoin sign relative to the canvas size.
func (b *Briefcase) glyph() []Shape {
	size := float64(b.Size)
	lw := float64(utils.Max(b.Size/20, 2))
	ink := b.Ink

	// Case body.
	caseW, caseH := size*0.6, size*0.4
	caseX, caseY := (size-caseW)/2, size*0.35

	// Handle, a U whose ends rise above the top edge of the case.
	handleW, handleH := caseW*0.4, size*0.15
	handleX := (size - handleW) / 2
	handleY := caseY - handleH*0.7

	// The "B": a stem and two stacked bowls.
	bW, bH := caseW*0.35, caseH*0.6
	bX := (size - bW) / 2
	bY := caseY + (caseH-bH)/2
	bowlW := bW * 0.8

	// Vertical strokes crossing the "B".
	strokeOff := bW * 0.15
	strokeTop, strokeBottom := bY-size*0.05, bY+bH+size*0.05

	return []Shape{
		RoundedRect{
			Box:    Box{X0: caseX, Y0: caseY, X1: caseX + caseW, Y1: caseY + caseH},
			Radius: float64(b.Size / 20),
			Style:  Style{Outline: ink, Width: lw},
		},
		Arc{
			Box:   Box{X0: handleX, Y0: handleY, X1: handleX + handleW, Y1: handleY + handleH},
			Start: 0, End: 180,
			Color: ink, Width: lw,
		},
		Rect{
			Box:   Box{X0: bX, Y0: bY, X1: bX + lw*1.5, Y1: bY + bH},
			Style: Style{Fill: ink},
		},
		Ellipse{
			Box:   Box{X0: bX, Y0: bY, X1: bX + bowlW, Y1: bY + bH*0.45},
			Style: Style{Outline: ink, Width: lw},
		},
		Ellipse{
			Box:   Box{X0: bX, Y0: bY + bH*0.45, X1: bX + bowlW, Y1: bY + bH},
			Style: Style{Outline: ink, Width: lw},
		},
		Rect{
			Box:   Box{X0: bX - strokeOff, Y0: strokeTop, X1: bX - strokeOff + lw, Y1: strokeBottom},
			Style: Style{Fill: ink},
		},
		Rect{
			Box:   Box{X0: bX + bowlW - strokeOff, Y0: strokeTop, X1: bX + bowlW - strokeOff + lw, Y1: strokeBottom},
			Style: Style{Fill: ink},
		},
	}
}
