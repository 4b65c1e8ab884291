package icongen

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultFontPath is the well-known location of the label font on macOS.
const DefaultFontPath = "/System/Library/Fonts/Helvetica.ttc"

// Skull draws the desktop application icon: a skull face on a dark disc
// with a short outlined caption under it.
type Skull struct {
	Size       int
	Background color.NRGBA
	Rim        color.NRGBA
	Bone       color.NRGBA
	Socket     color.NRGBA
	Shadow     color.NRGBA
	Caption    string
	FontPath   string
	FontSize   float64
}

// NewSkull returns the skull icon with its default palette and caption.
func NewSkull(fontPath string) *Skull {
	if fontPath == "" {
		fontPath = DefaultFontPath
	}
	return &Skull{
		Size:       WorkingSize,
		Background: color.NRGBA{R: 24, G: 24, B: 32, A: 0xff},
		Rim:        color.NRGBA{R: 247, G: 147, B: 26, A: 0xff},
		Bone:       color.NRGBA{R: 242, G: 236, B: 222, A: 0xff},
		Socket:     color.NRGBA{R: 24, G: 24, B: 32, A: 0xff},
		Shadow:     color.NRGBA{A: 160},
		Caption:    "dev",
		FontPath:   fontPath,
		FontSize:   72,
	}
}

// Compose implements the Composer interface.
func (s *Skull) Compose() (*Canvas, error) {
	size := float64(s.Size)
	margin := size / 16

	c := NewCanvas(s.Size)
	err := c.Draw(Ellipse{
		Box:   Box{X0: margin, Y0: margin, X1: size - margin, Y1: size - margin},
		Style: Style{Fill: s.Background, Outline: s.Rim, Width: size / 64},
	})
	if err != nil {
		return nil, err
	}

	if err := s.dropShadow(c); err != nil {
		return nil, err
	}
	if err := c.Draw(s.face()...); err != nil {
		return nil, err
	}

	if err := c.Draw(s.label(LoadFace(s.FontPath, s.FontSize*size/WorkingSize))); err != nil {
		return nil, err
	}
	return c, nil
}

// head returns the cranium and the jaw, the silhouette of the skull.
func (s *Skull) head(st Style) []Shape {
	size := float64(s.Size)
	return []Shape{
		Ellipse{
			Box:   Box{X0: size * 0.26, Y0: size * 0.16, X1: size * 0.74, Y1: size * 0.60},
			Style: st,
		},
		RoundedRect{
			Box:    Box{X0: size * 0.35, Y0: size * 0.50, X1: size * 0.65, Y1: size * 0.70},
			Radius: size * 0.04,
			Style:  st,
		},
	}
}

// face lays out the skull features relative to the canvas size.
func (s *Skull) face() []Shape {
	size := float64(s.Size)
	hole := Style{Fill: s.Socket}

	shapes := s.head(Style{Fill: s.Bone})
	shapes = append(shapes,
		// Eye sockets.
		Ellipse{Box: Box{X0: size * 0.33, Y0: size * 0.33, X1: size * 0.46, Y1: size * 0.46}, Style: hole},
		Ellipse{Box: Box{X0: size * 0.54, Y0: size * 0.33, X1: size * 0.67, Y1: size * 0.46}, Style: hole},
		// Nasal cavity.
		Polygon{
			Points: []Point{
				{X: size * 0.50, Y: size * 0.48},
				{X: size * 0.535, Y: size * 0.555},
				{X: size * 0.465, Y: size * 0.555},
			},
			Style: hole,
		},
	)

	// Gaps between the teeth.
	for i := 0; i < 4; i++ {
		x := size * (0.405 + float64(i)*0.06)
		shapes = append(shapes, Rect{
			Box:   Box{X0: x, Y0: size * 0.61, X1: x + size*0.014, Y1: size * 0.69},
			Style: hole,
		})
	}
	return shapes
}

// dropShadow paints a blurred copy of the skull silhouette slightly below it.
func (s *Skull) dropShadow(c *Canvas) error {
	layer := NewCanvas(s.Size)
	if err := layer.Draw(s.head(Style{Fill: s.Shadow})...); err != nil {
		return err
	}
	blurred := imaging.Blur(layer.Image(), float64(s.Size)/96)
	c.composite(blurred, image.Pt(0, s.Size/48))
	return nil
}

func (s *Skull) label(face font.Face) Label {
	return Label{
		Text:    cases.Upper(language.English).String(s.Caption),
		Face:    face,
		Fill:    s.Bone,
		Outline: color.NRGBA{A: 0xff},
		Radius:  2,
		Margin:  s.Size / 10,
	}
}
