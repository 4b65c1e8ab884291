package icongen

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/esimov/icongen/utils"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// OpenFace loads a TrueType/OpenType font (or the first font of a collection)
// from a local path or an http(s) URL and returns a face of the given point size.
func OpenFace(path string, points float64) (font.Face, error) {
	data, err := readFont(path)
	if err != nil {
		return nil, err
	}

	f, err := opentype.Parse(data)
	if err != nil {
		coll, cerr := opentype.ParseCollection(data)
		if cerr != nil {
			return nil, fmt.Errorf("parse font %s: %w", path, err)
		}
		if f, err = coll.Font(0); err != nil {
			return nil, fmt.Errorf("parse font collection %s: %w", path, err)
		}
	}

	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    points,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// LoadFace works like OpenFace, but it never fails: when the font cannot be
// loaded the built-in 7x13 bitmap face is returned instead.
func LoadFace(path string, points float64) font.Face {
	face, err := OpenFace(path, points)
	if err != nil {
		return basicfont.Face7x13
	}
	return face
}

func readFont(path string) ([]byte, error) {
	if !utils.IsValidUrl(path) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read font: %w", err)
		}
		return data, nil
	}

	f, err := utils.DownloadFile(path, "font/")
	if err != nil {
		return nil, err
	}
	defer os.Remove(f.Name())
	defer f.Close()

	data, err := os.ReadFile(f.Name())
	if err != nil {
		return nil, fmt.Errorf("read downloaded font: %w", err)
	}
	return data, nil
}

// OutlineOffsets returns every (dx, dy) displacement within the given radius,
// the origin excepted, with dx varying slowest.
func OutlineOffsets(radius int) []image.Point {
	if radius <= 0 {
		return nil
	}
	side := 2*radius + 1
	offsets := make([]image.Point, 0, side*side-1)
	for dx := -radius; dx <= radius; dx++ {
		for dy := -radius; dy <= radius; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			offsets = append(offsets, image.Pt(dx, dy))
		}
	}
	return offsets
}

// TextPass is a single rendering of a label: the text is drawn with its
// baseline origin at Dot using Color.
type TextPass struct {
	Dot   image.Point
	Color color.Color
}

// Label is a short line of text centered horizontally near the bottom of the canvas.
// When Outline is set the text is first stamped at every offset within Radius
// with the outline color, then once more at the true position with the fill color.
type Label struct {
	Text    string
	Face    font.Face
	Fill    color.Color
	Outline color.Color
	Radius  int
	Margin  int
}

// Origin returns the baseline origin of the text on a size×size canvas:
// the measured ink bounds are centered horizontally and their bottom
// edge sits Margin pixels above the bottom of the canvas.
func (l Label) Origin(size int) image.Point {
	b, _ := font.BoundString(l.Face, l.Text)
	minX, maxX := b.Min.X.Floor(), b.Max.X.Ceil()
	return image.Pt(
		(size-(maxX-minX))/2-minX,
		size-l.Margin-b.Max.Y.Ceil(),
	)
}

// Passes lists the draw calls rendering the label, in order.
func (l Label) Passes(size int) []TextPass {
	origin := l.Origin(size)

	var passes []TextPass
	if l.Outline != nil {
		for _, off := range OutlineOffsets(l.Radius) {
			passes = append(passes, TextPass{Dot: origin.Add(off), Color: l.Outline})
		}
	}
	return append(passes, TextPass{Dot: origin, Color: l.Fill})
}

// Draw implements the Shape interface.
func (l Label) Draw(c *Canvas) error {
	if l.Text == "" {
		return nil
	}
	if l.Face == nil {
		l.Face = basicfont.Face7x13
	}
	if l.Fill == nil {
		l.Fill = color.Black
	}

	d := &font.Drawer{Dst: c.img, Face: l.Face}
	for _, p := range l.Passes(c.Size()) {
		d.Src = image.NewUniform(p.Color)
		d.Dot = fixed.P(p.Dot.X, p.Dot.Y)
		d.DrawString(l.Text)
	}
	return nil
}
