package icongen

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"github.com/esimov/icongen/imop"
)

// Canvas is the square RGBA pixel buffer an icon is composed on.
// It starts fully transparent and is mutated in place by the drawing operations.
type Canvas struct {
	img *image.NRGBA
}

// NewCanvas allocates a transparent canvas of size×size pixels.
func NewCanvas(size int) *Canvas {
	return &Canvas{img: image.NewNRGBA(image.Rect(0, 0, size, size))}
}

// Size returns the canvas edge length in pixels.
func (c *Canvas) Size() int {
	return c.img.Bounds().Dx()
}

// Image exposes the underlying pixel buffer.
func (c *Canvas) Image() *image.NRGBA {
	return c.img
}

// Clone returns an independent copy of the canvas.
func (c *Canvas) Clone() *Canvas {
	return &Canvas{img: imaging.Clone(c.img)}
}

// FillGradient paints the whole canvas with a vertical linear gradient,
// one full-width strip per row. Every channel is interpolated independently
// at the ratio y/size and the background is fully opaque.
func (c *Canvas) FillGradient(top, bottom color.NRGBA) {
	size := c.Size()
	for y := 0; y < size; y++ {
		ratio := float64(y) / float64(size)
		col := color.NRGBA{
			R: lerp(top.R, bottom.R, ratio),
			G: lerp(top.G, bottom.G, ratio),
			B: lerp(top.B, bottom.B, ratio),
			A: 0xff,
		}
		draw.Draw(c.img, image.Rect(0, y, size, y+1), image.NewUniform(col), image.Point{}, draw.Src)
	}
}

// ApplyMask clips the canvas to the mask silhouette:
// the resulting alpha of every pixel is limited by the mask value.
func (c *Canvas) ApplyMask(m *Mask) {
	imop.NewComposite(imop.DstIn).Draw(c.img, m.Alpha(), image.Point{})
}

// Draw renders the shapes on the canvas in the order they are provided.
func (c *Canvas) Draw(shapes ...Shape) error {
	for _, s := range shapes {
		if err := s.Draw(c); err != nil {
			return err
		}
	}
	return nil
}

// composite blends a layer over the canvas.
func (c *Canvas) composite(layer image.Image, offset image.Point) {
	imop.NewComposite(imop.SrcOver).Draw(c.img, layer, offset)
}

// lerp interpolates linearly between a and b, truncating the result.
func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a)*(1-t) + float64(b)*t)
}
