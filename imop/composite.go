// Package imop implements the Porter-Duff composition operations
// used for stacking the icon layers on top of each other.
// The image/draw core package implements only the source-over-destination
// and the source operations, but masking a canvas to a silhouette needs
// destination-in, so the whole operator set is provided here.
//
// All the operations work on 8-bit premultiplied values and store the
// result back into a non-premultiplied *image.NRGBA destination.
package imop

import (
	"fmt"
	"image"

	"github.com/esimov/icongen/utils"
)

// Op is a Porter-Duff composition operator.
type Op string

const (
	Clear   Op = "clear"
	Copy    Op = "copy"
	SrcOver Op = "src_over"
	DstOver Op = "dst_over"
	SrcIn   Op = "src_in"
	DstIn   Op = "dst_in"
	SrcOut  Op = "src_out"
	DstOut  Op = "dst_out"
	SrcAtop Op = "src_atop"
	DstAtop Op = "dst_atop"
	Xor     Op = "xor"
)

var ops = []Op{Clear, Copy, SrcOver, DstOver, SrcIn, DstIn, SrcOut, DstOut, SrcAtop, DstAtop, Xor}

// Composite holds the currently active composition operator.
type Composite struct {
	current Op
}

// NewComposite initializes a new Composite. An unknown operator falls back to SrcOver.
func NewComposite(op Op) *Composite {
	c := &Composite{current: SrcOver}
	_ = c.Set(op)
	return c
}

// Set activates one of the supported composition operators.
func (c *Composite) Set(op Op) error {
	if !utils.Contains(ops, op) {
		return fmt.Errorf("unsupported composition operator: %q", op)
	}
	c.current = op
	return nil
}

// Get returns the currently active composition operator.
func (c *Composite) Get() Op {
	return c.current
}

// factors returns the Fa and Fb coefficients of the Porter-Duff equation
// out = src*Fa + dst*Fb, scaled to 0..255.
func (c *Composite) factors(as, ad uint32) (fa, fb uint32) {
	switch c.current {
	case Clear:
		return 0, 0
	case Copy:
		return 255, 0
	case SrcOver:
		return 255, 255 - as
	case DstOver:
		return 255 - ad, 255
	case SrcIn:
		return ad, 0
	case DstIn:
		return 0, as
	case SrcOut:
		return 255 - ad, 0
	case DstOut:
		return 0, 255 - as
	case SrcAtop:
		return ad, 255 - as
	case DstAtop:
		return 255 - ad, as
	case Xor:
		return 255 - ad, 255 - as
	}
	return 255, 255 - as
}

// unchanged reports whether the destination pixel is left as it is for the
// given source alpha. Skipping these pixels avoids a lossy premultiply round trip.
func (c *Composite) unchanged(as uint32) bool {
	switch c.current {
	case SrcOver, DstOut:
		return as == 0
	case DstIn:
		return as == 255
	}
	return false
}

// Draw composites src over the dst image, with the src origin translated by offset.
// Only the area where both images overlap is touched.
func (c *Composite) Draw(dst *image.NRGBA, src image.Image, offset image.Point) {
	area := dst.Bounds().Intersect(src.Bounds().Add(offset))
	if area.Empty() {
		return
	}

	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			r, g, b, a := src.At(x-offset.X, y-offset.Y).RGBA()
			sr, sg, sb, sa := r>>8, g>>8, b>>8, a>>8
			if c.unchanged(sa) {
				continue
			}

			i := dst.PixOffset(x, y)
			px := dst.Pix[i : i+4 : i+4]
			da := uint32(px[3])
			dr := premul(px[0], da)
			dg := premul(px[1], da)
			db := premul(px[2], da)

			fa, fb := c.factors(sa, da)
			or := div255(sr*fa + dr*fb)
			og := div255(sg*fa + dg*fb)
			ob := div255(sb*fa + db*fb)
			oa := div255(sa*fa + da*fb)

			if oa == 0 {
				px[0], px[1], px[2], px[3] = 0, 0, 0, 0
				continue
			}
			px[0] = unpremul(or, oa)
			px[1] = unpremul(og, oa)
			px[2] = unpremul(ob, oa)
			px[3] = uint8(oa)
		}
	}
}

func premul(v uint8, a uint32) uint32 {
	return div255(uint32(v) * a)
}

func unpremul(v, a uint32) uint8 {
	return uint8(utils.Min((v*255+a/2)/a, 255))
}

// div255 divides x by 255 rounding to the nearest integer.
func div255(x uint32) uint32 {
	return (x + 127) / 255
}
