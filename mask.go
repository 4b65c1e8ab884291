package icongen

import (
	"image"

	"github.com/esimov/icongen/utils"
	"github.com/gogpu/gg"
)

// Mask is a single-channel buffer used to clip a canvas to a silhouette.
type Mask struct {
	alpha *image.Alpha
}

// NewRoundedMask creates a size×size mask which is opaque inside the rounded
// rectangle spanning the whole mask and transparent outside of it.
// The corner arcs are anti-aliased by the rasterizer.
func NewRoundedMask(size int, radius float64) *Mask {
	radius = utils.Clamp(radius, 0, float64(size)/2)

	dc := gg.NewContext(size, size)
	defer dc.Close()
	dc.DrawRoundedRectangle(0, 0, float64(size), float64(size), radius)

	return newMask(dc.AsMask())
}

// newMask copies a rasterized gg mask into an alpha image.
func newMask(gm *gg.Mask) *Mask {
	m := &Mask{alpha: image.NewAlpha(gm.Bounds())}
	copy(m.alpha.Pix, gm.Data())
	return m
}

// At returns the mask value at (x, y).
func (m *Mask) At(x, y int) uint8 {
	return m.alpha.AlphaAt(x, y).A
}

// Alpha exposes the mask as an alpha image.
func (m *Mask) Alpha() *image.Alpha {
	return m.alpha
}
