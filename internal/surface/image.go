package surface

import (
	"image"

	"github.com/fogleman/gg"
)

// Image is a Context backed by an RGBA image of scale device pixels per
// logical unit.
type Image struct {
	canvas
	img *image.RGBA
}

func NewImage(width, height int, scale float64) *Image {
	if scale <= 0 {
		scale = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, int(float64(width)*scale), int(float64(height)*scale)))
	return &Image{canvas: newCanvas(gg.NewContextForRGBA(img), width, height), img: img}
}

// RGBA returns the live backing image.
func (i *Image) RGBA() *image.RGBA { return i.img }

// Snapshot returns a copy of the current frame.
func (i *Image) Snapshot() *image.RGBA {
	out := image.NewRGBA(i.img.Bounds())
	copy(out.Pix, i.img.Pix)
	return out
}
