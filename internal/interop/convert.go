package interop

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/rvanwijk/gridimg/internal/grid"
)

// FromImage converts img to an RGB buffer with 8-bit channels and a
// [0,256) dynamic range over the domain [0,width)x[0,height).
func FromImage(img image.Image) *grid.RgbImage {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	out := grid.NewRgbImage(w, h, 0, 256)
	for iy := 0; iy < h; iy++ {
		for ix := 0; ix < w; ix++ {
			r, g, b, _ := img.At(bounds.Min.X+ix, bounds.Min.Y+iy).RGBA()
			out.SetIndex(ix, iy, int(r>>8), int(g>>8), int(b>>8))
		}
	}
	return out
}

// GrayFromImage converts img to a greyscale buffer using the perceptual
// L* lightness of each pixel rather than a plain channel average, so
// saturated colors keep their apparent brightness.
func GrayFromImage(img image.Image) *grid.IntImage {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	out := grid.NewIntImage(w, h, 0, 256)
	for iy := 0; iy < h; iy++ {
		for ix := 0; ix < w; ix++ {
			c, _ := colorful.MakeColor(img.At(bounds.Min.X+ix, bounds.Min.Y+iy))
			l, _, _ := c.Lab()
			out.SetIndex(ix, iy, int(l*255+0.5))
		}
	}
	return out
}

// ToImage renders an RGB buffer as an opaque NRGBA image. Channel
// values outside [0,255] are clipped.
func ToImage(im *grid.RgbImage) *image.NRGBA {
	w, h := im.Width(), im.Height()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for iy := 0; iy < h; iy++ {
		for ix := 0; ix < w; ix++ {
			r, g, b := im.AtIndex(ix, iy)
			out.SetNRGBA(ix, iy, color.NRGBA{R: clip8(r), G: clip8(g), B: clip8(b), A: 255})
		}
	}
	return out
}

// GrayToImage renders an integer buffer as an 8-bit grey image,
// clipping values to [0,255].
func GrayToImage(im *grid.IntImage) *image.Gray {
	w, h := im.Width(), im.Height()
	out := image.NewGray(image.Rect(0, 0, w, h))
	for iy := 0; iy < h; iy++ {
		for ix := 0; ix < w; ix++ {
			out.SetGray(ix, iy, color.Gray{Y: clip8(im.AtIndex(ix, iy))})
		}
	}
	return out
}

func clip8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
