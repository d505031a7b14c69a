package view

import (
	"github.com/rvanwijk/gridimg/internal/grid"
)

// GraySnapshot flattens im into one byte per pixel. Values outside
// [0,255] become 0 with a warning. When the image's dynamic range is
// [0,maxRange] with maxRange positive, values are rescaled by
// 255/maxRange so the full range maps onto the display range.
func GraySnapshot(im *grid.IntImage) []uint8 {
	w, h := im.Width(), im.Height()
	buf := make([]uint8, w*h)
	idx := 0
	for iy := 0; iy < h; iy++ {
		for ix := 0; ix < w; ix++ {
			v := im.AtIndex(ix, iy)
			if v < 0 || v > 255 {
				v = 0
			}
			buf[idx] = uint8(v)
			idx++
		}
	}
	if lo, hi := im.MinMax(); lo < 0 || hi > 255 {
		grid.Warnf("display: grey values are clamped in the image viewer to [0,255]")
	}
	if minR, maxR := im.DynamicRange(); minR == 0 && maxR > 0 {
		scale := 255.0 / float64(maxR)
		for i, v := range buf {
			buf[i] = uint8(float64(v)*scale + 0.5)
		}
	}
	return buf
}

// RGBSnapshots flattens im into three byte planes, one per channel.
// Channel values outside [0,255] become 0.
func RGBSnapshots(im *grid.RgbImage) (r, g, b []uint8) {
	w, h := im.Width(), im.Height()
	r = make([]uint8, w*h)
	g = make([]uint8, w*h)
	b = make([]uint8, w*h)
	clip := func(v int) uint8 {
		if v < 0 || v > 255 {
			return 0
		}
		return uint8(v)
	}
	idx := 0
	for iy := 0; iy < h; iy++ {
		for ix := 0; ix < w; ix++ {
			cr, cg, cb := im.AtIndex(ix, iy)
			r[idx], g[idx], b[idx] = clip(cr), clip(cg), clip(cb)
			idx++
		}
	}
	return r, g, b
}

// ComplexSnapshot flattens the real parts of im into one byte per
// pixel. Complex buffers carry no dynamic range, so values are scaled
// by 255 over the largest real part (typically the DC term); anything
// that still falls outside [0,255] becomes 255.
func ComplexSnapshot(im *grid.ComplexImage) []uint8 {
	w, h := im.Width(), im.Height()
	buf := make([]uint8, w*h)
	_, max := im.MinMax()
	scale := 255.0 / max
	idx := 0
	for iy := 0; iy < h; iy++ {
		for ix := 0; ix < w; ix++ {
			gval := int(real(im.AtIndex(ix, iy))*scale + 0.5)
			if gval < 0 || gval > 255 {
				gval = 255
			}
			buf[idx] = uint8(gval)
			idx++
		}
	}
	return buf
}

// Presenter shows prepared snapshots. originX and originY locate the
// domain origin inside the snapshot, for presenters that can mark it.
type Presenter interface {
	PresentGray(pix []uint8, width, height, originX, originY int, title string) error
	PresentRGB(r, g, b []uint8, width, height int, title string) error
}

// DisplayGray snapshots im and hands it to p. The origin marker is the
// position of domain coordinate (0,0).
func DisplayGray(p Presenter, im *grid.IntImage, title string) error {
	d := im.Domain()
	return p.PresentGray(GraySnapshot(im), d.Width(), d.Height(), -d.MinX, -d.MinY, title)
}

// DisplayRGB snapshots im per channel and hands the planes to p.
func DisplayRGB(p Presenter, im *grid.RgbImage, title string) error {
	r, g, b := RGBSnapshots(im)
	return p.PresentRGB(r, g, b, im.Width(), im.Height(), title)
}

// DisplayComplex snapshots the real parts of im and hands them to p.
func DisplayComplex(p Presenter, im *grid.ComplexImage, title string) error {
	d := im.Domain()
	return p.PresentGray(ComplexSnapshot(im), d.Width(), d.Height(), -d.MinX, -d.MinY, title)
}
