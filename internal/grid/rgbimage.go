package grid

import "math"

// RgbImage is a color buffer with three independent integer channel
// stores sharing one Domain and one dynamic range applied per channel.
type RgbImage struct {
	domain   Domain
	red      []int
	green    []int
	blue     []int
	stride   int
	minRange int
	maxRange int
}

// NewRgbImage allocates a zeroed color image over [0..width) x
// [0..height) with the given per-channel dynamic range.
func NewRgbImage(width, height, minRange, maxRange int) *RgbImage {
	return NewRgbImageDomain(DomainOfSize(width, height), minRange, maxRange)
}

// NewDefaultRgbImage allocates a zeroed color image with an unbounded
// dynamic range.
func NewDefaultRgbImage(width, height int) *RgbImage {
	return NewRgbImage(width, height, math.MinInt, math.MaxInt)
}

// NewRgbImageDomain allocates a zeroed color image over the given domain.
func NewRgbImageDomain(d Domain, minRange, maxRange int) *RgbImage {
	w, h := d.Size()
	return &RgbImage{
		domain:   d,
		red:      make([]int, w*h),
		green:    make([]int, w*h),
		blue:     make([]int, w*h),
		stride:   w,
		minRange: minRange,
		maxRange: maxRange,
	}
}

// NewLike allocates a zeroed image with the same domain and dynamic range
// as im, without copying channel values.
func (im *RgbImage) NewLike() *RgbImage {
	return NewRgbImageDomain(im.domain, im.minRange, im.maxRange)
}

// Copy returns a deep copy of im.
func (im *RgbImage) Copy() *RgbImage {
	out := im.NewLike()
	copy(out.red, im.red)
	copy(out.green, im.green)
	copy(out.blue, im.blue)
	return out
}

// Domain returns the image domain.
func (im *RgbImage) Domain() Domain { return im.domain }

// Width returns the domain width.
func (im *RgbImage) Width() int { return im.domain.Width() }

// Height returns the domain height.
func (im *RgbImage) Height() int { return im.domain.Height() }

// DynamicRange returns the declared per-channel [minRange, maxRange].
func (im *RgbImage) DynamicRange() (minRange, maxRange int) {
	return im.minRange, im.maxRange
}

// SetDynamicRange replaces the declared dynamic range.
func (im *RgbImage) SetDynamicRange(minRange, maxRange int) {
	im.minRange = minRange
	im.maxRange = maxRange
}

// At returns the channel values at the domain-relative coordinate (x, y).
func (im *RgbImage) At(x, y int) (r, g, b int) {
	if mode == Checked {
		im.domain.check(x, y)
	}
	i := (y-im.domain.MinY)*im.stride + (x - im.domain.MinX)
	return im.red[i], im.green[i], im.blue[i]
}

// AtIndex returns the channel values at the zero-based coordinate
// (ix, iy).
func (im *RgbImage) AtIndex(ix, iy int) (r, g, b int) {
	if mode == Checked {
		im.domain.checkIndex(ix, iy)
	}
	i := iy*im.stride + ix
	return im.red[i], im.green[i], im.blue[i]
}

// Set stores the channel values at the domain-relative coordinate (x, y),
// clamping each to the dynamic range in Checked mode.
func (im *RgbImage) Set(x, y, r, g, b int) {
	if mode == Checked {
		r = im.clampChannel(r)
		g = im.clampChannel(g)
		b = im.clampChannel(b)
		im.domain.check(x, y)
	}
	i := (y-im.domain.MinY)*im.stride + (x - im.domain.MinX)
	im.red[i], im.green[i], im.blue[i] = r, g, b
}

// SetIndex stores the channel values at the zero-based coordinate
// (ix, iy), clamping each to the dynamic range in Checked mode.
func (im *RgbImage) SetIndex(ix, iy, r, g, b int) {
	if mode == Checked {
		r = im.clampChannel(r)
		g = im.clampChannel(g)
		b = im.clampChannel(b)
		im.domain.checkIndex(ix, iy)
	}
	i := iy*im.stride + ix
	im.red[i], im.green[i], im.blue[i] = r, g, b
}

// SetAll fills the whole image with one color. Each channel is clamped
// once, so warning spam is avoided.
func (im *RgbImage) SetAll(r, g, b int) {
	if mode == Checked {
		r = im.clampChannel(r)
		g = im.clampChannel(g)
		b = im.clampChannel(b)
	}
	for i := range im.red {
		im.red[i], im.green[i], im.blue[i] = r, g, b
	}
}

// MinMax scans all three channels and returns the smallest and largest
// stored value.
func (im *RgbImage) MinMax() (minVal, maxVal int) {
	minVal, maxVal = im.red[0], im.red[0]
	for _, ch := range [3][]int{im.red, im.green, im.blue} {
		for _, v := range ch {
			if v < minVal {
				minVal = v
			}
			if v > maxVal {
				maxVal = v
			}
		}
	}
	return minVal, maxVal
}

// Translate shifts the image domain by (dx, dy) without touching channel
// values.
func (im *RgbImage) Translate(dx, dy int) {
	im.domain = im.domain.Translate(dx, dy)
}

// FlipHorizontal mirrors the channel rows and flips the domain around the
// origin.
func (im *RgbImage) FlipHorizontal() {
	w, h := im.domain.Size()
	for _, ch := range [3][]int{im.red, im.green, im.blue} {
		for y := 0; y < h; y++ {
			row := ch[y*im.stride : y*im.stride+w]
			for x := 0; x < w/2; x++ {
				row[x], row[w-x-1] = row[w-x-1], row[x]
			}
		}
	}
	im.domain = im.domain.FlipHorizontal()
}

// FlipVertical mirrors the channel columns and flips the domain around
// the origin.
func (im *RgbImage) FlipVertical() {
	w, h := im.domain.Size()
	for _, ch := range [3][]int{im.red, im.green, im.blue} {
		for y := 0; y < h/2; y++ {
			top := ch[y*im.stride : y*im.stride+w]
			bottom := ch[(h-y-1)*im.stride : (h-y-1)*im.stride+w]
			for x := 0; x < w; x++ {
				top[x], bottom[x] = bottom[x], top[x]
			}
		}
	}
	im.domain = im.domain.FlipVertical()
}

// Pad returns a new image grown by the given number of pixels per side;
// pixels outside the original domain get the color (r, g, b).
func (im *RgbImage) Pad(top, right, bottom, left, r, g, b int) *RgbImage {
	padded := NewRgbImageDomain(im.domain.Pad(top, right, bottom, left), im.minRange, im.maxRange)
	for y := padded.domain.MinY; y <= padded.domain.MaxY; y++ {
		for x := padded.domain.MinX; x <= padded.domain.MaxX; x++ {
			if im.domain.Contains(x, y) {
				pr, pg, pb := im.At(x, y)
				padded.Set(x, y, pr, pg, pb)
			} else {
				padded.Set(x, y, r, g, b)
			}
		}
	}
	return padded
}

func (im *RgbImage) clampChannel(value int) int {
	if value < im.minRange {
		Warnf("Set: value %d is outside dynamic range [%d,%d]: clamped to %d",
			value, im.minRange, im.maxRange, im.minRange)
		return im.minRange
	}
	if value > im.maxRange {
		Warnf("Set: value %d is outside dynamic range [%d,%d]: clamped to %d",
			value, im.minRange, im.maxRange, im.maxRange)
		return im.maxRange - 1
	}
	return value
}
