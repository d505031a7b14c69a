package grid

import "math"

// IntImage is a scalar integer buffer over a Domain with a declared
// dynamic range [minRange..maxRange]. Pixels are stored in one contiguous
// row-major slice.
type IntImage struct {
	domain   Domain
	pix      []int
	stride   int
	minRange int
	maxRange int
}

// NewIntImage allocates a zeroed image over [0..width) x [0..height) with
// the given dynamic range.
func NewIntImage(width, height, minRange, maxRange int) *IntImage {
	return NewIntImageDomain(DomainOfSize(width, height), minRange, maxRange)
}

// NewDefaultIntImage allocates a zeroed image over [0..width) x
// [0..height) with an unbounded dynamic range.
func NewDefaultIntImage(width, height int) *IntImage {
	return NewIntImage(width, height, math.MinInt, math.MaxInt)
}

// NewIntImageDomain allocates a zeroed image over the given domain with
// the given dynamic range.
func NewIntImageDomain(d Domain, minRange, maxRange int) *IntImage {
	w, h := d.Size()
	return &IntImage{
		domain:   d,
		pix:      make([]int, w*h),
		stride:   w,
		minRange: minRange,
		maxRange: maxRange,
	}
}

// NewLike allocates a zeroed image with the same domain and dynamic range
// as im, without copying pixel values.
func (im *IntImage) NewLike() *IntImage {
	return NewIntImageDomain(im.domain, im.minRange, im.maxRange)
}

// Copy returns a deep copy of im.
func (im *IntImage) Copy() *IntImage {
	out := im.NewLike()
	copy(out.pix, im.pix)
	return out
}

// Domain returns the image domain.
func (im *IntImage) Domain() Domain { return im.domain }

// Width returns the domain width.
func (im *IntImage) Width() int { return im.domain.Width() }

// Height returns the domain height.
func (im *IntImage) Height() int { return im.domain.Height() }

// DynamicRange returns the declared [minRange, maxRange].
func (im *IntImage) DynamicRange() (minRange, maxRange int) {
	return im.minRange, im.maxRange
}

// SetDynamicRange replaces the declared dynamic range. Stored pixels are
// not re-clamped.
func (im *IntImage) SetDynamicRange(minRange, maxRange int) {
	im.minRange = minRange
	im.maxRange = maxRange
}

// Pix exposes the backing pixel slice in row-major order. Mutating it
// bypasses all checking; it exists for tight inner loops such as the
// morphology sliding window.
func (im *IntImage) Pix() []int { return im.pix }

// Stride returns the distance in Pix between vertically adjacent pixels.
func (im *IntImage) Stride() int { return im.stride }

// At returns the pixel at the domain-relative coordinate (x, y).
func (im *IntImage) At(x, y int) int {
	if mode == Checked {
		im.domain.check(x, y)
	}
	return im.pix[(y-im.domain.MinY)*im.stride+(x-im.domain.MinX)]
}

// AtIndex returns the pixel at the zero-based coordinate (ix, iy).
func (im *IntImage) AtIndex(ix, iy int) int {
	if mode == Checked {
		im.domain.checkIndex(ix, iy)
	}
	return im.pix[iy*im.stride+ix]
}

// Set stores value at the domain-relative coordinate (x, y), clamping it
// to the dynamic range in Checked mode.
func (im *IntImage) Set(x, y, value int) {
	if mode == Checked {
		value = im.clamp("Set", value)
		im.domain.check(x, y)
	}
	im.pix[(y-im.domain.MinY)*im.stride+(x-im.domain.MinX)] = value
}

// SetIndex stores value at the zero-based coordinate (ix, iy), clamping
// it to the dynamic range in Checked mode.
func (im *IntImage) SetIndex(ix, iy, value int) {
	if mode == Checked {
		value = im.clamp("SetIndex", value)
		im.domain.checkIndex(ix, iy)
	}
	im.pix[iy*im.stride+ix] = value
}

// SetAll fills the whole image with value. The value is clamped once in
// Checked mode, so at most one warning is emitted.
func (im *IntImage) SetAll(value int) {
	if mode == Checked {
		value = im.clamp("SetAll", value)
	}
	for i := range im.pix {
		im.pix[i] = value
	}
}

// MinMax scans the image and returns the smallest and largest stored
// pixel value.
func (im *IntImage) MinMax() (minVal, maxVal int) {
	minVal, maxVal = im.pix[0], im.pix[0]
	for _, v := range im.pix {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	return minVal, maxVal
}

// Translate shifts the image domain by (dx, dy) without touching pixel
// values.
func (im *IntImage) Translate(dx, dy int) {
	im.domain = im.domain.Translate(dx, dy)
}

// FlipHorizontal mirrors the pixel rows and flips the domain around the
// origin.
func (im *IntImage) FlipHorizontal() {
	w, h := im.domain.Size()
	for y := 0; y < h; y++ {
		row := im.pix[y*im.stride : y*im.stride+w]
		for x := 0; x < w/2; x++ {
			row[x], row[w-x-1] = row[w-x-1], row[x]
		}
	}
	im.domain = im.domain.FlipHorizontal()
}

// FlipVertical mirrors the pixel columns and flips the domain around the
// origin.
func (im *IntImage) FlipVertical() {
	w, h := im.domain.Size()
	for y := 0; y < h/2; y++ {
		top := im.pix[y*im.stride : y*im.stride+w]
		bottom := im.pix[(h-y-1)*im.stride : (h-y-1)*im.stride+w]
		for x := 0; x < w; x++ {
			top[x], bottom[x] = bottom[x], top[x]
		}
	}
	im.domain = im.domain.FlipVertical()
}

// Pad returns a new image whose domain is grown by the given number of
// pixels per side; pixels outside the original domain get padValue.
func (im *IntImage) Pad(top, right, bottom, left, padValue int) *IntImage {
	padded := NewIntImageDomain(im.domain.Pad(top, right, bottom, left), im.minRange, im.maxRange)
	for y := padded.domain.MinY; y <= padded.domain.MaxY; y++ {
		for x := padded.domain.MinX; x <= padded.domain.MaxX; x++ {
			if im.domain.Contains(x, y) {
				padded.Set(x, y, im.At(x, y))
			} else {
				padded.Set(x, y, padValue)
			}
		}
	}
	return padded
}

// clamp forces value into the dynamic range, warning when it was outside.
// Clamping against the upper bound stores maxRange-1 (see package doc).
func (im *IntImage) clamp(op string, value int) int {
	if value < im.minRange {
		Warnf("%s: value %d is outside dynamic range [%d,%d]: clamped to %d",
			op, value, im.minRange, im.maxRange, im.minRange)
		return im.minRange
	}
	if value > im.maxRange {
		Warnf("%s: value %d is outside dynamic range [%d,%d]: clamped to %d",
			op, value, im.minRange, im.maxRange, im.maxRange)
		return im.maxRange - 1
	}
	return value
}
