package grid

import "math"

// DoubleImage is a scalar float64 buffer over a Domain with a declared
// dynamic range.
type DoubleImage struct {
	domain   Domain
	pix      []float64
	stride   int
	minRange float64
	maxRange float64
}

// NewDoubleImage allocates a zeroed image over [0..width) x [0..height)
// with the given dynamic range.
func NewDoubleImage(width, height int, minRange, maxRange float64) *DoubleImage {
	return NewDoubleImageDomain(DomainOfSize(width, height), minRange, maxRange)
}

// NewDefaultDoubleImage allocates a zeroed image with an unbounded
// dynamic range.
func NewDefaultDoubleImage(width, height int) *DoubleImage {
	return NewDoubleImage(width, height, -math.MaxFloat64, math.MaxFloat64)
}

// NewDoubleImageDomain allocates a zeroed image over the given domain.
func NewDoubleImageDomain(d Domain, minRange, maxRange float64) *DoubleImage {
	w, h := d.Size()
	return &DoubleImage{
		domain:   d,
		pix:      make([]float64, w*h),
		stride:   w,
		minRange: minRange,
		maxRange: maxRange,
	}
}

// NewLike allocates a zeroed image with the same domain and dynamic range
// as im.
func (im *DoubleImage) NewLike() *DoubleImage {
	return NewDoubleImageDomain(im.domain, im.minRange, im.maxRange)
}

// Copy returns a deep copy of im.
func (im *DoubleImage) Copy() *DoubleImage {
	out := im.NewLike()
	copy(out.pix, im.pix)
	return out
}

// Domain returns the image domain.
func (im *DoubleImage) Domain() Domain { return im.domain }

// Width returns the domain width.
func (im *DoubleImage) Width() int { return im.domain.Width() }

// Height returns the domain height.
func (im *DoubleImage) Height() int { return im.domain.Height() }

// DynamicRange returns the declared [minRange, maxRange].
func (im *DoubleImage) DynamicRange() (minRange, maxRange float64) {
	return im.minRange, im.maxRange
}

// At returns the pixel at the domain-relative coordinate (x, y).
func (im *DoubleImage) At(x, y int) float64 {
	if mode == Checked {
		im.domain.check(x, y)
	}
	return im.pix[(y-im.domain.MinY)*im.stride+(x-im.domain.MinX)]
}

// AtIndex returns the pixel at the zero-based coordinate (ix, iy).
func (im *DoubleImage) AtIndex(ix, iy int) float64 {
	if mode == Checked {
		im.domain.checkIndex(ix, iy)
	}
	return im.pix[iy*im.stride+ix]
}

// Set stores value at the domain-relative coordinate (x, y), clamping it
// to the dynamic range in Checked mode.
func (im *DoubleImage) Set(x, y int, value float64) {
	if mode == Checked {
		value = im.clamp("Set", value)
		im.domain.check(x, y)
	}
	im.pix[(y-im.domain.MinY)*im.stride+(x-im.domain.MinX)] = value
}

// SetIndex stores value at the zero-based coordinate (ix, iy), clamping
// it in Checked mode.
func (im *DoubleImage) SetIndex(ix, iy int, value float64) {
	if mode == Checked {
		value = im.clamp("SetIndex", value)
		im.domain.checkIndex(ix, iy)
	}
	im.pix[iy*im.stride+ix] = value
}

// SetAll fills the whole image with value (clamped once in Checked mode).
func (im *DoubleImage) SetAll(value float64) {
	if mode == Checked {
		value = im.clamp("SetAll", value)
	}
	for i := range im.pix {
		im.pix[i] = value
	}
}

// MinMax scans the image and returns the smallest and largest stored
// value.
func (im *DoubleImage) MinMax() (minVal, maxVal float64) {
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

// Translate shifts the image domain by (dx, dy).
func (im *DoubleImage) Translate(dx, dy int) {
	im.domain = im.domain.Translate(dx, dy)
}

func (im *DoubleImage) clamp(op string, value float64) float64 {
	if value < im.minRange {
		Warnf("%s: value %g is outside dynamic range [%g,%g]: clamped to %g",
			op, value, im.minRange, im.maxRange, im.minRange)
		return im.minRange
	}
	if value > im.maxRange {
		Warnf("%s: value %g is outside dynamic range [%g,%g]: clamped to %g",
			op, value, im.minRange, im.maxRange, im.maxRange)
		return im.maxRange - 1
	}
	return value
}
