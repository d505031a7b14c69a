package grid

// ComplexImage is a complex128 buffer over a Domain. Complex buffers have
// no dynamic-range concept; they exist as spectral-transform
// intermediates and results.
type ComplexImage struct {
	domain Domain
	pix    []complex128
	stride int
}

// NewComplexImage allocates a zeroed complex image over [0..width) x
// [0..height).
func NewComplexImage(width, height int) *ComplexImage {
	return NewComplexImageDomain(DomainOfSize(width, height))
}

// NewComplexImageDomain allocates a zeroed complex image over the given
// domain.
func NewComplexImageDomain(d Domain) *ComplexImage {
	w, h := d.Size()
	return &ComplexImage{
		domain: d,
		pix:    make([]complex128, w*h),
		stride: w,
	}
}

// NewLike allocates a zeroed image with the same domain as im.
func (im *ComplexImage) NewLike() *ComplexImage {
	return NewComplexImageDomain(im.domain)
}

// Copy returns a deep copy of im.
func (im *ComplexImage) Copy() *ComplexImage {
	out := im.NewLike()
	copy(out.pix, im.pix)
	return out
}

// Domain returns the image domain.
func (im *ComplexImage) Domain() Domain { return im.domain }

// Width returns the domain width.
func (im *ComplexImage) Width() int { return im.domain.Width() }

// Height returns the domain height.
func (im *ComplexImage) Height() int { return im.domain.Height() }

// Row exposes the backing slice for the zero-based row iy. The spectral
// transform runs its 1-D passes directly on rows.
func (im *ComplexImage) Row(iy int) []complex128 {
	if mode == Checked {
		im.domain.checkIndex(0, iy)
	}
	return im.pix[iy*im.stride : iy*im.stride+im.stride]
}

// At returns the value at the domain-relative coordinate (x, y).
func (im *ComplexImage) At(x, y int) complex128 {
	if mode == Checked {
		im.domain.check(x, y)
	}
	return im.pix[(y-im.domain.MinY)*im.stride+(x-im.domain.MinX)]
}

// AtIndex returns the value at the zero-based coordinate (ix, iy).
func (im *ComplexImage) AtIndex(ix, iy int) complex128 {
	if mode == Checked {
		im.domain.checkIndex(ix, iy)
	}
	return im.pix[iy*im.stride+ix]
}

// Set stores value at the domain-relative coordinate (x, y).
func (im *ComplexImage) Set(x, y int, value complex128) {
	if mode == Checked {
		im.domain.check(x, y)
	}
	im.pix[(y-im.domain.MinY)*im.stride+(x-im.domain.MinX)] = value
}

// SetIndex stores value at the zero-based coordinate (ix, iy).
func (im *ComplexImage) SetIndex(ix, iy int, value complex128) {
	if mode == Checked {
		im.domain.checkIndex(ix, iy)
	}
	im.pix[iy*im.stride+ix] = value
}

// SetAll fills the whole image with value.
func (im *ComplexImage) SetAll(value complex128) {
	for i := range im.pix {
		im.pix[i] = value
	}
}

// MinMax scans the real parts and returns the smallest and largest.
func (im *ComplexImage) MinMax() (minVal, maxVal float64) {
	minVal, maxVal = real(im.pix[0]), real(im.pix[0])
	for _, v := range im.pix {
		r := real(v)
		if r < minVal {
			minVal = r
		}
		if r > maxVal {
			maxVal = r
		}
	}
	return minVal, maxVal
}

// Mul returns the pointwise product of im and other. Both images must
// have identical domains.
func (im *ComplexImage) Mul(other *ComplexImage) *ComplexImage {
	im.domain.mustMatch(other.domain)
	out := im.NewLike()
	for i := range im.pix {
		out.pix[i] = im.pix[i] * other.pix[i]
	}
	return out
}
