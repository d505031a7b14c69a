package grid

// ToDouble converts im to a DoubleImage with the same domain and dynamic
// range.
func (im *IntImage) ToDouble() *DoubleImage {
	out := NewDoubleImageDomain(im.domain, float64(im.minRange), float64(im.maxRange))
	for i, v := range im.pix {
		out.pix[i] = float64(v)
	}
	return out
}

// ToInt converts im to an IntImage with the same domain; values are
// rounded by adding 0.5 and truncating.
func (im *DoubleImage) ToInt() *IntImage {
	out := NewIntImageDomain(im.domain, int(im.minRange), int(im.maxRange))
	w, h := im.domain.Size()
	for iy := 0; iy < h; iy++ {
		for ix := 0; ix < w; ix++ {
			out.SetIndex(ix, iy, int(im.AtIndex(ix, iy)+0.5))
		}
	}
	return out
}

// RealImage converts the real parts of im to an IntImage. Complex buffers
// have no declared dynamic range, so the result's range is derived from
// the observed minimum and maximum real value (the maximum rounded up).
func (im *ComplexImage) RealImage() *IntImage {
	minVal, maxVal := im.MinMax()
	out := NewIntImageDomain(im.domain, int(minVal), int(maxVal+0.5))
	w, h := im.domain.Size()
	for iy := 0; iy < h; iy++ {
		for ix := 0; ix < w; ix++ {
			out.SetIndex(ix, iy, int(real(im.AtIndex(ix, iy))+0.5))
		}
	}
	return out
}
