package grid

// Pointwise binary algebra. Every operation requires both operands to
// have identical domains (panic otherwise) and produces a new buffer with
// the left operand's domain and dynamic range. Results run through the
// regular setters, so in Checked mode an out-of-range result is clamped
// with a warning.

func (im *IntImage) apply(other *IntImage, op func(a, b int) int) *IntImage {
	im.domain.mustMatch(other.domain)
	out := im.NewLike()
	w, h := im.domain.Size()
	for iy := 0; iy < h; iy++ {
		for ix := 0; ix < w; ix++ {
			out.SetIndex(ix, iy, op(im.AtIndex(ix, iy), other.AtIndex(ix, iy)))
		}
	}
	return out
}

// Max returns the pointwise maximum of im and other.
func (im *IntImage) Max(other *IntImage) *IntImage {
	return im.apply(other, func(a, b int) int {
		if a > b {
			return a
		}
		return b
	})
}

// Min returns the pointwise minimum of im and other.
func (im *IntImage) Min(other *IntImage) *IntImage {
	return im.apply(other, func(a, b int) int {
		if a < b {
			return a
		}
		return b
	})
}

// Add returns the pointwise sum of im and other.
func (im *IntImage) Add(other *IntImage) *IntImage {
	return im.apply(other, func(a, b int) int { return a + b })
}

// Subtract returns the pointwise difference im - other.
func (im *IntImage) Subtract(other *IntImage) *IntImage {
	return im.apply(other, func(a, b int) int { return a - b })
}

// Multiply returns the pointwise product of im and other.
func (im *IntImage) Multiply(other *IntImage) *IntImage {
	return im.apply(other, func(a, b int) int { return a * b })
}

// ApplyLUT replaces every pixel value v by lut[v]. The image's minimum
// range must be non-negative and its maximum range must not exceed the
// table length (panic otherwise).
func (im *IntImage) ApplyLUT(lut []int) *IntImage {
	if im.minRange < 0 {
		fatalf("ApplyLUT: lookup tables can only be applied to images with a non-negative dynamic range")
	}
	if im.maxRange > len(lut) {
		fatalf("ApplyLUT: lookup table of length %d does not cover the dynamic range [%d,%d]",
			len(lut), im.minRange, im.maxRange)
	}
	out := im.NewLike()
	w, h := im.domain.Size()
	for iy := 0; iy < h; iy++ {
		for ix := 0; ix < w; ix++ {
			out.SetIndex(ix, iy, lut[im.AtIndex(ix, iy)])
		}
	}
	return out
}

func (im *RgbImage) apply(other *RgbImage, op func(a, b int) int) *RgbImage {
	im.domain.mustMatch(other.domain)
	out := im.NewLike()
	w, h := im.domain.Size()
	for iy := 0; iy < h; iy++ {
		for ix := 0; ix < w; ix++ {
			r1, g1, b1 := im.AtIndex(ix, iy)
			r2, g2, b2 := other.AtIndex(ix, iy)
			out.SetIndex(ix, iy, op(r1, r2), op(g1, g2), op(b1, b2))
		}
	}
	return out
}

// Max returns the per-channel pointwise maximum of im and other.
func (im *RgbImage) Max(other *RgbImage) *RgbImage {
	return im.apply(other, func(a, b int) int {
		if a > b {
			return a
		}
		return b
	})
}

// Min returns the per-channel pointwise minimum of im and other.
func (im *RgbImage) Min(other *RgbImage) *RgbImage {
	return im.apply(other, func(a, b int) int {
		if a < b {
			return a
		}
		return b
	})
}

// Add returns the per-channel pointwise sum of im and other.
func (im *RgbImage) Add(other *RgbImage) *RgbImage {
	return im.apply(other, func(a, b int) int { return a + b })
}

// Subtract returns the per-channel pointwise difference im - other.
func (im *RgbImage) Subtract(other *RgbImage) *RgbImage {
	return im.apply(other, func(a, b int) int { return a - b })
}

// Multiply returns the per-channel pointwise product of im and other.
func (im *RgbImage) Multiply(other *RgbImage) *RgbImage {
	return im.apply(other, func(a, b int) int { return a * b })
}

// ApplyLUT replaces each channel value by its table entry: red by
// lut[r][0], green by lut[g][1], blue by lut[b][2]. The same range
// preconditions as for IntImage.ApplyLUT hold.
func (im *RgbImage) ApplyLUT(lut [][3]int) *RgbImage {
	if im.minRange < 0 {
		fatalf("ApplyLUT: lookup tables can only be applied to images with a non-negative dynamic range")
	}
	if im.maxRange > len(lut) {
		fatalf("ApplyLUT: lookup table of length %d does not cover the dynamic range [%d,%d]",
			len(lut), im.minRange, im.maxRange)
	}
	out := im.NewLike()
	w, h := im.domain.Size()
	for iy := 0; iy < h; iy++ {
		for ix := 0; ix < w; ix++ {
			r, g, b := im.AtIndex(ix, iy)
			out.SetIndex(ix, iy, lut[r][0], lut[g][1], lut[b][2])
		}
	}
	return out
}
