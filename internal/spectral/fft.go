package spectral

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/rvanwijk/gridimg/internal/grid"
)

// cooleyTukey runs one in-place FFT level: deinterleave a into the two
// halves of scratch, recurse with omega squared, then merge with the
// running omega powers. Each recursive call reuses a itself as the next
// level's scratch, so scratch only needs len(a) capacity all the way
// down.
func cooleyTukey(a []complex128, omega complex128, scratch []complex128) {
	n := len(a)
	if n < 2 {
		return
	}
	half := n / 2
	even := scratch[:half]
	odd := scratch[half:n]
	for i := 0; i < half; i++ {
		even[i] = a[2*i]
		odd[i] = a[2*i+1]
	}
	cooleyTukey(even, omega*omega, a)
	cooleyTukey(odd, omega*omega, a)

	x := complex(1, 0)
	for i := 0; i < half; i++ {
		h := x * odd[i]
		a[i] = even[i] + h
		a[i+half] = even[i] - h
		x *= omega
	}
}

func forward1D(a, scratch []complex128) {
	omega := cmplx.Exp(complex(0, -2*math.Pi/float64(len(a))))
	cooleyTukey(a, omega, scratch)
}

func inverse1D(a, scratch []complex128) {
	n := len(a)
	omega := cmplx.Exp(complex(0, 2*math.Pi/float64(n)))
	cooleyTukey(a, omega, scratch)
	for i := range a {
		a[i] /= complex(float64(n), 0)
	}
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

func mustPowerOfTwoDomain(d grid.Domain) (width, height int) {
	width, height = d.Size()
	if !isPowerOfTwo(width) || !isPowerOfTwo(height) {
		panic(fmt.Sprintf("spectral: image width and height need to be powers of two (width=%d, height=%d)",
			width, height))
	}
	return width, height
}

func scratchFor(width, height int) []complex128 {
	n := width
	if height > n {
		n = height
	}
	return make([]complex128, n)
}

// forward2D transforms columns first, then rows, reading source samples
// through sample(ix, iy).
func forward2D(d grid.Domain, sample func(ix, iy int) float64) *grid.ComplexImage {
	width, height := mustPowerOfTwoDomain(d)
	ft := grid.NewComplexImageDomain(d)
	scratch := scratchFor(width, height)

	col := make([]complex128, height)
	for ix := 0; ix < width; ix++ {
		for iy := 0; iy < height; iy++ {
			col[iy] = complex(sample(ix, iy), 0)
		}
		forward1D(col, scratch)
		for iy := 0; iy < height; iy++ {
			ft.SetIndex(ix, iy, col[iy])
		}
	}
	for iy := 0; iy < height; iy++ {
		forward1D(ft.Row(iy), scratch)
	}
	return ft
}

// FFT returns the 2-D Fourier transform of im. Both dimensions must be
// powers of two (panic otherwise).
func FFT(im *grid.IntImage) *grid.ComplexImage {
	return forward2D(im.Domain(), func(ix, iy int) float64 {
		return float64(im.AtIndex(ix, iy))
	})
}

// FFTDouble returns the 2-D Fourier transform of a double image.
func FFTDouble(im *grid.DoubleImage) *grid.ComplexImage {
	return forward2D(im.Domain(), im.AtIndex)
}

// inverse2D transforms rows first, then columns, handing each spatial
// sample to store(ix, iy, v). The input image is not modified.
func inverse2D(im *grid.ComplexImage, store func(ix, iy int, v complex128)) {
	width, height := mustPowerOfTwoDomain(im.Domain())
	scratch := scratchFor(width, height)

	ift := im.Copy()
	for iy := 0; iy < height; iy++ {
		inverse1D(ift.Row(iy), scratch)
	}
	col := make([]complex128, height)
	for ix := 0; ix < width; ix++ {
		for iy := 0; iy < height; iy++ {
			col[iy] = ift.AtIndex(ix, iy)
		}
		inverse1D(col, scratch)
		for iy := 0; iy < height; iy++ {
			store(ix, iy, col[iy])
		}
	}
}

// IFFT returns the inverse 2-D transform of im as an integer image with
// an unbounded dynamic range; each sample is the rounded real part.
func IFFT(im *grid.ComplexImage) *grid.IntImage {
	out := grid.NewIntImageDomain(im.Domain(), math.MinInt, math.MaxInt)
	inverse2D(im, func(ix, iy int, v complex128) {
		out.SetIndex(ix, iy, int(math.Round(real(v))))
	})
	return out
}

// IFFTDouble returns the inverse 2-D transform of im as a double image
// with an unbounded dynamic range, keeping the real parts unrounded.
func IFFTDouble(im *grid.ComplexImage) *grid.DoubleImage {
	out := grid.NewDoubleImageDomain(im.Domain(), -math.MaxFloat64, math.MaxFloat64)
	inverse2D(im, func(ix, iy int, v complex128) {
		out.SetIndex(ix, iy, real(v))
	})
	return out
}

// Shift swaps the diagonal quadrants of im in place so the
// zero-frequency term moves to the center.
func Shift(im *grid.ComplexImage) {
	w, h := im.Domain().Size()
	w2, h2 := w/2, h/2
	for iy := 0; iy < h2; iy++ {
		top := im.Row(iy)
		bottom := im.Row(iy + h2)
		for ix := 0; ix < w2; ix++ {
			top[ix], bottom[ix+w2] = bottom[ix+w2], top[ix]
			top[ix+w2], bottom[ix] = bottom[ix], top[ix+w2]
		}
	}
}

// Unshift undoes Shift. Quadrant swapping is an involution, so the two
// are the same operation.
func Unshift(im *grid.ComplexImage) {
	Shift(im)
}
