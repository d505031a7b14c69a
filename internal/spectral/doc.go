// Package spectral provides the 2-D discrete Fourier transform for
// integer and double images, built on a recursive radix-2 Cooley-Tukey
// FFT. Both image dimensions must be exact powers of two. Shift and
// Unshift re-center the zero-frequency term by swapping diagonal
// quadrants.
package spectral
