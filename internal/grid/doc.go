// Package grid implements 2-D image buffers addressed over an arbitrary
// integer coordinate rectangle.
//
// Unlike the standard library image types, a buffer's domain is the
// inclusive rectangle [MinX..MaxX] x [MinY..MaxY] and may contain negative
// coordinates. Every buffer therefore supports two addressing schemes:
//
//   - domain-relative: x in [MinX..MaxX], y in [MinY..MaxY] (At/Set)
//   - zero-based: x in [0..width), y in [0..height) (AtIndex/SetIndex)
//
// The two are related by the fixed offset (MinX, MinY).
//
// # Buffer kinds
//
// Four buffer kinds are provided: IntImage (scalar integer), RgbImage
// (three integer channels), DoubleImage (scalar float64) and ComplexImage
// (scalar complex128). Integer and double buffers carry a declared dynamic
// range [minRange..maxRange]; writes outside the range are clamped with a
// warning. Note that clamping against the upper bound stores maxRange-1,
// not maxRange. This off-by-one is kept deliberately for compatibility
// with existing consumers of the clamped values.
//
// # Checked and fast modes
//
// By default every accessor is bounds-checked and every setter clamps
// against the dynamic range (Checked mode). SetMode(Fast) disables all
// checking and clamping process-wide; values are then stored verbatim.
//
// # Error handling
//
// Precondition violations are unrecoverable and panic: constructing an
// empty or inverted domain, out-of-bounds access in Checked mode,
// pointwise algebra on buffers with different domains, applying a lookup
// table that does not cover a buffer's dynamic range, and histogram
// access outside the histogram's range. Range-clamp violations are
// warnings only, logged through the package warning sink (see
// SetWarningOutput) while execution continues with the clamped value.
package grid
