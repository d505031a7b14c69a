// Package netpbm reads and writes the six netpbm image formats: P1/P4
// (bilevel ascii/raw), P2/P5 (greyscale ascii/raw) and P3/P6 (color
// ascii/raw).
//
// The target format is selected by file extension: .pbm is bilevel,
// .pgm is greyscale and .ppm is color. A trailing .gz enables gzip
// compression transparently on both load and save. Unknown or missing
// extensions are errors, never guessed around.
//
// Bilevel files use the netpbm bit convention: a file bit of 1 is black
// and maps to pixel value 0, a bit of 0 is white and maps to pixel
// value 1. Raw bilevel rows are packed eight samples to a byte, most
// significant bit first, with every row padded to a whole byte.
// Greyscale and color samples are one byte when the observed maximum is
// at most 255 and two bytes big-endian otherwise; saving recomputes the
// true maximum so the minimal sample width is always written.
//
// Saving clamps pixel values to the representable range of the format
// ([0,1] for bilevel, [0,65535] otherwise) and logs a warning when any
// value needed clamping.
package netpbm
