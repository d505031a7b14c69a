package grid

import (
	"fmt"
	"io"
)

// Histogram is a dense frequency table over a contiguous integer value
// range [minRange..maxRange].
type Histogram struct {
	freq     []int
	minRange int
	maxRange int
}

// NewEmptyHistogram creates a zeroed histogram with one bin per value in
// [minRange..maxRange].
func NewEmptyHistogram(minRange, maxRange int) *Histogram {
	if maxRange < minRange {
		fatalf("histogram range [%d..%d] is inverted", minRange, maxRange)
	}
	return &Histogram{
		freq:     make([]int, maxRange-minRange+1),
		minRange: minRange,
		maxRange: maxRange,
	}
}

// NewHistogram scans im and counts the frequency of every pixel value.
// The histogram range is the image's dynamic range, so one bin is
// allocated per representable value.
func NewHistogram(im *IntImage) *Histogram {
	h := NewEmptyHistogram(im.minRange, im.maxRange)
	for _, v := range im.pix {
		h.Increment(v)
	}
	return h
}

// NewRgbHistograms scans im and builds one histogram per channel, all
// sharing the image's dynamic range.
func NewRgbHistograms(im *RgbImage) (red, green, blue *Histogram) {
	red = NewEmptyHistogram(im.minRange, im.maxRange)
	green = NewEmptyHistogram(im.minRange, im.maxRange)
	blue = NewEmptyHistogram(im.minRange, im.maxRange)
	for i := range im.red {
		red.Increment(im.red[i])
		green.Increment(im.green[i])
		blue.Increment(im.blue[i])
	}
	return red, green, blue
}

// Range returns the histogram's [minRange, maxRange].
func (h *Histogram) Range() (minRange, maxRange int) {
	return h.minRange, h.maxRange
}

// Frequency returns the count for value. It panics when value lies
// outside the histogram range.
func (h *Histogram) Frequency(value int) int {
	h.checkValue(value)
	return h.freq[value-h.minRange]
}

// SetFrequency overwrites the count for value.
func (h *Histogram) SetFrequency(value, count int) {
	h.checkValue(value)
	h.freq[value-h.minRange] = count
}

// Increment adds one to the count for value.
func (h *Histogram) Increment(value int) {
	h.checkValue(value)
	h.freq[value-h.minRange]++
}

// Fprint writes value:frequency pairs separated by double spaces,
// followed by a newline.
func (h *Histogram) Fprint(w io.Writer) error {
	for v := h.minRange; v <= h.maxRange; v++ {
		if _, err := fmt.Fprintf(w, "%d:%d  ", v, h.Frequency(v)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

func (h *Histogram) checkValue(value int) {
	if value < h.minRange || value > h.maxRange {
		fatalf("frequency access for value %d outside the histogram range [%d..%d]",
			value, h.minRange, h.maxRange)
	}
}
