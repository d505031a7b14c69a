package netpbm

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/rvanwijk/gridimg/internal/grid"
)

// Save writes im to path in the raw encoding of the format named by the
// extension: .pgm becomes P5, .pbm becomes P4. A trailing .gz enables
// gzip compression. Values outside the representable range are clamped
// with a warning.
func Save(im *grid.IntImage, path string) error {
	return saveGray(im, path, true)
}

// SaveAscii writes im like Save but in the ascii encoding: .pgm becomes
// P2, .pbm becomes P1.
func SaveAscii(im *grid.IntImage, path string) error {
	return saveGray(im, path, false)
}

// SaveRGB writes im to path as raw color (P6). The extension must be
// .ppm, optionally followed by .gz.
func SaveRGB(im *grid.RgbImage, path string) error {
	return saveColor(im, path, true)
}

// SaveRGBAscii writes im like SaveRGB but as ascii color (P3).
func SaveRGBAscii(im *grid.RgbImage, path string) error {
	return saveColor(im, path, false)
}

func saveGray(im *grid.IntImage, path string, raw bool) error {
	format, compressed, err := formatForPath(path)
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}
	if format == FormatPPM {
		return fmt.Errorf("save %s: color files require SaveRGB", path)
	}
	w, closer, err := openOutput(path, compressed)
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}

	switch format {
	case FormatPGM:
		err = encodePGM(w, im, path, raw)
	case FormatPBM:
		err = encodePBM(w, im, path, raw)
	}
	if cerr := closer.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func saveColor(im *grid.RgbImage, path string, raw bool) error {
	format, compressed, err := formatForPath(path)
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}
	if format != FormatPPM {
		return fmt.Errorf("save %s: %s files require Save", path, format)
	}
	w, closer, err := openOutput(path, compressed)
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}

	err = encodePPM(w, im, path, raw)
	if cerr := closer.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// graySamples flattens im row by row, clamped to [0,65535], warning once
// when any value fell outside.
func graySamples(im *grid.IntImage, path string) []uint16 {
	if lo, hi := im.MinMax(); lo < 0 || hi > 65535 {
		grid.Warnf("save: range of image %s is [%d,%d], saved values are clamped to [0,65535]", path, lo, hi)
	}
	w, h := im.Width(), im.Height()
	samples := make([]uint16, 0, w*h)
	for iy := 0; iy < h; iy++ {
		for ix := 0; ix < w; ix++ {
			v := im.AtIndex(ix, iy)
			if v < 0 {
				v = 0
			} else if v > 65535 {
				v = 65535
			}
			samples = append(samples, uint16(v))
		}
	}
	return samples
}

// bits flattens im row by row to 0 (black) or 1 (white), warning once
// when any value fell outside [0,1].
func bits(im *grid.IntImage, path string) []uint8 {
	if lo, hi := im.MinMax(); lo < 0 || hi > 1 {
		grid.Warnf("save: range of image %s is [%d,%d], saved values are clamped to [0,1]", path, lo, hi)
	}
	w, h := im.Width(), im.Height()
	out := make([]uint8, 0, w*h)
	for iy := 0; iy < h; iy++ {
		for ix := 0; ix < w; ix++ {
			if im.AtIndex(ix, iy) <= 0 {
				out = append(out, 0)
			} else {
				out = append(out, 1)
			}
		}
	}
	return out
}

func observedMax(samples []uint16) int {
	max := 0
	for _, v := range samples {
		if int(v) > max {
			max = int(v)
		}
	}
	return max
}

func encodePGM(w io.Writer, im *grid.IntImage, path string, raw bool) error {
	samples := graySamples(im, path)
	max := observedMax(samples)
	bw := bufio.NewWriter(w)

	magic := 2
	if raw {
		magic = 5
	}
	if _, err := fmt.Fprintf(bw, "P%d\n%d %d\n%d\n", magic, im.Width(), im.Height(), max); err != nil {
		return err
	}
	if raw {
		if err := writeRawSamples(bw, samples, max); err != nil {
			return err
		}
	} else if err := writeAsciiSamples(bw, samples, im.Width()); err != nil {
		return err
	}
	return bw.Flush()
}

func encodePPM(w io.Writer, im *grid.RgbImage, path string, raw bool) error {
	if lo, hi := im.MinMax(); lo < 0 || hi > 65535 {
		grid.Warnf("save: range of image %s is [%d,%d], saved values are clamped to [0,65535]", path, lo, hi)
	}
	width, height := im.Width(), im.Height()
	samples := make([]uint16, 0, 3*width*height)
	clip := func(v int) uint16 {
		if v < 0 {
			return 0
		}
		if v > 65535 {
			return 65535
		}
		return uint16(v)
	}
	for iy := 0; iy < height; iy++ {
		for ix := 0; ix < width; ix++ {
			r, g, b := im.AtIndex(ix, iy)
			samples = append(samples, clip(r), clip(g), clip(b))
		}
	}
	max := observedMax(samples)
	bw := bufio.NewWriter(w)

	magic := 3
	if raw {
		magic = 6
	}
	if _, err := fmt.Fprintf(bw, "P%d\n%d %d\n%d\n", magic, width, height, max); err != nil {
		return err
	}
	if raw {
		if err := writeRawSamples(bw, samples, max); err != nil {
			return err
		}
	} else if err := writeAsciiSamples(bw, samples, 3*width); err != nil {
		return err
	}
	return bw.Flush()
}

func encodePBM(w io.Writer, im *grid.IntImage, path string, raw bool) error {
	pix := bits(im, path)
	width, height := im.Width(), im.Height()
	bw := bufio.NewWriter(w)

	if raw {
		if _, err := fmt.Fprintf(bw, "P4\n%d %d\n", width, height); err != nil {
			return err
		}
		row := make([]byte, (width+7)/8)
		for iy := 0; iy < height; iy++ {
			for i := range row {
				row[i] = 0
			}
			for ix := 0; ix < width; ix++ {
				// Pixel 0 is black, which the file stores as a set bit.
				if pix[iy*width+ix] == 0 {
					row[ix/8] |= 0x80 >> (ix % 8)
				}
			}
			if _, err := bw.Write(row); err != nil {
				return err
			}
		}
		return bw.Flush()
	}

	if _, err := fmt.Fprintf(bw, "P1\n%d %d\n", width, height); err != nil {
		return err
	}
	for iy := 0; iy < height; iy++ {
		for ix := 0; ix < width; ix++ {
			sep := " "
			if ix == 0 {
				sep = ""
			}
			bit := 1 - pix[iy*width+ix]
			if _, err := fmt.Fprintf(bw, "%s%d", sep, bit); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(bw); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// writeRawSamples writes one byte per sample when max fits a byte and
// two bytes big-endian otherwise.
func writeRawSamples(w io.Writer, samples []uint16, max int) error {
	if max <= 255 {
		buf := make([]byte, len(samples))
		for i, v := range samples {
			buf[i] = byte(v)
		}
		_, err := w.Write(buf)
		return err
	}
	buf := make([]byte, 2*len(samples))
	for i, v := range samples {
		binary.BigEndian.PutUint16(buf[2*i:], v)
	}
	_, err := w.Write(buf)
	return err
}

// writeAsciiSamples writes decimal samples, perLine to a line.
func writeAsciiSamples(w io.Writer, samples []uint16, perLine int) error {
	for i, v := range samples {
		sep := " "
		if i%perLine == 0 {
			sep = ""
		}
		if _, err := fmt.Fprintf(w, "%s%d", sep, v); err != nil {
			return err
		}
		if (i+1)%perLine == 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
	}
	return nil
}
