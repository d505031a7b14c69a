package netpbm

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"strconv"

	"github.com/rvanwijk/gridimg/internal/grid"
)

// Load reads a bilevel or greyscale netpbm file into an integer image.
// The extension selects the format: .pbm or .pgm, optionally followed
// by .gz. The image domain is [0,width)x[0,height); the dynamic range
// is [0,maxval] for greyscale and [0,255] for bilevel.
func Load(path string) (*grid.IntImage, error) {
	format, compressed, err := formatForPath(path)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	if format == FormatPPM {
		return nil, fmt.Errorf("load %s: color files require LoadRGB", path)
	}
	r, closer, err := openInput(path, compressed)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	defer closer.Close()

	im, err := decodeGray(r, format)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return im, nil
}

// LoadRGB reads a color netpbm file (.ppm, optionally .gz) into an RGB
// image with dynamic range [0,maxval].
func LoadRGB(path string) (*grid.RgbImage, error) {
	format, compressed, err := formatForPath(path)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	if format != FormatPPM {
		return nil, fmt.Errorf("load %s: %s files require Load", path, format)
	}
	r, closer, err := openInput(path, compressed)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	defer closer.Close()

	im, err := decodeRGB(r)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return im, nil
}

func decodeGray(r io.Reader, format Format) (*grid.IntImage, error) {
	s := newScanner(r)
	magic, err := s.magic()
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatPBM:
		if magic != 1 && magic != 4 {
			return nil, fmt.Errorf("illegal magic number P%d: only P1 and P4 are valid PBM files", magic)
		}
	case FormatPGM:
		if magic != 2 && magic != 5 {
			return nil, fmt.Errorf("illegal magic number P%d: only P2 and P5 are valid PGM files", magic)
		}
	}

	width, height, err := s.dimensions()
	if err != nil {
		return nil, err
	}

	maxVal := 255
	if format == FormatPGM {
		maxVal, err = s.maxValue()
		if err != nil {
			return nil, err
		}
	}

	im := grid.NewIntImage(width, height, 0, maxVal)
	switch magic {
	case 1:
		err = readAsciiBits(s, im)
	case 4:
		err = readRawBits(s, im)
	case 2:
		err = readAsciiSamples(s, maxVal, width*height, func(i, v int) {
			im.SetIndex(i%width, i/width, v)
		})
	case 5:
		err = readRawSamples(s, maxVal, width*height, func(i, v int) {
			im.SetIndex(i%width, i/width, v)
		})
	}
	if err != nil {
		return nil, err
	}
	return im, nil
}

func decodeRGB(r io.Reader) (*grid.RgbImage, error) {
	s := newScanner(r)
	magic, err := s.magic()
	if err != nil {
		return nil, err
	}
	if magic != 3 && magic != 6 {
		return nil, fmt.Errorf("illegal magic number P%d: only P3 and P6 are valid PPM files", magic)
	}

	width, height, err := s.dimensions()
	if err != nil {
		return nil, err
	}
	maxVal, err := s.maxValue()
	if err != nil {
		return nil, err
	}

	im := grid.NewRgbImage(width, height, 0, maxVal)
	samples := make([]int, 3*width*height)
	store := func(i, v int) { samples[i] = v }
	if magic == 3 {
		err = readAsciiSamples(s, maxVal, len(samples), store)
	} else {
		err = readRawSamples(s, maxVal, len(samples), store)
	}
	if err != nil {
		return nil, err
	}

	idx := 0
	for iy := 0; iy < height; iy++ {
		for ix := 0; ix < width; ix++ {
			im.SetIndex(ix, iy, samples[idx], samples[idx+1], samples[idx+2])
			idx += 3
		}
	}
	return im, nil
}

// readAsciiBits reads P1 samples: bare 0/1 digits that may or may not be
// whitespace separated. A file 1 is black and stored as pixel 0.
func readAsciiBits(s *scanner, im *grid.IntImage) error {
	w, h := im.Width(), im.Height()
	for iy := 0; iy < h; iy++ {
		for ix := 0; ix < w; ix++ {
			c, err := s.nonSpaceByte()
			if err != nil {
				return fmt.Errorf("truncated bilevel data: %w", err)
			}
			switch c {
			case '0':
				im.SetIndex(ix, iy, 1)
			case '1':
				im.SetIndex(ix, iy, 0)
			default:
				return fmt.Errorf("illegal character %q in bilevel data", c)
			}
		}
	}
	return nil
}

// readRawBits reads P4 rows: eight samples per byte, MSB first, each
// row padded to a whole byte. A set bit is black and stored as pixel 0.
func readRawBits(s *scanner, im *grid.IntImage) error {
	if err := s.rawBody(); err != nil {
		return err
	}
	w, h := im.Width(), im.Height()
	row := make([]byte, (w+7)/8)
	for iy := 0; iy < h; iy++ {
		if _, err := io.ReadFull(s.r, row); err != nil {
			return fmt.Errorf("truncated bilevel data: %w", err)
		}
		for ix := 0; ix < w; ix++ {
			if row[ix/8]&(0x80>>(ix%8)) != 0 {
				im.SetIndex(ix, iy, 0)
			} else {
				im.SetIndex(ix, iy, 1)
			}
		}
	}
	return nil
}

func readAsciiSamples(s *scanner, maxVal, n int, store func(i, v int)) error {
	for i := 0; i < n; i++ {
		v, err := s.intToken("sample")
		if err != nil {
			return err
		}
		if v < 0 || v > maxVal {
			return fmt.Errorf("sample value %d outside the declared range [0..%d]", v, maxVal)
		}
		store(i, v)
	}
	return nil
}

func readRawSamples(s *scanner, maxVal, n int, store func(i, v int)) error {
	if err := s.rawBody(); err != nil {
		return err
	}
	width := 1
	if maxVal > 255 {
		width = 2
	}
	buf := make([]byte, n*width)
	if _, err := io.ReadFull(s.r, buf); err != nil {
		return fmt.Errorf("truncated raw data: %w", err)
	}
	if width == 1 {
		for i := 0; i < n; i++ {
			store(i, int(buf[i]))
		}
		return nil
	}
	for i := 0; i < n; i++ {
		store(i, int(binary.BigEndian.Uint16(buf[2*i:])))
	}
	return nil
}

// scanner tokenizes a netpbm header: whitespace separated fields with
// #-comment lines allowed anywhere whitespace is.
type scanner struct {
	r *bufio.Reader
}

func newScanner(r io.Reader) *scanner {
	return &scanner{r: bufio.NewReader(r)}
}

// nonSpaceByte returns the next byte that is neither whitespace nor part
// of a comment.
func (s *scanner) nonSpaceByte() (byte, error) {
	for {
		c, err := s.r.ReadByte()
		if err != nil {
			return 0, err
		}
		switch {
		case c == '#':
			if _, err := s.r.ReadString('\n'); err != nil {
				return 0, fmt.Errorf("unterminated comment: %w", err)
			}
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
		default:
			return c, nil
		}
	}
}

// token reads the next whitespace-delimited field.
func (s *scanner) token() (string, error) {
	c, err := s.nonSpaceByte()
	if err != nil {
		return "", err
	}
	tok := []byte{c}
	for {
		c, err := s.r.ReadByte()
		if err == io.EOF {
			return string(tok), nil
		}
		if err != nil {
			return "", err
		}
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			s.r.UnreadByte()
			return string(tok), nil
		}
		tok = append(tok, c)
	}
}

func (s *scanner) intToken(what string) (int, error) {
	tok, err := s.token()
	if err != nil {
		return 0, fmt.Errorf("missing %s: %w", what, err)
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("non-numeric %s %q", what, tok)
	}
	return v, nil
}

func (s *scanner) magic() (int, error) {
	tok, err := s.token()
	if err != nil {
		return 0, fmt.Errorf("no magic number found: %w", err)
	}
	if len(tok) != 2 || tok[0] != 'P' || tok[1] < '1' || tok[1] > '6' {
		return 0, fmt.Errorf("no magic number found (got %q)", tok)
	}
	return int(tok[1] - '0'), nil
}

func (s *scanner) dimensions() (width, height int, err error) {
	width, err = s.intToken("width")
	if err != nil {
		return 0, 0, err
	}
	height, err = s.intToken("height")
	if err != nil {
		return 0, 0, err
	}
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("illegal dimensions %dx%d", width, height)
	}
	return width, height, nil
}

func (s *scanner) maxValue() (int, error) {
	maxVal, err := s.intToken("maximum value")
	if err != nil {
		return 0, err
	}
	if maxVal < 0 || maxVal > 65535 {
		return 0, fmt.Errorf("maximum value %d outside [0..65535]", maxVal)
	}
	return maxVal, nil
}

// rawBody consumes the single whitespace byte separating the header from
// raw sample data.
func (s *scanner) rawBody() error {
	c, err := s.r.ReadByte()
	if err != nil {
		return fmt.Errorf("truncated header: %w", err)
	}
	if c != ' ' && c != '\t' && c != '\n' && c != '\r' {
		return fmt.Errorf("malformed header: expected whitespace before raw data, got %q", c)
	}
	return nil
}
