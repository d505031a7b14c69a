package netpbm

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// Format identifies a netpbm file family, independent of the ascii/raw
// encoding variant.
type Format int

const (
	FormatPBM Format = iota + 1 // bilevel
	FormatPGM                   // greyscale
	FormatPPM                   // color
)

func (f Format) String() string {
	switch f {
	case FormatPBM:
		return "pbm"
	case FormatPGM:
		return "pgm"
	case FormatPPM:
		return "ppm"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// formatForPath routes on the file extension, ignoring a trailing .gz.
func formatForPath(path string) (format Format, compressed bool, err error) {
	name := path
	if strings.EqualFold(filepath.Ext(name), ".gz") {
		compressed = true
		name = strings.TrimSuffix(name, filepath.Ext(name))
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pbm":
		return FormatPBM, compressed, nil
	case ".pgm":
		return FormatPGM, compressed, nil
	case ".ppm":
		return FormatPPM, compressed, nil
	case "":
		return 0, false, fmt.Errorf("filename %q has no extension", path)
	default:
		return 0, false, fmt.Errorf("filename %q must have a pbm, pgm or ppm extension", path)
	}
}

// openInput opens path for reading, layering a gzip reader when the
// name asks for one. Closing the returned closer closes the file.
func openInput(path string, compressed bool) (io.Reader, io.Closer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	if !compressed {
		return f, f, nil
	}
	zr, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	return zr, multiCloser{zr, f}, nil
}

// openOutput creates path for writing, layering a gzip writer when the
// name asks for one.
func openOutput(path string, compressed bool) (io.Writer, io.Closer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create %s: %w", path, err)
	}
	if !compressed {
		return f, f, nil
	}
	zw := gzip.NewWriter(f)
	return zw, multiCloser{zw, f}, nil
}

// multiCloser closes its members in order and reports the first error.
type multiCloser []io.Closer

func (m multiCloser) Close() error {
	var first error
	for _, c := range m {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
