package grid

import (
	"fmt"
	"io"
)

// Text and LaTeX pretty-printers. Rows are written top to bottom along
// the domain; the LaTeX tables label rows/columns with domain-relative
// coordinates and set the origin cell (0,0) in bold when it is inside
// the domain.

// Fprint writes the pixel values row by row, space separated.
func (im *IntImage) Fprint(w io.Writer) error {
	for y := im.domain.MinY; y <= im.domain.MaxY; y++ {
		for x := im.domain.MinX; x <= im.domain.MaxX; x++ {
			if _, err := fmt.Fprintf(w, "%d ", im.At(x, y)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// FprintLatex writes a LaTeX tabular representation of the image.
func (im *IntImage) FprintLatex(w io.Writer) error {
	return latexTable(w, im.domain, func(x, y int) string {
		return fmt.Sprintf("%d", im.At(x, y))
	})
}

// Fprint writes the pixel values row by row as (r,g,b) triples.
func (im *RgbImage) Fprint(w io.Writer) error {
	for y := im.domain.MinY; y <= im.domain.MaxY; y++ {
		for x := im.domain.MinX; x <= im.domain.MaxX; x++ {
			r, g, b := im.At(x, y)
			if _, err := fmt.Fprintf(w, "(%d,%d,%d) ", r, g, b); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// FprintLatex writes a LaTeX tabular representation of the image.
func (im *RgbImage) FprintLatex(w io.Writer) error {
	return latexTable(w, im.domain, func(x, y int) string {
		r, g, b := im.At(x, y)
		return fmt.Sprintf("(%d,%d,%d)", r, g, b)
	})
}

// Fprint writes the pixel values row by row with two decimals.
func (im *DoubleImage) Fprint(w io.Writer) error {
	for y := im.domain.MinY; y <= im.domain.MaxY; y++ {
		for x := im.domain.MinX; x <= im.domain.MaxX; x++ {
			if _, err := fmt.Fprintf(w, "%.2f ", im.At(x, y)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// FprintLatex writes a LaTeX tabular representation of the image.
func (im *DoubleImage) FprintLatex(w io.Writer) error {
	return latexTable(w, im.domain, func(x, y int) string {
		return fmt.Sprintf("%.2f", im.At(x, y))
	})
}

// Fprint writes the values row by row as re+imi pairs with two decimals.
func (im *ComplexImage) Fprint(w io.Writer) error {
	for y := im.domain.MinY; y <= im.domain.MaxY; y++ {
		for x := im.domain.MinX; x <= im.domain.MaxX; x++ {
			v := im.At(x, y)
			if _, err := fmt.Fprintf(w, "%.2f+%.2fi ", real(v), imag(v)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// FprintLatex writes a LaTeX tabular representation of the image.
func (im *ComplexImage) FprintLatex(w io.Writer) error {
	return latexTable(w, im.domain, func(x, y int) string {
		v := im.At(x, y)
		return fmt.Sprintf("%.2f+%.2fi", real(v), imag(v))
	})
}

func latexTable(w io.Writer, d Domain, cell func(x, y int) string) error {
	if _, err := fmt.Fprint(w, "\\begin{tabular}{|c|"); err != nil {
		return err
	}
	for x := d.MinX; x <= d.MaxX; x++ {
		if _, err := fmt.Fprint(w, "|c"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprint(w, "|}\n\\hline\n(x,y)"); err != nil {
		return err
	}
	for x := d.MinX; x <= d.MaxX; x++ {
		if _, err := fmt.Fprintf(w, "&%d", x); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprint(w, "\\\\\n\\hline\n\\hline\n"); err != nil {
		return err
	}
	for y := d.MinY; y <= d.MaxY; y++ {
		if _, err := fmt.Fprintf(w, "%d", y); err != nil {
			return err
		}
		for x := d.MinX; x <= d.MaxX; x++ {
			var err error
			if x == 0 && y == 0 {
				_, err = fmt.Fprintf(w, "&{\\bf %s}", cell(x, y))
			} else {
				_, err = fmt.Fprintf(w, "&%s", cell(x, y))
			}
			if err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(w, "\\\\\\hline\n"); err != nil {
			return err
		}
	}
	_, err := fmt.Fprint(w, "\\end{tabular}\n")
	return err
}
