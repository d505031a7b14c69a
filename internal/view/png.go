package view

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
)

// PNGPresenter writes snapshots as PNG files into Dir, one file per
// title. Empty Dir means the current directory.
type PNGPresenter struct {
	Dir string
}

func (p PNGPresenter) path(title string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, title)
	if name == "" {
		name = "snapshot"
	}
	return filepath.Join(p.Dir, name+".png")
}

func (p PNGPresenter) PresentGray(pix []uint8, width, height, originX, originY int, title string) error {
	img := image.NewGray(image.Rect(0, 0, width, height))
	copy(img.Pix, pix)
	return p.write(img, title)
}

func (p PNGPresenter) PresentRGB(r, g, b []uint8, width, height int, title string) error {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < width*height; i++ {
		img.Pix[4*i] = r[i]
		img.Pix[4*i+1] = g[i]
		img.Pix[4*i+2] = b[i]
		img.Pix[4*i+3] = 255
	}
	return p.write(img, title)
}

func (p PNGPresenter) write(img image.Image, title string) error {
	path := p.path(title)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("present %s: %w", title, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("present %s: %w", title, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("present %s: %w", title, err)
	}
	return nil
}
