package interop

import (
	"fmt"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder

	"github.com/rvanwijk/gridimg/internal/grid"
)

// Open loads a raster image (PNG, JPEG, GIF, BMP or TIFF) as an RGB
// buffer.
func Open(path string) (*grid.RgbImage, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return FromImage(img), nil
}

// OpenGray loads a raster image and converts it to greyscale through
// its perceptual lightness.
func OpenGray(path string) (*grid.IntImage, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return GrayFromImage(img), nil
}

// SaveImage writes an RGB buffer to path in the format named by its
// extension (png, jpg, gif, tif or bmp).
func SaveImage(im *grid.RgbImage, path string) error {
	if err := imaging.Save(ToImage(im), path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// SaveGrayImage writes an integer buffer to path as an 8-bit grey
// raster image.
func SaveGrayImage(im *grid.IntImage, path string) error {
	if err := imaging.Save(GrayToImage(im), path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
