package interop

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/transform"
	"github.com/disintegration/imaging"

	"github.com/rvanwijk/gridimg/internal/grid"
)

// SavePreview writes a resized rendering of im to path. Integer upscale
// factors use nearest-neighbor resampling so individual pixels stay
// sharp blocks, which is what you want when inspecting small buffers;
// every other factor goes through Lanczos resampling. The height
// follows from the aspect ratio.
func SavePreview(im *grid.IntImage, path string, width int) error {
	if width < 1 {
		return fmt.Errorf("save preview %s: width %d must be positive", path, width)
	}
	src := GrayToImage(im)
	resized := resizePreview(src, im.Width(), im.Height(), width)
	if err := imaging.Save(resized, path); err != nil {
		return fmt.Errorf("save preview %s: %w", path, err)
	}
	return nil
}

// SaveRGBPreview is SavePreview for RGB buffers.
func SaveRGBPreview(im *grid.RgbImage, path string, width int) error {
	if width < 1 {
		return fmt.Errorf("save preview %s: width %d must be positive", path, width)
	}
	src := ToImage(im)
	resized := resizePreview(src, im.Width(), im.Height(), width)
	if err := imaging.Save(resized, path); err != nil {
		return fmt.Errorf("save preview %s: %w", path, err)
	}
	return nil
}

func resizePreview(src image.Image, srcW, srcH, width int) image.Image {
	if width == srcW {
		return src
	}
	height := (srcH*width + srcW/2) / srcW
	if height < 1 {
		height = 1
	}
	if width > srcW && width%srcW == 0 {
		return transform.Resize(src, width, height, transform.NearestNeighbor)
	}
	return imaging.Resize(src, width, height, imaging.Lanczos)
}
