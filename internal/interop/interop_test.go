package interop

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/rvanwijk/gridimg/internal/grid"
)

func TestFromImageRoundTrip(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{G: 128, A: 255})
	src.SetNRGBA(0, 1, color.NRGBA{B: 7, A: 255})
	src.SetNRGBA(1, 1, color.NRGBA{R: 10, G: 20, B: 30, A: 255})

	im := FromImage(src)
	back := ToImage(im)
	for iy := 0; iy < 2; iy++ {
		for ix := 0; ix < 2; ix++ {
			if back.NRGBAAt(ix, iy) != src.NRGBAAt(ix, iy) {
				t.Errorf("pixel (%d, %d) = %+v, want %+v", ix, iy, back.NRGBAAt(ix, iy), src.NRGBAAt(ix, iy))
			}
		}
	}
}

func TestGrayFromImageLightness(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	src.SetNRGBA(0, 0, color.NRGBA{A: 255})                               // black
	src.SetNRGBA(1, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 255})      // white
	src.SetNRGBA(2, 0, color.NRGBA{R: 0, G: 255, B: 0, A: 255})          // green

	im := GrayFromImage(src)
	if got := im.AtIndex(0, 0); got != 0 {
		t.Errorf("black = %d, want 0", got)
	}
	if got := im.AtIndex(1, 0); got != 255 {
		t.Errorf("white = %d, want 255", got)
	}
	// Pure green is perceptually bright: its L* sits well above the
	// 85 a naive channel average would give.
	if got := im.AtIndex(2, 0); got < 180 || got > 240 {
		t.Errorf("green lightness = %d, want something in [180,240]", got)
	}
}

func TestGrayToImageClips(t *testing.T) {
	im := grid.NewIntImageDomain(grid.DomainOfSize(2, 1), -100, 500)
	im.SetIndex(0, 0, 300)
	im.SetIndex(1, 0, -10)
	out := GrayToImage(im)
	if out.GrayAt(0, 0).Y != 255 {
		t.Errorf("overflow pixel = %d, want 255", out.GrayAt(0, 0).Y)
	}
	if out.GrayAt(1, 0).Y != 0 {
		t.Errorf("underflow pixel = %d, want 0", out.GrayAt(1, 0).Y)
	}
}

func TestOpenGray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.png")
	src := image.NewGray(image.Rect(0, 0, 4, 2))
	for i := range src.Pix {
		src.Pix[i] = uint8(i * 30)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, src); err != nil {
		t.Fatal(err)
	}
	f.Close()

	im, err := OpenGray(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if im.Width() != 4 || im.Height() != 2 {
		t.Errorf("dimensions = %dx%d, want 4x2", im.Width(), im.Height())
	}
	if got := im.AtIndex(0, 0); got != 0 {
		t.Errorf("first pixel = %d, want 0", got)
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "absent.png")); err == nil {
		t.Error("expected an error")
	}
}

func TestSavePreview(t *testing.T) {
	im := grid.NewIntImage(4, 4, 0, 255)
	im.SetAll(128)

	t.Run("integer upscale", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "up.png")
		if err := SavePreview(im, path, 16); err != nil {
			t.Fatalf("save: %v", err)
		}
		assertPNGSize(t, path, 16, 16)
	})

	t.Run("fractional resize", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "odd.png")
		if err := SavePreview(im, path, 6); err != nil {
			t.Fatalf("save: %v", err)
		}
		assertPNGSize(t, path, 6, 6)
	})

	t.Run("same size", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "same.png")
		if err := SavePreview(im, path, 4); err != nil {
			t.Fatalf("save: %v", err)
		}
		assertPNGSize(t, path, 4, 4)
	})

	t.Run("invalid width", func(t *testing.T) {
		if err := SavePreview(im, filepath.Join(t.TempDir(), "bad.png"), 0); err == nil {
			t.Error("expected an error")
		}
	})
}

func assertPNGSize(t *testing.T, path string, w, h int) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("preview file: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != w || b.Dy() != h {
		t.Errorf("preview is %dx%d, want %dx%d", b.Dx(), b.Dy(), w, h)
	}
}
