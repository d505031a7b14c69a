package grid

import (
	"strings"
	"testing"
)

func TestRgbImageClamping(t *testing.T) {
	useMode(t, Checked)
	buf := captureWarnings(t)
	im := NewRgbImage(2, 2, 0, 256)
	im.Set(0, 0, 300, 128, -4)
	r, g, b := im.At(0, 0)
	if r != 255 || g != 128 || b != 0 {
		t.Errorf("clamped triple = (%d, %d, %d), want (255, 128, 0)", r, g, b)
	}
	if !strings.Contains(buf.String(), "outside dynamic range") {
		t.Errorf("expected warnings, got %q", buf.String())
	}
}

func TestRgbImageFlip(t *testing.T) {
	im := NewRgbImage(2, 2, 0, 10)
	im.SetIndex(0, 0, 1, 2, 3)
	im.SetIndex(1, 0, 4, 5, 6)
	im.SetIndex(0, 1, 7, 8, 9)

	im.FlipVertical()
	if r, _, _ := im.AtIndex(0, 0); r != 7 {
		t.Errorf("top-left red after vertical flip = %d, want 7", r)
	}
	im.FlipVertical()
	if r, g, b := im.AtIndex(0, 0); r != 1 || g != 2 || b != 3 {
		t.Errorf("double flip = (%d, %d, %d), want (1, 2, 3)", r, g, b)
	}
}

func TestRgbImageMinMax(t *testing.T) {
	im := NewRgbImage(2, 1, 0, 100)
	im.SetIndex(0, 0, 10, 90, 30)
	im.SetIndex(1, 0, 40, 5, 60)
	lo, hi := im.MinMax()
	if lo != 5 || hi != 90 {
		t.Errorf("MinMax = (%d, %d), want (5, 90)", lo, hi)
	}
}

func TestRgbImagePad(t *testing.T) {
	im := NewRgbImage(1, 1, 0, 10)
	im.SetIndex(0, 0, 1, 2, 3)
	padded := im.Pad(1, 1, 1, 1, 9, 9, 9)
	if padded.Domain() != NewDomain(-1, 1, -1, 1) {
		t.Errorf("padded domain = %+v", padded.Domain())
	}
	if r, g, b := padded.At(-1, -1); r != 9 || g != 9 || b != 9 {
		t.Errorf("border = (%d, %d, %d), want (9, 9, 9)", r, g, b)
	}
	if r, g, b := padded.At(0, 0); r != 1 || g != 2 || b != 3 {
		t.Errorf("interior = (%d, %d, %d), want (1, 2, 3)", r, g, b)
	}
}
