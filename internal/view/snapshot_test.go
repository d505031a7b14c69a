package view

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/rvanwijk/gridimg/internal/grid"
)

func TestGraySnapshotScalesRange(t *testing.T) {
	// Range [0,10] stretches onto the display range: 10 maps to 255.
	im := grid.NewIntImage(2, 1, 0, 10)
	im.SetIndex(0, 0, 10)
	im.SetIndex(1, 0, 5)
	got := GraySnapshot(im)
	want := []uint8{255, 128}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestGraySnapshotClampsAndWarns(t *testing.T) {
	var buf bytes.Buffer
	grid.SetWarningOutput(&buf)
	t.Cleanup(func() { grid.SetWarningOutput(os.Stderr) })

	im := grid.NewIntImageDomain(grid.DomainOfSize(2, 1), -500, 500)
	im.SetIndex(0, 0, 300)
	im.SetIndex(1, 0, -7)
	got := GraySnapshot(im)
	// Out-of-display values become 0; the range is not [0,max], so no
	// rescaling happens.
	if got[0] != 0 || got[1] != 0 {
		t.Errorf("snapshot = %v, want [0 0]", got)
	}
	if !strings.Contains(buf.String(), "clamped") {
		t.Errorf("expected a clamping warning, got %q", buf.String())
	}
}

func TestRGBSnapshots(t *testing.T) {
	im := grid.NewRgbImageDomain(grid.DomainOfSize(2, 1), -10, 300)
	im.Set(0, 0, 10, 300, -5)
	im.Set(1, 0, 0, 255, 128)
	r, g, b := RGBSnapshots(im)
	if r[0] != 10 || g[0] != 0 || b[0] != 0 {
		t.Errorf("first pixel = (%d, %d, %d), want (10, 0, 0)", r[0], g[0], b[0])
	}
	if r[1] != 0 || g[1] != 255 || b[1] != 128 {
		t.Errorf("second pixel = (%d, %d, %d), want (0, 255, 128)", r[1], g[1], b[1])
	}
}

func TestComplexSnapshotScalesByMax(t *testing.T) {
	im := grid.NewComplexImage(2, 1)
	im.SetIndex(0, 0, 100)
	im.SetIndex(1, 0, 50+20i)
	got := ComplexSnapshot(im)
	if got[0] != 255 {
		t.Errorf("max pixel = %d, want 255", got[0])
	}
	if got[1] != 128 {
		t.Errorf("half pixel = %d, want 128", got[1])
	}
}

func TestDisplayGrayThroughPNGPresenter(t *testing.T) {
	dir := t.TempDir()
	im := grid.NewIntImageDomain(grid.NewDomain(-1, 1, -1, 1), 0, 255)
	im.SetAll(40)
	if err := DisplayGray(PNGPresenter{Dir: dir}, im, "test image"); err != nil {
		t.Fatalf("display: %v", err)
	}

	f, err := os.Open(filepath.Join(dir, "test_image.png"))
	if err != nil {
		t.Fatalf("snapshot file: %v", err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 3 || b.Dy() != 3 {
		t.Errorf("snapshot is %dx%d, want 3x3", b.Dx(), b.Dy())
	}
}

func TestDisplayRGBThroughPNGPresenter(t *testing.T) {
	dir := t.TempDir()
	im := grid.NewRgbImage(2, 2, 0, 255)
	im.SetAll(200, 100, 50)
	if err := DisplayRGB(PNGPresenter{Dir: dir}, im, "color"); err != nil {
		t.Fatalf("display: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "color.png")); err != nil {
		t.Errorf("snapshot file: %v", err)
	}
}
