package grid

import (
	"bytes"
	"os"
	"testing"
)

// mustPanic asserts that fn panics.
func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s should panic", name)
		}
	}()
	fn()
}

// captureWarnings redirects the warning sink to a buffer for the duration
// of the test.
func captureWarnings(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetWarningOutput(&buf)
	t.Cleanup(func() { SetWarningOutput(os.Stderr) })
	return &buf
}

// useMode switches the checking stance and restores the previous one when
// the test finishes.
func useMode(t *testing.T, m Mode) {
	t.Helper()
	prev := SetMode(m)
	t.Cleanup(func() { SetMode(prev) })
}

// rampImage builds a w x h image over [0..w) x [0..h) whose pixel at
// (x, y) is y*w+x.
func rampImage(w, h int) *IntImage {
	im := NewIntImage(w, h, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			im.SetIndex(x, y, y*w+x)
		}
	}
	return im
}
