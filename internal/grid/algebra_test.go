package grid

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func fillInt(im *IntImage, values []int) *IntImage {
	copy(im.Pix(), values)
	return im
}

func TestIntImageAlgebra(t *testing.T) {
	a := fillInt(NewIntImage(2, 2, 0, 100), []int{1, 5, 3, 7})
	b := fillInt(NewIntImage(2, 2, 0, 100), []int{4, 2, 3, 6})

	tests := []struct {
		name string
		got  *IntImage
		want []int
	}{
		{"max", a.Max(b), []int{4, 5, 3, 7}},
		{"min", a.Min(b), []int{1, 2, 3, 6}},
		{"add", a.Add(b), []int{5, 7, 6, 13}},
		{"subtract", b.Subtract(a), []int{3, 0, 0, 0}},
		{"multiply", a.Multiply(b), []int{4, 10, 9, 42}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.got.Pix()); diff != "" {
				t.Errorf("result mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestIntImageSubtractClampsNegative(t *testing.T) {
	useMode(t, Checked)
	buf := captureWarnings(t)
	a := fillInt(NewIntImage(1, 1, 0, 100), []int{3})
	b := fillInt(NewIntImage(1, 1, 0, 100), []int{8})
	diff := a.Subtract(b)
	if got := diff.AtIndex(0, 0); got != 0 {
		t.Errorf("3-8 clamped to %d, want 0", got)
	}
	if buf.Len() == 0 {
		t.Error("expected a clamping warning")
	}
}

func TestAlgebraDomainMismatch(t *testing.T) {
	a := NewIntImage(2, 2, 0, 10)
	b := NewIntImageDomain(NewDomain(1, 2, 0, 1), 0, 10)
	mustPanic(t, "mismatched domains", func() { a.Add(b) })
}

func TestApplyLUT(t *testing.T) {
	im := fillInt(NewIntImage(2, 2, 0, 4), []int{0, 1, 2, 3})

	t.Run("identity", func(t *testing.T) {
		lut := []int{0, 1, 2, 3}
		out := im.ApplyLUT(lut)
		if diff := cmp.Diff(im.Pix(), out.Pix()); diff != "" {
			t.Errorf("identity LUT changed pixels (-want +got):\n%s", diff)
		}
	})

	t.Run("inversion", func(t *testing.T) {
		lut := []int{3, 2, 1, 0}
		out := im.ApplyLUT(lut)
		want := []int{3, 2, 1, 0}
		if diff := cmp.Diff(want, out.Pix()); diff != "" {
			t.Errorf("inversion LUT mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("table too short", func(t *testing.T) {
		mustPanic(t, "short LUT", func() { im.ApplyLUT([]int{0, 1}) })
	})

	t.Run("negative range", func(t *testing.T) {
		neg := NewIntImage(1, 1, -1, 4)
		mustPanic(t, "negative min range", func() { neg.ApplyLUT([]int{0, 1, 2, 3}) })
	})
}

func TestRgbImageAlgebra(t *testing.T) {
	a := NewRgbImage(1, 2, 0, 100)
	a.SetIndex(0, 0, 10, 20, 30)
	a.SetIndex(0, 1, 5, 50, 90)
	b := NewRgbImage(1, 2, 0, 100)
	b.SetIndex(0, 0, 3, 25, 30)
	b.SetIndex(0, 1, 8, 40, 2)

	sum := a.Add(b)
	if r, g, bl := sum.AtIndex(0, 0); r != 13 || g != 45 || bl != 60 {
		t.Errorf("Add = (%d, %d, %d), want (13, 45, 60)", r, g, bl)
	}
	hi := a.Max(b)
	if r, g, bl := hi.AtIndex(0, 1); r != 8 || g != 50 || bl != 90 {
		t.Errorf("Max = (%d, %d, %d), want (8, 50, 90)", r, g, bl)
	}
}

func TestRgbApplyLUT(t *testing.T) {
	im := NewRgbImage(1, 1, 0, 4)
	im.SetIndex(0, 0, 1, 2, 3)
	// Each channel reads its own column of the table.
	lut := [][3]int{{0, 1, 2}, {1, 2, 3}, {2, 3, 0}, {3, 0, 1}}
	out := im.ApplyLUT(lut)
	if r, g, b := out.AtIndex(0, 0); r != 1 || g != 3 || b != 1 {
		t.Errorf("ApplyLUT = (%d, %d, %d), want (1, 3, 1)", r, g, b)
	}
}
