package grid

import (
	"strings"
	"testing"
)

func TestIntImageFprint(t *testing.T) {
	im := fillInt(NewIntImage(2, 2, 0, 10), []int{1, 2, 3, 4})
	var sb strings.Builder
	if err := im.Fprint(&sb); err != nil {
		t.Fatalf("Fprint: %v", err)
	}
	want := "1 2 \n3 4 \n"
	if sb.String() != want {
		t.Errorf("Fprint = %q, want %q", sb.String(), want)
	}
}

func TestRgbImageFprint(t *testing.T) {
	im := NewRgbImage(1, 1, 0, 10)
	im.SetIndex(0, 0, 1, 2, 3)
	var sb strings.Builder
	if err := im.Fprint(&sb); err != nil {
		t.Fatalf("Fprint: %v", err)
	}
	if got := sb.String(); got != "(1,2,3) \n" {
		t.Errorf("Fprint = %q", got)
	}
}

func TestDoubleImageFprint(t *testing.T) {
	im := NewDoubleImage(2, 1, 0, 10)
	im.SetIndex(0, 0, 1.5)
	im.SetIndex(1, 0, 2)
	var sb strings.Builder
	if err := im.Fprint(&sb); err != nil {
		t.Fatalf("Fprint: %v", err)
	}
	if got := sb.String(); got != "1.50 2.00 \n" {
		t.Errorf("Fprint = %q", got)
	}
}

func TestComplexImageFprint(t *testing.T) {
	im := NewComplexImage(1, 1)
	im.SetIndex(0, 0, 1.5-2i)
	var sb strings.Builder
	if err := im.Fprint(&sb); err != nil {
		t.Fatalf("Fprint: %v", err)
	}
	if got := sb.String(); got != "1.50+-2.00i \n" {
		t.Errorf("Fprint = %q", got)
	}
}

func TestFprintLatex(t *testing.T) {
	im := fillInt(NewIntImageDomain(NewDomain(-1, 0, 0, 0), 0, 10), []int{5, 6})
	var sb strings.Builder
	if err := im.FprintLatex(&sb); err != nil {
		t.Fatalf("FprintLatex: %v", err)
	}
	out := sb.String()
	if !strings.HasPrefix(out, "\\begin{tabular}{|c||c|c|}") {
		t.Errorf("unexpected preamble in %q", out)
	}
	if !strings.Contains(out, "{\\bf 6}") {
		t.Errorf("origin cell should be bold, got %q", out)
	}
	if !strings.Contains(out, "&-1&0\\\\") {
		t.Errorf("column headers missing, got %q", out)
	}
	if !strings.HasSuffix(out, "\\end{tabular}\n") {
		t.Errorf("missing table end in %q", out)
	}
}
