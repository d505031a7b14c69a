package distance

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/rvanwijk/gridimg/internal/grid"
)

const fg = 1

// binaryImage builds an image over the given domain from a row-major
// 0/1 pattern.
func binaryImage(d grid.Domain, pattern []int) *grid.IntImage {
	im := grid.NewIntImageDomain(d, 0, 1)
	copy(im.Pix(), pattern)
	return im
}

// bruteForce computes the reference transform by scanning every
// background pixel for every foreground pixel.
func bruteForce(im *grid.IntImage, metric Metric) *grid.IntImage {
	d := im.Domain()
	w, h := d.Size()
	var infinity int
	if metric == Manhattan || metric == Chessboard {
		infinity = w + h + 1
	} else {
		infinity = w*w + h*h
	}
	out := grid.NewIntImageDomain(d, 0, infinity)
	for y := d.MinY; y <= d.MaxY; y++ {
		for x := d.MinX; x <= d.MaxX; x++ {
			if im.At(x, y) != fg {
				out.Set(x, y, 0)
				continue
			}
			best := infinity
			for by := d.MinY; by <= d.MaxY; by++ {
				for bx := d.MinX; bx <= d.MaxX; bx++ {
					if im.At(bx, by) == fg {
						continue
					}
					ax, ay := x-bx, y-by
					if ax < 0 {
						ax = -ax
					}
					if ay < 0 {
						ay = -ay
					}
					var dist int
					switch metric {
					case Manhattan:
						dist = ax + ay
					case Chessboard:
						dist = ax
						if ay > dist {
							dist = ay
						}
					case SquaredEuclid:
						dist = ax*ax + ay*ay
					case Euclid:
						dist = int(0.5 + math.Sqrt(float64(ax*ax+ay*ay)))
					}
					if dist < best {
						best = dist
					}
				}
			}
			out.Set(x, y, best)
		}
	}
	return out
}

// Irregular enough to exercise the envelope algorithm: an L of
// background inside a foreground field.
var lShape = []int{
	1, 1, 1, 1, 1, 1, 1,
	1, 0, 1, 1, 1, 1, 1,
	1, 0, 1, 1, 1, 1, 1,
	1, 0, 0, 0, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1,
}

func TestTransformMatchesBruteForce(t *testing.T) {
	im := binaryImage(grid.DomainOfSize(7, 5), lShape)
	for _, metric := range []Metric{Manhattan, Chessboard, SquaredEuclid, Euclid} {
		t.Run(metric.String(), func(t *testing.T) {
			got := Transform(im, metric, fg)
			want := bruteForce(im, metric)
			if diff := cmp.Diff(want.Pix(), got.Pix()); diff != "" {
				t.Errorf("transform mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTransformBackgroundIsZero(t *testing.T) {
	im := grid.NewIntImage(4, 4, 0, 1)
	for _, metric := range []Metric{Manhattan, Chessboard, SquaredEuclid, Euclid} {
		dt := Transform(im, metric, fg)
		lo, hi := dt.MinMax()
		if lo != 0 || hi != 0 {
			t.Errorf("%v transform of all-background image has values (%d, %d), want all zero", metric, lo, hi)
		}
	}
}

func TestTransformSingleForegroundPixel(t *testing.T) {
	im := grid.NewIntImage(5, 5, 0, 1)
	im.SetIndex(2, 2, fg)
	for _, metric := range []Metric{Manhattan, Chessboard, SquaredEuclid, Euclid} {
		dt := Transform(im, metric, fg)
		if got := dt.AtIndex(2, 2); got != 1 {
			t.Errorf("%v distance of isolated pixel = %d, want 1", metric, got)
		}
		if got := dt.AtIndex(0, 0); got != 0 {
			t.Errorf("%v background pixel = %d, want 0", metric, got)
		}
	}
}

func TestChamferInfinity(t *testing.T) {
	// No background anywhere: every pixel keeps the sentinel.
	im := grid.NewIntImage(3, 2, 0, 1)
	im.SetAll(fg)
	dt := Transform(im, Manhattan, fg)
	want := 3 + 2 + 1
	lo, hi := dt.MinMax()
	if lo != want || hi != want {
		t.Errorf("all-foreground transform has values (%d, %d), want all %d", lo, hi, want)
	}
}

func TestEuclidIsRootOfSquared(t *testing.T) {
	im := binaryImage(grid.DomainOfSize(7, 5), lShape)
	sq := Transform(im, SquaredEuclid, fg)
	eu := Transform(im, Euclid, fg)
	for i, v := range sq.Pix() {
		want := int(0.5 + math.Sqrt(float64(v)))
		if eu.Pix()[i] != want {
			t.Errorf("pixel %d: euclid = %d, want round(sqrt(%d)) = %d", i, eu.Pix()[i], v, want)
		}
	}
}

func TestTransformPreservesDomain(t *testing.T) {
	d := grid.NewDomain(-3, 3, 2, 6)
	im := binaryImage(d, lShape)
	dt := Transform(im, Euclid, fg)
	if dt.Domain() != d {
		t.Errorf("domain = %+v, want %+v", dt.Domain(), d)
	}
	// Offset domains must not change the distances themselves.
	shifted := Transform(binaryImage(grid.DomainOfSize(7, 5), lShape), Euclid, fg)
	if diff := cmp.Diff(shifted.Pix(), dt.Pix()); diff != "" {
		t.Errorf("translation changed distances (-want +got):\n%s", diff)
	}
}

func TestTransformUnknownMetric(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("unknown metric should panic")
		}
	}()
	Transform(grid.NewIntImage(2, 2, 0, 1), Metric(99), fg)
}
