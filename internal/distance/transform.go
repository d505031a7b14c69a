package distance

import (
	"fmt"
	"math"

	"github.com/rvanwijk/gridimg/internal/grid"
)

// Metric selects the distance measure for Transform.
type Metric int

const (
	Manhattan Metric = iota
	Chessboard
	SquaredEuclid
	Euclid
)

func (m Metric) String() string {
	switch m {
	case Manhattan:
		return "manhattan"
	case Chessboard:
		return "chessboard"
	case SquaredEuclid:
		return "squared-euclid"
	case Euclid:
		return "euclid"
	}
	return fmt.Sprintf("Metric(%d)", int(m))
}

type offset struct{ dx, dy int }

// Forward-pass masks: the backward neighbors of a pixel in raster order.
// The backward pass mirrors them.
var (
	manhattanMask  = []offset{{-1, 0}, {0, -1}}
	chessboardMask = []offset{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}}
	verticalMask   = []offset{{0, -1}}
)

// Transform returns the distance transform of im under the given metric.
// Pixels whose value is not foreground act as background at distance
// zero; foreground pixels with no background anywhere keep an infinity
// sentinel larger than any real distance. The result shares im's domain
// and has dynamic range [0, infinity]. Unknown metrics panic.
func Transform(im *grid.IntImage, metric Metric, foreground int) *grid.IntImage {
	switch metric {
	case Manhattan:
		return chamferTransform(im, manhattanMask, foreground)
	case Chessboard:
		return chamferTransform(im, chessboardMask, foreground)
	case Euclid:
		return exactTransform(im, foreground, true)
	case SquaredEuclid:
		return exactTransform(im, foreground, false)
	}
	panic(fmt.Sprintf("distance: unrecognized metric value %d", int(metric)))
}

// chamferTransform is the Rosenfeld-Pfaltz two-pass sweep: a forward
// raster scan propagating 1+min over the mask neighbors, then a backward
// scan with the mirrored mask taking the pointwise minimum.
func chamferTransform(im *grid.IntImage, mask []offset, foreground int) *grid.IntImage {
	d := im.Domain()
	width, height := d.Size()
	infinity := width + height + 1
	dt := grid.NewIntImageDomain(d, 0, infinity)

	for y := d.MinY; y <= d.MaxY; y++ {
		for x := d.MinX; x <= d.MaxX; x++ {
			if im.At(x, y) != foreground {
				dt.Set(x, y, 0)
				continue
			}
			minNb := infinity
			for _, m := range mask {
				nbx, nby := x+m.dx, y+m.dy
				if d.Contains(nbx, nby) {
					if nb := dt.At(nbx, nby); nb < minNb {
						minNb = nb
					}
				}
			}
			if minNb < infinity {
				minNb++
			}
			dt.Set(x, y, minNb)
		}
	}

	for y := d.MaxY; y >= d.MinY; y-- {
		for x := d.MaxX; x >= d.MinX; x-- {
			here := dt.At(x, y)
			if here == 0 {
				continue
			}
			minNb := infinity
			for _, m := range mask {
				nbx, nby := x-m.dx, y-m.dy
				if d.Contains(nbx, nby) {
					if nb := dt.At(nbx, nby); nb < minNb {
						minNb = nb
					}
				}
			}
			if minNb < infinity {
				minNb++
			}
			if minNb < here {
				dt.Set(x, y, minNb)
			}
		}
	}
	return dt
}

// exactTransform is the Meijster-Roerdink-Hesselink linear-time exact
// Euclidean transform: a vertical chamfer phase squared per column,
// then a per-row lower envelope over the parabolas (x-s)^2 + v(s).
func exactTransform(im *grid.IntImage, foreground int, takeSquareRoot bool) *grid.IntImage {
	d := im.Domain()
	width, height := d.Size()
	infinity := width*width + height*height

	vertical := chamferTransform(im, verticalMask, foreground)

	// Squared vertical distances, zero based. No true vertical distance
	// reaches height, so anything at least that is unreachable.
	vdt := make([]int, width*height)
	for iy := 0; iy < height; iy++ {
		for ix := 0; ix < width; ix++ {
			v := vertical.AtIndex(ix, iy)
			if v < height {
				v *= v
			} else {
				v = infinity
			}
			vdt[iy*width+ix] = v
		}
	}

	dt := grid.NewIntImageDomain(d, 0, infinity)
	s := make([]int, width) // parabola apex columns
	t := make([]int, width) // column from which s[q] beats s[q-1]
	for iy := 0; iy < height; iy++ {
		row := vdt[iy*width : (iy+1)*width]

		q := 0
		s[0], t[0] = 0, 0
		for x := 1; x < width; x++ {
			vxy := row[x]
			for q >= 0 && (t[q]-s[q])*(t[q]-s[q])+row[s[q]] > (t[q]-x)*(t[q]-x)+vxy {
				q--
			}
			if q < 0 {
				q = 0
				s[0] = x
				continue
			}
			w := 1 + (x*x-s[q]*s[q]+vxy-row[s[q]])/(2*(x-s[q]))
			if w < width {
				q++
				s[q] = x
				t[q] = w
			}
		}

		for x := width - 1; x >= 0; x-- {
			dsq := (x-s[q])*(x-s[q]) + row[s[q]]
			if takeSquareRoot {
				dt.SetIndex(x, iy, int(0.5+math.Sqrt(float64(dsq))))
			} else {
				dt.SetIndex(x, iy, dsq)
			}
			if x == t[q] {
				q--
			}
		}
	}
	return dt
}
