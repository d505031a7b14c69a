package grid

// Domain is the inclusive integer rectangle [MinX..MaxX] x [MinY..MaxY]
// addressing a buffer. Both bounds are part of the domain, so the width is
// MaxX-MinX+1. Coordinates may be negative.
//
// Domain is a value type; the transforming methods return a new Domain.
type Domain struct {
	MinX, MaxX int
	MinY, MaxY int
}

// NewDomain constructs the domain [minX..maxX] x [minY..maxY]. It panics
// when the rectangle is empty or inverted.
func NewDomain(minX, maxX, minY, maxY int) Domain {
	width := 1 + maxX - minX
	height := 1 + maxY - minY
	if width <= 0 || height <= 0 {
		fatalf("domain [%d..%d]x[%d..%d] has width=%d, height=%d; dimensions must be greater than 0",
			minX, maxX, minY, maxY, width, height)
	}
	return Domain{MinX: minX, MaxX: maxX, MinY: minY, MaxY: maxY}
}

// DomainOfSize constructs the zero-based domain [0..width) x [0..height).
func DomainOfSize(width, height int) Domain {
	return NewDomain(0, width-1, 0, height-1)
}

// Width returns MaxX-MinX+1.
func (d Domain) Width() int { return 1 + d.MaxX - d.MinX }

// Height returns MaxY-MinY+1.
func (d Domain) Height() int { return 1 + d.MaxY - d.MinY }

// Size returns the width and height in one call.
func (d Domain) Size() (width, height int) { return d.Width(), d.Height() }

// Contains reports whether the domain-relative coordinate (x, y) lies
// inside the domain.
func (d Domain) Contains(x, y int) bool {
	return x >= d.MinX && x <= d.MaxX && y >= d.MinY && y <= d.MaxY
}

// ContainsIndex reports whether the zero-based coordinate (ix, iy) lies
// inside [0..width) x [0..height).
func (d Domain) ContainsIndex(ix, iy int) bool {
	return ix >= 0 && ix < d.Width() && iy >= 0 && iy < d.Height()
}

// Translate shifts both bounds by (dx, dy).
func (d Domain) Translate(dx, dy int) Domain {
	return Domain{MinX: d.MinX + dx, MaxX: d.MaxX + dx, MinY: d.MinY + dy, MaxY: d.MaxY + dy}
}

// FlipHorizontal mirrors the x bounds around the origin: the new domain is
// [-MaxX..-MinX] x [MinY..MaxY]. A domain that does not straddle zero
// moves to the other side of the axis.
func (d Domain) FlipHorizontal() Domain {
	return Domain{MinX: -d.MaxX, MaxX: -d.MinX, MinY: d.MinY, MaxY: d.MaxY}
}

// FlipVertical mirrors the y bounds around the origin.
func (d Domain) FlipVertical() Domain {
	return Domain{MinX: d.MinX, MaxX: d.MaxX, MinY: -d.MaxY, MaxY: -d.MinY}
}

// Pad grows the rectangle by the given number of pixels per side.
// It panics when the result is empty or inverted (negative padding may
// shrink a domain away entirely).
func (d Domain) Pad(top, right, bottom, left int) Domain {
	return NewDomain(d.MinX-left, d.MaxX+right, d.MinY-top, d.MaxY+bottom)
}

func (d Domain) check(x, y int) {
	if !d.Contains(x, y) {
		fatalf("access to pixel (%d,%d) outside the image domain [%d..%d]x[%d..%d]",
			x, y, d.MinX, d.MaxX, d.MinY, d.MaxY)
	}
}

func (d Domain) checkIndex(ix, iy int) {
	if !d.ContainsIndex(ix, iy) {
		fatalf("access to pixel (%d,%d) outside the %dx%d image", ix, iy, d.Width(), d.Height())
	}
}

func (d Domain) mustMatch(other Domain) {
	if d != other {
		fatalf("images do not have the same domain: [%d..%d]x[%d..%d] vs [%d..%d]x[%d..%d]",
			d.MinX, d.MaxX, d.MinY, d.MaxY, other.MinX, other.MaxX, other.MinY, other.MaxY)
	}
}
