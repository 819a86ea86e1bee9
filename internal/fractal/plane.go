package fractal

import "fmt"

const (
	Width         = 1001
	Height        = 1001
	XRange        = 2.0
	YRange        = 2.0
	MaxCheckIters = 100
)

// Plane is the affine pixel-to-complex mapping. The image spans
// [-XRange, XRange] horizontally and [-YRange, YRange] vertically.
type Plane struct {
	Width, Height  int
	XRange, YRange float64
}

func DefaultPlane() Plane {
	return Plane{
		Width:  Width,
		Height: Height,
		XRange: XRange,
		YRange: YRange,
	}
}

func (p Plane) Validate() error {
	// Width/2 and Height/2 are divisors in Point.
	if p.Width < 2 || p.Height < 2 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidPlane, p.Width, p.Height)
	}
	if p.XRange <= 0 || p.YRange <= 0 {
		return fmt.Errorf("%w: range %gx%g", ErrInvalidPlane, p.XRange, p.YRange)
	}
	return nil
}

// Point maps pixel (row, col) to c. Halves use integer division, so for an odd
// Height rows i and Height-1-i land on conjugate points.
func (p Plane) Point(row, col int) complex128 {
	halfW, halfH := p.Width/2, p.Height/2
	re := float64(col-halfW) * p.XRange / float64(halfW)
	im := float64(row-halfH) * p.YRange / float64(halfH)
	return complex(re, im)
}
