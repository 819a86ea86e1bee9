package fractal

import "fmt"

// Grid holds one escape-iteration count per pixel, row-major.
type Grid struct {
	width, height int
	maxIters      int
	iters         []int
}

// Compute evaluates the top half of p (rows 0..Height/2) and copies each row
// into its vertical mirror Height-1-row.
func Compute(p Plane, maxIters int) (*Grid, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if maxIters < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidIters, maxIters)
	}

	g := &Grid{
		width:    p.Width,
		height:   p.Height,
		maxIters: maxIters,
		iters:    make([]int, p.Width*p.Height),
	}

	for i := 0; i <= p.Height/2; i++ {
		mirror := p.Height - 1 - i
		for j := 0; j < p.Width; j++ {
			v := EscapeIters(p.Point(i, j), maxIters)
			g.iters[i*p.Width+j] = v
			g.iters[mirror*p.Width+j] = v
		}
	}

	return g, nil
}

func (g *Grid) Width() int    { return g.width }
func (g *Grid) Height() int   { return g.height }
func (g *Grid) MaxIters() int { return g.maxIters }

func (g *Grid) At(row, col int) int {
	return g.iters[row*g.width+col]
}

// Histogram returns the number of pixels per escape count; index MaxIters
// counts points that never escaped.
func (g *Grid) Histogram() []int {
	counts := make([]int, g.maxIters+1)
	for _, v := range g.iters {
		counts[v]++
	}
	return counts
}

// InSetFraction is the share of pixels that did not escape within MaxIters.
func (g *Grid) InSetFraction() float64 {
	if len(g.iters) == 0 {
		return 0
	}
	return float64(g.Histogram()[g.maxIters]) / float64(len(g.iters))
}
