// Package shade maps escape-iteration counts to grayscale pixels.
package shade

import (
	"fmt"
	"image/color"

	"github.com/san-kum/fractanim/internal/anim"
	"github.com/san-kum/fractanim/internal/fractal"
)

var Black = color.RGBA{A: 255}

// Effective caps a grid value at the animated threshold.
func Effective(v, checkIters int) int {
	if v < checkIters {
		return v
	}
	return checkIters
}

// Norm is the divisor used to scale an effective value to [0, 255].
func Norm(mode anim.Mode, maxIters, checkIters int) int {
	if mode == anim.ModeCurrent {
		return checkIters
	}
	return maxIters
}

// Intensity returns the gray level for grid value v. ok is false when the
// effective value is zero; such pixels are not drawn.
func Intensity(v, checkIters, norm int) (level uint8, ok bool) {
	e := Effective(v, checkIters)
	if e <= 0 || norm <= 0 {
		return 0, false
	}
	n := e * 255 / norm
	if n > 255 {
		n = 255
	}
	return uint8(n), true
}

func Gray(level uint8) color.RGBA {
	return color.RGBA{R: level, G: level, B: level, A: 255}
}

// Frame is the persistent pixel buffer for one grid. Pixels whose effective
// value is zero are never written and keep their initial black.
type Frame struct {
	Width, Height int
	Pix           []color.RGBA
}

func NewFrame(width, height int) *Frame {
	pix := make([]color.RGBA, width*height)
	for i := range pix {
		pix[i] = Black
	}
	return &Frame{Width: width, Height: height, Pix: pix}
}

// Render shades the top half of g and writes each pixel to its vertical
// mirror as well.
func (f *Frame) Render(g *fractal.Grid, checkIters int, mode anim.Mode) error {
	if g.Width() != f.Width || g.Height() != f.Height {
		return fmt.Errorf("shade: frame %dx%d does not match grid %dx%d", f.Width, f.Height, g.Width(), g.Height())
	}

	norm := Norm(mode, g.MaxIters(), checkIters)
	for i := 0; i <= f.Height/2; i++ {
		mirror := f.Height - 1 - i
		for j := 0; j < f.Width; j++ {
			level, ok := Intensity(g.At(i, j), checkIters, norm)
			if !ok {
				continue
			}
			c := Gray(level)
			f.Pix[i*f.Width+j] = c
			f.Pix[mirror*f.Width+j] = c
		}
	}
	return nil
}

func (f *Frame) At(row, col int) color.RGBA {
	return f.Pix[row*f.Width+col]
}

// Overlay is the two-line status text drawn over the image.
func Overlay(toggleKey rune, elapsed float64) string {
	return fmt.Sprintf("Toggle coloring mode: %c\nAnimation time: %f", toggleKey, elapsed)
}
