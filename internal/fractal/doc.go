// Package fractal computes the escape-iteration grid of the Mandelbrot set.
//
// A [Plane] maps pixel coordinates of a fixed-size image onto the complex
// plane, centered at the origin. [Compute] evaluates every pixel of the top
// half once and mirrors the result into the bottom half:
//
//	g, err := fractal.Compute(fractal.DefaultPlane(), fractal.MaxCheckIters)
//	v := g.At(row, col) // in [0, g.MaxIters()]
//
// The returned [Grid] is never modified after Compute returns, so it can be
// shared by any number of readers without synchronization.
package fractal
