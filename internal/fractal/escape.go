package fractal

// EscapeIters iterates z = z*z + c from z = 0 and returns the index of the
// first iteration where |z| > 2, or maxIters if z stays bounded.
func EscapeIters(c complex128, maxIters int) int {
	z := complex(0, 0)
	for i := 0; i < maxIters; i++ {
		z = z*z + c
		if real(z)*real(z)+imag(z)*imag(z) > 4 {
			return i
		}
	}
	return maxIters
}
