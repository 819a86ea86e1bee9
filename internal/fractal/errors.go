package fractal

import "errors"

var (
	// ErrInvalidPlane indicates a plane with non-positive size or range.
	ErrInvalidPlane = errors.New("fractal: invalid plane")

	// ErrInvalidIters indicates an iteration budget below one.
	ErrInvalidIters = errors.New("fractal: iteration budget must be at least 1")
)
