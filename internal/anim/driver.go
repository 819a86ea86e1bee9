package anim

import "math"

// DefaultPeriod is the length of one reveal cycle in seconds.
const DefaultPeriod = 20.0

type Driver struct {
	Period   float64
	MaxIters int
	elapsed  float64
}

func NewDriver(period float64, maxIters int) *Driver {
	return &Driver{Period: period, MaxIters: maxIters}
}

// Advance adds one frame duration. Elapsed time past the period resets to
// zero; landing exactly on the period is kept for that frame.
func (d *Driver) Advance(dt float64) {
	d.elapsed += dt
	if d.elapsed > d.Period {
		d.elapsed = 0
	}
}

func (d *Driver) Elapsed() float64 { return d.elapsed }

func (d *Driver) Reset() { d.elapsed = 0 }

// CheckIters is 1 + floor((MaxIters-1) * elapsed / Period), kept in [1, MaxIters].
func (d *Driver) CheckIters() int {
	return ThresholdAt(d.elapsed, d.Period, d.MaxIters)
}

// ThresholdAt is the threshold a driver reports after elapsed seconds.
func ThresholdAt(elapsed, period float64, maxIters int) int {
	if maxIters <= 1 || period <= 0 {
		return 1
	}
	n := 1 + int(math.Floor(float64(maxIters-1)*elapsed/period))
	if n < 1 {
		return 1
	}
	if n > maxIters {
		return maxIters
	}
	return n
}
