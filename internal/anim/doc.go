// Package anim drives the reveal animation and the coloring-mode state machine.
//
// A [Driver] accumulates frame durations and wraps to zero after one period;
// its [Driver.CheckIters] grows linearly from 1 to the iteration budget over
// the period. A [Controller] consumes [Event] values from whatever surface
// polls input:
//
//	ctl.Handle(anim.KeyPress{Key: 't'}) // flips ctl.Mode
//	ctl.Handle(anim.Close{})            // sets ctl.Closed
package anim
