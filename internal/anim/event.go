package anim

import "unicode"

// Event is produced by an input surface. Only Close and KeyPress are handled;
// every other implementation is ignored.
type Event interface {
	isEvent()
}

// Close requests the render loop to stop.
type Close struct{}

// KeyPress reports a single pressed key.
type KeyPress struct {
	Key rune
}

func (Close) isEvent()    {}
func (KeyPress) isEvent() {}

// Controller owns the coloring mode and the loop's closed flag.
type Controller struct {
	Mode      Mode
	ToggleKey rune
	Closed    bool
}

func NewController(start Mode, toggleKey rune) *Controller {
	return &Controller{Mode: start, ToggleKey: toggleKey}
}

func (c *Controller) Handle(ev Event) {
	switch e := ev.(type) {
	case Close:
		c.Closed = true
	case KeyPress:
		if unicode.ToUpper(e.Key) == unicode.ToUpper(c.ToggleKey) {
			c.Mode = c.Mode.Toggle()
		}
	}
}

// HandleAll applies events in order and reports whether the loop should keep running.
func (c *Controller) HandleAll(events []Event) bool {
	for _, ev := range events {
		c.Handle(ev)
	}
	return !c.Closed
}
