package anim

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownMode = errors.New("anim: unknown coloring mode")

// Mode selects the normalization base for pixel intensity.
type Mode int

const (
	// ModeMax normalizes by the full iteration budget.
	ModeMax Mode = iota
	// ModeCurrent normalizes by the animated threshold.
	ModeCurrent
)

func (m Mode) Toggle() Mode {
	if m == ModeMax {
		return ModeCurrent
	}
	return ModeMax
}

func (m Mode) String() string {
	switch m {
	case ModeMax:
		return "max"
	case ModeCurrent:
		return "current"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "max":
		return ModeMax, nil
	case "current":
		return ModeCurrent, nil
	default:
		return ModeMax, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}
