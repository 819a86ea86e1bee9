package viz

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ff00"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666688")).
			Italic(true)
)

// cellStyles caches one style per (upper, lower) gray pair.
type cellStyles map[[2]uint8]lipgloss.Style

func (c cellStyles) get(upper, lower uint8) lipgloss.Style {
	key := [2]uint8{upper, lower}
	if s, ok := c[key]; ok {
		return s
	}
	s := lipgloss.NewStyle().
		Foreground(lipgloss.Color(grayHex(upper))).
		Background(lipgloss.Color(grayHex(lower)))
	c[key] = s
	return s
}

func grayHex(v uint8) string {
	b := hexByte(v)
	return "#" + b + b + b
}

func hexByte(v uint8) string {
	const hex = "0123456789abcdef"
	return string(hex[v/16]) + string(hex[v%16])
}
