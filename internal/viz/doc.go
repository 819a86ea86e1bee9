// Package viz previews the reveal animation in a terminal.
//
// The preview is a Bubble Tea program that samples the escape grid down to
// the terminal size. Each cell is an upper half block whose foreground and
// background carry two vertically adjacent samples, giving square pixels on
// common terminal fonts.
//
// # Key Bindings
//
//	T          - Toggle coloring mode (configurable)
//	Q/Esc/^C   - Quit
package viz
