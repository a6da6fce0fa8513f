// Package draw renders vector shapes to a terminal using half-block
// characters, giving each cell two square-ish sub-pixels.
package draw

import (
	"fmt"
	"io"
)

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockEmpty     = ' '
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// ANSI colors used for text overlays.
const (
	ColorReset       = "\033[0m"
	ColorBrightWhite = "\033[97m"
	ColorWhite       = "\033[37m"
	ColorGray        = "\033[90m"
	ColorBrightCyan  = "\033[96m"
)

// AlphaColor approximates a fade level between 0 and 1 with the few gray
// levels a basic terminal offers. Returns "" when fully transparent.
func AlphaColor(alpha float64) string {
	switch {
	case alpha <= 0:
		return ""
	case alpha > 0.66:
		return ColorBrightWhite
	case alpha > 0.33:
		return ColorWhite
	default:
		return ColorGray
	}
}

// ClearScreen clears the terminal and moves cursor to top-left.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
