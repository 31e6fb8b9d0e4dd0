package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// valueColors gives each tile value 1..9 its own color.
var valueColors = [...]Color{
	ColorDefault,
	ColorBrightRed,
	ColorOrange,
	ColorBrightYellow,
	ColorBrightGreen,
	ColorBrightCyan,
	ColorBrightBlue,
	ColorBrightMagenta,
	ColorMagenta,
	ColorRed,
}

// ValueColor returns the color for a tile value. Out-of-range values are uncolored.
func ValueColor(v int) Color {
	if v < 0 || v >= len(valueColors) {
		return ColorDefault
	}
	return valueColors[v]
}
