package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the terminal front-end.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorWhite
	ColorBrightRed
	ColorBrightYellow
	ColorBrightWhite
	ColorNavy
	ColorSky
	ColorGray
	ColorDarkGray
)
