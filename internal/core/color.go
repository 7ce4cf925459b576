package core

// Color is a foreground color for a screen cell.
// The platform layer maps it to ANSI 256-color codes.
type Color uint8

// Colors used by the cart runner scene.
const (
	ColorDefault Color = iota
	ColorRed
	ColorYellow
	ColorCyan
	ColorWhite
	ColorBrightWhite
	ColorOrange
	ColorBrown
	ColorGray
)
