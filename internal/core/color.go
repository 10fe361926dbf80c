package core

// Color is the foreground of a screen cell. ColorDefault keeps the
// terminal's own foreground, so the scene reads on light and dark
// backgrounds alike.
type Color uint8

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

// Faded is the colour of half-transparent art such as a fading moon or a
// flashing score. Bright colours step down to their normal shade, the rest
// go gray.
func (c Color) Faded() Color {
	if c >= ColorBrightRed && c <= ColorBrightCyan {
		return c - (ColorBrightRed - ColorRed)
	}
	return ColorGray
}
