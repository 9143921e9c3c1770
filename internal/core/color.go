package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
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
	ColorGrass
)

// String returns the palette name of the color.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorMagenta:
		return "magenta"
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	case ColorBrightRed:
		return "bright_red"
	case ColorBrightGreen:
		return "bright_green"
	case ColorBrightYellow:
		return "bright_yellow"
	case ColorBrightBlue:
		return "bright_blue"
	case ColorBrightMagenta:
		return "bright_magenta"
	case ColorBrightCyan:
		return "bright_cyan"
	case ColorBrightWhite:
		return "bright_white"
	case ColorOrange:
		return "orange"
	case ColorGray:
		return "gray"
	case ColorGrass:
		return "grass"
	default:
		return "unknown"
	}
}

// ParseColor returns the color with the given palette name.
func ParseColor(name string) (Color, bool) {
	for c := ColorDefault; c <= ColorGrass; c++ {
		if c.String() == name {
			return c, true
		}
	}
	return ColorDefault, false
}

// RGB returns the color as normalized red, green and blue components.
// Used by frontends that draw with real colors instead of ANSI codes.
func (c Color) RGB() (r, g, b float32) {
	switch c {
	case ColorRed, ColorBrightRed:
		return 1, 0, 0
	case ColorGreen, ColorBrightGreen:
		return 0, 1, 0
	case ColorYellow, ColorBrightYellow:
		return 1, 1, 0
	case ColorBlue, ColorBrightBlue:
		return 0, 0, 1
	case ColorMagenta, ColorBrightMagenta:
		return 1, 0, 1
	case ColorCyan, ColorBrightCyan:
		return 0, 1, 1
	case ColorOrange:
		return 1, 0.5, 0
	case ColorGray:
		return 0.5, 0.5, 0.5
	case ColorGrass:
		return 0.2, 0.6, 0.2
	default:
		return 1, 1, 1
	}
}
