package render

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines the visual appearance of the pager host.
type Theme struct {
	IndicatorColor       sdl.Color // Dots and chevrons of the page indicator
	ActiveIndicatorColor sdl.Color // Dot of the selected page
	TextColor            sdl.Color // Page indicator caption
	BackgroundColor      sdl.Color // Clear color behind the pages
	FontPath             string    // Path to the caption font; empty hides the caption
	FontSize             int
	BackgroundImagePath  string // Path to the background image
}

// DefaultTheme is a dark theme with a white indicator.
func DefaultTheme() Theme {
	return Theme{
		IndicatorColor:       HexToColor(0x808080),
		ActiveIndicatorColor: HexToColor(0xFFFFFF),
		TextColor:            HexToColor(0xFFFFFF),
		BackgroundColor:      HexToColor(0x101010),
		FontSize:             18,
	}
}

var currentTheme = DefaultTheme()

// SetTheme sets the active theme. Call it before Init for the font and
// background image to be picked up.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// HexToColor converts 0xRRGGBB to an opaque sdl.Color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16 & 0xFF),
		G: uint8(hex >> 8 & 0xFF),
		B: uint8(hex & 0xFF),
		A: 255,
	}
}
