package sdlpager

import (
	"github.com/BrandonKowalski/pager/pkg/pager"
	"github.com/BrandonKowalski/pager/pkg/pager/internal/render"
)

// Theme defines the colors, font and background of the host.
type Theme = render.Theme

// WindowOptions configures the SDL window.
type WindowOptions = render.WindowOptions

// HexToColor converts 0xRRGGBB to an opaque color.
var HexToColor = render.HexToColor

// DefaultTheme is a dark theme with a white page indicator.
var DefaultTheme = render.DefaultTheme

// Options configures a Host.
type Options struct {
	Title         string         // Window title displayed in windowed mode
	Settings      pager.Settings // Controller settings
	Window        WindowOptions  // SDL window flags and size
	Theme         *Theme         // Nil keeps DefaultTheme
	Language      string         // BCP 47 tag for captions; empty reads LANG
	TouchDevice   string         // evdev touchscreen path; PAGER_TOUCH_DEVICE also works
	ShowIndicator bool           // Draw page dots and chevrons along the bottom edge
}

// DefaultOptions returns options with DefaultSettings and the indicator shown.
func DefaultOptions() Options {
	return Options{
		Title:         "Pager",
		Settings:      pager.DefaultSettings(),
		ShowIndicator: true,
	}
}
