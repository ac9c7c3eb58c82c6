package render

import (
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/pager/pkg/pager/internal/logging"
)

var font *ttf.Font

func loadFont() {
	theme := GetTheme()
	if theme.FontPath == "" {
		return
	}
	f, err := ttf.OpenFont(theme.FontPath, theme.FontSize)
	if err != nil {
		logging.Internal().Warn("Failed to open font; captions disabled", "path", theme.FontPath, "error", err)
		return
	}
	font = f
}

func closeFont() {
	if font != nil {
		font.Close()
		font = nil
	}
}

// HasFont reports whether captions can be drawn.
func HasFont() bool {
	return font != nil
}

// DrawText draws text centered horizontally on cx with its top at y.
func DrawText(renderer *sdl.Renderer, text string, cx, y int32, color sdl.Color) {
	if font == nil || text == "" {
		return
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return
	}
	defer texture.Destroy()

	renderer.Copy(texture, nil, &sdl.Rect{
		X: cx - surface.W/2,
		Y: y,
		W: surface.W,
		H: surface.H,
	})
}
