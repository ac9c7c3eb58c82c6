package sdlpager

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/pager/pkg/pager"
)

// Page is a screen the host can draw. Draw renders the page into a target
// texture of width x height with its origin at the top left; the host
// positions and fades that texture as the page's layer moves.
type Page interface {
	pager.Screen
	Draw(renderer *sdl.Renderer, width, height int32)
}

// Redrawer is implemented by pages whose content changes after the first
// draw. Pages without it are drawn once per size.
type Redrawer interface {
	NeedsRedraw() bool
}

func needsRedraw(p Page) bool {
	r, ok := p.(Redrawer)
	return ok && r.NeedsRedraw()
}
