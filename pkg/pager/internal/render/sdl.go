// Package render owns the SDL window, the theme and the textures the pager
// host composites. Nothing in here is part of the public API.
package render

import (
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/pager/pkg/pager"
	"github.com/BrandonKowalski/pager/pkg/pager/constants"
	"github.com/BrandonKowalski/pager/pkg/pager/internal/logging"
)

// Init starts SDL and its image and font extensions, then opens a window.
func Init(title string, opts WindowOptions) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return nil, pager.NewInfrastructureError("sdl_init", err)
	}

	if err := img.Init(img.INIT_PNG | img.INIT_JPG); err != nil {
		logging.Internal().Warn("SDL_image init incomplete", "error", err)
	}

	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return nil, pager.NewInfrastructureError("ttf_init", err)
	}

	// Apply default window options if none specified
	if opts.IsZero() {
		if constants.IsDevMode() {
			opts = WindowOptions{Resizable: true}
		} else {
			opts = WindowOptions{Borderless: true, Resizable: true}
		}
	}

	win, err := openWindow(title, opts)
	if err != nil {
		Cleanup(nil)
		return nil, err
	}

	openControllers()
	loadFont()

	return win, nil
}

// Cleanup releases everything Init created. win may be nil.
func Cleanup(win *Window) {
	if win != nil {
		win.destroy()
	}
	closeControllers()
	closeFont()
	ttf.Quit()
	img.Quit()
	sdl.Quit()
}

var controllers []*sdl.GameController

func openControllers() {
	for i := 0; i < sdl.NumJoysticks(); i++ {
		if !sdl.IsGameController(i) {
			continue
		}
		if gc := sdl.GameControllerOpen(i); gc != nil {
			controllers = append(controllers, gc)
			logging.Internal().Debug("Opened game controller", "index", i, "name", gc.Name())
		}
	}
}

func closeControllers() {
	for _, gc := range controllers {
		gc.Close()
	}
	controllers = nil
}
