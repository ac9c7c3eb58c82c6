// Package sdlpager runs a pager.Controller in an SDL window. It maps
// keyboard, controller, mouse and touch input to selections, swipes and
// drags, and composites the controller's layers every frame.
package sdlpager

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/atomic"

	"github.com/BrandonKowalski/pager/pkg/pager"
	"github.com/BrandonKowalski/pager/pkg/pager/constants"
	"github.com/BrandonKowalski/pager/pkg/pager/internal/input"
	"github.com/BrandonKowalski/pager/pkg/pager/internal/logging"
	"github.com/BrandonKowalski/pager/pkg/pager/internal/render"
	"github.com/BrandonKowalski/pager/pkg/pager/internal/touch"
	"github.com/BrandonKowalski/pager/pkg/pager/locale"
)

// Host owns the SDL window and drives a Controller from its event loop.
type Host struct {
	opts Options
	ctrl *pager.Controller

	processor *input.Processor
	repeat    input.DirectionalInput
	pan       *pager.PanRecognizer
	finger    sdl.FingerID
	fingering bool

	devicePan  *pager.PanRecognizer
	deviceDown bool
	touches    <-chan touch.Sample

	loc    *locale.Localizer
	win    *render.Window
	layers *render.LayerCache
	icons  indicatorIcons

	running *atomic.Bool
	resized *atomic.Bool

	lastFrame time.Time
	log       *slog.Logger
}

// New creates a Host and its Controller. Nothing touches SDL until Run.
func New(opts Options) *Host {
	settings := opts.Settings

	return &Host{
		opts:      opts,
		ctrl:      pager.NewWithSettings(settings),
		processor: input.NewProcessor(),
		repeat:    input.NewDirectionalInputWithTiming(settings.RepeatDelay.Duration, settings.RepeatInterval.Duration),
		pan:       pager.NewPanRecognizer(settings.PanSlop),
		devicePan: pager.NewPanRecognizer(settings.PanSlop),
		loc:       locale.New(languages(opts.Language)...),
		running:   atomic.NewBool(false),
		resized:   atomic.NewBool(false),
		log:       logging.Internal(),
	}
}

func languages(lang string) []string {
	if lang == "" {
		return nil
	}
	return []string{lang}
}

// Controller returns the controller the host drives, for observers,
// animator changes and programmatic selection. It must only be used from
// the goroutine that calls Run, except for the methods the Controller
// documents as safe.
func (h *Host) Controller() *pager.Controller {
	return h.ctrl
}

// Stop ends Run after the current frame. Safe to call from any goroutine.
func (h *Host) Stop() {
	h.running.Store(false)
}

// Running reports whether the event loop is active.
func (h *Host) Running() bool {
	return h.running.Load()
}

// Run opens the window, shows pages and blocks until the window is closed,
// Stop is called or ctx is done. It returns pager.ErrNoScreens without
// opening a window when pages is empty.
func (h *Host) Run(ctx context.Context, pages []Page) error {
	if len(pages) == 0 {
		return pager.ErrNoScreens
	}

	if h.opts.Theme != nil {
		render.SetTheme(*h.opts.Theme)
	}

	win, err := render.Init(h.opts.Title, h.opts.Window)
	if err != nil {
		return err
	}
	defer render.Cleanup(win)

	h.win = win
	h.layers = render.NewLayerCache()
	defer h.layers.Destroy()

	h.loadIcons()
	defer h.icons.destroy()

	screens := make([]pager.Screen, len(pages))
	for i, p := range pages {
		screens[i] = p
	}
	h.ctrl.SetScreens(screens)
	h.layout()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	h.touches = h.startTouch(ctx, h.touchDevice())

	h.running.Store(true)
	defer h.running.Store(false)
	h.lastFrame = time.Now()

	logging.Logger().Info("Pager running", "pages", len(pages), "animator", h.opts.Settings.Animator.String())

	for h.running.Load() && ctx.Err() == nil {
		if event := sdl.WaitEventTimeout(16); event != nil {
			h.handleEvent(event)
			for event = sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
				h.handleEvent(event)
			}
		}

		h.drainTouches()
		h.handleDirectionalRepeats()

		if h.resized.CompareAndSwap(true, false) {
			h.layout()
		}

		now := time.Now()
		h.ctrl.Advance(now.Sub(h.lastFrame))
		h.lastFrame = now

		h.render()
		h.win.Present()
	}

	return nil
}

func (h *Host) touchDevice() string {
	if h.opts.TouchDevice != "" {
		return h.opts.TouchDevice
	}
	return os.Getenv(constants.TouchDeviceEnvVar)
}

// layout hands the window size to the controller. The indicator strip is
// passed as the layout guide so scrollable pages keep content above it.
func (h *Host) layout() {
	w, hgt := h.win.Size()

	var guide pager.Padding
	if h.opts.ShowIndicator {
		guide.Bottom = float64(constants.DefaultIndicatorHeight)
	}

	h.ctrl.Layout(pager.Rect{W: float64(w), H: float64(hgt)}, guide)
	h.log.Debug("Layout", "width", w, "height", hgt)
}
