// Command pagerdemo shows a row of colored pages in an SDL window, or in the
// terminal with --tui. Use the arrow keys, shoulder buttons, mouse or touch
// to page. In the window Select switches the animator, Start toggles
// animation and B quits.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"github.com/spf13/pflag"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/pager/pkg/pager"
	"github.com/BrandonKowalski/pager/pkg/pager/locale"
	"github.com/BrandonKowalski/pager/pkg/pager/sdlpager"
	"github.com/BrandonKowalski/pager/pkg/pager/tuipager"
)

func init() {
	// SDL must be driven from the main thread.
	runtime.LockOSThread()
}

func main() {
	var (
		configPath  = pflag.StringP("config", "c", "", "Path to a TOML or YAML settings file")
		logLevel    = pflag.String("log-level", "", "Log level: debug, info, warn or error (overrides the settings file)")
		logPath     = pflag.String("log-path", "", "Also write logs to this file")
		animator    = pflag.StringP("animator", "a", "", "Transition animator: slide or parallax (overrides the settings file)")
		pageCount   = pflag.IntP("pages", "n", 5, "Number of demo pages")
		language    = pflag.String("lang", "", "Caption language: "+languages()+" (default from LANG)")
		touchDevice = pflag.String("touch-device", "", "evdev touchscreen device, e.g. /dev/input/event2")
		fontPath    = pflag.String("font", "", "TTF font for the page caption")
		noIndicator = pflag.Bool("no-indicator", false, "Hide the page indicator")
		fullscreen  = pflag.Bool("fullscreen", false, "Open a fullscreen window")
		terminal    = pflag.Bool("tui", false, "Run in the terminal instead of an SDL window")
	)
	pflag.Parse()

	if err := checkPageCount(*pageCount); err != nil {
		fmt.Fprintf(os.Stderr, "pagerdemo: %v\n", err)
		pflag.Usage()
		os.Exit(2)
	}

	if *logPath != "" {
		pager.SetLogPath(*logPath)
	}
	defer pager.CloseLogger()

	settings, err := loadSettings(*configPath, *animator)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pagerdemo: %v\n", err)
		os.Exit(1)
	}
	if *logLevel != "" {
		settings.LogLevel = *logLevel
	}
	pager.SetLogLevel(settings.LogLevel)

	opts := sdlpager.DefaultOptions()
	opts.Title = "Pager Demo"
	opts.Settings = settings
	opts.Language = *language
	opts.TouchDevice = *touchDevice
	opts.ShowIndicator = !*noIndicator
	opts.Window = sdlpager.WindowOptions{Resizable: true, FullscreenDesktop: *fullscreen, Width: 800, Height: 480}

	theme := sdlpager.DefaultTheme()
	theme.FontPath = *fontPath
	opts.Theme = &theme

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *terminal {
		err = runTerminal(ctx, settings, *language, *pageCount)
	} else {
		err = run(ctx, opts, *pageCount)
	}
	if err != nil {
		pager.GetLogger().Error("Demo failed", "error", err)
		stop()
		pager.CloseLogger()
		os.Exit(1)
	}
}

func loadSettings(path, animator string) (pager.Settings, error) {
	settings := pager.DefaultSettings()
	if path != "" {
		var err error
		if settings, err = pager.LoadSettings(path); err != nil {
			return settings, err
		}
	}

	if animator != "" {
		if err := settings.Animator.UnmarshalText([]byte(animator)); err != nil {
			return settings, fmt.Errorf("--animator: %w", err)
		}
	}
	return settings, nil
}

// languages lists the caption languages, e.g. "en, de".
func languages() string {
	tags := locale.Tags()
	names := make([]string, len(tags))
	for i, tag := range tags {
		names[i] = tag.String()
	}
	return strings.Join(names, ", ")
}

func checkPageCount(count int) error {
	if count < 0 {
		return fmt.Errorf("--pages must not be negative, got %d", count)
	}
	return nil
}

func run(ctx context.Context, opts sdlpager.Options, count int) error {
	host := sdlpager.New(opts)
	log := pager.GetLogger()

	host.Controller().SetObserver(pager.ObserverFuncs{
		OnDidMove: func(c *pager.Controller, to pager.Screen) {
			if p, ok := to.(*colorPage); ok {
				log.Info("Page shown", "page", p.name)
			}
		},
	})

	return host.Run(ctx, demoPages(count))
}

func runTerminal(ctx context.Context, settings pager.Settings, language string, count int) error {
	pages := make([]tuipager.Page, 0, count)
	for _, p := range demoPages(count) {
		pages = append(pages, p.(*colorPage))
	}
	return tuipager.Run(ctx, pages, settings, language)
}

var palette = []sdl.Color{
	sdlpager.HexToColor(0xC0392B),
	sdlpager.HexToColor(0x2980B9),
	sdlpager.HexToColor(0x27AE60),
	sdlpager.HexToColor(0x8E44AD),
	sdlpager.HexToColor(0xD35400),
	sdlpager.HexToColor(0x16A085),
}

func demoPages(count int) []sdlpager.Page {
	pages := make([]sdlpager.Page, 0, count)
	for i := range count {
		pages = append(pages, &colorPage{
			name:  fmt.Sprintf("page-%d", i+1),
			color: palette[i%len(palette)],
			bars:  i + 1,
		})
	}
	return pages
}
