package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/pager/pkg/pager"
)

// colorPage fills its layer with a color and draws one bar per page number
// so pages can be told apart mid-transition.
type colorPage struct {
	layer pager.Layer
	name  string
	color sdl.Color
	bars  int
}

func (p *colorPage) Layer() *pager.Layer {
	return &p.layer
}

func (p *colorPage) Draw(r *sdl.Renderer, width, height int32) {
	r.SetDrawColor(p.color.R, p.color.G, p.color.B, 255)
	r.FillRect(&sdl.Rect{W: width, H: height})

	r.SetDrawColor(255, 255, 255, 200)
	for _, bar := range barRects(p.bars, width, height) {
		r.FillRect(&bar)
	}
}

// View draws the page name and its bars as text for the terminal host.
func (p *colorPage) View(width, height int) string {
	lines := make([]string, height)
	bars := strings.TrimSpace(strings.Repeat("█ ", p.bars))
	for y := range lines {
		switch y {
		case height / 3:
			lines[y] = center(p.name, width)
		case height/3 + 2:
			lines[y] = center(bars, width)
		}
	}
	return strings.Join(lines, "\n")
}

func (p *colorPage) Style() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", p.color.R, p.color.G, p.color.B)))
}

func center(s string, width int) string {
	pad := (width - len([]rune(s))) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}

func (p *colorPage) DidAttach(c *pager.Controller) {
	pager.GetLogger().Debug("Page attached", "page", p.name)
}

func (p *colorPage) DidDetach(c *pager.Controller) {
	pager.GetLogger().Debug("Page detached", "page", p.name)
}

// barRects lays out n vertical bars centered in a width x height page.
func barRects(n int, width, height int32) []sdl.Rect {
	if n <= 0 {
		return nil
	}
	const barWidth, gap int32 = 16, 12

	total := int32(n)*barWidth + int32(n-1)*gap
	x := (width - total) / 2
	barHeight := height / 3

	rects := make([]sdl.Rect, n)
	for i := range rects {
		rects[i] = sdl.Rect{X: x, Y: (height - barHeight) / 2, W: barWidth, H: barHeight}
		x += barWidth + gap
	}
	return rects
}
