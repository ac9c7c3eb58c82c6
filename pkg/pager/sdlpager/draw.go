package sdlpager

import (
	"math"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/pager/pkg/pager"
	"github.com/BrandonKowalski/pager/pkg/pager/constants"
	"github.com/BrandonKowalski/pager/pkg/pager/internal/render"
)

const (
	dotSize     int32 = 10
	dotSpacing  int32 = 18
	chevronSize int32 = 20
)

type indicatorIcons struct {
	dot, left, right *render.Icon
}

func (h *Host) loadIcons() {
	if !h.opts.ShowIndicator {
		return
	}

	var err error
	r := h.win.Renderer
	if h.icons.dot, err = render.NewIcon(r, constants.DotSVG, dotSize); err != nil {
		h.log.Error("Failed to load indicator dot", "error", err)
	}
	if h.icons.left, err = render.NewIcon(r, constants.ChevronLeftSVG, chevronSize); err != nil {
		h.log.Error("Failed to load chevron", "error", err)
	}
	if h.icons.right, err = render.NewIcon(r, constants.ChevronRightSVG, chevronSize); err != nil {
		h.log.Error("Failed to load chevron", "error", err)
	}
}

func (i *indicatorIcons) destroy() {
	i.dot.Destroy()
	i.left.Destroy()
	i.right.Destroy()
	*i = indicatorIcons{}
}

func (h *Host) render() {
	h.win.RenderBackground()

	for _, s := range h.ctrl.Hierarchy() {
		if page, ok := s.(Page); ok {
			h.drawPage(page)
		}
	}

	if h.opts.ShowIndicator {
		h.drawIndicator()
	}
}

func (h *Host) drawPage(page Page) {
	r := h.win.Renderer
	l := page.Layer()
	if l.Frame.Empty() || l.Alpha <= 0 {
		return
	}
	rect := layerRect(l)

	tex, fresh, err := h.layers.Target(r, page, rect.W, rect.H)
	if err != nil {
		h.log.Error("Failed to create page texture", "error", err)
		return
	}

	if fresh || needsRedraw(page) {
		r.SetRenderTarget(tex)
		r.SetDrawColor(0, 0, 0, 0)
		r.Clear()
		page.Draw(r, rect.W, rect.H)
		r.SetRenderTarget(nil)
	}

	tex.SetAlphaMod(alphaMod(l.Alpha))
	r.Copy(tex, nil, &rect)
}

func (h *Host) drawIndicator() {
	r := h.win.Renderer
	theme := render.GetTheme()
	w, hgt := h.win.Size()

	count := len(h.ctrl.Screens())
	active := indicatorIndex(h.ctrl)
	cy := hgt - constants.DefaultIndicatorHeight/2

	xs := dotPositions(count, w/2)
	if h.icons.dot != nil {
		for i, x := range xs {
			color := theme.IndicatorColor
			if i == active {
				color = theme.ActiveIndicatorColor
			}
			h.icons.dot.Draw(r, x, cy, color)
		}
	}

	if len(xs) > 0 {
		if active > 0 && h.icons.left != nil {
			h.icons.left.Draw(r, xs[0]-dotSpacing, cy, theme.IndicatorColor)
		}
		if active < count-1 && h.icons.right != nil {
			h.icons.right.Draw(r, xs[len(xs)-1]+dotSpacing, cy, theme.IndicatorColor)
		}
	}

	if render.HasFont() && count > 0 {
		caption := h.loc.PageIndicator(active, count)
		render.DrawText(r, caption, w/2, hgt-constants.DefaultIndicatorHeight-int32(theme.FontSize)-4, theme.TextColor)
	}
}

// indicatorIndex is the page the indicator highlights: the target of a
// transition once it is more than half way, otherwise the selection.
func indicatorIndex(c *pager.Controller) int {
	if from, to, _, progress, ok := c.Transition(); ok {
		if progress >= 0.5 {
			return to
		}
		return from
	}
	i, _ := c.SelectedIndex()
	return i
}

// dotPositions centers count dots on cx.
func dotPositions(count int, cx int32) []int32 {
	if count <= 0 {
		return nil
	}
	start := cx - dotSpacing*int32(count-1)/2
	xs := make([]int32, count)
	for i := range xs {
		xs[i] = start + int32(i)*dotSpacing
	}
	return xs
}

func layerRect(l *pager.Layer) sdl.Rect {
	return sdl.Rect{
		X: int32(math.Round(l.Frame.X)),
		Y: int32(math.Round(l.Frame.Y)),
		W: int32(math.Round(l.Frame.W)),
		H: int32(math.Round(l.Frame.H)),
	}
}

func alphaMod(alpha float64) uint8 {
	return uint8(math.Round(min(max(alpha, 0), 1) * 255))
}
