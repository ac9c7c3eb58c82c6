package tuipager

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/BrandonKowalski/pager/pkg/pager"
)

// Layers are positioned in container units. One terminal cell is cellWidth
// by cellHeight units, which keeps the drag thresholds close to what they
// mean on a pixel display.
const (
	cellWidth  = 8
	cellHeight = 16
)

// fadeThreshold is the alpha below which a layer is drawn faint, and
// hiddenThreshold the alpha below which it is not drawn at all.
const (
	fadeThreshold   = 0.5
	hiddenThreshold = 0.05
)

type cell struct {
	r     rune
	layer int // index into the styles of compose, -1 for empty
}

// compose draws pages bottom to top into a width x height grid, each at
// its layer frame, and returns the styled lines.
func compose(pages []Page, width, height int) []string {
	if width <= 0 || height <= 0 {
		return nil
	}

	grid := make([][]cell, height)
	for y := range grid {
		grid[y] = make([]cell, width)
		for x := range grid[y] {
			grid[y][x] = cell{r: ' ', layer: -1}
		}
	}

	styles := make([]lipgloss.Style, len(pages))
	for i, p := range pages {
		l := p.Layer()
		if l.Alpha < hiddenThreshold {
			continue
		}
		styles[i] = pageStyle(p)
		if l.Alpha < fadeThreshold {
			styles[i] = FadedStyle.Inherit(styles[i])
		}

		x0, y0, w, h := cellRect(l.Frame)
		lines := strings.Split(p.View(w, h), "\n")

		for dy := 0; dy < h; dy++ {
			y := y0 + dy
			if y < 0 || y >= height {
				continue
			}
			var line []rune
			if dy < len(lines) {
				line = []rune(lines[dy])
			}
			for dx := 0; dx < w; dx++ {
				x := x0 + dx
				if x < 0 || x >= width {
					continue
				}
				r := ' '
				if dx < len(line) {
					r = line[dx]
				}
				grid[y][x] = cell{r: r, layer: i}
			}
		}
	}

	out := make([]string, height)
	for y, row := range grid {
		out[y] = renderRow(row, styles)
	}
	return out
}

// renderRow styles runs of cells that belong to the same layer.
func renderRow(row []cell, styles []lipgloss.Style) string {
	var b strings.Builder
	start := 0
	for x := 1; x <= len(row); x++ {
		if x < len(row) && row[x].layer == row[start].layer {
			continue
		}
		run := make([]rune, 0, x-start)
		for _, c := range row[start:x] {
			run = append(run, c.r)
		}
		if layer := row[start].layer; layer >= 0 {
			b.WriteString(styles[layer].Render(string(run)))
		} else {
			b.WriteString(string(run))
		}
		start = x
	}
	return b.String()
}

func cellRect(r pager.Rect) (x, y, w, h int) {
	return int(math.Round(r.X / cellWidth)),
		int(math.Round(r.Y / cellHeight)),
		int(math.Round(r.W / cellWidth)),
		int(math.Round(r.H / cellHeight))
}

func cellPoint(x, y int) pager.Point {
	return pager.Point{X: float64(x) * cellWidth, Y: float64(y) * cellHeight}
}
