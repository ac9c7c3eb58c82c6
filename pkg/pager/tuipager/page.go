package tuipager

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/BrandonKowalski/pager/pkg/pager"
)

// Page is a screen the terminal host can show. View returns plain text for
// a width x height cell area; lines are clipped, not wrapped.
type Page interface {
	pager.Screen
	View(width, height int) string
}

// Styler is implemented by pages that want their text styled.
type Styler interface {
	Style() lipgloss.Style
}

func pageStyle(p Page) lipgloss.Style {
	if s, ok := p.(Styler); ok {
		return s.Style()
	}
	return lipgloss.NewStyle()
}
