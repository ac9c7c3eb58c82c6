package tuipager

import "github.com/charmbracelet/lipgloss"

var (
	colorActive = lipgloss.Color("#FFFFFF")
	colorDim    = lipgloss.Color("#6B7280")
)

var (
	// ActiveDotStyle marks the highlighted page in the indicator.
	ActiveDotStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorActive)

	// DotStyle marks the other pages.
	DotStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	// CaptionStyle is the "2 of 5" text next to the dots.
	CaptionStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	// HelpStyle is the key help line.
	HelpStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Italic(true)

	// FadedStyle is applied on top of a page style while its layer is mostly transparent.
	FadedStyle = lipgloss.NewStyle().
			Faint(true)
)
