package components

import (
	"github.com/charmbracelet/lipgloss"

	"spendwise/internal/tui/theme"
)

// RenderStatusBar renders the bottom status bar: key hints on the left,
// the viewed month on the right.
func RenderStatusBar(width int, period string) string {
	t := theme.Active

	style := lipgloss.NewStyle().Foreground(t.TextMuted).Width(width)

	left := " [?]help  [r]efresh  [q]uit"
	right := ""
	if period != "" {
		right = "Viewing " + period + " "
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}
