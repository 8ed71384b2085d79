package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"spendwise/internal/tui/theme"
)

// Tab is a single entry in the dashboard tab bar.
type Tab struct {
	Name string
	Key  rune // shortcut; always the first letter of the name
}

// Tabs defines the dashboard tabs, in display order.
var Tabs = []Tab{
	{Name: "Overview", Key: 'o'},
	{Name: "Budgets", Key: 'b'},
	{Name: "Goals", Key: 'g'},
	{Name: "Trends", Key: 't'},
}

// RenderTabBar renders the single-row tab bar with the given active index.
func RenderTabBar(activeIdx int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	inactiveStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	bracketStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	parts := make([]string, 0, len(Tabs))
	for i, tab := range Tabs {
		if i == activeIdx {
			parts = append(parts, activeStyle.Render(tab.Name))
			continue
		}
		// Inactive tabs highlight the shortcut letter: [O]verview
		parts = append(parts,
			bracketStyle.Render("[")+keyStyle.Render(string(tab.Name[0]))+bracketStyle.Render("]")+
				inactiveStyle.Render(tab.Name[1:]))
	}

	return " " + strings.Join(parts, "  ")
}

// TabVisualWidth is the rendered width of one tab, used for mouse hitboxes.
// Active tabs show the bare name; inactive tabs add the two bracket cells.
func TabVisualWidth(tab Tab, active bool) int {
	if active {
		return len(tab.Name)
	}
	return len(tab.Name) + 2
}

// TabIdxByKey returns the tab index for a shortcut key, or -1.
func TabIdxByKey(key rune) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}
