package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"spendwise/internal/cli"
	"spendwise/internal/tui/components"
	"spendwise/internal/tui/theme"
)

func (a App) renderGoalsTab(cw int) string {
	t := theme.Active
	snap := a.snap

	if len(snap.Goals) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).
			Render("\n  No savings goals yet.\n  Create one from the Savings goals menu.")
	}

	innerW := components.CardInnerWidth(cw)
	labelW := 16
	barW := innerW - labelW - 7
	if barW < 10 {
		barW = 10
	}

	detailStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	reachedStyle := lipgloss.NewStyle().Foreground(t.Green).Bold(true)
	overdueStyle := lipgloss.NewStyle().Foreground(t.Orange)

	now := time.Now()
	var body strings.Builder
	for i, g := range snap.Goals {
		if i > 0 {
			body.WriteString("\n")
		}

		body.WriteString(components.GaugeBar(truncStr(g.Name, labelW), g.Progress(), labelW, barW))
		body.WriteString("\n")

		detail := fmt.Sprintf("%-*s %s of %s", labelW, "",
			cli.FormatMoney(g.Saved), cli.FormatMoney(g.Target))
		body.WriteString(detailStyle.Render(detail))
		body.WriteString("  ")
		switch {
		case g.Reached():
			body.WriteString(reachedStyle.Render("✓ target reached"))
		case g.DaysLeft(now) < 0:
			body.WriteString(overdueStyle.Render(cli.FormatDaysLeft(g.DaysLeft(now))))
		default:
			body.WriteString(detailStyle.Render(cli.FormatDaysLeft(g.DaysLeft(now))))
		}
		body.WriteString("\n")
	}

	return components.ContentCard("Savings Goals", strings.TrimRight(body.String(), "\n"), cw)
}
