package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"spendwise/internal/cli"
	"spendwise/internal/tui/components"
	"spendwise/internal/tui/theme"
)

func (a App) renderBudgetsTab(cw int) string {
	t := theme.Active
	snap := a.snap

	if len(snap.Budgets) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).
			Render(fmt.Sprintf("\n  No budgets set for %s.\n  Set one from the Budgets menu.", snap.Period))
	}

	innerW := components.CardInnerWidth(cw)
	labelW := 16
	barW := innerW - labelW - 7 // gauge + percent readout
	if barW < 10 {
		barW = 10
	}

	withinStyle := lipgloss.NewStyle().Foreground(t.Green)
	overStyle := lipgloss.NewStyle().Foreground(t.Red).Bold(true)
	detailStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	over := 0
	var body strings.Builder
	for i, st := range snap.Budgets {
		if i > 0 {
			body.WriteString("\n")
		}

		body.WriteString(components.GaugeBar(truncStr(st.Category, labelW), st.Utilization(), labelW, barW))
		body.WriteString("\n")

		detail := fmt.Sprintf("%-*s %s of %s", labelW, "",
			cli.FormatMoney(st.Spent), cli.FormatMoney(st.Limit))
		body.WriteString(detailStyle.Render(detail))
		body.WriteString("  ")
		if st.Over() {
			over++
			body.WriteString(overStyle.Render(st.Verdict()))
		} else {
			body.WriteString(withinStyle.Render(st.Verdict()))
		}
		body.WriteString("\n")
	}

	title := fmt.Sprintf("Budgets — %s", snap.Period)
	if over > 0 {
		title += fmt.Sprintf(" (%d over)", over)
	}
	return components.ContentCard(title, strings.TrimRight(body.String(), "\n"), cw)
}
