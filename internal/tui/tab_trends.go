package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"spendwise/internal/cli"
	"spendwise/internal/tui/components"
	"spendwise/internal/tui/theme"
)

func (a App) renderTrendsTab(cw int) string {
	t := theme.Active
	snap := a.snap
	var b strings.Builder

	// Expense sparkline over the trailing year
	if len(snap.Series) > 0 {
		values := make([]float64, len(snap.Series))
		var first, last string
		for i, ms := range snap.Series {
			values[i] = ms.Expenses.InexactFloat64()
		}
		first = snap.Series[0].Month.String()
		last = snap.Series[len(snap.Series)-1].Month.String()

		rangeStyle := lipgloss.NewStyle().Foreground(t.TextDim)
		body := components.Sparkline(values, t.Blue) + "\n" +
			rangeStyle.Render(fmt.Sprintf("%s … %s", first, last))
		b.WriteString(components.ContentCard("Expense Pulse", body, cw))
		b.WriteString("\n")
	}

	if len(snap.Trend) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(t.TextDim).
			Render("\n  No expenses recorded in the trend window."))
		return b.String()
	}

	// Month × category table; the month column only prints on change
	innerW := components.CardInnerWidth(cw)
	countW := 6
	totalW := 12
	monthW := 8
	nameW := innerW - monthW - countW - totalW - 3
	if nameW < 12 {
		nameW = 12
	}

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	ruleStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	monthStyle := lipgloss.NewStyle().Foreground(t.Yellow)
	nameStyle := lipgloss.NewStyle().Foreground(t.Cyan)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var body strings.Builder
	body.WriteString(headerStyle.Render(fmt.Sprintf("%-*s %-*s %*s %*s",
		monthW, "Month", nameW, "Category", countW, "Count", totalW, "Total")))
	body.WriteString("\n")
	body.WriteString(ruleStyle.Render(strings.Repeat("─", innerW)))
	body.WriteString("\n")

	prevMonth := ""
	for _, row := range snap.Trend {
		month := row.Month.String()
		shown := month
		if month == prevMonth {
			shown = ""
		}
		prevMonth = month

		body.WriteString(monthStyle.Render(fmt.Sprintf("%-*s", monthW, shown)))
		body.WriteString(" ")
		body.WriteString(nameStyle.Render(fmt.Sprintf("%-*s", nameW, truncStr(row.Category, nameW))))
		body.WriteString(rowStyle.Render(fmt.Sprintf(" %*d %*s",
			countW, row.Count, totalW, cli.FormatMoney(row.Total))))
		body.WriteString("\n")
	}

	b.WriteString(components.ContentCard("Spending Trend", strings.TrimRight(body.String(), "\n"), cw))
	return b.String()
}
