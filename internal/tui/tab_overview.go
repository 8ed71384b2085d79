package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"spendwise/internal/cli"
	"spendwise/internal/tui/components"
	"spendwise/internal/tui/theme"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	snap := a.snap
	var b strings.Builder

	netNote := "in the black"
	if snap.Summary.Net().Sign() < 0 {
		netNote = "overspent"
	}

	metrics := []components.Metric{
		{Label: "Income", Value: cli.FormatMoney(snap.Summary.Income), Note: snap.Period.String()},
		{Label: "Expenses", Value: cli.FormatMoney(snap.Summary.Expenses), Note: snap.Period.String()},
		{Label: "Net", Value: cli.FormatSignedMoney(snap.Summary.Net()), Note: netNote},
		{Label: "Balance", Value: cli.FormatSignedMoney(snap.Balance.Net()), Note: "all time"},
	}
	b.WriteString(components.MetricCardRow(metrics, cw))
	b.WriteString("\n")

	// Monthly spending chart over the trailing year
	if len(snap.Series) > 0 {
		values := make([]float64, len(snap.Series))
		labels := make([]string, len(snap.Series))
		for i, ms := range snap.Series {
			values[i] = ms.Expenses.InexactFloat64()
			labels[i] = ms.Month.Start().Format("Jan")
		}
		b.WriteString(components.ContentCard(
			"Monthly Spending",
			components.BarChart(values, labels, t.Blue, components.CardInnerWidth(cw), 8),
			cw,
		))
		b.WriteString("\n")
	}

	// Top expense categories for the viewed month
	if len(snap.Breakdown) > 0 {
		innerW := components.CardInnerWidth(cw)
		nameW := 16
		amountW := 12
		barW := innerW - nameW - amountW - 2
		if barW < 8 {
			barW = 8
		}

		maxTotal := snap.Breakdown[0].Total.InexactFloat64()
		if maxTotal <= 0 {
			maxTotal = 1
		}

		nameStyle := lipgloss.NewStyle().Foreground(t.Cyan)
		barStyle := lipgloss.NewStyle().Foreground(t.Accent)
		amountStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

		var body strings.Builder
		rows := snap.Breakdown
		if len(rows) > 6 {
			rows = rows[:6]
		}
		for _, cs := range rows {
			barLen := int(cs.Total.InexactFloat64() / maxTotal * float64(barW))
			if barLen < 1 {
				barLen = 1
			}
			body.WriteString(nameStyle.Render(fmt.Sprintf("%-*s", nameW, truncStr(cs.Category, nameW))))
			body.WriteString(" ")
			body.WriteString(barStyle.Render(strings.Repeat("█", barLen)))
			body.WriteString(strings.Repeat(" ", barW-barLen))
			body.WriteString(amountStyle.Render(fmt.Sprintf(" %*s", amountW, cli.FormatMoney(cs.Total))))
			body.WriteString("\n")
		}
		b.WriteString(components.ContentCard(
			fmt.Sprintf("Top Categories — %s", snap.Period),
			strings.TrimRight(body.String(), "\n"),
			cw,
		))
	} else {
		empty := lipgloss.NewStyle().Foreground(t.TextDim).
			Render(fmt.Sprintf("\n  No expenses recorded for %s.", snap.Period))
		b.WriteString(empty)
	}

	return b.String()
}
