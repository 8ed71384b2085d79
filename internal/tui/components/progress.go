package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"spendwise/internal/tui/theme"
)

// ProgressBar renders a block progress bar with a percent label.
func ProgressBar(pct float64, width int) string {
	t := theme.Active

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	filledStyle := lipgloss.NewStyle().Foreground(t.Accent)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	pctStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	return filledStyle.Render(strings.Repeat("█", filled)) +
		emptyStyle.Render(strings.Repeat("░", width-filled)) +
		" " + pctStyle.Render(fmt.Sprintf("%.0f%%", pct*100))
}

// ColorForUtilization maps a budget utilization level to a traffic-light
// color: green under half, then yellow, orange, and red at 90%+.
func ColorForUtilization(pct float64) string {
	t := theme.Active
	switch {
	case pct >= 0.9:
		return string(t.Red)
	case pct >= 0.7:
		return string(t.Orange)
	case pct >= 0.5:
		return string(t.Yellow)
	default:
		return string(t.Green)
	}
}

// GaugeBar renders a labeled utilization gauge with a percent readout:
// the budget and goal rows on the dashboard. pct may exceed 1 (over
// budget); the bar clamps while the label keeps the real percentage.
func GaugeBar(label string, pct float64, labelW, barW int) string {
	t := theme.Active

	fill := pct
	if fill < 0 {
		fill = 0
	}
	if fill > 1 {
		fill = 1
	}

	bar := progress.New(
		progress.WithSolidFill(ColorForUtilization(pct)),
		progress.WithWidth(barW),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	pctStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorForUtilization(pct))).Bold(true)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		" " + bar.ViewAs(fill) +
		" " + pctStyle.Render(fmt.Sprintf("%4.0f%%", pct*100))
}
