package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"spendwise/internal/tui/theme"
)

var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders a unicode sparkline scaled against the series peak.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}

	peak := values[0]
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	var b strings.Builder
	b.Grow(len(values) * 3) // block runes are 3 bytes in UTF-8
	for _, v := range values {
		idx := int(v / peak * float64(len(sparkBlocks)-1))
		if idx >= len(sparkBlocks) {
			idx = len(sparkBlocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		b.WriteRune(sparkBlocks[idx])
	}

	return lipgloss.NewStyle().Foreground(color).Render(b.String())
}

// BarChart renders a vertical bar chart with a labeled dollar Y axis.
// labels, when provided, must match values and are spread along the X axis.
// Falls back to a sparkline when the area is too small for axes.
func BarChart(values []float64, labels []string, color lipgloss.Color, width, height int) string {
	if len(values) == 0 {
		return ""
	}
	if width < 15 || height < 3 {
		return Sparkline(values, color)
	}

	t := theme.Active

	maxVal := 0.0
	for _, v := range values {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}
	ceiling := chartCeiling(maxVal)

	yLabelW := len(dollarLabel(ceiling))
	if yLabelW < 5 {
		yLabelW = 5
	}

	chartW := width - yLabelW - 1
	if chartW < 5 {
		chartW = 5
	}

	// Bar sizing: fixed gap of one, bars at least two cells wide. When the
	// series does not fit, keep the most recent entries.
	n := len(values)
	maxBars := (chartW + 1) / 3
	if maxBars < 1 {
		maxBars = 1
	}
	if n > maxBars {
		values = values[n-maxBars:]
		if len(labels) == n {
			labels = labels[n-maxBars:]
		}
		n = maxBars
	}
	barW := (chartW - (n - 1)) / n
	if barW < 2 {
		barW = 2
	}
	if barW > 6 {
		barW = 6
	}
	axisLen := n*barW + n - 1

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	barStyle := lipgloss.NewStyle().Foreground(color)

	var b strings.Builder

	for row := height; row >= 1; row-- {
		rowTop := ceiling * float64(row) / float64(height)
		rowBottom := ceiling * float64(row-1) / float64(height)

		// Tick labels at the top and the midpoint
		label := ""
		switch row {
		case height:
			label = dollarLabel(ceiling)
		case (height + 1) / 2:
			label = dollarLabel(ceiling / 2)
		}
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, label)))
		b.WriteString(axisStyle.Render("│"))

		for i, v := range values {
			if i > 0 {
				b.WriteString(" ")
			}
			switch {
			case v >= rowTop:
				b.WriteString(barStyle.Render(strings.Repeat("█", barW)))
			case v > rowBottom:
				frac := (v - rowBottom) / (rowTop - rowBottom)
				idx := int(frac * float64(len(sparkBlocks)))
				if idx >= len(sparkBlocks) {
					idx = len(sparkBlocks) - 1
				}
				b.WriteString(barStyle.Render(strings.Repeat(string(sparkBlocks[idx]), barW)))
			default:
				b.WriteString(strings.Repeat(" ", barW))
			}
		}
		b.WriteString("\n")
	}

	// X axis with the zero label
	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, "0")))
	b.WriteString(axisStyle.Render("└" + strings.Repeat("─", axisLen)))

	if len(labels) == n {
		b.WriteString("\n")
		b.WriteString(strings.Repeat(" ", yLabelW+1))
		b.WriteString(axisStyle.Render(spreadLabels(labels, barW, axisLen)))
	}

	return b.String()
}

// spreadLabels places as many bar labels as fit along the axis, skipping
// those that would collide with an earlier one.
func spreadLabels(labels []string, barW, axisLen int) string {
	buf := make([]byte, axisLen)
	for i := range buf {
		buf[i] = ' '
	}

	lastEnd := -2
	for i, lbl := range labels {
		pos := i * (barW + 1)
		end := pos + len(lbl)
		if pos <= lastEnd+1 || end > axisLen {
			continue
		}
		copy(buf[pos:end], lbl)
		lastEnd = end
	}

	return strings.TrimRight(string(buf), " ")
}

// chartCeiling rounds maxVal up to a clean chart ceiling (1/2/5 × 10ⁿ).
func chartCeiling(maxVal float64) float64 {
	exp := math.Floor(math.Log10(maxVal))
	base := math.Pow(10, exp)
	frac := maxVal / base

	switch {
	case frac <= 1:
		return base
	case frac <= 2:
		return 2 * base
	case frac <= 5:
		return 5 * base
	default:
		return 10 * base
	}
}

// dollarLabel renders a compact dollar amount for axis ticks.
func dollarLabel(v float64) string {
	switch {
	case v >= 1e6:
		if v == math.Trunc(v/1e6)*1e6 {
			return fmt.Sprintf("$%.0fM", v/1e6)
		}
		return fmt.Sprintf("$%.1fM", v/1e6)
	case v >= 1e3:
		if v == math.Trunc(v/1e3)*1e3 {
			return fmt.Sprintf("$%.0fk", v/1e3)
		}
		return fmt.Sprintf("$%.1fk", v/1e3)
	default:
		return fmt.Sprintf("$%.0f", v)
	}
}
