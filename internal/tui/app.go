// Package tui provides the read-only Bubble Tea dashboard reached from the
// menu. Every view is rebuilt from fresh store aggregates on load, refresh,
// and month navigation.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"spendwise/internal/budget"
	"spendwise/internal/ledger"
	"spendwise/internal/model"
	"spendwise/internal/report"
	"spendwise/internal/tui/components"
	"spendwise/internal/tui/theme"
)

const (
	minTerminalWidth = 70
	maxContentWidth  = 140
	minContentHeight = 5

	// Trailing window sizes for the chart and trend views.
	seriesMonths = 12
	trendMonths  = 6
)

// snapshot holds everything the dashboard shows for one viewed month.
type snapshot struct {
	Period    model.Period
	Summary   model.Summary           // viewed month totals
	Balance   model.Summary           // all-time totals; Net is the balance
	Series    []model.MonthlySummary  // trailing months, chronological
	Breakdown []model.CategorySummary // viewed month expenses per category
	Budgets   []model.BudgetStatus
	Goals     []model.Goal
	Trend     []model.TrendRow // month × category expense aggregates
}

// dataMsg delivers a freshly computed snapshot, or the storage error that
// interrupted it.
type dataMsg struct {
	snap snapshot
	err  error
}

// App is the root Bubble Tea model.
type App struct {
	ledger   *ledger.Service
	tracker  *budget.Tracker
	reporter *report.Reporter

	snap    snapshot
	loaded  bool
	loadErr error

	period    model.Period
	width     int
	height    int
	activeTab int
	showHelp  bool

	spinner spinner.Model
}

// NewApp creates the dashboard model, viewing the current month.
func NewApp(l *ledger.Service, t *budget.Tracker, r *report.Reporter) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	return App{
		ledger:   l,
		tracker:  t,
		reporter: r,
		period:   model.PeriodOf(time.Now()),
		spinner:  sp,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnableMouseCellMotion,
		loadSnapshotCmd(a.ledger, a.tracker, a.reporter, a.period),
		a.spinner.Tick,
	)
}

// loadSnapshotCmd runs the dashboard queries and delivers the result. Each
// aggregate is a full scan; nothing is kept between loads.
func loadSnapshotCmd(l *ledger.Service, t *budget.Tracker, r *report.Reporter, period model.Period) tea.Cmd {
	return func() tea.Msg {
		snap := snapshot{Period: period}

		var err error
		if snap.Summary, err = r.MonthlySummary(period); err != nil {
			return dataMsg{err: err}
		}
		if snap.Balance.Income, err = l.Total(model.KindIncome); err != nil {
			return dataMsg{err: err}
		}
		if snap.Balance.Expenses, err = l.Total(model.KindExpense); err != nil {
			return dataMsg{err: err}
		}
		if snap.Series, err = r.MonthlySeries(period.AddMonths(-(seriesMonths-1)), period); err != nil {
			return dataMsg{err: err}
		}
		if snap.Breakdown, err = r.Breakdown(model.KindExpense, period); err != nil {
			return dataMsg{err: err}
		}
		if snap.Budgets, err = t.CheckAll(period); err != nil {
			return dataMsg{err: err}
		}
		if snap.Goals, err = t.Goals(); err != nil {
			return dataMsg{err: err}
		}
		if snap.Trend, err = r.MonthlyTrend(model.KindExpense, period.AddMonths(-(trendMonths-1)), period); err != nil {
			return dataMsg{err: err}
		}

		return dataMsg{snap: snap}
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.MouseMsg:
		if msg.Button == tea.MouseButtonLeft && msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case dataMsg:
		a.loaded = true
		a.loadErr = msg.err
		if msg.err == nil {
			a.snap = msg.snap
		}
		return a, nil

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" || key == "q" {
		return a, tea.Quit
	}

	if a.showHelp {
		a.showHelp = false
		return a, nil
	}
	if key == "?" {
		a.showHelp = true
		return a, nil
	}

	if !a.loaded {
		return a, nil
	}

	switch key {
	case "left", "h":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
	case "right", "l":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
	case "[":
		a.period = a.period.AddMonths(-1)
		a.loaded = false
		return a, tea.Batch(a.reload(), a.spinner.Tick)
	case "]":
		a.period = a.period.AddMonths(1)
		a.loaded = false
		return a, tea.Batch(a.reload(), a.spinner.Tick)
	case "r":
		a.loaded = false
		return a, tea.Batch(a.reload(), a.spinner.Tick)
	default:
		if len(key) == 1 {
			if tab := components.TabIdxByKey(rune(key[0])); tab >= 0 {
				a.activeTab = tab
			}
		}
	}

	return a, nil
}

func (a App) reload() tea.Cmd {
	return loadSnapshotCmd(a.ledger, a.tracker, a.reporter, a.period)
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if !a.loaded {
		return a.viewLoading()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  The dashboard needs at least %d columns.\n",
		a.width, minTerminalWidth,
	)
	return padHeight(msg, a.height)
}

func (a App) viewLoading() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	subtitleStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	card := cardStyle.Render(
		titleStyle.Render("◈ spendwise") + "\n\n" +
			a.spinner.View() + subtitleStyle.Render(" Summing the ledger..."))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	bindings := []struct{ key, desc string }{
		{"o b g t", "Jump to tab"},
		{"← →", "Previous / next tab"},
		{"[ ]", "Previous / next month"},
		{"r", "Reload from the ledger"},
		{"?", "Toggle help"},
		{"q", "Back to the menu"},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")
	for _, bind := range bindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-8s", bind.key)),
			descStyle.Render(bind.desc))
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

func (a App) viewMain() string {
	t := theme.Active
	cw := a.contentWidth()

	periodStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	header := components.RenderTabBar(a.activeTab) +
		"\n " + periodStyle.Render(a.period.String())

	statusBar := components.RenderStatusBar(a.width, a.period.String())

	contentH := a.height - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	if a.loadErr != nil {
		content = lipgloss.NewStyle().Foreground(t.Red).
			Render(fmt.Sprintf("\n  Load failed: %v\n\n  Press r to retry.", a.loadErr))
	} else {
		switch a.activeTab {
		case 0:
			content = a.renderOverviewTab(cw)
		case 1:
			content = a.renderBudgetsTab(cw)
		case 2:
			content = a.renderGoalsTab(cw)
		case 3:
			content = a.renderTrendsTab(cw)
		}
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.PlaceHorizontal(a.width, lipgloss.Center, content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

// tabAtX returns the tab index at the given X coordinate, or -1. Hitboxes
// follow the width rules of RenderTabBar: a leading space, two-space
// separators, and brackets around inactive shortcut letters.
func (a App) tabAtX(x int) int {
	pos := 1
	for i, tab := range components.Tabs {
		w := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+w {
			return i
		}
		pos += w + 2
	}
	return -1
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}
