// Package menu implements the interactive prompt loop. Every operation is
// reached through menu choices; there is no flag or subcommand grammar.
package menu

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"spendwise/internal/budget"
	"spendwise/internal/cli"
	"spendwise/internal/ledger"
	"spendwise/internal/model"
	"spendwise/internal/report"
	"spendwise/internal/store"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(cli.ColorGreen)
	errorStyle   = lipgloss.NewStyle().Foreground(cli.ColorRed)
	warnStyle    = lipgloss.NewStyle().Foreground(cli.ColorOrange)
	mutedStyle   = lipgloss.NewStyle().Foreground(cli.ColorTextMuted)
)

var (
	errNoCategories = errors.New("no categories yet, add one first")
	errNoGoals      = errors.New("no goals yet, create one first")
)

// Menu drives the interactive session over the ledger, tracker, and
// reporter services.
type Menu struct {
	ledger    *ledger.Service
	tracker   *budget.Tracker
	reporter  *report.Reporter
	dashboard func() error
	out       io.Writer
}

// New creates the menu. dashboard launches the full-screen view and
// returns when the user leaves it.
func New(l *ledger.Service, t *budget.Tracker, r *report.Reporter, dashboard func() error) *Menu {
	return &Menu{ledger: l, tracker: t, reporter: r, dashboard: dashboard, out: os.Stdout}
}

const (
	choiceExpenses  = "expenses"
	choiceIncome    = "income"
	choiceBudgets   = "budgets"
	choiceGoals     = "goals"
	choiceReports   = "reports"
	choiceDashboard = "dashboard"
	choiceBack      = "back"
	choiceQuit      = "quit"
)

// Run loops on the main menu until the user quits. Storage failures are
// returned; everything else is reported inline.
func (m *Menu) Run() error {
	fmt.Fprintln(m.out, cli.RenderTitle("spendwise"))

	for {
		choice, err := m.pick("Main menu", []huh.Option[string]{
			huh.NewOption("Expenses", choiceExpenses),
			huh.NewOption("Income", choiceIncome),
			huh.NewOption("Budgets", choiceBudgets),
			huh.NewOption("Savings goals", choiceGoals),
			huh.NewOption("Reports", choiceReports),
			huh.NewOption("Dashboard", choiceDashboard),
			huh.NewOption("Quit", choiceQuit),
		})
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case choiceExpenses:
			err = m.transactionsMenu(model.KindExpense)
		case choiceIncome:
			err = m.transactionsMenu(model.KindIncome)
		case choiceBudgets:
			err = m.budgetsMenu()
		case choiceGoals:
			err = m.goalsMenu()
		case choiceReports:
			err = m.reportsMenu()
		case choiceDashboard:
			err = m.dashboard()
		case choiceQuit:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// handle reports user-level errors inline and passes storage failures up.
// A form abort counts as cancelling the operation.
func (m *Menu) handle(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, huh.ErrUserAborted):
		m.info("Cancelled.")
		return nil
	case isUserError(err):
		fmt.Fprintln(m.out, errorStyle.Render("  "+err.Error()))
		return nil
	default:
		return err
	}
}

var userErrors = []error{
	model.ErrInvalidKind,
	model.ErrMissingDate,
	model.ErrMalformedDate,
	model.ErrMalformedPeriod,
	model.ErrMissingCategory,
	model.ErrMissingName,
	model.ErrNonPositiveAmount,
	model.ErrMalformedAmount,
	model.ErrAmountTooLarge,
	model.ErrDeadlineNotAfter,
	budget.ErrBudgetNotFound,
	budget.ErrGoalNotFound,
	budget.ErrGoalExists,
	store.ErrNotFound,
	errNoCategories,
	errNoGoals,
}

func isUserError(err error) bool {
	var unknown ledger.UnknownCategoryError
	if errors.As(err, &unknown) {
		return true
	}
	for _, u := range userErrors {
		if errors.Is(err, u) {
			return true
		}
	}
	return false
}

func (m *Menu) success(format string, args ...any) {
	fmt.Fprintln(m.out, successStyle.Render("  "+fmt.Sprintf(format, args...)))
}

func (m *Menu) warn(format string, args ...any) {
	fmt.Fprintln(m.out, warnStyle.Render("  "+fmt.Sprintf(format, args...)))
}

func (m *Menu) info(format string, args ...any) {
	fmt.Fprintln(m.out, mutedStyle.Render("  "+fmt.Sprintf(format, args...)))
}

// pick runs a single-select prompt.
func (m *Menu) pick(title string, opts []huh.Option[string]) (string, error) {
	var choice string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().Title(title).Options(opts...).Value(&choice),
	))
	if err := form.Run(); err != nil {
		return "", err
	}
	return choice, nil
}

// input runs a single text prompt. validate may be nil.
func (m *Menu) input(title, placeholder, initial string, validate func(string) error) (string, error) {
	s := initial
	in := huh.NewInput().Title(title).Placeholder(placeholder).Value(&s)
	if validate != nil {
		in = in.Validate(validate)
	}
	form := huh.NewForm(huh.NewGroup(in))
	if err := form.Run(); err != nil {
		return "", err
	}
	return strings.TrimSpace(s), nil
}

// confirm runs a yes/no prompt.
func (m *Menu) confirm(title string) (bool, error) {
	var yes bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().Title(title).Value(&yes),
	))
	if err := form.Run(); err != nil {
		return false, err
	}
	return yes, nil
}

func notBlank(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("required")
	}
	return nil
}

func validAmount(s string) error {
	_, err := model.ParseAmount(s)
	return err
}

func validDate(s string) error {
	_, err := model.ParseDate(s)
	return err
}

func validPeriod(s string) error {
	_, err := model.ParsePeriod(s)
	return err
}

func validYear(s string) error {
	y, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || y < 1000 || y > 9999 {
		return errors.New("enter a four-digit year")
	}
	return nil
}

func validID(s string) error {
	if _, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err != nil {
		return errors.New("enter a record id")
	}
	return nil
}
