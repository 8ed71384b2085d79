package menu

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"

	"spendwise/internal/cli"
	"spendwise/internal/ledger"
	"spendwise/internal/model"
)

func (m *Menu) budgetsMenu() error {
	for {
		choice, err := m.pick("Budgets", []huh.Option[string]{
			huh.NewOption("Set a budget", "set"),
			huh.NewOption("Check a budget", "check"),
			huh.NewOption("List a month's budgets", "list"),
			huh.NewOption("Back", choiceBack),
		})
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case "set":
			err = m.handle(m.setBudget())
		case "check":
			err = m.handle(m.checkBudget())
		case "list":
			err = m.handle(m.listBudgets())
		case choiceBack:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// ensureCategory checks the known set and offers to create a missing
// category. Returns false when the user declines.
func (m *Menu) ensureCategory(kind model.Kind, name string) (bool, error) {
	known, err := m.ledger.KnownCategory(kind, name)
	if err != nil || known {
		return known, err
	}
	return m.offerCategory(ledger.UnknownCategoryError{Kind: kind, Category: name})
}

func (m *Menu) setBudget() error {
	category, err := m.selectCategory(model.KindExpense, true)
	if err != nil {
		return err
	}

	ok, err := m.ensureCategory(model.KindExpense, category)
	if err != nil {
		return err
	}
	if !ok {
		m.warn("Budget not set.")
		return nil
	}

	thisMonth := model.PeriodOf(time.Now()).String()
	periodStr, err := m.input("Month", thisMonth, thisMonth, validPeriod)
	if err != nil {
		return err
	}
	limitStr, err := m.input("Monthly limit", "500", "", validAmount)
	if err != nil {
		return err
	}

	period, err := model.ParsePeriod(periodStr)
	if err != nil {
		return err
	}
	limit, err := model.ParseAmount(limitStr)
	if err != nil {
		return err
	}

	b, err := m.tracker.Set(category, period, limit)
	if err != nil {
		return err
	}
	m.success("Budget of %s set for %q (%s).", cli.FormatMoney(b.Limit), b.Category, b.Period)
	return nil
}

func (m *Menu) checkBudget() error {
	category, err := m.selectCategory(model.KindExpense, false)
	if err != nil {
		return err
	}
	thisMonth := model.PeriodOf(time.Now()).String()
	periodStr, err := m.input("Month", thisMonth, thisMonth, validPeriod)
	if err != nil {
		return err
	}
	period, err := model.ParsePeriod(periodStr)
	if err != nil {
		return err
	}

	st, err := m.tracker.Check(category, period)
	if err != nil {
		return err
	}
	m.printBudgetStatus(st)
	return nil
}

func (m *Menu) printBudgetStatus(st model.BudgetStatus) {
	fmt.Fprint(m.out, cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("%s — %s", st.Category, st.Period),
		Headers: []string{"Limit", "Spent", "Remaining"},
		Rows: [][]string{{
			cli.FormatMoney(st.Limit),
			cli.FormatMoney(st.Spent),
			cli.FormatMoney(st.Remaining()),
		}},
	}))
	fmt.Fprintln(m.out, "  "+cli.RenderProgressBar(st.Utilization(), 24))
	if st.Over() {
		fmt.Fprintln(m.out, errorStyle.Render("  "+st.Verdict()))
	} else {
		fmt.Fprintln(m.out, successStyle.Render("  "+st.Verdict()))
	}
}

func (m *Menu) listBudgets() error {
	thisMonth := model.PeriodOf(time.Now()).String()
	periodStr, err := m.input("Month", thisMonth, thisMonth, validPeriod)
	if err != nil {
		return err
	}
	period, err := model.ParsePeriod(periodStr)
	if err != nil {
		return err
	}

	statuses, err := m.tracker.CheckAll(period)
	if err != nil {
		return err
	}
	if len(statuses) == 0 {
		m.info("No budgets for %s.", period)
		return nil
	}
	fmt.Fprint(m.out, cli.RenderTable(budgetTable(period, statuses)))
	return nil
}

func budgetTable(period model.Period, statuses []model.BudgetStatus) cli.Table {
	rows := make([][]string, 0, len(statuses))
	for _, st := range statuses {
		rows = append(rows, []string{
			st.Category,
			cli.FormatMoney(st.Limit),
			cli.FormatMoney(st.Spent),
			cli.FormatMoney(st.Remaining()),
			st.Verdict(),
		})
	}
	return cli.Table{
		Title:     fmt.Sprintf("Budgets — %s", period),
		Headers:   []string{"Category", "Limit", "Spent", "Remaining", "Verdict"},
		Rows:      rows,
		AlignLeft: []int{4},
	}
}
