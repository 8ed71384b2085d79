package menu

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"

	"spendwise/internal/cli"
	"spendwise/internal/model"
	"spendwise/internal/store"
)

func (m *Menu) reportsMenu() error {
	for {
		choice, err := m.pick("Reports", []huh.Option[string]{
			huh.NewOption("Monthly summary", "monthly"),
			huh.NewOption("Annual summary", "annual"),
			huh.NewOption("Spending trend", "trend"),
			huh.NewOption("Category breakdown", "breakdown"),
			huh.NewOption("Export to CSV", "export"),
			huh.NewOption("Back", choiceBack),
		})
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case "monthly":
			err = m.handle(m.monthlySummary())
		case "annual":
			err = m.handle(m.annualSummary())
		case "trend":
			err = m.handle(m.spendingTrend())
		case "breakdown":
			err = m.handle(m.categoryBreakdown())
		case "export":
			err = m.handle(m.exportCSV())
		case choiceBack:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (m *Menu) monthlySummary() error {
	thisMonth := model.PeriodOf(time.Now()).String()
	periodStr, err := m.input("Month", thisMonth, thisMonth, validPeriod)
	if err != nil {
		return err
	}
	period, err := model.ParsePeriod(periodStr)
	if err != nil {
		return err
	}

	sum, err := m.reporter.MonthlySummary(period)
	if err != nil {
		return err
	}
	fmt.Fprint(m.out, cli.RenderTable(summaryTable(fmt.Sprintf("Summary — %s", period), sum)))
	return nil
}

func (m *Menu) annualSummary() error {
	thisYear := strconv.Itoa(time.Now().Year())
	yearStr, err := m.input("Year", thisYear, thisYear, validYear)
	if err != nil {
		return err
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return err
	}

	sum, err := m.reporter.AnnualSummary(year)
	if err != nil {
		return err
	}
	fmt.Fprint(m.out, cli.RenderTable(summaryTable(fmt.Sprintf("Summary — %d", year), sum)))
	return nil
}

func (m *Menu) pickKind() (model.Kind, error) {
	choice, err := m.pick("Which records?", []huh.Option[string]{
		huh.NewOption("Expenses", string(model.KindExpense)),
		huh.NewOption("Income", string(model.KindIncome)),
	})
	return model.Kind(choice), err
}

func (m *Menu) spendingTrend() error {
	kind, err := m.pickKind()
	if err != nil {
		return err
	}

	current := model.PeriodOf(time.Now())
	fromStr, err := m.input("From month", current.AddMonths(-5).String(), current.AddMonths(-5).String(), validPeriod)
	if err != nil {
		return err
	}
	toStr, err := m.input("To month", current.String(), current.String(), validPeriod)
	if err != nil {
		return err
	}

	from, err := model.ParsePeriod(fromStr)
	if err != nil {
		return err
	}
	to, err := model.ParsePeriod(toStr)
	if err != nil {
		return err
	}

	rows, err := m.reporter.MonthlyTrend(kind, from, to)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		m.info("No records between %s and %s.", from, to)
		return nil
	}
	fmt.Fprint(m.out, cli.RenderTable(trendTable(kindTitle(kind), rows)))
	return nil
}

func (m *Menu) categoryBreakdown() error {
	kind, err := m.pickKind()
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

	rows, err := m.reporter.Breakdown(kind, period)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		m.info("No %s records in %s.", kind, period)
		return nil
	}

	fmt.Fprint(m.out, cli.RenderTable(breakdownTable(kindTitle(kind), period, rows)))

	// Rows arrive ordered by total descending, so the first sets the scale.
	max, _ := rows[0].Total.Float64()
	for _, r := range rows {
		v, _ := r.Total.Float64()
		fmt.Fprintf(m.out, "  %-16s %s %s\n",
			r.Category, cli.RenderHorizontalBar(v, max, 30), cli.FormatMoney(r.Total))
	}
	return nil
}

func (m *Menu) exportCSV() error {
	scope, err := m.pick("Export which records?", []huh.Option[string]{
		huh.NewOption("Everything", "all"),
		huh.NewOption("Expenses only", string(model.KindExpense)),
		huh.NewOption("Income only", string(model.KindIncome)),
	})
	if err != nil {
		return err
	}
	path, err := m.input("File", "spendwise-export.csv", "spendwise-export.csv", notBlank)
	if err != nil {
		return err
	}

	f := store.TransactionFilter{}
	if scope != "all" {
		f.Kind = model.Kind(scope)
	}

	out, err := os.Create(path)
	if err != nil {
		m.warn("Cannot write %s: %v", path, err)
		return nil
	}

	n, err := m.reporter.ExportCSV(out, f)
	if err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	m.success("Exported %d records to %s.", n, path)
	return nil
}

func summaryTable(title string, sum model.Summary) cli.Table {
	return cli.Table{
		Title: title,
		Rows: [][]string{
			{"Income", cli.FormatMoney(sum.Income)},
			{"Expenses", cli.FormatMoney(sum.Expenses)},
			{"Net", cli.FormatSignedMoney(sum.Net())},
		},
	}
}

func trendTable(title string, rows []model.TrendRow) cli.Table {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			r.Month.String(),
			r.Category,
			strconv.Itoa(r.Count),
			cli.FormatMoney(r.Total),
		})
	}
	return cli.Table{
		Title:     title + " by month and category",
		Headers:   []string{"Month", "Category", "Count", "Total"},
		Rows:      out,
		AlignLeft: []int{1},
	}
}

func breakdownTable(title string, period model.Period, rows []model.CategorySummary) cli.Table {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			r.Category,
			strconv.Itoa(r.Count),
			cli.FormatMoney(r.Total),
			cli.FormatMoney(r.Average),
		})
	}
	return cli.Table{
		Title:   fmt.Sprintf("%s breakdown — %s", title, period),
		Headers: []string{"Category", "Count", "Total", "Average"},
		Rows:    out,
	}
}
