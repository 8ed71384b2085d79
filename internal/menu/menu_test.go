package menu

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spendwise/internal/budget"
	"spendwise/internal/ledger"
	"spendwise/internal/model"
	"spendwise/internal/store"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func date(s string) time.Time {
	d, err := time.Parse(model.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestIsUserError(t *testing.T) {
	assert.True(t, isUserError(model.ErrMalformedAmount))
	assert.True(t, isUserError(fmt.Errorf("recording: %w", model.ErrNonPositiveAmount)))
	assert.True(t, isUserError(budget.ErrBudgetNotFound))
	assert.True(t, isUserError(store.ErrNotFound))
	assert.True(t, isUserError(ledger.UnknownCategoryError{Kind: model.KindExpense, Category: "gifts"}))
	assert.True(t, isUserError(errNoGoals))

	assert.False(t, isUserError(errors.New("disk I/O error")))
	assert.False(t, isUserError(nil))
}

func TestTransactionTable(t *testing.T) {
	txs := []model.Transaction{
		{ID: 1, Kind: model.KindExpense, Date: date("2025-03-05"), Amount: dec("120"), Category: "groceries", Note: "weekly shop"},
		{ID: 2, Kind: model.KindExpense, Date: date("2025-03-12"), Amount: dec("200"), Category: "groceries"},
	}

	tbl := transactionTable("Expenses", txs)

	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, []string{"ID", "Date", "Category", "Amount", "Note"}, tbl.Headers)
	assert.Equal(t, []string{"1", "2025-03-05", "groceries", "$120.00", "weekly shop"}, tbl.Rows[0])
	assert.Equal(t, []string{"2", "2025-03-12", "groceries", "$200.00", ""}, tbl.Rows[1])
}

func TestBudgetTable(t *testing.T) {
	period := model.Period{Year: 2025, Month: time.March}
	statuses := []model.BudgetStatus{
		{Category: "groceries", Period: period, Limit: dec("500"), Spent: dec("470")},
		{Category: "rent", Period: period, Limit: dec("900"), Spent: dec("920")},
	}

	tbl := budgetTable(period, statuses)

	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, []string{"groceries", "$500.00", "$470.00", "$30.00", "within budget"}, tbl.Rows[0])
	assert.Equal(t, []string{"rent", "$900.00", "$920.00", "-$20.00", "over budget by $20.00"}, tbl.Rows[1])
}

func TestSummaryTable(t *testing.T) {
	tbl := summaryTable("Summary — 2025-03", model.Summary{Income: dec("2500"), Expenses: dec("1120")})

	require.Len(t, tbl.Rows, 3)
	assert.Equal(t, []string{"Net", "+$1,380.00"}, tbl.Rows[2])

	deficit := summaryTable("Summary — 2025-04", model.Summary{Income: dec("100"), Expenses: dec("120")})
	assert.Equal(t, []string{"Net", "-$20.00"}, deficit.Rows[2])
}

func TestTrendTable(t *testing.T) {
	rows := []model.TrendRow{
		{Month: model.Period{Year: 2025, Month: time.February}, Category: "rent", Count: 1, Total: dec("900")},
		{Month: model.Period{Year: 2025, Month: time.March}, Category: "groceries", Count: 3, Total: dec("470")},
	}

	tbl := trendTable("Expenses", rows)

	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, []string{"2025-02", "rent", "1", "$900.00"}, tbl.Rows[0])
	assert.Equal(t, []string{"2025-03", "groceries", "3", "$470.00"}, tbl.Rows[1])
}

func TestBreakdownTable(t *testing.T) {
	period := model.Period{Year: 2025, Month: time.March}
	rows := []model.CategorySummary{
		{Category: "rent", Count: 1, Total: dec("900"), Average: dec("900")},
		{Category: "groceries", Count: 3, Total: dec("470"), Average: dec("156.67")},
	}

	tbl := breakdownTable("Expenses", period, rows)

	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, []string{"groceries", "3", "$470.00", "$156.67"}, tbl.Rows[1])
}

func TestKindTitle(t *testing.T) {
	assert.Equal(t, "Expenses", kindTitle(model.KindExpense))
	assert.Equal(t, "Income", kindTitle(model.KindIncome))
}
