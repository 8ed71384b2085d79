package report

import (
	"bytes"
	"encoding/csv"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spendwise/internal/model"
	"spendwise/internal/store"
)

func newTestReporter(t *testing.T) (*Reporter, *store.Store) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "spendwise.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return NewReporter(st), st
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func record(t *testing.T, st *store.Store, kind model.Kind, day, category, amount string) {
	t.Helper()
	d, err := time.Parse(model.DateLayout, day)
	require.NoError(t, err)
	_, err = st.InsertTransaction(model.Transaction{
		Kind: kind, Date: d, Category: category, Amount: dec(amount),
	})
	require.NoError(t, err)
}

func TestMonthlyTrendRowsMatchDistinctPairs(t *testing.T) {
	r, st := newTestReporter(t)

	record(t, st, model.KindExpense, "2025-01-05", "groceries", "80")
	record(t, st, model.KindExpense, "2025-01-12", "groceries", "60")
	record(t, st, model.KindExpense, "2025-01-20", "rent", "800")
	record(t, st, model.KindExpense, "2025-02-03", "groceries", "95")
	record(t, st, model.KindIncome, "2025-02-25", "salary", "2500")

	trend, err := r.MonthlyTrend("", model.Period{}, model.Period{})
	require.NoError(t, err)

	// Distinct (month, category) pairs: (01, groceries), (01, rent),
	// (02, groceries), (02, salary).
	require.Len(t, trend, 4)
	assert.Equal(t, "2025-01", trend[0].Month.String())
	assert.Equal(t, "groceries", trend[0].Category)
	assert.Equal(t, 2, trend[0].Count)
	assert.True(t, trend[0].Total.Equal(dec("140")))
	assert.Equal(t, "salary", trend[3].Category)
}

func TestBreakdownAverages(t *testing.T) {
	r, st := newTestReporter(t)
	record(t, st, model.KindExpense, "2025-03-01", "coffee", "4.40")
	record(t, st, model.KindExpense, "2025-03-02", "coffee", "4.60")
	record(t, st, model.KindExpense, "2025-03-03", "rent", "800")

	rows, err := r.Breakdown(model.KindExpense, model.Period{Year: 2025, Month: time.March})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "rent", rows[0].Category)
	assert.Equal(t, "coffee", rows[1].Category)
	assert.True(t, rows[1].Average.Equal(dec("4.50")), "got %s", rows[1].Average)
}

func TestSummaries(t *testing.T) {
	r, st := newTestReporter(t)
	record(t, st, model.KindIncome, "2025-03-25", "salary", "2500")
	record(t, st, model.KindExpense, "2025-03-14", "groceries", "470")
	record(t, st, model.KindExpense, "2024-12-31", "gifts", "200")

	march, err := r.MonthlySummary(model.Period{Year: 2025, Month: time.March})
	require.NoError(t, err)
	assert.True(t, march.Net().Equal(dec("2030")))

	year, err := r.AnnualSummary(2025)
	require.NoError(t, err)
	assert.True(t, year.Income.Equal(dec("2500")))
	assert.True(t, year.Expenses.Equal(dec("470")))

	prev, err := r.AnnualSummary(2024)
	require.NoError(t, err)
	assert.True(t, prev.Expenses.Equal(dec("200")))
}

func TestMonthlySeries(t *testing.T) {
	r, st := newTestReporter(t)
	record(t, st, model.KindExpense, "2025-01-10", "groceries", "100")
	record(t, st, model.KindIncome, "2025-03-01", "salary", "2500")

	series, err := r.MonthlySeries(
		model.Period{Year: 2025, Month: time.January},
		model.Period{Year: 2025, Month: time.March},
	)
	require.NoError(t, err)
	require.Len(t, series, 2)
	assert.Equal(t, "2025-01", series[0].Month.String())
	assert.Equal(t, "2025-03", series[1].Month.String())
}

func TestExportCSV(t *testing.T) {
	r, st := newTestReporter(t)
	record(t, st, model.KindExpense, "2025-03-14", "groceries", "42.50")
	record(t, st, model.KindIncome, "2025-03-25", "salary", "2500")

	var buf bytes.Buffer
	n, err := r.ExportCSV(&buf, store.TransactionFilter{})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"id", "kind", "date", "category", "amount", "note"}, rows[0])
	assert.Equal(t, "expense", rows[1][1])
	assert.Equal(t, "2025-03-14", rows[1][2])
	assert.Equal(t, "42.50", rows[1][4])
	assert.Equal(t, "2500.00", rows[2][4])
}

func TestExportCSVEmpty(t *testing.T) {
	r, _ := newTestReporter(t)

	var buf bytes.Buffer
	n, err := r.ExportCSV(&buf, store.TransactionFilter{})
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, Header+"\n", buf.String())
}
