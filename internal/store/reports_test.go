package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spendwise/internal/model"
)

func seedReportData(t *testing.T, s *Store) {
	t.Helper()
	mustInsert(t, s, model.KindExpense, "2025-02-10", "groceries", "90")
	mustInsert(t, s, model.KindExpense, "2025-03-01", "groceries", "120")
	mustInsert(t, s, model.KindExpense, "2025-03-08", "groceries", "200")
	mustInsert(t, s, model.KindExpense, "2025-03-15", "rent", "800")
	mustInsert(t, s, model.KindIncome, "2025-03-25", "salary", "2500")
	mustInsert(t, s, model.KindExpense, "2025-04-02", "coffee", "4.50")
}

func TestMonthlyTrend(t *testing.T) {
	s := newTestStore(t)
	seedReportData(t, s)

	trend, err := s.MonthlyTrend(model.KindExpense, model.Period{}, model.Period{})
	require.NoError(t, err)

	// One row per distinct (month, category) pair, chronological.
	require.Len(t, trend, 4)
	assert.Equal(t, "2025-02", trend[0].Month.String())
	assert.Equal(t, "groceries", trend[0].Category)
	assert.Equal(t, "2025-03", trend[1].Month.String())
	assert.Equal(t, "groceries", trend[1].Category)
	assert.Equal(t, 2, trend[1].Count)
	assert.True(t, trend[1].Total.Equal(dec("320")))
	assert.Equal(t, "rent", trend[2].Category)
	assert.Equal(t, "2025-04", trend[3].Month.String())

	// Whole transaction set when kind is empty.
	all, err := s.MonthlyTrend("", model.Period{}, model.Period{})
	require.NoError(t, err)
	assert.Len(t, all, 5)

	// Bounded range.
	march := model.Period{Year: 2025, Month: time.March}
	bounded, err := s.MonthlyTrend(model.KindExpense, march, march)
	require.NoError(t, err)
	assert.Len(t, bounded, 2)
}

func TestCategoryBreakdown(t *testing.T) {
	s := newTestStore(t)
	seedReportData(t, s)

	march := model.Period{Year: 2025, Month: time.March}
	breakdown, err := s.CategoryBreakdown(model.KindExpense, march)
	require.NoError(t, err)

	require.Len(t, breakdown, 2)
	assert.Equal(t, "rent", breakdown[0].Category)
	assert.True(t, breakdown[0].Total.Equal(dec("800")))
	assert.Equal(t, "groceries", breakdown[1].Category)
	assert.Equal(t, 2, breakdown[1].Count)
	assert.True(t, breakdown[1].Total.Equal(dec("320")))
	assert.True(t, breakdown[1].Average.Equal(dec("160")), "got %s", breakdown[1].Average)

	// All time, no period bound.
	all, err := s.CategoryBreakdown(model.KindExpense, model.Period{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestPeriodTotals(t *testing.T) {
	s := newTestStore(t)
	seedReportData(t, s)

	march := model.Period{Year: 2025, Month: time.March}
	sum, err := s.PeriodTotals(march)
	require.NoError(t, err)
	assert.True(t, sum.Income.Equal(dec("2500")))
	assert.True(t, sum.Expenses.Equal(dec("1120")))
	assert.True(t, sum.Net().Equal(dec("1380")))

	// A month with no records sums to zero.
	empty, err := s.PeriodTotals(model.Period{Year: 2024, Month: time.January})
	require.NoError(t, err)
	assert.True(t, empty.Income.IsZero())
	assert.True(t, empty.Expenses.IsZero())
}

func TestYearTotals(t *testing.T) {
	s := newTestStore(t)
	seedReportData(t, s)

	sum, err := s.YearTotals(2025)
	require.NoError(t, err)
	assert.True(t, sum.Income.Equal(dec("2500")))
	assert.True(t, sum.Expenses.Equal(dec("1214.50")))
}

func TestMonthlyTotals(t *testing.T) {
	s := newTestStore(t)
	seedReportData(t, s)

	series, err := s.MonthlyTotals(
		model.Period{Year: 2025, Month: time.January},
		model.Period{Year: 2025, Month: time.December},
	)
	require.NoError(t, err)

	require.Len(t, series, 3)
	assert.Equal(t, "2025-02", series[0].Month.String())
	assert.True(t, series[0].Income.IsZero())
	assert.True(t, series[0].Expenses.Equal(dec("90")))
	assert.Equal(t, "2025-03", series[1].Month.String())
	assert.True(t, series[1].Income.Equal(dec("2500")))
	assert.True(t, series[1].Expenses.Equal(dec("1120")))
	assert.Equal(t, "2025-04", series[2].Month.String())
}
