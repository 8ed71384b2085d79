// Package report runs the read-only aggregation queries behind the
// reporting views: trends, breakdowns, and period summaries.
package report

import (
	"spendwise/internal/model"
	"spendwise/internal/store"
)

// Reporter answers reporting queries. Every call is a full scan of the
// period's transactions; nothing is cached or recomputed incrementally.
type Reporter struct {
	store *store.Store
}

// NewReporter creates a reporter over the store.
func NewReporter(st *store.Store) *Reporter {
	return &Reporter{store: st}
}

// MonthlyTrend returns one row per (month, category) pair, ordered by
// month then category. An empty kind covers the whole transaction set.
func (r *Reporter) MonthlyTrend(kind model.Kind, from, to model.Period) ([]model.TrendRow, error) {
	return r.store.MonthlyTrend(kind, from, to)
}

// Breakdown aggregates one kind per category, largest total first.
// A zero period covers all time.
func (r *Reporter) Breakdown(kind model.Kind, period model.Period) ([]model.CategorySummary, error) {
	return r.store.CategoryBreakdown(kind, period)
}

// MonthlySummary totals one month's income and expenses.
func (r *Reporter) MonthlySummary(period model.Period) (model.Summary, error) {
	return r.store.PeriodTotals(period)
}

// AnnualSummary totals one calendar year's income and expenses.
func (r *Reporter) AnnualSummary(year int) (model.Summary, error) {
	return r.store.YearTotals(year)
}

// MonthlySeries returns the chronological month-by-month totals between
// from and to, for months that have records.
func (r *Reporter) MonthlySeries(from, to model.Period) ([]model.MonthlySummary, error) {
	return r.store.MonthlyTotals(from, to)
}
