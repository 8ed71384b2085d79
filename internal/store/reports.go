package store

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"spendwise/internal/model"
)

// MonthlyTrend aggregates records into one row per (month, category) pair,
// ordered chronologically then by category. An empty kind covers the whole
// transaction set; zero from/to periods leave that end unbounded.
func (s *Store) MonthlyTrend(kind model.Kind, from, to model.Period) ([]model.TrendRow, error) {
	conds := []string{"1=1"}
	var args []any
	if kind != "" {
		conds = append(conds, "kind = ?")
		args = append(args, string(kind))
	}
	if from != (model.Period{}) {
		conds = append(conds, "strftime('%Y-%m', tx_date) >= ?")
		args = append(args, from.String())
	}
	if to != (model.Period{}) {
		conds = append(conds, "strftime('%Y-%m', tx_date) <= ?")
		args = append(args, to.String())
	}

	rows, err := s.db.Query(`SELECT strftime('%Y-%m', tx_date) AS month, category,
			COUNT(*), SUM(amount_cents)
		FROM transactions
		WHERE `+strings.Join(conds, " AND ")+`
		GROUP BY month, category
		ORDER BY month, category`, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var trend []model.TrendRow
	for rows.Next() {
		var r model.TrendRow
		var monthStr string
		var cents int64
		if err := rows.Scan(&monthStr, &r.Category, &r.Count, &cents); err != nil {
			return nil, err
		}
		r.Month, err = model.ParsePeriod(monthStr)
		if err != nil {
			return nil, err
		}
		r.Total = model.FromCents(cents)
		trend = append(trend, r)
	}
	return trend, rows.Err()
}

// CategoryBreakdown aggregates one kind's records per category, largest
// total first. A zero period covers all time.
func (s *Store) CategoryBreakdown(kind model.Kind, period model.Period) ([]model.CategorySummary, error) {
	conds := []string{"kind = ?"}
	args := []any{string(kind)}
	if period != (model.Period{}) {
		conds = append(conds, "strftime('%Y-%m', tx_date) = ?")
		args = append(args, period.String())
	}

	rows, err := s.db.Query(`SELECT category, COUNT(*), SUM(amount_cents)
		FROM transactions
		WHERE `+strings.Join(conds, " AND ")+`
		GROUP BY category
		ORDER BY SUM(amount_cents) DESC, category`, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var summaries []model.CategorySummary
	for rows.Next() {
		var cs model.CategorySummary
		var cents int64
		if err := rows.Scan(&cs.Category, &cs.Count, &cents); err != nil {
			return nil, err
		}
		cs.Total = model.FromCents(cents)
		cs.Average = cs.Total.Div(decimal.NewFromInt(int64(cs.Count))).Round(2)
		summaries = append(summaries, cs)
	}
	return summaries, rows.Err()
}

// PeriodTotals sums one month's income and expenses.
func (s *Store) PeriodTotals(period model.Period) (model.Summary, error) {
	return s.totalsWhere("strftime('%Y-%m', tx_date) = ?", period.String())
}

// YearTotals sums one calendar year's income and expenses.
func (s *Store) YearTotals(year int) (model.Summary, error) {
	return s.totalsWhere("strftime('%Y', tx_date) = ?", fmt.Sprintf("%04d", year))
}

func (s *Store) totalsWhere(cond string, arg any) (model.Summary, error) {
	rows, err := s.db.Query(`SELECT kind, COALESCE(SUM(amount_cents), 0)
		FROM transactions WHERE `+cond+` GROUP BY kind`, arg)
	if err != nil {
		return model.Summary{}, err
	}
	defer func() { _ = rows.Close() }()

	var sum model.Summary
	for rows.Next() {
		var kind string
		var cents int64
		if err := rows.Scan(&kind, &cents); err != nil {
			return model.Summary{}, err
		}
		switch model.Kind(kind) {
		case model.KindIncome:
			sum.Income = model.FromCents(cents)
		case model.KindExpense:
			sum.Expenses = model.FromCents(cents)
		}
	}
	return sum, rows.Err()
}

// MonthlyTotals returns a chronological income/expense series, one entry
// per month that has records between from and to inclusive.
func (s *Store) MonthlyTotals(from, to model.Period) ([]model.MonthlySummary, error) {
	rows, err := s.db.Query(`SELECT strftime('%Y-%m', tx_date) AS month, kind,
			SUM(amount_cents)
		FROM transactions
		WHERE strftime('%Y-%m', tx_date) >= ? AND strftime('%Y-%m', tx_date) <= ?
		GROUP BY month, kind
		ORDER BY month`, from.String(), to.String())
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var series []model.MonthlySummary
	for rows.Next() {
		var monthStr, kind string
		var cents int64
		if err := rows.Scan(&monthStr, &kind, &cents); err != nil {
			return nil, err
		}
		month, err := model.ParsePeriod(monthStr)
		if err != nil {
			return nil, err
		}

		if len(series) == 0 || series[len(series)-1].Month != month {
			series = append(series, model.MonthlySummary{Month: month})
		}
		entry := &series[len(series)-1]
		switch model.Kind(kind) {
		case model.KindIncome:
			entry.Income = model.FromCents(cents)
		case model.KindExpense:
			entry.Expenses = model.FromCents(cents)
		}
	}
	return series, rows.Err()
}
