package model

import "github.com/shopspring/decimal"

// TrendRow is one month × category aggregate from the trend report.
type TrendRow struct {
	Month    Period
	Category string
	Count    int
	Total    decimal.Decimal
}

// CategorySummary aggregates one category's records within a period.
type CategorySummary struct {
	Category string
	Count    int
	Total    decimal.Decimal
	Average  decimal.Decimal
}

// Summary holds the income and expense totals for a month or a year.
type Summary struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// Net is income minus expenses, negative when the period overspent.
func (s Summary) Net() decimal.Decimal {
	return s.Income.Sub(s.Expenses)
}

// MonthlySummary is one month's totals within a chronological series.
type MonthlySummary struct {
	Month Period
	Summary
}
