package model

import (
	"fmt"
	"strings"
	"time"
)

// PeriodLayout is the wire format for budget periods.
const PeriodLayout = "2006-01"

// Period identifies one calendar month, the granularity at which budgets
// apply and trends aggregate.
type Period struct {
	Year  int
	Month time.Month
}

// ParsePeriod parses a period in PeriodLayout form.
func ParsePeriod(s string) (Period, error) {
	t, err := time.Parse(PeriodLayout, strings.TrimSpace(s))
	if err != nil {
		return Period{}, ErrMalformedPeriod
	}
	return PeriodOf(t), nil
}

// PeriodOf returns the period containing t.
func PeriodOf(t time.Time) Period {
	return Period{Year: t.Year(), Month: t.Month()}
}

// String renders the period in PeriodLayout form, which is also how
// budgets key their period column.
func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

// Start returns midnight UTC on the first day of the month.
func (p Period) Start() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}

// AddMonths returns the period n months later (or earlier for negative n).
func (p Period) AddMonths(n int) Period {
	return PeriodOf(p.Start().AddDate(0, n, 0))
}
