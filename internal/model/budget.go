package model

import "github.com/shopspring/decimal"

// Budget is a month-scoped spending limit for one expense category.
// Setting a budget for an existing (category, period) pair replaces the limit.
type Budget struct {
	Category string
	Period   Period
	Limit    decimal.Decimal
}

// BudgetStatus is the result of checking a category's spend against its
// budget. Spent is a fresh aggregate over the month's expense transactions.
type BudgetStatus struct {
	Category string
	Period   Period
	Limit    decimal.Decimal
	Spent    decimal.Decimal
}

// Over reports whether the spend exceeds the limit.
func (s BudgetStatus) Over() bool {
	return s.Spent.GreaterThan(s.Limit)
}

// Overage is the amount spent beyond the limit, zero when within budget.
func (s BudgetStatus) Overage() decimal.Decimal {
	if !s.Over() {
		return decimal.Zero
	}
	return s.Spent.Sub(s.Limit)
}

// Remaining is the headroom left under the limit, negative when over.
func (s BudgetStatus) Remaining() decimal.Decimal {
	return s.Limit.Sub(s.Spent)
}

// Utilization is spend as a fraction of the limit, for progress rendering.
func (s BudgetStatus) Utilization() float64 {
	if s.Limit.Sign() <= 0 {
		return 0
	}
	return s.Spent.Div(s.Limit).InexactFloat64()
}

// Verdict renders the check result the way it is reported to the user.
func (s BudgetStatus) Verdict() string {
	if s.Over() {
		return "over budget by $" + s.Overage().StringFixed(2)
	}
	return "within budget"
}
