package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal is a savings target tracked by cumulative contributions.
type Goal struct {
	ID       int64
	Name     string
	Target   decimal.Decimal
	Saved    decimal.Decimal
	Start    time.Time
	Deadline time.Time
}

// Validate checks a new goal before it is stored.
func (g Goal) Validate() error {
	if NormalizeCategory(g.Name) == "" {
		return ErrMissingName
	}
	if g.Target.Sign() <= 0 {
		return ErrNonPositiveAmount
	}
	if g.Start.IsZero() || g.Deadline.IsZero() {
		return ErrMissingDate
	}
	if !g.Deadline.After(g.Start) {
		return ErrDeadlineNotAfter
	}
	return nil
}

// Reached reports whether the saved total has met the target.
func (g Goal) Reached() bool {
	return g.Saved.GreaterThanOrEqual(g.Target)
}

// Remaining is the amount still to save, zero once the target is reached.
func (g Goal) Remaining() decimal.Decimal {
	if g.Reached() {
		return decimal.Zero
	}
	return g.Target.Sub(g.Saved)
}

// Progress is the saved fraction of the target, capped at 1.
func (g Goal) Progress() float64 {
	if g.Target.Sign() <= 0 {
		return 0
	}
	p := g.Saved.Div(g.Target).InexactFloat64()
	if p > 1 {
		p = 1
	}
	return p
}

// DaysLeft counts whole days from now until the deadline, negative when past.
func (g Goal) DaysLeft(now time.Time) int {
	return int(g.Deadline.Sub(now).Hours() / 24)
}
