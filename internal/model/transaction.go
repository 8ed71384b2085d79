// Package model defines the domain types for the spendwise ledger.
package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the wire format for calendar dates, in storage and at the prompt.
const DateLayout = "2006-01-02"

// Kind distinguishes money coming in from money going out.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// Valid reports whether k is one of the two known kinds.
func (k Kind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

// Transaction is one logged income or expense record. Records are immutable
// once stored; an edit is a delete plus a fresh insert with a new id.
type Transaction struct {
	ID        int64
	Kind      Kind
	Date      time.Time
	Amount    decimal.Decimal
	Category  string
	Note      string
	CreatedAt time.Time
}

// Validate checks the record against the ledger rules. The category is
// matched after normalization, so "  Groceries " and "groceries" are the
// same category.
func (t Transaction) Validate() error {
	if !t.Kind.Valid() {
		return ErrInvalidKind
	}
	if t.Date.IsZero() {
		return ErrMissingDate
	}
	if NormalizeCategory(t.Category) == "" {
		return ErrMissingCategory
	}
	if t.Amount.Sign() <= 0 {
		return ErrNonPositiveAmount
	}
	return nil
}

// ParseDate parses a calendar date in DateLayout form.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrMalformedDate
	}
	return t, nil
}
