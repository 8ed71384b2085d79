// Package ledger validates and records income and expense transactions.
package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"spendwise/internal/model"
	"spendwise/internal/store"
)

// UnknownCategoryError reports a record against a category that is not in
// the known set. The menu catches it, offers to create the category, and
// retries.
type UnknownCategoryError struct {
	Kind     model.Kind
	Category string
}

func (e UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown %s category %q", e.Kind, e.Category)
}

// Service validates transaction records and persists them.
type Service struct {
	store *store.Store
}

// New creates a ledger service over the store.
func New(st *store.Store) *Service {
	return &Service{store: st}
}

// Record validates and inserts one transaction, returning it with its
// assigned id. The category is normalized before the consistency check.
// No side effects beyond the insert.
func (s *Service) Record(t model.Transaction) (model.Transaction, error) {
	t.Category = model.NormalizeCategory(t.Category)
	if err := t.Validate(); err != nil {
		return model.Transaction{}, err
	}

	known, err := s.store.CategoryExists(t.Kind, t.Category)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("checking category: %w", err)
	}
	if !known {
		return model.Transaction{}, UnknownCategoryError{Kind: t.Kind, Category: t.Category}
	}

	id, err := s.store.InsertTransaction(t)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("recording transaction: %w", err)
	}
	t.ID = id

	logrus.WithFields(logrus.Fields{
		"id":       id,
		"kind":     t.Kind,
		"category": t.Category,
		"amount":   t.Amount.String(),
	}).Debug("transaction recorded")
	return t, nil
}

// Replace swaps a logged record for a corrected one. Records are immutable,
// so the edit deletes the original and inserts the replacement, which gets
// a fresh id.
func (s *Service) Replace(id int64, t model.Transaction) (model.Transaction, error) {
	t.Category = model.NormalizeCategory(t.Category)
	if err := t.Validate(); err != nil {
		return model.Transaction{}, err
	}

	known, err := s.store.CategoryExists(t.Kind, t.Category)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("checking category: %w", err)
	}
	if !known {
		return model.Transaction{}, UnknownCategoryError{Kind: t.Kind, Category: t.Category}
	}

	newID, err := s.store.ReplaceTransaction(id, t)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("replacing transaction %d: %w", id, err)
	}
	t.ID = newID
	return t, nil
}

// Get loads one record by id.
func (s *Service) Get(id int64) (model.Transaction, error) {
	return s.store.GetTransaction(id)
}

// Remove deletes one record by id.
func (s *Service) Remove(id int64) error {
	return s.store.DeleteTransaction(id)
}

// RemoveCategory deletes every record of a category and kind, returning
// how many went.
func (s *Service) RemoveCategory(kind model.Kind, category string) (int64, error) {
	return s.store.DeleteCategoryTransactions(kind, model.NormalizeCategory(category))
}

// Transactions lists records matching the filter, oldest first.
func (s *Service) Transactions(f store.TransactionFilter) ([]model.Transaction, error) {
	return s.store.ListTransactions(f)
}

// Total sums all recorded amounts of one kind.
func (s *Service) Total(kind model.Kind) (decimal.Decimal, error) {
	cents, err := s.store.SumCents(store.TransactionFilter{Kind: kind})
	if err != nil {
		return decimal.Zero, err
	}
	return model.FromCents(cents), nil
}

// DefineCategory adds a category to the known set.
func (s *Service) DefineCategory(c model.Category) error {
	c.Name = model.NormalizeCategory(c.Name)
	if c.Name == "" {
		return model.ErrMissingCategory
	}
	if !c.Kind.Valid() {
		return model.ErrInvalidKind
	}
	return s.store.UpsertCategory(c)
}

// Categories lists the known categories of one kind.
func (s *Service) Categories(kind model.Kind) ([]model.Category, error) {
	return s.store.ListCategories(kind)
}

// KnownCategory reports whether a category is in the known set for a kind.
func (s *Service) KnownCategory(kind model.Kind, category string) (bool, error) {
	return s.store.CategoryExists(kind, model.NormalizeCategory(category))
}
