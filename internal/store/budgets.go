package store

import (
	"database/sql"

	"spendwise/internal/model"
)

// UpsertBudget sets the limit for a (category, period) pair, replacing any
// previous limit.
func (s *Store) UpsertBudget(b model.Budget) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO budgets (category, period, limit_cents)
		VALUES (?, ?, ?)`,
		b.Category, b.Period.String(), model.Cents(b.Limit))
	return err
}

// GetBudget loads the budget for a (category, period) pair.
func (s *Store) GetBudget(category string, period model.Period) (model.Budget, error) {
	var cents int64
	err := s.db.QueryRow(`SELECT limit_cents FROM budgets WHERE category = ? AND period = ?`,
		category, period.String()).Scan(&cents)
	if err == sql.ErrNoRows {
		return model.Budget{}, ErrNotFound
	}
	if err != nil {
		return model.Budget{}, err
	}
	return model.Budget{Category: category, Period: period, Limit: model.FromCents(cents)}, nil
}

// ListBudgets returns every budget set for the period, by category.
func (s *Store) ListBudgets(period model.Period) ([]model.Budget, error) {
	rows, err := s.db.Query(`SELECT category, limit_cents FROM budgets
		WHERE period = ? ORDER BY category`, period.String())
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var budgets []model.Budget
	for rows.Next() {
		var b model.Budget
		var cents int64
		if err := rows.Scan(&b.Category, &cents); err != nil {
			return nil, err
		}
		b.Period = period
		b.Limit = model.FromCents(cents)
		budgets = append(budgets, b)
	}
	return budgets, rows.Err()
}
