package store

import (
	"database/sql"
	"strings"
	"time"

	"spendwise/internal/model"
)

// TransactionFilter narrows transaction queries. Zero fields match everything.
type TransactionFilter struct {
	Kind     model.Kind
	Category string
	On       time.Time    // exact calendar date
	Period   model.Period // one month
	From     time.Time
	To       time.Time
}

// where builds the WHERE clause and its arguments for the filter.
func (f TransactionFilter) where() (string, []any) {
	var conds []string
	var args []any

	if f.Kind != "" {
		conds = append(conds, "kind = ?")
		args = append(args, string(f.Kind))
	}
	if f.Category != "" {
		conds = append(conds, "category = ?")
		args = append(args, f.Category)
	}
	if !f.On.IsZero() {
		conds = append(conds, "tx_date = ?")
		args = append(args, f.On.Format(model.DateLayout))
	}
	if f.Period != (model.Period{}) {
		conds = append(conds, "strftime('%Y-%m', tx_date) = ?")
		args = append(args, f.Period.String())
	}
	if !f.From.IsZero() {
		conds = append(conds, "tx_date >= ?")
		args = append(args, f.From.Format(model.DateLayout))
	}
	if !f.To.IsZero() {
		conds = append(conds, "tx_date <= ?")
		args = append(args, f.To.Format(model.DateLayout))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// InsertTransaction stores a record and returns its assigned id.
func (s *Store) InsertTransaction(t model.Transaction) (int64, error) {
	res, err := s.db.Exec(`INSERT INTO transactions
		(kind, tx_date, category, amount_cents, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		string(t.Kind), t.Date.Format(model.DateLayout), t.Category,
		model.Cents(t.Amount), t.Note, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// GetTransaction loads one record by id.
func (s *Store) GetTransaction(id int64) (model.Transaction, error) {
	row := s.db.QueryRow(`SELECT id, kind, tx_date, category, amount_cents, note, created_at
		FROM transactions WHERE id = ?`, id)
	return scanTransaction(row)
}

// ListTransactions returns records matching the filter, oldest first.
func (s *Store) ListTransactions(f TransactionFilter) ([]model.Transaction, error) {
	clause, args := f.where()
	rows, err := s.db.Query(`SELECT id, kind, tx_date, category, amount_cents, note, created_at
		FROM transactions`+clause+` ORDER BY tx_date, id`, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var txs []model.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txs = append(txs, t)
	}
	return txs, rows.Err()
}

// SumCents totals the matching records. The sum is always a fresh
// aggregate over the table, never a cached value.
func (s *Store) SumCents(f TransactionFilter) (int64, error) {
	clause, args := f.where()
	var total int64
	err := s.db.QueryRow(`SELECT COALESCE(SUM(amount_cents), 0) FROM transactions`+clause, args...).Scan(&total)
	return total, err
}

// DeleteTransaction removes one record by id.
func (s *Store) DeleteTransaction(id int64) error {
	res, err := s.db.Exec("DELETE FROM transactions WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ReplaceTransaction deletes the old record and inserts the replacement in
// one transaction, returning the new id. Records are immutable, so this is
// the only edit operation.
func (s *Store) ReplaceTransaction(id int64, t model.Transaction) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec("DELETE FROM transactions WHERE id = ?", id)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, ErrNotFound
	}

	res, err = tx.Exec(`INSERT INTO transactions
		(kind, tx_date, category, amount_cents, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		string(t.Kind), t.Date.Format(model.DateLayout), t.Category,
		model.Cents(t.Amount), t.Note, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, err
	}
	newID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	return newID, tx.Commit()
}

// DeleteCategoryTransactions removes every record of one category and kind,
// returning how many were deleted.
func (s *Store) DeleteCategoryTransactions(kind model.Kind, category string) (int64, error) {
	res, err := s.db.Exec("DELETE FROM transactions WHERE kind = ? AND category = ?",
		string(kind), category)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row scanner) (model.Transaction, error) {
	var t model.Transaction
	var kind, dateStr, createdStr string
	var cents int64

	err := row.Scan(&t.ID, &kind, &dateStr, &t.Category, &cents, &t.Note, &createdStr)
	if err == sql.ErrNoRows {
		return model.Transaction{}, ErrNotFound
	}
	if err != nil {
		return model.Transaction{}, err
	}

	t.Kind = model.Kind(kind)
	t.Amount = model.FromCents(cents)
	t.Date, _ = time.Parse(model.DateLayout, dateStr)
	t.CreatedAt, _ = time.Parse(time.RFC3339, createdStr)
	return t, nil
}
