package store

import (
	"database/sql"
	"time"

	"spendwise/internal/model"
)

// InsertGoal stores a new goal and returns its assigned id.
func (s *Store) InsertGoal(g model.Goal) (int64, error) {
	res, err := s.db.Exec(`INSERT INTO goals (name, target_cents, saved_cents, start_date, deadline)
		VALUES (?, ?, ?, ?, ?)`,
		g.Name, model.Cents(g.Target), model.Cents(g.Saved),
		g.Start.Format(model.DateLayout), g.Deadline.Format(model.DateLayout))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// GetGoal loads one goal by name.
func (s *Store) GetGoal(name string) (model.Goal, error) {
	row := s.db.QueryRow(`SELECT id, name, target_cents, saved_cents, start_date, deadline
		FROM goals WHERE name = ?`, name)
	return scanGoal(row)
}

// ListGoals returns all goals, nearest deadline first.
func (s *Store) ListGoals() ([]model.Goal, error) {
	rows, err := s.db.Query(`SELECT id, name, target_cents, saved_cents, start_date, deadline
		FROM goals ORDER BY deadline, name`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var goals []model.Goal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

// AddContribution adds cents to a goal's saved total and returns the
// updated goal.
func (s *Store) AddContribution(name string, cents int64) (model.Goal, error) {
	res, err := s.db.Exec("UPDATE goals SET saved_cents = saved_cents + ? WHERE name = ?",
		cents, name)
	if err != nil {
		return model.Goal{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return model.Goal{}, err
	}
	if n == 0 {
		return model.Goal{}, ErrNotFound
	}
	return s.GetGoal(name)
}

// DeleteGoal removes a goal by name.
func (s *Store) DeleteGoal(name string) error {
	res, err := s.db.Exec("DELETE FROM goals WHERE name = ?", name)
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

func scanGoal(row scanner) (model.Goal, error) {
	var g model.Goal
	var target, saved int64
	var startStr, deadlineStr string

	err := row.Scan(&g.ID, &g.Name, &target, &saved, &startStr, &deadlineStr)
	if err == sql.ErrNoRows {
		return model.Goal{}, ErrNotFound
	}
	if err != nil {
		return model.Goal{}, err
	}

	g.Target = model.FromCents(target)
	g.Saved = model.FromCents(saved)
	g.Start, _ = time.Parse(model.DateLayout, startStr)
	g.Deadline, _ = time.Parse(model.DateLayout, deadlineStr)
	return g, nil
}
