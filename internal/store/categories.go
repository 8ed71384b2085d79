package store

import (
	"database/sql"

	"spendwise/internal/model"
)

// UpsertCategory adds a category to the known set, updating the
// description when the (name, kind) pair already exists.
func (s *Store) UpsertCategory(c model.Category) error {
	_, err := s.db.Exec(`INSERT INTO categories (name, kind, description)
		VALUES (?, ?, ?)
		ON CONFLICT (name, kind) DO UPDATE SET description = excluded.description`,
		c.Name, string(c.Kind), c.Description)
	return err
}

// CategoryExists reports whether the (name, kind) pair is in the known set.
func (s *Store) CategoryExists(kind model.Kind, name string) (bool, error) {
	var one int
	err := s.db.QueryRow("SELECT 1 FROM categories WHERE name = ? AND kind = ?",
		name, string(kind)).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ListCategories returns the known categories of one kind, by name.
func (s *Store) ListCategories(kind model.Kind) ([]model.Category, error) {
	rows, err := s.db.Query(`SELECT name, kind, description FROM categories
		WHERE kind = ? ORDER BY name`, string(kind))
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var cats []model.Category
	for rows.Next() {
		var c model.Category
		var kindStr string
		if err := rows.Scan(&c.Name, &kindStr, &c.Description); err != nil {
			return nil, err
		}
		c.Kind = model.Kind(kindStr)
		cats = append(cats, c)
	}
	return cats, rows.Err()
}
