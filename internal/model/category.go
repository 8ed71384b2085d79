package model

import "strings"

// Category is an entry in the known category set. The set is open: rows are
// created freely from the menu and nothing stops a budget or transaction
// from referencing a name by spelling it the same way.
type Category struct {
	Name        string
	Kind        Kind
	Description string
}

// NormalizeCategory canonicalizes a category name for storage and lookup.
func NormalizeCategory(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
