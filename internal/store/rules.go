package store

import (
	"fmt"

	"github.com/sumanmaity112/smart-finanza/internal/models"
)

// TxnRef is the minimal view of a stored transaction the rule engine
// needs to categorize it.
type TxnRef struct {
	ID       int64
	Merchant string
}

// CategoryUpdate assigns a category to a stored transaction by row ID.
type CategoryUpdate struct {
	ID       int64
	Category string
}

// UpsertRule inserts or replaces a keyword mapping.
func (s *Store) UpsertRule(keyword, category string) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO category_map (keyword, category) VALUES (?, ?)`,
		keyword, category,
	)
	if err != nil {
		return fmt.Errorf("failed to save rule %q: %w", keyword, err)
	}
	return nil
}

// ListRules returns every keyword mapping in the table.
func (s *Store) ListRules() ([]models.CategoryRule, error) {
	rows, err := s.db.Query(`SELECT keyword, category FROM category_map`)
	if err != nil {
		return nil, fmt.Errorf("failed to list rules: %w", err)
	}
	defer rows.Close()

	var rules []models.CategoryRule
	for rows.Next() {
		var r models.CategoryRule
		if err := rows.Scan(&r.Keyword, &r.Category); err != nil {
			return nil, fmt.Errorf("failed to scan rule: %w", err)
		}
		rules = append(rules, r)
	}
	return rules, rows.Err()
}

// HasRule reports whether a mapping for keyword already exists.
func (s *Store) HasRule(keyword string) (bool, error) {
	var one int
	err := s.db.QueryRow(`SELECT 1 FROM category_map WHERE keyword = ?`, keyword).Scan(&one)
	if err == nil {
		return true, nil
	}
	if isNoRows(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check rule %q: %w", keyword, err)
}

// Uncategorized returns every transaction still carrying the default
// category.
func (s *Store) Uncategorized() ([]TxnRef, error) {
	return s.queryRefs(
		`SELECT id, merchant FROM transactions WHERE category = ?`,
		models.CategoryUncategorized,
	)
}

// MatchingMerchant returns transactions whose merchant contains the
// keyword, regardless of current category. Used when a new rule must
// re-categorize rows an older rule already claimed.
func (s *Store) MatchingMerchant(keyword string) ([]TxnRef, error) {
	return s.queryRefs(
		`SELECT id, merchant FROM transactions WHERE merchant LIKE ?`,
		"%"+keyword+"%",
	)
}

func (s *Store) queryRefs(query string, args ...any) ([]TxnRef, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	defer rows.Close()

	var refs []TxnRef
	for rows.Next() {
		var ref TxnRef
		if err := rows.Scan(&ref.ID, &ref.Merchant); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}

// ApplyCategories writes the updates in a single SQL transaction so a
// sweep is all-or-nothing.
func (s *Store) ApplyCategories(updates []CategoryUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`UPDATE transactions SET category = ? WHERE id = ?`)
	if err != nil {
		return fmt.Errorf("failed to prepare update: %w", err)
	}
	defer stmt.Close()

	for _, u := range updates {
		if _, err := stmt.Exec(u.Category, u.ID); err != nil {
			return fmt.Errorf("failed to update transaction %d: %w", u.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit category updates: %w", err)
	}
	return nil
}
