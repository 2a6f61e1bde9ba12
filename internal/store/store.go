// Package store provides the SQLite-backed persistence layer: the
// transaction vault, the processed-file ledger, and the category rule
// table. Deduplication lives entirely in the schema's unique
// constraints; callers never pre-check for duplicates.
package store

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/sumanmaity112/smart-finanza/internal/logging"
)

// Store wraps the SQLite database. One ingestion call writes from a
// single goroutine, so no mutex is held here; multi-caller rule sweeps
// are serialized by the rule engine instead.
type Store struct {
	db  *sql.DB
	log logging.Logger
}

// Open opens (or creates) the database at path and ensures the schema
// exists. Use ":memory:" for tests.
func Open(path string, logger logging.Logger) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db, log: logger}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB exposes the raw handle for read-only consumer queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS processed_files (
		file_hash      TEXT PRIMARY KEY,
		filename       TEXT,
		processed_date TEXT
	);

	CREATE TABLE IF NOT EXISTS transactions (
		id             INTEGER PRIMARY KEY AUTOINCREMENT,
		transaction_id TEXT,
		date           TEXT,
		merchant       TEXT,
		amount         REAL,
		txn_type       TEXT,
		payment_method TEXT,
		category       TEXT DEFAULT 'Uncategorized',
		notes          TEXT,
		source_file    TEXT,
		UNIQUE(transaction_id, source_file)
	);

	CREATE TABLE IF NOT EXISTS category_map (
		keyword  TEXT PRIMARY KEY,
		category TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_transactions_category ON transactions(category);
	CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions(date);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return err
	}
	return nil
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
