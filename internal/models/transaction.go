// Package models defines the data types shared across the ingestion
// pipeline, the store and the rule engine.
package models

import (
	"regexp"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one persisted financial movement. Identity is the
// (TransactionID, SourceFile) pair; Category is the only field mutated
// after creation.
type Transaction struct {
	TransactionID string          `json:"transaction_id" csv:"transaction_id"`
	Date          string          `json:"date" csv:"date"`
	Merchant      string          `json:"merchant" csv:"merchant"`
	Amount        decimal.Decimal `json:"amount" csv:"amount"`
	TxnType       TxnType         `json:"-" csv:"-"`
	PaymentMethod PaymentMethod   `json:"-" csv:"-"`
	Category      string          `json:"category" csv:"category"`
	Notes         string          `json:"notes" csv:"notes"`
	SourceFile    string          `json:"source_file" csv:"source_file"`
}

// ProcessedFile is one row of the ingested-document ledger, keyed by
// content digest. Presence of the digest is the sole "already ingested"
// authority; the filename is informational.
type ProcessedFile struct {
	FileHash    string
	Filename    string
	ProcessedAt time.Time
}

// CategoryRule maps a lowercase keyword to a category. At most one
// category exists per keyword; a later rule replaces the earlier one.
type CategoryRule struct {
	Keyword  string `yaml:"keyword"`
	Category string `yaml:"category"`
}

var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)

// IsISODate reports whether s starts with a YYYY-MM-DD date. Oracle
// output is untrusted, so this is checked before anything is persisted.
func IsISODate(s string) bool {
	return isoDatePattern.MatchString(s)
}
