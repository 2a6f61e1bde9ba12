package store

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/sumanmaity112/smart-finanza/internal/logging"
	"github.com/sumanmaity112/smart-finanza/internal/models"
)

const syntheticIDLength = 12

// Persist sanitizes the candidates and inserts them for sourceFile.
// Candidates without a usable merchant or amount are skipped, not
// failed: one bad extraction must never sink the batch. Duplicate
// rows are silently ignored by the (transaction_id, source_file)
// unique constraint. Returns the number of rows actually inserted.
func (s *Store) Persist(candidates []models.Candidate, sourceFile string, defaultMethod models.PaymentMethod) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`
		INSERT OR IGNORE INTO transactions
			(transaction_id, date, merchant, amount, txn_type, payment_method, category, notes, source_file)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, c := range candidates {
		merchant := strings.TrimSpace(c.Merchant)
		if merchant == "" {
			s.log.Debug("Skipping candidate without merchant",
				logging.Field{Key: logging.FieldTransactionID, Value: c.TransactionID})
			continue
		}

		amount, err := models.NormalizeAmount(string(c.Amount))
		if err != nil || amount.IsZero() {
			s.log.Debug("Skipping candidate with unusable amount",
				logging.Field{Key: logging.FieldMerchant, Value: merchant},
				logging.Field{Key: "amount", Value: string(c.Amount)})
			continue
		}

		method, ok := models.ParsePaymentMethod(c.PaymentMethod)
		if !ok || method == models.MethodUnknown {
			method = defaultMethod
		}

		id := strings.TrimSpace(c.TransactionID)
		if id == "" {
			id = syntheticID(c.Date, merchant, amount.String())
		}

		res, err := stmt.Exec(
			id,
			c.Date,
			merchant,
			amount.InexactFloat64(),
			models.ParseTxnType(c.TxnType).String(),
			method.String(),
			models.CategoryUncategorized,
			c.Notes,
			sourceFile,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to insert transaction %s: %w", id, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			inserted++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transactions: %w", err)
	}

	s.log.Info("Persisted transactions",
		logging.Field{Key: logging.FieldFile, Value: sourceFile},
		logging.Field{Key: logging.FieldCount, Value: inserted})
	return inserted, nil
}

// syntheticID derives a stable identifier for statements that carry no
// native reference number. The same date, merchant and normalized
// amount always map to the same ID, so re-ingesting the same file
// cannot create duplicates.
func syntheticID(date, merchant, amount string) string {
	sum := sha256.Sum256([]byte(date + merchant + amount))
	return "GEN-" + hex.EncodeToString(sum[:])[:syntheticIDLength]
}

// IsProcessed reports whether a file with the given content digest has
// already been ingested.
func (s *Store) IsProcessed(digest string) (bool, error) {
	var one int
	err := s.db.QueryRow(`SELECT 1 FROM processed_files WHERE file_hash = ?`, digest).Scan(&one)
	if err == nil {
		return true, nil
	}
	if isNoRows(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check processed files: %w", err)
}

// MarkProcessed records the file digest so future ingestions of the
// same content short-circuit.
func (s *Store) MarkProcessed(digest, filename string) error {
	_, err := s.db.Exec(
		`INSERT OR IGNORE INTO processed_files (file_hash, filename, processed_date) VALUES (?, ?, ?)`,
		digest, filename, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to mark file processed: %w", err)
	}
	return nil
}
