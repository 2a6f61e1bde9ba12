package store

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sumanmaity112/smart-finanza/internal/models"
)

// QueryResult holds the column names and stringified rows of an ad hoc
// query. NULLs render as empty strings.
type QueryResult struct {
	Columns []string
	Rows    [][]string
}

// Query runs an arbitrary SQL statement against the database and
// returns its result set. The statement is passed through verbatim;
// the caller owns its correctness.
func (s *Store) Query(query string) (*QueryResult, error) {
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	result := &QueryResult{Columns: columns}
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		row := make([]string, len(columns))
		for i, v := range values {
			switch val := v.(type) {
			case nil:
				row[i] = ""
			case []byte:
				row[i] = string(val)
			default:
				row[i] = fmt.Sprintf("%v", val)
			}
		}
		result.Rows = append(result.Rows, row)
	}
	return result, rows.Err()
}

// AllTransactions returns every stored transaction, newest first.
func (s *Store) AllTransactions() ([]models.Transaction, error) {
	rows, err := s.db.Query(`
		SELECT transaction_id, date, merchant, amount, txn_type, payment_method, category, notes, source_file
		FROM transactions
		ORDER BY date DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	defer rows.Close()

	var txns []models.Transaction
	for rows.Next() {
		var t models.Transaction
		var amount float64
		var txnType, method string
		if err := rows.Scan(&t.TransactionID, &t.Date, &t.Merchant, &amount,
			&txnType, &method, &t.Category, &t.Notes, &t.SourceFile); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		t.Amount = decimal.NewFromFloat(amount)
		t.TxnType = models.ParseTxnType(txnType)
		if m, ok := models.ParsePaymentMethod(method); ok {
			t.PaymentMethod = m
		}
		txns = append(txns, t)
	}
	return txns, rows.Err()
}
