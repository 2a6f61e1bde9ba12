// Package report renders stored transactions into files for use
// outside the database.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/sumanmaity112/smart-finanza/internal/logging"
	"github.com/sumanmaity112/smart-finanza/internal/models"
)

// Delimiter is the CSV output delimiter.
var Delimiter rune = ','

// exportRow is the CSV shape of one transaction. Amounts render with
// two decimal places and enums render as their display labels.
type exportRow struct {
	TransactionID string `csv:"transaction_id"`
	Date          string `csv:"date"`
	Merchant      string `csv:"merchant"`
	Amount        string `csv:"amount"`
	TxnType       string `csv:"txn_type"`
	PaymentMethod string `csv:"payment_method"`
	Category      string `csv:"category"`
	Notes         string `csv:"notes"`
	SourceFile    string `csv:"source_file"`
}

// Writer exports transactions to CSV files.
type Writer struct {
	log logging.Logger
}

func NewWriter(logger logging.Logger) *Writer {
	return &Writer{log: logger}
}

// ExportCSV writes the transactions to csvFile, creating parent
// directories as needed. Row order is preserved from the input.
func (w *Writer) ExportCSV(transactions []models.Transaction, csvFile string) error {
	if transactions == nil {
		return fmt.Errorf("cannot write nil transactions to CSV")
	}

	w.log.Info("Writing transactions to CSV file",
		logging.Field{Key: logging.FieldFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})

	if err := os.MkdirAll(filepath.Dir(csvFile), 0o750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			w.log.WithError(err).Warn("Failed to close file")
		}
	}()

	rows := make([]exportRow, 0, len(transactions))
	for _, t := range transactions {
		rows = append(rows, exportRow{
			TransactionID: t.TransactionID,
			Date:          t.Date,
			Merchant:      t.Merchant,
			Amount:        t.Amount.StringFixed(2),
			TxnType:       t.TxnType.String(),
			PaymentMethod: t.PaymentMethod.String(),
			Category:      t.Category,
			Notes:         t.Notes,
			SourceFile:    t.SourceFile,
		})
	}

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = Delimiter
	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	w.log.Info("Successfully wrote transactions to CSV file",
		logging.Field{Key: logging.FieldFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})
	return nil
}
