// Package export handles the CSV export command.
package export

import (
	"github.com/spf13/cobra"

	"github.com/sumanmaity112/smart-finanza/cmd/root"
	"github.com/sumanmaity112/smart-finanza/internal/logging"
	"github.com/sumanmaity112/smart-finanza/internal/models"
)

var output string

// Cmd represents the export command.
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export all stored transactions to a CSV file",
	RunE:  exportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&output, "output", "o", "", "Output CSV file (required)")
	_ = Cmd.MarkFlagRequired("output")
}

func exportFunc(cmd *cobra.Command, args []string) error {
	txns, err := root.App.Store.AllTransactions()
	if err != nil {
		return err
	}
	if txns == nil {
		txns = []models.Transaction{}
	}

	if err := root.App.Writer.ExportCSV(txns, output); err != nil {
		return err
	}

	root.Log.Info("Export complete",
		logging.Field{Key: logging.FieldFile, Value: output},
		logging.Field{Key: logging.FieldCount, Value: len(txns)})
	return nil
}
