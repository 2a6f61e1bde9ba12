// Package sweep handles the re-categorization command.
package sweep

import (
	"github.com/spf13/cobra"

	"github.com/sumanmaity112/smart-finanza/cmd/root"
	"github.com/sumanmaity112/smart-finanza/internal/logging"
)

// Cmd represents the sweep command.
var Cmd = &cobra.Command{
	Use:   "sweep",
	Short: "Re-categorize all uncategorized transactions",
	Long: `Apply every stored rule to the transactions still marked
Uncategorized. Longer keywords win over shorter ones; rows no rule
matches are left untouched.`,
	RunE: sweepFunc,
}

func sweepFunc(cmd *cobra.Command, args []string) error {
	report, err := root.App.Rules.Sweep()
	if err != nil {
		return err
	}

	root.Log.Info("Sweep finished",
		logging.Field{Key: "scanned", Value: report.Scanned},
		logging.Field{Key: "updated", Value: report.Updated},
		logging.Field{Key: "rules", Value: report.Rules})
	return nil
}
