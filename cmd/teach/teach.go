// Package teach handles the rule-learning command.
package teach

import (
	"github.com/spf13/cobra"

	"github.com/sumanmaity112/smart-finanza/cmd/root"
	"github.com/sumanmaity112/smart-finanza/internal/logging"
)

var (
	keyword  string
	category string
)

// Cmd represents the teach command.
var Cmd = &cobra.Command{
	Use:   "teach",
	Short: "Teach a keyword-to-category rule",
	Long: `Save a categorization rule and immediately re-categorize every stored
transaction whose merchant contains the keyword, including ones an
earlier rule already categorized.`,
	RunE: teachFunc,
}

func init() {
	Cmd.Flags().StringVarP(&keyword, "keyword", "k", "", "Merchant substring to match (required)")
	Cmd.Flags().StringVarP(&category, "category", "c", "", "Category to assign (required)")
	_ = Cmd.MarkFlagRequired("keyword")
	_ = Cmd.MarkFlagRequired("category")
}

func teachFunc(cmd *cobra.Command, args []string) error {
	report, err := root.App.Rules.Teach(keyword, category)
	if err != nil {
		return err
	}

	root.Log.Info("Rule saved",
		logging.Field{Key: logging.FieldKeyword, Value: keyword},
		logging.Field{Key: logging.FieldCategory, Value: category},
		logging.Field{Key: "updated", Value: report.Updated})
	return nil
}
