// Package query handles the ad hoc SQL command.
package query

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sumanmaity112/smart-finanza/cmd/root"
)

// Cmd represents the query command.
var Cmd = &cobra.Command{
	Use:   "query <sql>",
	Short: "Run a SQL query against the transaction vault",
	Long: `Run an arbitrary SQL statement against the vault and print the result
as a table. The statement is executed as given; there is no sandboxing.`,
	Args: cobra.ExactArgs(1),
	RunE: queryFunc,
}

func queryFunc(cmd *cobra.Command, args []string) error {
	result, err := root.App.Store.Query(args[0])
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(result.Columns, "\t"))
	for _, row := range result.Rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("%d row(s)\n", len(result.Rows))
	return nil
}
