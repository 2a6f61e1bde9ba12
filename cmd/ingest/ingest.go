// Package ingest handles the statement ingestion command.
package ingest

import (
	"github.com/spf13/cobra"

	"github.com/sumanmaity112/smart-finanza/cmd/root"
	"github.com/sumanmaity112/smart-finanza/internal/logging"
)

// Cmd represents the ingest command.
var Cmd = &cobra.Command{
	Use:   "ingest <file>...",
	Short: "Extract and store transactions from PDF or CSV statements",
	Long: `Ingest one or more bank statements. Each file is segmented into
fragments, run through the extraction oracle, deduplicated against the
vault, and swept with the current category rules. Re-ingesting a file
whose content was already processed is a no-op.`,
	Args: cobra.MinimumNArgs(1),
	RunE: ingestFunc,
}

func ingestFunc(cmd *cobra.Command, args []string) error {
	p, err := root.App.BuildPipeline(cmd.Context())
	if err != nil {
		return err
	}

	for _, path := range args {
		report, err := p.ProcessFile(cmd.Context(), path)
		if err != nil {
			root.Log.WithError(err).Error("Ingestion failed",
				logging.Field{Key: logging.FieldFile, Value: path})
			return err
		}

		if report.AlreadyProcessed {
			root.Log.Info("Already ingested, nothing to do",
				logging.Field{Key: logging.FieldFile, Value: report.File})
			continue
		}
		root.Log.Info("Ingested statement",
			logging.Field{Key: logging.FieldFile, Value: report.File},
			logging.Field{Key: "fragments", Value: report.Fragments},
			logging.Field{Key: "fragments_failed", Value: report.FragmentsFailed},
			logging.Field{Key: "candidates", Value: report.Candidates},
			logging.Field{Key: "saved", Value: report.Saved},
			logging.Field{Key: "swept", Value: report.Swept})
	}
	return nil
}
