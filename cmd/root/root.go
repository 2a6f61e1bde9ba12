// Package root contains the root command and the shared application
// container the subcommands run against.
package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sumanmaity112/smart-finanza/internal/config"
	"github.com/sumanmaity112/smart-finanza/internal/instrument"
	"github.com/sumanmaity112/smart-finanza/internal/logging"
	"github.com/sumanmaity112/smart-finanza/internal/oracle"
	"github.com/sumanmaity112/smart-finanza/internal/orchestrator"
	"github.com/sumanmaity112/smart-finanza/internal/pipeline"
	"github.com/sumanmaity112/smart-finanza/internal/report"
	"github.com/sumanmaity112/smart-finanza/internal/rules"
	"github.com/sumanmaity112/smart-finanza/internal/segmenter"
	"github.com/sumanmaity112/smart-finanza/internal/store"
)

// Container holds the wired application services. It is built once in
// the root command's PersistentPreRunE and shared by all subcommands.
type Container struct {
	Cfg    *config.Config
	Log    logging.Logger
	Store  *store.Store
	Rules  *rules.Engine
	Writer *report.Writer

	gemini *oracle.GeminiOracle
}

var (
	// Log is the shared logger instance for commands. Replaced with the
	// configured adapter once the root command runs.
	Log = logging.NewLogrusAdapter("info", "text")

	// App is the shared application container.
	App *Container

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "smart-finanza",
		Short: "Ingest bank statements into a queryable transaction vault.",
		Long: `smart-finanza extracts transactions from PDF and CSV bank statements,
deduplicates them into a SQLite vault, and categorizes them with
keyword rules you teach it over time.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to smart-finanza!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			closeApp()
		},
	}
)

func initApp() error {
	cfg, err := config.InitializeConfig()
	if err != nil {
		return err
	}

	Log = logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)

	st, err := store.Open(cfg.Database.Path, Log)
	if err != nil {
		return err
	}

	eng := rules.New(st, Log)
	if cfg.Rules.SeedFile != "" {
		if _, err := eng.SeedFromYAML(cfg.Rules.SeedFile); err != nil {
			Log.WithError(err).Warn("Failed to seed category rules")
		}
	}

	App = &Container{
		Cfg:    cfg,
		Log:    Log,
		Store:  st,
		Rules:  eng,
		Writer: report.NewWriter(Log),
	}
	return nil
}

func closeApp() {
	if App == nil {
		return
	}
	if App.gemini != nil {
		if err := App.gemini.Close(); err != nil {
			Log.WithError(err).Warn("Failed to close oracle client")
		}
	}
	if err := App.Store.Close(); err != nil {
		Log.WithError(err).Warn("Failed to close database")
	}
}

// BuildPipeline wires the full ingestion pipeline. It requires an
// oracle API key, so only the ingest command pays that cost.
func (c *Container) BuildPipeline(ctx context.Context) (*pipeline.Pipeline, error) {
	if c.Cfg.Oracle.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set; ingestion needs the extraction oracle")
	}

	gemini, err := oracle.NewGeminiOracle(ctx,
		c.Cfg.Oracle.APIKey,
		c.Cfg.Oracle.Model,
		time.Duration(c.Cfg.Oracle.TimeoutSeconds)*time.Second,
		c.Log)
	if err != nil {
		return nil, err
	}
	c.gemini = gemini

	seg := segmenter.New(nil, c.Cfg.Ingest.CSVChunkRows, c.Cfg.Ingest.PDFBatchRows, c.Log)
	inf := instrument.New(gemini, c.Log)
	orch := orchestrator.New(gemini, c.Cfg.Ingest.Workers, c.Log)

	return pipeline.New(seg, inf, orch, c.Store, c.Rules, c.Log), nil
}
