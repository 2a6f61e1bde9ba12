// Package main provides the entry point for the smart-finanza CLI.
package main

import (
	"os"

	"github.com/sumanmaity112/smart-finanza/cmd/export"
	"github.com/sumanmaity112/smart-finanza/cmd/ingest"
	"github.com/sumanmaity112/smart-finanza/cmd/query"
	"github.com/sumanmaity112/smart-finanza/cmd/root"
	"github.com/sumanmaity112/smart-finanza/cmd/sweep"
	"github.com/sumanmaity112/smart-finanza/cmd/teach"
	"github.com/sumanmaity112/smart-finanza/internal/config"
)

func init() {
	config.LoadEnv()

	root.Cmd.AddCommand(ingest.Cmd)
	root.Cmd.AddCommand(teach.Cmd)
	root.Cmd.AddCommand(sweep.Cmd)
	root.Cmd.AddCommand(export.Cmd)
	root.Cmd.AddCommand(query.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
