package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfigDefaults(t *testing.T) {
	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "finance_vault.db", cfg.Database.Path)
	assert.Equal(t, 2, cfg.Ingest.Workers)
	assert.Equal(t, 20, cfg.Ingest.CSVChunkRows)
	assert.Equal(t, 1, cfg.Ingest.PDFBatchRows)
	assert.Equal(t, "gemini-2.0-flash", cfg.Oracle.Model)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("FINANZA_INGEST_WORKERS", "4")
	t.Setenv("FINANZA_LOG_FORMAT", "json")
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Ingest.Workers)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "test-key", cfg.Oracle.APIKey)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Log.Level = "loud" },
			wantErr: "invalid log level",
		},
		{
			name:    "bad log format",
			mutate:  func(c *Config) { c.Log.Format = "xml" },
			wantErr: "invalid log format",
		},
		{
			name:    "zero workers",
			mutate:  func(c *Config) { c.Ingest.Workers = 0 },
			wantErr: "ingest.workers",
		},
		{
			name:    "zero chunk rows",
			mutate:  func(c *Config) { c.Ingest.CSVChunkRows = 0 },
			wantErr: "csv_chunk_rows",
		},
		{
			name:    "empty database path",
			mutate:  func(c *Config) { c.Database.Path = "" },
			wantErr: "database.path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := InitializeConfig()
			require.NoError(t, err)
			tt.mutate(cfg)

			err = validateConfig(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
