// Package config provides Viper-based hierarchical configuration
// management for the tracker: defaults, an optional config file, and
// environment variable overrides, in that order.
package config

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var envOnce sync.Once

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Database struct {
		Path string `mapstructure:"path" yaml:"path"`
	} `mapstructure:"database" yaml:"database"`

	Oracle struct {
		Model          string `mapstructure:"model" yaml:"model"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
		APIKey         string `mapstructure:"api_key" yaml:"-"` // Never serialize API key
	} `mapstructure:"oracle" yaml:"oracle"`

	Ingest struct {
		Workers      int `mapstructure:"workers" yaml:"workers"`
		CSVChunkRows int `mapstructure:"csv_chunk_rows" yaml:"csv_chunk_rows"`
		PDFBatchRows int `mapstructure:"pdf_batch_rows" yaml:"pdf_batch_rows"`
	} `mapstructure:"ingest" yaml:"ingest"`

	Rules struct {
		SeedFile string `mapstructure:"seed_file" yaml:"seed_file"`
	} `mapstructure:"rules" yaml:"rules"`
}

// LoadEnv loads variables from a .env file if one exists. Missing files
// are fine; real environment variables always win.
func LoadEnv() {
	envOnce.Do(func() {
		if _, err := os.Stat(".env"); err != nil {
			return
		}
		_ = godotenv.Load(".env")
	})
}

// InitializeConfig initializes Viper configuration with hierarchical loading.
func InitializeConfig() (*Config, error) {
	LoadEnv()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.smart-finanza")
	v.AddConfigPath(".smart-finanza")
	v.AddConfigPath(".")

	v.SetEnvPrefix("FINANZA")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// A missing config file is fine; a broken one is worth a warning,
			// but defaults and env vars still let the tool run.
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	// The API key always comes from the environment, unprefixed.
	if err := v.BindEnv("oracle.api_key", "GEMINI_API_KEY"); err != nil {
		fmt.Printf("Warning: failed to bind GEMINI_API_KEY environment variable: %v\n", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("database.path", "finance_vault.db")

	v.SetDefault("oracle.model", "gemini-2.0-flash")
	v.SetDefault("oracle.timeout_seconds", 60)

	// The oracle is the throughput bottleneck; two workers keep it busy
	// without flooding it.
	v.SetDefault("ingest.workers", 2)
	v.SetDefault("ingest.csv_chunk_rows", 20)
	v.SetDefault("ingest.pdf_batch_rows", 1)

	v.SetDefault("rules.seed_file", "")
}

// validateConfig validates the configuration values.
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.Database.Path == "" {
		return fmt.Errorf("database.path must not be empty")
	}

	if config.Ingest.Workers < 1 || config.Ingest.Workers > 64 {
		return fmt.Errorf("ingest.workers must be between 1 and 64, got: %d", config.Ingest.Workers)
	}

	if config.Ingest.CSVChunkRows < 1 {
		return fmt.Errorf("ingest.csv_chunk_rows must be at least 1, got: %d", config.Ingest.CSVChunkRows)
	}

	if config.Ingest.PDFBatchRows < 1 {
		return fmt.Errorf("ingest.pdf_batch_rows must be at least 1, got: %d", config.Ingest.PDFBatchRows)
	}

	if config.Oracle.TimeoutSeconds < 1 || config.Oracle.TimeoutSeconds > 600 {
		return fmt.Errorf("oracle.timeout_seconds must be between 1 and 600, got: %d", config.Oracle.TimeoutSeconds)
	}

	return nil
}
