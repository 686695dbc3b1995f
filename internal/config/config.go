//-------------------------------------------------------------------------
//
// crmgen - synthetic retail/CRM dataset generator
//
// This software is released under the MIT License
//
//-------------------------------------------------------------------------

// Package config handles configuration management for crmgen.
// Configuration is loaded from config files and CLI flags (no environment
// variables). CLI flags take precedence over config file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all configuration for crmgen.
type Config struct {
	// DBPath is the filesystem path of the SQLite dataset.
	DBPath string `mapstructure:"db_path"`

	// LogLevel controls logging verbosity (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`

	// Seed seeds the shared pseudorandom stream. 0 derives a seed from
	// the clock and logs it so a run can be replayed.
	Seed uint64 `mapstructure:"seed"`

	// Generate holds configuration for the generate subcommand.
	Generate GenerateConfig `mapstructure:"generate"`

	// Report holds configuration for the report subcommand.
	Report ReportConfig `mapstructure:"report"`

	// Render holds configuration for the render subcommand.
	Render RenderConfig `mapstructure:"render"`
}

// GenerateConfig holds configuration for dataset generation.
type GenerateConfig struct {
	// Members is the size of the member population.
	Members int `mapstructure:"members"`

	// Products is the target product count. The taxonomy is padded with
	// filler products if it yields fewer.
	Products int `mapstructure:"products"`

	// OfflineChannels is the number of offline store channels. One online
	// channel always exists in addition.
	OfflineChannels int `mapstructure:"offline_channels"`

	// MinOrders and MaxOrders clamp the per-member order count drawn from
	// the gamma distribution.
	MinOrders int `mapstructure:"min_orders"`
	MaxOrders int `mapstructure:"max_orders"`

	// BatchSize is the number of transaction lines per write batch.
	BatchSize int `mapstructure:"batch_size"`

	// LogBatchSize is the number of campaign logs per write batch.
	LogBatchSize int `mapstructure:"log_batch_size"`
}

// ReportConfig holds configuration for the EDA report.
type ReportConfig struct {
	// Output is the path of the generated HTML report.
	Output string `mapstructure:"output"`
}

// RenderConfig holds configuration for the markdown renderer.
type RenderConfig struct {
	// Output is the path of the rendered HTML document. Empty derives it
	// from the input filename.
	Output string `mapstructure:"output"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		DBPath:   "crm_data.db",
		LogLevel: "info",
		Generate: GenerateConfig{
			Members:         10000,
			Products:        50,
			OfflineChannels: 11,
			MinOrders:       1,
			MaxOrders:       12,
			BatchSize:       1000,
			LogBatchSize:    5000,
		},
		Report: ReportConfig{
			Output: "crm_eda_report.html",
		},
	}
}

// Load reads configuration from config files.
// Config file locations (in order of precedence):
// 1. Path specified by configFile parameter
// 2. ./crmgen.yaml
// 3. ~/.config/crmgen/config.yaml
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("crmgen")
	v.SetConfigType("yaml")

	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "crmgen"))
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("db path is required")
	}
	return nil
}

// ValidateGenerate checks configuration required for the generate command.
func (c *Config) ValidateGenerate() error {
	if err := c.Validate(); err != nil {
		return err
	}
	g := c.Generate
	if g.Members < 1 {
		return fmt.Errorf("members must be at least 1")
	}
	if g.Products < 1 {
		return fmt.Errorf("products must be at least 1")
	}
	if g.OfflineChannels < 1 {
		return fmt.Errorf("offline_channels must be at least 1")
	}
	if g.MinOrders < 1 {
		return fmt.Errorf("min_orders must be at least 1")
	}
	if g.MaxOrders < g.MinOrders {
		return fmt.Errorf("max_orders must be >= min_orders")
	}
	if g.BatchSize < 1 || g.LogBatchSize < 1 {
		return fmt.Errorf("batch sizes must be at least 1")
	}
	return nil
}
