//-------------------------------------------------------------------------
//
// crmgen - synthetic retail/CRM dataset generator
//
// This software is released under the MIT License
//
//-------------------------------------------------------------------------

// Package cli implements the command-line interface for crmgen.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/synthcrm/crmgen/internal/config"
	"github.com/synthcrm/crmgen/internal/logging"
	"github.com/synthcrm/crmgen/pkg/version"
)

var (
	// Global flags
	cfgFile  string
	dbPath   string
	logLevel string
	seed     uint64

	// Global config
	cfg *config.Config

	rootCmd = &cobra.Command{
		Use:   "crmgen",
		Short: "Synthetic retail CRM dataset generator",
		Long: `crmgen builds a self-contained SQLite database of synthetic retail
CRM data: members, products, sales channels, transactions, marketing
campaigns, and campaign engagement logs, all referentially consistent.

The generated values follow non-uniform distributions (skewed product
popularity, gamma-distributed ages and order counts, seasonal purchase
dates, a sequential engagement funnel) so downstream analytical queries
return realistic-looking results. Runs are reproducible with --seed.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ./crmgen.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "",
		"path of the SQLite database file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0,
		"random seed (0 = derive from clock and log it)")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(renderCmd)
}

func initConfig(cmd *cobra.Command) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return err
	}

	// Override with CLI flags
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}

	// Reinitialize logger with config
	logging.Init(logging.Config{
		Level:  cfg.LogLevel,
		Pretty: true,
	})

	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(version.Info())
	},
}
