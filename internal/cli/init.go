package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/synthcrm/crmgen/internal/crm"
	"github.com/synthcrm/crmgen/internal/db"
	"github.com/synthcrm/crmgen/internal/logging"
)

var initKeepExisting bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an empty CRM schema",
	Long: `Create the CRM database file with all six tables but no data.
By default any existing database file at the target path is removed
first so the schema starts clean.

Example:
  crmgen init --db crm_data.db`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initKeepExisting, "keep-existing", false,
		"do not delete an existing database file before creating the schema")
}

func runInit(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if !initKeepExisting {
		if err := db.Remove(cfg.DBPath); err != nil {
			return fmt.Errorf("failed to remove existing database: %w", err)
		}
	}

	ctx := context.Background()
	sqlDB, err := db.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer sqlDB.Close()

	if err := crm.CreateSchema(ctx, sqlDB); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	logging.Info().
		Str("db", cfg.DBPath).
		Int("tables", len(crm.Tables)).
		Msg("Schema created")
	return nil
}
