package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/synthcrm/crmgen/internal/crm"
	"github.com/synthcrm/crmgen/internal/db"
	"github.com/synthcrm/crmgen/internal/report"
)

var reportOutput string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write an exploratory data analysis report",
	Long: `Scan every table of a generated database and write a standalone
HTML report with sample rows, per-column statistics, and distribution
charts.

Example:
  crmgen report --db crm_data.db --output crm_eda_report.html`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportOutput, "output", "",
		"path of the HTML report (default: crm_eda_report.html)")
}

func runReport(cmd *cobra.Command, args []string) error {
	if reportOutput != "" {
		cfg.Report.Output = reportOutput
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := context.Background()
	sqlDB, err := db.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer sqlDB.Close()

	if err := report.Generate(ctx, sqlDB, crm.Tables, cfg.Report.Output); err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}
	return nil
}
