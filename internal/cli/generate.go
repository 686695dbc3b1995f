package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/synthcrm/crmgen/internal/crm"
	"github.com/synthcrm/crmgen/internal/datagen"
	"github.com/synthcrm/crmgen/internal/db"
	"github.com/synthcrm/crmgen/internal/logging"
)

var (
	genMembers      int
	genProducts     int
	genChannels     int
	genMinOrders    int
	genMaxOrders    int
	genBatchSize    int
	genLogBatchSize int
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the full synthetic CRM dataset",
	Long: `Generate the complete dataset: channels, products, members,
transactions, campaigns, and campaign logs, in dependency order so every
foreign key resolves. The database file is recreated from scratch on
every run.

Example:
  crmgen generate --db crm_data.db --members 10000 --seed 42`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().IntVar(&genMembers, "members", 0,
		"number of members to generate")
	generateCmd.Flags().IntVar(&genProducts, "products", 0,
		"number of products to generate")
	generateCmd.Flags().IntVar(&genChannels, "channels", 0,
		"number of offline store channels")
	generateCmd.Flags().IntVar(&genMinOrders, "min-orders", 0,
		"minimum orders per member")
	generateCmd.Flags().IntVar(&genMaxOrders, "max-orders", 0,
		"maximum orders per member")
	generateCmd.Flags().IntVar(&genBatchSize, "batch-size", 0,
		"transaction lines per insert batch")
	generateCmd.Flags().IntVar(&genLogBatchSize, "log-batch-size", 0,
		"campaign logs per insert batch")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	// Override config with CLI flags
	if genMembers > 0 {
		cfg.Generate.Members = genMembers
	}
	if genProducts > 0 {
		cfg.Generate.Products = genProducts
	}
	if genChannels > 0 {
		cfg.Generate.OfflineChannels = genChannels
	}
	if genMinOrders > 0 {
		cfg.Generate.MinOrders = genMinOrders
	}
	if genMaxOrders > 0 {
		cfg.Generate.MaxOrders = genMaxOrders
	}
	if genBatchSize > 0 {
		cfg.Generate.BatchSize = genBatchSize
	}
	if genLogBatchSize > 0 {
		cfg.Generate.LogBatchSize = genLogBatchSize
	}

	// Validate configuration
	if err := cfg.ValidateGenerate(); err != nil {
		return err
	}

	logging.Info().
		Str("db", cfg.DBPath).
		Int("members", cfg.Generate.Members).
		Int("products", cfg.Generate.Products).
		Msg("Generating dataset")

	// Each run starts from an empty database file
	if err := db.Remove(cfg.DBPath); err != nil {
		return fmt.Errorf("failed to remove existing database: %w", err)
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

	gen := crm.NewGenerator(sqlDB, crm.Config{
		Members:         cfg.Generate.Members,
		Products:        cfg.Generate.Products,
		OfflineChannels: cfg.Generate.OfflineChannels,
		MinOrders:       cfg.Generate.MinOrders,
		MaxOrders:       cfg.Generate.MaxOrders,
		BatchSize:       cfg.Generate.BatchSize,
		LogBatchSize:    cfg.Generate.LogBatchSize,
	}, datagen.NewFaker(cfg.Seed))

	if err := gen.Run(ctx); err != nil {
		return fmt.Errorf("failed to generate data: %w", err)
	}

	logging.Info().
		Str("db", cfg.DBPath).
		Msg("Dataset generation complete")
	return nil
}
