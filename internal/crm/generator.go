package crm

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/synthcrm/crmgen/internal/datagen"
	"github.com/synthcrm/crmgen/internal/logging"
)

// Config holds dataset generation parameters.
type Config struct {
	// Members is the size of the member population.
	Members int

	// Products is the target product count.
	Products int

	// OfflineChannels is the number of offline store channels.
	OfflineChannels int

	// MinOrders and MaxOrders clamp the per-member order count.
	MinOrders int
	MaxOrders int

	// BatchSize is the flush size for member and transaction writes.
	BatchSize int

	// LogBatchSize is the flush size for campaign log writes.
	LogBatchSize int
}

// Generator produces the full dataset in dependency order. Generation is
// strictly sequential; all randomness draws from the single injected Faker
// and identifier counters are owned here, not global.
type Generator struct {
	db    *sql.DB
	cfg   Config
	faker *datagen.Faker

	channels  []Channel
	products  []Product
	memberIDs []string

	txSeq  *datagen.Sequence
	logSeq *datagen.Sequence
}

// NewGenerator creates a generator writing through sqlDB.
func NewGenerator(sqlDB *sql.DB, cfg Config, faker *datagen.Faker) *Generator {
	return &Generator{
		db:     sqlDB,
		cfg:    cfg,
		faker:  faker,
		txSeq:  datagen.NewSequence("TX", 9),
		logSeq: datagen.NewSequence("LOG", 9),
	}
}

// Run generates the dataset. Reference data feeds the later stages, so the
// order is fixed: channels and products, then members, then transactions
// and campaign engagement. Any storage error aborts the remaining run;
// partial data is discarded by re-running from a schema reset.
func (g *Generator) Run(ctx context.Context) error {
	stages := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"channels", g.generateChannels},
		{"products", g.generateProducts},
		{"members", g.generateMembers},
		{"transactions", g.generateTransactions},
		{"campaigns", g.generateCampaigns},
	}

	for _, stage := range stages {
		logging.Info().Str("stage", stage.name).Msg("Generating")
		if err := stage.fn(ctx); err != nil {
			return fmt.Errorf("generate %s: %w", stage.name, err)
		}
	}

	logging.Info().
		Int64("transactions", g.txSeq.Count()).
		Int64("campaign_logs", g.logSeq.Count()).
		Msg("Dataset generation complete")
	return nil
}
