//-------------------------------------------------------------------------
//
// crmgen - synthetic retail/CRM dataset generator
//
// This software is released under the MIT License
//
//-------------------------------------------------------------------------

package crm

import (
	"context"
	"time"

	"github.com/synthcrm/crmgen/internal/datagen"
)

var (
	txYearStart = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	txYearEnd   = time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC)

	// High-season window the date skew re-rolls into.
	txSeasonStart = time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC)
)

const (
	// Online channel sampling weight vs a single offline store.
	onlineChannelWeight  = 50
	offlineChannelWeight = 5

	insertTransactionSQL = `
        INSERT INTO transaction_details
            (transaction_id, line_item_id, transaction_date, member_id, product_id,
             channel_id, quantity, unit_price, sales_amount, discount_amount,
             net_amount, payment_method)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
)

// generateTransactions synthesizes orders per member: a gamma-distributed
// order count, a seasonally skewed timestamp, a weighted channel, and 1-5
// line items with Pareto-like product popularity.
func (g *Generator) generateTransactions(ctx context.Context) error {
	productIDs := make([]string, len(g.products))
	priceByProduct := make(map[string]float64, len(g.products))
	for i, p := range g.products {
		productIDs[i] = p.ID
		priceByProduct[p.ID] = p.Price
	}

	// The top 20% of products (by shuffled weight slot, not by any product
	// attribute) receive 10x the sampling weight of the rest.
	productSampler, err := datagen.NewWeightedSampler(productIDs,
		datagen.SkewedWeights(g.faker, len(productIDs), 0.2, 10, 1))
	if err != nil {
		return err
	}

	channelIDs := make([]string, len(g.channels))
	channelWeights := make([]int, len(g.channels))
	for i, c := range g.channels {
		channelIDs[i] = c.ID
		if c.Type == channelTypeOnline {
			channelWeights[i] = onlineChannelWeight
		} else {
			channelWeights[i] = offlineChannelWeight
		}
	}
	channelSampler, err := datagen.NewWeightedSampler(channelIDs, channelWeights)
	if err != nil {
		return err
	}

	progress := datagen.NewProgressReporter("transaction_details", 0, int64(g.cfg.BatchSize))
	writer := datagen.NewBatchWriter(g.db, insertTransactionSQL, g.cfg.BatchSize).WithProgress(progress)

	for _, memberID := range g.memberIDs {
		numOrders := g.sampleOrderCount()

		for o := 0; o < numOrders; o++ {
			txID := g.txSeq.Next()
			txDate := g.sampleOrderDate().Format("2006-01-02 15:04:05")
			channelID := channelSampler.Sample(g.faker)

			numLines := g.faker.Int(1, 5)
			for line := 1; line <= numLines; line++ {
				productID := productSampler.Sample(g.faker)
				unitPrice := priceByProduct[productID]

				qty := 1
				if g.faker.Probability(0.1) {
					qty = 2
				}

				sales := unitPrice * float64(qty)
				discount := 0.0
				if g.faker.Probability(0.2) {
					discount = sales * 0.1
				}
				net := sales - discount

				err := writer.Add(ctx,
					txID, line, txDate, memberID, productID, channelID,
					qty, unitPrice, sales, discount, net, "CreditCard")
				if err != nil {
					return err
				}
			}
		}
	}

	if err := writer.Close(); err != nil {
		return err
	}
	progress.Done()
	return nil
}

// sampleOrderCount draws from Gamma(2, 2), mean 4, clamped to the
// configured order bounds.
func (g *Generator) sampleOrderCount() int {
	n := int(g.faker.Gamma(2, 2))
	if n < g.cfg.MinOrders {
		n = g.cfg.MinOrders
	}
	if n > g.cfg.MaxOrders {
		n = g.cfg.MaxOrders
	}
	return n
}

// sampleOrderDate draws uniformly over the data year, then re-rolls into
// the November-December high season with 30% probability to create the
// seasonal skew.
func (g *Generator) sampleOrderDate() time.Time {
	d := g.faker.DateRange(txYearStart, txYearEnd)
	if m := d.Month(); m != time.November && m != time.December && g.faker.Probability(0.3) {
		d = g.faker.DateRange(txSeasonStart, txYearEnd)
	}
	return d
}
