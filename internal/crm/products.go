package crm

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/synthcrm/crmgen/internal/datagen"
	"github.com/synthcrm/crmgen/internal/logging"
)

// Product is one sellable item in the three-level category taxonomy.
type Product struct {
	ID         string
	Name       string
	CategoryL1 string
	CategoryL2 string
	CategoryL3 string
	Brand      string
	Cost       float64
	Price      float64
	LaunchDate string
}

// productTaxonomy is the fixed category/subcategory tree products are
// drawn from. Counts are configuration, not inferred from the tree.
var productTaxonomy = []struct {
	Category      string
	Subcategories []string
}{
	{"Apparel", []string{"T-Shirt", "Jeans", "Jacket", "Shirt"}},
	{"Footwear", []string{"Sneakers", "Boots", "Sandals"}},
	{"Accessories", []string{"Bag", "Hat", "Watch", "Belt"}},
	{"Home", []string{"Towel", "Cushion", "Mug"}},
	{"Sports", []string{"Yoga Mat", "Dumbbell", "Water Bottle"}},
}

var (
	productLaunchStart = time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	productLaunchEnd   = time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
)

func (g *Generator) generateProducts(ctx context.Context) error {
	g.products = g.products[:0]
	seq := datagen.NewSequence("P", 4)

taxonomy:
	for _, cat := range productTaxonomy {
		for _, sub := range cat.Subcategories {
			n := g.faker.Int(3, 5)
			for i := 0; i < n; i++ {
				if len(g.products) >= g.cfg.Products {
					break taxonomy
				}
				price := float64(g.faker.Int(50, 500) * 10)
				cost := math.Floor(price * g.faker.Float64(0.3, 0.6))
				g.products = append(g.products, Product{
					ID:         seq.Next(),
					Name:       fmt.Sprintf("%s %s%d", sub, g.faker.UpperLetter(), g.faker.Int(100, 999)),
					CategoryL1: cat.Category,
					CategoryL2: sub,
					CategoryL3: "Standard",
					Brand:      "MyBrand",
					Cost:       cost,
					Price:      price,
					LaunchDate: g.faker.DateRange(productLaunchStart, productLaunchEnd).Format("2006-01-02"),
				})
			}
		}
	}

	// Pad with filler products when the taxonomy falls short of the
	// target; a thin taxonomy is a data-shape quirk, not an error.
	for len(g.products) < g.cfg.Products {
		id := seq.Next()
		g.products = append(g.products, Product{
			ID:         id,
			Name:       fmt.Sprintf("Generic Item %d", seq.Count()),
			CategoryL1: "Others",
			CategoryL2: "General",
			CategoryL3: "Standard",
			Brand:      "MyBrand",
			Cost:       100,
			Price:      200,
			LaunchDate: "2023-01-01",
		})
	}

	for _, p := range g.products {
		_, err := g.db.ExecContext(ctx, `
            INSERT INTO products
                (product_id, product_name, category_l1, category_l2, category_l3,
                 brand, cost, list_price, launch_date, is_active)
            VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, 1)
        `, p.ID, p.Name, p.CategoryL1, p.CategoryL2, p.CategoryL3,
			p.Brand, p.Cost, p.Price, p.LaunchDate)
		if err != nil {
			return err
		}
	}

	logging.Info().Int("count", len(g.products)).Msg("products complete")
	return nil
}
