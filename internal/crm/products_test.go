package crm

import "testing"

func TestProductTaxonomyPadding(t *testing.T) {
	// A target beyond what the taxonomy can yield (at most 17 subcategories
	// x 5 products = 85) must be padded with filler records.
	cfg := testConfig()
	cfg.Products = 100
	sqlDB := newTestDataset(t, cfg, 50)

	if n := queryInt(t, sqlDB, `SELECT COUNT(*) FROM products`); n != 100 {
		t.Fatalf("expected 100 products after padding, got %d", n)
	}

	fillers := queryInt(t, sqlDB, `SELECT COUNT(*) FROM products WHERE category_l1 = 'Others'`)
	if fillers < 15 {
		t.Errorf("expected at least 15 filler products, got %d", fillers)
	}

	// Fillers occupy the tail of the ID sequence.
	var lastCat string
	if err := sqlDB.QueryRow(
		`SELECT category_l1 FROM products ORDER BY product_id DESC LIMIT 1`).Scan(&lastCat); err != nil {
		t.Fatal(err)
	}
	if lastCat != "Others" {
		t.Errorf("expected last product to be a filler, got category %q", lastCat)
	}

	// Filler price/cost are fixed and still satisfy the cost invariant.
	if n := queryInt(t, sqlDB, `
        SELECT COUNT(*) FROM products
        WHERE category_l1 = 'Others' AND (cost != 100 OR list_price != 200)`); n != 0 {
		t.Errorf("%d filler products with unexpected price/cost", n)
	}
}

func TestProductPriceDistribution(t *testing.T) {
	sqlDB := newTestDataset(t, testConfig(), 51)

	// Taxonomy prices are multiples of 10 in [500, 5000].
	if n := queryInt(t, sqlDB, `
        SELECT COUNT(*) FROM products
        WHERE category_l1 != 'Others'
          AND (list_price < 500 OR list_price > 5000 OR CAST(list_price AS INTEGER) % 10 != 0)`); n != 0 {
		t.Errorf("%d products with price outside the discrete distribution", n)
	}
}
