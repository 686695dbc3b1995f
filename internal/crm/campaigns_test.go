package crm

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/synthcrm/crmgen/internal/datagen"
	"github.com/synthcrm/crmgen/internal/db"
)

// TestCampaignFunnelRatesEDM checks the engagement rates of an EDM campaign
// over a large audience: open ~= 0.3 and click-given-open ~= 0.1 in
// expectation. Statistical assertion with generous tolerance.
func TestCampaignFunnelRatesEDM(t *testing.T) {
	ctx := context.Background()
	sqlDB, err := db.Open(filepath.Join(t.TempDir(), "funnel.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer sqlDB.Close()
	if err := CreateSchema(ctx, sqlDB); err != nil {
		t.Fatal(err)
	}

	cfg := testConfig()
	cfg.Members = 4000
	g := NewGenerator(sqlDB, cfg, datagen.NewFaker(52))
	if err := g.generateChannels(ctx); err != nil {
		t.Fatal(err)
	}
	if err := g.generateMembers(ctx); err != nil {
		t.Fatal(err)
	}

	// One forced EDM campaign so the rates under test are not left to the
	// random channel-type assignment.
	if _, err := sqlDB.ExecContext(ctx, `
        INSERT INTO campaigns
            (campaign_id, campaign_name, channel_type, start_date, end_date, cost_per_send)
        VALUES ('CMP001', 'Funnel Test', 'EDM', '2023-05-01', '2023-05-15', 0.5)
    `); err != nil {
		t.Fatal(err)
	}
	c := campaign{ID: "CMP001", ChannelType: "EDM", StartDate: "2023-05-01"}
	if err := g.generateCampaignLogs(ctx, c); err != nil {
		t.Fatal(err)
	}

	total := queryInt(t, sqlDB, `SELECT COUNT(*) FROM campaign_logs`)
	if total < 800 {
		t.Fatalf("audience too small for a statistical check: %d", total)
	}
	opened := queryInt(t, sqlDB, `SELECT COUNT(*) FROM campaign_logs WHERE is_opened = 1`)
	clicked := queryInt(t, sqlDB, `SELECT COUNT(*) FROM campaign_logs WHERE is_clicked = 1`)

	openRate := float64(opened) / float64(total)
	if openRate < 0.24 || openRate > 0.36 {
		t.Errorf("EDM open rate %f outside tolerance around 0.3", openRate)
	}

	clickGivenOpen := float64(clicked) / float64(opened)
	if clickGivenOpen < 0.04 || clickGivenOpen > 0.16 {
		t.Errorf("EDM click-given-open rate %f outside tolerance around 0.1", clickGivenOpen)
	}
}

func TestCampaignAudienceFraction(t *testing.T) {
	cfg := testConfig()
	cfg.Members = 200
	sqlDB := newTestDataset(t, cfg, 53)

	rows, err := sqlDB.Query(`
        SELECT campaign_id, COUNT(*) FROM campaign_logs GROUP BY campaign_id`)
	if err != nil {
		t.Fatal(err)
	}
	defer rows.Close()

	// Drain the cursor before issuing further queries: the pool is capped at
	// one connection, so a nested query while rows is open would deadlock.
	sendsByCampaign := map[string]int{}
	for rows.Next() {
		var id string
		var sends int
		if err := rows.Scan(&id, &sends); err != nil {
			t.Fatal(err)
		}
		sendsByCampaign[id] = sends
	}
	if err := rows.Err(); err != nil {
		t.Fatal(err)
	}
	rows.Close()

	campaigns := 0
	for id, sends := range sendsByCampaign {
		campaigns++
		// Audience is 20%-50% of 200 members, sampled without replacement.
		if sends < 40 || sends > 100 {
			t.Errorf("campaign %s audience %d outside [40, 100]", id, sends)
		}
		// No member receives the same campaign twice.
		distinct := queryInt(t, sqlDB, `
            SELECT COUNT(DISTINCT member_id) FROM campaign_logs WHERE campaign_id = ?`, id)
		if distinct != sends {
			t.Errorf("campaign %s has duplicate recipients: %d sends, %d members", id, sends, distinct)
		}
	}
	if campaigns != 10 {
		t.Errorf("expected logs for 10 campaigns, got %d", campaigns)
	}

	if n := queryInt(t, sqlDB, `
        SELECT COUNT(*) FROM campaigns
        WHERE channel_type NOT IN ('EDM', 'SMS', 'LINE')`); n != 0 {
		t.Errorf("%d campaigns with invalid channel type", n)
	}
	if n := queryInt(t, sqlDB, `
        SELECT COUNT(*) FROM campaigns
        WHERE (channel_type = 'EDM' AND cost_per_send != 0.5)
           OR (channel_type != 'EDM' AND cost_per_send != 1.5)`); n != 0 {
		t.Errorf("%d campaigns with wrong per-send cost", n)
	}
}
