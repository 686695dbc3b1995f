package crm

import (
	"context"
	"fmt"
	"time"

	"github.com/synthcrm/crmgen/internal/datagen"
	"github.com/synthcrm/crmgen/internal/logging"
)

// campaignNames is the fixed campaign set created once per run.
var campaignNames = []string{
	"New Year Sale", "Spring Collection", "Member Day", "Black Friday",
	"Cyber Monday", "Summer Cool", "Winter Warm", "Valentine",
	"Mother Day", "11.11",
}

var campaignChannelTypes = []string{"EDM", "SMS", "LINE"}

var (
	campaignStartMin = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	campaignStartMax = time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)
)

const insertCampaignLogSQL = `
    INSERT INTO campaign_logs
        (log_id, campaign_id, member_id, send_time, is_opened, is_clicked, is_converted)
    VALUES (?, ?, ?, ?, ?, ?, ?)
`

type campaign struct {
	ID          string
	ChannelType string
	StartDate   string
}

// funnelRates returns the per-stage engagement probabilities for a campaign
// channel type. EDM opens low; SMS and LINE push notifications open high.
func funnelRates(channelType string) (open, click, convert float64) {
	if channelType == "EDM" {
		return 0.3, 0.1, 0.05
	}
	return 0.8, 0.15, 0.05
}

func (g *Generator) generateCampaigns(ctx context.Context) error {
	campaigns := make([]campaign, 0, len(campaignNames))

	for i, name := range campaignNames {
		c := campaign{
			ID:          fmt.Sprintf("CMP%03d", i+1),
			ChannelType: datagen.Choose(g.faker, campaignChannelTypes),
		}

		costPerSend := 1.5
		if c.ChannelType == "EDM" {
			costPerSend = 0.5
		}

		start := g.faker.DateRange(campaignStartMin, campaignStartMax)
		end := start.AddDate(0, 0, g.faker.Int(7, 30))
		c.StartDate = start.Format("2006-01-02")

		_, err := g.db.ExecContext(ctx, `
            INSERT INTO campaigns
                (campaign_id, campaign_name, channel_type, start_date, end_date, cost_per_send)
            VALUES (?, ?, ?, ?, ?, ?)
        `, c.ID, name, c.ChannelType, c.StartDate, end.Format("2006-01-02"), costPerSend)
		if err != nil {
			return err
		}

		campaigns = append(campaigns, c)
	}
	logging.Info().Int("count", len(campaigns)).Msg("campaign master complete")

	for _, c := range campaigns {
		if err := g.generateCampaignLogs(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

// generateCampaignLogs samples an audience without replacement and walks
// each recipient through the sent-opened-clicked-converted funnel. A later
// stage is only ever sampled when the earlier one succeeded, so funnel
// monotonicity holds by construction.
func (g *Generator) generateCampaignLogs(ctx context.Context, c campaign) error {
	audienceSize := int(float64(len(g.memberIDs)) * g.faker.Float64(0.2, 0.5))
	audience := datagen.SampleWithoutReplacement(g.faker, g.memberIDs, audienceSize)

	openRate, clickRate, convRate := funnelRates(c.ChannelType)

	writer := datagen.NewBatchWriter(g.db, insertCampaignLogSQL, g.cfg.LogBatchSize)

	for _, memberID := range audience {
		opened, clicked, converted := 0, 0, 0
		if g.faker.Probability(openRate) {
			opened = 1
			if g.faker.Probability(clickRate) {
				clicked = 1
				if g.faker.Probability(convRate) {
					converted = 1
				}
			}
		}

		// Sends go out on the campaign start date within business hours.
		sendTime := fmt.Sprintf("%s %02d:%02d:00",
			c.StartDate, g.faker.Int(9, 20), g.faker.Int(0, 59))

		err := writer.Add(ctx,
			g.logSeq.Next(), c.ID, memberID, sendTime, opened, clicked, converted)
		if err != nil {
			return err
		}
	}

	if err := writer.Close(); err != nil {
		return err
	}

	logging.Info().
		Str("campaign", c.ID).
		Int("sends", audienceSize).
		Msg("campaign logs complete")
	return nil
}
