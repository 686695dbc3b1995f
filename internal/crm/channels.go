package crm

import (
	"context"
	"fmt"

	"github.com/synthcrm/crmgen/internal/logging"
)

// Channel is a sales channel: the single online store or an offline store.
type Channel struct {
	ID     string
	Name   string
	Type   string
	Region string
	Area   float64
}

const (
	channelTypeOnline  = "Online"
	channelTypeOffline = "Offline"

	// All channels opened on the same historical date.
	channelOpenDate = "2020-01-01"
)

// Offline stores are partitioned 5:3:3 across the three regions. The
// pattern repeats when more than 11 offline channels are configured.
var offlineRegions = []string{
	"North", "North", "North", "North", "North",
	"Central", "Central", "Central",
	"South", "South", "South",
}

func (g *Generator) generateChannels(ctx context.Context) error {
	g.channels = g.channels[:0]

	g.channels = append(g.channels, Channel{
		ID:     "CH_WEB",
		Name:   "Official Website",
		Type:   channelTypeOnline,
		Region: "Online",
		Area:   0,
	})

	for i := 0; i < g.cfg.OfflineChannels; i++ {
		region := offlineRegions[i%len(offlineRegions)]
		g.channels = append(g.channels, Channel{
			ID:     fmt.Sprintf("CH_S%03d", i+1),
			Name:   fmt.Sprintf("Store %s %d", region, i+1),
			Type:   channelTypeOffline,
			Region: region,
			Area:   float64(g.faker.Int(30, 150)),
		})
	}

	for _, c := range g.channels {
		_, err := g.db.ExecContext(ctx, `
            INSERT INTO channels
                (channel_id, channel_name, channel_type, region, store_area, open_date, close_date)
            VALUES (?, ?, ?, ?, ?, ?, ?)
        `, c.ID, c.Name, c.Type, c.Region, c.Area, channelOpenDate, nil)
		if err != nil {
			return err
		}
	}

	logging.Info().Int("count", len(g.channels)).Msg("channels complete")
	return nil
}
