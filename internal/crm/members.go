package crm

import (
	"context"
	"fmt"
	"time"

	"github.com/synthcrm/crmgen/internal/datagen"
)

// Member demographics are deliberately non-uniform: a 70/30 gender split,
// a gamma-shaped age curve concentrated in the working-age band, and city
// weights favoring the two large metro areas.
var memberCities = []string{"Taipei", "New Taipei", "Taichung", "Kaohsiung"}
var memberCityWeights = []int{50, 30, 10, 10}

var memberDistricts = []string{"East", "West", "North", "South"}

var memberRegisterStart = time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)

const insertMemberSQL = `
    INSERT INTO members
        (member_id, name, gender, birthday, phone_number, email, city, district,
         register_date, register_channel_id, membership_level,
         opt_in_edm, opt_in_sms, curr_points)
    VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

func (g *Generator) generateMembers(ctx context.Context) error {
	citySampler, err := datagen.NewWeightedSampler(memberCities, memberCityWeights)
	if err != nil {
		return err
	}

	channelIDs := make([]string, len(g.channels))
	for i, c := range g.channels {
		channelIDs[i] = c.ID
	}

	seq := datagen.NewSequence("M", 8)
	g.memberIDs = make([]string, 0, g.cfg.Members)

	now := time.Now()
	progress := datagen.NewProgressReporter("members", int64(g.cfg.Members), int64(g.cfg.BatchSize))
	writer := datagen.NewBatchWriter(g.db, insertMemberSQL, g.cfg.BatchSize).WithProgress(progress)

	for i := 0; i < g.cfg.Members; i++ {
		id := seq.Next()
		g.memberIDs = append(g.memberIDs, id)

		gender := "M"
		if g.faker.Probability(0.7) {
			gender = "F"
		}

		age := g.sampleAge()
		birthday := fmt.Sprintf("%d-%02d-%02d",
			now.Year()-age, g.faker.Int(1, 12), g.faker.Int(1, 28))

		level := "Standard"
		if g.faker.Probability(0.1) {
			level = "VIP"
		}

		err := writer.Add(ctx,
			id,
			fmt.Sprintf("Member_%d", i),
			gender,
			birthday,
			g.faker.Phone(),
			g.faker.Email(),
			citySampler.Sample(g.faker),
			datagen.Choose(g.faker, memberDistricts),
			g.faker.DateRange(memberRegisterStart, now).Format("2006-01-02"),
			datagen.Choose(g.faker, channelIDs),
			level,
			boolToInt(g.faker.Probability(0.6)),
			boolToInt(g.faker.Probability(0.4)),
			g.faker.Int(0, 10000),
		)
		if err != nil {
			return err
		}
	}

	if err := writer.Close(); err != nil {
		return err
	}
	progress.Done()
	return nil
}

// sampleAge draws from Gamma(7.5, 1) scaled by 4 and offset to 18, which
// concentrates mass around the early thirties, clamped to [18, 80].
func (g *Generator) sampleAge() int {
	age := 18 + int(g.faker.Gamma(7.5, 1)*4)
	if age > 80 {
		age = 80
	}
	return age
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
