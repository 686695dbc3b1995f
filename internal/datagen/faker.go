//-------------------------------------------------------------------------
//
// crmgen - synthetic retail/CRM dataset generator
//
// This software is released under the MIT License
//
//-------------------------------------------------------------------------

// Package datagen provides data generation utilities for crmgen.
package datagen

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"
	exprand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/synthcrm/crmgen/internal/logging"
)

// Faker is the single pseudorandom stream every generator draws from. It
// wraps gofakeit for fake identities and values and carries a gonum source
// for the gamma variates, both seeded together so a run is reproducible
// under an explicit seed.
type Faker struct {
	faker *gofakeit.Faker
	src   exprand.Source
	seed  uint64
}

// NewFaker creates a Faker. A zero seed derives one from the clock and logs
// it so the run can be replayed.
func NewFaker(seed uint64) *Faker {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
		logging.Info().Uint64("seed", seed).Msg("Derived random seed")
	}
	return &Faker{
		faker: gofakeit.New(seed),
		src:   exprand.NewSource(seed),
		seed:  seed,
	}
}

// Seed returns the seed this Faker was built with.
func (f *Faker) Seed() uint64 {
	return f.seed
}

// Int generates a random integer between min and max (inclusive).
func (f *Faker) Int(min, max int) int {
	return f.faker.IntRange(min, max)
}

// Float64 generates a random float64 between min and max.
func (f *Faker) Float64(min, max float64) float64 {
	return f.faker.Float64Range(min, max)
}

// Probability returns true with probability p.
func (f *Faker) Probability(p float64) bool {
	return f.faker.Float64Range(0, 1) < p
}

// Gamma draws a gamma-distributed value with the given shape and scale.
func (f *Faker) Gamma(shape, scale float64) float64 {
	dist := distuv.Gamma{Alpha: shape, Beta: 1 / scale, Src: f.src}
	return dist.Rand()
}

// DateRange generates a random time within [start, end].
func (f *Faker) DateRange(start, end time.Time) time.Time {
	return f.faker.DateRange(start, end)
}

// FirstName generates a random first name.
func (f *Faker) FirstName() string {
	return f.faker.FirstName()
}

// LastName generates a random last name.
func (f *Faker) LastName() string {
	return f.faker.LastName()
}

// Email generates a random email address.
func (f *Faker) Email() string {
	return f.faker.Email()
}

// Phone generates a random phone number.
func (f *Faker) Phone() string {
	return f.faker.Phone()
}

// UpperLetter generates a random uppercase letter A-Z.
func (f *Faker) UpperLetter() string {
	return string(rune('A' + f.Int(0, 25)))
}

// ShuffleInts shuffles the slice in place.
func (f *Faker) ShuffleInts(vals []int) {
	f.faker.ShuffleInts(vals)
}
