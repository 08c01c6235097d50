package services

import (
	"math/rand/v2"
	"time"

	"person-roster/internal/models"
)

// DefaultSampleMax is the exclusive upper bound on generated sample size
const DefaultSampleMax = 150

var sampleFirstNames = []string{
	"Nick", "Adriana", "Jamaal", "Margart", "Reba", "Nigel", "Lawerence", "Hong", "Margaret", "Micha",
	"Janis", "Alisha", "Lenita", "Tabitha", "Charmain", "Refugio", "Cesar", "Santiago", "Thora", "Sherell",
}

var sampleLastNames = []string{
	"Kramer", "Meyer", "Mustermann", "Jung", "Fenstermacher", "Lowe", "Beyer", "Wolf", "Unger",
}

// SampleGenerator produces random demo persons
type SampleGenerator struct {
	rng      *rand.Rand
	seq      *models.IDSequence
	maxCount int
}

// NewSampleGenerator creates a generator seeded from the clock.
// Ids come from seq so they never collide with user-added persons.
func NewSampleGenerator(seq *models.IDSequence, maxCount int) *SampleGenerator {
	now := uint64(time.Now().UnixNano())
	return NewSeededSampleGenerator(seq, maxCount, now)
}

// NewSeededSampleGenerator creates a generator with a fixed seed
func NewSeededSampleGenerator(seq *models.IDSequence, maxCount int, seed uint64) *SampleGenerator {
	if maxCount < 0 {
		maxCount = 0
	}
	return &SampleGenerator{
		rng:      rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		seq:      seq,
		maxCount: maxCount,
	}
}

// Generate returns between 0 and maxCount-1 random persons
func (g *SampleGenerator) Generate() []*models.Person {
	if g.maxCount == 0 {
		return nil
	}

	count := g.rng.IntN(g.maxCount)
	people := make([]*models.Person, 0, count)
	for range count {
		people = append(people, models.NewPerson(g.seq, models.PersonInput{
			FirstName: sampleFirstNames[g.rng.IntN(len(sampleFirstNames))],
			LastName:  sampleLastNames[g.rng.IntN(len(sampleLastNames))],
			Age:       g.rng.IntN(100),
			Salary:    float64(g.rng.IntN(2500*100)) / 100,
			Country:   models.Countries[g.rng.IntN(len(models.Countries))],
			Sex:       models.Sexes[g.rng.IntN(len(models.Sexes))],
		}))
	}
	return people
}
