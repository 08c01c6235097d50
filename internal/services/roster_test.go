package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"person-roster/internal/logger"
	"person-roster/internal/models"
	"person-roster/internal/services"
)

func newService(t *testing.T) *services.RosterService {
	t.Helper()
	return services.NewRosterService(logger.Nop(), services.RosterOptions{SampleMax: 20, Seed: 99})
}

func raw(first, last, age, salary string, sex models.Sex) services.RawInput {
	return services.RawInput{
		FirstName: first,
		LastName:  last,
		Age:       age,
		Salary:    salary,
		Country:   models.Switzerland,
		Sex:       sex,
	}
}

func TestRosterService_AddSortsAndAssignsIDs(t *testing.T) {
	rs := newService(t)

	bob, res := rs.Add(raw("Bob", "Smith", "40", "10", models.Male))
	require.True(t, res.Valid)
	annF, res := rs.Add(raw("Ann", "Zel", "20", "20", models.Female))
	require.True(t, res.Valid)
	annM, res := rs.Add(raw("Ann", "Zel", "30", "30", models.Male))
	require.True(t, res.Valid)

	assert.Less(t, bob.ID(), annF.ID())
	assert.Less(t, annF.ID(), annM.ID())

	all := rs.All()
	require.Len(t, all, 3)
	assert.Equal(t, annM.ID(), all[0].ID())
	assert.Equal(t, annF.ID(), all[1].ID())
	assert.Equal(t, bob.ID(), all[2].ID())
}

func TestRosterService_AddInvalidChangesNothing(t *testing.T) {
	rs := newService(t)

	p, res := rs.Add(raw("", "Doe", "abc", "12.5", models.Male))

	assert.Nil(t, p)
	assert.False(t, res.Valid)
	assert.Len(t, res.Errors, 2)
	assert.Zero(t, rs.Len())

	next, res := rs.Add(raw("A", "B", "1", "1", models.Male))
	require.True(t, res.Valid)
	assert.Equal(t, uint64(1), next.ID(), "rejected input must not consume an id")
}

func TestRosterService_StatisticsFollowMutations(t *testing.T) {
	rs := newService(t)
	assert.True(t, rs.Statistics().Empty())

	p, res := rs.Add(raw("Max", "Muster", "30", "100.00", models.Male))
	require.True(t, res.Valid)
	assert.Equal(t, models.Statistics{
		MaleCount:     1,
		TotalCount:    1,
		TotalSalary:   100,
		AverageSalary: 100,
		TotalAge:      30,
		AverageAge:    30,
	}, rs.Statistics())

	require.True(t, rs.Remove(p.ID()))
	assert.True(t, rs.Statistics().Empty())
}

func TestRosterService_RemoveStale(t *testing.T) {
	rs := newService(t)
	p, _ := rs.Add(raw("A", "B", "1", "1", models.Male))
	require.True(t, rs.Remove(p.ID()))

	assert.False(t, rs.Remove(p.ID()))
	assert.Zero(t, rs.Len())
}

func TestRosterService_SeedThenAddKeepsIDsUnique(t *testing.T) {
	rs := newService(t)
	count := rs.Seed()
	require.Equal(t, count, rs.Len())

	p, res := rs.Add(raw("Zoe", "Last", "1", "1", models.Female))
	require.True(t, res.Valid)

	seen := make(map[uint64]bool)
	for _, q := range rs.All() {
		assert.False(t, seen[q.ID()], "duplicate id %d", q.ID())
		seen[q.ID()] = true
		if q != p {
			assert.Less(t, q.ID(), p.ID())
		}
	}
	assert.Equal(t, count+1, rs.Len())
}

func TestRosterService_InsertAndGet(t *testing.T) {
	rs := newService(t)
	p := rs.Create(models.PersonInput{FirstName: "A", LastName: "B", Country: models.Italy, Sex: models.Female})
	rs.Insert(p)

	got, ok := rs.Get(p.ID())
	require.True(t, ok)
	assert.Same(t, p, got)

	assert.NotNil(t, services.NewRosterService(nil, services.RosterOptions{}))
}
