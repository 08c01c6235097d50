package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"person-roster/internal/models"
)

func names(people []*models.Person) []string {
	out := make([]string, 0, len(people))
	for _, p := range people {
		out = append(out, p.FirstName()+"/"+p.LastName()+"/"+p.Sex().String())
	}
	return out
}

func TestRoster_InsertKeepsOrder(t *testing.T) {
	seq := models.NewIDSequence()
	r := models.NewRoster()

	r.Insert(newPerson(seq, "Bob", "Smith", models.Male))
	r.Insert(newPerson(seq, "Ann", "Zel", models.Female))
	r.Insert(newPerson(seq, "Ann", "Zel", models.Male))

	require.Equal(t, 3, r.Len())
	assert.Equal(t, []string{"Ann/Zel/m", "Ann/Zel/f", "Bob/Smith/m"}, names(r.All()))
}

func TestRoster_InsertDuplicateIDIgnored(t *testing.T) {
	r := models.NewRoster()
	p := newPerson(models.NewIDSequence(), "Ann", "Zel", models.Male)

	r.Insert(p)
	r.Insert(p)
	r.Insert(nil)

	assert.Equal(t, 1, r.Len())
}

func TestRoster_Remove(t *testing.T) {
	seq := models.NewIDSequence()
	r := models.NewRoster()
	a := newPerson(seq, "Ann", "Zel", models.Male)
	b := newPerson(seq, "Bob", "Smith", models.Male)
	c := newPerson(seq, "Cid", "Moe", models.Female)
	r.Insert(c)
	r.Insert(a)
	r.Insert(b)

	require.True(t, r.Remove(b.ID()))
	for _, p := range r.All() {
		assert.NotEqual(t, b.ID(), p.ID())
	}
	assert.Equal(t, []string{"Ann/Zel/m", "Cid/Moe/f"}, names(r.All()))

	_, ok := r.Get(b.ID())
	assert.False(t, ok)
}

func TestRoster_RemoveUnknownIsNoop(t *testing.T) {
	seq := models.NewIDSequence()
	r := models.NewRoster()
	r.Insert(newPerson(seq, "Ann", "Zel", models.Male))
	r.Insert(newPerson(seq, "Bob", "Smith", models.Male))
	before := r.All()

	assert.False(t, r.Remove(9999))
	assert.Equal(t, before, r.All())

	stale := newPerson(seq, "Cid", "Moe", models.Male)
	r.Insert(stale)
	require.True(t, r.Remove(stale.ID()))
	assert.False(t, r.Remove(stale.ID()))
	assert.Equal(t, before, r.All())
}

func TestRoster_AllReturnsCopy(t *testing.T) {
	r := models.NewRoster()
	r.Insert(newPerson(models.NewIDSequence(), "Ann", "Zel", models.Male))

	view := r.All()
	view[0] = nil

	p, ok := r.At(0)
	require.True(t, ok)
	assert.NotNil(t, p)

	_, ok = r.At(1)
	assert.False(t, ok)
}

func TestRoster_ResetSorts(t *testing.T) {
	seq := models.NewIDSequence()
	r := models.NewRoster()
	r.Insert(newPerson(seq, "Old", "Entry", models.Male))

	dup := newPerson(seq, "Bob", "Smith", models.Male)
	r.Reset([]*models.Person{
		newPerson(seq, "Cid", "Moe", models.Female),
		dup,
		dup,
		newPerson(seq, "Ann", "Zel", models.Female),
	})

	assert.Equal(t, []string{"Ann/Zel/f", "Bob/Smith/m", "Cid/Moe/f"}, names(r.All()))
}
