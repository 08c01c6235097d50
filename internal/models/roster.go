package models

import "slices"

// Roster keeps persons sorted with ComparePersons after every mutation.
// It is owned by the UI event loop and is not safe for concurrent use.
type Roster struct {
	people []*Person
}

// NewRoster creates an empty roster
func NewRoster() *Roster {
	return &Roster{}
}

// Insert adds a person and re-sorts. A person whose id is already
// present is ignored.
func (r *Roster) Insert(p *Person) {
	if p == nil || r.indexOf(p.ID()) >= 0 {
		return
	}
	r.people = append(r.people, p)
	r.sort()
}

// Remove deletes the person with the given id. It reports whether a
// person was removed; an unknown id leaves the roster untouched.
func (r *Roster) Remove(id uint64) bool {
	i := r.indexOf(id)
	if i < 0 {
		return false
	}
	r.people = slices.Delete(r.people, i, i+1)
	r.sort()
	return true
}

// Reset replaces the roster contents
func (r *Roster) Reset(people []*Person) {
	r.people = r.people[:0]
	for _, p := range people {
		if p == nil || r.indexOf(p.ID()) >= 0 {
			continue
		}
		r.people = append(r.people, p)
	}
	r.sort()
}

// All returns the current ordered sequence. The slice is a copy.
func (r *Roster) All() []*Person {
	return slices.Clone(r.people)
}

// Get looks up a person by id
func (r *Roster) Get(id uint64) (*Person, bool) {
	i := r.indexOf(id)
	if i < 0 {
		return nil, false
	}
	return r.people[i], true
}

// At returns the person at position i of the ordered sequence
func (r *Roster) At(i int) (*Person, bool) {
	if i < 0 || i >= len(r.people) {
		return nil, false
	}
	return r.people[i], true
}

func (r *Roster) Len() int {
	return len(r.people)
}

func (r *Roster) indexOf(id uint64) int {
	return slices.IndexFunc(r.people, func(p *Person) bool { return p.ID() == id })
}

func (r *Roster) sort() {
	slices.SortStableFunc(r.people, ComparePersons)
}
