package services

import (
	"person-roster/internal/logger"
	"person-roster/internal/models"
)

// RosterService is the call surface the UI uses: it validates input,
// constructs persons with its own id sequence and keeps the roster sorted.
// Statistics are recomputed on request; nothing is pushed to listeners.
type RosterService struct {
	roster    *models.Roster
	seq       *models.IDSequence
	validator *Validator
	generator *SampleGenerator
	logger    logger.Logger
}

// RosterOptions configures sample data for a new service
type RosterOptions struct {
	SampleMax int
	// Seed fixes the sample generator; zero means seed from the clock.
	Seed uint64
}

// NewRosterService creates an empty roster service
func NewRosterService(log logger.Logger, opts RosterOptions) *RosterService {
	if log == nil {
		log = logger.Nop()
	}

	seq := models.NewIDSequence()
	var gen *SampleGenerator
	if opts.Seed != 0 {
		gen = NewSeededSampleGenerator(seq, opts.SampleMax, opts.Seed)
	} else {
		gen = NewSampleGenerator(seq, opts.SampleMax)
	}

	return &RosterService{
		roster:    models.NewRoster(),
		seq:       seq,
		validator: NewValidator(),
		generator: gen,
		logger:    log,
	}
}

// Validate checks raw input without touching the roster
func (rs *RosterService) Validate(raw RawInput) ValidationResult {
	return rs.validator.Validate(raw)
}

// Add validates raw input and, when valid, constructs and inserts a person.
// On failure nothing is constructed and the returned person is nil.
func (rs *RosterService) Add(raw RawInput) (*models.Person, ValidationResult) {
	result := rs.validator.Validate(raw)
	if !result.Valid {
		fields := make([]string, 0, len(result.Errors))
		for _, fe := range result.Errors {
			fields = append(fields, string(fe.Field))
		}
		rs.logger.Debug("RosterService", "input rejected", map[string]interface{}{
			"invalid_fields": fields,
		})
		return nil, result
	}

	p := rs.Create(result.Input)
	rs.Insert(p)
	return p, result
}

// Create constructs a person from typed input using the service's sequence
func (rs *RosterService) Create(in models.PersonInput) *models.Person {
	return models.NewPerson(rs.seq, in)
}

// Insert adds an already constructed person
func (rs *RosterService) Insert(p *models.Person) {
	rs.roster.Insert(p)
	rs.logger.Debug("RosterService", "person inserted", map[string]interface{}{
		"id":    p.ID(),
		"size":  rs.roster.Len(),
		"label": p.String(),
	})
}

// Remove deletes a person by id; a stale id is silently ignored
func (rs *RosterService) Remove(id uint64) bool {
	removed := rs.roster.Remove(id)
	if !removed {
		rs.logger.Debug("RosterService", "remove ignored, id not present", map[string]interface{}{
			"id": id,
		})
	}
	return removed
}

// Get looks up a person by id
func (rs *RosterService) Get(id uint64) (*models.Person, bool) {
	return rs.roster.Get(id)
}

// All returns the current ordered persons
func (rs *RosterService) All() []*models.Person {
	return rs.roster.All()
}

// Len returns the current roster size
func (rs *RosterService) Len() int {
	return rs.roster.Len()
}

// Statistics recomputes the summary from the roster's current contents
func (rs *RosterService) Statistics() models.Statistics {
	return models.ComputeStatistics(rs.roster.All())
}

// GenerateSampleData returns random persons without inserting them
func (rs *RosterService) GenerateSampleData() []*models.Person {
	return rs.generator.Generate()
}

// Seed replaces the roster with freshly generated sample data
func (rs *RosterService) Seed() int {
	people := rs.GenerateSampleData()
	rs.roster.Reset(people)

	rs.logger.Info("RosterService", "sample data loaded", map[string]interface{}{
		"count": len(people),
	})
	return len(people)
}
