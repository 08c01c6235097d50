package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"person-roster/internal/models"
)

func withAgeSalary(seq *models.IDSequence, age int, salary float64, sex models.Sex) *models.Person {
	return models.NewPerson(seq, models.PersonInput{
		FirstName: "A", LastName: "B", Age: age, Salary: salary, Country: models.France, Sex: sex,
	})
}

func TestComputeStatistics_Empty(t *testing.T) {
	stats := models.ComputeStatistics(nil)

	assert.True(t, stats.Empty())
	assert.Equal(t, models.Statistics{}, stats)
}

func TestComputeStatistics_SinglePerson(t *testing.T) {
	seq := models.NewIDSequence()
	stats := models.ComputeStatistics([]*models.Person{withAgeSalary(seq, 30, 100.00, models.Male)})

	assert.Equal(t, models.Statistics{
		MaleCount:     1,
		FemaleCount:   0,
		TotalCount:    1,
		TotalSalary:   100.00,
		AverageSalary: 100.00,
		TotalAge:      30,
		AverageAge:    30,
	}, stats)
	assert.False(t, stats.Empty())
}

func TestComputeStatistics_AverageAgeTruncates(t *testing.T) {
	seq := models.NewIDSequence()
	stats := models.ComputeStatistics([]*models.Person{
		withAgeSalary(seq, 10, 10, models.Male),
		withAgeSalary(seq, 21, 20, models.Female),
		withAgeSalary(seq, 30, 30.5, models.Female),
	})

	assert.Equal(t, 61, stats.TotalAge)
	assert.Equal(t, 20, stats.AverageAge)
	assert.Equal(t, 1, stats.MaleCount)
	assert.Equal(t, 2, stats.FemaleCount)
	assert.Equal(t, 3, stats.TotalCount)
	assert.InDelta(t, 60.5, stats.TotalSalary, 1e-9)
	assert.InDelta(t, 60.5/3, stats.AverageSalary, 1e-9)
}

func TestComputeStatistics_TwoBucketsOnly(t *testing.T) {
	seq := models.NewIDSequence()
	stats := models.ComputeStatistics([]*models.Person{
		withAgeSalary(seq, 1, 1, models.SexUnset),
		withAgeSalary(seq, 1, 1, models.Male),
	})

	assert.Equal(t, stats.TotalCount, stats.MaleCount+stats.FemaleCount)
	assert.Equal(t, 1, stats.FemaleCount)
}
