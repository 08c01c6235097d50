package models

// Statistics is a point-in-time summary of a roster
type Statistics struct {
	MaleCount     int
	FemaleCount   int
	TotalCount    int
	TotalSalary   float64
	AverageSalary float64
	TotalAge      int
	AverageAge    int
}

// Empty reports whether the summary was computed over no persons.
// Averages are zero in that case and should be shown as unavailable.
func (s Statistics) Empty() bool {
	return s.TotalCount == 0
}

// ComputeStatistics derives a summary from the given persons.
// Every person lands in exactly one of the male/female buckets; this must
// change together with the Sex enumeration.
func ComputeStatistics(people []*Person) Statistics {
	var stats Statistics
	for _, p := range people {
		if p.Sex() == Male {
			stats.MaleCount++
		} else {
			stats.FemaleCount++
		}
		stats.TotalSalary += p.Salary()
		stats.TotalAge += p.Age()
	}
	stats.TotalCount = len(people)

	if stats.TotalCount > 0 {
		stats.AverageSalary = stats.TotalSalary / float64(stats.TotalCount)
		stats.AverageAge = stats.TotalAge / stats.TotalCount
	}

	return stats
}
