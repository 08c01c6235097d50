package components

import (
	"fmt"
	"strconv"

	"person-roster/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

const notAvailable = "N/A"

// StatisticsPanel displays a roster summary
type StatisticsPanel struct {
	container *fyne.Container

	males         *widget.Label
	females       *widget.Label
	total         *widget.Label
	totalSalary   *widget.Label
	averageSalary *widget.Label
	totalAge      *widget.Label
	averageAge    *widget.Label
}

// NewStatisticsPanel creates the panel showing an empty summary
func NewStatisticsPanel() *StatisticsPanel {
	sp := &StatisticsPanel{
		males:         widget.NewLabel(""),
		females:       widget.NewLabel(""),
		total:         widget.NewLabel(""),
		totalSalary:   widget.NewLabel(""),
		averageSalary: widget.NewLabel(""),
		totalAge:      widget.NewLabel(""),
		averageAge:    widget.NewLabel(""),
	}

	sp.container = container.NewVBox(
		widget.NewLabelWithStyle("Statistics", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.New(layout.NewFormLayout(),
			widget.NewLabel("Males"), sp.males,
			widget.NewLabel("Females"), sp.females,
			widget.NewLabel("Total"), sp.total,
			widget.NewLabel("Total salary"), sp.totalSalary,
			widget.NewLabel("Average salary"), sp.averageSalary,
			widget.NewLabel("Total age"), sp.totalAge,
			widget.NewLabel("Average age"), sp.averageAge,
		),
	)

	sp.Update(models.Statistics{})
	return sp
}

// Update renders a summary; averages show N/A for an empty roster
func (sp *StatisticsPanel) Update(stats models.Statistics) {
	sp.males.SetText(strconv.Itoa(stats.MaleCount))
	sp.females.SetText(strconv.Itoa(stats.FemaleCount))
	sp.total.SetText(strconv.Itoa(stats.TotalCount))
	sp.totalSalary.SetText(fmt.Sprintf("%.2f", stats.TotalSalary))
	sp.totalAge.SetText(strconv.Itoa(stats.TotalAge))

	if stats.Empty() {
		sp.averageSalary.SetText(notAvailable)
		sp.averageAge.SetText(notAvailable)
		return
	}
	sp.averageSalary.SetText(fmt.Sprintf("%.2f", stats.AverageSalary))
	sp.averageAge.SetText(strconv.Itoa(stats.AverageAge))
}

// Values returns the rendered texts keyed by row name
func (sp *StatisticsPanel) Values() map[string]string {
	return map[string]string{
		"males":          sp.males.Text,
		"females":        sp.females.Text,
		"total":          sp.total.Text,
		"total_salary":   sp.totalSalary.Text,
		"average_salary": sp.averageSalary.Text,
		"total_age":      sp.totalAge.Text,
		"average_age":    sp.averageAge.Text,
	}
}

func (sp *StatisticsPanel) GetContainer() *fyne.Container {
	return sp.container
}
