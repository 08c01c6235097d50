package components

import (
	"person-roster/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// PersonList renders the ordered roster. Selecting a row reports the
// person's id and immediately clears the selection.
type PersonList struct {
	container *fyne.Container
	list      *widget.List
	people    []*models.Person

	selectHandler func(id uint64)
}

// NewPersonList creates an empty list
func NewPersonList() *PersonList {
	pl := &PersonList{}
	pl.list = widget.NewList(
		func() int { return len(pl.people) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(i widget.ListItemID, obj fyne.CanvasObject) {
			if i < 0 || i >= len(pl.people) {
				return
			}
			obj.(*widget.Label).SetText(pl.people[i].String())
		},
	)
	pl.list.OnSelected = pl.onSelected

	header := widget.NewLabelWithStyle("Persons (click to remove)", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	pl.container = container.NewBorder(header, nil, nil, nil, pl.list)
	return pl
}

func (pl *PersonList) onSelected(i widget.ListItemID) {
	if i < 0 || i >= len(pl.people) {
		pl.list.UnselectAll()
		return
	}
	id := pl.people[i].ID()
	pl.list.UnselectAll()
	if pl.selectHandler != nil {
		pl.selectHandler(id)
	}
}

// SetSelectHandler sets the callback invoked with the clicked person's id
func (pl *PersonList) SetSelectHandler(handler func(id uint64)) {
	pl.selectHandler = handler
}

// SetPersons replaces the displayed rows
func (pl *PersonList) SetPersons(people []*models.Person) {
	pl.people = people
	pl.list.Refresh()
}

// Len returns the number of displayed rows
func (pl *PersonList) Len() int {
	return len(pl.people)
}

// Select simulates a click on row i
func (pl *PersonList) Select(i int) {
	pl.list.Select(i)
}

func (pl *PersonList) GetContainer() *fyne.Container {
	return pl.container
}
