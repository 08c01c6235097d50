package components

import (
	"strings"

	"person-roster/internal/models"
	"person-roster/internal/services"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// PersonForm captures raw person input and shows per-field error marks
type PersonForm struct {
	container *fyne.Container

	firstName *widget.Entry
	lastName  *widget.Entry
	age       *widget.Entry
	salary    *widget.Entry
	country   *widget.Select
	sex       *widget.Select
	addButton *widget.Button

	hints map[services.Field]*widget.Label

	addHandler func(services.RawInput)
}

// NewPersonForm creates the input form
func NewPersonForm() *PersonForm {
	pf := &PersonForm{hints: make(map[services.Field]*widget.Label)}
	pf.createComponents()
	pf.buildLayout()
	return pf
}

func (pf *PersonForm) createComponents() {
	pf.firstName = widget.NewEntry()
	pf.firstName.SetPlaceHolder("First name")
	pf.lastName = widget.NewEntry()
	pf.lastName.SetPlaceHolder("Last name")
	pf.salary = widget.NewEntry()
	pf.salary.SetPlaceHolder("Salary")

	pf.age = widget.NewEntry()
	pf.age.SetPlaceHolder("Age")
	pf.age.OnChanged = func(text string) {
		if digits := DigitsOnly(text); digits != text {
			pf.age.SetText(digits)
		}
	}

	countries := make([]string, 0, len(models.Countries))
	for _, c := range models.Countries {
		countries = append(countries, c.Label())
	}
	pf.country = widget.NewSelect(countries, nil)
	pf.country.PlaceHolder = "Country"

	sexes := make([]string, 0, len(models.Sexes))
	for _, s := range models.Sexes {
		sexes = append(sexes, s.Label())
	}
	pf.sex = widget.NewSelect(sexes, nil)
	pf.sex.PlaceHolder = "Sex"

	for _, f := range services.AllFields {
		hint := widget.NewLabel("")
		hint.Importance = widget.DangerImportance
		hint.Hide()
		pf.hints[f] = hint
	}

	pf.addButton = widget.NewButton("Add", func() {
		if pf.addHandler != nil {
			pf.addHandler(pf.Read())
		}
	})
	pf.addButton.Importance = widget.HighImportance
}

func (pf *PersonForm) buildLayout() {
	row := func(label string, input fyne.CanvasObject, f services.Field) fyne.CanvasObject {
		return container.NewVBox(widget.NewLabel(label), input, pf.hints[f])
	}

	pf.container = container.NewVBox(
		widget.NewLabelWithStyle("New person", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		row("First name", pf.firstName, services.FieldFirstName),
		row("Last name", pf.lastName, services.FieldLastName),
		row("Age", pf.age, services.FieldAge),
		row("Salary", pf.salary, services.FieldSalary),
		row("Country", pf.country, services.FieldCountry),
		row("Sex", pf.sex, services.FieldSex),
		pf.addButton,
	)
}

// SetAddHandler sets the callback invoked with the raw input on "Add"
func (pf *PersonForm) SetAddHandler(handler func(services.RawInput)) {
	pf.addHandler = handler
}

// Read returns the current form content
func (pf *PersonForm) Read() services.RawInput {
	return services.RawInput{
		FirstName: pf.firstName.Text,
		LastName:  pf.lastName.Text,
		Age:       pf.age.Text,
		Salary:    pf.salary.Text,
		Country:   models.ParseCountry(pf.country.Selected),
		Sex:       models.ParseSex(pf.sex.Selected),
	}
}

// Fill sets every input from raw values
func (pf *PersonForm) Fill(raw services.RawInput) {
	pf.firstName.SetText(raw.FirstName)
	pf.lastName.SetText(raw.LastName)
	pf.age.SetText(raw.Age)
	pf.salary.SetText(raw.Salary)
	if raw.Country == models.CountryUnset {
		pf.country.ClearSelected()
	} else {
		pf.country.SetSelected(raw.Country.Label())
	}
	if raw.Sex == models.SexUnset {
		pf.sex.ClearSelected()
	} else {
		pf.sex.SetSelected(raw.Sex.Label())
	}
}

// ShowValidation marks failing fields and clears the marks of valid ones
func (pf *PersonForm) ShowValidation(result services.ValidationResult) {
	messages := make(map[services.Field]string, len(result.Errors))
	for _, fe := range result.Errors {
		messages[fe.Field] = fe.Message
	}

	for _, f := range services.AllFields {
		hint := pf.hints[f]
		msg, failed := messages[f]
		if failed {
			hint.SetText(msg)
			hint.Show()
		} else {
			hint.SetText("")
			hint.Hide()
		}
	}
}

// HasError reports whether a field is currently marked invalid
func (pf *PersonForm) HasError(f services.Field) bool {
	hint, ok := pf.hints[f]
	return ok && hint.Visible()
}

// Clear empties every input and removes error marks
func (pf *PersonForm) Clear() {
	pf.Fill(services.RawInput{})
	pf.ShowValidation(services.ValidationResult{})
}

// Submit presses the add button
func (pf *PersonForm) Submit() {
	pf.addButton.OnTapped()
}

// GetContainer returns the form container
func (pf *PersonForm) GetContainer() *fyne.Container {
	return pf.container
}

// DigitsOnly drops every rune that is not a decimal digit
func DigitsOnly(text string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, text)
}
