package views

import (
	"person-roster/internal/models"
	"person-roster/internal/services"
	"person-roster/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
)

// MainView is the single roster window: form and statistics on the left,
// person list in the center, activity log at the bottom.
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container

	form       *components.PersonForm
	personList *components.PersonList
	statistics *components.StatisticsPanel
	activity   *components.ActivityLog
	statusBar  *components.StatusBar

	// Event handlers - connected to controller
	addPersonHandler    func(services.RawInput)
	removePersonHandler func(uint64)
}

// NewMainView creates the view and installs it as the window content
func NewMainView(window fyne.Window) *MainView {
	view := &MainView{window: window}

	view.initializeComponents()
	view.buildLayout()
	view.setupEventHandlers()

	return view
}

func (mv *MainView) initializeComponents() {
	mv.form = components.NewPersonForm()
	mv.personList = components.NewPersonList()
	mv.statistics = components.NewStatisticsPanel()
	mv.activity = components.NewActivityLog()
	mv.statusBar = components.NewStatusBar()
}

func (mv *MainView) buildLayout() {
	left := container.NewVBox(
		mv.form.GetContainer(),
		mv.statistics.GetContainer(),
	)

	bottom := container.NewVBox(
		mv.activity.GetContainer(),
		mv.statusBar.GetContainer(),
	)

	mv.mainContainer = container.NewBorder(
		nil,                        // top
		bottom,                     // bottom
		container.NewVScroll(left), // left
		nil,                        // right
		mv.personList.GetContainer(),
	)

	mv.window.SetContent(mv.mainContainer)
}

func (mv *MainView) setupEventHandlers() {
	mv.form.SetAddHandler(func(raw services.RawInput) {
		if mv.addPersonHandler != nil {
			mv.addPersonHandler(raw)
		}
	})

	mv.personList.SetSelectHandler(func(id uint64) {
		if mv.removePersonHandler != nil {
			mv.removePersonHandler(id)
		}
	})
}

// SetAddPersonHandler sets the handler for the "Add" button
func (mv *MainView) SetAddPersonHandler(handler func(services.RawInput)) {
	mv.addPersonHandler = handler
}

// SetRemovePersonHandler sets the handler for list row clicks
func (mv *MainView) SetRemovePersonHandler(handler func(uint64)) {
	mv.removePersonHandler = handler
}

// UI update methods - called by controller

// ShowPersons replaces the list rows
func (mv *MainView) ShowPersons(people []*models.Person) {
	mv.personList.SetPersons(people)
	mv.statusBar.SetRosterSize(len(people))
}

// UpdateStatus updates the status bar message
func (mv *MainView) UpdateStatus(status string) {
	mv.statusBar.SetStatus(status)
}

// ShowStatistics renders a summary
func (mv *MainView) ShowStatistics(stats models.Statistics) {
	mv.statistics.Update(stats)
}

// ShowValidation marks or clears the form fields
func (mv *MainView) ShowValidation(result services.ValidationResult) {
	mv.form.ShowValidation(result)
}

// ClearForm resets the form after a successful add
func (mv *MainView) ClearForm() {
	mv.form.Clear()
}

// AppendLog adds a line to the activity log
func (mv *MainView) AppendLog(message string) {
	mv.activity.Append(message)
}

// ShowConfirm shows a confirmation dialog
func (mv *MainView) ShowConfirm(title, message string, callback func(bool)) {
	dialog.ShowConfirm(title, message, callback, mv.window)
}

// Show displays the window
func (mv *MainView) Show() {
	mv.window.Show()
}

func (mv *MainView) Form() *components.PersonForm            { return mv.form }
func (mv *MainView) PersonList() *components.PersonList      { return mv.personList }
func (mv *MainView) Statistics() *components.StatisticsPanel { return mv.statistics }
func (mv *MainView) StatusBar() *components.StatusBar        { return mv.statusBar }
func (mv *MainView) ActivityLog() *components.ActivityLog    { return mv.activity }
