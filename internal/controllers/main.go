package controllers

import (
	"fmt"

	"person-roster/internal/logger"
	"person-roster/internal/models"
	"person-roster/internal/services"
	"person-roster/internal/views"
)

// MainController binds view events to the roster service. Every handler
// runs on the UI event loop and finishes before the next event.
type MainController struct {
	rosterService *services.RosterService
	mainView      *views.MainView
	logger        logger.Logger
}

// NewMainController creates a controller for the given service
func NewMainController(rosterService *services.RosterService, log logger.Logger) *MainController {
	if log == nil {
		log = logger.Nop()
	}
	return &MainController{
		rosterService: rosterService,
		logger:        log,
	}
}

// SetMainView associates the main view with this controller and renders
// the current roster into it
func (mc *MainController) SetMainView(view *views.MainView) {
	mc.mainView = view
	mc.setupViewEventHandlers()
	mc.refresh()
}

func (mc *MainController) setupViewEventHandlers() {
	mc.mainView.SetAddPersonHandler(mc.AddPerson)
	mc.mainView.SetRemovePersonHandler(mc.RemovePerson)
}

// AddPerson validates the form input and inserts a new person when valid.
// Each failing field produces one error line in the activity log.
func (mc *MainController) AddPerson(raw services.RawInput) {
	person, result := mc.rosterService.Add(raw)
	if mc.mainView != nil {
		mc.mainView.ShowValidation(result)
	}

	if !result.Valid {
		for _, fe := range result.Errors {
			mc.appendLog("ERROR: " + fe.Message)
		}
		mc.updateStatus(fmt.Sprintf("%d invalid field(s)", len(result.Errors)))
		return
	}

	mc.logger.Info("MainController", "person added", map[string]interface{}{
		"id":   person.ID(),
		"name": person.FullName(),
	})
	mc.appendLog(fmt.Sprintf("Person %s %s added successfully!", person.FirstName(), person.LastName()))

	mc.refresh()
	mc.updateStatus("Added " + person.FullName())
	if mc.mainView != nil {
		mc.mainView.ClearForm()
	}
}

// RemovePerson deletes the person with the given id. Unknown ids, for
// example a stale row selection, are ignored.
func (mc *MainController) RemovePerson(id uint64) {
	person, ok := mc.rosterService.Get(id)
	if !ok {
		return
	}
	if !mc.rosterService.Remove(id) {
		return
	}

	mc.logger.Info("MainController", "person removed", map[string]interface{}{
		"id":   id,
		"name": person.FullName(),
	})
	mc.appendLog(fmt.Sprintf("Person %s %s removed successfully!", person.FirstName(), person.LastName()))

	mc.refresh()
	mc.updateStatus("Removed " + person.FullName())
}

// Statistics returns the summary for the current roster
func (mc *MainController) Statistics() models.Statistics {
	return mc.rosterService.Statistics()
}

// refresh re-renders the list and recomputes statistics
func (mc *MainController) refresh() {
	if mc.mainView == nil {
		return
	}
	mc.mainView.ShowPersons(mc.rosterService.All())
	mc.mainView.ShowStatistics(mc.rosterService.Statistics())
}

func (mc *MainController) updateStatus(status string) {
	if mc.mainView != nil {
		mc.mainView.UpdateStatus(status)
	}
}

func (mc *MainController) appendLog(message string) {
	if mc.mainView != nil {
		mc.mainView.AppendLog(message)
	}
}

// Shutdown logs the final roster size
func (mc *MainController) Shutdown() {
	mc.logger.Info("MainController", "controller shutdown", map[string]interface{}{
		"persons": mc.rosterService.Len(),
	})
}
