package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar displays the last action and the roster size
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	rosterInfo  *widget.Label
}

// NewStatusBar creates a new status bar component
func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

func (sb *StatusBar) createComponents() {
	sb.statusLabel = widget.NewLabel("Ready")
	sb.rosterInfo = widget.NewLabel("No persons")
}

func (sb *StatusBar) buildLayout() {
	sb.container = container.NewHBox(
		sb.statusLabel,
		widget.NewSeparator(),
		sb.rosterInfo,
	)
}

// SetStatus updates the main status message
func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

// GetStatus returns the current status message
func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

// SetRosterSize updates the person count display
func (sb *StatusBar) SetRosterSize(n int) {
	switch n {
	case 0:
		sb.rosterInfo.SetText("No persons")
	case 1:
		sb.rosterInfo.SetText("1 person")
	default:
		sb.rosterInfo.SetText(fmt.Sprintf("%d persons", n))
	}
}

// GetRosterInfo returns the current person count text
func (sb *StatusBar) GetRosterInfo() string {
	return sb.rosterInfo.Text
}

// Reset resets the status bar to initial state
func (sb *StatusBar) Reset() {
	sb.statusLabel.SetText("Ready")
	sb.rosterInfo.SetText("No persons")
}

// GetContainer returns the status bar container
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
