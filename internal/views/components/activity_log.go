package components

import (
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// LogTimeFormat prefixes every activity line
const LogTimeFormat = "2006.01.02.15.04.05"

// ActivityLog shows human readable action messages, newest first
type ActivityLog struct {
	container *fyne.Container
	text      *widget.Label
	lines     []string
	now       func() time.Time
}

// NewActivityLog creates an empty log
func NewActivityLog() *ActivityLog {
	al := &ActivityLog{now: time.Now}
	al.text = widget.NewLabel("")
	al.text.Wrapping = fyne.TextWrapWord

	scroll := container.NewVScroll(al.text)
	scroll.SetMinSize(fyne.NewSize(0, 120))

	header := widget.NewLabelWithStyle("Log", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	al.container = container.NewBorder(header, nil, nil, nil, scroll)
	return al
}

// SetClock replaces the time source
func (al *ActivityLog) SetClock(now func() time.Time) {
	al.now = now
}

// Append adds a message on top of the log
func (al *ActivityLog) Append(message string) {
	line := al.now().Format(LogTimeFormat) + ": " + message
	al.lines = append([]string{line}, al.lines...)
	al.text.SetText(strings.Join(al.lines, "\n"))
}

// Lines returns the log lines, newest first
func (al *ActivityLog) Lines() []string {
	return append([]string(nil), al.lines...)
}

func (al *ActivityLog) GetContainer() *fyne.Container {
	return al.container
}
