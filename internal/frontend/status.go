package frontend

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar displays the last action and workspace summary.
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	projectInfo *widget.Label
	editorInfo  *widget.Label
}

func NewStatusBar() *StatusBar {
	sb := &StatusBar{
		statusLabel: widget.NewLabel("Ready"),
		projectInfo: widget.NewLabel("No project"),
		editorInfo:  widget.NewLabel("Editors: 0"),
	}
	sb.container = container.NewBorder(nil, nil,
		sb.statusLabel,
		container.NewHBox(sb.projectInfo, widget.NewSeparator(), sb.editorInfo),
	)
	return sb
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

func (sb *StatusBar) Status() string {
	return sb.statusLabel.Text
}

func (sb *StatusBar) SetWorkspace(project string, editors int) {
	if project == "" {
		project = "No project"
	}
	sb.projectInfo.SetText(project)
	sb.editorInfo.SetText(fmt.Sprintf("Editors: %d", editors))
}
