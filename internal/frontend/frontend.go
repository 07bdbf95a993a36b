package frontend

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"refstudio/internal/eventbus"
	"refstudio/internal/logger"
	"refstudio/internal/menu"
)

// Clearer is the console view the frontend empties on request.
type Clearer interface {
	Clear()
}

// Frontend reacts to forwarded menu commands. It subscribes to each command
// identifier by exact name; handlers hop to the UI goroutine with fyne.Do.
type Frontend struct {
	win      fyne.Window
	console  Clearer
	settings string
	logger   logger.Logger
	keys     KeyHandler

	status        *StatusBar
	editors       *container.DocTabs
	notifications *widget.Card
	project       string
	untitled      int

	reactions map[menu.Command]func()
}

// New builds the frontend. settings is the text shown by the settings dialog.
func New(win fyne.Window, console Clearer, settings string, log logger.Logger) *Frontend {
	f := &Frontend{
		win:           win,
		console:       console,
		settings:      settings,
		logger:        log,
		status:        NewStatusBar(),
		editors:       container.NewDocTabs(),
		notifications: widget.NewCard("Notifications", "", widget.NewLabel("No new notifications")),
	}
	f.notifications.Hide()
	f.editors.OnClosed = func(*container.TabItem) { f.refreshWorkspace() }

	f.reactions = map[menu.Command]func(){
		menu.CommandSettings:          f.showSettings,
		menu.CommandFileNew:           f.newFile,
		menu.CommandFileSave:          func() { f.saveActive("") },
		menu.CommandFileMarkdown:      func() { f.saveActive(".md") },
		menu.CommandProjectNew:        func() { f.setProject("Untitled Project", "Created project") },
		menu.CommandProjectOpen:       func() { f.setProject("Project", "Opened project") },
		menu.CommandProjectClose:      func() { f.setProject("", "Closed project") },
		menu.CommandFileClose:         f.closeActive,
		menu.CommandFileCloseAll:      f.closeAll,
		menu.CommandReferencesOpen:    func() { f.status.SetStatus("References opened") },
		menu.CommandReferencesUpload:  func() { f.status.SetStatus("Upload references...") },
		menu.CommandViewNotifications: f.toggleNotifications,
		menu.CommandConsoleClear:      f.clearConsole,
	}
	return f
}

// Subscribe registers one handler per command the frontend understands.
func (f *Frontend) Subscribe(bus *eventbus.Bus) {
	for cmd, react := range f.reactions {
		bus.Subscribe(cmd.ID(), eventbus.HandlerFunc{
			ID: "frontend:" + cmd.String(),
			Fn: func(e eventbus.Event) {
				f.logger.Debug("Frontend", "handling command", map[string]interface{}{
					"event": e.Name,
					"id":    e.ID,
				})
				fyne.Do(react)
			},
		})
	}
}

// Content is the main window body: editors, notifications and status bar.
func (f *Frontend) Content() fyne.CanvasObject {
	return container.NewBorder(nil, f.status.GetContainer(), nil, f.notifications, f.editors)
}

// SetKeyHandler routes key events of editors opened from now on.
func (f *Frontend) SetKeyHandler(keys KeyHandler) {
	f.keys = keys
}

func (f *Frontend) Status() *StatusBar {
	return f.status
}

func (f *Frontend) EditorCount() int {
	return len(f.editors.Items)
}

func (f *Frontend) NotificationsVisible() bool {
	return f.notifications.Visible()
}

func (f *Frontend) showSettings() {
	dialog.ShowInformation("Settings", f.settings, f.win)
	f.status.SetStatus("Settings")
}

func (f *Frontend) newFile() {
	f.untitled++
	name := fmt.Sprintf("Untitled-%d", f.untitled)
	item := container.NewTabItem(name, newEditorEntry(f.keys))
	f.editors.Append(item)
	f.editors.Select(item)
	f.status.SetStatus("New file " + name)
	f.refreshWorkspace()
}

func (f *Frontend) saveActive(ext string) {
	active := f.editors.Selected()
	if active == nil {
		f.status.SetStatus("Nothing to save")
		return
	}
	f.status.SetStatus("Saved " + active.Text + ext)
}

func (f *Frontend) setProject(name, message string) {
	f.project = name
	f.status.SetStatus(message)
	f.refreshWorkspace()
}

func (f *Frontend) closeActive() {
	active := f.editors.Selected()
	if active == nil {
		return
	}
	f.editors.Remove(active)
	f.status.SetStatus("Closed " + active.Text)
	f.refreshWorkspace()
}

func (f *Frontend) closeAll() {
	f.editors.SetItems(nil)
	f.status.SetStatus("Closed all editors")
	f.refreshWorkspace()
}

func (f *Frontend) toggleNotifications() {
	if f.notifications.Visible() {
		f.notifications.Hide()
		return
	}
	f.notifications.Show()
}

func (f *Frontend) clearConsole() {
	f.console.Clear()
	f.status.SetStatus("Console cleared")
}

func (f *Frontend) refreshWorkspace() {
	f.status.SetWorkspace(f.project, len(f.editors.Items))
}
