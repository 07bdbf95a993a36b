package menu

import "strings"

// Scheme prefixes every command identifier sent to the frontend.
const Scheme = "refstudio"

// Command is a user-actionable menu entry. Its identifier string is the only
// value exchanged between the native menu and the frontend.
type Command int

const (
	CommandUnknown Command = iota
	CommandSettings
	CommandFileNew
	CommandFileSave
	CommandFileMarkdown
	CommandProjectNew
	CommandProjectOpen
	CommandProjectClose
	CommandFileClose
	CommandFileCloseAll
	CommandReferencesOpen
	CommandReferencesUpload
	CommandViewNotifications
	CommandConsoleToggle
	CommandConsoleClear

	commandCount
)

// paths must be renamed together with the frontend subscriptions.
var commandPaths = [commandCount]string{
	CommandSettings:          "settings",
	CommandFileNew:           "file/new",
	CommandFileSave:          "file/save",
	CommandFileMarkdown:      "file/markdown",
	CommandProjectNew:        "file/project/new",
	CommandProjectOpen:       "file/project/open",
	CommandProjectClose:      "file/project/close",
	CommandFileClose:         "file/close",
	CommandFileCloseAll:      "file/close/all",
	CommandReferencesOpen:    "references/open",
	CommandReferencesUpload:  "references/upload",
	CommandViewNotifications: "view/notifications",
	CommandConsoleToggle:     "debug/console/toggle",
	CommandConsoleClear:      "debug/console/clear",
}

var commandsByID = func() map[string]Command {
	m := make(map[string]Command, commandCount)
	for c := CommandUnknown + 1; c < commandCount; c++ {
		m[c.ID()] = c
	}
	return m
}()

// ID renders the namespaced identifier, e.g. "refstudio://menu/file/save".
// CommandUnknown renders as the empty string.
func (c Command) ID() string {
	if !c.Valid() {
		return ""
	}
	return Scheme + "://menu/" + commandPaths[c]
}

func (c Command) String() string {
	if !c.Valid() {
		return "unknown"
	}
	return strings.ReplaceAll(commandPaths[c], "/", ".")
}

// Valid reports whether c is one of the declared commands.
func (c Command) Valid() bool {
	return c > CommandUnknown && c < commandCount
}

// ParseCommand maps a full identifier back to its command. Only the exact
// form produced by ID is recognised.
func ParseCommand(id string) (Command, bool) {
	c, ok := commandsByID[id]
	return c, ok
}

// AllCommands lists every declared command in declaration order.
func AllCommands() []Command {
	all := make([]Command, 0, commandCount-1)
	for c := CommandUnknown + 1; c < commandCount; c++ {
		all = append(all, c)
	}
	return all
}
