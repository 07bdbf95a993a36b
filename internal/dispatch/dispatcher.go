package dispatch

import (
	"fmt"

	"github.com/agnivade/levenshtein"
	"github.com/google/uuid"

	"refstudio/internal/logger"
	"refstudio/internal/menu"
)

// Window is the slice of the native window the dispatcher needs.
type Window interface {
	// Emit sends a payload-less event named after a command to the frontend.
	Emit(event string) error
	IsDevtoolsOpen() bool
	OpenDevtools() error
	CloseDevtools() error
	// Focus moves input focus to the window.
	Focus() error
}

// Route records what a dispatch did with an identifier.
type Route int

const (
	RouteIgnored Route = iota
	RouteIntercepted
	RouteForwarded
	RouteFailed
)

func (r Route) String() string {
	switch r {
	case RouteIntercepted:
		return "intercepted"
	case RouteForwarded:
		return "forwarded"
	case RouteFailed:
		return "failed"
	default:
		return "ignored"
	}
}

// Dispatcher routes menu activations. Only identifiers present in the tree it
// was created from are acted upon; the console toggle is handled locally and
// every other command is forwarded to the frontend under its own name.
type Dispatcher struct {
	known  map[menu.Command]bool
	logger logger.Logger
}

func New(tree menu.Tree, log logger.Logger) *Dispatcher {
	known := make(map[menu.Command]bool)
	for _, c := range tree.Commands() {
		known[c] = true
	}
	return &Dispatcher{known: known, logger: log}
}

// Dispatch handles one activation. It never panics and never returns an
// error: window failures are logged so later activations still run.
func (d *Dispatcher) Dispatch(id string, w Window) (route Route) {
	activation := uuid.NewString()
	fields := map[string]interface{}{
		"id":         id,
		"activation": activation,
	}

	defer func() {
		if r := recover(); r != nil {
			route = RouteFailed
			d.logger.Error("Dispatcher", fmt.Errorf("window handle panicked: %v", r), fields)
		}
	}()

	cmd, ok := d.lookup(id)
	if !ok {
		if s := d.closest(id); s != "" {
			fields["closest"] = s
		}
		d.logger.Debug("Dispatcher", "ignoring unknown command", fields)
		return RouteIgnored
	}
	fields["command"] = cmd.String()

	var err error
	switch cmd {
	case menu.CommandConsoleToggle:
		route = RouteIntercepted
		err = toggleDevtools(w)
	case menu.CommandSettings,
		menu.CommandFileNew,
		menu.CommandFileSave,
		menu.CommandFileMarkdown,
		menu.CommandProjectNew,
		menu.CommandProjectOpen,
		menu.CommandProjectClose,
		menu.CommandFileClose,
		menu.CommandFileCloseAll,
		menu.CommandReferencesOpen,
		menu.CommandReferencesUpload,
		menu.CommandViewNotifications,
		menu.CommandConsoleClear:
		route = RouteForwarded
		err = w.Emit(id)
	default:
		d.logger.Warning("Dispatcher", "command has no route", fields)
		return RouteIgnored
	}

	fields["route"] = route.String()
	if err != nil {
		d.logger.Error("Dispatcher", err, fields)
		return RouteFailed
	}
	d.logger.Debug("Dispatcher", "command dispatched", fields)
	return route
}

// Knows reports whether id belongs to the tree this dispatcher serves.
func (d *Dispatcher) Knows(id string) bool {
	_, ok := d.lookup(id)
	return ok
}

func (d *Dispatcher) lookup(id string) (menu.Command, bool) {
	cmd, ok := menu.ParseCommand(id)
	if !ok || !d.known[cmd] {
		return menu.CommandUnknown, false
	}
	return cmd, true
}

func toggleDevtools(w Window) error {
	if w.IsDevtoolsOpen() {
		if err := w.CloseDevtools(); err != nil {
			return fmt.Errorf("close devtools: %w", err)
		}
		return nil
	}
	if err := w.OpenDevtools(); err != nil {
		return fmt.Errorf("open devtools: %w", err)
	}
	if err := w.Focus(); err != nil {
		return fmt.Errorf("focus window: %w", err)
	}
	return nil
}

// closest names the known identifier nearest to id, for diagnosing typos in
// frontend-originated ids.
func (d *Dispatcher) closest(id string) string {
	best, bestDist := "", -1
	for cmd := range d.known {
		known := cmd.ID()
		dist := levenshtein.ComputeDistance(id, known)
		if bestDist < 0 || dist < bestDist || (dist == bestDist && known < best) {
			best, bestDist = known, dist
		}
	}
	if bestDist < 0 || bestDist > len(id)/3 {
		return ""
	}
	return best
}
