package app

import (
	"fmt"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"

	"refstudio/internal/config"
	"refstudio/internal/dispatch"
	"refstudio/internal/eventbus"
	"refstudio/internal/frontend"
	"refstudio/internal/logger"
	"refstudio/internal/menu"
	"refstudio/internal/shell"
	"refstudio/internal/shutdown"
)

const (
	AppVersion      = "1.0.0"
	EventBufferSize = 64
)

// Application owns the window, the menu tree built for it and the dispatcher
// registered as the only handler of menu activations.
type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	handle     *shell.Window
	tree       menu.Tree
	dispatcher *dispatch.Dispatcher
	bus        *eventbus.Bus
	frontend   *frontend.Frontend
	shutdown   *shutdown.Manager
	logger     logger.Logger
	cfg        config.Config
}

// NewApplication builds and validates the menu, then wires the window. A tree
// that fails validation aborts startup.
func NewApplication(fyneApp fyne.App, cfg config.Config, log logger.Logger) (*Application, error) {
	variant := cfg.Variant()
	tree := menu.Build(cfg.App.Name, variant)
	if err := tree.Validate(); err != nil {
		return nil, fmt.Errorf("invalid application menu: %w", err)
	}

	window := fyneApp.NewWindow(cfg.App.Name)
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	window.CenterOnScreen()
	window.SetMaster()

	bus := eventbus.NewBus(EventBufferSize, log)
	handle := shell.NewWindow(window, bus, shell.NewConsole())
	front := frontend.New(window, handle.Console(), settingsSummary(cfg, variant), log)
	front.Subscribe(bus)
	window.SetContent(handle.Layout(front.Content()))

	a := &Application{
		fyneApp:    fyneApp,
		window:     window,
		handle:     handle,
		tree:       tree,
		dispatcher: dispatch.New(tree, log),
		bus:        bus,
		frontend:   front,
		shutdown:   shutdown.NewManager(log),
		logger:     log,
		cfg:        cfg,
	}

	native := shell.NewNative(fyneApp, window, AppVersion, log)
	router, err := shell.Install(window, tree, a.onMenuEvent, native)
	if err != nil {
		bus.Shutdown()
		return nil, fmt.Errorf("install menu: %w", err)
	}
	front.SetKeyHandler(router)

	a.shutdown.Register("event bus", bus.Shutdown)
	a.shutdown.Register("window handle", handle.MarkClosed)
	window.SetOnClosed(a.shutdown.Shutdown)

	log.Info("Application", "initialization complete", map[string]interface{}{
		"version":  AppVersion,
		"variant":  variant.String(),
		"submenus": len(tree.Submenus),
		"commands": len(tree.Commands()),
	})
	return a, nil
}

// onMenuEvent is the single menu activation handler.
func (a *Application) onMenuEvent(id string) {
	a.dispatcher.Dispatch(id, a.handle)
}

func (a *Application) Run() {
	a.shutdown.Listen(func() { fyne.Do(a.fyneApp.Quit) })

	a.openDevtoolsOnStart()

	a.window.Show()
	a.logger.Info("Application", "window displayed", nil)
	a.fyneApp.Run()
	a.shutdown.Shutdown()
}

// openDevtoolsOnStart opens the console when configured to and the Debug
// group exists. It reports whether the panel was opened.
func (a *Application) openDevtoolsOnStart() bool {
	if !a.cfg.Devtools.OpenOnStart || !a.tree.Variant.HasDevtools() || a.handle.IsDevtoolsOpen() {
		return false
	}
	return a.Dispatch(menu.CommandConsoleToggle.ID()) == dispatch.RouteIntercepted
}

func (a *Application) Tree() menu.Tree {
	return a.tree
}

func (a *Application) Window() *shell.Window {
	return a.handle
}

func (a *Application) Dispatch(id string) dispatch.Route {
	return a.dispatcher.Dispatch(id, a.handle)
}

func (a *Application) Shutdown() {
	a.shutdown.Shutdown()
}

// NewFyneApp creates the fyne application carrying the configured metadata.
func NewFyneApp(cfg config.Config) fyne.App {
	fyneApp := fyneapp.NewWithID(cfg.App.ID)
	fyneapp.SetMetadata(fyne.AppMetadata{
		ID:      cfg.App.ID,
		Name:    cfg.App.Name,
		Version: AppVersion,
	})
	return fyneApp
}

func settingsSummary(cfg config.Config, variant menu.Variant) string {
	return fmt.Sprintf("Build: %s\nLog level: %s\nDevtools opt-in: %t\nOpen devtools on start: %t",
		variant, cfg.Log.Level, cfg.Devtools.Enabled, cfg.Devtools.OpenOnStart)
}
