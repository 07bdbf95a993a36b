package shell

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"refstudio/internal/eventbus"
)

var ErrWindowClosed = errors.New("window closed")

// Window is the dispatcher's handle on the main fyne window: it forwards
// events to the frontend over the bus and shows or hides the devtools console
// docked under the main content. Methods run on the UI goroutine.
type Window struct {
	win     fyne.Window
	bus     *eventbus.Bus
	console *Console
	closed  bool
}

func NewWindow(win fyne.Window, bus *eventbus.Bus, console *Console) *Window {
	console.Object().Hide()
	return &Window{win: win, bus: bus, console: console}
}

// Layout docks the console below content.
func (w *Window) Layout(content fyne.CanvasObject) fyne.CanvasObject {
	return container.NewBorder(nil, w.console.Object(), nil, nil, content)
}

func (w *Window) Emit(event string) error {
	if w.closed {
		return ErrWindowClosed
	}
	if err := w.bus.Publish(event); err != nil {
		return fmt.Errorf("emit %s: %w", event, err)
	}
	w.console.Append("emit " + event)
	return nil
}

func (w *Window) IsDevtoolsOpen() bool {
	return !w.closed && w.console.Object().Visible()
}

func (w *Window) OpenDevtools() error {
	if w.closed {
		return ErrWindowClosed
	}
	w.console.Object().Show()
	w.console.Append("devtools opened")
	return nil
}

func (w *Window) CloseDevtools() error {
	if w.closed {
		return ErrWindowClosed
	}
	w.console.Object().Hide()
	return nil
}

func (w *Window) Focus() error {
	if w.closed {
		return ErrWindowClosed
	}
	w.win.RequestFocus()
	return nil
}

// MarkClosed makes every later call fail with ErrWindowClosed.
func (w *Window) MarkClosed() {
	w.closed = true
}

func (w *Window) Console() *Console {
	return w.console
}
