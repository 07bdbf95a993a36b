package frontend

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"refstudio/internal/eventbus"
	"refstudio/internal/logger"
	"refstudio/internal/menu"
)

type fakeConsole struct{ cleared int }

func (c *fakeConsole) Clear() { c.cleared++ }

func newFrontend(t *testing.T) (*Frontend, *eventbus.Bus, *fakeConsole) {
	t.Helper()
	a := test.NewTempApp(t)
	w := a.NewWindow("Studio")
	t.Cleanup(w.Close)

	console := &fakeConsole{}
	f := New(w, console, "log.level = info", logger.NewNop())
	w.SetContent(f.Content())

	bus := eventbus.NewBus(32, logger.NewNop())
	f.Subscribe(bus)
	return f, bus, console
}

// publish sends every command and waits for the bus to drain.
func publish(t *testing.T, bus *eventbus.Bus, cmds ...menu.Command) {
	t.Helper()
	for _, c := range cmds {
		require.NoError(t, bus.Publish(c.ID()))
	}
	bus.Shutdown()
}

func TestFrontendSubscribesToEveryForwardedCommand(t *testing.T) {
	f, bus, _ := newFrontend(t)
	defer bus.Shutdown()
	for _, c := range menu.AllCommands() {
		if c == menu.CommandConsoleToggle {
			assert.NotContains(t, f.reactions, c)
			continue
		}
		assert.Contains(t, f.reactions, c, c.String())
	}
}

func TestFrontendEditorLifecycle(t *testing.T) {
	f, bus, _ := newFrontend(t)
	publish(t, bus,
		menu.CommandFileNew,
		menu.CommandFileNew,
		menu.CommandFileSave,
	)

	assert.Eventually(t, func() bool { return f.EditorCount() == 2 }, time.Second, 10*time.Millisecond)
	assert.Equal(t, "Saved Untitled-2", f.Status().Status())
}

func TestFrontendCloseCommands(t *testing.T) {
	f, bus, _ := newFrontend(t)
	publish(t, bus,
		menu.CommandFileNew,
		menu.CommandFileNew,
		menu.CommandFileNew,
		menu.CommandFileClose,
		menu.CommandFileMarkdown,
		menu.CommandFileCloseAll,
	)

	assert.Eventually(t, func() bool {
		return f.EditorCount() == 0 && f.Status().Status() == "Closed all editors"
	}, time.Second, 10*time.Millisecond)
}

func TestFrontendConsoleClearAndNotifications(t *testing.T) {
	f, bus, console := newFrontend(t)
	publish(t, bus, menu.CommandConsoleClear, menu.CommandViewNotifications)

	assert.Eventually(t, func() bool { return console.cleared == 1 && f.NotificationsVisible() }, time.Second, 10*time.Millisecond)
}

func TestFrontendSaveWithoutEditor(t *testing.T) {
	f, bus, _ := newFrontend(t)
	publish(t, bus, menu.CommandFileSave)

	assert.Eventually(t, func() bool { return f.Status().Status() == "Nothing to save" }, time.Second, 10*time.Millisecond)
}

type fakeKeys struct {
	typed []fyne.KeyName
	shift bool
}

func (k *fakeKeys) KeyDown(*fyne.KeyEvent) { k.shift = true }
func (k *fakeKeys) KeyUp(*fyne.KeyEvent)   { k.shift = false }
func (k *fakeKeys) TypedKey(ev *fyne.KeyEvent) bool {
	if ev.Name != fyne.KeyF12 {
		return false
	}
	k.typed = append(k.typed, ev.Name)
	return true
}

func TestEditorPassesKeysToHandler(t *testing.T) {
	f, bus, _ := newFrontend(t)
	keys := &fakeKeys{}
	f.SetKeyHandler(keys)
	publish(t, bus, menu.CommandFileNew)
	require.Eventually(t, func() bool { return f.EditorCount() == 1 }, time.Second, 10*time.Millisecond)

	editor, ok := f.editors.Items[0].Content.(*editorEntry)
	require.True(t, ok)

	editor.KeyDown(&fyne.KeyEvent{Name: "LeftShift"})
	assert.True(t, keys.shift)
	editor.TypedKey(&fyne.KeyEvent{Name: fyne.KeyF12})
	editor.TypedKey(&fyne.KeyEvent{Name: fyne.KeyReturn})
	assert.Equal(t, []fyne.KeyName{fyne.KeyF12}, keys.typed)
}
