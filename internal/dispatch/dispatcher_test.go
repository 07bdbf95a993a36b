package dispatch

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"refstudio/internal/logger"
	"refstudio/internal/menu"
)

type fakeWindow struct {
	emitted    []string
	devtools   bool
	focusCalls int
	emitErr    error
	openErr    error
	panicOn    string
}

func (f *fakeWindow) Emit(event string) error {
	if f.panicOn == "emit" {
		panic("handle disposed")
	}
	if f.emitErr != nil {
		return f.emitErr
	}
	f.emitted = append(f.emitted, event)
	return nil
}

func (f *fakeWindow) IsDevtoolsOpen() bool { return f.devtools }

func (f *fakeWindow) OpenDevtools() error {
	if f.openErr != nil {
		return f.openErr
	}
	f.devtools = true
	return nil
}

func (f *fakeWindow) CloseDevtools() error {
	f.devtools = false
	return nil
}

func (f *fakeWindow) Focus() error {
	f.focusCalls++
	return nil
}

func newDispatcher(variant menu.Variant) *Dispatcher {
	return New(menu.Build("Studio", variant), logger.NewNop())
}

func TestDispatchToggleOpensThenCloses(t *testing.T) {
	d := newDispatcher(menu.Debug)
	w := &fakeWindow{}
	toggle := menu.CommandConsoleToggle.ID()

	assert.Equal(t, RouteIntercepted, d.Dispatch(toggle, w))
	assert.True(t, w.devtools)
	assert.Equal(t, 1, w.focusCalls)

	assert.Equal(t, RouteIntercepted, d.Dispatch(toggle, w))
	assert.False(t, w.devtools)
	assert.Equal(t, 1, w.focusCalls)
	assert.Empty(t, w.emitted)
}

func TestDispatchToggleUnaffectedByClear(t *testing.T) {
	d := newDispatcher(menu.Debug)
	w := &fakeWindow{}
	toggle := menu.CommandConsoleToggle.ID()
	clearID := menu.CommandConsoleClear.ID()

	d.Dispatch(toggle, w)
	for i := 0; i < 3; i++ {
		d.Dispatch(clearID, w)
	}
	assert.True(t, w.devtools)

	d.Dispatch(toggle, w)
	assert.False(t, w.devtools)
	assert.Equal(t, []string{clearID, clearID, clearID}, w.emitted)
}

func TestDispatchForwardsEveryOtherCommand(t *testing.T) {
	d := newDispatcher(menu.Debug)
	for _, c := range menu.AllCommands() {
		if c == menu.CommandConsoleToggle {
			continue
		}
		t.Run(c.String(), func(t *testing.T) {
			w := &fakeWindow{}
			assert.Equal(t, RouteForwarded, d.Dispatch(c.ID(), w))
			assert.Equal(t, []string{c.ID()}, w.emitted)
			assert.False(t, w.devtools)
			assert.Zero(t, w.focusCalls)
		})
	}
}

func TestDispatchUnknownIsNoop(t *testing.T) {
	d := newDispatcher(menu.Debug)
	for _, id := range []string{"not/a/real/id", "", "refstudio://menu/quit", "refstudio://menu/file/sav", "menu/file/save"} {
		w := &fakeWindow{}
		assert.NotPanics(t, func() {
			assert.Equal(t, RouteIgnored, d.Dispatch(id, w))
		})
		assert.Empty(t, w.emitted)
		assert.False(t, w.devtools)
	}
}

func TestDispatchReleaseTreeIgnoresDebugCommands(t *testing.T) {
	d := newDispatcher(menu.Release)
	w := &fakeWindow{}

	assert.Equal(t, RouteIgnored, d.Dispatch(menu.CommandConsoleToggle.ID(), w))
	assert.Equal(t, RouteIgnored, d.Dispatch(menu.CommandConsoleClear.ID(), w))
	assert.False(t, w.devtools)
	assert.Empty(t, w.emitted)
	assert.False(t, d.Knows(menu.CommandConsoleToggle.ID()))
	assert.True(t, d.Knows(menu.CommandFileSave.ID()))
}

func TestDispatchRecognisesOnlyParsableIDs(t *testing.T) {
	d := newDispatcher(menu.Debug)
	for _, c := range menu.AllCommands() {
		_, parsed := menu.ParseCommand(c.ID())
		assert.Equal(t, parsed, d.Knows(c.ID()), c.String())
	}
	_, parsed := menu.ParseCommand("menu/file/save")
	assert.False(t, parsed)
	assert.False(t, d.Knows("menu/file/save"))
}

func TestDispatchLogsWindowErrors(t *testing.T) {
	var buf bytes.Buffer
	d := New(menu.Build("Studio", menu.Debug), logger.NewZerolog(&buf, zerolog.DebugLevel))

	w := &fakeWindow{emitErr: errors.New("window gone")}
	assert.Equal(t, RouteFailed, d.Dispatch(menu.CommandFileSave.ID(), w))
	assert.Contains(t, buf.String(), "window gone")

	w = &fakeWindow{openErr: errors.New("no panel")}
	assert.Equal(t, RouteFailed, d.Dispatch(menu.CommandConsoleToggle.ID(), w))
	assert.False(t, w.devtools)
	assert.Zero(t, w.focusCalls)

	// a failed activation does not block the next one
	w.openErr = nil
	assert.Equal(t, RouteIntercepted, d.Dispatch(menu.CommandConsoleToggle.ID(), w))
	assert.True(t, w.devtools)
}

func TestDispatchRecoversFromPanickingWindow(t *testing.T) {
	var buf bytes.Buffer
	d := New(menu.Build("Studio", menu.Release), logger.NewZerolog(&buf, zerolog.DebugLevel))
	w := &fakeWindow{panicOn: "emit"}

	require.NotPanics(t, func() {
		assert.Equal(t, RouteFailed, d.Dispatch(menu.CommandSettings.ID(), w))
	})
	assert.Contains(t, buf.String(), "handle disposed")
}

func TestClosestSuggestion(t *testing.T) {
	d := newDispatcher(menu.Release)
	assert.Equal(t, menu.CommandFileSave.ID(), d.closest("refstudio://menu/file/sav"))
	assert.Equal(t, "", d.closest("not/a/real/id"))
}
