package frontend

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// KeyHandler receives key events before a focused editor does, so menu
// accelerators delivered as typed keys still fire while typing.
type KeyHandler interface {
	KeyDown(ev *fyne.KeyEvent)
	KeyUp(ev *fyne.KeyEvent)
	TypedKey(ev *fyne.KeyEvent) bool
}

type editorEntry struct {
	widget.Entry
	keys KeyHandler
}

func newEditorEntry(keys KeyHandler) *editorEntry {
	e := &editorEntry{keys: keys}
	e.MultiLine = true
	e.Wrapping = fyne.TextWrapWord
	e.ExtendBaseWidget(e)
	return e
}

func (e *editorEntry) TypedKey(ev *fyne.KeyEvent) {
	if e.keys != nil && e.keys.TypedKey(ev) {
		return
	}
	e.Entry.TypedKey(ev)
}

func (e *editorEntry) KeyDown(ev *fyne.KeyEvent) {
	if e.keys != nil {
		e.keys.KeyDown(ev)
	}
	e.Entry.KeyDown(ev)
}

func (e *editorEntry) KeyUp(ev *fyne.KeyEvent) {
	if e.keys != nil {
		e.keys.KeyUp(ev)
	}
	e.Entry.KeyUp(ev)
}
