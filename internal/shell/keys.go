package shell

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"refstudio/internal/menu"
)

type typedChord struct {
	key   fyne.KeyName
	shift bool
}

// KeyRouter activates items whose accelerator is a bare key or Shift plus a
// key. The desktop driver only builds shortcuts for chords carrying another
// modifier, so these arrive as typed keys instead.
type KeyRouter struct {
	bindings   map[typedChord]string
	activate   Activate
	leftShift  bool
	rightShift bool
}

// NewKeyRouter collects the typed-key accelerators of a validated tree.
func NewKeyRouter(tree menu.Tree, activate Activate) *KeyRouter {
	r := &KeyRouter{bindings: make(map[typedChord]string), activate: activate}
	for _, it := range tree.Items() {
		if it.Accelerator == "" {
			continue
		}
		chord, err := it.Accelerator.Parse()
		if err != nil || chord.Modifiers&^menu.ModShift != 0 {
			continue
		}
		r.bindings[typedChord{
			key:   fyne.KeyName(chord.Key),
			shift: chord.Modifiers&menu.ModShift != 0,
		}] = it.Command.ID()
	}
	return r
}

// Attach routes the canvas' unfocused key events through the router.
func (r *KeyRouter) Attach(c fyne.Canvas) {
	c.SetOnTypedKey(func(ev *fyne.KeyEvent) { r.TypedKey(ev) })
	if dc, ok := c.(desktop.Canvas); ok {
		dc.SetOnKeyDown(r.KeyDown)
		dc.SetOnKeyUp(r.KeyUp)
	}
}

func (r *KeyRouter) KeyDown(ev *fyne.KeyEvent) {
	r.setShift(ev.Name, true)
}

func (r *KeyRouter) KeyUp(ev *fyne.KeyEvent) {
	r.setShift(ev.Name, false)
}

func (r *KeyRouter) setShift(name fyne.KeyName, down bool) {
	switch name {
	case desktop.KeyShiftLeft:
		r.leftShift = down
	case desktop.KeyShiftRight:
		r.rightShift = down
	}
}

// TypedKey activates the bound identifier, reporting whether the key was
// consumed.
func (r *KeyRouter) TypedKey(ev *fyne.KeyEvent) bool {
	id, ok := r.bindings[typedChord{key: ev.Name, shift: r.leftShift || r.rightShift}]
	if !ok {
		return false
	}
	r.activate(id)
	return true
}
