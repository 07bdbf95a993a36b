package shell

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"refstudio/internal/menu"
)

// Shortcut resolves an accelerator into a fyne shortcut. cmdOrControl maps to
// the host's primary modifier.
func Shortcut(a menu.Accelerator) (fyne.Shortcut, error) {
	chord, err := a.Parse()
	if err != nil {
		return nil, err
	}
	return &desktop.CustomShortcut{
		KeyName:  fyne.KeyName(chord.Key),
		Modifier: keyModifier(chord.Modifiers),
	}, nil
}

func keyModifier(m menu.Modifier) fyne.KeyModifier {
	var out fyne.KeyModifier
	if m&menu.ModPrimary != 0 {
		out |= fyne.KeyModifierShortcutDefault
	}
	if m&menu.ModSuper != 0 {
		out |= fyne.KeyModifierSuper
	}
	if m&menu.ModControl != 0 {
		out |= fyne.KeyModifierControl
	}
	if m&menu.ModShift != 0 {
		out |= fyne.KeyModifierShift
	}
	if m&menu.ModAlt != 0 {
		out |= fyne.KeyModifierAlt
	}
	return out
}

func mustShortcut(a menu.Accelerator) fyne.Shortcut {
	s, err := Shortcut(a)
	if err != nil {
		panic(fmt.Sprintf("accelerator %q passed validation but does not resolve: %v", string(a), err))
	}
	return s
}
