package shell

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"refstudio/internal/logger"
	"refstudio/internal/menu"
)

// Native executes platform built-in entries directly on the fyne window.
// Kinds fyne has no equivalent for are not rendered.
type Native struct {
	app     fyne.App
	win     fyne.Window
	version string
	logger  logger.Logger
}

func NewNative(app fyne.App, win fyne.Window, version string, log logger.Logger) *Native {
	return &Native{app: app, win: win, version: version, logger: log}
}

// Supports reports whether kind can be rendered on this platform layer.
func (n *Native) Supports(kind menu.NativeKind) bool {
	switch kind {
	case menu.NativeAbout, menu.NativeQuit,
		menu.NativeUndo, menu.NativeRedo,
		menu.NativeCut, menu.NativeCopy, menu.NativePaste, menu.NativeSelectAll,
		menu.NativeEnterFullScreen, menu.NativeCloseWindow:
		return true
	default:
		return false
	}
}

// Label is the text shown for a native entry.
func (n *Native) Label(a menu.NativeAction) string {
	switch a.Kind {
	case menu.NativeAbout:
		if a.Label == "" {
			return "About"
		}
		return "About " + a.Label
	case menu.NativeQuit:
		return "Quit"
	default:
		return a.Kind.String()
	}
}

func (n *Native) Run(a menu.NativeAction) {
	n.logger.Debug("Native", "running native action", map[string]interface{}{
		"kind": a.Kind.String(),
	})

	switch a.Kind {
	case menu.NativeAbout:
		dialog.ShowInformation(n.Label(a), a.Label+" "+n.version, n.win)
	case menu.NativeQuit:
		n.app.Quit()
	case menu.NativeUndo:
		n.typeShortcut(&fyne.ShortcutUndo{})
	case menu.NativeRedo:
		n.typeShortcut(&fyne.ShortcutRedo{})
	case menu.NativeCut:
		n.typeShortcut(&fyne.ShortcutCut{Clipboard: n.win.Clipboard()})
	case menu.NativeCopy:
		n.typeShortcut(&fyne.ShortcutCopy{Clipboard: n.win.Clipboard()})
	case menu.NativePaste:
		n.typeShortcut(&fyne.ShortcutPaste{Clipboard: n.win.Clipboard()})
	case menu.NativeSelectAll:
		n.typeShortcut(&fyne.ShortcutSelectAll{})
	case menu.NativeEnterFullScreen:
		n.win.SetFullScreen(!n.win.FullScreen())
	case menu.NativeCloseWindow:
		n.win.Close()
	}
}

// typeShortcut delivers an edit shortcut to the focused widget, the way a
// keyboard shortcut would.
func (n *Native) typeShortcut(s fyne.Shortcut) {
	focused := n.win.Canvas().Focused()
	if target, ok := focused.(fyne.Shortcutable); ok {
		target.TypedShortcut(s)
	}
}
