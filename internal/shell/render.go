package shell

import (
	"fyne.io/fyne/v2"

	"refstudio/internal/menu"
)

// Activate is called with the command identifier of a chosen menu entry.
type Activate func(id string)

// mainMenu converts a validated tree into a fyne main menu. Items call
// activate with their identifier; native entries run on native. Native kinds the platform
// layer cannot perform are left out, along with separators that would end up
// leading, trailing or doubled.
func mainMenu(tree menu.Tree, activate Activate, native *Native) *fyne.MainMenu {
	menus := make([]*fyne.Menu, 0, len(tree.Submenus))
	for _, s := range tree.Submenus {
		menus = append(menus, fyne.NewMenu(s.Label, menuItems(s.Children, activate, native)...))
	}
	return fyne.NewMainMenu(menus...)
}

func menuItems(nodes []menu.Node, activate Activate, native *Native) []*fyne.MenuItem {
	items := make([]*fyne.MenuItem, 0, len(nodes))
	pendingSeparator := false
	for _, n := range nodes {
		var item *fyne.MenuItem
		switch n := n.(type) {
		case menu.Separator:
			pendingSeparator = len(items) > 0
			continue
		case *menu.Submenu:
			item = fyne.NewMenuItem(n.Label, nil)
			item.ChildMenu = fyne.NewMenu(n.Label, menuItems(n.Children, activate, native)...)
		case menu.Item:
			id := n.Command.ID()
			item = fyne.NewMenuItem(n.Label, func() { activate(id) })
			if n.Accelerator != "" {
				item.Shortcut = mustShortcut(n.Accelerator)
			}
		case menu.NativeAction:
			if !native.Supports(n.Kind) {
				continue
			}
			action := n
			item = fyne.NewMenuItem(native.Label(n), func() { native.Run(action) })
			item.IsQuit = n.Kind == menu.NativeQuit
			if n.Accelerator != "" {
				item.Shortcut = mustShortcut(n.Accelerator)
			}
		default:
			continue
		}
		if pendingSeparator {
			items = append(items, fyne.NewMenuItemSeparator())
			pendingSeparator = false
		}
		items = append(items, item)
	}
	return items
}

// Install validates the tree, sets it as the window's main menu and attaches
// a KeyRouter for the accelerators fyne does not deliver as shortcuts. Chords
// with a non-Shift modifier are triggered through the menu items themselves.
func Install(win fyne.Window, tree menu.Tree, activate Activate, native *Native) (*KeyRouter, error) {
	if err := tree.Validate(); err != nil {
		return nil, err
	}
	win.SetMainMenu(mainMenu(tree, activate, native))
	router := NewKeyRouter(tree, activate)
	router.Attach(win.Canvas())
	return router, nil
}
