package menu

// Top-level submenu labels.
const (
	LabelFile       = "File"
	LabelEdit       = "Edit"
	LabelReferences = "References"
	LabelView       = "View"
	LabelWindow     = "Window"
	LabelDebug      = "Debug"
)

// Build returns the application menu for appName. The first submenu is the
// application menu and carries appName as its label; the Debug submenu is
// only present when the variant exposes devtools. Build never fails, even for
// an empty appName.
func Build(appName string, variant Variant) Tree {
	tree := Tree{
		Variant: variant,
		Submenus: []*Submenu{
			applicationMenu(appName),
			fileMenu(),
			editMenu(),
			referencesMenu(),
			viewMenu(),
			windowMenu(),
		},
	}
	if variant.HasDevtools() {
		tree.Submenus = append(tree.Submenus, debugMenu())
	}
	return tree
}

func applicationMenu(appName string) *Submenu {
	return &Submenu{
		Label: appName,
		Children: []Node{
			NativeAction{Kind: NativeAbout, Label: appName},
			Separator{},
			Item{Command: CommandSettings, Label: "Settings", Accelerator: "cmdOrControl+,"},
			Separator{},
			NativeAction{Kind: NativeServices},
			NativeAction{Kind: NativeHide},
			NativeAction{Kind: NativeHideOthers},
			Separator{},
			NativeAction{Kind: NativeQuit},
		},
	}
}

// Close and project entries carry no accelerator so they cannot be hit by accident.
func fileMenu() *Submenu {
	return &Submenu{
		Label: LabelFile,
		Children: []Node{
			Item{Command: CommandFileNew, Label: "New File", Accelerator: "cmdOrControl+N"},
			Item{Command: CommandFileSave, Label: "Save", Accelerator: "cmdOrControl+S"},
			Item{Command: CommandFileMarkdown, Label: "Save as Markdown..."},
			Separator{},
			Item{Command: CommandProjectNew, Label: "New Project..."},
			Item{Command: CommandProjectOpen, Label: "Open Project..."},
			Item{Command: CommandProjectClose, Label: "Close Project"},
			Separator{},
			Item{Command: CommandFileClose, Label: "Close Editor", Accelerator: "cmdOrControl+W"},
			Item{Command: CommandFileCloseAll, Label: "Close All Editors"},
		},
	}
}

func editMenu() *Submenu {
	return &Submenu{
		Label: LabelEdit,
		Children: []Node{
			NativeAction{Kind: NativeUndo},
			NativeAction{Kind: NativeRedo},
			Separator{},
			NativeAction{Kind: NativeCut},
			NativeAction{Kind: NativeCopy},
			NativeAction{Kind: NativePaste},
			NativeAction{Kind: NativeSelectAll},
		},
	}
}

func referencesMenu() *Submenu {
	return &Submenu{
		Label: LabelReferences,
		Children: []Node{
			Item{Command: CommandReferencesOpen, Label: "Open", Accelerator: "cmdOrControl+R"},
			Item{Command: CommandReferencesUpload, Label: "Upload..."},
		},
	}
}

func viewMenu() *Submenu {
	return &Submenu{
		Label: LabelView,
		Children: []Node{
			NativeAction{Kind: NativeEnterFullScreen},
			Item{Command: CommandViewNotifications, Label: "Notifications", Accelerator: "F11"},
		},
	}
}

func windowMenu() *Submenu {
	return &Submenu{
		Label: LabelWindow,
		Children: []Node{
			NativeAction{Kind: NativeMinimize},
			NativeAction{Kind: NativeZoom},
			Separator{},
			NativeAction{Kind: NativeCloseWindow},
		},
	}
}

func debugMenu() *Submenu {
	return &Submenu{
		Label: LabelDebug,
		Children: []Node{
			Item{Command: CommandConsoleToggle, Label: "Toggle Console", Accelerator: "F12"},
			Item{Command: CommandConsoleClear, Label: "Clear Console", Accelerator: "Shift+F12"},
		},
	}
}
