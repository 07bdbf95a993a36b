package menu

import (
	"errors"
	"fmt"
)

var ErrDuplicateCommand = errors.New("duplicate command")

// Node is one entry of a menu: *Submenu, Item, NativeAction or Separator.
type Node interface {
	isNode()
}

// Submenu groups ordered children under a label.
type Submenu struct {
	Label    string
	Children []Node
}

// Item is an entry routed through the dispatcher by its command.
type Item struct {
	Command     Command
	Label       string
	Accelerator Accelerator
}

// NativeKind enumerates behaviour executed by the platform without dispatch.
type NativeKind int

const (
	NativeAbout NativeKind = iota + 1
	NativeServices
	NativeHide
	NativeHideOthers
	NativeQuit
	NativeUndo
	NativeRedo
	NativeCut
	NativeCopy
	NativePaste
	NativeSelectAll
	NativeEnterFullScreen
	NativeMinimize
	NativeZoom
	NativeCloseWindow
)

var nativeLabels = map[NativeKind]string{
	NativeAbout:           "About",
	NativeServices:        "Services",
	NativeHide:            "Hide",
	NativeHideOthers:      "Hide Others",
	NativeQuit:            "Quit",
	NativeUndo:            "Undo",
	NativeRedo:            "Redo",
	NativeCut:             "Cut",
	NativeCopy:            "Copy",
	NativePaste:           "Paste",
	NativeSelectAll:       "Select All",
	NativeEnterFullScreen: "Enter Full Screen",
	NativeMinimize:        "Minimize",
	NativeZoom:            "Zoom",
	NativeCloseWindow:     "Close Window",
}

func (k NativeKind) String() string {
	if l, ok := nativeLabels[k]; ok {
		return l
	}
	return fmt.Sprintf("NativeKind(%d)", int(k))
}

// NativeAction is a platform built-in entry. Label is only set where the
// platform needs a parameter, e.g. the application name for About.
type NativeAction struct {
	Kind        NativeKind
	Label       string
	Accelerator Accelerator
}

// Separator visually groups entries.
type Separator struct{}

func (*Submenu) isNode()     {}
func (Item) isNode()         {}
func (NativeAction) isNode() {}
func (Separator) isNode()    {}

// Tree is the ordered list of top-level submenus installed as the
// application menu. It is built once and never mutated.
type Tree struct {
	Variant  Variant
	Submenus []*Submenu
}

// Find returns the top-level submenu with the given label.
func (t Tree) Find(label string) (*Submenu, bool) {
	for _, s := range t.Submenus {
		if s.Label == label {
			return s, true
		}
	}
	return nil, false
}

// Walk visits every node depth first in menu order.
func (t Tree) Walk(fn func(n Node)) {
	for _, s := range t.Submenus {
		walk(s, fn)
	}
}

func walk(n Node, fn func(n Node)) {
	fn(n)
	if s, ok := n.(*Submenu); ok {
		for _, c := range s.Children {
			walk(c, fn)
		}
	}
}

// Items returns every dispatchable entry in menu order.
func (t Tree) Items() []Item {
	var items []Item
	t.Walk(func(n Node) {
		if it, ok := n.(Item); ok {
			items = append(items, it)
		}
	})
	return items
}

// Commands returns the commands of every Item in menu order.
func (t Tree) Commands() []Command {
	items := t.Items()
	cmds := make([]Command, len(items))
	for i, it := range items {
		cmds[i] = it.Command
	}
	return cmds
}

// Validate reports programmer errors that must abort startup: invalid or
// duplicate commands and malformed accelerators. All problems are joined.
func (t Tree) Validate() error {
	var errs []error
	seen := make(map[Command]string)
	t.Walk(func(n Node) {
		switch n := n.(type) {
		case Item:
			if !n.Command.Valid() {
				errs = append(errs, fmt.Errorf("item %q: invalid command %d", n.Label, int(n.Command)))
				return
			}
			if prev, dup := seen[n.Command]; dup {
				errs = append(errs, fmt.Errorf("%w: %s on %q and %q", ErrDuplicateCommand, n.Command.ID(), prev, n.Label))
			}
			seen[n.Command] = n.Label
			if n.Accelerator != "" {
				if err := n.Accelerator.Validate(); err != nil {
					errs = append(errs, fmt.Errorf("item %q: %w", n.Label, err))
				}
			}
		case NativeAction:
			if n.Accelerator != "" {
				if err := n.Accelerator.Validate(); err != nil {
					errs = append(errs, fmt.Errorf("native %s: %w", n.Kind, err))
				}
			}
		}
	})
	return errors.Join(errs...)
}
