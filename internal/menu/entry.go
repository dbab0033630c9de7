package menu

import (
	"github.com/mwhelan/accessmenu/internal/catalog"
	"github.com/mwhelan/accessmenu/internal/power"
)

// EntryKind tags what selecting a row does. Switches over it are exhaustive;
// there is no stringly-typed dispatch anywhere downstream.
type EntryKind int

const (
	// KindCategory opens one of the fixed root submenus.
	KindCategory EntryKind = iota
	// KindFolder drills into a subtree of the apps catalog.
	KindFolder
	// KindLeaf launches a shortcut and collapses the whole session.
	KindLeaf
	// KindPowerAction runs a confirmed power command.
	KindPowerAction
	// KindSettingsItem invokes a discovered settings item.
	KindSettingsItem
	// KindPlaceholder marks an empty screen; selecting it does nothing.
	KindPlaceholder
)

// Entry is one selectable row. Display is what the screen shows and the
// announcer speaks; the payload field matching Kind carries the action.
type Entry struct {
	Display string
	Kind    EntryKind

	Screen ScreenKind    // KindCategory
	Folder *catalog.Node // KindFolder
	Name   string        // KindFolder: bare folder name for the breadcrumb
	Target string        // KindLeaf
	Action power.Action  // KindPowerAction
	Item   string        // KindSettingsItem; empty means unavailable
}
