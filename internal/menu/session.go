// Package menu is the navigation core: it builds the screens the UI renders
// and owns the stack semantics — push on drill-down, pop on cancel, collapse
// to nothing when a launch or action terminates the session.
package menu

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/mwhelan/accessmenu/internal/catalog"
	"github.com/mwhelan/accessmenu/internal/config"
	"github.com/mwhelan/accessmenu/internal/favorites"
	"github.com/mwhelan/accessmenu/internal/power"
)

type ScreenKind int

const (
	ScreenRoot ScreenKind = iota
	ScreenSearch
	ScreenFavorites
	ScreenApps
	ScreenAllApps
	ScreenPower
	ScreenSettings
	ScreenAbout
)

// Screen is one modal level: a title, its rows, and for apps screens the
// subtree it was built from.
type Screen struct {
	Kind       ScreenKind
	Title      string
	Breadcrumb string
	Entries    []Entry
	Node       *catalog.Node
}

// Session owns one menu-open: the tree built for it, the screen stack, and
// the builders that turn catalog views into screens. It is discarded when
// the menu closes.
type Session struct {
	cfg  *config.Config
	tree *catalog.Node
	favs *favorites.Store

	stack []Screen
}

func NewSession(cfg *config.Config, tree *catalog.Node, favs *favorites.Store) *Session {
	return &Session{cfg: cfg, tree: tree, favs: favs}
}

func (s *Session) Tree() *catalog.Node { return s.tree }

// Open pushes the root screen and returns it.
func (s *Session) Open() *Screen {
	s.stack = s.stack[:0]
	s.Push(s.RootScreen())
	return s.Top()
}

func (s *Session) Push(sc Screen) *Screen {
	s.stack = append(s.stack, sc)
	return s.Top()
}

// Pop closes the top screen. Reports false when the root was popped, i.e.
// the session is over.
func (s *Session) Pop() bool {
	if len(s.stack) == 0 {
		return false
	}
	s.stack = s.stack[:len(s.stack)-1]
	return len(s.stack) > 0
}

// Collapse closes every open screen at once. Used after a launch or a
// confirmed action: the whole session ends, not just the current level.
func (s *Session) Collapse() {
	s.stack = s.stack[:0]
}

func (s *Session) Top() *Screen {
	if len(s.stack) == 0 {
		return nil
	}
	return &s.stack[len(s.stack)-1]
}

func (s *Session) Depth() int { return len(s.stack) }

// RootScreen lists the fixed top-level categories.
func (s *Session) RootScreen() Screen {
	return Screen{
		Kind:  ScreenRoot,
		Title: "Access Menu",
		Entries: []Entry{
			{Display: s.cfg.SearchLabel, Kind: KindCategory, Screen: ScreenSearch},
			{Display: s.cfg.FavoritesLabel, Kind: KindCategory, Screen: ScreenFavorites},
			{Display: s.cfg.AppsLabel, Kind: KindCategory, Screen: ScreenApps},
			{Display: s.cfg.AllAppsLabel, Kind: KindCategory, Screen: ScreenAllApps},
			{Display: s.cfg.PowerLabel, Kind: KindCategory, Screen: ScreenPower},
			{Display: s.cfg.SettingsLabel, Kind: KindCategory, Screen: ScreenSettings},
			{Display: s.cfg.AboutLabel, Kind: KindCategory, Screen: ScreenAbout},
		},
	}
}

// AppsScreen lists a subtree: folders first, then leaves, both sorted. An
// empty breadcrumb means the top of the apps tree.
func (s *Session) AppsScreen(breadcrumb string, node *catalog.Node) Screen {
	title := s.cfg.AppsLabel
	if breadcrumb != "" {
		title = breadcrumb
	}
	sc := Screen{Kind: ScreenApps, Title: title, Breadcrumb: breadcrumb, Node: node}

	var folders, leaves []catalog.Entry
	for _, e := range catalog.SortedEntries(node) {
		if e.Node.IsLeaf() {
			leaves = append(leaves, e)
		} else {
			folders = append(folders, e)
		}
	}
	for _, f := range folders {
		sc.Entries = append(sc.Entries, Entry{
			Display: s.cfg.FolderPrefix + f.Name,
			Kind:    KindFolder,
			Folder:  f.Node,
			Name:    f.Name,
		})
	}
	for _, l := range leaves {
		sc.Entries = append(sc.Entries, Entry{Display: l.Name, Kind: KindLeaf, Target: l.Node.Target})
	}
	if len(sc.Entries) == 0 {
		sc.Entries = []Entry{{Display: s.cfg.NoItemsText, Kind: KindPlaceholder}}
	}
	return sc
}

// AllAppsScreen lists every app in one flat A-Z listing; apps living under a
// folder keep the parent in their display name.
func (s *Session) AllAppsScreen(apps []catalog.App) Screen {
	sc := Screen{Kind: ScreenAllApps, Title: s.cfg.AllAppsLabel}

	sorted := make([]catalog.App, len(apps))
	copy(sorted, apps)
	sort.SliceStable(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i].Display) < strings.ToLower(sorted[j].Display)
	})
	for _, a := range sorted {
		sc.Entries = append(sc.Entries, Entry{Display: a.Display, Kind: KindLeaf, Target: a.Target})
	}
	if len(sc.Entries) == 0 {
		sc.Entries = []Entry{{Display: s.cfg.NoItemsText, Kind: KindPlaceholder}}
	}
	return sc
}

// ChildBreadcrumb extends a breadcrumb with the next folder name.
func ChildBreadcrumb(parent, folder string) string {
	if parent == "" {
		return folder
	}
	return parent + " > " + folder
}

// FavoritesScreen lists the validated favorites in stored order.
func (s *Session) FavoritesScreen() Screen {
	sc := Screen{Kind: ScreenFavorites, Title: s.cfg.FavoritesLabel}
	for _, p := range s.favs.Paths {
		sc.Entries = append(sc.Entries, Entry{
			Display: favorites.DisplayName(p),
			Kind:    KindLeaf,
			Target:  p,
		})
	}
	if len(sc.Entries) == 0 {
		sc.Entries = []Entry{{Display: s.cfg.NoFavoritesText, Kind: KindPlaceholder}}
	}
	return sc
}

// PowerScreen lists the power actions in fixed order.
func (s *Session) PowerScreen() Screen {
	sc := Screen{Kind: ScreenPower, Title: s.cfg.PowerLabel}
	for _, a := range power.All() {
		sc.Entries = append(sc.Entries, Entry{Display: a.Label(s.cfg), Kind: KindPowerAction, Action: a})
	}
	return sc
}

// SettingsScreen lists the enumerated settings items; an empty enumeration
// shows the single unavailable placeholder.
func (s *Session) SettingsScreen(items []string) Screen {
	sc := Screen{Kind: ScreenSettings, Title: s.cfg.SettingsLabel}
	for _, item := range items {
		sc.Entries = append(sc.Entries, Entry{Display: item, Kind: KindSettingsItem, Item: item})
	}
	if len(sc.Entries) == 0 {
		sc.Entries = []Entry{{Display: s.cfg.NoItemsText, Kind: KindSettingsItem}}
	}
	return sc
}

// SearchScreen lists the flattened apps matching query.
func (s *Session) SearchScreen(apps []catalog.App, query string) Screen {
	sc := Screen{Kind: ScreenSearch, Title: s.cfg.SearchLabel}
	for _, a := range catalog.Filter(apps, query) {
		sc.Entries = append(sc.Entries, Entry{Display: a.Display, Kind: KindLeaf, Target: a.Target})
	}
	if len(sc.Entries) == 0 {
		sc.Entries = []Entry{{Display: s.cfg.NoItemsText, Kind: KindPlaceholder}}
	}
	return sc
}

// AboutScreen shows the version line.
func (s *Session) AboutScreen(version string) Screen {
	return Screen{
		Kind:    ScreenAbout,
		Title:   s.cfg.AboutLabel,
		Entries: []Entry{{Display: "Access Menu " + version, Kind: KindPlaceholder}},
	}
}

// Announcement is the spoken summary produced every time a screen opens: the
// title, an item count for multi-item screens, and the focused first entry.
func Announcement(sc Screen) string {
	if len(sc.Entries) == 0 {
		return sc.Title
	}
	first := sc.Entries[0].Display
	if len(sc.Entries) == 1 {
		return fmt.Sprintf("%s. %s", sc.Title, first)
	}
	return fmt.Sprintf("%s. %s items. %s", sc.Title, strconv.Itoa(len(sc.Entries)), first)
}
