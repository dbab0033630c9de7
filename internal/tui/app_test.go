package tui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mwhelan/accessmenu/internal/announce"
	"github.com/mwhelan/accessmenu/internal/catalog"
	"github.com/mwhelan/accessmenu/internal/config"
	"github.com/mwhelan/accessmenu/internal/diag"
	"github.com/mwhelan/accessmenu/internal/favorites"
	"github.com/mwhelan/accessmenu/internal/godmode"
	"github.com/mwhelan/accessmenu/internal/launcher"
	"github.com/mwhelan/accessmenu/internal/menu"
	"github.com/mwhelan/accessmenu/internal/power"
)

type recordingCommander struct {
	calls [][]string
}

func (r *recordingCommander) Start(name string, args ...string) error {
	r.calls = append(r.calls, append([]string{name}, args...))
	return nil
}
func (r *recordingCommander) Run(name string, args ...string) ([]byte, error) {
	return nil, r.Start(name, args...)
}
func (r *recordingCommander) Output(name string, args ...string) ([]byte, error) {
	return nil, r.Start(name, args...)
}

func (r *recordingCommander) spawned(name string) bool {
	for _, c := range r.calls {
		if c[0] == name {
			return true
		}
	}
	return false
}

func testConfig() *config.Config {
	return &config.Config{
		AppsLabel:       "Apps",
		FavoritesLabel:  "Favorites",
		PowerLabel:      "Power",
		SettingsLabel:   "All Settings",
		SearchLabel:     "Search...",
		AboutLabel:      "About",
		AllAppsLabel:    "All Apps (A-Z)",
		FolderPrefix:    "Folder: ",
		SignOutLabel:    "Sign out",
		PowerOffLabel:   "Power off",
		RebootLabel:     "Reboot",
		ConfirmTitle:    "Confirm",
		ConfirmSignOut:  "Sign out of Windows?",
		ConfirmPowerOff: "Power off the PC?",
		ConfirmReboot:   "Restart the PC?",
		SearchHint:      "Type to filter apps",
		NoFavoritesText: "No favorites",
		NoItemsText:     "No items available",
		LaunchFailText:  "Failed to launch application",
	}
}

func newTestModel(t *testing.T) (model, *recordingCommander) {
	t.Helper()

	root := t.TempDir()
	for _, p := range []string{
		filepath.Join(root, "Games", "Chess.lnk"),
		filepath.Join(root, "Editor.lnk"),
	} {
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(p, nil, 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	favs, err := favorites.LoadFrom(filepath.Join(t.TempDir(), "favorites.json"))
	if err != nil {
		t.Fatalf("favorites: %v", err)
	}

	cfg := testConfig()
	cmd := &recordingCommander{}
	d := diag.New()
	deps := Deps{
		Cfg:        cfg,
		Favorites:  favs,
		Dispatcher: launcher.New(cmd, announce.Null{}, d, cfg.LaunchFailText),
		Power:      &power.Manager{Cmd: cmd},
		Enum:       godmode.New(cmd, "", time.Second, d),
		Announcer:  announce.Null{},
		Version:    "test",
	}
	return initialModel(deps, catalog.Build([]string{root})), cmd
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func update(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(model)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	return nm, cmd
}

// selectRootEntry moves the cursor onto the named root category and enters.
func selectRootEntry(t *testing.T, m model, display string) (model, tea.Cmd) {
	t.Helper()
	for i, e := range m.session.Top().Entries {
		if e.Display == display {
			m.list.Select(i)
			return update(t, m, key("enter"))
		}
	}
	t.Fatalf("no root entry %q", display)
	return m, nil
}

func TestLeafSelectionCollapsesWholeStack(t *testing.T) {
	m, cmd := newTestModel(t)

	m, _ = selectRootEntry(t, m, "Apps")
	if m.session.Top().Kind != menu.ScreenApps {
		t.Fatalf("expected apps screen, got %v", m.session.Top().Kind)
	}

	// Drill into Games.
	m.list.Select(0)
	m, _ = update(t, m, key("enter"))
	if m.session.Top().Breadcrumb != "Games" || m.session.Depth() != 3 {
		t.Fatalf("expected child apps screen at depth 3, got %q depth %d",
			m.session.Top().Breadcrumb, m.session.Depth())
	}

	// Launch the leaf two levels deep.
	m.list.Select(0)
	m, teaCmd := update(t, m, key("enter"))
	if teaCmd == nil {
		t.Fatal("leaf selection should produce a launch command")
	}
	m, quit := update(t, m, teaCmd())
	if m.session.Depth() != 0 {
		t.Fatalf("launch must collapse every screen, depth %d", m.session.Depth())
	}
	if quit == nil {
		t.Fatal("collapse should quit the program")
	}
	if _, ok := quit().(tea.QuitMsg); !ok {
		t.Fatal("collapse should quit the program")
	}
	if !cmd.spawned("explorer.exe") {
		t.Fatalf("leaf launch should go through explorer: %v", cmd.calls)
	}
}

func TestEscPopsExactlyOneLevel(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = selectRootEntry(t, m, "Apps")
	m.list.Select(0)
	m, _ = update(t, m, key("enter"))
	if m.session.Depth() != 3 {
		t.Fatalf("depth mismatch: %d", m.session.Depth())
	}

	m, _ = update(t, m, key("esc"))
	if m.session.Depth() != 2 || m.session.Top().Kind != menu.ScreenApps {
		t.Fatalf("esc should pop one level, depth %d", m.session.Depth())
	}
	m, _ = update(t, m, key("esc"))
	if m.session.Top().Kind != menu.ScreenRoot {
		t.Fatal("second esc should land on the root screen")
	}
}

func TestPowerDeclineKeepsScreenAndSpawnsNothing(t *testing.T) {
	m, cmd := newTestModel(t)

	m, _ = selectRootEntry(t, m, "Power")
	if m.session.Top().Kind != menu.ScreenPower {
		t.Fatal("expected power screen")
	}

	m.list.Select(0)
	m, _ = update(t, m, key("enter"))
	if m.confirm == nil {
		t.Fatal("power action must arm a confirmation")
	}

	m, _ = update(t, m, key("n"))
	if m.confirm != nil {
		t.Fatal("decline should disarm the confirmation")
	}
	if m.session.Top().Kind != menu.ScreenPower {
		t.Fatal("declined confirmation must keep the power screen open")
	}
	if cmd.spawned("shutdown") {
		t.Fatalf("no process may run on decline: %v", cmd.calls)
	}
}

func TestPowerConfirmRunsActionAndCollapses(t *testing.T) {
	m, cmd := newTestModel(t)

	m, _ = selectRootEntry(t, m, "Power")
	m.list.Select(0)
	m, _ = update(t, m, key("enter"))

	m, teaCmd := update(t, m, key("y"))
	if teaCmd == nil {
		t.Fatal("confirmed action should produce a command")
	}
	m, quit := update(t, m, teaCmd())
	if !cmd.spawned("shutdown") {
		t.Fatalf("confirmed action must spawn shutdown: %v", cmd.calls)
	}
	if m.session.Depth() != 0 || quit == nil {
		t.Fatal("confirmed action must collapse the session")
	}
}

func TestSettingsPlaceholderSelectionIsNoop(t *testing.T) {
	m, _ := newTestModel(t)

	m, teaCmd := selectRootEntry(t, m, "All Settings")
	if teaCmd == nil {
		t.Fatal("settings category should start enumeration")
	}
	// All strategies fail with the recording commander returning empty
	// output, so the screen shows the placeholder.
	m, _ = update(t, m, teaCmd())
	top := m.session.Top()
	if top.Kind != menu.ScreenSettings {
		t.Fatalf("expected settings screen, got %v", top.Kind)
	}
	if len(top.Entries) != 1 || top.Entries[0].Item != "" {
		t.Fatalf("expected unavailable placeholder: %v", top.Entries)
	}

	m, cmd2 := update(t, m, key("enter"))
	if cmd2 != nil {
		t.Fatal("selecting the placeholder must be a no-op")
	}
	if m.session.Top().Kind != menu.ScreenSettings {
		t.Fatal("placeholder selection must keep the screen open")
	}
}

func TestFavoriteKeyAddsSelectedApp(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = selectRootEntry(t, m, "Apps")
	// Move onto the leaf row (folder rows come first).
	m.list.Select(1)
	m, _ = update(t, m, key("f"))

	if len(m.deps.Favorites.Paths) != 1 {
		t.Fatalf("favorite not stored: %v", m.deps.Favorites.Paths)
	}
	if favorites.DisplayName(m.deps.Favorites.Paths[0]) != "Editor" {
		t.Fatalf("wrong favorite stored: %v", m.deps.Favorites.Paths)
	}

	m, _ = update(t, m, key("f"))
	if len(m.deps.Favorites.Paths) != 1 {
		t.Fatal("duplicate favorite must not be stored")
	}
}
