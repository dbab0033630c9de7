// Package tui renders the menu session as a stack of modal list screens and
// feeds every screen-open and action outcome to the announcer.
package tui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mwhelan/accessmenu/internal/announce"
	"github.com/mwhelan/accessmenu/internal/catalog"
	"github.com/mwhelan/accessmenu/internal/config"
	"github.com/mwhelan/accessmenu/internal/favorites"
	"github.com/mwhelan/accessmenu/internal/godmode"
	"github.com/mwhelan/accessmenu/internal/launcher"
	"github.com/mwhelan/accessmenu/internal/menu"
	"github.com/mwhelan/accessmenu/internal/power"
	"github.com/mwhelan/accessmenu/internal/tui/theme"
)

type Deps struct {
	Cfg        *config.Config
	Favorites  *favorites.Store
	Dispatcher *launcher.Dispatcher
	Power      *power.Manager
	Enum       *godmode.Enumerator
	Announcer  announce.Announcer
	Version    string
}

type listEntry struct {
	menu.Entry
}

func (i listEntry) Title() string       { return i.Display }
func (i listEntry) Description() string { return "" }
func (i listEntry) FilterValue() string { return i.Display }

// confirmState is the yes/no overlay guarding power actions.
type confirmState struct {
	action power.Action
	prompt string
	yes    bool
}

type model struct {
	deps    Deps
	session *menu.Session
	apps    []catalog.App // flattened once per session, feeds search

	list            list.Model
	search          textinput.Model
	confirm         *confirmState
	loadingSettings bool
	width           int
	height          int
}

type App struct {
	deps Deps
}

func New(deps Deps) *App {
	return &App{deps: deps}
}

// Run builds a fresh tree, opens a session over it, and blocks until the
// session collapses or the root is cancelled.
func (a *App) Run() error {
	roots := a.deps.Cfg.ShortcutRoots
	if len(roots) == 0 {
		roots = catalog.StartMenuRoots()
	}
	tree := catalog.Build(roots)
	m := initialModel(a.deps, tree)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func initialModel(deps Deps, tree *catalog.Node) model {
	session := menu.NewSession(deps.Cfg, tree, deps.Favorites)

	del := list.NewDefaultDelegate()
	del.ShowDescription = false
	del.Styles.NormalTitle = theme.TextStyle
	del.Styles.SelectedTitle = theme.CurrentStyle
	l := list.New([]list.Item{}, del, 0, 0)
	l.DisableQuitKeybindings()
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)

	ti := textinput.New()
	ti.CharLimit = 128
	ti.Placeholder = deps.Cfg.SearchHint
	ti.Prompt = "/ "
	ti.PromptStyle = theme.BreadcrumbStyle
	ti.TextStyle = theme.TextStyle
	ti.PlaceholderStyle = theme.SubTextStyle

	m := model{
		deps:    deps,
		session: session,
		apps:    catalog.Flatten(tree),
		list:    l,
		search:  ti,
	}
	m.showScreen(session.Open())
	return m
}

func (m model) Init() tea.Cmd {
	return announceCmd(m.deps.Announcer, menu.Announcement(*m.session.Top()))
}

// showScreen loads the top screen's rows into the list and focuses the first
// entry.
func (m *model) showScreen(sc *menu.Screen) {
	items := make([]list.Item, 0, len(sc.Entries))
	for _, e := range sc.Entries {
		items = append(items, listEntry{e})
	}
	m.list.SetItems(items)
	m.list.Select(0)
	if sc.Kind == menu.ScreenSearch {
		m.search.Focus()
	} else {
		m.search.Blur()
	}
}

// pushScreen installs a new screen and returns its announcement command.
func (m *model) pushScreen(sc menu.Screen) tea.Cmd {
	top := m.session.Push(sc)
	m.showScreen(top)
	return announceCmd(m.deps.Announcer, menu.Announcement(*top))
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width-4, msg.Height-6)
		return m, nil

	case settingsItemsMsg:
		m.loadingSettings = false
		return m, m.pushScreen(m.session.SettingsScreen(msg.items))

	case sessionDoneMsg:
		// A launch or action collapsed every screen at once.
		m.session.Collapse()
		return m, tea.Quit

	case announcedMsg:
		return m, nil

	case tea.KeyMsg:
		if m.confirm != nil {
			return handleConfirm(&m, msg)
		}
		top := m.session.Top()
		if top == nil {
			return m, tea.Quit
		}
		if top.Kind == menu.ScreenSearch {
			return handleSearch(&m, msg)
		}
		return handleScreen(&m, msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) View() string {
	top := m.session.Top()
	if top == nil {
		return ""
	}

	title := theme.TitleStyle.Render(top.Title)
	if top.Breadcrumb != "" {
		title = theme.TitleStyle.Render(m.deps.Cfg.AppsLabel) + " " +
			theme.BreadcrumbStyle.Render("> "+top.Breadcrumb)
	}

	var body string
	switch {
	case m.confirm != nil:
		body = renderConfirm(m.deps.Cfg, m.confirm)
	case m.loadingSettings:
		body = theme.SubTextStyle.Render("Enumerating settings items...")
	case top.Kind == menu.ScreenSearch:
		body = m.search.View() + "\n\n" + m.list.View()
	default:
		body = m.list.View()
	}

	hint := theme.HintStyle.Render(hintFor(top, m.confirm != nil))
	return lipgloss.JoinVertical(lipgloss.Left, title, "", body, "", hint)
}

func hintFor(top *menu.Screen, confirming bool) string {
	switch {
	case confirming:
		return "←/→ select · enter confirm · esc cancel"
	case top.Kind == menu.ScreenFavorites:
		return "enter launch · d remove · K/J reorder · esc back"
	case top.Kind == menu.ScreenApps:
		return "enter open · f favorite · esc back"
	case top.Kind == menu.ScreenAllApps:
		return "enter launch · f favorite · esc back"
	case top.Kind == menu.ScreenSearch:
		return "type to filter · enter launch · esc back"
	case top.Kind == menu.ScreenRoot:
		return "enter open · esc close menu"
	default:
		return "enter select · esc back"
	}
}

func renderConfirm(cfg *config.Config, c *confirmState) string {
	yes, no := "  Yes  ", "  No  "
	if c.yes {
		yes = theme.CurrentStyle.Render("> Yes <")
	} else {
		no = theme.CurrentStyle.Render("> No <")
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		theme.PromptStyle.Render(cfg.ConfirmTitle),
		"",
		theme.TextStyle.Render(c.prompt),
		"",
		yes+"   "+no,
	)
}
