package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mwhelan/accessmenu/internal/menu"
)

func handleScreen(m *model, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	top := m.session.Top()

	switch msg.String() {
	case "enter":
		if entry, ok := m.list.SelectedItem().(listEntry); ok {
			return selectEntry(m, top, entry.Entry)
		}
		return *m, nil

	case "esc":
		if !m.session.Pop() {
			return *m, tea.Quit
		}
		next := m.session.Top()
		m.showScreen(next)
		return *m, announceCmd(m.deps.Announcer, menu.Announcement(*next))

	case "f":
		// Pin the selected app from any apps listing.
		if top.Kind == menu.ScreenApps || top.Kind == menu.ScreenAllApps {
			if entry, ok := m.list.SelectedItem().(listEntry); ok && entry.Kind == menu.KindLeaf {
				if m.deps.Favorites.Add(entry.Target) {
					return *m, announceCmd(m.deps.Announcer, "Added to "+m.deps.Cfg.FavoritesLabel)
				}
				return *m, announceCmd(m.deps.Announcer, "Already in "+m.deps.Cfg.FavoritesLabel)
			}
		}

	case "d", "delete":
		if top.Kind == menu.ScreenFavorites {
			if entry, ok := m.list.SelectedItem().(listEntry); ok && entry.Kind == menu.KindLeaf {
				m.deps.Favorites.Remove(entry.Target)
				refreshed := m.session.FavoritesScreen()
				top.Entries = refreshed.Entries
				m.showScreen(top)
				return *m, announceCmd(m.deps.Announcer, "Removed. "+menu.Announcement(*top))
			}
		}

	case "K":
		if top.Kind == menu.ScreenFavorites {
			return moveFavorite(m, top, -1)
		}
	case "J":
		if top.Kind == menu.ScreenFavorites {
			return moveFavorite(m, top, +1)
		}

	case "up", "down", "pgup", "pgdown", "home", "end":
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		if entry, ok := m.list.SelectedItem().(listEntry); ok {
			return *m, tea.Batch(cmd, announceCmd(m.deps.Announcer, entry.Display))
		}
		return *m, cmd
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return *m, cmd
}

func moveFavorite(m *model, top *menu.Screen, delta int) (tea.Model, tea.Cmd) {
	idx := m.list.Index()
	moved := false
	if delta < 0 {
		moved = m.deps.Favorites.MoveUp(idx)
	} else {
		moved = m.deps.Favorites.MoveDown(idx)
	}
	if !moved {
		return *m, nil
	}
	refreshed := m.session.FavoritesScreen()
	top.Entries = refreshed.Entries
	m.showScreen(top)
	m.list.Select(idx + delta)
	if entry, ok := m.list.SelectedItem().(listEntry); ok {
		return *m, announceCmd(m.deps.Announcer, entry.Display)
	}
	return *m, nil
}

// selectEntry is the activation switch: every entry kind either pushes a
// screen, arms a confirmation, or terminates the session.
func selectEntry(m *model, top *menu.Screen, e menu.Entry) (tea.Model, tea.Cmd) {
	switch e.Kind {
	case menu.KindCategory:
		return openCategory(m, e.Screen)

	case menu.KindFolder:
		crumb := menu.ChildBreadcrumb(top.Breadcrumb, e.Name)
		return *m, m.pushScreen(m.session.AppsScreen(crumb, e.Folder))

	case menu.KindLeaf:
		// Fire and forget: the session collapses whether or not the
		// launch lands.
		return *m, launchCmd(m.deps.Dispatcher, e.Target)

	case menu.KindPowerAction:
		m.confirm = &confirmState{action: e.Action, prompt: e.Action.Prompt(m.deps.Cfg), yes: true}
		return *m, announceCmd(m.deps.Announcer,
			m.deps.Cfg.ConfirmTitle+". "+m.confirm.prompt+" Yes")

	case menu.KindSettingsItem:
		if e.Item == "" {
			// The "no items available" placeholder.
			return *m, nil
		}
		return *m, invokeCmd(m.deps.Enum, e.Item)

	case menu.KindPlaceholder:
		return *m, nil
	}
	return *m, nil
}

func openCategory(m *model, kind menu.ScreenKind) (tea.Model, tea.Cmd) {
	switch kind {
	case menu.ScreenSearch:
		m.search.SetValue("")
		cmd := m.pushScreen(m.session.SearchScreen(m.apps, ""))
		return *m, cmd
	case menu.ScreenFavorites:
		return *m, m.pushScreen(m.session.FavoritesScreen())
	case menu.ScreenApps:
		return *m, m.pushScreen(m.session.AppsScreen("", m.session.Tree()))
	case menu.ScreenAllApps:
		return *m, m.pushScreen(m.session.AllAppsScreen(m.apps))
	case menu.ScreenPower:
		return *m, m.pushScreen(m.session.PowerScreen())
	case menu.ScreenSettings:
		m.loadingSettings = true
		return *m, settingsCmd(m.deps.Enum)
	case menu.ScreenAbout:
		return *m, m.pushScreen(m.session.AboutScreen(m.deps.Version))
	}
	return *m, nil
}

func handleConfirm(m *model, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	c := m.confirm
	switch msg.String() {
	case "left", "right", "up", "down", "tab":
		c.yes = !c.yes
		label := "No"
		if c.yes {
			label = "Yes"
		}
		return *m, announceCmd(m.deps.Announcer, label)

	case "y":
		c.yes = true
		msgEnter := tea.KeyMsg{Type: tea.KeyEnter}
		return handleConfirm(m, msgEnter)

	case "n", "esc":
		// Declined: the power screen stays open.
		m.confirm = nil
		return *m, announceCmd(m.deps.Announcer, menu.Announcement(*m.session.Top()))

	case "enter":
		action := c.action
		confirmed := c.yes
		m.confirm = nil
		if !confirmed {
			return *m, announceCmd(m.deps.Announcer, menu.Announcement(*m.session.Top()))
		}
		return *m, powerCmd(m.deps.Power, action)
	}
	return *m, nil
}

func handleSearch(m *model, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	top := m.session.Top()

	switch msg.String() {
	case "enter":
		if entry, ok := m.list.SelectedItem().(listEntry); ok {
			return selectEntry(m, top, entry.Entry)
		}
		return *m, nil
	case "esc":
		if !m.session.Pop() {
			return *m, tea.Quit
		}
		next := m.session.Top()
		m.showScreen(next)
		return *m, announceCmd(m.deps.Announcer, menu.Announcement(*next))
	case "up", "down", "pgup", "pgdown":
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		if entry, ok := m.list.SelectedItem().(listEntry); ok {
			return *m, tea.Batch(cmd, announceCmd(m.deps.Announcer, entry.Display))
		}
		return *m, cmd
	}

	// Any other key edits the query and rebuilds the results in place.
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	refreshed := m.session.SearchScreen(m.apps, m.search.Value())
	top.Entries = refreshed.Entries
	m.showScreen(top)
	return *m, tea.Batch(cmd, announceCmd(m.deps.Announcer, searchSummary(top)))
}

func searchSummary(top *menu.Screen) string {
	if len(top.Entries) == 1 && top.Entries[0].Kind == menu.KindPlaceholder {
		return top.Entries[0].Display
	}
	return menu.Announcement(*top)
}
