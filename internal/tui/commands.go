package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mwhelan/accessmenu/internal/announce"
	"github.com/mwhelan/accessmenu/internal/godmode"
	"github.com/mwhelan/accessmenu/internal/launcher"
	"github.com/mwhelan/accessmenu/internal/power"
)

type settingsItemsMsg struct {
	items []string
}

// sessionDoneMsg ends the whole session: a leaf launched, a power action
// ran, or a settings item was invoked. It is sent regardless of outcome —
// launch failures close the menu too.
type sessionDoneMsg struct{}

type announcedMsg struct{}

func announceCmd(a announce.Announcer, text string) tea.Cmd {
	return func() tea.Msg {
		if a != nil {
			a.Announce(text)
		}
		return announcedMsg{}
	}
}

func settingsCmd(e *godmode.Enumerator) tea.Cmd {
	return func() tea.Msg {
		return settingsItemsMsg{items: e.Items()}
	}
}

func launchCmd(d *launcher.Dispatcher, target string) tea.Cmd {
	return func() tea.Msg {
		d.LaunchShortcut(target)
		return sessionDoneMsg{}
	}
}

func invokeCmd(e *godmode.Enumerator, item string) tea.Cmd {
	return func() tea.Msg {
		e.Invoke(item)
		return sessionDoneMsg{}
	}
}

func powerCmd(p *power.Manager, action power.Action) tea.Cmd {
	return func() tea.Msg {
		_ = p.Run(action)
		return sessionDoneMsg{}
	}
}
