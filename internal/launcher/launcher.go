// Package launcher resolves a selected shortcut into a running program.
// Launching is fire-and-forget: the dispatcher reports success or failure but
// never returns an error, because the menu closes after a launch attempt
// either way.
package launcher

import (
	"github.com/mwhelan/accessmenu/internal/announce"
	"github.com/mwhelan/accessmenu/internal/diag"
	"github.com/mwhelan/accessmenu/internal/shell"
)

type Dispatcher struct {
	Cmd       shell.Commander
	Announcer announce.Announcer
	Diag      *diag.Diag

	// FailText is spoken when every strategy fails.
	FailText string
}

func New(cmd shell.Commander, a announce.Announcer, d *diag.Diag, failText string) *Dispatcher {
	return &Dispatcher{Cmd: cmd, Announcer: a, Diag: d, FailText: failText}
}

// Launch opens the target with its file association, falling back to an
// explorer-mediated open. Reports whether any strategy accepted the target.
func (l *Dispatcher) Launch(target string) bool {
	if err := l.Cmd.Start("cmd", "/c", "start", "", target); err == nil {
		return true
	} else if l.Diag != nil {
		l.Diag.Warnf("default open failed for %s: %v", target, err)
	}
	return l.LaunchShortcut(target)
}

// LaunchShortcut hands the target straight to explorer. Shortcut files need
// shell resolution, which explorer does more reliably than a default open, so
// the Apps screens call this directly.
func (l *Dispatcher) LaunchShortcut(target string) bool {
	if err := l.Cmd.Start("explorer.exe", target); err == nil {
		return true
	} else if l.Diag != nil {
		l.Diag.Warnf("explorer open failed for %s: %v", target, err)
	}
	if l.Announcer != nil && l.FailText != "" {
		l.Announcer.Announce(l.FailText)
	}
	return false
}
