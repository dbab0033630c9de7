// Package power runs the session-ending system commands behind the Power
// screen. Each action maps to a shutdown.exe invocation spawned detached.
package power

import (
	"fmt"

	"github.com/mwhelan/accessmenu/internal/config"
	"github.com/mwhelan/accessmenu/internal/shell"
)

type Action int

const (
	SignOut Action = iota
	PowerOff
	Reboot
)

func (a Action) args() []string {
	switch a {
	case SignOut:
		return []string{"/l"}
	case PowerOff:
		return []string{"/s", "/t", "0"}
	case Reboot:
		return []string{"/r", "/t", "0"}
	}
	return nil
}

// Label returns the configured display string for the action.
func (a Action) Label(cfg *config.Config) string {
	switch a {
	case SignOut:
		return cfg.SignOutLabel
	case PowerOff:
		return cfg.PowerOffLabel
	case Reboot:
		return cfg.RebootLabel
	}
	return ""
}

// Prompt returns the configured yes/no confirmation text for the action.
func (a Action) Prompt(cfg *config.Config) string {
	switch a {
	case SignOut:
		return cfg.ConfirmSignOut
	case PowerOff:
		return cfg.ConfirmPowerOff
	case Reboot:
		return cfg.ConfirmReboot
	}
	return ""
}

// All lists the power actions in screen order.
func All() []Action {
	return []Action{SignOut, PowerOff, Reboot}
}

type Manager struct {
	Cmd shell.Commander
}

func (m *Manager) Run(a Action) error {
	args := a.args()
	if args == nil {
		return fmt.Errorf("unknown power action %d", a)
	}
	return m.Cmd.Start("shutdown", args...)
}
