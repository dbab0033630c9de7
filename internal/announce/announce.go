// Package announce is the spoken-output side of the menu. Every screen open
// and action outcome goes through an Announcer; the call is fire-and-forget
// and must never block the UI loop.
package announce

import (
	"log"
	"strings"

	"github.com/mwhelan/accessmenu/internal/shell"
)

type Announcer interface {
	Announce(text string)
}

// Func adapts a function to the Announcer interface.
type Func func(string)

func (f Func) Announce(text string) { f(text) }

// Null swallows announcements.
type Null struct{}

func (Null) Announce(string) {}

// Log writes announcements to the standard logger; used by the headless
// subcommands.
type Log struct{}

func (Log) Announce(text string) { log.Printf("announce: %s", text) }

// Speech speaks through the Windows speech synthesizer via a detached
// PowerShell process. Spawn failures are dropped: a missing voice must not
// break navigation.
type Speech struct {
	Cmd shell.Commander
}

func (s *Speech) Announce(text string) {
	text = strings.ReplaceAll(text, "'", "''")
	script := "Add-Type -AssemblyName System.Speech; " +
		"(New-Object System.Speech.Synthesis.SpeechSynthesizer).Speak('" + text + "')"
	_ = s.Cmd.Start("powershell", "-NoProfile", "-NonInteractive", "-Command", script)
}

// Multi fans one announcement out to several sinks.
type Multi []Announcer

func (m Multi) Announce(text string) {
	for _, a := range m {
		a.Announce(text)
	}
}
