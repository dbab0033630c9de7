package launcher

import (
	"errors"
	"testing"

	"github.com/mwhelan/accessmenu/internal/announce"
	"github.com/mwhelan/accessmenu/internal/diag"
)

type fakeCommander struct {
	started [][]string
	fail    map[string]error
}

func (f *fakeCommander) record(name string, args []string) []string {
	call := append([]string{name}, args...)
	f.started = append(f.started, call)
	return call
}

func (f *fakeCommander) Start(name string, args ...string) error {
	f.record(name, args)
	if err, ok := f.fail[name]; ok {
		return err
	}
	return nil
}

func (f *fakeCommander) Run(name string, args ...string) ([]byte, error) {
	return nil, f.Start(name, args...)
}

func (f *fakeCommander) Output(name string, args ...string) ([]byte, error) {
	return nil, f.Start(name, args...)
}

func TestLaunchPrimarySucceeds(t *testing.T) {
	cmd := &fakeCommander{}
	l := New(cmd, announce.Null{}, diag.New(), "launch failed")

	if !l.Launch(`C:\x\App.lnk`) {
		t.Fatal("launch should succeed")
	}
	if len(cmd.started) != 1 || cmd.started[0][0] != "cmd" {
		t.Fatalf("expected single default-open spawn, got %v", cmd.started)
	}
}

func TestLaunchFallsBackToExplorer(t *testing.T) {
	cmd := &fakeCommander{fail: map[string]error{"cmd": errors.New("assoc broken")}}
	l := New(cmd, announce.Null{}, diag.New(), "launch failed")

	if !l.Launch(`C:\x\App.lnk`) {
		t.Fatal("fallback should succeed")
	}
	if len(cmd.started) != 2 || cmd.started[1][0] != "explorer.exe" {
		t.Fatalf("expected explorer fallback, got %v", cmd.started)
	}
}

func TestLaunchBothFailAnnounces(t *testing.T) {
	cmd := &fakeCommander{fail: map[string]error{
		"cmd":          errors.New("no"),
		"explorer.exe": errors.New("also no"),
	}}
	var spoken []string
	l := New(cmd, announce.Func(func(s string) { spoken = append(spoken, s) }), diag.New(), "launch failed")

	if l.Launch(`C:\x\App.lnk`) {
		t.Fatal("launch should report failure")
	}
	if len(spoken) != 1 || spoken[0] != "launch failed" {
		t.Fatalf("failure should be announced once: %v", spoken)
	}
}

func TestLaunchShortcutSkipsDefaultOpen(t *testing.T) {
	cmd := &fakeCommander{}
	l := New(cmd, announce.Null{}, diag.New(), "launch failed")

	if !l.LaunchShortcut(`C:\x\App.lnk`) {
		t.Fatal("shortcut launch should succeed")
	}
	if len(cmd.started) != 1 || cmd.started[0][0] != "explorer.exe" {
		t.Fatalf("shortcut launch must go straight to explorer: %v", cmd.started)
	}
}
