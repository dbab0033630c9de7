//go:build windows

package catalog

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/windows/registry"
)

// StartMenuRoots returns the machine-wide and per-user start menu Programs
// directories, machine-wide first so it wins name collisions. The per-user
// folder can be relocated, so it is read from the User Shell Folders key with
// an environment fallback.
func StartMenuRoots() []string {
	var roots []string

	machine := filepath.Join(os.Getenv("ProgramData"), "Microsoft", "Windows", "Start Menu", "Programs")
	if dirExists(machine) {
		roots = append(roots, machine)
	}

	user := filepath.Join(os.Getenv("APPDATA"), "Microsoft", "Windows", "Start Menu", "Programs")
	if k, err := registry.OpenKey(registry.CURRENT_USER,
		`Software\Microsoft\Windows\CurrentVersion\Explorer\User Shell Folders`, registry.QUERY_VALUE); err == nil {
		if v, _, err := k.GetStringValue("Programs"); err == nil && strings.TrimSpace(v) != "" {
			user = expandProgramsValue(v)
		}
		k.Close()
	}
	if dirExists(user) {
		roots = append(roots, user)
	}

	return roots
}

// expandProgramsValue expands the REG_EXPAND_SZ value, which typically reads
// %APPDATA%\Microsoft\Windows\Start Menu\Programs. GetStringValue returns it
// unexpanded, and %VAR% syntax needs the Windows expansion call.
func expandProgramsValue(v string) string {
	if expanded, err := registry.ExpandString(v); err == nil {
		v = expanded
	}
	return filepath.Clean(v)
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
