// Package deps verifies the external Windows collaborators the launcher
// shells out to.
package deps

import (
	"os/exec"
	"runtime"
)

type Dependency struct {
	Name     string
	Command  string
	Required bool
	Hint     string
}

type MissingDep struct {
	Dependency
}

var dependencies = []Dependency{
	{
		Name:     "explorer",
		Command:  "explorer.exe",
		Required: true,
		Hint:     "shortcut launching needs Explorer",
	},
	{
		Name:     "shutdown",
		Command:  "shutdown",
		Required: true,
		Hint:     "power actions need shutdown.exe",
	},
	{
		Name:     "powershell",
		Command:  "powershell",
		Required: false,
		Hint:     "speech output and a settings fallback are unavailable",
	},
	{
		Name:     "cscript",
		Command:  "cscript",
		Required: false,
		Hint:     "the script-host settings fallback is unavailable",
	},
}

// Check reports which collaborators are absent from PATH. Outside Windows
// nothing is reported missing so development builds can run against a plain
// directory tree.
func Check() []MissingDep {
	if runtime.GOOS != "windows" {
		return nil
	}
	missing := []MissingDep{}
	for _, dep := range dependencies {
		if _, err := exec.LookPath(dep.Command); err != nil {
			missing = append(missing, MissingDep{dep})
		}
	}
	return missing
}
