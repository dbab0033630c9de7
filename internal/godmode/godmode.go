// Package godmode discovers the "All Settings" control-panel items through
// the shell's virtual namespace. No single automation surface is available in
// every environment (script policy, bitness redirection, disabled COM), so
// both discovery and invocation walk an ordered chain of strategies and take
// the first that works.
package godmode

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mwhelan/accessmenu/internal/diag"
	"github.com/mwhelan/accessmenu/internal/shell"
)

// godModeNamespace is the shell virtual folder holding every control-panel
// style settings item.
const godModeNamespace = "shell:::{ED7BA470-8E54-465E-825C-99712043E01C}"

const defaultTimeout = 15 * time.Second

type Enumerator struct {
	Cmd shell.Commander
	// HelperPath locates the bundled helper executable; empty disables the
	// helper strategy.
	HelperPath string
	// Timeout bounds the in-process COM worker call.
	Timeout time.Duration
	Diag    *diag.Diag
}

func New(cmd shell.Commander, helperPath string, timeout time.Duration, d *diag.Diag) *Enumerator {
	return &Enumerator{Cmd: cmd, HelperPath: helperPath, Timeout: timeout, Diag: d}
}

func (e *Enumerator) timeout() time.Duration {
	if e.Timeout <= 0 {
		return defaultTimeout
	}
	return e.Timeout
}

// Items discovers the settings items. The result is sorted and deduplicated;
// an exhausted chain returns an empty list, never an error.
func (e *Enumerator) Items() []string {
	items, winner := runEnumChain(e.enumStrategies(), e.Diag)
	if winner != "" && e.Diag != nil {
		e.Diag.Infof("settings enumeration via %s: %d items", winner, len(items))
	}
	return normalizeNames(items)
}

// Invoke resolves the display name back to its settings item and runs its
// default verb. Identifiers can go stale between enumeration and invocation;
// a failed invoke is a no-op, reported only through the return value.
func (e *Enumerator) Invoke(item string) bool {
	return runInvokeChain(item, e.invokeStrategies(), e.Diag)
}

func (e *Enumerator) enumStrategies() []enumStrategy {
	return []enumStrategy{
		{name: "helper", run: e.helperEnumerate},
		{name: "com", run: e.comEnumerate},
		{name: "powershell", run: e.powershellEnumerate},
		{name: "cscript", run: e.cscriptEnumerate},
	}
}

func (e *Enumerator) invokeStrategies() []invokeStrategy {
	return []invokeStrategy{
		{name: "helper", run: e.helperInvoke},
		{name: "com", run: e.comInvoke},
		{name: "powershell", run: e.powershellInvoke},
		{name: "cscript", run: e.cscriptInvoke},
	}
}

func (e *Enumerator) helperEnumerate() ([]string, error) {
	if e.HelperPath == "" {
		return nil, fmt.Errorf("no helper configured")
	}
	out, err := e.Cmd.Output(e.HelperPath)
	if err != nil {
		return nil, fmt.Errorf("helper: %w", err)
	}
	return parseNames(string(out)), nil
}

func (e *Enumerator) helperInvoke(item string) error {
	if e.HelperPath == "" {
		return fmt.Errorf("no helper configured")
	}
	if _, err := e.Cmd.Run(e.HelperPath, "--invoke", item); err != nil {
		return fmt.Errorf("helper: %w", err)
	}
	return nil
}

// parseNames splits raw line output into a sorted, case-insensitively
// deduplicated name list.
func parseNames(raw string) []string {
	var names []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		names = append(names, line)
	}
	return normalizeNames(names)
}

// normalizeNames sorts case-insensitively and drops case-insensitive
// duplicates, keeping the first spelling seen. Every enumeration result
// passes through here, so the screen order never depends on which strategy
// produced it.
func normalizeNames(names []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, name := range names {
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, name)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i]) < strings.ToLower(out[j])
	})
	return out
}
