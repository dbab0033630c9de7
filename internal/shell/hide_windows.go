//go:build windows

package shell

import (
	"os/exec"
	"syscall"
)

// hideWindow keeps spawned console processes from flashing a window. The menu
// is driven by a screen reader, so any transient console steals focus and gets
// announced.
func hideWindow(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{HideWindow: true}
}
