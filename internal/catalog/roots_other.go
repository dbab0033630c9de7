//go:build !windows

package catalog

import (
	"os"
	"path/filepath"
)

// StartMenuRoots has nothing OS-provided to return off Windows; it honors an
// override directory so the menu stays usable in development.
func StartMenuRoots() []string {
	if dir := os.Getenv("ACCESSMENU_ROOT"); dir != "" {
		return []string{filepath.Clean(dir)}
	}
	return nil
}
