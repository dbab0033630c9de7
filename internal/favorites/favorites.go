package favorites

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// Store is the ordered favorites list. Entries are shortcut paths, unique by
// exact match, persisted as JSON. Every mutation saves synchronously; the
// load path prunes entries whose shortcut disappeared and writes the pruned
// list straight back.
type Store struct {
	Paths []string `json:"paths"`

	path   string
	exists func(string) bool
}

func configDir() string {
	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, "accessmenu")
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "accessmenu")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "accessmenu")
}

func Load() (*Store, error) {
	return LoadFrom(filepath.Join(configDir(), "favorites.json"))
}

func LoadFrom(path string) (*Store, error) {
	s := &Store{path: path, Paths: []string{}, exists: fileExists}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(data, s); err != nil {
		// A corrupt favorites file starts over empty rather than blocking
		// the menu.
		s.Paths = []string{}
		return s, nil
	}
	s.path = path

	if s.pruneMissing() {
		_ = s.Save()
	}
	return s, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// pruneMissing drops entries whose target no longer exists. Returns whether
// anything was removed.
func (s *Store) pruneMissing() bool {
	kept := s.Paths[:0]
	for _, p := range s.Paths {
		if s.exists(p) {
			kept = append(kept, p)
		}
	}
	changed := len(kept) != len(s.Paths)
	s.Paths = kept
	return changed
}

func (s *Store) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

// Add appends path unless it is already present. Reports whether an
// insertion happened.
func (s *Store) Add(path string) bool {
	for _, p := range s.Paths {
		if p == path {
			return false
		}
	}
	s.Paths = append(s.Paths, path)
	_ = s.Save()
	return true
}

// Remove drops the first exact match. Reports whether a removal happened.
func (s *Store) Remove(path string) bool {
	for i, p := range s.Paths {
		if p == path {
			s.Paths = append(s.Paths[:i], s.Paths[i+1:]...)
			_ = s.Save()
			return true
		}
	}
	return false
}

// MoveUp swaps the entry with its predecessor; index 0 is a no-op.
func (s *Store) MoveUp(i int) bool {
	if i <= 0 || i >= len(s.Paths) {
		return false
	}
	s.Paths[i-1], s.Paths[i] = s.Paths[i], s.Paths[i-1]
	_ = s.Save()
	return true
}

// MoveDown swaps the entry with its successor; the last index is a no-op.
func (s *Store) MoveDown(i int) bool {
	if i < 0 || i >= len(s.Paths)-1 {
		return false
	}
	s.Paths[i], s.Paths[i+1] = s.Paths[i+1], s.Paths[i]
	_ = s.Save()
	return true
}

// DisplayName is the shortcut's base name without extension. Stored paths
// use backslashes, so both separators are handled.
func DisplayName(path string) string {
	base := path
	if i := strings.LastIndexAny(base, `\/`); i >= 0 {
		base = base[i+1:]
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}
