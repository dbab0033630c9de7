package favorites

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func storeAt(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "favorites.json")
	s, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return s, path
}

func TestAddIsIdempotent(t *testing.T) {
	s, _ := storeAt(t)
	if !s.Add(`C:\apps\Word.lnk`) {
		t.Fatal("first add should insert")
	}
	if s.Add(`C:\apps\Word.lnk`) {
		t.Fatal("duplicate add should be rejected")
	}
	if len(s.Paths) != 1 {
		t.Fatalf("length after duplicate add: %d", len(s.Paths))
	}
}

func TestRemove(t *testing.T) {
	s, _ := storeAt(t)
	s.Add("a")
	s.Add("b")
	if !s.Remove("a") {
		t.Fatal("remove existing should succeed")
	}
	if s.Remove("a") {
		t.Fatal("remove absent should report false")
	}
	if len(s.Paths) != 1 || s.Paths[0] != "b" {
		t.Fatalf("unexpected remainder: %v", s.Paths)
	}
}

func TestMoveRoundTrip(t *testing.T) {
	s, _ := storeAt(t)
	s.Paths = []string{"a", "b", "c"}

	if !s.MoveUp(1) {
		t.Fatal("move up mid-list should succeed")
	}
	if !s.MoveDown(0) {
		t.Fatal("move down should succeed")
	}
	if s.Paths[0] != "a" || s.Paths[1] != "b" || s.Paths[2] != "c" {
		t.Fatalf("round trip did not restore order: %v", s.Paths)
	}

	if s.MoveUp(0) {
		t.Fatal("move up at top must be a no-op")
	}
	if s.MoveDown(2) {
		t.Fatal("move down at bottom must be a no-op")
	}
}

func TestLoadPrunesMissing(t *testing.T) {
	dir := t.TempDir()
	alive := filepath.Join(dir, "alive.lnk")
	if err := os.WriteFile(alive, nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	dead := filepath.Join(dir, "gone.lnk")

	path := filepath.Join(dir, "favorites.json")
	blob, _ := json.Marshal(map[string][]string{"paths": {alive, dead}})
	if err := os.WriteFile(path, blob, 0o644); err != nil {
		t.Fatalf("write store: %v", err)
	}

	s, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(s.Paths) != 1 || s.Paths[0] != alive {
		t.Fatalf("stale entry not pruned: %v", s.Paths)
	}

	// The pruned list was persisted immediately.
	reread, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(reread.Paths) != 1 {
		t.Fatalf("pruned list not saved: %v", reread.Paths)
	}
}

func TestLoadCorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favorites.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	s, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(s.Paths) != 0 {
		t.Fatalf("corrupt store should start empty: %v", s.Paths)
	}
}

func TestDisplayName(t *testing.T) {
	if got := DisplayName(`C:\Start Menu\Programs\Games\Chess.lnk`); got != "Chess" {
		t.Fatalf("display name mismatch: %s", got)
	}
}
