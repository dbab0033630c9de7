package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func buildFixture(t *testing.T) *Node {
	t.Helper()
	root := t.TempDir()
	for _, p := range []string{
		filepath.Join(root, "zebra.lnk"),
		filepath.Join(root, "Accessories", "Notepad.lnk"),
		filepath.Join(root, "Accessories", "paint.lnk"),
		filepath.Join(root, "Games", "Chess.lnk"),
	} {
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(p, nil, 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	return Build([]string{root})
}

func TestSortedEntriesCaseInsensitive(t *testing.T) {
	tree := buildFixture(t)
	acc := tree.Child("Accessories")
	entries := SortedEntries(acc)
	if len(entries) != 2 {
		t.Fatalf("entry count mismatch: %d", len(entries))
	}
	if entries[0].Name != "Notepad" || entries[1].Name != "paint" {
		t.Fatalf("sort order mismatch: %s, %s", entries[0].Name, entries[1].Name)
	}
}

func TestFlattenCountAndNames(t *testing.T) {
	tree := buildFixture(t)
	apps := Flatten(tree)

	if len(apps) != CountLeaves(tree) {
		t.Fatalf("flatten returned %d entries for %d leaves", len(apps), CountLeaves(tree))
	}
	seen := map[string]bool{}
	for _, a := range apps {
		if seen[a.Display] {
			t.Fatalf("duplicate display name: %s", a.Display)
		}
		seen[a.Display] = true
	}
	if !seen["Notepad (Accessories)"] {
		t.Fatalf("subfolder leaf should carry its parent name, have %v", apps)
	}
	if !seen["zebra"] {
		t.Fatal("root leaf should keep its bare name")
	}
}

func TestFlattenFoldersBeforeRootLeaves(t *testing.T) {
	tree := buildFixture(t)
	apps := Flatten(tree)
	if apps[len(apps)-1].Display != "zebra" {
		t.Fatalf("root leaves should come after folder contents: %v", apps)
	}
}

func TestTopLevelCategories(t *testing.T) {
	tree := buildFixture(t)
	cats := TopLevelCategories(tree)
	if len(cats) != 2 {
		t.Fatalf("category count mismatch: %d", len(cats))
	}
	if cats[0].Name != "Accessories" || cats[1].Name != "Games" {
		t.Fatalf("category order mismatch: %s, %s", cats[0].Name, cats[1].Name)
	}
	for _, c := range cats {
		if c.Node.IsLeaf() {
			t.Fatalf("category %s should be a folder", c.Name)
		}
	}
}

func TestFilterEmptyQueryReturnsInput(t *testing.T) {
	tree := buildFixture(t)
	apps := Flatten(tree)
	got := Filter(apps, "")
	if len(got) != len(apps) {
		t.Fatalf("empty query changed length: %d != %d", len(got), len(apps))
	}
	for i := range got {
		if got[i] != apps[i] {
			t.Fatalf("empty query reordered entries at %d", i)
		}
	}
}

func TestFilterCaseInsensitiveAndIdempotent(t *testing.T) {
	tree := buildFixture(t)
	apps := Flatten(tree)

	got := Filter(apps, "NOTE")
	if len(got) != 1 || got[0].Display != "Notepad (Accessories)" {
		t.Fatalf("filter mismatch: %v", got)
	}

	again := Filter(got, "NOTE")
	if len(again) != len(got) || again[0] != got[0] {
		t.Fatal("filter is not idempotent")
	}

	if got := Filter(apps, "no-such-app"); len(got) != 0 {
		t.Fatalf("expected no matches, got %v", got)
	}
}
