package catalog

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// shortcut extensions recognized as launchable.
var shortcutExts = map[string]bool{
	".lnk":       true,
	".url":       true,
	".appref-ms": true,
}

func IsShortcut(name string) bool {
	return shortcutExts[strings.ToLower(filepath.Ext(name))]
}

func baseName(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// Build walks the shortcut roots into one merged tree. Roots are walked in
// order, so the first root wins the unsuffixed name when two roots carry the
// same shortcut at the same position; list the machine-wide root first.
//
// The walk is two-pass: pass one collects the case-folded base names of every
// shortcut living inside a subfolder, pass two builds the tree and drops
// root-level shortcuts whose name already appears in a subfolder (vendors
// often drop a duplicate copy at the top level). Unreadable or missing roots
// are skipped; no roots yields an empty tree.
func Build(roots []string) *Node {
	tree := newFolder()

	subfolderApps := map[string]bool{}
	for _, root := range roots {
		root := root
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if d.IsDir() || !IsShortcut(d.Name()) {
				return nil
			}
			if filepath.Dir(path) == filepath.Clean(root) {
				return nil
			}
			subfolderApps[strings.ToLower(baseName(d.Name()))] = true
			return nil
		})
	}

	for _, root := range roots {
		root := filepath.Clean(root)
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if d.IsDir() {
				if rel, relErr := filepath.Rel(root, path); relErr == nil && rel != "." {
					tree.mkdirAll(rel)
				}
				return nil
			}
			if !IsShortcut(d.Name()) {
				return nil
			}
			rel, err := filepath.Rel(root, filepath.Dir(path))
			if err != nil {
				return nil
			}
			atRoot := rel == "."
			base := baseName(d.Name())
			if atRoot && subfolderApps[strings.ToLower(base)] {
				return nil
			}
			node := tree
			if !atRoot {
				node = tree.mkdirAll(rel)
			}
			node.insertLeaf(base, path)
			return nil
		})
	}

	return tree
}
