package catalog

import (
	"sort"
	"strings"
)

// Entry pairs a node with the name it holds inside its parent.
type Entry struct {
	Name string
	Node *Node
}

// App is one flattened launchable: a display name plus its shortcut path.
type App struct {
	Display string
	Target  string
}

// SortedEntries lists a folder's children in case-insensitive name order.
// Ties between case-folded equals keep insertion order.
func SortedEntries(n *Node) []Entry {
	entries := make([]Entry, 0, len(n.order))
	for _, name := range n.order {
		entries = append(entries, Entry{Name: name, Node: n.children[name]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})
	return entries
}

// TopLevelCategories lists the root's direct subfolders, sorted.
func TopLevelCategories(n *Node) []Entry {
	var cats []Entry
	for _, e := range SortedEntries(n) {
		if !e.Node.IsLeaf() {
			cats = append(cats, e)
		}
	}
	return cats
}

// Flatten walks the whole tree into one ordered app list: each folder's
// subfolders first, then its leaves, both sorted. Leaves below the root get
// their immediate parent folder appended: "Notepad (Accessories)".
func Flatten(n *Node) []App {
	return flatten(n, "")
}

func flatten(n *Node, parent string) []App {
	var folders, leaves []Entry
	for _, e := range SortedEntries(n) {
		if e.Node.IsLeaf() {
			leaves = append(leaves, e)
		} else {
			folders = append(folders, e)
		}
	}

	var apps []App
	for _, f := range folders {
		apps = append(apps, flatten(f.Node, f.Name)...)
	}
	for _, l := range leaves {
		display := l.Name
		if parent != "" {
			display = l.Name + " (" + parent + ")"
		}
		apps = append(apps, App{Display: display, Target: l.Node.Target})
	}
	return apps
}

// Filter returns the apps whose display name contains query, matched
// case-insensitively. An empty query returns the input unchanged.
func Filter(apps []App, query string) []App {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return apps
	}
	var out []App
	for _, a := range apps {
		if strings.Contains(strings.ToLower(a.Display), query) {
			out = append(out, a)
		}
	}
	return out
}

// CountLeaves reports how many launchables the tree holds.
func CountLeaves(n *Node) int {
	if n.IsLeaf() {
		return 1
	}
	total := 0
	for _, name := range n.order {
		total += CountLeaves(n.children[name])
	}
	return total
}
