package catalog

import (
	"path/filepath"
	"strconv"
	"strings"
)

// Node is one position in the menu tree: either a folder (interior) holding
// named children, or a leaf pointing at a launchable shortcut file. Trees are
// built fresh on every menu open and thrown away when the menu closes.
type Node struct {
	children map[string]*Node
	order    []string // insertion order, the sort tiebreak
	Target   string   // leaf only: absolute shortcut path
}

func newFolder() *Node {
	return &Node{children: map[string]*Node{}}
}

func newLeaf(target string) *Node {
	return &Node{Target: target}
}

func (n *Node) IsLeaf() bool {
	return n.children == nil
}

func (n *Node) Len() int {
	return len(n.order)
}

func (n *Node) Child(name string) *Node {
	if n.children == nil {
		return nil
	}
	return n.children[name]
}

// folder returns the named child folder, creating it if needed. When a
// shortcut already owns the name (a leaf in one root, a directory in
// another), the folder is housed under a suffixed key, same rule as leaf
// collisions; repeat visits find the suffixed folder again.
func (n *Node) folder(name string) *Node {
	if child, ok := n.children[name]; ok && !child.IsLeaf() {
		return child
	}
	if _, ok := n.children[name]; ok {
		for i := 2; ; i++ {
			candidate := name + " (" + strconv.Itoa(i) + ")"
			existing, taken := n.children[candidate]
			if !taken {
				name = candidate
				break
			}
			if !existing.IsLeaf() {
				return existing
			}
		}
	}
	child := newFolder()
	n.insert(name, child)
	return child
}

func (n *Node) insert(name string, child *Node) {
	n.children[name] = child
	n.order = append(n.order, name)
}

// mkdirAll resolves a relative slash-separated path into the folder chain,
// creating folders as it goes.
func (n *Node) mkdirAll(rel string) *Node {
	node := n
	for _, part := range splitPath(rel) {
		node = node.folder(part)
	}
	return node
}

// insertLeaf adds a leaf under a collision-free name: the first "App" keeps
// its name, later ones become "App (2)", "App (3)", ...
func (n *Node) insertLeaf(name, target string) {
	n.insert(uniqueName(name, n.children), newLeaf(target))
}

func splitPath(rel string) []string {
	return strings.Split(rel, string(filepath.Separator))
}

func uniqueName(name string, existing map[string]*Node) string {
	if _, ok := existing[name]; !ok {
		return name
	}
	for i := 2; ; i++ {
		candidate := name + " (" + strconv.Itoa(i) + ")"
		if _, ok := existing[candidate]; !ok {
			return candidate
		}
	}
}
