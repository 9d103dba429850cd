package menu

import "strings"

// PathSeparator joins node ids into tree keys ("tickets:sell").
const PathSeparator = ":"

// Node is a single entry of the navigation tree. A node is either a branch
// (non-empty Children) or a leaf (non-empty Link).
type Node struct {
	ID       string  `yaml:"id" json:"id"`
	Label    string  `yaml:"label,omitempty" json:"label,omitempty"`
	Link     string  `yaml:"link,omitempty" json:"link,omitempty"`
	Children []*Node `yaml:"children,omitempty" json:"children,omitempty"`
}

// IsBranch reports whether the node opens a submenu.
func (n *Node) IsBranch() bool {
	return n != nil && len(n.Children) > 0
}

// IsLeaf reports whether the node is a navigation target.
func (n *Node) IsLeaf() bool {
	return n != nil && len(n.Children) == 0 && n.Link != ""
}

// Child returns the direct child with the given id.
func (n *Node) Child(id string) (*Node, bool) {
	if n == nil {
		return nil, false
	}
	return findSibling(n.Children, id)
}

// DisplayLabel falls back to the id when no label is set.
func (n *Node) DisplayLabel() string {
	if n == nil {
		return ""
	}
	if strings.TrimSpace(n.Label) != "" {
		return n.Label
	}
	return n.ID
}

func (n *Node) clone() *Node {
	if n == nil {
		return nil
	}
	dup := &Node{ID: n.ID, Label: n.Label, Link: n.Link}
	if len(n.Children) > 0 {
		dup.Children = make([]*Node, len(n.Children))
		for i, child := range n.Children {
			dup.Children[i] = child.clone()
		}
	}
	return dup
}

func (n *Node) equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.ID != other.ID || n.Label != other.Label || n.Link != other.Link {
		return false
	}
	return nodesEqual(n.Children, other.Children)
}

func nodesEqual(a, b []*Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].equal(b[i]) {
			return false
		}
	}
	return true
}

func findSibling(nodes []*Node, id string) (*Node, bool) {
	for _, node := range nodes {
		if node != nil && node.ID == id {
			return node, true
		}
	}
	return nil, false
}

// Key joins an id path into the lookup key used by Tree.Find.
func Key(path ...string) string {
	return strings.Join(path, PathSeparator)
}

func parentKey(key string) (string, string) {
	idx := strings.LastIndex(key, PathSeparator)
	if idx < 0 {
		return "", key
	}
	return key[:idx], key[idx+1:]
}
