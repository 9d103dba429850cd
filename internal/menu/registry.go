package menu

// Tree is a validated, immutable navigation tree. Nodes returned by its
// lookups are shared and must not be modified.
type Tree struct {
	title string
	roots []*Node
	nodes map[string]*Node
}

// New validates roots and builds a tree from a deep copy of them.
func New(title string, roots ...*Node) (*Tree, error) {
	if err := Validate(roots); err != nil {
		return nil, err
	}
	t := &Tree{
		title: title,
		roots: make([]*Node, len(roots)),
		nodes: make(map[string]*Node),
	}
	for i, root := range roots {
		t.roots[i] = root.clone()
	}
	t.Walk(func(path []string, node *Node) {
		t.nodes[Key(path...)] = node
	})
	return t, nil
}

// MustNew is New for literals known to be valid.
func MustNew(title string, roots ...*Node) *Tree {
	t, err := New(title, roots...)
	if err != nil {
		panic(err)
	}
	return t
}

// Title returns the menu bar title.
func (t *Tree) Title() string {
	if t == nil {
		return ""
	}
	return t.title
}

// Roots returns the top-level items in display order.
func (t *Tree) Roots() []*Node {
	if t == nil {
		return nil
	}
	return append([]*Node(nil), t.roots...)
}

// Len reports the number of nodes in the tree.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.nodes)
}

// Find locates a node by its joined key.
func (t *Tree) Find(key string) (*Node, bool) {
	if t == nil {
		return nil, false
	}
	node, ok := t.nodes[key]
	return node, ok
}

// Node resolves an id path starting at the roots.
func (t *Tree) Node(path ...string) (*Node, bool) {
	if len(path) == 0 {
		return nil, false
	}
	return t.Find(Key(path...))
}

// Parent returns the parent of the node at key; roots have no parent.
func (t *Tree) Parent(key string) (*Node, bool) {
	parent, _ := parentKey(key)
	if parent == "" {
		return nil, false
	}
	return t.Find(parent)
}

// Children lists the items shown at the level under path. An empty path
// yields the roots; a leaf or unknown path yields nil.
func (t *Tree) Children(path ...string) []*Node {
	if t == nil {
		return nil
	}
	if len(path) == 0 {
		return t.Roots()
	}
	node, ok := t.Node(path...)
	if !ok {
		return nil
	}
	return append([]*Node(nil), node.Children...)
}

// Walk visits every node depth-first with its id path from the root.
func (t *Tree) Walk(fn func(path []string, node *Node)) {
	if t == nil || fn == nil {
		return
	}
	var walk func(prefix []string, nodes []*Node)
	walk = func(prefix []string, nodes []*Node) {
		for _, node := range nodes {
			path := append(append([]string(nil), prefix...), node.ID)
			fn(path, node)
			walk(path, node.Children)
		}
	}
	walk(nil, t.roots)
}

// Equal reports structural equality: ids, labels, links and order.
func (t *Tree) Equal(other *Tree) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.title == other.title && nodesEqual(t.roots, other.roots)
}
