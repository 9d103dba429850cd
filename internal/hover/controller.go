package hover

import (
	"errors"

	"github.com/atomicstack/hovermenu/internal/logging/events"
	"github.com/atomicstack/hovermenu/internal/menu"
)

// Anchor is a render-layer reference a submenu is positioned against. The
// controller stores anchors and hands them back but never inspects them.
type Anchor = any

// ErrNilTree is returned when a controller is built without a tree.
var ErrNilTree = errors.New("hover: nil menu tree")

// LevelState records the open branch at one depth of the open path.
type LevelState struct {
	NodeID string
	Anchor Anchor
}

// Activation reports a leaf the user chose. Navigation is up to the caller.
type Activation struct {
	Path []string
	Link string
}

// Transition describes a single change of the open path.
type Transition struct {
	Op     string
	Before []LevelState
	After  []LevelState
}

// Option customises a Controller.
type Option func(*Controller)

// WithFocusReturn registers the callback invoked when the root level closes.
func WithFocusReturn(fn func(Anchor)) Option {
	return func(c *Controller) { c.onFocusReturn = fn }
}

// WithActivate registers the callback invoked when a leaf is activated.
func WithActivate(fn func(Activation)) Option {
	return func(c *Controller) { c.onActivate = fn }
}

// WithTransition registers a callback invoked after every state change.
func WithTransition(fn func(Transition)) Option {
	return func(c *Controller) { c.onTransition = fn }
}

// Controller is the open/close state machine for one rendered menu tree.
// openPath is always a path from a root: entry i is a child of entry i-1.
// All methods run on the caller's event loop; a Controller is not safe for
// concurrent use.
type Controller struct {
	tree           *menu.Tree
	openPath       []LevelState
	lastRootAnchor Anchor

	onFocusReturn func(Anchor)
	onActivate    func(Activation)
	onTransition  func(Transition)
}

// New builds a closed controller for tree.
func New(tree *menu.Tree, opts ...Option) (*Controller, error) {
	if tree == nil {
		return nil, ErrNilTree
	}
	c := &Controller{tree: tree}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c, nil
}

// FromNodes validates a tree literal and builds a controller for it. A
// malformed literal yields the *menu.ConfigError values and no controller.
func FromNodes(title string, roots []*menu.Node, opts ...Option) (*Controller, error) {
	tree, err := menu.New(title, roots...)
	if err != nil {
		return nil, err
	}
	return New(tree, opts...)
}

// Tree returns the tree the controller currently serves.
func (c *Controller) Tree() *menu.Tree {
	return c.tree
}

// OpenBranch makes nodeID the open branch at level and closes everything
// that was open at or below level. Leaves, unknown ids and levels whose
// parent is not open are ignored. Re-opening the active node keeps the
// deeper path as it is.
func (c *Controller) OpenBranch(level int, nodeID string, anchor Anchor) {
	node, ok := c.lookup(level, nodeID)
	if !ok || !node.IsBranch() {
		events.Menu.Ignore("open", level, nodeID)
		return
	}
	if level == 0 {
		c.lastRootAnchor = anchor
	}
	if c.IsOpen(level, nodeID) {
		return
	}
	before := c.OpenPath()
	clear(c.openPath[level:])
	c.openPath = append(c.openPath[:level], LevelState{NodeID: nodeID, Anchor: anchor})
	events.Menu.Open(level, nodeID, c.OpenIDs())
	c.notify("open", before)
}

// CloseBranch closes level and everything below it. Closing a level that
// is not open does nothing.
func (c *Controller) CloseBranch(level int) {
	if level < 0 || level >= len(c.openPath) {
		return
	}
	before := c.OpenPath()
	clear(c.openPath[level:])
	c.openPath = c.openPath[:level]
	events.Menu.Close(level, len(before))
	c.notify("close", before)
	if level == 0 {
		c.returnFocus()
	}
}

// CloseAll closes the whole menu.
func (c *Controller) CloseAll() {
	c.CloseBranch(0)
}

// ToggleRoot is the click behaviour of the menu bar: clicking the open root
// closes the menu, clicking any other root opens it.
func (c *Controller) ToggleRoot(nodeID string, anchor Anchor) {
	if _, ok := c.lookup(0, nodeID); !ok {
		events.Menu.Ignore("toggle", 0, nodeID)
		return
	}
	c.lastRootAnchor = anchor
	if c.IsOpen(0, nodeID) {
		events.Menu.Toggle(nodeID, false)
		c.CloseAll()
		return
	}
	events.Menu.Toggle(nodeID, true)
	c.OpenBranch(0, nodeID, anchor)
}

// HandleClickAway closes the menu after a pointer or focus event outside
// the whole menu subtree.
func (c *Controller) HandleClickAway() {
	c.CloseAll()
}

// IsOpen reports whether nodeID is the open branch at level.
func (c *Controller) IsOpen(level int, nodeID string) bool {
	return level >= 0 && level < len(c.openPath) && c.openPath[level].NodeID == nodeID
}

// AnchorFor returns the anchor stored for the open branch at level.
func (c *Controller) AnchorFor(level int) (Anchor, bool) {
	if level < 0 || level >= len(c.openPath) {
		return nil, false
	}
	return c.openPath[level].Anchor, true
}

// LastRootAnchor returns the root trigger most recently interacted with.
func (c *Controller) LastRootAnchor() Anchor {
	return c.lastRootAnchor
}

// Depth is the number of open levels; zero means the menu is closed.
func (c *Controller) Depth() int {
	return len(c.openPath)
}

// OpenPath returns a copy of the open path from the root down.
func (c *Controller) OpenPath() []LevelState {
	if len(c.openPath) == 0 {
		return nil
	}
	return append([]LevelState(nil), c.openPath...)
}

// OpenIDs returns the ids of the open path from the root down.
func (c *Controller) OpenIDs() []string {
	return c.pathIDs(len(c.openPath))
}

// ActiveNode returns the open branch node at level.
func (c *Controller) ActiveNode(level int) (*menu.Node, bool) {
	if level < 0 || level >= len(c.openPath) {
		return nil, false
	}
	return c.tree.Node(c.pathIDs(level + 1)...)
}

func (c *Controller) lookup(level int, nodeID string) (*menu.Node, bool) {
	if c.tree == nil || level < 0 || level > len(c.openPath) {
		return nil, false
	}
	path := append(c.pathIDs(level), nodeID)
	return c.tree.Node(path...)
}

func (c *Controller) pathIDs(n int) []string {
	if n > len(c.openPath) {
		n = len(c.openPath)
	}
	ids := make([]string, 0, n+1)
	for _, lvl := range c.openPath[:n] {
		ids = append(ids, lvl.NodeID)
	}
	return ids
}

func (c *Controller) returnFocus() {
	events.Menu.FocusReturn(c.lastRootAnchor)
	if c.onFocusReturn != nil {
		c.onFocusReturn(c.lastRootAnchor)
	}
}

func (c *Controller) notify(op string, before []LevelState) {
	events.Menu.Path(c.OpenIDs())
	if c.onTransition == nil {
		return
	}
	c.onTransition(Transition{Op: op, Before: before, After: c.OpenPath()})
}
