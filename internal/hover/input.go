package hover

import (
	"github.com/atomicstack/hovermenu/internal/logging/events"
	"github.com/atomicstack/hovermenu/internal/menu"
)

// HoverEnter handles the pointer entering the item nodeID at level. Branches
// open (never toggle); leaves close whatever sibling subtree was open at
// their level while leaving ancestors open.
func (c *Controller) HoverEnter(level int, nodeID string, anchor Anchor) {
	node, ok := c.lookup(level, nodeID)
	if !ok {
		events.Menu.Ignore("hover", level, nodeID)
		return
	}
	if node.IsBranch() {
		c.OpenBranch(level, nodeID, anchor)
		return
	}
	c.CloseBranch(level)
}

// HoverLeave handles the pointer leaving level. Submenus are nested inside
// the root region, so only leaving the root closes anything.
func (c *Controller) HoverLeave(level int) {
	if level != 0 {
		return
	}
	c.CloseAll()
}

// Click handles a click on a menu bar item.
func (c *Controller) Click(nodeID string, anchor Anchor) {
	c.ToggleRoot(nodeID, anchor)
}

// Activate handles a click or enter on the item nodeID at level. Leaves are
// reported through the activate callback and close the menu; branches open
// against anchor.
func (c *Controller) Activate(level int, nodeID string, anchor Anchor) {
	node, ok := c.lookup(level, nodeID)
	if !ok {
		events.Menu.Ignore("activate", level, nodeID)
		return
	}
	if node.IsBranch() {
		c.OpenBranch(level, nodeID, anchor)
		return
	}
	activation := Activation{Path: append(c.pathIDs(level), nodeID), Link: node.Link}
	events.Menu.Activate(activation.Path, activation.Link)
	c.CloseAll()
	if c.onActivate != nil {
		c.onActivate(activation)
	}
}

// Blur handles keyboard focus leaving the menu subtree.
func (c *Controller) Blur() {
	c.CloseAll()
}

// SetTree replaces the tree. A structurally different tree closes the menu;
// an equal one keeps the open path.
func (c *Controller) SetTree(tree *menu.Tree) {
	if tree == nil {
		return
	}
	if c.tree.Equal(tree) {
		c.tree = tree
		return
	}
	events.Menu.Reset("tree replaced")
	c.CloseAll()
	c.tree = tree
	c.lastRootAnchor = nil
}
