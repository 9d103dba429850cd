package hover

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/atomicstack/hovermenu/internal/menu"
)

func leaf(id string) *menu.Node {
	return &menu.Node{ID: id, Link: "/" + id}
}

func branch(id string, children ...*menu.Node) *menu.Node {
	return &menu.Node{ID: id, Children: children}
}

// scenarioTree is [A→[A1, A2→[A2a, A2b]], B].
func scenarioTree() *menu.Tree {
	return menu.MustNew("scenario",
		branch("A", leaf("A1"), branch("A2", leaf("A2a"), leaf("A2b"))),
		leaf("B"),
	)
}

// deepTree gives every level several sibling branches so random walks
// reach deep states.
func deepTree() *menu.Tree {
	return menu.MustNew("deep",
		branch("A",
			leaf("A1"),
			branch("A2", branch("A2a", leaf("x"), leaf("y")), leaf("A2b")),
			branch("A3", leaf("A3a")),
		),
		branch("B", branch("B1", branch("B1a", leaf("z"))), leaf("B2")),
		leaf("C"),
	)
}

type recorder struct {
	focus       []Anchor
	activations []Activation
	transitions []Transition
}

func newController(t *testing.T, tree *menu.Tree) (*Controller, *recorder) {
	t.Helper()
	rec := &recorder{}
	c, err := New(tree,
		WithFocusReturn(func(a Anchor) { rec.focus = append(rec.focus, a) }),
		WithActivate(func(a Activation) { rec.activations = append(rec.activations, a) }),
		WithTransition(func(tr Transition) { rec.transitions = append(rec.transitions, tr) }),
	)
	require.NoError(t, err)
	return c, rec
}

func TestScenarioOpenDeepThenSwitchRoot(t *testing.T) {
	c, _ := newController(t, scenarioTree())

	c.OpenBranch(0, "A", "anchorA")
	require.Equal(t, []string{"A"}, c.OpenIDs())

	c.OpenBranch(1, "A2", "anchorA2")
	require.Equal(t, []string{"A", "A2"}, c.OpenIDs())

	// A2a is a leaf, so it cannot be opened.
	c.OpenBranch(2, "A2a", "anchorA2a")
	require.Equal(t, []string{"A", "A2"}, c.OpenIDs())

	c.OpenBranch(0, "B", "anchorB")
	require.Equal(t, []string{"A", "A2"}, c.OpenIDs(), "B is a leaf root")

	c.CloseAll()
	require.Empty(t, c.OpenIDs())
}

func TestScenarioDeepBranchesReplacePath(t *testing.T) {
	c, _ := newController(t, deepTree())

	c.OpenBranch(0, "A", "anchorA")
	c.OpenBranch(1, "A2", "anchorA2")
	c.OpenBranch(2, "A2a", "anchorA2a")
	require.Equal(t, []string{"A", "A2", "A2a"}, c.OpenIDs())

	c.OpenBranch(0, "B", "anchorB")
	require.Equal(t, []string{"B"}, c.OpenIDs())
	anchor, ok := c.AnchorFor(0)
	require.True(t, ok)
	require.Equal(t, "anchorB", anchor)

	c.CloseAll()
	require.Zero(t, c.Depth())
}

func TestClickAwayReturnsFocusToLastRootAnchor(t *testing.T) {
	c, rec := newController(t, scenarioTree())
	c.OpenBranch(0, "A", "anchorA")
	c.OpenBranch(1, "A2", "anchorA2")

	c.HandleClickAway()

	require.Empty(t, c.OpenPath())
	require.Equal(t, []Anchor{"anchorA"}, rec.focus)
}

func TestFocusReturnOnlyWhenRootCloses(t *testing.T) {
	c, rec := newController(t, deepTree())
	c.OpenBranch(0, "A", "anchorA")
	c.OpenBranch(1, "A2", "anchorA2")

	c.CloseBranch(1)
	require.Empty(t, rec.focus)

	c.CloseAll()
	c.CloseAll()
	require.Len(t, rec.focus, 1, "closing an already closed menu must not signal again")
}

func TestSiblingHoverClosesPreviousSubtree(t *testing.T) {
	c, _ := newController(t, deepTree())
	c.HoverEnter(0, "A", "a")
	c.HoverEnter(1, "A2", "a2")
	c.HoverEnter(2, "A2a", "a2a")

	c.HoverEnter(1, "A3", "a3")

	require.Equal(t, []string{"A", "A3"}, c.OpenIDs())
	require.False(t, c.IsOpen(1, "A2"))
	require.False(t, c.IsOpen(2, "A2a"))
}

func TestLeafHoverClosesStaleSubtreeKeepsAncestors(t *testing.T) {
	c, rec := newController(t, deepTree())
	c.HoverEnter(0, "A", "a")
	c.HoverEnter(1, "A2", "a2")
	c.HoverEnter(2, "A2a", "a2a")

	c.HoverEnter(1, "A1", "a1")

	require.Equal(t, []string{"A"}, c.OpenIDs())
	require.Empty(t, rec.focus)
}

func TestSameNodeReopenKeepsDeeperPath(t *testing.T) {
	c, rec := newController(t, deepTree())
	c.OpenBranch(0, "A", "a")
	c.OpenBranch(1, "A2", "a2")
	c.OpenBranch(2, "A2a", "a2a")
	transitions := len(rec.transitions)

	c.OpenBranch(1, "A2", "a2-again")
	c.HoverEnter(0, "A", "a-again")

	require.Equal(t, []string{"A", "A2", "A2a"}, c.OpenIDs())
	require.Len(t, rec.transitions, transitions)
	anchor, _ := c.AnchorFor(1)
	require.Equal(t, "a2", anchor, "re-open keeps the stored anchor")
	require.Equal(t, "a-again", c.LastRootAnchor(), "root interaction is still tracked")
}

func TestOpenBranchIgnoresInvalidTransitions(t *testing.T) {
	c, rec := newController(t, deepTree())

	c.OpenBranch(1, "A2", "a2") // parent not open
	c.OpenBranch(0, "missing", "m")
	c.OpenBranch(0, "C", "c") // leaf
	c.OpenBranch(-1, "A", "a")
	require.Zero(t, c.Depth())

	c.OpenBranch(0, "A", "a")
	c.OpenBranch(1, "B1", "b1") // child of another root
	c.OpenBranch(3, "x", "x")
	require.Equal(t, []string{"A"}, c.OpenIDs())
	require.Len(t, rec.transitions, 1)
}

func TestCloseBranchIsIdempotent(t *testing.T) {
	c, rec := newController(t, deepTree())
	c.OpenBranch(0, "A", "a")
	c.OpenBranch(1, "A2", "a2")
	c.OpenBranch(2, "A2a", "a2a")

	c.CloseBranch(1)
	once := c.OpenPath()
	transitions := len(rec.transitions)

	c.CloseBranch(1)
	require.Equal(t, once, c.OpenPath())
	require.Len(t, rec.transitions, transitions)

	c.CloseBranch(-3)
	c.CloseBranch(7)
	require.Equal(t, once, c.OpenPath())
}

func TestToggleRootSymmetry(t *testing.T) {
	c, rec := newController(t, deepTree())

	c.ToggleRoot("A", "a")
	require.True(t, c.IsOpen(0, "A"))
	c.ToggleRoot("A", "a")
	require.Zero(t, c.Depth())
	require.Equal(t, []Anchor{"a"}, rec.focus)

	c.ToggleRoot("A", "a")
	c.ToggleRoot("B", "b")
	require.Equal(t, []string{"B"}, c.OpenIDs())
	require.Equal(t, "b", c.LastRootAnchor())
}

func TestToggleRootUnknownIDIsIgnored(t *testing.T) {
	c, _ := newController(t, deepTree())
	c.ToggleRoot("A", "a")
	c.ToggleRoot("nope", "n")
	require.Equal(t, []string{"A"}, c.OpenIDs())
	require.Equal(t, "a", c.LastRootAnchor())
}

func TestHoverLeaveOnlyClosesFromRoot(t *testing.T) {
	c, _ := newController(t, deepTree())
	c.HoverEnter(0, "A", "a")
	c.HoverEnter(1, "A2", "a2")

	c.HoverLeave(1)
	require.Equal(t, []string{"A", "A2"}, c.OpenIDs())

	c.HoverLeave(0)
	require.Zero(t, c.Depth())
}

func TestActivateLeafReportsAndCloses(t *testing.T) {
	c, rec := newController(t, deepTree())
	c.Click("A", "a")
	c.Activate(1, "A2", "a2")
	c.Activate(2, "A2a", "a2a")
	require.Equal(t, []string{"A", "A2", "A2a"}, c.OpenIDs())

	c.Activate(3, "y", nil)

	require.Zero(t, c.Depth())
	require.Equal(t, []Activation{{Path: []string{"A", "A2", "A2a", "y"}, Link: "/y"}}, rec.activations)
	require.Equal(t, []Anchor{"a"}, rec.focus)
}

func TestActivateUnknownIsIgnored(t *testing.T) {
	c, rec := newController(t, deepTree())
	c.Activate(0, "nope", nil)
	c.Activate(2, "x", nil)
	require.Empty(t, rec.activations)
}

func TestBlurClosesMenu(t *testing.T) {
	c, rec := newController(t, deepTree())
	c.Click("B", "b")
	c.HoverEnter(1, "B1", "b1")
	c.Blur()
	require.Zero(t, c.Depth())
	require.Equal(t, []Anchor{"b"}, rec.focus)
}

func TestSetTreeResetsOnlyOnStructuralChange(t *testing.T) {
	c, rec := newController(t, deepTree())
	c.OpenBranch(0, "A", "a")
	c.OpenBranch(1, "A2", "a2")

	c.SetTree(deepTree())
	require.Equal(t, []string{"A", "A2"}, c.OpenIDs())

	c.SetTree(scenarioTree())
	require.Zero(t, c.Depth())
	require.Equal(t, []Anchor{"a"}, rec.focus)
	require.Nil(t, c.LastRootAnchor())

	// Stale ids from the old tree are ignored.
	c.OpenBranch(0, "A", "a")
	c.OpenBranch(1, "A3", "a3")
	require.Equal(t, []string{"A"}, c.OpenIDs())

	c.SetTree(nil)
	require.NotNil(t, c.Tree())
}

func TestNewRejectsNilTree(t *testing.T) {
	_, err := New(nil)
	require.ErrorIs(t, err, ErrNilTree)
}

func TestFromNodesRejectsMalformedTree(t *testing.T) {
	_, err := FromNodes("bad", []*menu.Node{leaf("a"), leaf("a")})
	var cfgErr *menu.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	require.Equal(t, "a", cfgErr.NodeID)
	require.ErrorIs(t, err, menu.ErrDuplicateID)
}

func TestTransitionsCarryBeforeAndAfter(t *testing.T) {
	c, rec := newController(t, deepTree())
	c.OpenBranch(0, "A", "a")
	c.OpenBranch(1, "A2", "a2")
	c.OpenBranch(0, "B", "b")

	require.Len(t, rec.transitions, 3)
	last := rec.transitions[2]
	require.Equal(t, "open", last.Op)
	require.Equal(t, []LevelState{{NodeID: "A", Anchor: "a"}, {NodeID: "A2", Anchor: "a2"}}, last.Before)
	require.Equal(t, []LevelState{{NodeID: "B", Anchor: "b"}}, last.After)
}

// requirePrefixInvariant checks that every open entry is a branch whose
// parent is the previous entry, which also means one open node per level.
func requirePrefixInvariant(t *testing.T, c *Controller) {
	t.Helper()
	ids := c.OpenIDs()
	for i := range ids {
		node, ok := c.Tree().Node(ids[:i+1]...)
		require.Truef(t, ok, "open path %v is not a tree path at %d", ids, i)
		require.Truef(t, node.IsBranch(), "open path %v holds leaf at %d", ids, i)
	}
}

func TestRandomOperationsKeepInvariants(t *testing.T) {
	tree := deepTree()
	var ids [][]string
	tree.Walk(func(path []string, _ *menu.Node) {
		ids = append(ids, path)
	})
	rng := rand.New(rand.NewPCG(7, 11))

	c, rec := newController(t, tree)
	for step := 0; step < 5000; step++ {
		target := ids[rng.IntN(len(ids))]
		level := len(target) - 1
		if rng.IntN(4) == 0 {
			level = rng.IntN(5) - 1
		}
		id := target[len(target)-1]
		depthBefore := c.Depth()
		openBefore := c.OpenPath()

		closing := false
		switch rng.IntN(9) {
		case 0:
			c.OpenBranch(level, id, id)
			if depthBefore > level && level >= 0 && openBefore[level].NodeID == id {
				require.Equal(t, openBefore, c.OpenPath(), "same-node reopen must not change the path")
			}
		case 1:
			closing = true
			c.CloseBranch(level)
			once := c.OpenPath()
			c.CloseBranch(level)
			require.Equal(t, once, c.OpenPath())
		case 2:
			closing = true
			c.CloseAll()
		case 3:
			c.ToggleRoot(target[0], target[0])
		case 4:
			closing = true
			c.HandleClickAway()
		case 5:
			c.HoverEnter(level, id, id)
		case 6:
			closing = true
			c.HoverLeave(rng.IntN(3))
		case 7:
			c.Activate(level, id, id)
		case 8:
			closing = true
			c.Blur()
		}

		requirePrefixInvariant(t, c)
		after := c.OpenPath()
		if closing {
			require.LessOrEqual(t, len(after), depthBefore)
			// Closing always keeps a prefix of the previous path.
			for i := range after {
				require.Equal(t, openBefore[i], after[i])
			}
		}
	}
	require.NotEmpty(t, rec.transitions)
}

func TestToggleTwiceReturnsToClosedFromAnyRoot(t *testing.T) {
	for _, root := range []string{"A", "B"} {
		c, _ := newController(t, deepTree())
		c.ToggleRoot(root, root)
		c.ToggleRoot(root, root)
		require.Zerof(t, c.Depth(), "root %s", root)
	}
}

func TestActiveNodeFollowsOpenPath(t *testing.T) {
	c, _ := newController(t, deepTree())

	_, ok := c.ActiveNode(0)
	require.False(t, ok, "closed menu has no active node")

	c.OpenBranch(0, "A", nil)
	c.OpenBranch(1, "A2", nil)
	c.OpenBranch(2, "A2a", nil)

	for depth, want := range []string{"A", "A2", "A2a"} {
		node, ok := c.ActiveNode(depth)
		require.True(t, ok)
		require.Equal(t, want, node.ID)
	}
	_, ok = c.ActiveNode(3)
	require.False(t, ok)
	_, ok = c.ActiveNode(-1)
	require.False(t, ok)

	c.CloseBranch(1)
	_, ok = c.ActiveNode(1)
	require.False(t, ok, "closed level has no active node")
}
