// Package tree is spec §3's decision-tree node representation plus the
// §4.7/§6 flat serialization used to cross the host boundary.
package tree

import (
	"github.com/grf-labs/policytree/internal/numeric"
	"github.com/grf-labs/policytree/internal/sortedindex"
)

// Node is spec §3's decision-tree node: a tagged variant, leaf or
// internal. Every node records its depth (root = 0) and height
// (leaves = 0, otherwise 1 + max(child heights)); a leaf has no
// children, an internal node has exactly two.
type Node struct {
	Depth  int
	Height int
	Reward float64

	IsLeaf bool
	Action int // valid iff IsLeaf

	SplitVar int     // valid iff !IsLeaf
	SplitVal float64 // valid iff !IsLeaf
	Left     *Node   // valid iff !IsLeaf
	Right    *Node   // valid iff !IsLeaf

	// Family, when non-nil, is the sorted-index family of observations
	// active at this node. Only the hybrid expander populates it (spec
	// §9: "leaf sorted-sets must be carried on every node to permit
	// re-expansion"); the exact-search path leaves it nil to save
	// memory.
	Family *sortedindex.Family
}

// NewLeaf constructs a leaf node at the given depth.
func NewLeaf(depth, action int, reward float64) *Node {
	return &Node{Depth: depth, Height: 0, IsLeaf: true, Action: action, Reward: reward}
}

// NewInternal constructs an internal node from its two children,
// deriving Height and Reward.
func NewInternal(depth, splitVar int, splitVal float64, left, right *Node) *Node {
	return &Node{
		Depth:    depth,
		Height:   numeric.Max(left.Height, right.Height) + 1,
		Reward:   left.Reward + right.Reward,
		IsLeaf:   false,
		SplitVar: splitVar,
		SplitVal: splitVal,
		Left:     left,
		Right:    right,
	}
}

// Predict routes one observation's covariate row to its leaf and
// returns the assigned action (spec §6's tree_search_predict, a
// trivial post-order-free traversal — out of the search core but
// implemented here since it's the tree's own contract).
func (n *Node) Predict(x []float64) int {
	cur := n
	for !cur.IsLeaf {
		if x[cur.SplitVar] <= cur.SplitVal {
			cur = cur.Left
		} else {
			cur = cur.Right
		}
	}
	return cur.Action
}

// Leaves calls f for every leaf in the subtree rooted at n, in
// left-to-right order.
func (n *Node) Leaves(f func(*Node)) {
	if n.IsLeaf {
		f(n)
		return
	}
	n.Left.Leaves(f)
	n.Right.Leaves(f)
}
