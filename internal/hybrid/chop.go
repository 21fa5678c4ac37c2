package hybrid

import (
	"github.com/grf-labs/policytree/internal/evaluate"
	"github.com/grf-labs/policytree/internal/numeric"
	"github.com/grf-labs/policytree/internal/queue"
	"github.com/grf-labs/policytree/internal/sortedindex"
	"github.com/grf-labs/policytree/internal/tree"
)

// walkItem is one entry on the inner chop-walk queue: a node from the
// just-computed local subtree paired with the family of observations
// active at it.
type walkItem struct {
	node   *tree.Node
	family *sortedindex.Family
}

// chopWalk breadth-first walks root's children (spec §4.6 step 3: "walk
// T from its children"), three-way branching on each node's remaining
// height against threshold: a node exactly at threshold is chopped
// back to a leaf over its derived family and handed to enqueue for
// possible re-expansion later; a node still taller than threshold is
// recursed into, deriving its children's families and continuing the
// walk; a node the walk reaches already shorter than threshold —
// possible whenever pruning left the local subtree unbalanced enough
// that one branch's height drops past the boundary in fewer steps than
// another — is left exactly as the local search computed it, since the
// search already proved nothing deeper helps there within its own
// budget. root itself is never tested against threshold: it is the
// split the caller just found and must never be chopped back to the
// leaf it superseded.
func chopWalk(root *tree.Node, family *sortedindex.Family, data DataView, threshold int, enqueue func(*tree.Node, *sortedindex.Family, int)) {
	q := queue.NewArrayQueue[walkItem](8)
	leftFam, rightFam := deriveChildFamilies(family, data, root.SplitVar, root.SplitVal)
	q.Push(walkItem{node: root.Left, family: leftFam})
	q.Push(walkItem{node: root.Right, family: rightFam})

	for !q.Empty() {
		item, err := q.Pop()
		if err != nil {
			break
		}
		n, fam := item.node, item.family
		if n.IsLeaf {
			continue
		}
		switch {
		case n.Height == threshold:
			leaf := evaluate.EvaluateLeaf(fam, data)
			depth := n.Depth
			*n = *tree.NewLeaf(depth, leaf.Action, leaf.Reward)
			n.Family = fam
			enqueue(n, fam, depth)
		case n.Height > threshold:
			leftFam, rightFam := deriveChildFamilies(fam, data, n.SplitVar, n.SplitVal)
			q.Push(walkItem{node: n.Left, family: leftFam})
			q.Push(walkItem{node: n.Right, family: rightFam})
		}
		// n.Height < threshold: already past the chop boundary, leave
		// the node and its subtree exactly as computed.
	}
}

// deriveChildFamilies splits fam's active observations into the two
// families a node's children would see, by re-testing each active
// observation against the node's own split predicate. Building fresh
// empty families and re-inserting (rather than cloning fam and erasing
// one side) keeps this independent of how fam itself was produced.
func deriveChildFamilies(fam *sortedindex.Family, data DataView, splitVar int, splitVal float64) (*sortedindex.Family, *sortedindex.Family) {
	left := sortedindex.Build(data, true)
	right := sortedindex.Build(data, true)
	fam.Feature(0).Ascend(func(h sortedindex.Handle) bool {
		if data.Value(h.Obs, splitVar) <= splitVal {
			left.InsertAll(h.Obs)
		} else {
			right.InsertAll(h.Obs)
		}
		return true
	})
	return left, right
}

// finalize recomputes Height and Reward bottom-up over the whole tree
// and collapses any internal node whose two children turned out to be
// leaves with the same action. Needed because chopWalk mutates nodes
// in place without parent pointers, so a chop deep in the tree leaves
// every ancestor's cached Height/Reward stale until this pass runs.
func finalize(n *tree.Node) *tree.Node {
	if n.IsLeaf {
		return n
	}
	n.Left = finalize(n.Left)
	n.Right = finalize(n.Right)
	if n.Left.IsLeaf && n.Right.IsLeaf && n.Left.Action == n.Right.Action {
		return tree.NewLeaf(n.Depth, n.Left.Action, n.Left.Reward+n.Right.Reward)
	}
	n.Height = numeric.Max(n.Left.Height, n.Right.Height) + 1
	n.Reward = n.Left.Reward + n.Right.Reward
	return n
}
