// Package hybrid implements spec §4.6's hybrid expander: an iterative
// "expand, chop, and re-expand" strategy that composes bounded exact
// searches into a deeper, non-exhaustive tree without exponential
// blowup.
package hybrid

import (
	"github.com/emirpasic/gods/queues/linkedlistqueue"

	"github.com/grf-labs/policytree/internal/evaluate"
	"github.com/grf-labs/policytree/internal/search"
	"github.com/grf-labs/policytree/internal/sortedindex"
	"github.com/grf-labs/policytree/internal/tree"
)

// Config holds the hybrid expander's parameters (spec §4.6), plus the
// split_step/min_node_size that every local exact search call needs.
type Config struct {
	MaxGlobalDepth     int
	CompleteSplitDepth int
	ChopDepth          int
	SplitStep          int
	MinNodeSize        int
	// RepeatSplits is reserved: the source leaves it unused at this
	// layer (spec §4.6, §9's Open Question). Kept for host-API
	// stability; Expand never reads it.
	RepeatSplits int
}

// DataView is the read-only surface the hybrid expander needs.
type DataView interface {
	search.DataView
}

// expansionNode is one entry on the outer worklist: a still-mutable
// placeholder node in the result tree, the sorted family it would
// inherit, and its depth in the global tree.
type expansionNode struct {
	node   *tree.Node
	family *sortedindex.Family
	depth  int
}

// Expand runs spec §4.6's algorithm to Config.MaxGlobalDepth and
// returns the resulting tree. Unlike the exact search, this is a
// heuristic composition of bounded-depth optimal searches and is not
// guaranteed globally optimal.
func Expand(data DataView, cfg Config) *tree.Node {
	root := &tree.Node{Depth: 0}
	fullFamily := sortedindex.Build(data, false)
	seedLeaf := evaluate.EvaluateLeaf(fullFamily, data)
	root.IsLeaf, root.Action, root.Reward = true, seedLeaf.Action, seedLeaf.Reward

	// Outer worklist: emirpasic/gods' linkedlistqueue, a genuinely new
	// third-party wire (the teacher declares this dependency but the
	// retrieved subset never imports it).
	q := linkedlistqueue.New()
	enqueue := func(n *tree.Node, fam *sortedindex.Family, depth int) {
		q.Enqueue(expansionNode{node: n, family: fam, depth: depth})
	}
	enqueue(root, fullFamily, 0)

	scratch := evaluate.NewScratch()

	for !q.Empty() {
		v, _ := q.Dequeue()
		e := v.(expansionNode)

		// A chopped placeholder with fewer than 2*MinNodeSize active
		// observations, or with no remaining depth budget, can never
		// yield anything but the leaf already computed when it was
		// chopped: dropping it here matches spec §4.6 step 3's
		// "e.height < 1 (unexpandable) or e.depth >= max_global_depth"
		// check, evaluated on the family's own admissibility rather
		// than on the placeholder's dummy height (every freshly chopped
		// placeholder is a height-0 leaf by construction, so the
		// literal height check would drop everything; see DESIGN.md).
		if e.depth >= cfg.MaxGlobalDepth || e.family.Len() < 2*cfg.MinNodeSize {
			continue
		}

		local := search.FindBestSplitFamily(e.family, cfg.CompleteSplitDepth, e.depth, data, cfg.SplitStep, cfg.MinNodeSize, scratch)
		*e.node = *local
		if e.node.IsLeaf {
			continue
		}

		chopWalk(e.node, e.family, data, e.node.Height-cfg.ChopDepth, enqueue)
	}

	return finalize(root)
}
