// Package search implements spec §4.5's exact recursive search — the
// exhaustive, globally-optimal split enumeration — plus §5's permitted
// top-level parallelism across the split feature.
package search

import (
	"github.com/grf-labs/policytree/internal/evaluate"
	"github.com/grf-labs/policytree/internal/sortedindex"
	"github.com/grf-labs/policytree/internal/tree"
)

// DataView is the read-only surface the exact search needs; satisfied
// structurally by *dataview.View.
type DataView interface {
	NumRows() int
	NumFeatures() int
	NumRewards() int
	Value(obs, feature int) float64
	Reward(obs, action int) float64
}

// FindBestSplit runs the exact search to the given depth over all N
// observations in data, returning the globally optimal tree (spec
// §4.5). depth == 0 and depth == 1 defer to the leaf and depth-1
// evaluators respectively (spec §4.5's base cases).
func FindBestSplit(data DataView, depth, splitStep, minNodeSize int) *tree.Node {
	family := sortedindex.Build(data, false)
	scratch := evaluate.NewScratch()
	return FindBestSplitFamily(family, depth, 0, data, splitStep, minNodeSize, scratch)
}

// FindBestSplitFamily is FindBestSplit over a caller-supplied family
// and starting depth, used by the hybrid expander (internal/hybrid) to
// run a bounded local search from an arbitrary expansion node.
func FindBestSplitFamily(family *sortedindex.Family, level, depth int, data DataView, splitStep, minNodeSize int, scratch *evaluate.Scratch) *tree.Node {
	switch {
	case level == 0:
		leaf := evaluate.EvaluateLeaf(family, data)
		return tree.NewLeaf(depth, leaf.Action, leaf.Reward)
	case level == 1:
		return findDepthOne(family, depth, data, splitStep, minNodeSize, scratch)
	default:
		return findExact(family, level, depth, data, splitStep, minNodeSize, scratch)
	}
}

func findDepthOne(family *sortedindex.Family, depth int, data DataView, splitStep, minNodeSize int, scratch *evaluate.Scratch) *tree.Node {
	res := evaluate.EvaluateDepthOneScratch(family, data, splitStep, minNodeSize, scratch)
	if res.IsLeaf {
		return tree.NewLeaf(depth, res.Leaf.Action, res.Leaf.Reward)
	}
	left := tree.NewLeaf(depth+1, res.Split.Left.Action, res.Split.Left.Reward)
	right := tree.NewLeaf(depth+1, res.Split.Right.Action, res.Split.Right.Reward)
	return tree.NewInternal(depth, res.Split.Feature, res.Split.Threshold, left, right)
}

// featureResult is the best split found while sweeping a single
// feature, shared by the sequential and parallel search paths.
type featureResult struct {
	found             bool
	reward, threshold float64
	left, right       *tree.Node
}

// findExact implements spec §4.5 step 2-5 for level >= 2: for every
// feature, roll the split boundary across the whole active range,
// recursing on every admissible boundary, then roll back (a fresh
// clone) before trying the next feature. Sequential: features are
// swept in order, which is what makes the (feature, threshold)
// tie-break deterministic.
func findExact(family *sortedindex.Family, level, depth int, data DataView, splitStep, minNodeSize int, scratch *evaluate.Scratch) *tree.Node {
	p := data.NumFeatures()

	found := false
	var bestReward, bestThreshold float64
	var bestFeature int
	var bestLeft, bestRight *tree.Node

	for j := 0; j < p; j++ {
		res := bestSplitForFeature(family, j, level, depth, data, splitStep, minNodeSize, scratch, nil)
		if res.found && (!found || res.reward > bestReward) {
			found = true
			bestReward, bestThreshold = res.reward, res.threshold
			bestLeft, bestRight = res.left, res.right
			bestFeature = j
		}
	}

	return resolve(family, data, depth, found, bestFeature, bestThreshold, bestReward, bestLeft, bestRight)
}

// bestSplitForFeature sweeps feature j's sorted index once, moving
// observations from right to left, and returns the best admissible
// boundary found for that feature alone (spec §4.5 inner loop). counter,
// when non-nil, is bumped once per admissible candidate evaluated —
// used by the parallel path's statistics.
func bestSplitForFeature(family *sortedindex.Family, j, level, depth int, data DataView, splitStep, minNodeSize int, scratch *evaluate.Scratch, counter *candidateCounter) featureResult {
	n := family.Len()
	right := family.Clone()
	left := sortedindex.Build(data, true)

	var res featureResult
	splitCounter := 0
	for {
		minH, ok := right.Feature(j).Min()
		if !ok {
			break
		}
		o := minH.Obs
		right.MoveTo(left, o)
		splitCounter++

		nextH, hasNext := right.Feature(j).Min()
		if !hasNext {
			break
		}
		if data.Value(o, j) == data.Value(nextH.Obs, j) {
			continue
		}
		k := left.Len()
		if k < minNodeSize || (n-k) < minNodeSize {
			continue
		}
		if splitCounter < splitStep {
			continue
		}
		splitCounter = 0

		L := FindBestSplitFamily(left.Clone(), level-1, depth+1, data, splitStep, minNodeSize, scratch)
		R := FindBestSplitFamily(right.Clone(), level-1, depth+1, data, splitStep, minNodeSize, scratch)
		if counter != nil {
			counter.add(1)
		}
		reward := L.Reward + R.Reward
		if !res.found || reward > res.reward {
			res = featureResult{found: true, reward: reward, threshold: data.Value(o, j), left: L, right: R}
		}
	}
	return res
}

func resolve(family *sortedindex.Family, data DataView, depth int, found bool, feature int, threshold, reward float64, left, right *tree.Node) *tree.Node {
	if !found {
		leaf := evaluate.EvaluateLeaf(family, data)
		return tree.NewLeaf(depth, leaf.Action, leaf.Reward)
	}
	if left.IsLeaf && right.IsLeaf && left.Action == right.Action {
		return tree.NewLeaf(depth, left.Action, reward)
	}
	return tree.NewInternal(depth, feature, threshold, left, right)
}
