package evaluate

import (
	"testing"

	"github.com/grf-labs/policytree/internal/sortedindex"
)

// TestEvaluateDepthOneScenario1 is spec.md §8 scenario 1: root splits
// at X0 <= 1, left leaf action=0, right leaf action=1, total reward=4.
func TestEvaluateDepthOneScenario1(t *testing.T) {
	data := scenario1Data()
	fam := sortedindex.Build(data, false)
	res := EvaluateDepthOne(fam, data, 1, 1)
	if res.IsLeaf {
		t.Fatalf("got leaf, want split")
	}
	if res.Split.Feature != 0 || res.Split.Threshold != 1 {
		t.Fatalf("split = %+v, want feature=0 threshold=1", res.Split)
	}
	if res.Split.Left.Action != 0 || res.Split.Right.Action != 1 {
		t.Fatalf("actions = %d,%d, want 0,1", res.Split.Left.Action, res.Split.Right.Action)
	}
	if res.Split.Reward() != 4 {
		t.Fatalf("reward = %v, want 4", res.Split.Reward())
	}
}

// TestEvaluateDepthOneScenario2 is spec.md §8 scenario 2: all rows
// agree on action 0, so the split prunes to a single leaf.
func TestEvaluateDepthOneScenario2(t *testing.T) {
	data := fixedData{
		x: [][]float64{{0}, {1}, {2}, {3}},
		y: [][]float64{{1, 0}, {1, 0}, {1, 0}, {1, 0}},
	}
	fam := sortedindex.Build(data, false)
	res := EvaluateDepthOne(fam, data, 1, 1)
	if !res.IsLeaf {
		t.Fatalf("got split %+v, want pruned leaf", res.Split)
	}
	if res.Leaf.Action != 0 || res.Leaf.Reward != 4 {
		t.Fatalf("leaf = %+v, want action=0 reward=4", res.Leaf)
	}
}

// TestEvaluateDepthOneMinNodeSize is spec.md §8 scenario 5: a
// min_node_size that excludes every candidate boundary forces a leaf.
func TestEvaluateDepthOneMinNodeSize(t *testing.T) {
	data := scenario1Data()
	fam := sortedindex.Build(data, false)
	res := EvaluateDepthOne(fam, data, 1, 3) // no boundary leaves >= 3 on both sides of N=4
	if !res.IsLeaf {
		t.Fatalf("got split %+v, want leaf forced by min_node_size", res.Split)
	}
}

// TestEvaluateDepthOneSplitStep is spec.md §8 scenario 6: split_step=N
// admits at most one threshold per feature.
func TestEvaluateDepthOneSplitStep(t *testing.T) {
	data := scenario1Data()
	fam := sortedindex.Build(data, false)
	full := EvaluateDepthOne(fam, data, 1, 1)
	stepped := EvaluateDepthOne(fam, data, 4, 1)
	fullReward := full.Leaf.Reward
	if !full.IsLeaf {
		fullReward = full.Split.Reward()
	}
	steppedReward := stepped.Leaf.Reward
	if !stepped.IsLeaf {
		steppedReward = stepped.Split.Reward()
	}
	if steppedReward > fullReward {
		t.Fatalf("split_step=N reward %v exceeds split_step=1 reward %v", steppedReward, fullReward)
	}
}

// TestEvaluateDepthOneMinNodeSizeAndSplitStepTogether covers n=6,
// min_node_size=3, split_step=2: k=3 is the only boundary admissible
// under min_node_size, but the sweep reaches k=1 and k=2 first, both
// rejected by min_node_size, and the step counter already hits
// split_step at k=2. A step counter reset on hitting split_step before min_node_size is
// checked discards that charge at k=2 and never lets it reach 2 again
// by k=3, pruning the only valid split away entirely.
func TestEvaluateDepthOneMinNodeSizeAndSplitStepTogether(t *testing.T) {
	data := fixedData{
		x: [][]float64{{0}, {1}, {2}, {3}, {4}, {5}},
		y: [][]float64{{1, 0}, {1, 0}, {1, 0}, {0, 1}, {0, 1}, {0, 1}},
	}
	fam := sortedindex.Build(data, false)
	res := EvaluateDepthOne(fam, data, 2, 3)
	if res.IsLeaf {
		t.Fatalf("got leaf, want split at threshold=2")
	}
	if res.Split.Threshold != 2 {
		t.Fatalf("split threshold = %v, want 2", res.Split.Threshold)
	}
	if res.Split.Reward() != 6 {
		t.Fatalf("split reward = %v, want 6", res.Split.Reward())
	}
}
