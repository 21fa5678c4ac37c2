package evaluate

import (
	"github.com/grf-labs/policytree/internal/numeric"
	"github.com/grf-labs/policytree/internal/sortedindex"
)

// DataView is the read-only surface EvaluateDepthOne needs.
type DataView interface {
	Rewards
	NumFeatures() int
	Value(obs, feature int) float64
}

// Split is a candidate two-leaf split: route left iff
// value(obs, Feature) <= Threshold.
type Split struct {
	Feature     int
	Threshold   float64
	Left, Right Leaf
}

// Reward is the split's total reward, Left.Reward + Right.Reward.
func (s Split) Reward() float64 { return s.Left.Reward + s.Right.Reward }

// DepthOneResult is either a Split (IsLeaf == false) or a pruned/
// fallback Leaf (IsLeaf == true).
type DepthOneResult struct {
	IsLeaf bool
	Leaf   Leaf
	Split  Split
}

// Scratch is the (d x (n+1)) cumulative-sum buffer spec §4.4/§5
// describes as safely reusable across sequential depth-1 calls,
// because recursion in the exact search is post-order and every call
// fully overwrites it on entry.
type Scratch struct {
	cum [][]float64
}

// NewScratch returns an empty, lazily-sized Scratch.
func NewScratch() *Scratch { return &Scratch{} }

func (s *Scratch) ensure(d, n int) {
	if len(s.cum) < d {
		s.cum = make([][]float64, d)
	}
	for a := 0; a < d; a++ {
		if len(s.cum[a]) < n+1 {
			s.cum[a] = make([]float64, n+1)
		}
	}
}

// EvaluateDepthOne implements spec §4.4: for every feature, walk its
// sorted index building a cumulative-reward-by-action prefix, and
// track the single best (feature, threshold) split subject to
// min_node_size and split_step, pruning to a single leaf if the two
// sides agree on an action, and falling back to the leaf evaluator if
// no split was admissible.
func EvaluateDepthOne(family *sortedindex.Family, data DataView, splitStep, minNodeSize int) DepthOneResult {
	return EvaluateDepthOneScratch(family, data, splitStep, minNodeSize, NewScratch())
}

// EvaluateDepthOneScratch is EvaluateDepthOne with a caller-supplied,
// reusable Scratch buffer.
func EvaluateDepthOneScratch(family *sortedindex.Family, data DataView, splitStep, minNodeSize int, scratch *Scratch) DepthOneResult {
	n := family.Len()
	if n == 0 {
		panic(ErrEmptyActiveSet{})
	}
	d := data.NumRewards()
	p := data.NumFeatures()
	scratch.ensure(d, n)

	obsOrder := make([]int, n)
	var best *Split
	for j := 0; j < p; j++ {
		k := 0
		family.Feature(j).Ascend(func(h sortedindex.Handle) bool {
			obsOrder[k] = h.Obs
			k++
			return true
		})
		cum := scratch.cum
		for a := 0; a < d; a++ {
			cum[a][0] = 0
			for k := 1; k <= n; k++ {
				cum[a][k] = cum[a][k-1] + data.Reward(obsOrder[k-1], a)
			}
		}

		splitCounter := 0
		for k := 1; k < n; k++ {
			cur, next := obsOrder[k-1], obsOrder[k]
			splitCounter++
			if data.Value(cur, j) == data.Value(next, j) {
				continue
			}
			if k < minNodeSize || (n-k) < minNodeSize {
				continue
			}
			if splitCounter < splitStep {
				continue
			}
			splitCounter = 0
			leftTotals := make([]float64, d)
			rightTotals := make([]float64, d)
			for a := 0; a < d; a++ {
				leftTotals[a] = cum[a][k]
				rightTotals[a] = cum[a][n] - cum[a][k]
			}
			leftAction, leftReward := numeric.ArgMax(leftTotals)
			rightAction, rightReward := numeric.ArgMax(rightTotals)
			candidate := Split{
				Feature:   j,
				Threshold: data.Value(cur, j),
				Left:      Leaf{Action: leftAction, Reward: leftReward},
				Right:     Leaf{Action: rightAction, Reward: rightReward},
			}
			if best == nil || candidate.Reward() > best.Reward() {
				c := candidate
				best = &c
			}
		}
	}

	if best == nil {
		return DepthOneResult{IsLeaf: true, Leaf: EvaluateLeaf(family, data)}
	}
	if best.Left.Action == best.Right.Action {
		return DepthOneResult{IsLeaf: true, Leaf: Leaf{Action: best.Left.Action, Reward: best.Reward()}}
	}
	return DepthOneResult{IsLeaf: false, Split: *best}
}
