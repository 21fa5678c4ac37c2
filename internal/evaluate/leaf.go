// Package evaluate implements the depth-0 and depth-1 base cases of
// the search (spec §4.3, §4.4). Both take an active sortedindex.Family
// and a dataview.View-shaped reward source.
package evaluate

import (
	"github.com/grf-labs/policytree/internal/numeric"
	"github.com/grf-labs/policytree/internal/sortedindex"
)

// Rewards is the minimal read-only surface evaluate needs from the
// data view.
type Rewards interface {
	NumRewards() int
	Reward(obs, action int) float64
}

// ErrEmptyActiveSet is a programming error: the recursion never
// produces an empty leaf given min_node_size >= 1 (spec §9).
type ErrEmptyActiveSet struct{}

func (ErrEmptyActiveSet) Error() string { return "evaluate: empty active set" }

// Leaf holds a depth-0 evaluation result.
type Leaf struct {
	Action int
	Reward float64
}

// EvaluateLeaf implements spec §4.3: sum every observation's reward
// under every action, pick the argmax action (ties broken by the
// smallest action index). Complexity O(n*d).
func EvaluateLeaf(family *sortedindex.Family, data Rewards) Leaf {
	if family.Len() == 0 {
		panic(ErrEmptyActiveSet{})
	}
	d := data.NumRewards()
	totals := make([]float64, d)
	family.Feature(0).Ascend(func(h sortedindex.Handle) bool {
		for a := 0; a < d; a++ {
			totals[a] += data.Reward(h.Obs, a)
		}
		return true
	})
	best, bestReward := numeric.ArgMax(totals)
	return Leaf{Action: best, Reward: bestReward}
}
