// Package numeric carries the teacher module's generic-constraint
// idiom (golang.org/x/exp/constraints, used throughout Trees/SBTree.go)
// into the small set of ordered-value comparisons the tree and search
// packages need: node height and reward-style reductions.
package numeric

import "golang.org/x/exp/constraints"

// Max returns the greater of a and b.
func Max[T constraints.Ordered](a, b T) T {
	if b > a {
		return b
	}
	return a
}

// ArgMax returns the index and value of the greatest element of vs.
// Ties keep the smallest index, matching spec.md §4.3's action
// tie-break rule.
func ArgMax[T constraints.Ordered](vs []T) (int, T) {
	best, bestVal := 0, vs[0]
	for i := 1; i < len(vs); i++ {
		if vs[i] > bestVal {
			best, bestVal = i, vs[i]
		}
	}
	return best, bestVal
}
