// Package policytree finds a fixed-depth, axis-aligned decision tree
// that assigns one of d actions to each observation so as to maximize
// summed reward, either by exhaustive search or by a bounded-depth
// hybrid expansion (spec §§4.5-4.6).
package policytree

import (
	"strings"

	"github.com/grf-labs/policytree/internal/dataview"
	"github.com/grf-labs/policytree/internal/hybrid"
	"github.com/grf-labs/policytree/internal/search"
	"github.com/grf-labs/policytree/internal/tree"
)

// ConcurrentMapBackend selects the map implementation backing the
// parallel exact search's per-feature result collection; re-exported
// so callers can pick a backend without importing internal/search.
type ConcurrentMapBackend = search.ConcurrentMapBackend

const (
	BackendHaxMap  = search.BackendHaxMap
	BackendCornelk = search.BackendCornelk
)

// Config is spec §6's tree_search parameter set.
type Config struct {
	Depth       int
	SplitStep   int
	MinNodeSize int

	// ExactSearch selects §4.5's exhaustive search when true; §4.6's
	// hybrid expander, using Depth as max_global_depth, when false.
	ExactSearch bool

	HybridCompleteSplitDepth int
	HybridChopDepth          int
	HybridRepeatSplits       int

	// Parallel opts the exact search into spec §5's permitted top-level
	// feature parallelism. Ignored when ExactSearch is false: the
	// hybrid expander is sequential by construction.
	Parallel bool
	// Workers <= 0 defaults to runtime.NumCPU() (internal/search).
	Workers int
	// MapBackend selects the concurrent result map when Parallel is
	// set. Zero value is BackendHaxMap.
	MapBackend ConcurrentMapBackend
}

// validate checks every field up front and, if more than one is bad,
// reports all of them in a single InvalidArgumentError rather than
// stopping at the first failure — the original validates depth,
// split_step and min_node_size together in one pass before touching
// any matrix, and this carries that through to the hybrid-only fields.
func (c Config) validate() error {
	var bad []string
	if c.Depth < 0 {
		bad = append(bad, "depth must be >= 0")
	}
	if c.SplitStep < 1 {
		bad = append(bad, "split_step must be >= 1")
	}
	if c.MinNodeSize < 1 {
		bad = append(bad, "min_node_size must be >= 1")
	}
	if !c.ExactSearch {
		if c.HybridCompleteSplitDepth < 0 {
			bad = append(bad, "hybrid_complete_split_depth must be >= 0")
		}
		if c.HybridChopDepth < 1 {
			bad = append(bad, "hybrid_chop_depth must be >= 1")
		}
		if c.HybridRepeatSplits < 0 {
			bad = append(bad, "hybrid_repeat_splits must be >= 0")
		}
	}
	if len(bad) == 0 {
		return nil
	}
	return invalidArg("policytree: " + strings.Join(bad, "; "))
}

// TreeSearch is spec §6's tree_search entry point: given N×p covariate
// matrix x and N×d reward matrix y, returns the optimal (or, when
// cfg.ExactSearch is false, hybrid-approximated) tree encoded as spec
// §4.7's dense matrix.
func TreeSearch(x, y [][]float64, cfg Config) ([][]float64, error) {
	view, err := dataview.New(x, y)
	if err != nil {
		return nil, invalidArg(err.Error())
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	var root *tree.Node
	if cfg.ExactSearch {
		if cfg.Parallel {
			root, _ = search.FindBestSplitParallel(view, cfg.Depth, cfg.SplitStep, cfg.MinNodeSize, cfg.Workers, cfg.MapBackend)
		} else {
			root = search.FindBestSplit(view, cfg.Depth, cfg.SplitStep, cfg.MinNodeSize)
		}
	} else {
		root = hybrid.Expand(view, hybrid.Config{
			MaxGlobalDepth:     cfg.Depth,
			CompleteSplitDepth: cfg.HybridCompleteSplitDepth,
			ChopDepth:          cfg.HybridChopDepth,
			SplitStep:          cfg.SplitStep,
			MinNodeSize:        cfg.MinNodeSize,
			RepeatSplits:       cfg.HybridRepeatSplits,
		})
	}

	return tree.EncodeMatrix(root), nil
}

// TreeSearchPredict is spec §6's tree_search_predict entry point: given
// a tree encoded by TreeSearch and a new N×p covariate matrix, returns
// an N×1 matrix of predicted action ids (0-indexed).
func TreeSearchPredict(treeMatrix [][]float64, xNew [][]float64) ([][]float64, error) {
	root, err := tree.DecodeMatrix(treeMatrix)
	if err != nil {
		return nil, invalidArg(err.Error())
	}
	if len(xNew) == 0 {
		return nil, invalidArg("policytree: x_new has zero rows")
	}
	out := make([][]float64, len(xNew))
	for i, row := range xNew {
		out[i] = []float64{float64(root.Predict(row))}
	}
	return out, nil
}
