package search

import (
	"runtime"
	"sync"

	"github.com/grf-labs/policytree/internal/evaluate"
	"github.com/grf-labs/policytree/internal/queue"
	"github.com/grf-labs/policytree/internal/sortedindex"
	"github.com/grf-labs/policytree/internal/tree"
)

// FindBestSplitParallel is FindBestSplit with spec §5's permitted
// top-level parallelism: the p features are handed out over a
// lock-free work queue to a fixed worker pool, each worker owns a
// private Family.Clone() (via bestSplitForFeature) and a private
// evaluate.Scratch, and results are collected in a concurrent map
// keyed by feature index. Deeper recursion stays sequential, per spec
// §5's "deeper recursion should remain sequential to bound memory."
//
// workers <= 0 defaults to runtime.NumCPU(). depth < 2 has no
// top-level parallelism opportunity and falls back to FindBestSplit.
func FindBestSplitParallel(data DataView, depth, splitStep, minNodeSize, workers int, backend ConcurrentMapBackend) (*tree.Node, Stats) {
	if depth < 2 {
		return FindBestSplit(data, depth, splitStep, minNodeSize), Stats{}
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	family := sortedindex.Build(data, false)
	p := data.NumFeatures()

	work := queue.NewConcLinkedQueue[int]()
	for j := 0; j < p; j++ {
		work.Push(j)
	}
	results := newResultMap(backend)
	counter := &candidateCounter{}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			scratch := evaluate.NewScratch()
			for {
				j, err := work.Pop()
				if err != nil {
					return
				}
				res := bestSplitForFeature(family, j, depth, 0, data, splitStep, minNodeSize, scratch, counter)
				if res.found {
					results.Set(j, res)
				}
			}
		}()
	}
	wg.Wait()

	found := false
	var bestReward, bestThreshold float64
	var bestFeature int
	var bestLeft, bestRight *tree.Node
	for j := 0; j < p; j++ {
		res, ok := results.Get(j)
		if !ok {
			continue
		}
		if !found || res.reward > bestReward {
			found = true
			bestReward, bestThreshold = res.reward, res.threshold
			bestLeft, bestRight = res.left, res.right
			bestFeature = j
		}
	}

	stats := Stats{CandidatesEvaluated: counter.n.Load()}
	return resolve(family, data, 0, found, bestFeature, bestThreshold, bestReward, bestLeft, bestRight), stats
}
