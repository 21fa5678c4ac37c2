package search

import (
	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
)

// ConcurrentMapBackend selects which concurrent map backs the parallel
// search's per-feature result collection. The teacher module's own
// Maps/comparisons/cmp1_test.go and cmp2_test.go benchmark exactly
// these two libraries against each other; rather than picking a
// winner once and deleting the loser, both stay wired as selectable
// backends.
type ConcurrentMapBackend int

const (
	BackendHaxMap ConcurrentMapBackend = iota
	BackendCornelk
)

// resultMap is the minimal concurrent map contract the parallel search
// needs: concurrent Set from worker goroutines, single-threaded Get
// during the final reduction.
type resultMap interface {
	Set(feature int, res featureResult)
	Get(feature int) (featureResult, bool)
}

type haxResultMap struct {
	m *haxmap.Map[int, featureResult]
}

func (h haxResultMap) Set(feature int, res featureResult) { h.m.Set(feature, res) }
func (h haxResultMap) Get(feature int) (featureResult, bool) {
	return h.m.Get(feature)
}

type cornelkResultMap struct {
	m *hashmap.Map[int, featureResult]
}

func (c cornelkResultMap) Set(feature int, res featureResult) { c.m.Set(feature, res) }
func (c cornelkResultMap) Get(feature int) (featureResult, bool) {
	return c.m.Get(feature)
}

func newResultMap(backend ConcurrentMapBackend) resultMap {
	switch backend {
	case BackendCornelk:
		return cornelkResultMap{m: hashmap.New[int, featureResult]()}
	default:
		return haxResultMap{m: haxmap.New[int, featureResult]()}
	}
}
