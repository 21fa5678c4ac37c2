package sortedindex

import "github.com/grf-labs/policytree/internal/bitset"

// CheckCoherent verifies spec §8's family coherence invariant: every
// per-feature index holds exactly the same set of observation handles.
// It is O(p*n) and is only ever called from tests — production code
// never pays for it. Uses a bitset side-mask per feature (the
// alternative partition representation spec §9 names) as an
// independent check against the B-tree's own bookkeeping.
func (f *Family) CheckCoherent(maxObs int) bool {
	if len(f.idx) == 0 {
		return true
	}
	want := bitset.New(maxObs + 1)
	wantLen := f.idx[0].Len()
	f.idx[0].Ascend(func(h Handle) bool {
		want.Up(h.Obs)
		return true
	})
	for _, ix := range f.idx[1:] {
		if ix.Len() != wantLen {
			return false
		}
		got := bitset.New(maxObs + 1)
		ix.Ascend(func(h Handle) bool {
			got.Up(h.Obs)
			return true
		})
		for i := 0; i <= maxObs; i++ {
			if want.Get(i) != got.Get(i) {
				return false
			}
		}
	}
	return true
}
