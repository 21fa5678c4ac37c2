// Package sortedindex implements spec §4.2's sorted-index family: for
// each feature, an ordered container of active observation handles
// that supports O(log n) insert/erase and cheap cloning.
//
// The container is a github.com/google/btree BTreeG per feature.
// Section 5 of the spec asks for "a flat contiguous ordered container
// ... so that in-order traversal is cache-friendly" over a node-based
// one — a B-tree's nodes hold several items per contiguous slice,
// which is exactly that property — and its Clone is O(1)
// copy-on-write, which is the operation the exact recursive search
// (internal/search) and the hybrid expander (internal/hybrid) both
// perform on every recursive call.
package sortedindex

import "github.com/google/btree"

// degree of the underlying B-tree. 32 keeps internal nodes a few
// cache lines wide without over-fanning for the small-to-medium n
// this search targets.
const degree = 32

// DataView is the minimal read-only surface Family needs. Satisfied
// structurally by *dataview.View.
type DataView interface {
	NumRows() int
	NumFeatures() int
	Value(obs, feature int) float64
}

// Index is one feature's ordered container of active observation
// handles.
type Index struct {
	tree *btree.BTreeG[Handle]
}

func newIndex(less func(a, b Handle) bool) *Index {
	return &Index{tree: btree.NewG(degree, less)}
}

func (idx *Index) Insert(h Handle)          { idx.tree.ReplaceOrInsert(h) }
func (idx *Index) Erase(h Handle)           { idx.tree.Delete(h) }
func (idx *Index) Len() int                 { return idx.tree.Len() }
func (idx *Index) Min() (Handle, bool)      { return idx.tree.Min() }
func (idx *Index) Ascend(f func(Handle) bool) { idx.tree.Ascend(f) }
func (idx *Index) Clone() *Index            { return &Index{tree: idx.tree.Clone()} }

// Family bundles one Index per feature. The global invariant (spec
// §4.2) is that all p indices contain exactly the same set of
// observation handles at all times; every mutation goes through
// InsertAll/EraseAll to preserve it.
type Family struct {
	data DataView
	idx  []*Index
}

// Build constructs a Family over data. If empty is false every index
// is populated with all N observations in feature order; if empty is
// true the p indices are created (with the right comparators) but left
// empty. Complexity: O(p*N*log N) when populated.
func Build(data DataView, empty bool) *Family {
	p := data.NumFeatures()
	f := &Family{data: data, idx: make([]*Index, p)}
	for j := 0; j < p; j++ {
		f.idx[j] = newIndex(lessFunc(data.Value, j))
	}
	if !empty {
		for i := 0; i < data.NumRows(); i++ {
			f.InsertAll(i)
		}
	}
	return f
}

// Clone returns a structural copy of f: an O(1) copy-on-write clone of
// each per-feature B-tree. Subsequent mutations to the clone do not
// affect f, and vice versa.
func (f *Family) Clone() *Family {
	nf := &Family{data: f.data, idx: make([]*Index, len(f.idx))}
	for j, ix := range f.idx {
		nf.idx[j] = ix.Clone()
	}
	return nf
}

// NumFeatures returns p.
func (f *Family) NumFeatures() int { return len(f.idx) }

// Len returns the number of active observations, read off the
// feature-0 index (all indices have equal length by invariant).
func (f *Family) Len() int {
	if len(f.idx) == 0 {
		return 0
	}
	return f.idx[0].Len()
}

// Feature returns the sorted index for feature j.
func (f *Family) Feature(j int) *Index { return f.idx[j] }

// InsertAll inserts obs into every per-feature index.
func (f *Family) InsertAll(obs int) {
	h := Handle{Obs: obs}
	for _, ix := range f.idx {
		ix.Insert(h)
	}
}

// EraseAll removes obs from every per-feature index.
func (f *Family) EraseAll(obs int) {
	h := Handle{Obs: obs}
	for _, ix := range f.idx {
		ix.Erase(h)
	}
}

// MoveTo erases obs from f and inserts it into into. Used by the
// exact recursive search's incremental right-to-left move (spec
// §4.5): obs is erased by key from every index of f, including the
// split feature's, and inserted into every index of into; each of
// those operations is O(log n).
func (f *Family) MoveTo(into *Family, obs int) {
	f.EraseAll(obs)
	into.InsertAll(obs)
}
