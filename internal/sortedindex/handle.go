package sortedindex

// Handle identifies an active observation by its stable row index into
// the data view. It is the item type stored in every per-feature
// btree.BTreeG.
type Handle struct {
	Obs int
}

// lessFunc returns the strict weak order for feature j: handle a
// precedes handle b iff value(a,j) < value(b,j), or the values are
// equal and a.Obs < b.Obs. The observation-index tie-break (spec §4.2)
// is what makes the order total, which incremental partitioning
// requires.
func lessFunc(value func(obs, feature int) float64, feature int) func(a, b Handle) bool {
	return func(a, b Handle) bool {
		va, vb := value(a.Obs, feature), value(b.Obs, feature)
		if va != vb {
			return va < vb
		}
		return a.Obs < b.Obs
	}
}
