// Package dataview provides read-only access to the covariate and
// reward matrices a search runs over (spec §4.1). A View is immutable
// for the lifetime of a search and safe for concurrent readers, which
// is what lets the parallel exact search (internal/search) share one
// View across worker goroutines without synchronization.
package dataview

import "fmt"

// View owns (or borrows) the N×p covariate matrix X and the N×d
// reward matrix Y, both stored row-major. Dimensions are fixed at
// construction time; entries must not be NaN (caller's responsibility,
// per spec §3).
type View struct {
	x       []float64
	y       []float64
	n, p, d int
}

// New builds a View over x (N rows of p covariates, row-major) and y
// (N rows of d rewards, row-major). It returns an error if the
// dimensions are inconsistent or degenerate, matching spec §7's
// invalid-argument handling.
func New(x [][]float64, y [][]float64) (*View, error) {
	n := len(x)
	if n == 0 {
		return nil, fmt.Errorf("dataview: X has zero rows")
	}
	if len(y) != n {
		return nil, fmt.Errorf("dataview: X has %d rows but Y has %d", n, len(y))
	}
	p := len(x[0])
	if p == 0 {
		return nil, fmt.Errorf("dataview: X has zero columns")
	}
	d := len(y[0])
	if d == 0 {
		return nil, fmt.Errorf("dataview: Y has zero columns")
	}
	flatX := make([]float64, 0, n*p)
	flatY := make([]float64, 0, n*d)
	for i := 0; i < n; i++ {
		if len(x[i]) != p {
			return nil, fmt.Errorf("dataview: row %d of X has %d columns, want %d", i, len(x[i]), p)
		}
		if len(y[i]) != d {
			return nil, fmt.Errorf("dataview: row %d of Y has %d columns, want %d", i, len(y[i]), d)
		}
		flatX = append(flatX, x[i]...)
		flatY = append(flatY, y[i]...)
	}
	return &View{x: flatX, y: flatY, n: n, p: p, d: d}, nil
}

func (v *View) NumRows() int     { return v.n }
func (v *View) NumFeatures() int { return v.p }
func (v *View) NumRewards() int  { return v.d }

// Value returns X[i, j]. Out-of-range indices are a programming error
// and panic, per spec §4.1.
func (v *View) Value(i, j int) float64 {
	if i < 0 || i >= v.n || j < 0 || j >= v.p {
		panic(fmt.Sprintf("dataview: Value(%d, %d) out of range [0,%d)x[0,%d)", i, j, v.n, v.p))
	}
	return v.x[i*v.p+j]
}

// Reward returns Y[i, a]. Out-of-range indices are a programming error
// and panic, per spec §4.1.
func (v *View) Reward(i, a int) float64 {
	if i < 0 || i >= v.n || a < 0 || a >= v.d {
		panic(fmt.Sprintf("dataview: Reward(%d, %d) out of range [0,%d)x[0,%d)", i, a, v.n, v.d))
	}
	return v.y[i*v.d+a]
}
