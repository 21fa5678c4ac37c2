package search

import "github.com/grf-labs/policytree/internal/atomics"

// candidateCounter tallies split candidates actually evaluated
// (recursed into) during a search. Adapted from the teacher module's
// Atoms.go AtomicInt for the parallel path, where multiple worker
// goroutines bump it concurrently.
type candidateCounter struct {
	n atomics.Int
}

func (c *candidateCounter) add(d int) { c.n.Add(d) }

// Stats reports counters gathered during a search. Not part of spec
// §6's external interface table; added per SPEC_FULL.md since nothing
// in spec.md's Non-goals excludes observing the search itself.
type Stats struct {
	CandidatesEvaluated int
}
