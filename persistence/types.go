// SPDX-License-Identifier: MIT

package persistence

import (
	"slices"
	"time"

	"github.com/katalvlaran/cubepers/field"
)

// Pair is one finite persistence pair.
type Pair struct {
	Birth       field.Coord // owner vertex of the creating cell
	Death       field.Coord // owner vertex of the destroying cell
	BirthValue  float64
	DeathValue  float64
	Persistence float64 // DeathValue - BirthValue, never negative
}

// Less orders more persistent pairs first; equal persistence is broken by
// ascending birth value.
func (p Pair) Less(q Pair) bool {
	if p.Persistence == q.Persistence {
		return p.BirthValue < q.BirthValue
	}
	return p.Persistence > q.Persistence
}

// SortPairs sorts pairs in place by Pair.Less (stable).
func SortPairs(pairs []Pair) {
	slices.SortStableFunc(pairs, func(a, b Pair) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		default:
			return 0
		}
	})
}

// Essential is the dimension-0 class that is born at the global minimum and
// never dies.
type Essential struct {
	Coord field.Coord
	Value float64
}

// Certificates are the provenance lists of the pairs emitted for one
// dimension, parallel to the emitted pairs. Entries are sorted vertex
// indices (positions in Result.Vertices).
type Certificates struct {
	// Reduction[i] is the union of the corner vertices of every column
	// summed into the killing column of pair i.
	Reduction [][]int
	// Boundary[i] is the union of the corner vertices of every cell in
	// the reduced killing column of pair i.
	Boundary [][]int
}

// CertificateSink receives the certificates of one pass. d is the upper
// dimension of the pass (the pairs are of dimension d-1). vertices maps
// vertex indices to coordinates. The sink must not retain certs.
type CertificateSink interface {
	WriteCertificates(d int, certs Certificates, vertices []field.Coord) error
}

// Timing splits wall time between filtration work and column reduction.
type Timing struct {
	Filtration time.Duration
	Reduction  time.Duration
}

// Result is the outcome of Compute.
type Result struct {
	// Dim is the grid dimension n.
	Dim int
	// Pairs[k] holds the emitted pairs of dimension k, 0 ≤ k < n, in
	// increasing index order of their birth cell.
	Pairs [][]Pair
	// Matched[k] counts all (k, k+1) pairs before thresholding.
	Matched []int
	// CellCounts[d] is the number of d-cells, 0 ≤ d ≤ n.
	CellCounts []int
	// Essential is the never-dying class of dimension 0.
	Essential Essential
	// Vertices is the vertex filtration order; index = vertex cell index.
	Vertices []field.Coord
	Timing   Timing
}

// Total returns the number of emitted pairs over all dimensions.
func (r *Result) Total() int {
	n := 0
	for _, ps := range r.Pairs {
		n += len(ps)
	}
	return n
}
