// SPDX-License-Identifier: MIT

// Package persistence computes persistence pairs of a scalar field with the
// cubical filtration and turns reduced boundary matrices into birth/death
// pairs.
//
// What:
//
//   - Compute drives the whole pipeline (filtration, then for d = n..1:
//     boundary matrix, reduction, pair extraction, certificate export) and
//     keeps at most one boundary matrix alive at a time.
//   - Extract converts one dimension's pivots into Pair values, applying the
//     persistence threshold and, on request, building provenance
//     certificates.
//   - Pair.Less / SortPairs give the "most persistent first" order; results
//     are never sorted implicitly.
//   - Summarize reports per-dimension diagram statistics.
//
// Pairs of dimension k (Result.Pairs[k]) are born by a k-cell and killed by
// a (k+1)-cell. Coordinates are grid-vertex coordinates: a cell is reported
// through the vertex that owns it (the corner with the largest filtration
// rank), and its value is that vertex's value.
//
// Errors:
//
//   - ErrNilField: Compute called with a nil field.
//   - *invariant.Error: an internal consistency violation (negative
//     persistence, empty certificate, pair counts that do not telescope to
//     the cell counts, or one bubbling up from filtration/reduction).
//   - Errors returned by a CertificateSink are wrapped and returned.
package persistence
