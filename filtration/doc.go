// SPDX-License-Identifier: MIT

// Package filtration builds the lower-star cubical filtration of a scalar
// field and the per-dimension boundary matrices of its cell complex.
//
// What:
//
//   - The extended lattice has shape 2s-1 on an axis of size s. Grid vertex
//     v sits at 2v; a lattice position with k odd coordinates is a k-cell
//     (edge, face, cube, ...) whose corners are the vertices within ±1 on
//     the odd axes.
//   - Vertices are ranked by value (stable, row-major ties). Every cell
//     takes the largest rank among its corners ("owner" rank).
//   - Cells are numbered per dimension by visiting vertices in rank order
//     and numbering every cell they own, so index order within a dimension
//     is non-decreasing in owner rank.
//   - Boundaries are produced one dimension at a time as sorted columns.
//
// Operations:
//
//   - Init:                rank vertices, propagate owner ranks, number cells.
//   - SizeInDim:           number of cells of a dimension.
//   - InitList:            owner rank and corner-vertex set of every d-cell.
//   - CalculateBoundaries: sorted boundary columns of the d-cells, skipping
//     columns flagged as cleared by the previous reduction pass.
//   - VerifyOrder:         checks that index order extends the face order.
//
// Complexity:
//
//   - Init:                O(N·3^n + N log N), Memory O(2^n·N) lattice ints.
//   - InitList:            O(L + c_d·2^d), L = lattice size.
//   - CalculateBoundaries: O(L·n + c_d·d log d).
//
// Errors:
//
//   - ErrNilField, ErrNotInitialized, ErrRanksReleased,
//     ErrDimOutOfRange, ErrVertexList, ErrClearMismatch.
//   - *invariant.Error for internal consistency violations.
package filtration
