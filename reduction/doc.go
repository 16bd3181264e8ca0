// SPDX-License-Identifier: MIT

// Package reduction implements the standard persistence column reduction of
// one boundary matrix over GF(2).
//
// What:
//
//   - Columns are processed in ascending index order. While a column's
//     lowest entry (its largest row index) is already the pivot of an
//     earlier column j, column j is added to it (symmetric difference) and
//     j's reduction list is added to its reduction list.
//   - A column that ends non-empty claims its low row: Low[row] = column,
//     and Clear[row] flags the row's cell, whose own column in the next
//     (lower) dimension is known to reduce to zero ("clearing").
//   - Columns that arrive empty (cleared by the previous pass) are skipped.
//
// Invariants:
//
//   - A non-empty column never reduces to zero: every column handed to
//     Reduce is either cleared or negative. A violation is reported as an
//     *invariant.Error of kind KindColumnCancelled.
//
// Complexity:
//
//   - Output sensitive: O(Σ sizes of all intermediate columns), each
//     addition being a linear merge of two sorted lists.
package reduction
