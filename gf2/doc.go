// SPDX-License-Identifier: MIT

// Package gf2 implements the sorted-list algebra used as GF(2) vector
// arithmetic by the persistence pipeline.
//
// What:
//
//   - A GF(2) vector over cell indices is stored as a strictly ascending
//     []int holding the indices of its non-zero coordinates.
//   - SymDiff is vector addition (duplicates cancel), Union is the
//     set union used to merge provenance certificates (duplicates are kept
//     once, never cancelled).
//
// Why:
//
//   - Boundary columns of a cubical complex are tiny (2d entries) and the
//     reduction only ever needs "add column j to column i" and "largest
//     non-zero row", both of which are linear merges on sorted lists.
//
// Complexity:
//
//   - SymDiff, Union: O(|a|+|b|) time; exactly one allocation of the final size.
//   - SortUnique:     O(k log k).
//
// All functions treat their inputs as read-only and return fresh slices,
// except SortUnique which works in place.
package gf2
