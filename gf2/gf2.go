// SPDX-License-Identifier: MIT

package gf2

import "slices"

// SymDiff returns the symmetric difference a △ b of two strictly ascending
// lists. The result is strictly ascending. The size of the result is counted
// first so the output is allocated once with the exact capacity.
// Complexity: O(|a|+|b|).
func SymDiff(a, b []int) []int {
	n := symDiffLen(a, b)
	if n == 0 {
		return nil
	}
	out := make([]int, 0, n)
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			// equal entries cancel mod 2
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)

	return out
}

// Union returns the set union a ∪ b of two strictly ascending lists.
// Entries present in both lists appear once.
// Complexity: O(|a|+|b|).
func Union(a, b []int) []int {
	n := unionLen(a, b)
	if n == 0 {
		return nil
	}
	out := make([]int, 0, n)
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)

	return out
}

// SortUnique sorts a in place and removes duplicate entries, returning the
// shortened slice (which shares a's backing array).
func SortUnique(a []int) []int {
	slices.Sort(a)
	return slices.Compact(a)
}

// IsSortedSet reports whether a is strictly ascending, i.e. a valid GF(2)
// vector representation.
func IsSortedSet(a []int) bool {
	for i := 1; i < len(a); i++ {
		if a[i-1] >= a[i] {
			return false
		}
	}
	return true
}

// Low returns the largest entry of a and true, or (0, false) if a is empty.
// In a sorted column this is the pivot ("low") row.
func Low(a []int) (int, bool) {
	if len(a) == 0 {
		return 0, false
	}
	return a[len(a)-1], true
}

// symDiffLen counts |a △ b| without allocating.
func symDiffLen(a, b []int) int {
	n, i, j := 0, 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
			n++
		case a[i] > b[j]:
			j++
			n++
		default:
			i++
			j++
		}
	}
	return n + (len(a) - i) + (len(b) - j)
}

// unionLen counts |a ∪ b| without allocating.
func unionLen(a, b []int) int {
	n, i, j := 0, 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			i++
			j++
		}
		n++
	}
	return n + (len(a) - i) + (len(b) - j)
}
