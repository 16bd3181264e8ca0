// SPDX-License-Identifier: MIT

package persistence

import (
	"cmp"
	"slices"
)

// Matching classifies the pairs of one diagram against a reference diagram
// that has a known number of holes. Entries are indices into the matched
// slice, ascending.
type Matching struct {
	// Perfect pairs are among the most persistent and already reach the
	// perfect persistence.
	Perfect []int
	// Fix pairs are among the len(reference) most persistent but fall
	// short of the perfect persistence.
	Fix []int
	// Remove pairs are the remaining pairs with persistence above the
	// threshold.
	Remove []int
}

// MatchDiagram ranks pairs by persistence (ties by lower index) and keeps the
// top holes of them, clamped to len(pairs). Kept pairs with persistence
// above perfect are Perfect, the other kept pairs are Fix, and every other
// pair with persistence above threshold is Remove. With holes == 0 every
// pair above threshold is Remove.
func MatchDiagram(pairs []Pair, holes int, perfect, threshold float64) Matching {
	ranked := make([]int, len(pairs))
	for i := range ranked {
		ranked[i] = i
	}
	slices.SortStableFunc(ranked, func(a, b int) int {
		return cmp.Compare(pairs[b].Persistence, pairs[a].Persistence)
	})
	holes = min(max(holes, 0), len(pairs))

	m := Matching{Perfect: []int{}, Fix: []int{}, Remove: []int{}}
	for k, i := range ranked {
		switch {
		case k < holes && pairs[i].Persistence > perfect:
			m.Perfect = append(m.Perfect, i)
		case k < holes:
			m.Fix = append(m.Fix, i)
		case pairs[i].Persistence > threshold:
			m.Remove = append(m.Remove, i)
		}
	}
	slices.Sort(m.Perfect)
	slices.Sort(m.Fix)
	slices.Sort(m.Remove)

	return m
}

// MinPersistence returns the smallest persistence in pairs, or 0 if empty.
func MinPersistence(pairs []Pair) float64 {
	if len(pairs) == 0 {
		return 0
	}
	return slices.MinFunc(pairs, func(a, b Pair) int {
		return cmp.Compare(a.Persistence, b.Persistence)
	}).Persistence
}
