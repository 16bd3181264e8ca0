// SPDX-License-Identifier: MIT

package filtration

import (
	"slices"

	"go.uber.org/zap"

	"github.com/katalvlaran/cubepers/gf2"
	"github.com/katalvlaran/cubepers/invariant"
)

// InitList returns, for every cell of dimension d, its owner rank
// (births[index], the filtration value as a vertex rank) and the sorted set
// of its corner vertex indices (cell2v[index], exactly 2^d entries).
// Requires Init and the rank lattice.
func (c *Cubical) InitList(d int) (births []int, cell2v [][]int, err error) {
	if d < 0 || d > c.n {
		return nil, nil, ErrDimOutOfRange
	}
	if !c.ready {
		return nil, nil, ErrNotInitialized
	}
	if c.rank == nil {
		return nil, nil, ErrRanksReleased
	}
	c.log.Debug("building cell lists", zap.Int("dim", d), zap.Int("cells", c.counts[d]))

	births = make([]int, c.counts[d])
	cell2v = make([][]int, c.counts[d])
	want := 1 << d

	pc := make([]int, c.n)
	odd := make([]int, 0, c.n)
	for p := 0; p < c.size; p++ {
		if int(c.dims[p]) != d {
			continue
		}
		idx := c.order[p]
		births[idx] = c.rank[p]

		c.decode(p, pc)
		odd = odd[:0]
		for i, x := range pc {
			if x&1 == 1 {
				odd = append(odd, i)
			}
		}
		corners := make([]int, 0, want)
		for mask := 0; mask < want; mask++ {
			q := p
			for b, axis := range odd {
				if mask&(1<<b) != 0 {
					q += c.strides[axis]
				} else {
					q -= c.strides[axis]
				}
			}
			corners = append(corners, c.order[q])
		}
		corners = gf2.SortUnique(corners)
		if len(corners) != want {
			return nil, nil, invariant.New(invariant.KindIncidence, d, idx,
				"cell has %d distinct corners, want %d", len(corners), want)
		}
		cell2v[idx] = corners
	}

	return births, cell2v, nil
}

// CalculateBoundaries returns the boundary matrix of dimension d (1 ≤ d ≤ n):
// column i holds the sorted indices of the (d-1)-cells on the boundary of
// d-cell i.
//
// willBeCleared, when non-nil, must have one flag per d-cell. A flagged
// column is known to reduce to zero (its cell was paired as a pivot in the
// pass of dimension d+1); it is left nil and receives no entries.
// Other columns are allocated with capacity 2d.
//
// Out-of-lattice neighbours are the domain edge and are skipped.
// Complexity: O(L·n + c_d·d log d), Memory O(c_d·d).
func (c *Cubical) CalculateBoundaries(d int, willBeCleared []bool) ([][]int, error) {
	if d < 1 || d > c.n {
		return nil, ErrDimOutOfRange
	}
	if !c.ready {
		return nil, ErrNotInitialized
	}
	if willBeCleared != nil && len(willBeCleared) != c.counts[d] {
		return nil, ErrClearMismatch
	}
	cleared := func(i int) bool { return willBeCleared != nil && willBeCleared[i] }

	c.log.Debug("calculating boundaries", zap.Int("dim", d), zap.Int("columns", c.counts[d]))
	boundary := make([][]int, c.counts[d])
	for i := range boundary {
		if !cleared(i) {
			boundary[i] = make([]int, 0, 2*d)
		}
	}

	pc := make([]int, c.n)
	for p := 0; p < c.size; p++ {
		if int(c.dims[p]) != d-1 {
			continue
		}
		face := c.order[p]
		c.decode(p, pc)
		for _, u := range c.unit {
			if !c.inBounds(pc, u.vec) {
				continue
			}
			q := p + u.flat
			if int(c.dims[q]) != d {
				continue
			}
			col := c.order[q]
			if cleared(col) {
				continue
			}
			boundary[col] = append(boundary[col], face)
		}
	}

	for _, col := range boundary {
		slices.Sort(col)
	}
	c.log.Debug("boundaries calculated", zap.Int("dim", d))

	return boundary, nil
}

// VerifyOrder checks that per-dimension index order is a linear extension of
// the filtration: within a dimension owner ranks never decrease with the
// index, and every face has an owner rank no larger than its coface.
// Together with "faces of equal rank come from a lower dimension" this makes
// ascending-index column processing a valid reduction order.
// Requires Init and the rank lattice.
func (c *Cubical) VerifyOrder() error {
	if !c.ready {
		return ErrNotInitialized
	}
	if c.rank == nil {
		return ErrRanksReleased
	}

	byIndex := make([][]int, c.n+1)
	for d := range byIndex {
		byIndex[d] = make([]int, c.counts[d])
	}
	pc := make([]int, c.n)
	for p := 0; p < c.size; p++ {
		d := int(c.dims[p])
		byIndex[d][c.order[p]] = c.rank[p]

		c.decode(p, pc)
		for _, u := range c.unit {
			if !c.inBounds(pc, u.vec) {
				continue
			}
			q := p + u.flat
			if int(c.dims[q]) == d-1 && c.rank[q] > c.rank[p] {
				return invariant.New(invariant.KindOrder, d, c.order[p],
					"face %d has rank %d above coface rank %d", c.order[q], c.rank[q], c.rank[p])
			}
		}
	}
	for d, ranks := range byIndex {
		for i := 1; i < len(ranks); i++ {
			if ranks[i] < ranks[i-1] {
				return invariant.New(invariant.KindOrder, d, i,
					"rank %d follows rank %d", ranks[i], ranks[i-1])
			}
		}
	}

	return nil
}

// CellCoord returns the lattice coordinate of cell index of dimension d,
// or nil if there is no such cell. Linear in the lattice size; meant for
// diagnostics and tests.
func (c *Cubical) CellCoord(d, index int) []int {
	if !c.ready || d < 0 || d > c.n {
		return nil
	}
	for p := 0; p < c.size; p++ {
		if int(c.dims[p]) == d && c.order[p] == index {
			pc := make([]int, c.n)
			c.decode(p, pc)
			return pc
		}
	}
	return nil
}
