// SPDX-License-Identifier: MIT

package filtration

import (
	"cmp"
	"math"
	"slices"

	"go.uber.org/zap"

	"github.com/katalvlaran/cubepers/field"
	"github.com/katalvlaran/cubepers/invariant"
)

const unnumbered = -1

// Cubical is the cubical filtration of one field. It is not safe for
// concurrent use.
type Cubical struct {
	f *field.Field
	n int

	big     []int // lattice shape, 2s-1 per axis
	strides []int // lattice row-major strides
	size    int   // lattice position count
	dims    []uint8

	neighbours []delta // {-1,0,1}^n, generateDeltas order
	unit       []delta // one-axis moves

	vertices []field.Coord
	rank     []int // owner rank per lattice position
	order    []int // per-dimension index per lattice position
	counts   []int // cells per dimension
	ready    bool

	log *zap.Logger
}

// New prepares a filtration of f. The field is borrowed for the lifetime of
// the Cubical. The lattice dimension table is computed eagerly; rank and
// order tables are allocated by Init.
// Returns ErrNilField or ErrLatticeTooLarge.
// Complexity: O(2^n·N) time and memory.
func New(f *field.Field, opts ...Option) (*Cubical, error) {
	if f == nil {
		return nil, ErrNilField
	}
	o := gatherOptions(opts)

	n := f.Dim()
	big, size, err := latticeShape(f.Shape())
	if err != nil {
		return nil, err
	}
	strides := make([]int, n)
	stride := 1
	for i := n - 1; i >= 0; i-- {
		strides[i] = stride
		stride *= big[i]
	}

	c := &Cubical{
		f:          f,
		n:          n,
		big:        big,
		strides:    strides,
		size:       size,
		neighbours: generateDeltas(n, n, strides),
		unit:       unitDeltas(n, strides),
		log:        o.Logger,
	}

	c.dims = make([]uint8, size)
	pc := make([]int, n)
	for p := 0; p < size; p++ {
		c.decode(p, pc)
		var w uint8
		for _, v := range pc {
			w += uint8(v & 1)
		}
		c.dims[p] = w
	}

	return c, nil
}

// latticeShape returns the extended lattice shape 2s-1 per axis and its
// position count, which must not exceed math.MaxInt32.
func latticeShape(shape []int) ([]int, int, error) {
	big := make([]int, len(shape))
	size := 1
	for i, s := range shape {
		big[i] = 2*s - 1
		if size > math.MaxInt32/big[i] {
			return nil, 0, ErrLatticeTooLarge
		}
		size *= big[i]
	}
	return big, size, nil
}

// Dim returns the dimension n of the underlying grid, which is also the
// top cell dimension.
func (c *Cubical) Dim() int { return c.n }

// LatticeShape returns a copy of the extended lattice shape.
func (c *Cubical) LatticeShape() []int {
	out := make([]int, c.n)
	copy(out, c.big)
	return out
}

// Vertices returns the vertex list established by Init. Index i is the
// dimension-0 cell index of the vertex.
func (c *Cubical) Vertices() []field.Coord { return c.vertices }

// Init ranks the vertices, propagates owner ranks across the lattice and
// numbers every cell within its dimension.
//
// If vertices is empty the grid coordinates are enumerated in row-major
// order and stable-sorted by value. Otherwise the caller's ordering is used
// as is after checking that it is a permutation of the grid (ErrVertexList).
// Init may be called again; it resets all state, so repeated runs on the
// same field produce identical numbering.
func (c *Cubical) Init(vertices []field.Coord) ([]field.Coord, error) {
	c.ready = false
	if len(vertices) == 0 {
		vertices = c.sortedVertices()
	} else if err := c.checkVertexList(vertices); err != nil {
		return nil, err
	}
	c.vertices = vertices

	c.propagateRanks()
	if err := c.numberCells(); err != nil {
		return nil, err
	}
	c.ready = true

	return vertices, nil
}

// SizeInDim returns the number of cells of dimension d.
func (c *Cubical) SizeInDim(d int) (int, error) {
	if d < 0 || d > c.n {
		return 0, ErrDimOutOfRange
	}
	if !c.ready {
		return 0, ErrNotInitialized
	}
	return c.counts[d], nil
}

// CellCounts returns a copy of the per-dimension cell counts.
func (c *Cubical) CellCounts() []int {
	out := make([]int, len(c.counts))
	copy(out, c.counts)
	return out
}

// ReleaseRanks drops the owner-rank lattice. Boundary generation does not
// need it; InitList and VerifyOrder fail with ErrRanksReleased afterwards.
func (c *Cubical) ReleaseRanks() {
	c.rank = nil
}

// sortedVertices enumerates grid vertices row-major and stable-sorts them by value.
func (c *Cubical) sortedVertices() []field.Coord {
	c.log.Debug("sorting vertices by value", zap.Int("vertices", c.f.Size()))
	idx := make([]int, c.f.Size())
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		return cmp.Compare(c.f.AtIndex(a), c.f.AtIndex(b))
	})
	out := make([]field.Coord, len(idx))
	for r, i := range idx {
		out[r] = c.f.Coordinate(i)
	}
	return out
}

func (c *Cubical) checkVertexList(vertices []field.Coord) error {
	if len(vertices) != c.f.Size() {
		return ErrVertexList
	}
	seen := make([]bool, c.f.Size())
	for _, v := range vertices {
		if !c.f.InBounds(v) {
			return ErrVertexList
		}
		i := c.f.Index(v)
		if seen[i] {
			return ErrVertexList
		}
		seen[i] = true
	}
	return nil
}

// propagateRanks gives every lattice position the largest rank among the
// vertices within ±1 on every axis.
func (c *Cubical) propagateRanks() {
	c.log.Debug("propagating owner ranks", zap.Int("lattice", c.size))
	if c.rank == nil || len(c.rank) != c.size {
		c.rank = make([]int, c.size)
	} else {
		clear(c.rank)
	}
	pos := make([]int, len(c.vertices))
	for r, v := range c.vertices {
		pos[r] = c.vertexPos(v)
		c.rank[pos[r]] = r
	}

	pc := make([]int, c.n)
	for r, v := range c.vertices {
		c.vertexLattice(v, pc)
		for _, d := range c.neighbours {
			if !c.inBounds(pc, d.vec) {
				continue
			}
			q := pos[r] + d.flat
			c.rank[q] = max(c.rank[q], r)
		}
	}
}

// numberCells walks vertices in rank order and numbers every cell they own.
func (c *Cubical) numberCells() error {
	c.log.Debug("numbering cells")
	c.counts = make([]int, c.n+1)
	if len(c.order) != c.size {
		c.order = make([]int, c.size)
	}
	for i := range c.order {
		c.order[i] = unnumbered
	}

	pc := make([]int, c.n)
	for r, v := range c.vertices {
		p := c.vertexPos(v)
		c.vertexLattice(v, pc)
		for _, d := range c.neighbours {
			if !c.inBounds(pc, d.vec) {
				continue
			}
			q := p + d.flat
			if c.rank[q] == r {
				c.order[q] = c.counts[d.weight]
				c.counts[d.weight]++
			}
		}
	}

	for p, idx := range c.order {
		if idx == unnumbered {
			return invariant.New(invariant.KindIndexGap, int(c.dims[p]), -1,
				"lattice position %d was not numbered", p)
		}
	}
	if c.counts[0] != c.f.Size() {
		return invariant.New(invariant.KindIndexGap, 0, -1,
			"%d vertex cells for %d voxels", c.counts[0], c.f.Size())
	}
	c.log.Debug("cells numbered", zap.Ints("counts", c.counts))

	return nil
}

// vertexPos is the flat lattice position 2v of grid vertex v.
func (c *Cubical) vertexPos(v field.Coord) int {
	p := 0
	for i, x := range v {
		p += 2 * x * c.strides[i]
	}
	return p
}

// vertexLattice writes the lattice coordinate 2v into dst.
func (c *Cubical) vertexLattice(v field.Coord, dst []int) {
	for i, x := range v {
		dst[i] = 2 * x
	}
}

// decode writes the lattice coordinate of flat position p into dst.
func (c *Cubical) decode(p int, dst []int) {
	for i, s := range c.strides {
		dst[i] = p / s
		p %= s
	}
}

// inBounds reports whether pc+vec lies inside the lattice.
func (c *Cubical) inBounds(pc, vec []int) bool {
	for i, v := range vec {
		x := pc[i] + v
		if x < 0 || x >= c.big[i] {
			return false
		}
	}
	return true
}
