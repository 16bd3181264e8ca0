// SPDX-License-Identifier: MIT

package field

import "math"

// New constructs a Field over values with the given shape.
// The values slice is borrowed, not copied.
// Returns ErrEmptyGrid, ErrDimTooLarge, ErrGridTooLarge, ErrShapeMismatch
// or ErrNaNInf.
// Complexity: O(N) for the finiteness scan.
func New(shape []int, values []float64) (*Field, error) {
	if len(shape) == 0 {
		return nil, ErrEmptyGrid
	}
	if len(shape) > MaxDim {
		return nil, ErrDimTooLarge
	}
	total, err := volume(shape)
	if err != nil {
		return nil, err
	}
	if total != len(values) {
		return nil, ErrShapeMismatch
	}
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrNaNInf
		}
	}

	sh := make([]int, len(shape))
	copy(sh, shape)
	strides := make([]int, len(shape))
	stride := 1
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = stride
		stride *= shape[i]
	}

	return &Field{shape: sh, strides: strides, values: values}, nil
}

// FromFlat is New with a plain []int shape and a values slice as received
// from an in-process caller; it exists for symmetry with the readers.
func FromFlat(shape []int, values []float64) (*Field, error) {
	return New(shape, values)
}

// From1D builds a one-dimensional Field from a copy of values.
func From1D(values []float64) (*Field, error) {
	if len(values) == 0 {
		return nil, ErrEmptyGrid
	}
	flat := make([]float64, len(values))
	copy(flat, values)
	return New([]int{len(values)}, flat)
}

// From2D builds a Field from a non-empty rectangular [][]float64.
// rows[i][j] is the value at coordinate (i, j).
func From2D(rows [][]float64) (*Field, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	flat := make([]float64, 0, h*w)
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		flat = append(flat, row...)
	}
	return New([]int{h, w}, flat)
}

// From3D builds a Field from a non-empty box-shaped [][][]float64.
// vol[i][j][k] is the value at coordinate (i, j, k).
func From3D(vol [][][]float64) (*Field, error) {
	if len(vol) == 0 || len(vol[0]) == 0 || len(vol[0][0]) == 0 {
		return nil, ErrEmptyGrid
	}
	a, b, c := len(vol), len(vol[0]), len(vol[0][0])
	flat := make([]float64, 0, a*b*c)
	for _, plane := range vol {
		if len(plane) != b {
			return nil, ErrNonRectangular
		}
		for _, row := range plane {
			if len(row) != c {
				return nil, ErrNonRectangular
			}
			flat = append(flat, row...)
		}
	}
	return New([]int{a, b, c}, flat)
}

// Dim returns the number of axes.
func (f *Field) Dim() int { return len(f.shape) }

// Size returns the total number of grid vertices.
func (f *Field) Size() int { return len(f.values) }

// Shape returns a copy of the per-axis sizes.
func (f *Field) Shape() []int {
	out := make([]int, len(f.shape))
	copy(out, f.shape)
	return out
}

// InBounds reports whether c addresses a grid vertex.
// Complexity: O(Dim).
func (f *Field) InBounds(c Coord) bool {
	if len(c) != len(f.shape) {
		return false
	}
	for i, v := range c {
		if v < 0 || v >= f.shape[i] {
			return false
		}
	}
	return true
}

// Index maps c to its row-major offset. c must be in bounds.
// Complexity: O(Dim).
func (f *Field) Index(c Coord) int {
	idx := 0
	for i, v := range c {
		idx += v * f.strides[i]
	}
	return idx
}

// Coordinate converts a row-major offset back to a coordinate.
// Complexity: O(Dim).
func (f *Field) Coordinate(idx int) Coord {
	c := make(Coord, len(f.shape))
	for i, s := range f.strides {
		c[i] = idx / s
		idx %= s
	}
	return c
}

// At returns the value at c. c must be in bounds.
func (f *Field) At(c Coord) float64 {
	return f.values[f.Index(c)]
}

// AtIndex returns the value at row-major offset idx.
func (f *Field) AtIndex(idx int) float64 {
	return f.values[idx]
}

// Coords enumerates every vertex coordinate in row-major order.
// This order is the tie-breaking order of the vertex filtration.
// Complexity: O(N·Dim) time and memory.
func (f *Field) Coords() []Coord {
	out := make([]Coord, len(f.values))
	for i := range out {
		out[i] = f.Coordinate(i)
	}
	return out
}

// volume returns the number of vertices of shape, rejecting empty axes and
// products above MaxVoxels before they can overflow.
func volume(shape []int) (int, error) {
	total := 1
	for _, s := range shape {
		if s <= 0 {
			return 0, ErrEmptyGrid
		}
		if total > MaxVoxels/s {
			return 0, ErrGridTooLarge
		}
		total *= s
	}
	return total, nil
}
