// SPDX-License-Identifier: MIT

package field

import (
	"fmt"
	"strings"
)

// MaxDim is the largest supported number of axes.
const MaxDim = 8

// MaxVoxels is the largest supported number of grid vertices.
const MaxVoxels = 1<<31 - 1

// Coord is a coordinate vector, one component per axis.
type Coord []int

// Clone returns an independent copy of c.
func (c Coord) Clone() Coord {
	out := make(Coord, len(c))
	copy(out, c)
	return out
}

// String formats c as "(x,y,...)".
func (c Coord) String() string {
	parts := make([]string, len(c))
	for i, v := range c {
		parts[i] = fmt.Sprint(v)
	}
	return "(" + strings.Join(parts, ",") + ")"
}

// Field is an immutable n-dimensional grid of filter values.
// shape holds the exclusive upper bound of every axis; strides are the
// row-major offsets, so strides[len-1] == 1.
type Field struct {
	shape   []int
	strides []int
	values  []float64
}
