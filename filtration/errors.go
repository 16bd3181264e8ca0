// SPDX-License-Identifier: MIT

package filtration

import "errors"

var (
	// ErrNilField indicates New was called with a nil field.
	ErrNilField = errors.New("filtration: field is nil")
	// ErrNotInitialized indicates an operation that requires Init.
	ErrNotInitialized = errors.New("filtration: Init has not been run")
	// ErrRanksReleased indicates the owner-rank lattice was already released.
	ErrRanksReleased = errors.New("filtration: owner ranks have been released")
	// ErrDimOutOfRange indicates a cell dimension outside the valid range.
	ErrDimOutOfRange = errors.New("filtration: dimension out of range")
	// ErrVertexList indicates a caller-supplied vertex list that is not a
	// permutation of the grid coordinates.
	ErrVertexList = errors.New("filtration: vertex list is not a permutation of the grid")
	// ErrLatticeTooLarge indicates an extended lattice with more than
	// math.MaxInt32 positions, beyond the range of cell indices.
	ErrLatticeTooLarge = errors.New("filtration: extended lattice too large")
	// ErrClearMismatch indicates a willBeCleared slice of the wrong length.
	ErrClearMismatch = errors.New("filtration: willBeCleared length does not match cell count")
)
