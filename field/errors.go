// SPDX-License-Identifier: MIT

package field

import "errors"

var (
	// ErrEmptyGrid indicates the input has no axes or an axis of length zero.
	ErrEmptyGrid = errors.New("field: grid must have at least one axis and every axis must be non-empty")
	// ErrNonRectangular indicates nested rows of differing lengths.
	ErrNonRectangular = errors.New("field: all rows must have the same length")
	// ErrShapeMismatch indicates that the number of values does not match the shape.
	ErrShapeMismatch = errors.New("field: value count does not match shape")
	// ErrNaNInf indicates a NaN or ±Inf filter value.
	ErrNaNInf = errors.New("field: NaN or Inf encountered")
	// ErrDimTooLarge indicates more axes than MaxDim.
	ErrDimTooLarge = errors.New("field: too many dimensions")
	// ErrGridTooLarge indicates a shape whose vertex count exceeds MaxVoxels.
	ErrGridTooLarge = errors.New("field: grid has too many vertices")
	// ErrMalformedInput indicates an unreadable text or raw input stream.
	ErrMalformedInput = errors.New("field: malformed input")
)
