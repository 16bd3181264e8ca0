// SPDX-License-Identifier: MIT

package reduction

import "errors"

var (
	// ErrNegativeSize indicates a negative lower-dimension cell count.
	ErrNegativeSize = errors.New("reduction: lower size must be non-negative")
	// ErrRowOutOfRange indicates a boundary entry outside [0, lowerSize).
	ErrRowOutOfRange = errors.New("reduction: boundary row out of range")
	// ErrUnsortedColumn indicates a boundary column that is not strictly ascending.
	ErrUnsortedColumn = errors.New("reduction: boundary column is not strictly ascending")
)
