// SPDX-License-Identifier: MIT

// Package field holds the scalar filter function of a persistence
// computation: a dense n-dimensional grid of float64 values.
//
// What:
//
//   - Field wraps a row-major []float64 (last axis varies fastest) with an
//     explicit shape. Lower bounds are 0, upper bounds are exclusive.
//   - Coord is a coordinate vector with one component per axis.
//   - Index / Coordinate convert between coordinates and row-major offsets.
//   - ReadText / ReadRaw / Load ingest the text and raw binary volume formats.
//
// Why:
//
//   - The filtration builder needs read-only, bounds-checked access to the
//     values and a deterministic enumeration order of the grid vertices.
//
// Ownership:
//
//   - New borrows the values slice; it is never cloned. Callers must not
//     mutate it while a computation runs. From1D/From2D/From3D and the
//     readers build a fresh slice.
//
// Errors:
//
//   - ErrEmptyGrid:      no axes, or an axis of length zero.
//   - ErrNonRectangular: nested slices of differing lengths.
//   - ErrShapeMismatch:  value count does not match the shape.
//   - ErrNaNInf:         a NaN or ±Inf value.
//   - ErrDimTooLarge:    more than MaxDim axes.
//   - ErrMalformedInput: unreadable text or raw input.
package field
