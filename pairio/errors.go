// SPDX-License-Identifier: MIT

package pairio

import "errors"

var (
	// ErrDimMismatch indicates pairs or coordinates whose dimension differs
	// from the declared one.
	ErrDimMismatch = errors.New("pairio: dimension mismatch")
	// ErrBadHeader indicates a binary header with an impossible dimension
	// or count.
	ErrBadHeader = errors.New("pairio: malformed header")
	// ErrBadCoordinate indicates a stored coordinate of 0, which the
	// 1-indexed encoding cannot produce.
	ErrBadCoordinate = errors.New("pairio: malformed coordinate")
	// ErrBadCertificate indicates an empty certificate record or a vertex
	// index outside the vertex list.
	ErrBadCertificate = errors.New("pairio: malformed certificate")
)
