// SPDX-License-Identifier: MIT

// Package invariant defines the structured error returned when a
// mathematical invariant of the persistence algorithm is violated.
//
// Such a violation is an internal bug, not bad input: a boundary column
// cancelling to zero, a negative persistence, an incidence set of the wrong
// size, a gap in the per-dimension cell numbering or a pair-count mismatch.
// Every violation is returned as *Error so callers can report it (errors.As)
// or match the whole class with errors.Is(err, ErrViolated).
package invariant

import (
	"errors"
	"fmt"
)

// ErrViolated matches every *Error via errors.Is.
var ErrViolated = errors.New("invariant violated")

// Kind classifies a violation.
type Kind int

const (
	// KindIncidence: a cell does not have exactly 2^d corner vertices.
	KindIncidence Kind = iota + 1
	// KindIndexGap: per-dimension indices do not cover 0..count-1.
	KindIndexGap
	// KindOrder: index order is not a linear extension of the face order.
	KindOrder
	// KindColumnCancelled: a boundary column reduced to zero.
	KindColumnCancelled
	// KindNegativePersistence: death value below birth value.
	KindNegativePersistence
	// KindEmptyCertificate: a matched column has an empty reduction or boundary list.
	KindEmptyCertificate
	// KindPairCount: matched pair counts do not telescope to the cell counts.
	KindPairCount
)

var kindNames = map[Kind]string{
	KindIncidence:           "incidence",
	KindIndexGap:            "index-gap",
	KindOrder:               "order",
	KindColumnCancelled:     "column-cancelled",
	KindNegativePersistence: "negative-persistence",
	KindEmptyCertificate:    "empty-certificate",
	KindPairCount:           "pair-count",
}

// String returns the kind's short name.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error describes one violation. Dim and Index locate the offending cell or
// column; Index is -1 when the violation is not tied to a single cell.
type Error struct {
	Kind   Kind
	Dim    int
	Index  int
	Detail string
}

// New builds an *Error with a formatted detail message.
func New(kind Kind, dim, index int, format string, args ...any) *Error {
	return &Error{Kind: kind, Dim: dim, Index: index, Detail: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("invariant %s violated (dim %d, index %d): %s", e.Kind, e.Dim, e.Index, e.Detail)
	}
	return fmt.Sprintf("invariant %s violated (dim %d): %s", e.Kind, e.Dim, e.Detail)
}

// Is makes errors.Is(err, ErrViolated) true for every *Error.
func (e *Error) Is(target error) bool {
	return target == ErrViolated
}
