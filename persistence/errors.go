// SPDX-License-Identifier: MIT

package persistence

import "errors"

var (
	// ErrNilField indicates Compute was called with a nil field.
	ErrNilField = errors.New("persistence: field is nil")
	// ErrInputMismatch indicates inconsistent slice lengths in an ExtractInput.
	ErrInputMismatch = errors.New("persistence: extract input lengths do not match")
)
