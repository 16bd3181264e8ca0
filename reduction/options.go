// SPDX-License-Identifier: MIT

package reduction

import "go.uber.org/zap"

// Option configures Reduce.
type Option func(*Options)

// Options holds the effective configuration of a reduction.
type Options struct {
	// Logger receives the start/end summary of each reduction.
	Logger *zap.Logger
	// Dim is the dimension of the columns; it only labels log lines and errors.
	Dim int
	// Validate checks that every column is strictly ascending and in range
	// before reducing. Off by default: filtration output is sorted by construction.
	Validate bool
}

// DefaultOptions returns Options with a no-op logger and validation off.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}

// WithLogger installs l. A nil logger has no effect.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithDim labels the reduction with the column dimension.
func WithDim(d int) Option {
	return func(o *Options) {
		o.Dim = d
	}
}

// WithValidation enables input validation of the boundary columns.
func WithValidation(on bool) Option {
	return func(o *Options) {
		o.Validate = on
	}
}
