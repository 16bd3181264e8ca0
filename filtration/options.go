// SPDX-License-Identifier: MIT

package filtration

import "go.uber.org/zap"

// Option configures a Cubical filtration.
type Option func(*Options)

// Options holds the effective configuration of a Cubical.
type Options struct {
	// Logger receives stage-boundary debug messages. Never nil after
	// option resolution; defaults to zap.NewNop().
	Logger *zap.Logger
}

// DefaultOptions returns Options with a no-op logger.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}

// WithLogger installs l as the debug logger. A nil logger has no effect.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
