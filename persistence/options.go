// SPDX-License-Identifier: MIT

package persistence

import (
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/cubepers/field"
)

// Defaults.
const (
	// DefaultThreshold drops only pairs of zero persistence.
	DefaultThreshold = 0.0
	// DefaultCheckOrder verifies that cell index order is a linear
	// extension of the filtration before reducing.
	DefaultCheckOrder = true
)

const panicThresholdInvalid = "persistence: WithThreshold: threshold must be finite, non-negative"

// Option configures Compute.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	threshold  float64
	logger     *zap.Logger
	sink       CertificateSink
	vertices   []field.Coord
	checkOrder bool
}

// WithThreshold keeps only pairs with persistence strictly above t.
// Panics if t is negative, NaN or infinite (programmer error).
func WithThreshold(t float64) Option {
	if t < 0 || math.IsNaN(t) || math.IsInf(t, 0) {
		panic(panicThresholdInvalid)
	}
	return func(o *Options) {
		o.threshold = t
	}
}

// WithLogger injects the logger used for the run. A nil logger has no effect.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithCertificateSink requests provenance certificates and hands each
// dimension's certificates to s before that dimension's data is dropped.
// A nil sink (the default) skips certificate construction.
func WithCertificateSink(s CertificateSink) Option {
	return func(o *Options) {
		o.sink = s
	}
}

// WithVertexList supplies a precomputed vertex filtration order, which must
// be a permutation of the grid coordinates.
func WithVertexList(vertices []field.Coord) Option {
	return func(o *Options) {
		o.vertices = vertices
	}
}

// WithOrderCheck toggles VerifyOrder on the filtration before reduction.
func WithOrderCheck(on bool) Option {
	return func(o *Options) {
		o.checkOrder = on
	}
}

func gatherOptions(opts []Option) Options {
	o := Options{
		threshold:  DefaultThreshold,
		logger:     zap.NewNop(),
		checkOrder: DefaultCheckOrder,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
