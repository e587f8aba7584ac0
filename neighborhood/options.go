// SPDX-License-Identifier: MIT

// Package neighborhood: functional options for the Weighter.
//
// Option setters only record values. Validation happens once, in New, so a
// bad parameter is reported as an error rather than a panic and no matrix
// is allocated before every parameter is known to be usable.
package neighborhood

import (
	"github.com/katalvlaran/weightmatrix/matrix"
	"github.com/katalvlaran/weightmatrix/prim_kruskal"
)

// DefaultZeroDiagonal forces W[i,i] = 0 after combination.
const DefaultZeroDiagonal = true

// Option configures a Weighter.
type Option func(*Options)

// Options holds the resolved configuration of a Weighter.
type Options struct {
	threshold    float64
	hasThreshold bool
	alpha        float64
	hasAlpha     bool
	beta         float64
	hasBeta      bool
	zeroDiagonal bool
	spanning     SpanningTreeFunc
	strict       bool
	eps          float64
}

// WithThreshold fixes the connectivity threshold t instead of deriving it
// from the spanning tree. t must be finite and non-negative.
func WithThreshold(t float64) Option {
	return func(o *Options) { o.threshold, o.hasThreshold = t, true }
}

// WithAlpha sets the concave-down exponent (required by MethodConcaveDown).
func WithAlpha(alpha float64) Option {
	return func(o *Options) { o.alpha, o.hasAlpha = alpha, true }
}

// WithBeta sets the concave-up exponent (required by MethodConcaveUp).
func WithBeta(beta float64) Option {
	return func(o *Options) { o.beta, o.hasBeta = beta, true }
}

// WithZeroDiagonal controls whether W's diagonal is forced to zero.
func WithZeroDiagonal(zero bool) Option {
	return func(o *Options) { o.zeroDiagonal = zero }
}

// WithSpanningTree replaces the spanning-tree strategy used for the default
// threshold. A nil f restores prim_kruskal.EdgeDistances.
func WithSpanningTree(f SpanningTreeFunc) Option {
	return func(o *Options) {
		if f == nil {
			f = prim_kruskal.EdgeDistances
		}
		o.spanning = f
	}
}

// WithStrictDistances additionally requires D to be symmetric and to have a
// zero diagonal, both within the configured epsilon.
func WithStrictDistances() Option {
	return func(o *Options) { o.strict = true }
}

// WithEpsilon sets the tolerance of the strict checks. eps must be finite
// and non-negative.
func WithEpsilon(eps float64) Option {
	return func(o *Options) { o.eps = eps }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		zeroDiagonal: DefaultZeroDiagonal,
		spanning:     prim_kruskal.EdgeDistances,
		eps:          matrix.DefaultEpsilon,
	}
}

// gatherOptions applies setters on top of the defaults; nil setters are skipped.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// Threshold returns the fixed threshold and whether one was supplied.
func (o Options) Threshold() (float64, bool) { return o.threshold, o.hasThreshold }

// ZeroDiagonal reports whether W's diagonal is forced to zero.
func (o Options) ZeroDiagonal() bool { return o.zeroDiagonal }

// Strict reports whether symmetry and a zero diagonal are enforced.
func (o Options) Strict() bool { return o.strict }
