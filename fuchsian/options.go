// SPDX-License-Identifier: MIT

package fuchsian

import (
	"github.com/katalvlaran/hyperbolic/numeric"
)

// Option customizes group construction.
type Option func(*Options)

// Options is the resolved construction configuration.
type Options struct {
	// Tolerance is passed to the admission check. Exact by default.
	Tolerance numeric.Tolerance

	// OnReject is called for every dropped input, in input order.
	OnReject func(index int, err error)
}

// DefaultOptions returns exact admission with no reject hook.
func DefaultOptions() Options {
	return Options{Tolerance: numeric.Exact}
}

// WithTolerance sets the admission tolerance.
func WithTolerance(tol numeric.Tolerance) Option {
	return func(o *Options) {
		o.Tolerance = tol
	}
}

// WithOnReject installs a hook receiving each dropped input's index and reason.
// Panics on nil.
func WithOnReject(fn func(index int, err error)) Option {
	if fn == nil {
		panic("fuchsian: WithOnReject(nil)")
	}
	return func(o *Options) {
		o.OnReject = fn
	}
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
