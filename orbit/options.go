// SPDX-License-Identifier: MIT

package orbit

import (
	"math/rand"
)

// Option customizes Sample.
type Option func(*Options)

// Options is the resolved sampling configuration.
type Options struct {
	Mode PickMode   // Sequential by default
	Rand *rand.Rand // nil: Random mode seeds its own source

	// OnStep is called after each point with the step and the pool index used.
	OnStep func(step, pick int)
}

// DefaultOptions returns Sequential mode with no RNG and no hook.
func DefaultOptions() Options {
	return Options{Mode: Sequential}
}

// WithMode sets the pick mode. Unknown modes make Sample fail with
// ErrUnknownMode.
func WithMode(m PickMode) Option {
	return func(o *Options) {
		o.Mode = m
	}
}

// WithRand supplies the RNG for Random mode. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("orbit: WithRand(nil)")
	}
	return func(o *Options) {
		o.Rand = r
	}
}

// WithSeed creates a deterministic RNG for Random mode.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithOnStep installs a per-step hook. Panics on nil.
func WithOnStep(fn func(step, pick int)) Option {
	if fn == nil {
		panic("orbit: WithOnStep(nil)")
	}
	return func(o *Options) {
		o.OnStep = fn
	}
}
