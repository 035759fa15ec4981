// SPDX-License-Identifier: MIT
// Package: hyperbolic/orbit
//
// orbit.go: the Sample driver and its result type.
//
// Contract:
//   • n ≥ 0 (else ErrNegativeCount); n == 0 returns an empty orbit.
//   • A group with no generators yields ErrNoGenerators before any work.
//   • Step i maps the point of step i-1 (base for i = 0) by pool[PickIndex(i)].
//   • The base itself is not recorded; Points has exactly n entries.
//   • OnStep, when set, runs after each append with (step, pool index).
//
// Complexity:
//   • Time: O(n) action applications plus O(len(gens)) to derive the pool.
//   • Space: O(n) for the recorded points.
//
// Determinism:
//   • Sequential mode is a pure function of (g, base, n, act).
//   • Random mode repeats exactly given WithRand or WithSeed; otherwise it
//     seeds from the clock.

package orbit

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/hyperbolic/action"
	"github.com/katalvlaran/hyperbolic/fuchsian"
	"github.com/katalvlaran/hyperbolic/numeric"
)

// Orbit is the sampled sequence of points, in visiting order.
type Orbit[S any] struct {
	Points []S
}

// Len returns the number of points.
func (o Orbit[S]) Len() int {
	return len(o.Points)
}

// Last returns the final point, or base when the orbit is empty.
func (o Orbit[S]) Last(base S) S {
	if len(o.Points) == 0 {
		return base
	}

	return o.Points[len(o.Points)-1]
}

// Sample walks n steps from base, applying one pool element per step.
func Sample[T numeric.Scalar, S any](
	g fuchsian.Group[T],
	base S,
	n int,
	act action.Action[T, S],
	opts ...Option,
) (Orbit[S], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Validate preconditions
	if g.IsEmpty() {
		return Orbit[S]{}, fmt.Errorf("Sample: %w", ErrNoGenerators)
	}
	if n < 0 {
		return Orbit[S]{}, fmt.Errorf("Sample: n=%d: %w", n, ErrNegativeCount)
	}
	if !o.Mode.Valid() {
		return Orbit[S]{}, fmt.Errorf("Sample: %s: %w", o.Mode, ErrUnknownMode)
	}

	rng := o.Rand
	if o.Mode == Random && rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	// Stage 1: picking pool
	pool := Derive(g.Generators())

	// Stage 2+3: pick and act
	points := make([]S, 0, n)
	current := base
	for step := 0; step < n; step++ {
		idx := PickIndex(len(pool), o.Mode, step, rng)
		current = act.Map(pool[idx], current)
		points = append(points, current)
		if o.OnStep != nil {
			o.OnStep(step, idx)
		}
	}

	return Orbit[S]{Points: points}, nil
}
