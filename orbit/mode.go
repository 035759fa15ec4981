// SPDX-License-Identifier: MIT

package orbit

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/katalvlaran/hyperbolic/numeric"
	"github.com/katalvlaran/hyperbolic/sl2"
)

// PickMode selects how generators are drawn from the pool.
type PickMode int

const (
	// Sequential cycles through the pool in order. Default.
	Sequential PickMode = iota
	// Random draws uniformly and independently at each step.
	Random
)

// String returns "sequential", "random" or "PickMode(n)".
func (m PickMode) String() string {
	switch m {
	case Sequential:
		return "sequential"
	case Random:
		return "random"
	default:
		return fmt.Sprintf("PickMode(%d)", int(m))
	}
}

// Valid reports whether m is a known mode.
func (m PickMode) Valid() bool {
	return m == Sequential || m == Random
}

// ParseMode maps "sequential" and "random" (case-insensitive, trimmed) to a
// mode. The empty string means Sequential.
func ParseMode(s string) (PickMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "sequential":
		return Sequential, nil
	case "random":
		return Random, nil
	default:
		return Sequential, fmt.Errorf("ParseMode: %q: %w", s, ErrUnknownMode)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m PickMode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("MarshalText: %d: %w", int(m), ErrUnknownMode)
	}

	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseMode.
func (m *PickMode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed

	return nil
}

// Derive returns the picking pool: the generators followed by their inverses
// when there is more than one generator, the generator alone otherwise.
func Derive[T numeric.Scalar](gens []sl2.Transformation[T]) []sl2.Transformation[T] {
	if len(gens) <= 1 {
		out := make([]sl2.Transformation[T], len(gens))
		copy(out, gens)
		return out
	}

	pool := make([]sl2.Transformation[T], 0, 2*len(gens))
	pool = append(pool, gens...)
	for _, g := range gens {
		pool = append(pool, g.Inverse())
	}

	return pool
}

// PickIndex returns the pool index chosen at step for a pool of size n > 0.
// Sequential ignores rng. Random with a nil rng draws from the process-wide
// math/rand source.
func PickIndex(n int, mode PickMode, step int, rng *rand.Rand) int {
	if mode == Random {
		if rng == nil {
			return rand.Intn(n)
		}
		return rng.Intn(n)
	}

	return step % n
}

// Pick returns pool[PickIndex(len(pool), mode, step, rng)].
// Panics on an empty pool.
func Pick[E any](pool []E, mode PickMode, step int, rng *rand.Rand) E {
	return pool[PickIndex(len(pool), mode, step, rng)]
}
