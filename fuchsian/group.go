// SPDX-License-Identifier: MIT

package fuchsian

import (
	"strings"

	"github.com/katalvlaran/hyperbolic/moebius"
	"github.com/katalvlaran/hyperbolic/numeric"
	"github.com/katalvlaran/hyperbolic/sl2"
)

// Group is an ordered list of generators. Immutable after construction and
// safe for concurrent readers.
type Group[T numeric.Scalar] struct {
	generators []sl2.Transformation[T]
}

// admit converts one raw input or reports why it is dropped.
type admit[T numeric.Scalar] func(m moebius.Transformation[T], tol numeric.Tolerance) (sl2.Transformation[T], error)

// NewStrict keeps the inputs whose determinant is one under the tolerance.
func NewStrict[T numeric.Scalar](raw []moebius.Transformation[T], opts ...Option) Group[T] {
	return build(raw, sl2.Strict[T], resolve(opts))
}

// NewProjected rescales each invertible, orientation-preserving input to
// determinant one and drops the rest.
func NewProjected[T numeric.Scalar](raw []moebius.Transformation[T], opts ...Option) Group[T] {
	return build(raw, sl2.Normalize[T], resolve(opts))
}

// FromGenerators wraps already normalized elements.
func FromGenerators[T numeric.Scalar](gens ...sl2.Transformation[T]) Group[T] {
	out := make([]sl2.Transformation[T], len(gens))
	copy(out, gens)

	return Group[T]{generators: out}
}

func build[T numeric.Scalar](raw []moebius.Transformation[T], fn admit[T], o Options) Group[T] {
	gens := make([]sl2.Transformation[T], 0, len(raw))
	for i, m := range raw {
		g, err := fn(m, o.Tolerance)
		if err != nil {
			if o.OnReject != nil {
				o.OnReject(i, err)
			}
			continue
		}
		gens = append(gens, g)
	}

	return Group[T]{generators: gens}
}

// Generators returns a copy of the generator list.
func (g Group[T]) Generators() []sl2.Transformation[T] {
	out := make([]sl2.Transformation[T], len(g.generators))
	copy(out, g.generators)

	return out
}

// Len returns the number of generators.
func (g Group[T]) Len() int {
	return len(g.generators)
}

// IsEmpty reports whether no input was admitted.
func (g Group[T]) IsEmpty() bool {
	return len(g.generators) == 0
}

// Inverses returns the generator inverses in generator order.
func (g Group[T]) Inverses() []sl2.Transformation[T] {
	out := make([]sl2.Transformation[T], len(g.generators))
	for i, x := range g.generators {
		out[i] = x.Inverse()
	}

	return out
}

// String renders "Fuchsian{MT[...], MT[...]}".
func (g Group[T]) String() string {
	var sb strings.Builder
	sb.WriteString("Fuchsian{")
	for i, x := range g.generators {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(x.String())
	}
	sb.WriteString("}")

	return sb.String()
}
