// SPDX-License-Identifier: MIT

package geometry

import (
	"fmt"

	"github.com/katalvlaran/hyperbolic/numeric"
)

// BoundaryPoint is ∞ or a regular point t of the real line.
// The zero value is Regular(0).
type BoundaryPoint[T numeric.Scalar] struct {
	value    T
	infinite bool
}

// Infinity returns the point at infinity.
func Infinity[T numeric.Scalar]() BoundaryPoint[T] {
	return BoundaryPoint[T]{infinite: true}
}

// Regular returns the boundary point t.
func Regular[T numeric.Scalar](t T) BoundaryPoint[T] {
	return BoundaryPoint[T]{value: t}
}

// IsInfinity reports whether b is ∞.
func (b BoundaryPoint[T]) IsInfinity() bool {
	return b.infinite
}

// Value returns t and true for Regular(t), or zero and false for ∞.
func (b BoundaryPoint[T]) Value() (T, bool) {
	if b.infinite {
		var zero T
		return zero, false
	}

	return b.value, true
}

// Equal is structural: ∞ == ∞ and Regular(a) == Regular(b) iff a == b.
func (b BoundaryPoint[T]) Equal(o BoundaryPoint[T]) bool {
	if b.infinite || o.infinite {
		return b.infinite == o.infinite
	}

	return b.value == o.value
}

// ApproxEqual compares regular values within tol; ∞ only equals ∞.
func (b BoundaryPoint[T]) ApproxEqual(o BoundaryPoint[T], tol numeric.Tolerance) bool {
	if b.infinite || o.infinite {
		return b.infinite == o.infinite
	}

	return numeric.ApproxEqual(b.value, o.value, tol)
}

// String renders "∞" or the value.
func (b BoundaryPoint[T]) String() string {
	if b.infinite {
		return "∞"
	}

	return fmt.Sprint(b.value)
}
