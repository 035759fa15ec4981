// SPDX-License-Identifier: MIT

// Package sl2 wraps Möbius transformations of determinant one, the group
// SL(2,R) acting by orientation-preserving isometries on the upper half-plane.
//
// A Transformation can only be obtained through Normalize (rescale any
// invertible, orientation-preserving matrix) or Strict (accept matrices that
// already have determinant one). Its matrix is unexported and reachable only
// through read-only accessors, so the invariant det == 1 established at
// construction holds for the value's whole life.
//
// Normalize blueprint:
//
//	Stage 1 (Validate): det ≠ 0 under tol, else ErrSingular.
//	Stage 2 (Orient):   det > 0, else ErrOrientationReversing.
//	Stage 3 (Rescale):  m · (1/sqrt(det)); det scales by s², so the result
//	                    has determinant one while z ↦ (az+b)/(cz+d) is unchanged.
package sl2

import (
	"fmt"

	"github.com/katalvlaran/hyperbolic/group"
	"github.com/katalvlaran/hyperbolic/moebius"
	"github.com/katalvlaran/hyperbolic/numeric"
)

// Transformation is a Möbius transformation with determinant one.
type Transformation[T numeric.Scalar] struct {
	m moebius.Transformation[T]
}

// Transformation satisfies the group interface for every scalar type.
var (
	_ group.Group[Transformation[float64]] = Transformation[float64]{}
	_ group.Group[Transformation[int]]     = Transformation[int]{}
)

// IsSpecialLinear reports whether det(m) == 1 under tol.
func IsSpecialLinear[T numeric.Scalar](m moebius.Transformation[T], tol numeric.Tolerance) bool {
	return numeric.IsOne(m.Determinant(), tol)
}

// Normalize rescales m to determinant one.
// Returns ErrSingular, ErrOrientationReversing or, for integer scalars with
// det != 1, ErrInexactScale.
func Normalize[T numeric.Scalar](m moebius.Transformation[T], tol numeric.Tolerance) (Transformation[T], error) {
	// Stage 1: invertibility under the caller's tolerance
	if !m.IsInvertible(tol) {
		return Transformation[T]{}, fmt.Errorf("Normalize: %s: %w", m, ErrSingular)
	}

	// Stage 2: orientation; a sign flip would change the group element
	det := m.Determinant()
	if !numeric.IsPositive(det) {
		return Transformation[T]{}, fmt.Errorf("Normalize: %s det=%v: %w", m, det, ErrOrientationReversing)
	}
	if numeric.IsExact[T]() && det != numeric.One[T]() {
		return Transformation[T]{}, fmt.Errorf("Normalize: %s det=%v: %w", m, det, ErrInexactScale)
	}

	// Stage 3: canonical representative
	scalar := numeric.One[T]() / numeric.SquareRoot(det)

	return Transformation[T]{m: m.Scale(scalar)}, nil
}

// Strict accepts m only if det(m) == 1 under tol; no rescaling is done.
func Strict[T numeric.Scalar](m moebius.Transformation[T], tol numeric.Tolerance) (Transformation[T], error) {
	subset, err := group.Restrict(m, func(x moebius.Transformation[T]) bool {
		return IsSpecialLinear(x, tol)
	})
	if err != nil {
		return Transformation[T]{}, fmt.Errorf("Strict: det=%v: %w: %w", m.Determinant(), ErrNotSpecialLinear, err)
	}

	return Transformation[T]{m: subset.Value()}, nil
}

// Identity returns [1, 0; 0, 1].
func Identity[T numeric.Scalar]() Transformation[T] {
	return Transformation[T]{m: moebius.Identity[T]()}
}

// Combine returns g·h. The determinant is multiplicative, so the product
// stays in the group.
func (g Transformation[T]) Combine(h Transformation[T]) Transformation[T] {
	return Transformation[T]{m: g.m.Mul(h.m)}
}

// Inverse returns the adjugate [d, -b; -c, a], which is the inverse because
// det == 1.
func (g Transformation[T]) Inverse() Transformation[T] {
	return Transformation[T]{m: moebius.New(g.m.D, -g.m.B, -g.m.C, g.m.A)}
}

// Transformation returns a copy of the underlying matrix.
func (g Transformation[T]) Transformation() moebius.Transformation[T] {
	return g.m
}

// A returns the top-left entry.
func (g Transformation[T]) A() T { return g.m.A }

// B returns the top-right entry.
func (g Transformation[T]) B() T { return g.m.B }

// C returns the bottom-left entry.
func (g Transformation[T]) C() T { return g.m.C }

// D returns the bottom-right entry.
func (g Transformation[T]) D() T { return g.m.D }

// Determinant returns det of the underlying matrix (one up to rounding).
func (g Transformation[T]) Determinant() T {
	return g.m.Determinant()
}

// Equal reports entrywise equality.
func (g Transformation[T]) Equal(h Transformation[T]) bool {
	return g.m.Equal(h.m)
}

// ApproxEqual reports entrywise equality within tol.
func (g Transformation[T]) ApproxEqual(h Transformation[T], tol numeric.Tolerance) bool {
	return g.m.ApproxEqual(h.m, tol)
}

// String renders the underlying matrix.
func (g Transformation[T]) String() string {
	return g.m.String()
}
