// SPDX-License-Identifier: MIT
//
// File: transformation.go
// Role: 2×2 matrix value type with ring operations and tolerant comparisons.
// Policy:
//   - Values are immutable; every operation returns a new Transformation.
//   - Only Inverse can fail, and it fails with ErrSingular.
//   - Comparisons take an explicit numeric.Tolerance, never a hidden epsilon.

package moebius

import (
	"fmt"

	"github.com/katalvlaran/hyperbolic/numeric"
)

// Transformation is the matrix [A, B; C, D], read as z ↦ (A·z+B)/(C·z+D).
type Transformation[T numeric.Scalar] struct {
	A, B T // top row
	C, D T // bottom row
}

// New returns the transformation [a, b; c, d].
func New[T numeric.Scalar](a, b, c, d T) Transformation[T] {
	return Transformation[T]{A: a, B: b, C: c, D: d}
}

// Zero returns the all-zero matrix, the additive identity.
func Zero[T numeric.Scalar]() Transformation[T] {
	return Transformation[T]{}
}

// Identity returns [1, 0; 0, 1], the identity for composition.
func Identity[T numeric.Scalar]() Transformation[T] {
	return Transformation[T]{A: numeric.One[T](), D: numeric.One[T]()}
}

// Determinant returns A·D - B·C.
func (m Transformation[T]) Determinant() T {
	return m.A*m.D - m.B*m.C
}

// SquaredSum returns A²+B²+C²+D², the squared length of m in the vector
// space of 2×2 matrices. Used as a distance-from-zero measure.
func (m Transformation[T]) SquaredSum() T {
	return m.A*m.A + m.B*m.B + m.C*m.C + m.D*m.D
}

// IsInvertible reports whether the determinant is non-zero under tol.
func (m Transformation[T]) IsInvertible(tol numeric.Tolerance) bool {
	return !numeric.IsZero(m.Determinant(), tol)
}

// Inverse returns [D, -B; -C, A] / det.
// Returns ErrSingular if m is not invertible under tol.
func (m Transformation[T]) Inverse(tol numeric.Tolerance) (Transformation[T], error) {
	det := m.Determinant()
	if numeric.IsZero(det, tol) {
		return Transformation[T]{}, fmt.Errorf("Inverse: det(%s)=%v: %w", m, det, ErrSingular)
	}

	return Transformation[T]{
		A: m.D / det,
		B: -m.B / det,
		C: -m.C / det,
		D: m.A / det,
	}, nil
}

// Add returns the entrywise sum m + o.
func (m Transformation[T]) Add(o Transformation[T]) Transformation[T] {
	return Transformation[T]{A: m.A + o.A, B: m.B + o.B, C: m.C + o.C, D: m.D + o.D}
}

// Neg returns -m.
func (m Transformation[T]) Neg() Transformation[T] {
	return Transformation[T]{A: -m.A, B: -m.B, C: -m.C, D: -m.D}
}

// Sub returns m + (-o).
func (m Transformation[T]) Sub(o Transformation[T]) Transformation[T] {
	return m.Add(o.Neg())
}

// Mul returns the matrix product m·o, i.e. the composition "apply o, then m".
func (m Transformation[T]) Mul(o Transformation[T]) Transformation[T] {
	return Transformation[T]{
		A: m.A*o.A + m.B*o.C,
		B: m.A*o.B + m.B*o.D,
		C: m.C*o.A + m.D*o.C,
		D: m.C*o.B + m.D*o.D,
	}
}

// Scale returns s·m. The action of m on points is unchanged by any
// non-zero s; only the matrix representative changes.
func (m Transformation[T]) Scale(s T) Transformation[T] {
	return Transformation[T]{A: s * m.A, B: s * m.B, C: s * m.C, D: s * m.D}
}

// IsZero reports whether every entry is zero under tol.
func (m Transformation[T]) IsZero(tol numeric.Tolerance) bool {
	return numeric.IsZero(m.A, tol) &&
		numeric.IsZero(m.B, tol) &&
		numeric.IsZero(m.C, tol) &&
		numeric.IsZero(m.D, tol)
}

// IsOne reports whether m is the identity matrix under tol.
func (m Transformation[T]) IsOne(tol numeric.Tolerance) bool {
	return numeric.IsOne(m.A, tol) &&
		numeric.IsZero(m.B, tol) &&
		numeric.IsZero(m.C, tol) &&
		numeric.IsOne(m.D, tol)
}

// Equal reports entrywise equality.
func (m Transformation[T]) Equal(o Transformation[T]) bool {
	return m == o
}

// ApproxEqual reports entrywise equality within tol.
func (m Transformation[T]) ApproxEqual(o Transformation[T], tol numeric.Tolerance) bool {
	return numeric.ApproxEqual(m.A, o.A, tol) &&
		numeric.ApproxEqual(m.B, o.B, tol) &&
		numeric.ApproxEqual(m.C, o.C, tol) &&
		numeric.ApproxEqual(m.D, o.D, tol)
}

// Entries returns (A, B, C, D) in row-major order.
func (m Transformation[T]) Entries() [4]T {
	return [4]T{m.A, m.B, m.C, m.D}
}

// String renders m as "MT[a, b; c, d]".
func (m Transformation[T]) String() string {
	return fmt.Sprintf("MT[%v, %v; %v, %v]", m.A, m.B, m.C, m.D)
}
