// SPDX-License-Identifier: MIT

package numeric

import (
	"math"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/floats/scalar"
)

// Scalar is the constraint for the real scalar types hyperbolic handles.
// Unsigned integers are excluded: negation must stay inside the type.
type Scalar interface {
	constraints.Signed | constraints.Float
}

// Zero returns the additive identity.
func Zero[T Scalar]() T {
	return 0
}

// One returns the multiplicative identity.
func One[T Scalar]() T {
	return 1
}

// Abs returns |x|. For the minimum value of a signed integer type the
// negation wraps and the result stays negative.
func Abs[T Scalar](x T) T {
	if x < 0 {
		return -x
	}

	return x
}

// IsZero reports whether x equals the additive identity under tol.
// With a threshold set it tests -eps <= x <= eps, otherwise x == 0.
// The bounds are checked on the float64 value, so the minimum integer of a
// type is not mistaken for zero.
func IsZero[T Scalar](x T, tol Tolerance) bool {
	if eps, ok := tol.Value(); ok {
		f := float64(x)
		return f <= eps && -f <= eps
	}

	return x == Zero[T]()
}

// IsOne reports whether x equals the multiplicative identity under tol.
func IsOne[T Scalar](x T, tol Tolerance) bool {
	return IsZero(x-One[T](), tol)
}

// ApproxEqual reports whether a and b agree within tol.
// Exact tolerance falls back to ==.
func ApproxEqual[T Scalar](a, b T, tol Tolerance) bool {
	if eps, ok := tol.Value(); ok {
		return scalar.EqualWithinAbs(float64(a), float64(b), eps)
	}

	return a == b
}

// SquareRoot returns sqrt(|x|). Taking the absolute value first keeps the
// call total; callers handle the sign separately. Integer scalars truncate.
func SquareRoot[T Scalar](x T) T {
	return T(math.Sqrt(float64(Abs(x))))
}

// Signed returns the sign of x as -1, 0 or 1. NaN is returned unchanged.
func Signed[T Scalar](x T) T {
	switch {
	case x > 0:
		return One[T]()
	case x < 0:
		return -One[T]()
	default:
		return x
	}
}

// IsPositive reports whether x is strictly greater than zero.
func IsPositive[T Scalar](x T) bool {
	return x > Zero[T]()
}

// IsExact reports whether T is an integer scalar, i.e. whether arithmetic
// in T is exact and division truncates.
func IsExact[T Scalar]() bool {
	var one, two T = 1, 2

	return one/two == 0
}

// Dist returns the distance |a-b| on the real line.
func Dist[T Scalar](a, b T) T {
	return Abs(a - b)
}

// Mid returns the midpoint (a+b)/2. For integer scalars there is in general
// no unique midpoint; the quotient truncates toward zero.
func Mid[T Scalar](a, b T) T {
	var two T = 2

	return (a + b) / two
}
