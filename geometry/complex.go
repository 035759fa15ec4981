// SPDX-License-Identifier: MIT

package geometry

import (
	"fmt"

	"github.com/katalvlaran/hyperbolic/numeric"
)

// Complex is Re + i·Im over a real scalar. Integer scalars truncate on
// division, like the scalar itself.
type Complex[T numeric.Scalar] struct {
	Re T
	Im T
}

// NewComplex returns re + i·im.
func NewComplex[T numeric.Scalar](re, im T) Complex[T] {
	return Complex[T]{Re: re, Im: im}
}

// Real returns x + 0i.
func Real[T numeric.Scalar](x T) Complex[T] {
	return Complex[T]{Re: x}
}

// Add returns z + w.
func (z Complex[T]) Add(w Complex[T]) Complex[T] {
	return Complex[T]{Re: z.Re + w.Re, Im: z.Im + w.Im}
}

// Sub returns z - w.
func (z Complex[T]) Sub(w Complex[T]) Complex[T] {
	return Complex[T]{Re: z.Re - w.Re, Im: z.Im - w.Im}
}

// Mul returns z·w.
func (z Complex[T]) Mul(w Complex[T]) Complex[T] {
	return Complex[T]{
		Re: z.Re*w.Re - z.Im*w.Im,
		Im: z.Re*w.Im + z.Im*w.Re,
	}
}

// Scale returns s·z.
func (z Complex[T]) Scale(s T) Complex[T] {
	return Complex[T]{Re: s * z.Re, Im: s * z.Im}
}

// Conj returns the complex conjugate.
func (z Complex[T]) Conj() Complex[T] {
	return Complex[T]{Re: z.Re, Im: -z.Im}
}

// NormSqr returns Re² + Im².
func (z Complex[T]) NormSqr() T {
	return z.Re*z.Re + z.Im*z.Im
}

// Div returns z / w as z·conj(w) / |w|². A zero divisor yields NaN or Inf
// components for float scalars and the origin for integer scalars, which
// have no value to stand for the pole.
func (z Complex[T]) Div(w Complex[T]) Complex[T] {
	n := z.Mul(w.Conj())
	d := w.NormSqr()
	if d == 0 && numeric.IsExact[T]() {
		return Complex[T]{}
	}

	return Complex[T]{Re: n.Re / d, Im: n.Im / d}
}

// Equal reports componentwise equality.
func (z Complex[T]) Equal(w Complex[T]) bool {
	return z.Re == w.Re && z.Im == w.Im
}

// ApproxEqual reports componentwise equality within tol.
func (z Complex[T]) ApproxEqual(w Complex[T], tol numeric.Tolerance) bool {
	return numeric.ApproxEqual(z.Re, w.Re, tol) && numeric.ApproxEqual(z.Im, w.Im, tol)
}

// String renders "(re, im)".
func (z Complex[T]) String() string {
	return fmt.Sprintf("(%v, %v)", z.Re, z.Im)
}
