// SPDX-License-Identifier: MIT

package geometry

import (
	"math"

	"golang.org/x/exp/constraints"
)

// HyperbolicDistance returns 2·asinh(|z-w| / (2·sqrt(Im z·Im w))).
// Panics unless both imaginary parts are strictly positive.
func HyperbolicDistance[T constraints.Float](z, w Complex[T]) T {
	if !(z.Im > 0 && w.Im > 0) {
		panic(panicOutsideHalfPlane)
	}

	d := z.Sub(w)
	euclid := math.Hypot(float64(d.Re), float64(d.Im))
	ratio := euclid / (2 * math.Sqrt(float64(z.Im)*float64(w.Im)))

	return T(2 * math.Asinh(ratio))
}
