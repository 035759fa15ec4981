// SPDX-License-Identifier: MIT

package numeric

import (
	"math"
	"strconv"
)

// DefaultThreshold is the tolerance applied by near-degeneracy checks
// (division by ~0 in the group actions) when the caller does not choose one.
const DefaultThreshold = 1e-16

const panicToleranceInvalid = "numeric: Within: eps must be finite, non-negative"

// Tolerance is an optional threshold below which a value counts as zero.
// The zero value is Exact.
type Tolerance struct {
	eps float64 // >= 0 when set
	set bool
}

// Exact compares against the identities with ==.
var Exact = Tolerance{}

// Within returns a Tolerance treating |x| <= eps as zero.
// Panics on negative, NaN or infinite eps (programmer error).
func Within(eps float64) Tolerance {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicToleranceInvalid)
	}

	return Tolerance{eps: eps, set: true}
}

// Default returns Within(DefaultThreshold).
func Default() Tolerance {
	return Tolerance{eps: DefaultThreshold, set: true}
}

// Value reports the threshold and whether one is set.
func (t Tolerance) Value() (float64, bool) {
	return t.eps, t.set
}

// IsExact reports whether no threshold is set.
func (t Tolerance) IsExact() bool {
	return !t.set
}

// String renders "exact" or the threshold.
func (t Tolerance) String() string {
	if !t.set {
		return "exact"
	}

	return strconv.FormatFloat(t.eps, 'g', -1, 64)
}
