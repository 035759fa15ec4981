// SPDX-License-Identifier: MIT

package sl2

import (
	"errors"

	"github.com/katalvlaran/hyperbolic/moebius"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Messages are prefixed with "sl2: ...". ErrSingular keeps the moebius
// prefix because it is the same value, so errors.Is matches through either
// package. Constructors wrap with fmt.Errorf("Normalize: ...: %w", ErrX).
//
// ERROR PRIORITY (Normalize):
// singular -> orientation reversing -> inexact integer scale.
// Strict reports only ErrNotSpecialLinear, whatever the determinant.

var (
	// ErrSingular aliases moebius.ErrSingular: the input has no inverse under
	// the tolerance and cannot belong to the group.
	ErrSingular = moebius.ErrSingular

	// ErrOrientationReversing is returned when the determinant is not strictly
	// positive. A negative determinant cannot be fixed by a real rescale.
	ErrOrientationReversing = errors.New("sl2: determinant is not positive")

	// ErrInexactScale is returned for integer scalars whose determinant is not
	// one: 1/sqrt(det) is not representable.
	ErrInexactScale = errors.New("sl2: cannot rescale integer transformation to determinant one")

	// ErrNotSpecialLinear is returned by Strict when det != 1 under the tolerance.
	ErrNotSpecialLinear = errors.New("sl2: determinant is not one")
)
