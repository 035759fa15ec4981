// Package numeric is the scalar layer every other package of hyperbolic is
// generic over.
//
// What & Why:
//
//	Möbius transformations, boundary points and horocycles are written once
//	and instantiated for several real scalar types. Integer scalars are
//	exact, floating scalars are not; both meet here under one constraint:
//
//	  • Scalar     — signed integers and floats (golang.org/x/exp/constraints)
//	  • Zero / One — additive and multiplicative identities
//	  • IsZero     — equality-to-identity under an optional Tolerance
//	  • SquareRoot — sqrt(|x|), sign handled by the caller
//	  • Signed / IsPositive — sign tests
//
// Tolerance:
//
//	A Tolerance is either Exact (absent, compare with ==) or Within(eps),
//	in which case |x| <= eps counts as zero. DefaultThreshold (1e-16) is the
//	fixed threshold used by the group actions unless the caller overrides it.
//
// Every function in this package is pure and total; only the Within option
// constructor panics, and only on a nonsensical eps.
package numeric
