// SPDX-License-Identifier: MIT

package action

import (
	"github.com/katalvlaran/hyperbolic/geometry"
	"github.com/katalvlaran/hyperbolic/group"
	"github.com/katalvlaran/hyperbolic/numeric"
	"github.com/katalvlaran/hyperbolic/sl2"
)

// Action is a group action of normalized transformations over T on a space S.
type Action[T numeric.Scalar, S any] interface {
	Map(g sl2.Transformation[T], x S) S
}

// Func adapts a plain function to Action.
type Func[T numeric.Scalar, S any] func(g sl2.Transformation[T], x S) S

// Map calls f(g, x).
func (f Func[T, S]) Map(g sl2.Transformation[T], x S) S {
	return f(g, x)
}

// Points acts on the complex plane.
func Points[T numeric.Scalar]() Action[T, geometry.Complex[T]] {
	return Func[T, geometry.Complex[T]](func(g sl2.Transformation[T], z geometry.Complex[T]) geometry.Complex[T] {
		return MapPoint(g.Transformation(), z)
	})
}

// Boundary acts on ℝ ∪ {∞}.
func Boundary[T numeric.Scalar](tol numeric.Tolerance) Action[T, geometry.BoundaryPoint[T]] {
	return Func[T, geometry.BoundaryPoint[T]](func(g sl2.Transformation[T], b geometry.BoundaryPoint[T]) geometry.BoundaryPoint[T] {
		return MapBoundary(g.Transformation(), b, tol)
	})
}

// Geodesics acts on oriented geodesics.
func Geodesics[T numeric.Scalar](tol numeric.Tolerance) Action[T, geometry.Geodesic[T]] {
	return Func[T, geometry.Geodesic[T]](func(g sl2.Transformation[T], x geometry.Geodesic[T]) geometry.Geodesic[T] {
		return MapGeodesic(g.Transformation(), x, tol)
	})
}

// Horocycles acts on horocycles.
func Horocycles[T numeric.Scalar](tol numeric.Tolerance) Action[T, geometry.Horocycle[T]] {
	return Func[T, geometry.Horocycle[T]](func(g sl2.Transformation[T], h geometry.Horocycle[T]) geometry.Horocycle[T] {
		return MapHorocycle(g.Transformation(), h, tol)
	})
}

// IdentityCheck reports whether the identity fixes x.
func IdentityCheck[T numeric.Scalar, S any](act Action[T, S], x S, eq group.Equality[S]) bool {
	return eq(act.Map(sl2.Identity[T](), x), x)
}

// CompatibilityCheck reports whether g(h(x)) == (g·h)(x).
func CompatibilityCheck[T numeric.Scalar, S any](act Action[T, S], g, h sl2.Transformation[T], x S, eq group.Equality[S]) bool {
	return eq(act.Map(g, act.Map(h, x)), act.Map(g.Combine(h), x))
}
