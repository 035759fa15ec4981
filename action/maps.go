// SPDX-License-Identifier: MIT
// Package: hyperbolic/action
//
// maps.go: the four concrete maps of a transformation on ℍ and its boundary.
//
// Poles:
//   • MapPoint divides through; the pole value is whatever Complex.Div gives.
//   • MapBoundary and MapHorocycle compare denominators against tol and branch
//     to ∞ (or to the height-line form) when they fall inside it.
//   • MapGeodesic inherits the boundary branch for both endpoints.
//
// Scalars:
//   • Integer inputs divide with truncation; exactness is only guaranteed for
//     transformations whose entries keep every quotient integral.

package action

import (
	"github.com/katalvlaran/hyperbolic/geometry"
	"github.com/katalvlaran/hyperbolic/moebius"
	"github.com/katalvlaran/hyperbolic/numeric"
)

// MapPoint returns (a·z + b) / (c·z + d). At the pole the result follows
// Complex.Div: NaN components for floats, the origin for integers. Points of
// the upper half-plane never hit the pole.
func MapPoint[T numeric.Scalar](m moebius.Transformation[T], z geometry.Complex[T]) geometry.Complex[T] {
	num := z.Scale(m.A).Add(geometry.Real(m.B))
	den := z.Scale(m.C).Add(geometry.Real(m.D))

	return num.Div(den)
}

// MapBoundary maps a boundary point, sending near-zero denominators to ∞.
func MapBoundary[T numeric.Scalar](m moebius.Transformation[T], b geometry.BoundaryPoint[T], tol numeric.Tolerance) geometry.BoundaryPoint[T] {
	t, ok := b.Value()
	if !ok {
		if numeric.IsZero(m.C, tol) {
			return geometry.Infinity[T]()
		}
		return geometry.Regular(m.A / m.C)
	}

	denom := m.C*t + m.D
	if numeric.IsZero(denom, tol) {
		return geometry.Infinity[T]()
	}

	return geometry.Regular((m.A*t + m.B) / denom)
}

// MapGeodesic maps both endpoints of g. Endpoints closer than tol to the pole
// both go to ∞, so a loose tol can return a degenerate geodesic; see
// Geodesic.IsDegenerate.
func MapGeodesic[T numeric.Scalar](m moebius.Transformation[T], g geometry.Geodesic[T], tol numeric.Tolerance) geometry.Geodesic[T] {
	return g.Transform(func(b geometry.BoundaryPoint[T]) geometry.BoundaryPoint[T] {
		return MapBoundary(m, b, tol)
	})
}

// MapHorocycle maps a height line or a tangency circle.
func MapHorocycle[T numeric.Scalar](m moebius.Transformation[T], h geometry.Horocycle[T], tol numeric.Tolerance) geometry.Horocycle[T] {
	size := h.HeightOrDiameter()

	if h.IsLine() {
		if numeric.IsZero(m.C, tol) {
			// translation keeps the height; a ≠ d rescales it
			if numeric.IsZero(m.A-m.D, tol) {
				return h
			}
			return geometry.NewLine(m.A * m.A * size)
		}
		return geometry.NewCircle(m.A/m.C, numeric.One[T]()/(size*m.C*m.C))
	}

	touch, _ := h.BoundaryPoint().Value()
	denom := m.C*touch + m.D
	if numeric.IsZero(denom, tol) {
		return geometry.NewLine(numeric.One[T]() / (size * m.C * m.C))
	}

	return geometry.NewCircle((m.A*touch+m.B)/denom, size/(denom*denom))
}
