// SPDX-License-Identifier: MIT
// Package: hyperbolic/geometry
//
// Package geometry models the objects of the upper half-plane on which
// normalized Möbius transformations act:
//
//   - Complex:       a point z = Re + i·Im of the plane.
//   - BoundaryPoint: a point of the ideal boundary ℝ ∪ {∞}.
//   - Geodesic:      an oriented pair of distinct boundary points, with its
//     geometric form GeodesicLine (half-line or half-circle).
//   - Horocycle:     a height line Im z = h (tangent at ∞) or a circle of a
//     given diameter tangent to the real line at a boundary point.
//
// All types are immutable values. Constructors that carry an invariant
// (NewGeodesic) return an error; the others accept any scalar.
//
// Horocycle sizes are not validated: a non-positive height or diameter is
// representable and IsCanonical reports it.
//
// HyperbolicDistance is defined on the upper half-plane only and panics on
// points with a non-positive imaginary part.
package geometry
