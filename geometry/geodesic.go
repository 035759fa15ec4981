// SPDX-License-Identifier: MIT
// Package: hyperbolic/geometry
//
// geodesic.go: oriented geodesics between two boundary points.
//
// Contract:
//   • NewGeodesic refuses equal endpoints with ErrDegenerateGeodesic.
//   • Transform does not re-validate; IsDegenerate reports a collapse.
//   • Line gives the half-line form when an endpoint is ∞, else the
//     half-circle centered at the endpoint midpoint.

package geometry

import (
	"fmt"

	"github.com/katalvlaran/hyperbolic/numeric"
)

// Geodesic is an oriented geodesic given by two distinct boundary points.
type Geodesic[T numeric.Scalar] struct {
	start BoundaryPoint[T]
	end   BoundaryPoint[T]
}

// NewGeodesic returns the geodesic from start to end.
// Returns ErrDegenerateGeodesic if start equals end.
func NewGeodesic[T numeric.Scalar](start, end BoundaryPoint[T]) (Geodesic[T], error) {
	if start.Equal(end) {
		return Geodesic[T]{}, fmt.Errorf("NewGeodesic: %s: %w", start, ErrDegenerateGeodesic)
	}

	return Geodesic[T]{start: start, end: end}, nil
}

// Start returns the first endpoint.
func (g Geodesic[T]) Start() BoundaryPoint[T] { return g.start }

// End returns the second endpoint.
func (g Geodesic[T]) End() BoundaryPoint[T] { return g.end }

// Endpoints returns (start, end).
func (g Geodesic[T]) Endpoints() (BoundaryPoint[T], BoundaryPoint[T]) {
	return g.start, g.end
}

// Reverse returns the same geodesic with the opposite orientation.
func (g Geodesic[T]) Reverse() Geodesic[T] {
	return Geodesic[T]{start: g.end, end: g.start}
}

// Transform maps both endpoints through f. The result is not re-validated:
// when f is only a bijection up to a tolerance, as a boundary action with a
// loose threshold is, two close endpoints may land on the same point.
// Check IsDegenerate before relying on a transformed geodesic.
func (g Geodesic[T]) Transform(f func(BoundaryPoint[T]) BoundaryPoint[T]) Geodesic[T] {
	return Geodesic[T]{start: f(g.start), end: f(g.end)}
}

// IsDegenerate reports whether both endpoints coincide. NewGeodesic never
// returns such a value; only Transform can produce one.
func (g Geodesic[T]) IsDegenerate() bool {
	return g.start.Equal(g.end)
}

// Equal compares endpoints in order.
func (g Geodesic[T]) Equal(o Geodesic[T]) bool {
	return g.start.Equal(o.start) && g.end.Equal(o.end)
}

// ApproxEqual compares endpoints in order within tol.
func (g Geodesic[T]) ApproxEqual(o Geodesic[T], tol numeric.Tolerance) bool {
	return g.start.ApproxEqual(o.start, tol) && g.end.ApproxEqual(o.end, tol)
}

// String renders "Geodesic[start → end]".
func (g Geodesic[T]) String() string {
	return fmt.Sprintf("Geodesic[%s → %s]", g.start, g.end)
}

// LineKind tells the two geometric forms of a geodesic apart.
type LineKind int

const (
	// HalfLine is a vertical ray from a touchpoint on the real line to ∞.
	HalfLine LineKind = iota
	// HalfCircle is a half-circle centered on the real line.
	HalfCircle
)

// String returns "half-line" or "half-circle".
func (k LineKind) String() string {
	if k == HalfLine {
		return "half-line"
	}

	return "half-circle"
}

// GeodesicLine is the geometric form of a geodesic.
// For HalfLine only Touchpoint is meaningful; for HalfCircle only Center
// and Radius.
type GeodesicLine[T numeric.Scalar] struct {
	Kind       LineKind
	Touchpoint T
	Center     T
	Radius     T
}

// Line returns the geometric form. A geodesic with an endpoint at ∞ is the
// half-line over the other endpoint; otherwise it is the half-circle with
// center Mid(start, end) and radius Dist(start, end)/2.
func (g Geodesic[T]) Line() GeodesicLine[T] {
	s, sok := g.start.Value()
	e, eok := g.end.Value()
	switch {
	case !sok:
		return GeodesicLine[T]{Kind: HalfLine, Touchpoint: e}
	case !eok:
		return GeodesicLine[T]{Kind: HalfLine, Touchpoint: s}
	}

	return GeodesicLine[T]{
		Kind:   HalfCircle,
		Center: numeric.Mid(s, e),
		Radius: numeric.Dist(s, e) / 2,
	}
}

// String renders the form and its parameters.
func (l GeodesicLine[T]) String() string {
	if l.Kind == HalfLine {
		return fmt.Sprintf("%s at %v", l.Kind, l.Touchpoint)
	}

	return fmt.Sprintf("%s center %v radius %v", l.Kind, l.Center, l.Radius)
}
