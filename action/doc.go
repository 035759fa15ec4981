// SPDX-License-Identifier: MIT
// Package: hyperbolic/action
//
// Package action implements how a Möbius transformation g = [a, b; c, d]
// acts on the geometric objects of package geometry.
//
//	Space          Action
//	-----          ------
//	point z        (a·z + b) / (c·z + d), complex arithmetic; the pole
//	               -d/c maps to NaN (floats) or the origin (integers)
//	boundary ∞     ∞ if c ≈ 0, else a/c
//	boundary t     ∞ if c·t + d ≈ 0, else (a·t + b)/(c·t + d)
//	geodesic       both endpoints through the boundary action
//	height line h  c ≈ 0: h if a ≈ d, else a²·h
//	               c ≉ 0: circle at a/c, diameter 1/(h·c²)
//	circle (β, δ)  with q = c·β + d:
//	               q ≈ 0: line 1/(δ·c²)
//	               q ≉ 0: circle at (a·β + b)/q, diameter δ/q²
//
// The "≈ 0" tests use a caller-chosen numeric.Tolerance; numeric.Default()
// is the usual choice.
//
// The Map* functions take raw transformations. The Action interface binds a
// space to normalized group elements and is what the orbit sampler drives.
// IdentityCheck and CompatibilityCheck evaluate the action laws on concrete
// inputs:
//
//	Identity().Map(x) == x
//	g.Map(h.Map(x))   == g.Combine(h).Map(x)
package action
