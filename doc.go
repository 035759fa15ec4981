// Package hyperbolic is a small toolkit for experimenting with Fuchsian
// groups: discrete groups of orientation-preserving isometries of the upper
// half-plane ℍ = {z : Im z > 0}, and the orbits they trace on points,
// boundary points, geodesics and horocycles.
//
// 🚀 What is hyperbolic?
//
//	A generic, dependency-light library that brings together:
//		• Möbius transformations z ↦ (az + b)/(cz + d) over any signed scalar
//		• SL(2) normalization: rescale to determinant one, or refuse
//		• Fuchsian group containers with strict or projecting admission
//		• Boundary points (ℝ ∪ {∞}), geodesics and horocycles
//		• Group actions on all four spaces, with law checkers
//		• Orbit sampling with sequential or random generator picking
//		• Polylines for plotting, and a CLI that writes JSON, YAML or CBOR
//
// ✨ Why choose hyperbolic?
//
//   - Generic – the same code runs over int32, int64, float32 and float64
//   - Explicit tolerances – exact comparison or an absolute ε, never implied
//   - Deterministic – seeded random picking reproduces an orbit exactly
//   - Hookable – OnReject and OnStep observe admission and sampling
//
// Packages:
//
//	numeric/  — Scalar constraint, tolerances, exactness and square roots
//	moebius/  — 2×2 real matrices acting as Möbius transformations
//	group/    — group interface, subset restriction and law checkers
//	sl2/      — SL(2) elements: Normalize, Strict, Combine, Inverse
//	fuchsian/ — generator containers: NewStrict, NewProjected
//	geometry/ — Complex, BoundaryPoint, Geodesic, Horocycle, distance
//	action/   — the four actions of SL(2) and compatibility checks
//	orbit/    — Sample, PickMode and the picking pool
//	plot/     — polylines of geodesics and horocycles
//	config/   — orbit requests from YAML, JSONC, dotenv and flags
//	codec/    — JSON, YAML and CBOR output with zstd or lz4 compression
//	sampler/  — one request end to end, with logging and self-checks
//	cmd/orbit — command-line front end
//
// Quick example (the modular group PSL(2, ℤ)):
//
//	g := fuchsian.NewStrict([]moebius.Transformation[float64]{
//		moebius.New(1.0, 1.0, 0.0, 1.0),  // z ↦ z + 1
//		moebius.New(0.0, -1.0, 1.0, 0.0), // z ↦ -1/z
//	})
//	o, _ := orbit.Sample(g, geometry.NewComplex(0.25, 1.5), 100,
//		action.Points[float64](), orbit.WithMode(orbit.Random), orbit.WithSeed(7))
//
// See each subpackage's documentation for formulas and edge cases.
package hyperbolic
