// SPDX-License-Identifier: MIT
// Package: hyperbolic/fuchsian
//
// Package fuchsian holds a finitely generated group of normalized Möbius
// transformations, the container from which orbits are sampled.
//
// Two admission policies build a Group from raw matrices:
//
//   - NewStrict keeps the inputs that already have determinant one.
//   - NewProjected rescales every invertible, orientation-preserving input
//     to determinant one.
//
// Inputs that fail the policy are dropped. The drop never fails construction;
// WithOnReject observes it with the input's index and the wrapped reason.
//
// Generators keep the order of the accepted inputs. Duplicates are not
// detected: two inputs describing the same element both become generators.
//
// Example:
//
//	g := fuchsian.NewProjected([]moebius.Transformation[float64]{
//		moebius.New(1.0, 1.0, 0.0, 1.0),
//		moebius.New(0.0, -1.0, 1.0, 0.0),
//	})
//	fmt.Println(g.Len()) // 2
package fuchsian
