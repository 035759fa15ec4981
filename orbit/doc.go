// SPDX-License-Identifier: MIT
// Package: hyperbolic/orbit
//
// Package orbit samples the orbit of a base point under a Fuchsian group.
//
// Blueprint:
//
//	Stage 1 (Derive): pool = g₁…gₖ, g₁⁻¹…gₖ⁻¹ when k > 1; pool = g₁ when k = 1.
//	                  A generator and its inverse are never adjacent, so the
//	                  sequential walk does not cancel itself.
//	Stage 2 (Pick):   Sequential → pool[i mod len(pool)];
//	                  Random     → pool[uniform draw in [0, len(pool))].
//	Stage 3 (Act):    xᵢ₊₁ = pick(i).Map(xᵢ); append xᵢ₊₁.
//
// Sample returns exactly n points (the base point itself is not included)
// and fails only on precondition violations: an empty group, a negative
// count or an unknown mode.
//
// Random draws are i.i.d.: repeats and immediate g·g⁻¹ cancellations are
// possible. Determinism is explicit via WithSeed or WithRand; without either,
// a Random sample owns a fresh time-seeded source.
//
// Complexity: O(n · cost(Map)) time, O(n + k) memory.
package orbit
