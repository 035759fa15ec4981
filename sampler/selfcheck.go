// SPDX-License-Identifier: MIT

package sampler

import (
	"fmt"

	"github.com/katalvlaran/hyperbolic/action"
	"github.com/katalvlaran/hyperbolic/fuchsian"
	"github.com/katalvlaran/hyperbolic/group"
	"github.com/katalvlaran/hyperbolic/orbit"
	"github.com/katalvlaran/hyperbolic/sl2"
)

// SelfCheck evaluates, on the picking pool of g and the point x:
// identity and inverse laws for every element, associativity for every
// triple, the identity action on x and compatibility for every pair.
// Returns an error wrapping ErrSelfCheck naming the first failure.
func SelfCheck[S any](g fuchsian.Group[float64], x S, act action.Action[float64, S], eq group.Equality[S]) error {
	pool := orbit.Derive(g.Generators())
	e := sl2.Identity[float64]()
	eqT := func(a, b sl2.Transformation[float64]) bool { return a.ApproxEqual(b, lawTolerance) }

	for i, a := range pool {
		if !group.IdentityCheck(a, e, eqT) {
			return fmt.Errorf("SelfCheck: identity law at %d (%s): %w", i, a, ErrSelfCheck)
		}
		if !group.InverseCheck(a, e, eqT) {
			return fmt.Errorf("SelfCheck: inverse law at %d (%s): %w", i, a, ErrSelfCheck)
		}
		for j, b := range pool {
			for k, c := range pool {
				if !group.AssociativityCheck(a, b, c, eqT) {
					return fmt.Errorf("SelfCheck: associativity at (%d, %d, %d): %w", i, j, k, ErrSelfCheck)
				}
			}
			if !action.CompatibilityCheck(act, a, b, x, eq) {
				return fmt.Errorf("SelfCheck: action compatibility at (%d, %d): %w", i, j, ErrSelfCheck)
			}
		}
	}
	if !action.IdentityCheck(act, x, eq) {
		return fmt.Errorf("SelfCheck: identity action: %w", ErrSelfCheck)
	}

	return nil
}
