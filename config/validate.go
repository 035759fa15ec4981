// SPDX-License-Identifier: MIT
// Package: hyperbolic/config
//
// validate.go: whole-request checks run after every layer is applied.
//
// Order: policy, generators, count and mode, tolerances, curve points, then
// the base for the chosen space. The first failure wins.

package config

import (
	"fmt"
	"math"
)

// Validate checks the request as a whole. Every error wraps ErrInvalidRequest.
func (r *Request) Validate() error {
	switch r.Policy {
	case PolicyProjected, PolicyStrict:
	default:
		return invalid("policy %q", r.Policy)
	}
	if len(r.Generators) == 0 {
		return invalid("no generators")
	}
	for i, g := range r.Generators {
		for _, v := range g {
			if !finite(v) {
				return invalid("generator %d: non-finite entry %v", i, v)
			}
		}
	}
	if r.Count < 0 {
		return invalid("count %d", r.Count)
	}
	if _, err := r.PickMode(); err != nil {
		return invalid("%v", err)
	}
	if !finite(r.Tolerance) || r.Tolerance < 0 {
		return invalid("tolerance %v", r.Tolerance)
	}
	if !finite(r.ActionTolerance) || r.ActionTolerance < 0 {
		return invalid("action_tolerance %v", r.ActionTolerance)
	}
	if r.CurvePoints == 1 || r.CurvePoints < 0 {
		return invalid("curve_points %d: need 0 or at least 2", r.CurvePoints)
	}
	for _, v := range r.Base {
		if !finite(v) {
			return invalid("base: non-finite value %v", v)
		}
	}

	return r.validateBase()
}

func (r *Request) validateBase() error {
	if r.BaseAtInfinity && r.Space != SpaceBoundary {
		return invalid("base_at_infinity applies to the boundary space only")
	}

	switch r.Space {
	case SpacePoint:
		if len(r.Base) != 2 {
			return invalid("point base needs [re, im], got %d values", len(r.Base))
		}
		if !(r.Base[1] > 0) {
			return invalid("point base im %v must be positive", r.Base[1])
		}
	case SpaceBoundary:
		if r.BaseAtInfinity {
			if len(r.Base) != 0 {
				return invalid("boundary base: both a value and base_at_infinity")
			}
			return nil
		}
		if len(r.Base) != 1 {
			return invalid("boundary base needs [t] or base_at_infinity, got %d values", len(r.Base))
		}
	case SpaceGeodesic:
		if len(r.Base) != 2 {
			return invalid("geodesic base needs [start, end], got %d values", len(r.Base))
		}
		if r.Base[0] == r.Base[1] {
			return invalid("geodesic base endpoints are equal")
		}
	case SpaceHorocycle:
		if len(r.Base) != 1 {
			return invalid("horocycle base needs [height], got %d values", len(r.Base))
		}
		if !(r.Base[0] > 0) {
			return invalid("horocycle height %v must be positive", r.Base[0])
		}
	default:
		return invalid("space %q", r.Space)
	}

	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidRequest)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
