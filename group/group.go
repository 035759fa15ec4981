// SPDX-License-Identifier: MIT

// Package group holds the minimal group abstraction and the set-restriction
// pattern used by the determinant-one wrapper in package sl2.
//
// A Go type cannot be a true subtype of another carrying an extra invariant,
// so a restricted set is modelled as a value checked once at construction
// (Restrict) and afterwards exposed read-only (Subset.Value).
//
// The group axioms are not proven; AssociativityCheck, IdentityCheck and
// InverseCheck evaluate them on concrete elements as optional self-checks.
package group

import (
	"errors"
	"fmt"
)

// ErrRestrictionViolated is returned by Restrict when the value does not
// satisfy the restriction.
var ErrRestrictionViolated = errors.New("group: value violates set restriction")

// Group is the binary operation and inverse of a group element type G.
// The identity is supplied as a value wherever it is needed.
type Group[G any] interface {
	// Combine returns the product of the receiver and other.
	Combine(other G) G
	// Inverse returns the inverse element.
	Inverse() G
}

// Equality decides whether two elements are the same, exactly or within a
// caller-chosen tolerance.
type Equality[V any] func(a, b V) bool

// Restriction is the membership predicate of a subset { x ∈ V : r(x) }.
type Restriction[V any] func(V) bool

// Subset is a value of V known to satisfy a Restriction. The zero Subset
// carries V's zero value and has not been checked.
type Subset[V any] struct {
	value V
}

// Restrict checks v against r once and wraps it.
func Restrict[V any](v V, r Restriction[V]) (Subset[V], error) {
	if r == nil || !r(v) {
		return Subset[V]{}, fmt.Errorf("Restrict: %v: %w", v, ErrRestrictionViolated)
	}

	return Subset[V]{value: v}, nil
}

// Value returns the wrapped value.
func (s Subset[V]) Value() V {
	return s.value
}

// AssociativityCheck reports whether (a·b)·c == a·(b·c).
func AssociativityCheck[G Group[G]](a, b, c G, eq Equality[G]) bool {
	return eq(a.Combine(b).Combine(c), a.Combine(b.Combine(c)))
}

// IdentityCheck reports whether e is a two-sided identity for g.
func IdentityCheck[G Group[G]](g, e G, eq Equality[G]) bool {
	return eq(g.Combine(e), g) && eq(e.Combine(g), g)
}

// InverseCheck reports whether g·g⁻¹ and g⁻¹·g both equal e.
func InverseCheck[G Group[G]](g, e G, eq Equality[G]) bool {
	inv := g.Inverse()

	return eq(g.Combine(inv), e) && eq(inv.Combine(g), e)
}
