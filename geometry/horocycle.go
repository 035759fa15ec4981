// SPDX-License-Identifier: MIT

package geometry

import (
	"fmt"

	"github.com/katalvlaran/hyperbolic/numeric"
)

// HorocycleKind tells the two horocycle representations apart.
type HorocycleKind int

const (
	// HeightLine is the line Im z = h, tangent to the boundary at ∞.
	HeightLine HorocycleKind = iota
	// TangencyCircle is a circle tangent to the real line at a boundary point.
	TangencyCircle
)

// String returns "line" or "circle".
func (k HorocycleKind) String() string {
	if k == HeightLine {
		return "line"
	}

	return "circle"
}

// Horocycle is a height line or a tangency circle. The zero value is the
// height line at 0, which is not canonical.
type Horocycle[T numeric.Scalar] struct {
	kind  HorocycleKind
	touch T // tangency point, TangencyCircle only
	size  T // height or diameter
}

// NewLine returns the height line Im z = h.
func NewLine[T numeric.Scalar](h T) Horocycle[T] {
	return Horocycle[T]{kind: HeightLine, size: h}
}

// NewCircle returns the circle of the given diameter tangent at b.
func NewCircle[T numeric.Scalar](b, diameter T) Horocycle[T] {
	return Horocycle[T]{kind: TangencyCircle, touch: b, size: diameter}
}

// Kind returns the representation.
func (h Horocycle[T]) Kind() HorocycleKind { return h.kind }

// IsLine reports whether h is a height line.
func (h Horocycle[T]) IsLine() bool { return h.kind == HeightLine }

// BoundaryPoint returns the tangency point: ∞ for a height line.
func (h Horocycle[T]) BoundaryPoint() BoundaryPoint[T] {
	if h.kind == HeightLine {
		return Infinity[T]()
	}

	return Regular(h.touch)
}

// HeightOrDiameter returns the height of a line or the diameter of a circle.
func (h Horocycle[T]) HeightOrDiameter() T { return h.size }

// IsCanonical reports whether the height or diameter is strictly positive.
func (h Horocycle[T]) IsCanonical() bool {
	return numeric.IsPositive(h.size)
}

// Equal is structural.
func (h Horocycle[T]) Equal(o Horocycle[T]) bool {
	return h.kind == o.kind && h.touch == o.touch && h.size == o.size
}

// ApproxEqual compares kinds exactly and scalars within tol.
func (h Horocycle[T]) ApproxEqual(o Horocycle[T], tol numeric.Tolerance) bool {
	return h.kind == o.kind &&
		numeric.ApproxEqual(h.touch, o.touch, tol) &&
		numeric.ApproxEqual(h.size, o.size, tol)
}

// String renders "Horocycle[line h]" or "Horocycle[circle at b, d]".
func (h Horocycle[T]) String() string {
	if h.kind == HeightLine {
		return fmt.Sprintf("Horocycle[line %v]", h.size)
	}

	return fmt.Sprintf("Horocycle[circle at %v, %v]", h.touch, h.size)
}
