// SPDX-License-Identifier: MIT

// Package plot turns geodesics and horocycles into polylines of K samples
// for rendering.
//
//	Geodesic half-circle: θ over [π, 0] (or [0, π]) so the polyline runs
//	                      from start to end.
//	Geodesic half-line:   vertical segment from the touchpoint to Height,
//	                      reversed when the geodesic starts at ∞.
//	Height line:          horizontal segment over [-Width, +Width].
//	Tangency circle:      full circle starting and ending at the touchpoint.
//
// Sample positions are evenly spaced (gonum floats.Span).
package plot

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/hyperbolic/geometry"
)

// ErrTooFewSamples is returned when fewer than two samples are requested.
var ErrTooFewSamples = errors.New("plot: need at least two samples")

const (
	// DefaultHeight is the top of a drawn half-line.
	DefaultHeight = 10.0
	// DefaultWidth is the half-width of a drawn height line.
	DefaultWidth = 10.0
)

// Option customizes drawing.
type Option func(*Options)

// Options bounds the unbounded curves.
type Options struct {
	Height float64 // top of half-lines, > 0
	Width  float64 // half-width of height lines, > 0
}

// DefaultOptions returns DefaultHeight and DefaultWidth.
func DefaultOptions() Options {
	return Options{Height: DefaultHeight, Width: DefaultWidth}
}

// WithHeight sets the top of half-lines. Panics unless h > 0.
func WithHeight(h float64) Option {
	if !(h > 0) {
		panic("plot: WithHeight(h<=0)")
	}
	return func(o *Options) { o.Height = h }
}

// WithWidth sets the half-width of height lines. Panics unless w > 0.
func WithWidth(w float64) Option {
	if !(w > 0) {
		panic("plot: WithWidth(w<=0)")
	}
	return func(o *Options) { o.Width = w }
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Geodesic samples g with k points.
// Returns geometry.ErrDegenerateGeodesic if both endpoints coincide.
func Geodesic(g geometry.Geodesic[float64], k int, opts ...Option) ([]geometry.Complex[float64], error) {
	if k < 2 {
		return nil, fmt.Errorf("Geodesic: k=%d: %w", k, ErrTooFewSamples)
	}
	if g.IsDegenerate() {
		return nil, fmt.Errorf("Geodesic: %s: %w", g.Start(), geometry.ErrDegenerateGeodesic)
	}
	o := resolve(opts)
	out := make([]geometry.Complex[float64], k)
	line := g.Line()

	if line.Kind == geometry.HalfLine {
		ys := floats.Span(make([]float64, k), 0, o.Height)
		if g.Start().IsInfinity() {
			floats.Reverse(ys)
		}
		for i, y := range ys {
			out[i] = geometry.NewComplex(line.Touchpoint, y)
		}
		return out, nil
	}

	// start left of end walks the arc from θ=π down to θ=0
	from, to := 0.0, math.Pi
	s, _ := g.Start().Value()
	e, _ := g.End().Value()
	if s < e {
		from, to = math.Pi, 0
	}
	for i, th := range floats.Span(make([]float64, k), from, to) {
		out[i] = geometry.NewComplex(line.Center+line.Radius*math.Cos(th), line.Radius*math.Sin(th))
	}

	return out, nil
}

// Horocycle samples h with k points.
func Horocycle(h geometry.Horocycle[float64], k int, opts ...Option) ([]geometry.Complex[float64], error) {
	if k < 2 {
		return nil, fmt.Errorf("Horocycle: k=%d: %w", k, ErrTooFewSamples)
	}
	o := resolve(opts)
	out := make([]geometry.Complex[float64], k)
	size := h.HeightOrDiameter()

	if h.IsLine() {
		for i, x := range floats.Span(make([]float64, k), -o.Width, o.Width) {
			out[i] = geometry.NewComplex(x, size)
		}
		return out, nil
	}

	b, _ := h.BoundaryPoint().Value()
	r := size / 2
	for i, th := range floats.Span(make([]float64, k), -math.Pi/2, 3*math.Pi/2) {
		out[i] = geometry.NewComplex(b+r*math.Cos(th), r+r*math.Sin(th))
	}

	return out, nil
}
