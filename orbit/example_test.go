package orbit_test

import (
	"fmt"

	"github.com/katalvlaran/hyperbolic/action"
	"github.com/katalvlaran/hyperbolic/fuchsian"
	"github.com/katalvlaran/hyperbolic/geometry"
	"github.com/katalvlaran/hyperbolic/moebius"
	"github.com/katalvlaran/hyperbolic/numeric"
	"github.com/katalvlaran/hyperbolic/orbit"
)

// ExampleSample_modularGroup walks the modular group generated by z ↦ z+1
// and z ↦ -1/z over the integers. The real line is invariant, and the
// sequential walk cycles through four values.
func ExampleSample_modularGroup() {
	g := fuchsian.NewStrict([]moebius.Transformation[int]{
		moebius.New(1, 1, 0, 1),
		moebius.New(0, -1, 1, 0),
	})

	o, err := orbit.Sample(g, geometry.Real(1), 8, action.Points[int]())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(o.Points)
	// Output:
	// [(2, 0) (0, 0) (-1, 0) (1, 0) (2, 0) (0, 0) (-1, 0) (1, 0)]
}

// ExampleSample_boundary follows ∞ under the same group: the translation
// fixes it and the inversion sends it to 0.
func ExampleSample_boundary() {
	g := fuchsian.NewProjected([]moebius.Transformation[float64]{
		moebius.New(1.0, 1.0, 0.0, 1.0),
		moebius.New(0.0, -1.0, 1.0, 0.0),
	})

	o, err := orbit.Sample(g, geometry.Infinity[float64](), 6, action.Boundary[float64](numeric.Default()))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(o.Points)
	// Output:
	// [∞ 0 -1 1 2 -0.5]
}

// ExampleSample_horocycle maps the height line Im z = 1.
func ExampleSample_horocycle() {
	g := fuchsian.NewProjected([]moebius.Transformation[float64]{
		moebius.New(1.0, 1.0, 0.0, 1.0),
		moebius.New(0.0, -1.0, 1.0, 0.0),
	})

	o, err := orbit.Sample(g, geometry.NewLine(1.0), 3, action.Horocycles[float64](numeric.Default()))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, h := range o.Points {
		fmt.Println(h)
	}
	// Output:
	// Horocycle[line 1]
	// Horocycle[circle at 0, 1]
	// Horocycle[circle at -1, 1]
}
