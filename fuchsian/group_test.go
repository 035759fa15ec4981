package fuchsian_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperbolic/fuchsian"
	"github.com/katalvlaran/hyperbolic/moebius"
	"github.com/katalvlaran/hyperbolic/numeric"
	"github.com/katalvlaran/hyperbolic/sl2"
)

// TestNewProjected_DropsOrientationReversing keeps only the det>0 input.
func TestNewProjected_DropsOrientationReversing(t *testing.T) {
	var rejected []int
	g := fuchsian.NewProjected([]moebius.Transformation[float32]{
		moebius.New[float32](1, 2, 3, 4),
		moebius.New[float32](-1, -2, 3, 4),
	}, fuchsian.WithOnReject(func(i int, err error) {
		assert.ErrorIs(t, err, sl2.ErrOrientationReversing)
		rejected = append(rejected, i)
	}))

	require.Equal(t, 1, g.Len())
	assert.Equal(t, []int{0}, rejected)
	assert.InDelta(t, 1, g.Generators()[0].Determinant(), 2.5e-7)
}

// TestNewProjected_KeepsOrder checks generator order follows input order.
func TestNewProjected_KeepsOrder(t *testing.T) {
	raw := []moebius.Transformation[float64]{
		moebius.New(1.0, 1.0, 0.0, 1.0),
		moebius.New(1.0, 2.0, 2.0, 4.0), // singular
		moebius.New(0.0, -1.0, 1.0, 0.0),
		moebius.New(1.0, 1.0, 0.0, 1.0), // duplicate kept
	}
	g := fuchsian.NewProjected(raw)
	gens := g.Generators()
	require.Len(t, gens, 3)
	assert.Equal(t, raw[0], gens[0].Transformation())
	assert.Equal(t, raw[2], gens[1].Transformation())
	assert.Equal(t, raw[3], gens[2].Transformation())
}

// TestNewStrict admits only det == 1 under the tolerance.
func TestNewStrict(t *testing.T) {
	raw := []moebius.Transformation[float64]{
		moebius.New(2.0, 0.0, 0.0, 1.0),
		moebius.New(1.0, 1.0, 0.0, 1.0),
		moebius.New(1.0+1e-12, 0.0, 0.0, 1.0),
	}
	var reasons []error
	onReject := fuchsian.WithOnReject(func(_ int, err error) { reasons = append(reasons, err) })

	exact := fuchsian.NewStrict(raw, onReject)
	assert.Equal(t, 1, exact.Len())
	require.Len(t, reasons, 2)
	assert.ErrorIs(t, reasons[0], sl2.ErrNotSpecialLinear)

	loose := fuchsian.NewStrict(raw, fuchsian.WithTolerance(numeric.Within(1e-9)))
	assert.Equal(t, 2, loose.Len())
}

// TestGroup_EmptyAndAccessors covers the empty group and defensive copies.
func TestGroup_EmptyAndAccessors(t *testing.T) {
	empty := fuchsian.NewProjected[int](nil)
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, "Fuchsian{}", empty.String())

	g := fuchsian.NewStrict([]moebius.Transformation[int]{
		moebius.New(1, 1, 0, 1),
		moebius.New(0, -1, 1, 0),
	})
	assert.Equal(t, "Fuchsian{MT[1, 1; 0, 1], MT[0, -1; 1, 0]}", g.String())

	gens := g.Generators()
	gens[0] = sl2.Identity[int]()
	assert.Equal(t, moebius.New(1, 1, 0, 1), g.Generators()[0].Transformation(), "copy returned")

	inv := g.Inverses()
	require.Len(t, inv, 2)
	assert.Equal(t, moebius.New(1, -1, 0, 1), inv[0].Transformation())
	assert.Equal(t, moebius.New(0, 1, -1, 0), inv[1].Transformation())
}

// TestFromGenerators wraps normalized elements.
func TestFromGenerators(t *testing.T) {
	assert.Equal(t, 2, fuchsian.FromGenerators(sl2.Identity[float64](), sl2.Identity[float64]()).Len())
}

// TestWithOnReject_PanicsOnNil enforces the option contract.
func TestWithOnReject_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { fuchsian.WithOnReject(nil) })
}
