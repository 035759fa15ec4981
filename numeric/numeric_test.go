package numeric_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperbolic/numeric"
)

// TestIdentities_AnyTolerance checks zero/one against themselves for every
// scalar type and several tolerances.
func TestIdentities_AnyTolerance(t *testing.T) {
	tols := []numeric.Tolerance{numeric.Exact, numeric.Default(), numeric.Within(0), numeric.Within(0.5)}
	for _, tol := range tols {
		assert.True(t, numeric.IsZero(numeric.Zero[int8](), tol), "int8 zero, tol=%s", tol)
		assert.True(t, numeric.IsZero(numeric.Zero[int64](), tol), "int64 zero, tol=%s", tol)
		assert.True(t, numeric.IsZero(numeric.Zero[float32](), tol), "float32 zero, tol=%s", tol)
		assert.True(t, numeric.IsZero(numeric.Zero[float64](), tol), "float64 zero, tol=%s", tol)

		assert.True(t, numeric.IsOne(numeric.One[int16](), tol), "int16 one, tol=%s", tol)
		assert.True(t, numeric.IsOne(numeric.One[int32](), tol), "int32 one, tol=%s", tol)
		assert.True(t, numeric.IsOne(numeric.One[float32](), tol), "float32 one, tol=%s", tol)
		assert.True(t, numeric.IsOne(numeric.One[float64](), tol), "float64 one, tol=%s", tol)
	}
}

// TestIsZero_Threshold covers the exact and threshold branches.
func TestIsZero_Threshold(t *testing.T) {
	assert.False(t, numeric.IsZero(1e-17, numeric.Exact), "exact: tiny value is not zero")
	assert.True(t, numeric.IsZero(1e-17, numeric.Default()), "default threshold absorbs 1e-17")
	assert.True(t, numeric.IsZero(-1e-17, numeric.Default()), "absolute value is compared")
	assert.False(t, numeric.IsZero(1e-15, numeric.Default()), "1e-15 exceeds the default threshold")
	assert.True(t, numeric.IsZero(3, numeric.Within(3)), "boundary is inclusive")
	assert.False(t, numeric.IsZero(-4, numeric.Within(3)), "int beyond threshold")

	assert.True(t, numeric.IsOne(1.0000001, numeric.Within(1e-6)))
	assert.False(t, numeric.IsOne(1.0000001, numeric.Within(1e-8)))
}

// TestIsZero_MinimumInteger keeps the most negative integer away from zero
// even though its absolute value wraps.
func TestIsZero_MinimumInteger(t *testing.T) {
	assert.Equal(t, int8(math.MinInt8), numeric.Abs(int8(math.MinInt8)), "negation wraps")
	assert.False(t, numeric.IsZero(int8(math.MinInt8), numeric.Within(1)))
	assert.False(t, numeric.IsZero(int64(math.MinInt64), numeric.Default()))
	assert.False(t, numeric.IsOne(int32(math.MinInt32)+1, numeric.Within(3)))
	assert.True(t, numeric.IsZero(int8(-1), numeric.Within(1)))
	assert.True(t, numeric.ApproxEqual(int8(-3), int8(-2), numeric.Within(1)))
}

// TestWithin_PanicsOnNonsense mirrors the option-constructor contract.
func TestWithin_PanicsOnNonsense(t *testing.T) {
	assert.Panics(t, func() { numeric.Within(-1) })
	assert.Panics(t, func() { numeric.Within(math.NaN()) })
	assert.Panics(t, func() { numeric.Within(math.Inf(1)) })
	assert.NotPanics(t, func() { numeric.Within(0) })
}

// TestTolerance_Accessors checks Value/IsExact/String.
func TestTolerance_Accessors(t *testing.T) {
	eps, ok := numeric.Exact.Value()
	assert.False(t, ok)
	assert.Zero(t, eps)
	assert.True(t, numeric.Exact.IsExact())
	assert.Equal(t, "exact", numeric.Exact.String())

	eps, ok = numeric.Default().Value()
	require.True(t, ok)
	assert.Equal(t, numeric.DefaultThreshold, eps)
	assert.Equal(t, "1e-16", numeric.Default().String())
}

// TestSquareRoot_AbsFirst checks sqrt(|x|) for floats and truncation for ints.
func TestSquareRoot_AbsFirst(t *testing.T) {
	assert.Equal(t, 2.0, numeric.SquareRoot(4.0))
	assert.Equal(t, 2.0, numeric.SquareRoot(-4.0))
	assert.Equal(t, float32(3), numeric.SquareRoot(float32(9)))
	assert.Equal(t, 2, numeric.SquareRoot(5))
	assert.Equal(t, int8(3), numeric.SquareRoot(int8(-9)))
}

// TestSign covers Signed and IsPositive.
func TestSign(t *testing.T) {
	assert.Equal(t, 1.0, numeric.Signed(3.5))
	assert.Equal(t, -1.0, numeric.Signed(-0.1))
	assert.Equal(t, 0.0, numeric.Signed(0.0))
	assert.Equal(t, int32(-1), numeric.Signed(int32(-7)))
	assert.True(t, math.IsNaN(numeric.Signed(math.NaN())))

	assert.True(t, numeric.IsPositive(1e-300))
	assert.False(t, numeric.IsPositive(0.0))
	assert.False(t, numeric.IsPositive(-2))
	assert.True(t, numeric.IsPositive(int8(1)))
}

// TestIsExact distinguishes integer from float scalars.
func TestIsExact(t *testing.T) {
	assert.True(t, numeric.IsExact[int]())
	assert.True(t, numeric.IsExact[int8]())
	assert.True(t, numeric.IsExact[int64]())
	assert.False(t, numeric.IsExact[float32]())
	assert.False(t, numeric.IsExact[float64]())
}

// TestApproxEqual covers both branches.
func TestApproxEqual(t *testing.T) {
	a, b := 0.1, 0.2
	assert.True(t, numeric.ApproxEqual(a+b, 0.3, numeric.Within(1e-12)))
	assert.False(t, numeric.ApproxEqual(a+b, 0.3, numeric.Exact))
	assert.True(t, numeric.ApproxEqual(7, 7, numeric.Exact))
	assert.False(t, numeric.ApproxEqual(7, 9, numeric.Within(1)))
}

// TestDistMid covers the real-line primitives.
func TestDistMid(t *testing.T) {
	assert.Equal(t, 3.0, numeric.Dist(-1.0, 2.0))
	assert.Equal(t, 3.0, numeric.Dist(2.0, -1.0))
	assert.Equal(t, 0.5, numeric.Mid(-1.0, 2.0))
	assert.Equal(t, 0, numeric.Mid(-1, 2), "integer midpoint truncates")
	assert.Equal(t, int64(5), numeric.Dist(int64(-2), int64(3)))
}
