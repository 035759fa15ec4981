package plot_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperbolic/geometry"
	"github.com/katalvlaran/hyperbolic/plot"
)

const eps = 1e-12

// TestGeodesic_HalfCircle runs from start to end along the circle.
func TestGeodesic_HalfCircle(t *testing.T) {
	g, err := geometry.NewGeodesic(geometry.Regular(-1.0), geometry.Regular(3.0))
	require.NoError(t, err)

	pts, err := plot.Geodesic(g, 5)
	require.NoError(t, err)
	require.Len(t, pts, 5)
	assert.InDelta(t, -1.0, pts[0].Re, eps)
	assert.InDelta(t, 0.0, pts[0].Im, eps)
	assert.InDelta(t, 1.0, pts[2].Re, eps)
	assert.InDelta(t, 2.0, pts[2].Im, eps)
	assert.InDelta(t, 3.0, pts[4].Re, eps)
	for _, p := range pts {
		assert.InDelta(t, 2.0, math.Hypot(p.Re-1, p.Im), eps, "on the circle")
	}

	rev, err := plot.Geodesic(g.Reverse(), 5)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, rev[0].Re, eps)
	assert.InDelta(t, -1.0, rev[4].Re, eps)
}

// TestGeodesic_HalfLine draws a vertical segment oriented like the geodesic.
func TestGeodesic_HalfLine(t *testing.T) {
	up, err := geometry.NewGeodesic(geometry.Regular(2.0), geometry.Infinity[float64]())
	require.NoError(t, err)

	pts, err := plot.Geodesic(up, 3, plot.WithHeight(4))
	require.NoError(t, err)
	assert.Equal(t, []geometry.Complex[float64]{{Re: 2, Im: 0}, {Re: 2, Im: 2}, {Re: 2, Im: 4}}, pts)

	down, err := plot.Geodesic(up.Reverse(), 3, plot.WithHeight(4))
	require.NoError(t, err)
	assert.Equal(t, []geometry.Complex[float64]{{Re: 2, Im: 4}, {Re: 2, Im: 2}, {Re: 2, Im: 0}}, down)
}

// TestHorocycle_Line spans the configured width.
func TestHorocycle_Line(t *testing.T) {
	pts, err := plot.Horocycle(geometry.NewLine(1.5), 3, plot.WithWidth(2))
	require.NoError(t, err)
	assert.Equal(t, []geometry.Complex[float64]{{Re: -2, Im: 1.5}, {Re: 0, Im: 1.5}, {Re: 2, Im: 1.5}}, pts)

	def, err := plot.Horocycle(geometry.NewLine(1.0), 2)
	require.NoError(t, err)
	assert.Equal(t, -plot.DefaultWidth, def[0].Re)
	assert.Equal(t, plot.DefaultWidth, def[1].Re)
}

// TestHorocycle_Circle starts and ends at the tangency point.
func TestHorocycle_Circle(t *testing.T) {
	pts, err := plot.Horocycle(geometry.NewCircle(1.0, 2.0), 5)
	require.NoError(t, err)
	require.Len(t, pts, 5)

	assert.InDelta(t, 1.0, pts[0].Re, eps)
	assert.InDelta(t, 0.0, pts[0].Im, eps)
	assert.InDelta(t, 1.0, pts[2].Re, eps)
	assert.InDelta(t, 2.0, pts[2].Im, eps, "top of the circle")
	assert.InDelta(t, 1.0, pts[4].Re, eps)
	assert.InDelta(t, 0.0, pts[4].Im, eps)
	for _, p := range pts {
		assert.InDelta(t, 1.0, math.Hypot(p.Re-1, p.Im-1), eps)
	}
}

// TestTooFewSamples rejects k < 2.
func TestTooFewSamples(t *testing.T) {
	g, err := geometry.NewGeodesic(geometry.Regular(0.0), geometry.Regular(1.0))
	require.NoError(t, err)

	_, err = plot.Geodesic(g, 1)
	assert.ErrorIs(t, err, plot.ErrTooFewSamples)
	_, err = plot.Horocycle(geometry.NewLine(1.0), 0)
	assert.ErrorIs(t, err, plot.ErrTooFewSamples)
}

// TestGeodesic_Degenerate refuses a geodesic whose endpoints coincide.
func TestGeodesic_Degenerate(t *testing.T) {
	g, err := geometry.NewGeodesic(geometry.Regular(0.0), geometry.Regular(1e-12))
	require.NoError(t, err)
	collapsed := g.Transform(func(geometry.BoundaryPoint[float64]) geometry.BoundaryPoint[float64] {
		return geometry.Infinity[float64]()
	})
	require.True(t, collapsed.IsDegenerate())

	_, err = plot.Geodesic(collapsed, 8)
	assert.ErrorIs(t, err, geometry.ErrDegenerateGeodesic)
}

// TestOptions_Panic enforces positive bounds.
func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { plot.WithHeight(0) })
	assert.Panics(t, func() { plot.WithWidth(-1) })
	assert.Panics(t, func() { plot.WithWidth(math.NaN()) })
}
