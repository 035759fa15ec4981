package sampler_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperbolic/action"
	"github.com/katalvlaran/hyperbolic/codec"
	"github.com/katalvlaran/hyperbolic/config"
	"github.com/katalvlaran/hyperbolic/fuchsian"
	"github.com/katalvlaran/hyperbolic/moebius"
	"github.com/katalvlaran/hyperbolic/sampler"
	"github.com/katalvlaran/hyperbolic/sl2"
)

func modularRequest(space config.Space, base ...float64) *config.Request {
	req := config.Default()
	req.Space = space
	req.Generators = [][4]float64{{1, 1, 0, 1}, {0, -1, 1, 0}}
	req.Base = base
	req.Count = 8

	return req
}

// TestRun_Points samples the modular group from 1+i.
func TestRun_Points(t *testing.T) {
	log, _ := test.NewNullLogger()
	req := modularRequest(config.SpacePoint, 1, 1)

	res, err := sampler.Run(context.Background(), req, log)
	require.NoError(t, err)
	assert.NotEmpty(t, res.RunID)
	assert.Equal(t, "sequential", res.Mode)
	assert.Equal(t, [][4]float64{{1, 1, 0, 1}, {0, -1, 1, 0}}, res.Generators)
	require.Len(t, res.Records, 8)

	// 1+i → 2+i → -0.4+0.2i → -1.4+0.2i → 0.7+0.1i
	want := [][2]float64{{2, 1}, {-0.4, 0.2}, {-1.4, 0.2}, {0.7, 0.1}}
	for i, w := range want {
		rec := res.Records[i]
		require.NotNil(t, rec.Point)
		assert.Equal(t, i, rec.Step)
		assert.Equal(t, i%4, rec.Pick)
		assert.InDelta(t, w[0], rec.Point.Re, 1e-12)
		assert.InDelta(t, w[1], rec.Point.Im, 1e-12)
	}
}

// TestRun_PointOffHalfPlane refuses a base that is not in ℍ.
func TestRun_PointOffHalfPlane(t *testing.T) {
	_, err := sampler.Run(context.Background(), modularRequest(config.SpacePoint, 1, 0), nil)
	assert.ErrorIs(t, err, config.ErrInvalidRequest)
}

// TestRun_RejectsAndLogs reports dropped generators.
func TestRun_RejectsAndLogs(t *testing.T) {
	log, hook := test.NewNullLogger()
	req := modularRequest(config.SpacePoint, 0, 1)
	req.Generators = append([][4]float64{{1, 2, 3, 4}}, req.Generators...)
	req.SelfCheck = true

	res, err := sampler.Run(context.Background(), req, log)
	require.NoError(t, err)
	require.Len(t, res.Rejected, 1)
	assert.Equal(t, 0, res.Rejected[0].Index)
	assert.Contains(t, res.Rejected[0].Reason, "determinant is not positive")
	assert.Len(t, res.Generators, 2)

	var warned bool
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel && e.Message == "generator rejected" {
			warned = true
			assert.Equal(t, 0, e.Data["index"])
			assert.Equal(t, res.RunID, e.Data["run_id"])
		}
	}
	assert.True(t, warned)
}

// TestRun_StrictPolicy keeps only determinant-one inputs.
func TestRun_StrictPolicy(t *testing.T) {
	req := modularRequest(config.SpaceBoundary)
	req.BaseAtInfinity = true
	req.Policy = config.PolicyStrict
	req.Generators = append(req.Generators, [4]float64{2, 0, 0, 1})

	res, err := sampler.Run(context.Background(), req, nil)
	require.NoError(t, err)
	assert.Len(t, res.Generators, 2)
	require.Len(t, res.Rejected, 1)
	assert.Equal(t, 2, res.Rejected[0].Index)

	// ∞ → ∞ → 0 → -1 → 1 → 2 → -0.5
	require.NotNil(t, res.Records[0].Boundary)
	assert.True(t, res.Records[0].Boundary.Infinity)
	assert.Equal(t, 0.0, res.Records[1].Boundary.Value)
	assert.Equal(t, -1.0, res.Records[2].Boundary.Value)
	assert.Equal(t, -0.5, res.Records[5].Boundary.Value)
}

// TestRun_CurvesAttached draws geodesics and horocycles.
func TestRun_CurvesAttached(t *testing.T) {
	geo := modularRequest(config.SpaceGeodesic, -1, 1)
	geo.CurvePoints = 16
	geo.Mode = "random"
	geo.Seed = 3

	res, err := sampler.Run(context.Background(), geo, nil)
	require.NoError(t, err)
	assert.Equal(t, "random", res.Mode)
	for _, rec := range res.Records {
		require.NotNil(t, rec.Geodesic)
		assert.Len(t, rec.Curve, 16)
		assert.True(t, rec.Pick >= 0 && rec.Pick < 4)
	}

	horo := modularRequest(config.SpaceHorocycle, 1)
	horo.CurvePoints = 8
	horo.SelfCheck = true
	res, err = sampler.Run(context.Background(), horo, nil)
	require.NoError(t, err)
	require.NotNil(t, res.Records[0].Horocycle)
	assert.Equal(t, "line", res.Records[0].Horocycle.Kind)
	assert.Equal(t, "circle", res.Records[1].Horocycle.Kind)
	assert.Len(t, res.Records[1].Curve, 8)
}

// TestRun_SeedReproducible returns identical records for equal seeds.
func TestRun_SeedReproducible(t *testing.T) {
	mk := func() *config.Request {
		req := modularRequest(config.SpacePoint, 0.25, 1.5)
		req.Mode = "random"
		req.Seed = 11
		req.Count = 40
		return req
	}
	a, err := sampler.Run(context.Background(), mk(), nil)
	require.NoError(t, err)
	b, err := sampler.Run(context.Background(), mk(), nil)
	require.NoError(t, err)
	assert.Equal(t, a.Records, b.Records)
	assert.NotEqual(t, a.RunID, b.RunID)
}

// TestRun_Errors covers validation and cancellation.
func TestRun_Errors(t *testing.T) {
	bad := modularRequest(config.SpacePoint, 1)
	_, err := sampler.Run(context.Background(), bad, nil)
	assert.ErrorIs(t, err, config.ErrInvalidRequest)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = sampler.Run(ctx, modularRequest(config.SpacePoint, 0, 1), nil)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestRun_SelfCheckThroughPole passes the law checks when a composition
// runs through a pole of the boundary action.
func TestRun_SelfCheckThroughPole(t *testing.T) {
	req := config.Default()
	req.Space = config.SpaceGeodesic
	req.Generators = [][4]float64{{1, 1, 0, 2}, {2, -1, 1, 0}, {3, 1, 8, 3}}
	req.Base = []float64{-1.0 / 3.0, -2.0 / 3.0}
	req.Count = 12
	req.SelfCheck = true

	res, err := sampler.Run(context.Background(), req, nil)
	require.NoError(t, err)
	assert.Len(t, res.Generators, 3)
	assert.Len(t, res.Records, 12)
}

// TestSelfCheck_DetectsBrokenAction flags an action that ignores the group.
func TestSelfCheck_DetectsBrokenAction(t *testing.T) {
	g := fuchsian.NewProjected([]moebius.Transformation[float64]{moebius.New(1.0, 1.0, 0.0, 1.0)})
	shift := action.Func[float64, float64](func(_ sl2.Transformation[float64], x float64) float64 { return x + 1 })

	err := sampler.SelfCheck[float64](g, 0, shift, func(a, b float64) bool { return a == b })
	assert.ErrorIs(t, err, sampler.ErrSelfCheck)
}

// TestResult_Encodes writes a result in every format.
func TestResult_Encodes(t *testing.T) {
	res, err := sampler.Run(context.Background(), modularRequest(config.SpaceHorocycle, 2), nil)
	require.NoError(t, err)

	for _, f := range []codec.Format{codec.FormatJSON, codec.FormatYAML, codec.FormatCBOR} {
		var buf bytes.Buffer
		require.NoError(t, codec.Write(&buf, res, f, codec.CompressZstd), f)

		var back sampler.Result
		require.NoError(t, codec.Read(&buf, &back, f, codec.CompressZstd), f)
		assert.Equal(t, res.RunID, back.RunID)
		assert.Len(t, back.Records, len(res.Records))
	}
}
