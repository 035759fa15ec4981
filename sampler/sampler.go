// SPDX-License-Identifier: MIT

// Package sampler runs one orbit request end to end over float64:
//
//	Stage 1 (Validate): config.Request.Validate.
//	Stage 2 (Group):    NewProjected or NewStrict; rejected generators are
//	                    logged and reported, never fatal on their own.
//	Stage 3 (Check):    optional group and action law checks; the checked
//	                    action uses at least the law tolerance.
//	Stage 4 (Sample):   orbit.Sample in the requested space.
//	Stage 5 (Convert):  records, plus polylines when curve_points > 0.
//
// The context is checked between stages; sampling itself is CPU-bound and
// not interrupted.
package sampler

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/hyperbolic/action"
	"github.com/katalvlaran/hyperbolic/config"
	"github.com/katalvlaran/hyperbolic/fuchsian"
	"github.com/katalvlaran/hyperbolic/geometry"
	"github.com/katalvlaran/hyperbolic/group"
	"github.com/katalvlaran/hyperbolic/moebius"
	"github.com/katalvlaran/hyperbolic/numeric"
	"github.com/katalvlaran/hyperbolic/orbit"
)

// Run executes req. A nil log uses the logrus standard logger.
func Run(ctx context.Context, req *config.Request, log logrus.FieldLogger) (*Result, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}

	// Stage 1: validate
	if err := req.Validate(); err != nil {
		return nil, err
	}
	mode, err := req.PickMode()
	if err != nil {
		return nil, err
	}

	res := &Result{
		RunID:  uuid.NewString(),
		Space:  req.Space,
		Policy: req.Policy,
		Mode:   mode.String(),
		Seed:   req.Seed,
	}
	entry := log.WithFields(logrus.Fields{
		"run_id": res.RunID,
		"space":  req.Space,
		"policy": req.Policy,
		"mode":   res.Mode,
		"count":  req.Count,
	})

	// Stage 2: group
	g := buildGroup(req, entry, res)
	for _, x := range g.Generators() {
		res.Generators = append(res.Generators, x.Transformation().Entries())
	}
	entry.WithFields(logrus.Fields{
		"generators": g.Len(),
		"rejected":   len(res.Rejected),
	}).Debug("group built")
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	opts := []orbit.Option{orbit.WithMode(mode)}
	if req.Seed != 0 {
		opts = append(opts, orbit.WithSeed(req.Seed))
	}
	tol := req.ActionTol()
	checkTol := looser(tol, lawTolerance)

	// Stages 3-5 per space
	switch req.Space {
	case config.SpacePoint:
		base := geometry.NewComplex(req.Base[0], req.Base[1])
		err = run(ctx, req, entry, res, g, base, action.Points[float64](), action.Points[float64](),
			func(a, b geometry.Complex[float64]) bool { return a.ApproxEqual(b, lawTolerance) },
			pointRecord, opts)
	case config.SpaceBoundary:
		base := geometry.Infinity[float64]()
		if !req.BaseAtInfinity {
			base = geometry.Regular(req.Base[0])
		}
		err = run(ctx, req, entry, res, g, base, action.Boundary[float64](tol), action.Boundary[float64](checkTol),
			func(a, b geometry.BoundaryPoint[float64]) bool { return a.ApproxEqual(b, lawTolerance) },
			boundaryRecord, opts)
	case config.SpaceGeodesic:
		var base geometry.Geodesic[float64]
		base, err = geometry.NewGeodesic(geometry.Regular(req.Base[0]), geometry.Regular(req.Base[1]))
		if err != nil {
			return nil, err
		}
		err = run(ctx, req, entry, res, g, base, action.Geodesics[float64](tol), action.Geodesics[float64](checkTol),
			func(a, b geometry.Geodesic[float64]) bool { return a.ApproxEqual(b, lawTolerance) },
			geodesicRecord(req.CurvePoints), opts)
	case config.SpaceHorocycle:
		base := geometry.NewLine(req.Base[0])
		err = run(ctx, req, entry, res, g, base, action.Horocycles[float64](tol), action.Horocycles[float64](checkTol),
			func(a, b geometry.Horocycle[float64]) bool { return a.ApproxEqual(b, lawTolerance) },
			horocycleRecord(req.CurvePoints), opts)
	default:
		err = fmt.Errorf("Run: space %q: %w", req.Space, config.ErrInvalidRequest)
	}
	if err != nil {
		entry.WithError(err).Error("orbit request failed")
		return nil, err
	}

	entry.WithField("points", len(res.Records)).Info("orbit sampled")

	return res, nil
}

func buildGroup(req *config.Request, log logrus.FieldLogger, res *Result) fuchsian.Group[float64] {
	raw := make([]moebius.Transformation[float64], len(req.Generators))
	for i, e := range req.Generators {
		raw[i] = moebius.New(e[0], e[1], e[2], e[3])
	}

	onReject := fuchsian.WithOnReject(func(i int, err error) {
		log.WithFields(logrus.Fields{
			"index":     i,
			"generator": raw[i].String(),
		}).WithError(err).Warn("generator rejected")
		res.Rejected = append(res.Rejected, Rejection{Index: i, Reason: err.Error()})
	})
	tolOpt := fuchsian.WithTolerance(req.GroupTolerance())

	if req.Policy == config.PolicyStrict {
		return fuchsian.NewStrict(raw, tolOpt, onReject)
	}

	return fuchsian.NewProjected(raw, tolOpt, onReject)
}

func run[S any](
	ctx context.Context,
	req *config.Request,
	log logrus.FieldLogger,
	res *Result,
	g fuchsian.Group[float64],
	base S,
	act action.Action[float64, S],
	check action.Action[float64, S],
	eq group.Equality[S],
	convert func(S) Record,
	opts []orbit.Option,
) error {
	// Stage 3: laws
	if req.SelfCheck {
		if err := SelfCheck(g, base, check, eq); err != nil {
			return err
		}
		log.Debug("self-check passed")
		if err := ctx.Err(); err != nil {
			return err
		}
	}

	// Stage 4: sample
	picks := make([]int, 0, req.Count)
	opts = append(opts, orbit.WithOnStep(func(_, pick int) { picks = append(picks, pick) }))
	o, err := orbit.Sample(g, base, req.Count, act, opts...)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	// Stage 5: convert
	res.Records = make([]Record, len(o.Points))
	for i, p := range o.Points {
		rec := convert(p)
		rec.Step, rec.Pick = i, picks[i]
		res.Records[i] = rec
	}

	return nil
}

// lawTolerance is the comparison tolerance of the self-checks. The checked
// action uses at least this threshold too: a composition through a pole
// rounds to a tiny non-zero denominator on one side and to ∞ on the other.
var lawTolerance = numeric.Within(1e-9)

// looser returns the larger threshold; Exact counts as zero.
func looser(a, b numeric.Tolerance) numeric.Tolerance {
	ea, _ := a.Value()
	eb, _ := b.Value()
	if ea >= eb {
		return a
	}

	return b
}
