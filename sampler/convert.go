// SPDX-License-Identifier: MIT

package sampler

import (
	"github.com/katalvlaran/hyperbolic/geometry"
	"github.com/katalvlaran/hyperbolic/plot"
)

func pointRecord(z geometry.Complex[float64]) Record {
	return Record{Point: &Point{Re: z.Re, Im: z.Im}}
}

func boundaryOf(b geometry.BoundaryPoint[float64]) Boundary {
	v, ok := b.Value()

	return Boundary{Infinity: !ok, Value: v}
}

func boundaryRecord(b geometry.BoundaryPoint[float64]) Record {
	out := boundaryOf(b)

	return Record{Boundary: &out}
}

func geodesicRecord(k int) func(geometry.Geodesic[float64]) Record {
	return func(g geometry.Geodesic[float64]) Record {
		rec := Record{Geodesic: &Geodesic{Start: boundaryOf(g.Start()), End: boundaryOf(g.End())}}
		if k > 0 {
			pts, err := plot.Geodesic(g, k)
			if err == nil {
				rec.Curve = polyline(pts)
			}
		}
		return rec
	}
}

func horocycleRecord(k int) func(geometry.Horocycle[float64]) Record {
	return func(h geometry.Horocycle[float64]) Record {
		touch, _ := h.BoundaryPoint().Value()
		rec := Record{Horocycle: &Horocycle{
			Kind:       h.Kind().String(),
			Touchpoint: touch,
			Size:       h.HeightOrDiameter(),
		}}
		if k > 0 {
			pts, err := plot.Horocycle(h, k)
			if err == nil {
				rec.Curve = polyline(pts)
			}
		}
		return rec
	}
}

func polyline(pts []geometry.Complex[float64]) [][2]float64 {
	out := make([][2]float64, len(pts))
	for i, p := range pts {
		out[i] = [2]float64{p.Re, p.Im}
	}

	return out
}
