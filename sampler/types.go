// SPDX-License-Identifier: MIT

package sampler

import (
	"errors"

	"github.com/katalvlaran/hyperbolic/config"
)

// ErrSelfCheck is returned when a group or action law fails on the request's
// generators and base point.
var ErrSelfCheck = errors.New("sampler: self-check failed")

// Result is one sampled orbit in encodable form.
type Result struct {
	RunID      string        `json:"run_id" yaml:"run_id"`
	Space      config.Space  `json:"space" yaml:"space"`
	Policy     config.Policy `json:"policy" yaml:"policy"`
	Mode       string        `json:"mode" yaml:"mode"`
	Seed       int64         `json:"seed,omitempty" yaml:"seed,omitempty"`
	Generators [][4]float64  `json:"generators" yaml:"generators"` // admitted, normalized
	Rejected   []Rejection   `json:"rejected,omitempty" yaml:"rejected,omitempty"`
	Records    []Record      `json:"records" yaml:"records"`
}

// Rejection is an input generator the policy dropped.
type Rejection struct {
	Index  int    `json:"index" yaml:"index"`
	Reason string `json:"reason" yaml:"reason"`
}

// Record is one orbit point. Exactly one of Point, Boundary, Geodesic and
// Horocycle is set.
type Record struct {
	Step      int        `json:"step" yaml:"step"`
	Pick      int        `json:"pick" yaml:"pick"` // index into the picking pool
	Point     *Point     `json:"point,omitempty" yaml:"point,omitempty"`
	Boundary  *Boundary  `json:"boundary,omitempty" yaml:"boundary,omitempty"`
	Geodesic  *Geodesic  `json:"geodesic,omitempty" yaml:"geodesic,omitempty"`
	Horocycle *Horocycle `json:"horocycle,omitempty" yaml:"horocycle,omitempty"`

	// Curve is the polyline of a geodesic or horocycle, when requested.
	Curve [][2]float64 `json:"curve,omitempty" yaml:"curve,omitempty"`
}

// Point is z = Re + i·Im.
type Point struct {
	Re float64 `json:"re" yaml:"re"`
	Im float64 `json:"im" yaml:"im"`
}

// Boundary is ∞ or a real value.
type Boundary struct {
	Infinity bool    `json:"infinity,omitempty" yaml:"infinity,omitempty"`
	Value    float64 `json:"value" yaml:"value"`
}

// Geodesic is the oriented endpoint pair.
type Geodesic struct {
	Start Boundary `json:"start" yaml:"start"`
	End   Boundary `json:"end" yaml:"end"`
}

// Horocycle is a height line or a tangency circle.
type Horocycle struct {
	Kind       string  `json:"kind" yaml:"kind"` // "line" or "circle"
	Touchpoint float64 `json:"touchpoint,omitempty" yaml:"touchpoint,omitempty"`
	Size       float64 `json:"size" yaml:"size"` // height or diameter
}
