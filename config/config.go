// SPDX-License-Identifier: MIT

// Package config describes one orbit request and loads it from a file, the
// environment and command-line values.
//
// A request is read from a single file (YAML, or JSON with comments and
// trailing commas), then HYPERBOLIC_* environment variables override the
// scalar fields, then Validate checks the whole request. A dotenv file may
// seed the environment first; it never overrides variables already set.
//
// Example request (YAML):
//
//	space: horocycle
//	policy: projected
//	generators:
//	  - [1, 1, 0, 1]
//	  - [0, -1, 1, 0]
//	base: [1]
//	count: 200
//	mode: random
//	seed: 7
//	curve_points: 64
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hyperbolic/numeric"
	"github.com/katalvlaran/hyperbolic/orbit"
)

var (
	// ErrInvalidRequest wraps every validation failure.
	ErrInvalidRequest = errors.New("config: invalid request")

	// ErrUnsupportedFormat is returned for request files with an unknown extension.
	ErrUnsupportedFormat = errors.New("config: unsupported request file format")
)

// Space names the geometric space an orbit lives in.
type Space string

const (
	SpacePoint     Space = "point"
	SpaceBoundary  Space = "boundary"
	SpaceGeodesic  Space = "geodesic"
	SpaceHorocycle Space = "horocycle"
)

// Policy names the group admission policy.
type Policy string

const (
	// PolicyProjected rescales inputs to determinant one.
	PolicyProjected Policy = "projected"
	// PolicyStrict keeps only inputs with determinant one.
	PolicyStrict Policy = "strict"
)

// Request is a complete orbit request.
type Request struct {
	// Space selects the action. Default: point.
	Space Space `yaml:"space" json:"space"`

	// Policy selects NewProjected or NewStrict. Default: projected.
	Policy Policy `yaml:"policy" json:"policy"`

	// Generators are raw matrices [a, b, c, d].
	Generators [][4]float64 `yaml:"generators" json:"generators"`

	// Base is the starting point; its shape depends on Space:
	//   point:     [re, im]
	//   boundary:  [t], or empty with BaseAtInfinity
	//   geodesic:  [start, end]
	//   horocycle: [height]
	Base []float64 `yaml:"base" json:"base"`

	// BaseAtInfinity starts a boundary orbit at ∞.
	BaseAtInfinity bool `yaml:"base_at_infinity" json:"base_at_infinity"`

	// Count is the number of orbit points. Default: 100.
	Count int `yaml:"count" json:"count"`

	// Mode is "sequential" or "random". Default: sequential.
	Mode string `yaml:"mode" json:"mode"`

	// Seed fixes random draws; 0 leaves them unseeded.
	Seed int64 `yaml:"seed" json:"seed"`

	// Tolerance is the admission tolerance; 0 means exact.
	Tolerance float64 `yaml:"tolerance" json:"tolerance"`

	// ActionTolerance is the near-zero threshold of the actions;
	// 0 means numeric.DefaultThreshold.
	ActionTolerance float64 `yaml:"action_tolerance" json:"action_tolerance"`

	// CurvePoints attaches K-sample polylines to geodesic and horocycle
	// orbits; 0 disables them.
	CurvePoints int `yaml:"curve_points" json:"curve_points"`

	// SelfCheck evaluates the group and action laws before sampling.
	SelfCheck bool `yaml:"self_check" json:"self_check"`
}

// Default returns the request defaults applied before a file is read.
func Default() *Request {
	return &Request{
		Space:  SpacePoint,
		Policy: PolicyProjected,
		Count:  100,
		Mode:   orbit.Sequential.String(),
	}
}

// Load reads a request file over Default. The extension picks the decoder:
// .yaml/.yml for YAML, .json/.jsonc for JSONC. Unknown fields are rejected.
func Load(path string) (*Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	req, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return req, nil
}

// Parse decodes data over Default; ext is a file extension such as ".yaml".
func Parse(data []byte, ext string) (*Request, error) {
	req := Default()

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(req); err != nil {
			return nil, fmt.Errorf("parsing request: %w", err)
		}
	case ".json", ".jsonc":
		dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		dec.DisallowUnknownFields()
		if err := dec.Decode(req); err != nil {
			return nil, fmt.Errorf("parsing request: %w", err)
		}
	default:
		return nil, fmt.Errorf("Parse: %q: %w", ext, ErrUnsupportedFormat)
	}

	return req, nil
}

// PickMode parses Mode.
func (r *Request) PickMode() (orbit.PickMode, error) {
	return orbit.ParseMode(r.Mode)
}

// GroupTolerance returns Exact for 0, Within(Tolerance) otherwise.
// Call after Validate.
func (r *Request) GroupTolerance() numeric.Tolerance {
	if r.Tolerance == 0 {
		return numeric.Exact
	}

	return numeric.Within(r.Tolerance)
}

// ActionTol returns Default() for 0, Within(ActionTolerance) otherwise.
// Call after Validate.
func (r *Request) ActionTol() numeric.Tolerance {
	if r.ActionTolerance == 0 {
		return numeric.Default()
	}

	return numeric.Within(r.ActionTolerance)
}
