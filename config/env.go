// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by ApplyEnv.
const (
	EnvMode      = "HYPERBOLIC_MODE"
	EnvCount     = "HYPERBOLIC_COUNT"
	EnvSeed      = "HYPERBOLIC_SEED"
	EnvTolerance = "HYPERBOLIC_TOLERANCE"
)

// ApplyEnv loads envFile (if non-empty) into the process environment without
// overriding existing variables, then applies HYPERBOLIC_* overrides to r.
func ApplyEnv(r *Request, envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("load env (%s): %w", envFile, err)
		}
	}

	if v, ok := lookup(EnvMode); ok {
		r.Mode = v
	}
	if v, ok := lookup(EnvCount); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvCount, v, ErrInvalidRequest)
		}
		r.Count = n
	}
	if v, ok := lookup(EnvSeed); ok {
		s, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvSeed, v, ErrInvalidRequest)
		}
		r.Seed = s
	}
	if v, ok := lookup(EnvTolerance); ok {
		tol, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvTolerance, v, ErrInvalidRequest)
		}
		r.Tolerance = tol
	}

	return nil
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)

	return v, ok && v != ""
}
