// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseGenerator parses "a,b,c,d" into a generator.
func ParseGenerator(s string) ([4]float64, error) {
	var g [4]float64
	vals, err := ParseFloats(s)
	if err != nil {
		return g, err
	}
	if len(vals) != 4 {
		return g, fmt.Errorf("generator %q: want 4 entries, got %d: %w", s, len(vals), ErrInvalidRequest)
	}
	copy(g[:], vals)

	return g, nil
}

// ParseFloats parses a comma-separated list of floats. Blank input yields nil.
func ParseFloats(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("value %q: %w", p, ErrInvalidRequest)
		}
		out = append(out, v)
	}

	return out, nil
}
