// SPDX-License-Identifier: MIT

package orbit

import "errors"

var (
	// ErrNoGenerators is returned when the group has no generators.
	ErrNoGenerators = errors.New("orbit: group has no generators")

	// ErrNegativeCount is returned for n < 0.
	ErrNegativeCount = errors.New("orbit: point count must be non-negative")

	// ErrUnknownMode is returned for an unrecognized pick mode.
	ErrUnknownMode = errors.New("orbit: unknown pick mode")
)
