// SPDX-License-Identifier: MIT

package geometry

import "errors"

// ErrDegenerateGeodesic is returned when a geodesic's endpoints coincide.
var ErrDegenerateGeodesic = errors.New("geometry: geodesic endpoints must be distinct")

const panicOutsideHalfPlane = "geometry: HyperbolicDistance: point outside the upper half-plane"
