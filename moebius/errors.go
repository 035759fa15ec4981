// SPDX-License-Identifier: MIT

package moebius

import "errors"

// ErrSingular is returned when a transformation's determinant is zero under
// the given tolerance, so no inverse exists.
var ErrSingular = errors.New("moebius: transformation is not invertible")
