// SPDX-License-Identifier: MIT
//
// File: errors.go — sentinel errors for the granularity package.
package granularity

import "errors"

// ErrEmptyFrequencies indicates QuantileBuilder was built from a zero-row
// frequency slice.
var ErrEmptyFrequencies = errors.New("granularity: empty frequency slice")

// ErrNegativeFrequency indicates a negative per-row frequency was supplied.
var ErrNegativeFrequency = errors.New("granularity: negative frequency")

// ErrInvalidGranularity indicates a requested granularity g is outside
// [1, GMax].
var ErrInvalidGranularity = errors.New("granularity: invalid granularity index")
