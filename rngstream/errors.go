// SPDX-License-Identifier: MIT
//
// File: errors.go — sentinel errors for the rngstream package.
package rngstream

import "errors"

// ErrNegativeSize indicates Permutation was asked for a negative-length
// permutation.
var ErrNegativeSize = errors.New("rngstream: negative permutation size")
