// SPDX-License-Identifier: MIT
//
// File: errors.go — sentinel errors for the freqtable package.
package freqtable

import "errors"

// ErrIndexOutOfRange indicates a vector index fell outside [0, count).
var ErrIndexOutOfRange = errors.New("freqtable: index out of range")

// ErrSizeMismatch indicates a vector's size does not match the table's
// configured vectorSize.
var ErrSizeMismatch = errors.New("freqtable: vector size mismatch")

// ErrKindMismatch indicates a vector's variant (Dense/Histogram) does not
// match the table's configured kind.
var ErrKindMismatch = errors.New("freqtable: vector kind mismatch")

// ErrEmptyVectorNotAllowed indicates an attempt to store a zero-frequency
// vector in a table that already has more than one vector (spec.md §3:
// "With > 1 vector, no vector has zero frequency").
var ErrEmptyVectorNotAllowed = errors.New("freqtable: empty vector not allowed alongside other vectors")

// ErrGarbageRequiresThreeVectors indicates SetGarbagePartIndex was asked to
// designate a garbage part on a table with fewer than 3 vectors (spec.md §3).
var ErrGarbageRequiresThreeVectors = errors.New("freqtable: garbage group requires at least 3 vectors")

// ErrNegativeCount indicates a negative frequency was supplied.
var ErrNegativeCount = errors.New("freqtable: negative frequency")

// ErrInvariantViolation flags a structural invariant that failed
// internally (spec.md §7's InvariantViolation kind). Release builds return
// this wrapped around the null table rather than panicking; see
// telemetry.LogInvariantViolation.
var ErrInvariantViolation = errors.New("freqtable: invariant violation")
