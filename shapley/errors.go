// SPDX-License-Identifier: MIT
//
// File: errors.go — sentinel errors for the shapley package.
package shapley

import "errors"

// ErrInvalidWeight indicates a non-positive attribute weight was passed to
// Classification or Regression (spec.md §4.E: "attribute weight w > 0").
var ErrInvalidWeight = errors.New("shapley: attribute weight must be positive")

// ErrNotBivariate indicates BuildUnivariateDataGridStats was called on a
// grid whose source attribute count is not exactly 2.
var ErrNotBivariate = errors.New("shapley: grid does not carry exactly two source attributes")

// ErrNotUnivariate indicates Classification or Regression received a grid
// whose source attribute count, after any bivariate projection, is not 1.
var ErrNotUnivariate = errors.New("shapley: grid must reduce to a single source attribute")

// ErrEmptyTarget indicates a target attribute or partition had zero parts.
var ErrEmptyTarget = errors.New("shapley: target attribute has zero parts")

// ErrIndexOutOfRange indicates a Table accessor was called with a
// source-part or target-value index outside the table's bounds.
var ErrIndexOutOfRange = errors.New("shapley: table index out of range")

// ErrEmptyTotal indicates a Table aggregate was requested over a zero
// total instance count.
var ErrEmptyTotal = errors.New("shapley: total instance count is zero")
