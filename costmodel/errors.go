// SPDX-License-Identifier: MIT
//
// File: errors.go — sentinel errors for the costmodel package.
package costmodel

import "errors"

// ErrNegativeGranularity indicates a Config was built with granularity < 0.
var ErrNegativeGranularity = errors.New("costmodel: negative granularity")

// ErrNonPositiveTotalInstanceNumber indicates totalInstanceNumber <= 0.
var ErrNonPositiveTotalInstanceNumber = errors.New("costmodel: total instance number must be positive")

// ErrNegativeValueNumber indicates valueNumber < 0.
var ErrNegativeValueNumber = errors.New("costmodel: negative value number")

// ErrNegativeClassValueNumber indicates classValueNumber < 0.
var ErrNegativeClassValueNumber = errors.New("costmodel: negative class value number")

// ErrNegativeAttributeCost indicates attributeCost < 0.
var ErrNegativeAttributeCost = errors.New("costmodel: negative attribute cost")

// ErrInvalidPartNumber indicates a part count K outside its valid domain
// for the operation (e.g. K < 1, or K greater than the value number).
var ErrInvalidPartNumber = errors.New("costmodel: invalid part number")

// ErrInvalidGarbageModalityNumber indicates a garbage modality count that
// does not satisfy 0 <= garbage < valueNumber.
var ErrInvalidGarbageModalityNumber = errors.New("costmodel: invalid garbage modality number")

// ErrNilVector indicates PartCost received a nil frequency vector pointer.
var ErrNilVector = errors.New("costmodel: nil frequency vector")
