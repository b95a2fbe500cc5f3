// SPDX-License-Identifier: MIT
//
// File: errors.go — sentinel errors for the partition package.
package partition

import "errors"

// ErrEmptySource indicates Discretize/Group/Histogram was called on a
// table with zero vectors.
var ErrEmptySource = errors.New("partition: empty source table")

// ErrKindMismatch indicates a table's Kind does not match the requested
// operation (e.g. Histogram called on a Dense-only grouping table).
var ErrKindMismatch = errors.New("partition: vector kind mismatch")

// ErrInvalidHandle indicates a group or merge handle was stale (the
// sentinel handleInvalid) or out of range.
var ErrInvalidHandle = errors.New("partition: invalid arena handle")

// ErrTooFewGroups indicates an operation that requires at least a given
// group count (e.g. a with-garbage variant needing >= 3) was attempted on
// a smaller working set.
var ErrTooFewGroups = errors.New("partition: too few groups for this operation")

// ErrNotTwoClasses indicates SubgroupTwoClass was called on a vector size
// other than 2.
var ErrNotTwoClasses = errors.New("partition: subgrouping requires exactly two target classes")

// ErrGrouperAlreadyRegistered indicates Register was called twice for the
// same (targetType, name) key, whether or not the registry was frozen.
var ErrGrouperAlreadyRegistered = errors.New("partition: grouper already registered")

// ErrGrouperNotFound indicates Lookup found no grouper for the requested
// (targetType, name) key.
var ErrGrouperNotFound = errors.New("partition: grouper not found")
