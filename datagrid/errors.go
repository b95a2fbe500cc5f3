// SPDX-License-Identifier: MIT
//
// File: errors.go — sentinel errors for the datagrid package.
//
// Callers MUST use errors.Is(err, ErrX) to branch on semantics; sentinels
// are never wrapped with formatted strings at definition site (teacher
// convention, see builder/errors.go in the katalvlaran/lvlath pack).
package datagrid

import "errors"

// ErrNilPartition indicates a nil *AttributePartition was passed to
// AddAttribute.
var ErrNilPartition = errors.New("datagrid: nil attribute partition")

// ErrEmptyPartition indicates an attribute partition has zero parts; a
// Grid requires every attribute to contribute at least one part.
var ErrEmptyPartition = errors.New("datagrid: attribute partition has zero parts")

// ErrCellsAlreadyCreated indicates AddAttribute or SetSourceAttributeNumber
// was called after CreateAllCells, when the grid's shape is already frozen.
var ErrCellsAlreadyCreated = errors.New("datagrid: cells already created, shape is frozen")

// ErrCellsNotCreated indicates a cell-frequency operation was attempted
// before CreateAllCells allocated the flat buffer.
var ErrCellsNotCreated = errors.New("datagrid: cells not created yet")

// ErrDimensionMismatch indicates an index tuple's length does not match
// the grid's attribute count.
var ErrDimensionMismatch = errors.New("datagrid: dimension mismatch")

// ErrIndexOutOfRange indicates a part index (or flat cell index) fell
// outside its valid bounds.
var ErrIndexOutOfRange = errors.New("datagrid: index out of range")

// ErrNegativeFrequency indicates SetCellFrequency received a negative
// count.
var ErrNegativeFrequency = errors.New("datagrid: negative cell frequency")

// ErrInvalidSourceAttributeNumber indicates SetSourceAttributeNumber
// received a value outside [0, attributeCount-1] (spec.md §3: "K−1").
var ErrInvalidSourceAttributeNumber = errors.New("datagrid: invalid source attribute number")

// ErrInvalidTargetAttribute indicates an interest/export operation
// referenced a target attribute index outside the grid's attribute range.
var ErrInvalidTargetAttribute = errors.New("datagrid: invalid target attribute index")

// ErrUnsupportedValueKind indicates ComputePartIndexFor received a Value
// whose Continuous/Symbol kind does not match the partition's Kind.
var ErrUnsupportedValueKind = errors.New("datagrid: value kind does not match partition kind")
