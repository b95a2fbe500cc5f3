// Package costmodel implements component B: pure, stateless partition and
// part cost functions under three priors — MODL discretization, MODL
// grouping with an optional garbage group, and histogram G-Enum — plus
// the construction/preparation/data decomposition and the K−1 versus K
// delta-cost helpers (spec.md §4.B).
//
// Grounded on
// original_source/Learning/KWDataPreparation/KWUnivariatePartitionCost.cpp's
// KWUnivariatePartitionCosts/KWMODLDiscretizationCosts/KWMODLGroupingCosts
// hierarchy, collapsed into a Go tagged variant per the "deep inheritance
// of cost models" design note (spec.md §9): one Config, one set of
// top-level functions per flavor, dispatched by call site rather than
// virtual method.
//
// Config carries the five fields the source's cost classes share
// (granularity, total instance number, value number, class value number,
// attribute cost) and is built via functional options, following the
// teacher's builder/options.go convention: option constructors validate
// and panic on meaningless inputs, algorithms themselves never panic.
package costmodel
