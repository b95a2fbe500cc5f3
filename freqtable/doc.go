// Package freqtable implements component A of the MDL partitioning
// engine: FrequencyVector and FrequencyTable, the substrate every other
// package costs and optimizes over (spec.md §4.A).
//
// A FrequencyVector is a tagged variant — Dense (per-target-class counts)
// or Histogram (frequency, length-in-bins) — carrying a modality count and
// a weak back-reference slot used as an O(1) removal handle by the
// optimizer's sorted modality index (spec.md §3, §9). The back-reference
// is an int handle, not a pointer, per the arena-and-handles REDESIGN FLAG.
//
// A Table is an ordered, same-kind, same-size sequence of vectors plus
// granularity/garbage/value-count metadata. Mutating methods keep the
// memoized total in sync and return a typed error instead of panicking
// when an invariant would break — the teacher's sentinel-error discipline
// (core/types.go's sentinel block) generalized to this package.
package freqtable
