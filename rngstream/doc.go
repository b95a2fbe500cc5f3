// Package rngstream centralizes deterministic random generation for the
// partitioning engine. Its one caller is partition.FastPostOptimize, which
// draws its randomized row and group visiting order from it; the merge
// search breaks ties by index and preprocessing uses no randomness
// (spec.md §9's "deterministic PRNG injection" design note).
//
// Grounded on the teacher's tsp/rng.go: same seed implies identical
// results across platforms, no time-based sources hidden anywhere, and
// independent substreams are derived via a SplitMix64-style avalanche mix
// rather than sharing one *rand.Rand across concurrent workers.
package rngstream
