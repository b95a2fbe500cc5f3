// Package modl is your in-process engine for Minimum Description Length
// (MDL) univariate partitioning: picking, for one variable and a
// categorical target, the partition — discretization intervals, value
// groups, or histogram bins — that minimizes a closed-form description
// length.
//
// 🚀 What is modl?
//
//	A pure, single-threaded, cooperative-cancellation library that brings
//	together:
//
//	  • A frequency-table substrate: freqtable.Table carries per-part ×
//	    per-class counts plus granularity/garbage bookkeeping.
//	  • A closed-form cost model: costmodel prices discretizations,
//	    groupings (with an optional garbage catch-all), and histograms.
//	  • A granularity ladder + merge-based optimizer: partition searches
//	    the partition space and post-optimizes the result.
//	  • A K-dimensional data grid: datagrid composes partitions for
//	    cross-variable analysis.
//	  • A Shapley valuator: shapley turns a trained grid into
//	    per-(part, target-value) contributions.
//
// ✨ Why choose modl?
//
//   - Deterministic     — every stochastic step is seeded via rngstream.
//   - Interruptible      — every O(n²) inner loop polls an interrupt.Token.
//   - Numerically tight  — ΔCost and recomputed cost agree to 1e-6.
//   - Pure Go            — no cgo, a small and deliberate dependency set.
//
// Everything is organized under one module, several subpackages:
//
//	mdlmath/     — Continuous numeric model, universal code lengths, log-Bell.
//	freqtable/   — FrequencyVector/FrequencyTable substrate (component A).
//	costmodel/   — MODL discretization/grouping/histogram cost (component B).
//	granularity/ — the logarithmic granularity ladder and QuantileBuilder.
//	interrupt/   — the cooperative cancellation token.
//	rngstream/   — deterministic PRNG derivation for the fast optimizer.
//	partition/   — the Partitioner: merge-based construction + post-optimization (component C).
//	datagrid/    — the K-dimensional DataGrid (component D).
//	shapley/     — the ShapleyValuator (component E).
//	telemetry/   — structured logging for invariant violations and traces.
//
// Dive into SPEC_FULL.md and DESIGN.md for the full requirements and the
// grounding ledger behind every package.
//
//	go get github.com/katalvlaran/modl
package modl
