// Package granularity implements the granularity ladder: a logarithmic
// sweep of partition resolutions driven by a QuantileBuilder that assigns
// original rows to quantile partiles deterministically (spec.md §4.C.1).
//
// Grounded on the teacher's union-find-driven sweep style in
// prim_kruskal/kruskal.go (a single deterministic pass building up
// structure incrementally, validated against a running invariant) and
// tsp/two_opt.go's soft-budget loop shape, adapted here to the spec's
// eligibility rule rather than a time budget.
package granularity
