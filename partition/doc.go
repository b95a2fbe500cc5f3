// Package partition implements component C, the Partitioner: granularity
// sweep (granularity package) + merge-based agglomerative construction +
// post-optimization, specialized to discretization, grouping, and
// histograms (spec.md §4.C).
//
// Groups and merge candidates live in an arena addressed by small integer
// handles rather than pointers, per the "cyclic graphs between groups and
// merges" design note (spec.md §9): one contiguous slice of groups owned
// by the optimization context, a lower-triangular slice of merge
// candidates indexed by (i*(i-1)/2 + j), and a sorted-by-modality-count
// index holding weak back-handles that are nulled (not dangled) on
// removal. This mirrors the teacher's union-find arena in
// prim_kruskal/kruskal.go, where parent/rank live in flat slices addressed
// by vertex index rather than linked structures.
package partition
