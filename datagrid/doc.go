// Package datagrid implements the K-dimensional generalization of a
// freqtable.Table: an ordered list of attribute partitions plus a flat,
// row-major cell-frequency buffer over the product of their part counts
// (spec.md §4.D, component D).
//
// A Grid is built once (AddAttribute calls, then CreateAllCells) and is
// immutable in shape thereafter; only cell frequencies may still be
// populated via SetCellFrequency. This mirrors the teacher's
// matrix.Dense: a fixed-shape, flat-backed numeric container with
// allocation-conscious accessors (see matrix/impl_dense.go in the
// katalvlaran/lvlath pack this module is grounded on).
//
// Cell indexing is low-dimension-fastest row-major: for attributes with
// part counts n_0..n_{K-1}, cell (i_0,...,i_{K-1}) has flat index
//
//	idx = i_0 + i_1*n_0 + i_2*n_0*n_1 + ...
//
// Concurrency: a Grid is built and its cells are filled by a single
// goroutine, and it is read-only once its SetCellFrequency calls are done
// (CreateAllCells only allocates zeroed cells); no internal locking is provided
// (unlike core.Graph's per-concern RWMutex pair — the teacher locks
// because its Graph is mutated concurrently after construction; a Grid
// never is, per spec.md §3's "Lifecycle" rule).
package datagrid
