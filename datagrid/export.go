// SPDX-License-Identifier: MIT
//
// File: export.go — cross-sections and interest statistics over a Grid
// (spec.md §4.D).
package datagrid

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// SourceCell groups one source-attribute part tuple with its per-target-
// part frequency vector, as produced by ExportSourceCellsAt.
type SourceCell struct {
	SourcePartIndices  []int
	TargetFrequencies  []int64
}

// ExportSourceCellsAt groups the grid's cells by source-attribute tuple,
// each carrying the per-target-part frequency vector along the attribute
// at targetAttrIdx (spec.md §4.D).
//
// Complexity: O(∏ K_i).
func (g *Grid) ExportSourceCellsAt(targetAttrIdx int) ([]SourceCell, error) {
	if !g.cellsCreated {
		return nil, ErrCellsNotCreated
	}
	if targetAttrIdx < 0 || targetAttrIdx >= len(g.attributes) {
		return nil, ErrInvalidTargetAttribute
	}
	targetParts := g.attributes[targetAttrIdx].PartCount()

	type key struct{ k string }
	index := make(map[string]int)
	var cells []SourceCell

	for cellIdx := range g.cellFrequencies {
		indices, _ := g.ComputeIndicesForCell(cellIdx)
		srcIndices := make([]int, 0, len(indices)-1)
		for i, v := range indices {
			if i != targetAttrIdx {
				srcIndices = append(srcIndices, v)
			}
		}
		k := encodeIndices(srcIndices)
		ci, ok := index[k]
		if !ok {
			ci = len(cells)
			index[k] = ci
			cells = append(cells, SourceCell{
				SourcePartIndices: srcIndices,
				TargetFrequencies: make([]int64, targetParts),
			})
		}
		cells[ci].TargetFrequencies[indices[targetAttrIdx]] += g.cellFrequencies[cellIdx]
	}
	return cells, nil
}

// ExportAttributePartFrequenciesAt returns the marginal frequency of each
// part of attribute k, summed over every other attribute's parts.
//
// Complexity: O(∏ K_i).
func (g *Grid) ExportAttributePartFrequenciesAt(k int) ([]int64, error) {
	if !g.cellsCreated {
		return nil, ErrCellsNotCreated
	}
	if k < 0 || k >= len(g.attributes) {
		return nil, ErrIndexOutOfRange
	}
	out := make([]int64, g.attributes[k].PartCount())
	for cellIdx, freq := range g.cellFrequencies {
		if freq == 0 {
			continue
		}
		indices, _ := g.ComputeIndicesForCell(cellIdx)
		out[indices[k]] += freq
	}
	return out, nil
}

// InterestByCell computes the per-source-cell interest at targetAttrIdx:
//
//	interest(s) = Σ_t p_t(s) · log(p_t(s) / p_t^global)
//
// weighted by the source cell's frequency and normalized to a percentage
// of the total interest across all source cells (spec.md §4.D).
//
// Complexity: O(∏ K_i).
func (g *Grid) InterestByCell(targetAttrIdx int) ([]SourceCell, []float64, error) {
	cells, err := g.ExportSourceCellsAt(targetAttrIdx)
	if err != nil {
		return nil, nil, err
	}
	global, err := g.ExportAttributePartFrequenciesAt(targetAttrIdx)
	if err != nil {
		return nil, nil, err
	}
	globalTotal := float64(sumInt64(global))
	globalP := make([]float64, len(global))
	for i, f := range global {
		if globalTotal > 0 {
			globalP[i] = float64(f) / globalTotal
		}
	}

	raw := make([]float64, len(cells))
	for ci, cell := range cells {
		n := float64(sumInt64(cell.TargetFrequencies))
		if n == 0 {
			continue
		}
		var acc float64
		for t, f := range cell.TargetFrequencies {
			if f == 0 || globalP[t] == 0 {
				continue
			}
			p := float64(f) / n
			acc += p * math.Log(p/globalP[t])
		}
		raw[ci] = acc * n
	}

	total := floats.Sum(raw)
	pct := make([]float64, len(raw))
	if total > 0 {
		for i, v := range raw {
			pct[i] = 100 * v / total
		}
	}
	return cells, pct, nil
}

func sumInt64(v []int64) int64 {
	var s int64
	for _, x := range v {
		s += x
	}
	return s
}

func encodeIndices(indices []int) string {
	// Fixed-width encoding keeps distinct tuples distinct without
	// separators colliding (e.g. [1,23] vs [12,3]).
	b := make([]byte, 0, len(indices)*8)
	for _, v := range indices {
		b = append(b,
			byte(v>>24), byte(v>>16), byte(v>>8), byte(v),
		)
	}
	return string(b)
}
