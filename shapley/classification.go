// SPDX-License-Identifier: MIT
//
// File: classification.go — Naive-Bayes Shapley contributions for a
// categorical target (spec.md §4.E).
package shapley

import (
	"math"

	"github.com/katalvlaran/modl/datagrid"
)

// Classification computes the Shapley contribution table for a grid whose
// target attribute (at targetAttrIdx) is categorical. If the grid carries
// two source attributes, they are first collapsed via
// BuildUnivariateDataGridStats; the grid must then carry exactly one
// source attribute. weight is the per-attribute Naive-Bayes weight w > 0.
func Classification(g *datagrid.Grid, targetAttrIdx int, weight float64) (*Table, error) {
	if weight <= 0 {
		return nil, ErrInvalidWeight
	}
	working := g
	if g.SourceAttributeNumber() == 2 {
		projected, err := BuildUnivariateDataGridStats(g, targetAttrIdx)
		if err != nil {
			return nil, err
		}
		working = projected
		targetAttrIdx = 1
	}
	if working.SourceAttributeNumber() != 1 {
		return nil, ErrNotUnivariate
	}

	freq, _, _, _, err := sourceTargetFrequencies(working, targetAttrIdx)
	if err != nil {
		return nil, err
	}
	return classificationFromFrequencies(int64MatrixToFloat64(freq), weight)
}

// sourceTargetFrequencies collects the (sourcePart, targetPart) int64
// frequency matrix for a univariate-source grid, along with the row
// totals, column totals, and grand total.
func sourceTargetFrequencies(g *datagrid.Grid, targetAttrIdx int) (freq [][]int64, sourceTotal, targetTotal []int64, n int64, err error) {
	cells, err := g.ExportSourceCellsAt(targetAttrIdx)
	if err != nil {
		return nil, nil, nil, 0, err
	}
	sourceAttr, err := g.Attribute(0)
	if err != nil {
		return nil, nil, nil, 0, err
	}
	targetAttr, err := g.Attribute(targetAttrIdx)
	if err != nil {
		return nil, nil, nil, 0, err
	}
	s := sourceAttr.PartCount()
	t := targetAttr.PartCount()
	if s == 0 || t == 0 {
		return nil, nil, nil, 0, ErrEmptyTarget
	}

	freq = make([][]int64, s)
	for i := range freq {
		freq[i] = make([]int64, t)
	}
	for _, cell := range cells {
		si := cell.SourcePartIndices[0]
		for ti, f := range cell.TargetFrequencies {
			freq[si][ti] += f
		}
	}

	sourceTotal = make([]int64, s)
	targetTotal = make([]int64, t)
	for si := 0; si < s; si++ {
		for ti := 0; ti < t; ti++ {
			sourceTotal[si] += freq[si][ti]
			targetTotal[ti] += freq[si][ti]
			n += freq[si][ti]
		}
	}
	return freq, sourceTotal, targetTotal, n, nil
}

// classificationFromFrequencies applies spec.md §4.E's classification
// formula directly over a float64 (sourcePartCount x targetValueCount)
// frequency matrix, shared by Classification (int64-exact counts) and
// Regression (fractionally split synthetic counts).
func classificationFromFrequencies(freq [][]float64, weight float64) (*Table, error) {
	s := len(freq)
	if s == 0 {
		return nil, ErrEmptyTarget
	}
	t := len(freq[0])
	if t == 0 {
		return nil, ErrEmptyTarget
	}

	sourceTotal := make([]float64, s)
	targetTotal := make([]float64, t)
	var n float64
	for si := 0; si < s; si++ {
		for ti := 0; ti < t; ti++ {
			sourceTotal[si] += freq[si][ti]
			targetTotal[ti] += freq[si][ti]
			n += freq[si][ti]
		}
	}

	table := newTable(s, t)
	epsOne := 1.0 / (n + 1)
	epsAll := float64(t)*epsOne - epsOne

	terms := make([]float64, s)
	for ti := 0; ti < t; ti++ {
		nt := targetTotal[ti]
		for si := 0; si < s; si++ {
			ns := sourceTotal[si]
			nst := freq[si][ti]
			pOne := (nst + epsOne) / (nt + float64(s)*epsOne)
			pAll := (ns - nst + epsAll) / (n - nt + float64(s)*epsAll)
			terms[si] = math.Log(pOne / pAll)
		}
		var et float64
		for si := 0; si < s; si++ {
			et += (sourceTotal[si] / n) * terms[si]
		}
		for si := 0; si < s; si++ {
			table.set(si, ti, weight*(terms[si]-et))
		}
	}
	return table, nil
}

// int64MatrixToFloat64 converts a [][]int64 frequency matrix to [][]float64
// for reuse by classificationFromFrequencies.
func int64MatrixToFloat64(freq [][]int64) [][]float64 {
	out := make([][]float64, len(freq))
	for i, row := range freq {
		out[i] = make([]float64, len(row))
		for j, v := range row {
			out[i][j] = float64(v)
		}
	}
	return out
}
