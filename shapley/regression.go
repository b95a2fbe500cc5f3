// SPDX-License-Identifier: MIT
//
// File: regression.go — Shapley contributions for a continuous target,
// discretized into intervals (spec.md §4.E).
package shapley

import "github.com/katalvlaran/modl/datagrid"

// Regression computes the Shapley contribution table for a grid whose
// target attribute (at targetAttrIdx) is a discretized continuous value
// (an interval partition). Each target interval t is split into a
// one-rank representative and "the rest": the representative's frequency
// is taken as a uniform 1/n_t fraction of the interval's instances, the
// remaining (n_t-1)/n_t fraction stands in for the rest of the interval.
// This reduces the continuous case to the classification formula over a
// synthetic 2*targetValueCount-column frequency matrix, from which only
// the representative columns are kept for the returned table.
func Regression(g *datagrid.Grid, targetAttrIdx int, weight float64) (*Table, error) {
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

	freq, _, targetTotal, _, err := sourceTargetFrequencies(working, targetAttrIdx)
	if err != nil {
		return nil, err
	}
	s := len(freq)
	t := len(targetTotal)

	synthetic := make([][]float64, s)
	for si := range synthetic {
		synthetic[si] = make([]float64, 2*t)
	}
	for ti := 0; ti < t; ti++ {
		nt := float64(targetTotal[ti])
		if nt == 0 {
			continue
		}
		for si := 0; si < s; si++ {
			nst := float64(freq[si][ti])
			synthetic[si][2*ti] = nst / nt
			synthetic[si][2*ti+1] = nst * (nt - 1) / nt
		}
	}

	full, err := classificationFromFrequencies(synthetic, weight)
	if err != nil {
		return nil, err
	}

	out := newTable(s, t)
	for si := 0; si < s; si++ {
		for ti := 0; ti < t; ti++ {
			v, err := full.Get(si, 2*ti)
			if err != nil {
				return nil, err
			}
			out.set(si, ti, v)
		}
	}
	return out, nil
}
