// SPDX-License-Identifier: MIT
//
// Package shapley converts a trained partition (expressed as a
// datagrid.Grid pairing a source attribute against a target attribute)
// into a per-(source-part, target-value) contribution table under a
// Naive-Bayes weighting scheme (spec.md §4.E).
//
// Classification targets go through Classification directly; a bivariate
// source is first collapsed into a single virtual cartesian-product
// attribute via BuildUnivariateDataGridStats. Regression targets (a
// continuous target discretized into intervals) go through Regression,
// which reduces to the classification formula over a synthetic
// one-rank-representative-vs-rest target built from each interval.
package shapley
