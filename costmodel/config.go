// SPDX-License-Identifier: MIT
//
// File: config.go — Config and its functional options.
package costmodel

import "math"

// MinValuesForGarbage is the default threshold V must reach before the
// garbage-hierarchy prior term applies (spec.md §4.B: "MIN_V_FOR_GARBAGE
// defaults to 7 (configurable)").
const MinValuesForGarbage = 7

// Config carries the five fields the source's cost-class hierarchy shares
// across every flavor: the chosen granularity, the total instance count,
// the (possibly granularized) value count, the target class count, and
// the per-attribute construction-cost prior. Config is immutable once
// built; build a new one rather than mutating fields in place.
type Config struct {
	granularity          int
	totalInstanceNumber   int
	valueNumber           int
	classValueNumber      int
	attributeCost         float64
	minValuesForGarbage   int
}

// Option customizes a Config before it is built. Option constructors
// validate and panic on meaningless inputs; the cost functions themselves
// never panic (teacher convention, builder/options.go).
type Option func(*Config)

// WithGranularity sets the granularity index g used by the L_bounded
// "choice of granularity" term. Panics if g < 0.
func WithGranularity(g int) Option {
	if g < 0 {
		panic("costmodel: WithGranularity(g<0)")
	}
	return func(c *Config) { c.granularity = g }
}

// WithAttributeCost sets the per-attribute construction-cost prior added
// when the partition is informative (K > 1). Panics if cost < 0.
func WithAttributeCost(cost float64) Option {
	if cost < 0 {
		panic("costmodel: WithAttributeCost(cost<0)")
	}
	return func(c *Config) { c.attributeCost = cost }
}

// WithMinValuesForGarbage overrides MinValuesForGarbage. Panics if n < 0.
func WithMinValuesForGarbage(n int) Option {
	if n < 0 {
		panic("costmodel: WithMinValuesForGarbage(n<0)")
	}
	return func(c *Config) { c.minValuesForGarbage = n }
}

// NewConfig builds a Config for totalInstanceNumber instances, valueNumber
// (granularized) values, and classValueNumber target classes, applying
// opts in order. Returns ErrNonPositiveTotalInstanceNumber /
// ErrNegativeValueNumber / ErrNegativeClassValueNumber on invalid base
// arguments.
func NewConfig(totalInstanceNumber, valueNumber, classValueNumber int, opts ...Option) (*Config, error) {
	if totalInstanceNumber <= 0 {
		return nil, ErrNonPositiveTotalInstanceNumber
	}
	if valueNumber < 0 {
		return nil, ErrNegativeValueNumber
	}
	if classValueNumber < 0 {
		return nil, ErrNegativeClassValueNumber
	}
	c := &Config{
		totalInstanceNumber: totalInstanceNumber,
		valueNumber:         valueNumber,
		classValueNumber:    classValueNumber,
		minValuesForGarbage: MinValuesForGarbage,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// GMax returns ⌈log2(N)⌉, the maximum granularity index (spec.md §4.C.1).
func (c *Config) GMax() int {
	if c.totalInstanceNumber <= 1 {
		return 0
	}
	return int(math.Ceil(math.Log2(float64(c.totalInstanceNumber))))
}

// Granularity returns the configured granularity index.
func (c *Config) Granularity() int { return c.granularity }

// TotalInstanceNumber returns N.
func (c *Config) TotalInstanceNumber() int { return c.totalInstanceNumber }

// ValueNumber returns V, the (granularized) value count.
func (c *Config) ValueNumber() int { return c.valueNumber }

// ClassValueNumber returns T, the target class count.
func (c *Config) ClassValueNumber() int { return c.classValueNumber }

// AttributeCost returns the configured attribute construction-cost prior.
func (c *Config) AttributeCost() float64 { return c.attributeCost }

// MinValuesForGarbage returns the configured garbage-eligibility threshold.
func (c *Config) MinValuesForGarbage() int { return c.minValuesForGarbage }
