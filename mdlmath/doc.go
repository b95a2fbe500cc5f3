// Package mdlmath provides the numeric substrate shared by every other
// package in this module: the Continuous value model (§6), bounded
// universal code lengths, log-factorial/log-Bell helpers, and the
// decade-based precision helpers that costmodel's epsilon-bin histogram
// grid derivation builds on.
//
// Everything here is pure and allocation-free on the hot path. Nothing in
// this package touches I/O, randomness, or mutable shared state.
//
// Numerical discipline: all arithmetic uses 64-bit IEEE 754. Epsilon is a
// single package constant (Epsilon = 1e-6) used both as the "strictly
// better" comparison threshold and as the clamp for small negative
// residues produced by algebraic ΔCost derivations.
package mdlmath
