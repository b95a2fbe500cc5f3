// Package interrupt provides cooperative cancellation for long-running
// partition and histogram optimizations (spec.md §5). Hot loops poll a
// Token cheaply and unwind to a telemetry.ErrInterrupted return rather
// than being killed mid-mutation, mirroring the soft time-budget check in
// the teacher's tsp/two_opt.go (a periodic deadline check inside the
// improvement loop, not a goroutine-killing context cancel).
package interrupt
