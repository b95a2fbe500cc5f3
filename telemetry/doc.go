// Package telemetry provides the structured logging substrate shared by
// every other package: a thin wrapper over zerolog, grounded on the
// reporting logger pattern from the wider example pack (chaos-utils'
// pkg/reporting/logger.go). It also defines the three error kinds
// spec.md §7 groups failures into (ConfigurationError, InvariantViolation,
// Interrupted) and a helper for logging a caught invariant violation
// before it is returned to the caller.
package telemetry
