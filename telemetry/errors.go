// SPDX-License-Identifier: MIT
//
// File: errors.go — the three error kinds spec.md §7 groups engine
// failures into, plus logging helpers bridging them to a Logger.
package telemetry

import (
	"errors"
	"fmt"
)

// ConfigurationError wraps an invalid caller-supplied option or parameter
// (spec.md §7): a bad functional option, an out-of-range threshold.
type ConfigurationError struct {
	Component string
	Reason    string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("modl: %s: configuration error: %s", e.Component, e.Reason)
}

// NewConfigurationError builds a ConfigurationError.
func NewConfigurationError(component, reason string) error {
	return &ConfigurationError{Component: component, Reason: reason}
}

// InvariantViolation wraps a structural invariant that failed internally —
// a bug in the engine, not a caller mistake (spec.md §7).
type InvariantViolation struct {
	Component string
	Detail    string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("modl: %s: invariant violation: %s", e.Component, e.Detail)
}

// NewInvariantViolation builds an InvariantViolation.
func NewInvariantViolation(component, detail string) error {
	return &InvariantViolation{Component: component, Detail: detail}
}

// ErrInterrupted indicates an operation observed interrupt.Token.IsRequested
// and unwound cooperatively before completing (spec.md §5, §7).
var ErrInterrupted = errors.New("modl: operation interrupted")

// LogInvariantViolation logs err at Error level with the given component
// and field context, then returns err unchanged — a one-line bridge
// between a caught InvariantViolation and the logger, so call sites read
// as "return telemetry.LogInvariantViolation(log, ...)" rather than a
// separate log line plus a separate return.
func LogInvariantViolation(l *Logger, component, detail string, fields ...interface{}) error {
	err := NewInvariantViolation(component, detail)
	if l == nil {
		l = Nop()
	}
	l.Error(err.Error(), fields...)
	return err
}

// IsConfigurationError reports whether err is (or wraps) a ConfigurationError.
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}

// IsInvariantViolation reports whether err is (or wraps) an InvariantViolation.
func IsInvariantViolation(err error) bool {
	var iv *InvariantViolation
	return errors.As(err, &iv)
}
