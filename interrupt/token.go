// SPDX-License-Identifier: MIT
//
// File: token.go — Token: a cheap, poll-based cancellation signal.
package interrupt

import "sync/atomic"

// Token is polled by the optimizer's hot loops (granularity sweep, merge
// search, post-optimization passes) to decide whether to unwind early.
// IsRequested answers a plain cancellation question; IsRefreshNecessary
// additionally lets a caller rate-limit expensive UI/progress refreshes by
// comparing against a monotonically increasing freshness counter it
// tracks itself (spec.md §5).
type Token interface {
	IsRequested() bool
	IsRefreshNecessary(freshness uint64) bool
}

// Never is a Token that is never requested and never needs a refresh; the
// zero value for callers that don't want cancellation.
var Never Token = neverToken{}

type neverToken struct{}

func (neverToken) IsRequested() bool                    { return false }
func (neverToken) IsRefreshNecessary(freshness uint64) bool { return false }

// AtomicToken is a concurrency-safe Token a caller can set from another
// goroutine (e.g. a UI cancel button), grounded on the teacher's soft
// time-budget pattern in tsp/two_opt.go (a cheap periodic check inside
// the improvement loop, not a goroutine-killing context cancel).
type AtomicToken struct {
	requested  atomic.Bool
	lastRefresh atomic.Uint64
	refreshEvery uint64
}

// NewAtomicToken returns an AtomicToken that requires refreshEvery ticks
// to elapse between IsRefreshNecessary reporting true; refreshEvery <= 0
// means every tick is considered necessary.
func NewAtomicToken(refreshEvery uint64) *AtomicToken {
	return &AtomicToken{refreshEvery: refreshEvery}
}

// Request marks the token as cancelled. Safe to call from any goroutine.
func (t *AtomicToken) Request() { t.requested.Store(true) }

// IsRequested reports whether Request has been called.
func (t *AtomicToken) IsRequested() bool { return t.requested.Load() }

// IsRefreshNecessary reports whether at least refreshEvery ticks have
// elapsed since the last tick that returned true, updating its internal
// bookkeeping as a side effect.
func (t *AtomicToken) IsRefreshNecessary(freshness uint64) bool {
	if t.refreshEvery == 0 {
		return true
	}
	// lastRefresh holds the last refreshing tick plus one; zero means no
	// tick has refreshed yet, so the first call always reports true.
	last := t.lastRefresh.Load()
	if last != 0 && freshness-(last-1) < t.refreshEvery {
		return false
	}
	t.lastRefresh.Store(freshness + 1)
	return true
}
