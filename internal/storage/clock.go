package storage

import (
	"sync/atomic"
	"time"
)

// Platform ledger cadence: one tick every 5 seconds, 17 280 ticks per day.
const (
	TickInterval = 5 * time.Second
	TicksPerDay  = 17_280
)

// ScoreTTL is the retention window of a score record in ticks: one year.
// Every successful score write re-arms the record to this window, so scores
// self-expire only when never refreshed.
const ScoreTTL uint64 = 365 * TicksPerDay

// TicksToDuration converts a tick count into wall-clock time.
func TicksToDuration(ticks uint64) time.Duration {
	return time.Duration(ticks) * TickInterval
}

// DurationToTicks converts wall-clock time into whole ticks, truncating.
func DurationToTicks(d time.Duration) uint64 {
	if d <= 0 {
		return 0
	}
	return uint64(d / TickInterval)
}

// Clock supplies the monotonically increasing ledger sequence that record
// timestamps and the TTL policy are expressed in.
type Clock interface {
	Sequence() uint64
}

// LedgerClock derives the sequence from wall time at the platform cadence.
type LedgerClock struct {
	epoch time.Time
}

// NewLedgerClock creates a LedgerClock counting ticks since the given epoch.
func NewLedgerClock(epoch time.Time) *LedgerClock {
	return &LedgerClock{epoch: epoch}
}

// Sequence returns the number of whole ticks elapsed since the epoch.
func (c *LedgerClock) Sequence() uint64 {
	elapsed := time.Since(c.epoch)
	if elapsed < 0 {
		return 0
	}
	return uint64(elapsed / TickInterval)
}

// ManualClock is a hand-advanced clock for tests and deterministic runs.
type ManualClock struct {
	seq atomic.Uint64
}

// NewManualClock creates a ManualClock starting at the given sequence.
func NewManualClock(start uint64) *ManualClock {
	c := &ManualClock{}
	c.seq.Store(start)
	return c
}

// Sequence returns the current sequence.
func (c *ManualClock) Sequence() uint64 {
	return c.seq.Load()
}

// Advance moves the clock forward by the given number of ticks.
func (c *ManualClock) Advance(ticks uint64) {
	c.seq.Add(ticks)
}
