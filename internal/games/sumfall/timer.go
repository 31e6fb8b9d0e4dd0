package sumfall

import (
	"sort"
	"time"
)

// TimerKind identifies a class of scheduled work.
type TimerKind int

const (
	// TimerGravity is the periodic tick that pulls the piece down.
	TimerGravity TimerKind = iota
	// TimerResolve ends the resolution window.
	TimerResolve

	timerKinds
)

// String returns the timer kind name.
func (k TimerKind) String() string {
	switch k {
	case TimerGravity:
		return "gravity"
	case TimerResolve:
		return "resolve"
	default:
		return "unknown"
	}
}

// Timer is a scheduled callback. Token is unique per session, so an expiry
// can always be matched to the exact scheduling that produced it.
type Timer struct {
	Kind  TimerKind
	Token uint64
}

// Clock schedules one-shot timers for a session.
// When a timer is due the owner of the clock passes it to Session.Fire.
type Clock interface {
	Schedule(t Timer, after time.Duration)
	Stop(t Timer)
}

// ManualClock is a deterministic Clock driven by Advance.
type ManualClock struct {
	now     time.Duration
	pending []manualEntry
	seq     uint64
}

type manualEntry struct {
	timer Timer
	due   time.Duration
	seq   uint64
}

// NewManualClock creates a clock at time zero.
func NewManualClock() *ManualClock {
	return &ManualClock{}
}

// Schedule registers t to fire after the given delay.
func (c *ManualClock) Schedule(t Timer, after time.Duration) {
	c.seq++
	c.pending = append(c.pending, manualEntry{timer: t, due: c.now + after, seq: c.seq})
}

// Stop removes t if it is still pending.
func (c *ManualClock) Stop(t Timer) {
	for i, e := range c.pending {
		if e.timer == t {
			c.pending = append(c.pending[:i], c.pending[i+1:]...)
			return
		}
	}
}

// Now returns the elapsed virtual time.
func (c *ManualClock) Now() time.Duration {
	return c.now
}

// Pending returns the timers that have not fired yet, earliest first.
func (c *ManualClock) Pending() []Timer {
	c.sortPending()
	out := make([]Timer, len(c.pending))
	for i, e := range c.pending {
		out[i] = e.timer
	}
	return out
}

// Advance moves time forward by d and fires every timer that becomes due, in
// due order. Timers scheduled by fire callbacks are honored if they fall
// within the window.
func (c *ManualClock) Advance(d time.Duration, fire func(Timer)) {
	end := c.now + d
	for {
		c.sortPending()
		if len(c.pending) == 0 || c.pending[0].due > end {
			break
		}
		e := c.pending[0]
		c.pending = c.pending[1:]
		c.now = e.due
		fire(e.timer)
	}
	c.now = end
}

func (c *ManualClock) sortPending() {
	sort.Slice(c.pending, func(i, j int) bool {
		if c.pending[i].due != c.pending[j].due {
			return c.pending[i].due < c.pending[j].due
		}
		return c.pending[i].seq < c.pending[j].seq
	})
}
