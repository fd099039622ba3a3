package pace

import "time"

// Throttle is a gate that fires at most once per fixed interval of wall
// time.
//
// It is a polling approximation of a timer, not a timer: elapsed time is
// only evaluated when the gate is polled with a snapshot, so under slow
// pulls it fires late, and under fast pulls it fires at most once per
// satisfying pull. Each Throttle owns its own bookkeeping and is meant to be
// polled with snapshots of a single iterator. Not thread-safe.
type Throttle struct {
	interval time.Duration
	last     time.Time
}

// Every returns a [Throttle] that fires at most once per interval.
func Every(interval time.Duration) *Throttle {
	if interval <= 0 {
		panic("interval can't be <= 0")
	}
	return &Throttle{interval: interval}
}

// Should reports whether at least the configured interval has passed since
// the last firing, measured against the snapshot's timestamp. Before the
// first firing the window is measured from the iteration start. Returning
// true counts as a firing and resets the window.
func (t *Throttle) Should(s State) bool {
	last := t.last
	if last.IsZero() {
		last = s.start
	}
	if s.now.Sub(last) < t.interval {
		return false
	}
	t.last = s.now
	return true
}

// Do invokes fn with s iff [Throttle.Should] fires. fn runs synchronously on
// the calling goroutine, blocking the pull until it returns; panics from fn
// propagate to the caller.
func (t *Throttle) Do(s State, fn func(State)) {
	if t.Should(s) {
		fn(s)
	}
}

// CountThrottle is a gate that fires once per fixed number of items. Pure
// counter arithmetic, no clock involved. Not thread-safe.
type CountThrottle struct {
	n    uint64
	last uint64
}

// EveryN returns a [CountThrottle] that fires once per n items.
func EveryN(n uint64) *CountThrottle {
	if n == 0 {
		panic("n can't be 0")
	}
	return &CountThrottle{n: n}
}

// Should reports whether at least n items accumulated since the last firing.
// Returning true counts as a firing.
func (t *CountThrottle) Should(s State) bool {
	if s.done-t.last < t.n {
		return false
	}
	t.last = s.done
	return true
}

// Do invokes fn with s iff [CountThrottle.Should] fires. fn runs
// synchronously on the calling goroutine; panics from fn propagate to the
// caller.
func (t *CountThrottle) Do(s State, fn func(State)) {
	if t.Should(s) {
		fn(s)
	}
}
