package pace

import "time"

// State is a snapshot of iteration progress taken at the moment of one pull.
//
// It is an immutable value that is cheap to copy: snapshots handed out by
// [Iterator.Next] stay valid and unchanged no matter how far the iterator
// advances afterwards. Queries never fail; everything that can't be computed
// (unknown total, no rate samples yet) degrades to a zero value with
// ok == false.
type State struct {
	done  uint64
	total total
	start time.Time
	prev  time.Time
	now   time.Time
	rate  float64
}

// Done returns the number of items yielded so far, including the item this
// snapshot was produced with. It is 1 for the first pull.
func (s State) Done() uint64 {
	return s.done
}

// Total returns the known or assumed total number of items. ok is false when
// no total is available.
func (s State) Total() (uint64, bool) {
	if s.total.kind == totalUnknown {
		return 0, false
	}
	return s.total.n, true
}

// Start returns the time the iterator was constructed.
func (s State) Start() time.Time {
	return s.start
}

// Timestamp returns the time this snapshot was produced.
func (s State) Timestamp() time.Time {
	return s.now
}

// Prev returns the time the previous snapshot was produced. ok is false on
// the first pull.
func (s State) Prev() (time.Time, bool) {
	return s.prev, !s.prev.IsZero()
}

// Elapsed returns how long the iteration had been running when this snapshot
// was produced, measured from construction of the iterator.
func (s State) Elapsed() time.Duration {
	return s.now.Sub(s.start)
}

// Fraction returns how far through the iteration this snapshot is, as
// done/total. ok is false when no total is available or the total is 0.
//
// The value is not clamped: an assumed total that turns out too small makes
// it exceed 1, which callers must tolerate.
func (s State) Fraction() (float64, bool) {
	if s.total.kind == totalUnknown || s.total.n == 0 {
		return 0, false
	}
	return float64(s.done) / float64(s.total.n), true
}

// Percent returns [State.Fraction] scaled to 0-100, with the same
// availability.
func (s State) Percent() (float64, bool) {
	f, ok := s.Fraction()
	return f * 100, ok
}

// Rate returns the recency-weighted rate of production in items per second,
// as computed by the iterator's [Estimator]. It is 0 until the estimator has
// seen enough samples.
func (s State) Rate() float64 {
	return s.rate
}

// ETA returns the estimated time remaining, (total-done)/rate. ok is false
// when no total is available or the rate is not positive. When done has
// overshot an assumed total, the estimate is clamped to 0.
func (s State) ETA() (time.Duration, bool) {
	n, ok := s.Total()
	if !ok || s.rate <= 0 {
		return 0, false
	}
	if s.done >= n {
		return 0, true
	}
	return time.Duration(float64(n-s.done) / s.rate * float64(time.Second)), true
}

// EstimatedTotalTime returns the estimated total duration of the whole
// iteration. It is defined additively as Elapsed + ETA, so the two queries
// always agree, and it shares the availability of [State.ETA].
func (s State) EstimatedTotalTime() (time.Duration, bool) {
	eta, ok := s.ETA()
	if !ok {
		return 0, false
	}
	return s.Elapsed() + eta, true
}

type totalKind uint8

const (
	totalUnknown totalKind = iota
	totalAssumed
	totalKnown
)

// total is a tagged size so that overwrite rules (an assumption never
// replaces a known size) hold by construction.
type total struct {
	kind totalKind
	n    uint64
}
