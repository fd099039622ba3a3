package pace

import (
	"iter"
	"slices"
	"time"
)

// Iterator wraps an iteration source and pairs every item it produces with a
// fresh [State] snapshot.
//
// All progress accounting happens inside [Iterator.Next], on the calling
// goroutine: there are no background timers or goroutines, and accuracy of
// any time-based reporting depends entirely on how often the caller pulls.
// An Iterator is not thread-safe.
type Iterator[Item any] struct {
	cfg *config

	next func() (Item, bool)
	stop func()

	done      uint64
	total     total
	start     time.Time
	prev      time.Time
	exhausted bool
}

// New wraps seq. The total stays unknown unless set with [WithTotal],
// [WithAssumedTotal] or [Iterator.AssumeTotal].
//
// The iteration start time is captured here, not at the first pull, so
// [State.Elapsed] includes any setup between construction and the first
// item.
func New[Item any](seq iter.Seq[Item], options ...Option) *Iterator[Item] {
	cfg := newConfig(options...)
	next, stop := iter.Pull(seq)
	return &Iterator[Item]{
		cfg:   cfg,
		next:  next,
		stop:  stop,
		total: cfg.total,
		start: time.Now(),
	}
}

// FromSlice wraps the elements of s. The slice length becomes the known
// total.
func FromSlice[S ~[]E, E any](s S, options ...Option) *Iterator[E] {
	options = append(options, WithTotal(uint64(len(s))))
	return New(slices.Values(s), options...)
}

// FromChan wraps a channel. The source is exhausted once ch is closed and
// drained; the total stays unknown unless set by the caller.
func FromChan[Item any](ch <-chan Item, options ...Option) *Iterator[Item] {
	return New(func(yield func(Item) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}, options...)
}

// Next pulls one item from the wrapped source.
//
// On success it advances the progress accounting and returns the new
// snapshot paired with the item. Once the source is exhausted, Next returns
// ok == false permanently and the accounting stays frozen at the last
// successful pull; no final "completed" snapshot is generated.
func (it *Iterator[Item]) Next() (State, Item, bool) {
	var zero Item
	if it.exhausted {
		return State{}, zero, false
	}

	item, ok := it.next()
	if !ok {
		it.exhausted = true
		it.stop()
		return State{}, zero, false
	}

	now := time.Now()
	it.done++
	it.cfg.estimator.Observe(now, it.done)

	s := State{
		done:  it.done,
		total: it.total,
		start: it.start,
		prev:  it.prev,
		now:   now,
		rate:  it.cfg.estimator.Rate(),
	}
	it.prev = now

	if m := it.cfg.metrics; m != nil {
		m.items.Set(float64(s.done))
		m.rate.Set(s.rate)
		if f, ok := s.Fraction(); ok {
			m.fraction.Set(f)
		}
	}

	return s, item, true
}

// All returns the remaining pulls as a sequence of (snapshot, item) pairs.
// Each step of the sequence is one [Iterator.Next] call, so breaking out and
// resuming later (through All or Next) is fine.
func (it *Iterator[Item]) All() iter.Seq2[State, Item] {
	return func(yield func(State, Item) bool) {
		for {
			s, item, ok := it.Next()
			if !ok {
				return
			}
			if !yield(s, item) {
				return
			}
		}
	}
}

// AssumeTotal records n as the assumed total. It only transitions an unknown
// total: a previous assumption or a known total is never replaced.
func (it *Iterator[Item]) AssumeTotal(n uint64) {
	if it.total.kind != totalUnknown {
		return
	}
	it.total = total{kind: totalAssumed, n: n}
}

// Inner consumes the Iterator and hands back the unconsumed remainder of the
// wrapped source, discarding the accumulated progress. The returned sequence
// is single-use. After Inner, [Iterator.Next] reports exhaustion.
func (it *Iterator[Item]) Inner() iter.Seq[Item] {
	next, stop := it.next, it.stop
	it.exhausted = true
	return func(yield func(Item) bool) {
		defer stop()
		for {
			item, ok := next()
			if !ok {
				return
			}
			if !yield(item) {
				return
			}
		}
	}
}
