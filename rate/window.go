package rate

import "time"

// Window estimates the rate over the most recent samples, kept in a
// fixed-capacity ring buffer. The estimate is the average rate across the
// window span, so anything older than size samples is forgotten. Memory is
// bounded regardless of iteration length.
type Window struct {
	samples []sample
	head    int
	count   int
}

type sample struct {
	t    time.Time
	done uint64
}

var _ Estimator = (*Window)(nil)

// NewWindow returns a Window keeping the last size samples.
func NewWindow(size int) *Window {
	if size < 2 {
		panic("size can't be < 2")
	}
	return &Window{samples: make([]sample, size)}
}

func (w *Window) Observe(t time.Time, done uint64) {
	w.samples[w.head] = sample{t: t, done: done}
	w.head = (w.head + 1) % len(w.samples)
	if w.count < len(w.samples) {
		w.count++
	}
}

func (w *Window) Rate() float64 {
	if w.count < 2 {
		return 0
	}

	size := len(w.samples)
	newest := w.samples[(w.head-1+size)%size]
	oldest := w.samples[(w.head-w.count+size)%size]

	dt := newest.t.Sub(oldest.t).Seconds()
	if dt <= 0 {
		return 0
	}

	return float64(newest.done-oldest.done) / dt
}
