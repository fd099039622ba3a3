// This package contains the main [Estimator] interface and several implementations.
package rate

import "time"

// Estimator produces a recency-weighted estimate of iteration rate from
// (timestamp, count) samples. A recency-weighted estimate reacts to
// throughput changes instead of being dominated by early warm-up periods the
// way a lifetime average is.
//
// Implementations are not considered thread-safe and each instance is used
// by a single iterator.
type Estimator interface {
	// Observe records one sample: at time t, done items had been produced in
	// total. Timestamps must be non-decreasing across calls.
	Observe(t time.Time, done uint64)
	// Rate returns the current estimate in items per second, or 0 until
	// enough samples were observed.
	Rate() float64
}
