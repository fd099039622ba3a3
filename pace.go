// Package pace wraps iteration sequences with live progress reporting. Every
// item produced by a wrapped sequence comes paired with a [State] snapshot
// carrying the count of consumed items, elapsed time, estimated completion
// fraction, rate of production and estimated time remaining.
package pace

import "github.com/teenjuna/pace/rate"

// Estimator is the rate estimation strategy used by an [Iterator]. See
// [rate.NewEWMA] and [rate.NewWindow] for the provided implementations.
type Estimator = rate.Estimator
