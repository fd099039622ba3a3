package pace

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/teenjuna/pace/rate"
)

type Option = func(*config)

// WithEstimator sets the rate estimator used to compute [State.Rate]. The
// estimator must not be shared between iterators.
func WithEstimator(e rate.Estimator) Option {
	if e == nil {
		panic("estimator can't be nil")
	}
	return func(c *config) {
		c.estimator = e
	}
}

// WithTotal sets the exact number of items the source will produce.
func WithTotal(n uint64) Option {
	return func(c *config) {
		c.total = total{kind: totalKnown, n: n}
	}
}

// WithAssumedTotal sets a best-guess number of items. It never replaces a
// known total set earlier in the option list.
func WithAssumedTotal(n uint64) Option {
	return func(c *config) {
		if c.total.kind == totalKnown {
			return
		}
		c.total = total{kind: totalAssumed, n: n}
	}
}

// WithPrometheus enables Prometheus metrics updated on every pull. If
// registerer is nil, metrics will be created but not registered.
func WithPrometheus(registerer prometheus.Registerer, namespace, subsystem string) Option {
	return func(c *config) {
		c.metrics = newMetrics(registerer, namespace, subsystem)
	}
}

type config struct {
	estimator rate.Estimator
	total     total
	metrics   *metrics
}

func newConfig(options ...Option) *config {
	options = append([]Option{
		WithEstimator(rate.NewEWMA(0.1)),
	}, options...)

	cfg := config{}
	for _, opt := range options {
		opt(&cfg)
	}

	return &cfg
}
