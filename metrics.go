package pace

import (
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	items    prometheus.Gauge
	rate     prometheus.Gauge
	fraction prometheus.Gauge
}

func newMetrics(registerer prometheus.Registerer, namespace, subsystem string) *metrics {
	m := metrics{
		items: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "items_done",
			Help:      "Number of items yielded by the iterator",
		}),
		rate: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "rate",
			Help:      "Recency-weighted rate of production in items per second",
		}),
		fraction: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "fraction",
			Help:      "Estimated completion fraction, while a total is available",
		}),
	}

	if registerer != nil {
		registerer.MustRegister(
			m.items,
			m.rate,
			m.fraction,
		)
	}

	return &m
}
