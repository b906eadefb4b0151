package fetch

import (
	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "eliref"

type metrics struct {
	requests *prometheus.CounterVec
	duration prometheus.Histogram
	triples  prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "fetch",
			Name:      "requests_total",
			Help:      "N-Triples fetches by outcome (ok or an error code).",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "fetch",
			Name:      "duration_seconds",
			Help:      "Time spent fetching a document, body included.",
			Buckets:   prometheus.DefBuckets,
		}),
		triples: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "fetch",
			Name:      "triples_total",
			Help:      "Triples parsed from fetched documents.",
		}),
	}
	if reg == nil {
		return m
	}
	m.requests = register(reg, m.requests)
	m.duration = register(reg, m.duration)
	m.triples = register(reg, m.triples)
	return m
}

// register adds c to reg, reusing the collector already registered under the
// same descriptor so several fetchers can share one registry.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(C); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}

func (m *metrics) observe(outcome string, seconds float64) {
	m.requests.WithLabelValues(outcome).Inc()
	m.duration.Observe(seconds)
}
