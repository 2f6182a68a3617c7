package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the server's instrumentation. Everything registers against a
// private registry so tests can build as many instances as they like without
// duplicate-registration panics.
type Metrics struct {
	registry *prometheus.Registry

	TickDuration prometheus.Histogram
	SlowTicks    prometheus.Counter
	Sessions     prometheus.Gauge
	Intents      *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		TickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "oceania",
			Name:      "tick_duration_seconds",
			Help:      "Wall time spent inside one simulation tick.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		}),
		SlowTicks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "oceania",
			Name:      "slow_ticks_total",
			Help:      "Ticks whose work exceeded the tick interval.",
		}),
		Sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "oceania",
			Name:      "sessions",
			Help:      "Connected client sessions.",
		}),
		Intents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "oceania",
			Name:      "intents_total",
			Help:      "Client intents processed, by kind.",
		}, []string{"kind"}),
	}

	reg.MustRegister(m.TickDuration, m.SlowTicks, m.Sessions, m.Intents)
	return m
}

// Handler serves the registry in the standard exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
