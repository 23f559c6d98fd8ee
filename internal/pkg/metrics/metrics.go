package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "payment_intention"

type Metrics struct {
	Created         prometheus.Counter
	Rejected        *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Created: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "created_total",
			Help:      "Payment intentions persisted.",
		}),
		Rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejected_total",
			Help:      "Creation attempts rejected, by failure kind.",
		}, []string{"kind"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
	reg.MustRegister(m.Created, m.Rejected, m.RequestDuration)
	return m
}

func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func (m *Metrics) ObserveCreated() {
	m.Created.Inc()
}

func (m *Metrics) ObserveRejected(kind string) {
	m.Rejected.WithLabelValues(kind).Inc()
}
