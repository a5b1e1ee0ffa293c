package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the engine's Prometheus collectors.
type Metrics struct {
	evaluations      *prometheus.CounterVec
	detectorDegraded *prometheus.CounterVec
	duration         prometheus.Histogram
}

// New registers the collectors on the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fraud_evaluations_total",
			Help: "Fraud evaluations by risk level and action.",
		}, []string{"risk_level", "action"}),
		detectorDegraded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fraud_detector_degraded_total",
			Help: "Detector passes that degraded on a failed collaborator call.",
		}, []string{"detector"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "fraud_evaluation_duration_seconds",
			Help:    "End-to-end evaluation latency.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(m.evaluations, m.detectorDegraded, m.duration)
	return m
}

func (m *Metrics) ObserveEvaluation(riskLevel, action string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.evaluations.WithLabelValues(riskLevel, action).Inc()
	m.duration.Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveDegraded(detector string) {
	if m == nil {
		return
	}
	m.detectorDegraded.WithLabelValues(detector).Inc()
}
