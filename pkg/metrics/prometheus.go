package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	evaluations     *prometheus.CounterVec
	anomaliesFound  prometheus.Counter
	recommendations *prometheus.CounterVec
	latency         *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		evaluations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockpulse_evaluations_total",
				Help: "Total number of analytics component evaluations",
			},
			[]string{"component"},
		),
		anomaliesFound: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "stockpulse_anomalies_found_total",
				Help: "Total number of anomalies flagged",
			},
		),
		recommendations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockpulse_recommendations_total",
				Help: "Total number of inventory recommendations emitted",
			},
			[]string{"priority"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stockpulse_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordEvaluation counts one component evaluation.
func (r *Recorder) RecordEvaluation(component string) {
	r.evaluations.WithLabelValues(component).Inc()
}

// RecordAnomalies counts flagged anomalies.
func (r *Recorder) RecordAnomalies(n int) {
	r.anomaliesFound.Add(float64(n))
}

// RecordRecommendation counts one emitted recommendation by priority.
func (r *Recorder) RecordRecommendation(priority string) {
	r.recommendations.WithLabelValues(priority).Inc()
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}

// Totals gathers the default registry and returns metric family totals,
// keyed by metric name. Used by the CLI to log a run summary.
func Totals() (map[string]float64, error) {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return nil, err
	}
	totals := make(map[string]float64, len(families))
	for _, fam := range families {
		var sum float64
		for _, m := range fam.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				sum += m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				sum += m.GetGauge().GetValue()
			case m.GetHistogram() != nil:
				sum += float64(m.GetHistogram().GetSampleCount())
			}
		}
		totals[fam.GetName()] = sum
	}
	return totals, nil
}
