// Package metrics exposes scoring telemetry to Prometheus.
package metrics

import (
	"strconv"
	"time"

	"cypher/internal/services/risk"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics implements risk.MetricsCollector.
type Metrics struct {
	// Scored transactions by label
	ScoreOutcome *prometheus.CounterVec

	// Distribution of integer scores
	ScoreValue prometheus.Histogram

	// Payee blends skipped because the phishing model was unavailable or failed
	EstimatorFallback *prometheus.CounterVec

	// Time spent inside the scorer
	ScoreLatency prometheus.Histogram

	// Scans persisted to history, by outcome
	ScanPersisted *prometheus.CounterVec
}

// New registers all metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		ScoreOutcome: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cypher_risk_scores_total",
			Help: "Total scored transactions by risk label",
		}, []string{"label"}),

		ScoreValue: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "cypher_risk_score",
			Help:    "Distribution of 0-100 risk scores",
			Buckets: prometheus.LinearBuckets(10, 10, 10),
		}),

		EstimatorFallback: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cypher_phishing_fallbacks_total",
			Help: "Scores computed without the phishing model, by reason",
		}, []string{"reason"}), // reason: "unavailable", "error"

		ScoreLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "cypher_risk_score_duration_seconds",
			Help:    "Duration of a single scoring call",
			Buckets: []float64{0.00005, 0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01},
		}),

		ScanPersisted: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cypher_scans_persisted_total",
			Help: "Scan records written to history by outcome",
		}, []string{"ok"}),
	}
}

func (m *Metrics) RecordScore(label risk.Label, score int) {
	if m != nil {
		m.ScoreOutcome.WithLabelValues(string(label)).Inc()
		m.ScoreValue.Observe(float64(score))
	}
}

func (m *Metrics) RecordEstimatorFallback(reason string) {
	if m != nil {
		m.EstimatorFallback.WithLabelValues(reason).Inc()
	}
}

func (m *Metrics) RecordDuration(d time.Duration) {
	if m != nil {
		m.ScoreLatency.Observe(d.Seconds())
	}
}

// RecordScanPersisted counts a history write attempt.
func (m *Metrics) RecordScanPersisted(ok bool) {
	if m != nil {
		m.ScanPersisted.WithLabelValues(strconv.FormatBool(ok)).Inc()
	}
}
