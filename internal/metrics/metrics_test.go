package metrics

import (
	"testing"
	"time"

	"cypher/internal/services/risk"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

var _ risk.MetricsCollector = (*Metrics)(nil)

func TestMetrics_Record(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.RecordScore(risk.LabelDanger, 93)
	m.RecordScore(risk.LabelDanger, 70)
	m.RecordScore(risk.LabelSafe, 5)
	m.RecordEstimatorFallback("error")
	m.RecordDuration(time.Millisecond)
	m.RecordScanPersisted(false)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ScoreOutcome.WithLabelValues("danger")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ScoreOutcome.WithLabelValues("safe")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EstimatorFallback.WithLabelValues("error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ScanPersisted.WithLabelValues("false")))
}

func TestMetrics_NilIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordScore(risk.LabelSafe, 0)
		m.RecordEstimatorFallback("unavailable")
		m.RecordDuration(time.Second)
		m.RecordScanPersisted(true)
	})
}
