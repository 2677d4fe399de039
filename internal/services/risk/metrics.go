package risk

import "time"

// NoopMetricsCollector is a no-op implementation of MetricsCollector
type NoopMetricsCollector struct{}

func (n *NoopMetricsCollector) RecordScore(Label, int)         {}
func (n *NoopMetricsCollector) RecordEstimatorFallback(string) {}
func (n *NoopMetricsCollector) RecordDuration(time.Duration)   {}
