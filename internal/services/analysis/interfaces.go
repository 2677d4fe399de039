package analysis

import (
	"context"

	"cypher/internal/models"
	"cypher/internal/services/risk"
	"cypher/internal/utils/pagination"
)

// Service defines the analysis operations exposed over HTTP
type Service interface {
	Analyze(ctx context.Context, req *models.AnalyzeRequest, userID string) (*models.AnalysisResult, error)
	AnalyzeQR(ctx context.Context, qrData string, hour *int, userID string) (*models.AnalysisResult, error)
	History(ctx context.Context, userID string, page pagination.Pagination) (*models.ScanPage, error)
}

// Scorer is satisfied by *risk.Scorer.
type Scorer interface {
	Score(in risk.Inputs, tx *risk.Context) risk.Result
}

// MetricsCollector records history writes.
type MetricsCollector interface {
	RecordScanPersisted(ok bool)
}

type NoopMetricsCollector struct{}

func (n *NoopMetricsCollector) RecordScanPersisted(bool) {}
