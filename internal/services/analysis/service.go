package analysis

import (
	"context"
	"fmt"
	"time"

	"cypher/internal/domain/upi"
	"cypher/internal/models"
	"cypher/internal/repositories"
	"cypher/internal/services/risk"
	"cypher/internal/utils/pagination"
	"cypher/internal/utils/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type service struct {
	scorer  Scorer
	scans   repositories.ScanRepository
	config  Config
	metrics MetricsCollector
	logger  *zap.Logger
}

// NewService creates a new analysis service. A nil scans repository turns
// off history.
func NewService(
	scorer Scorer,
	scans repositories.ScanRepository,
	config Config,
	metrics MetricsCollector,
	logger *zap.Logger,
) Service {
	if scorer == nil {
		panic("scorer is required")
	}

	if config.Now == nil {
		config.Now = time.Now
	}
	if config.PersistTimeout <= 0 {
		config.PersistTimeout = DefaultPersistTimeout
	}
	if metrics == nil {
		metrics = &NoopMetricsCollector{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &service{
		scorer:  scorer,
		scans:   scans,
		config:  config,
		metrics: metrics,
		logger:  logger.With(zap.String("component", "analysis")),
	}
}

func (s *service) Analyze(ctx context.Context, req *models.AnalyzeRequest, userID string) (*models.AnalysisResult, error) {
	if err := validation.ValidateAnalyzeRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	in := risk.Inputs{
		AmountRisk:    *req.AmountRisk,
		PayeeRisk:     *req.PayeeRisk,
		FrequencyRisk: *req.FrequencyRisk,
		TimingRisk:    *req.TimingRisk,
		DeviceRisk:    *req.DeviceRisk,
	}
	tx := risk.Context{
		AmountValue: req.AmountValue,
		HourOfDay:   req.HourOfDay,
	}
	if req.PayeeID != nil && *req.PayeeID != "" {
		tx.PayeeHandle = req.PayeeID
	}

	return s.score(ctx, in, &tx, userID), nil
}

func (s *service) AnalyzeQR(ctx context.Context, qrData string, hour *int, userID string) (*models.AnalysisResult, error) {
	if err := validation.ValidateHour(hour); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	params, err := upi.ParseURI(qrData)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	h := s.config.Now().Hour()
	if hour != nil {
		h = *hour
	}

	in, tx := upi.DeriveSignals(*params, h)
	result := s.score(ctx, in, &tx, userID)

	merchant := params.PayeeName
	if merchant == "" {
		merchant = upi.UnknownMerchant
	}
	result.Details = &models.ScanDetails{
		Merchant:          merchant,
		UPIID:             params.PayeeAddress,
		Amount:            params.Amount,
		OriginalUPIString: qrData,
	}
	return result, nil
}

func (s *service) History(ctx context.Context, userID string, page pagination.Pagination) (*models.ScanPage, error) {
	if s.scans == nil {
		return nil, ErrHistoryUnavailable
	}

	scans, err := s.scans.ListByUser(ctx, ownerOf(userID), page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to load scan history: %w", err)
	}
	return scans, nil
}

func (s *service) score(ctx context.Context, in risk.Inputs, tx *risk.Context, userID string) *models.AnalysisResult {
	res := s.scorer.Score(in, tx)

	out := &models.AnalysisResult{
		RiskScore: res.Score,
		RiskLabel: string(res.Label),
		Reasons:   res.Reasons,
		Timestamp: res.Timestamp,
	}
	out.ScanID = s.persist(ctx, tx.PayeeHandle, res, userID)

	s.logger.Info("transaction analyzed",
		zap.Int("risk_score", res.Score),
		zap.String("risk_label", string(res.Label)),
		zap.Bool("persisted", out.ScanID != nil))
	return out
}

// persist files res in the user's history and returns its scan id, or nil
// when history is off or the write failed.
func (s *service) persist(ctx context.Context, handle *string, res risk.Result, userID string) *uuid.UUID {
	if s.scans == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.config.PersistTimeout)
	defer cancel()

	record := &models.ScanRecord{
		ScanID:    uuid.New(),
		UPIID:     handle,
		RiskScore: res.Score,
		RiskLabel: string(res.Label),
		Reasons:   models.StringList(res.Reasons),
		UserID:    ownerOf(userID),
		Timestamp: res.Timestamp,
	}
	if err := s.scans.Create(ctx, record); err != nil {
		s.logger.Warn("failed to persist scan", zap.String("user_id", record.UserID), zap.Error(err))
		s.metrics.RecordScanPersisted(false)
		return nil
	}

	s.metrics.RecordScanPersisted(true)
	return &record.ScanID
}

func ownerOf(userID string) string {
	if userID == "" {
		return models.AnonymousUserID
	}
	return userID
}
