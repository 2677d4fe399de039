package handlers

import (
	"errors"

	"cypher/internal/middleware"
	"cypher/internal/models"
	"cypher/internal/services/analysis"
	"cypher/internal/utils/pagination"
	"cypher/internal/utils/response"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AnalysisHandler struct {
	service analysis.Service
	logger  *zap.Logger
}

func NewAnalysisHandler(service analysis.Service, logger *zap.Logger) *AnalysisHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalysisHandler{
		service: service,
		logger:  logger.With(zap.String("component", "analysis_handler")),
	}
}

// Analyze scores a transaction described by its five risk signals.
func (h *AnalysisHandler) Analyze(c *fiber.Ctx) error {
	var req models.AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	result, err := h.service.Analyze(c.UserContext(), &req, middleware.UserID(c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(result)
}

// AnalyzeQR scores the payment encoded in a scanned UPI QR code.
func (h *AnalysisHandler) AnalyzeQR(c *fiber.Ctx) error {
	var req models.AnalyzeQRRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	result, err := h.service.AnalyzeQR(c.UserContext(), req.QRData, req.HourOfDay, middleware.UserID(c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(result)
}

// History lists the caller's earlier scans, newest first.
func (h *AnalysisHandler) History(c *fiber.Ctx) error {
	p := pagination.ParseFromRequest(c)

	page, err := h.service.History(c.UserContext(), middleware.UserID(c), p)
	if err != nil {
		if errors.Is(err, analysis.ErrHistoryUnavailable) {
			return response.ServiceUnavailable(c, "Scan history is unavailable")
		}
		h.logger.Error("failed to load history", zap.Error(err))
		return response.ServerError(c, "Failed to load history")
	}

	p.Total = page.Total
	return c.JSON(pagination.Response(p, page.Scans))
}

func (h *AnalysisHandler) fail(c *fiber.Ctx, err error) error {
	if errors.Is(err, analysis.ErrInvalidInput) {
		return response.ValidationError(c, err)
	}
	h.logger.Error("analysis failed", zap.Error(err))
	return response.ServerError(c, "Analysis failed")
}
