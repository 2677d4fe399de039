package handlers

import (
	"cypher/internal/services/phishing"
	"cypher/internal/utils/response"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const maxBatchSize = 100

type MLHandler struct {
	loader *phishing.Loader
	logger *zap.Logger
}

func NewMLHandler(loader *phishing.Loader, logger *zap.Logger) *MLHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MLHandler{
		loader: loader,
		logger: logger.With(zap.String("component", "ml_handler")),
	}
}

type predictRequest struct {
	UPIID string `json:"upi_id"`
}

type predictBatchRequest struct {
	UPIIDs []string `json:"upi_ids"`
}

type predictResponse struct {
	phishing.Prediction
	MLAvailable bool `json:"ml_available"`
}

// PredictPayeeRisk returns the phishing estimate for one UPI ID.
func (h *MLHandler) PredictPayeeRisk(c *fiber.Ctx) error {
	var req predictRequest
	if err := c.BodyParser(&req); err != nil || req.UPIID == "" {
		return response.BadRequest(c, "upi_id is required")
	}

	est, err := h.loader.Get()
	if err != nil {
		return response.ServiceUnavailable(c, "ML model not available. Please train the model first.")
	}

	pred, err := est.Predict(req.UPIID)
	if err != nil {
		h.logger.Error("prediction failed", zap.String("upi_id", req.UPIID), zap.Error(err))
		return response.ServerError(c, "Prediction failed: "+err.Error())
	}
	return c.JSON(predictResponse{Prediction: pred, MLAvailable: true})
}

// PredictBatch returns phishing estimates for several UPI IDs in input order.
func (h *MLHandler) PredictBatch(c *fiber.Ctx) error {
	var req predictBatchRequest
	if err := c.BodyParser(&req); err != nil || len(req.UPIIDs) == 0 {
		return response.BadRequest(c, "upi_ids is required")
	}
	if len(req.UPIIDs) > maxBatchSize {
		return response.BadRequest(c, "too many upi_ids in one batch")
	}

	est, err := h.loader.Get()
	if err != nil {
		return response.ServiceUnavailable(c, "ML model not available. Please train the model first.")
	}

	preds, err := est.PredictBatch(c.UserContext(), req.UPIIDs)
	if err != nil {
		h.logger.Error("batch prediction failed", zap.Int("size", len(req.UPIIDs)), zap.Error(err))
		return response.ServerError(c, "Prediction failed: "+err.Error())
	}
	return c.JSON(fiber.Map{
		"predictions":  preds,
		"ml_available": true,
	})
}

// Health reports whether the phishing model is loaded.
func (h *MLHandler) Health(c *fiber.Ctx) error {
	est, err := h.loader.Get()
	if err != nil {
		return c.JSON(fiber.Map{
			"ml_available": false,
			"model_path":   nil,
		})
	}
	return c.JSON(fiber.Map{
		"ml_available":  true,
		"model_path":    est.Path(),
		"model_version": est.Version(),
	})
}
