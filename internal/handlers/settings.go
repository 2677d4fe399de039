package handlers

import (
	"errors"

	"cypher/internal/middleware"
	"cypher/internal/models"
	"cypher/internal/services/settings"
	"cypher/internal/utils/response"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type SettingsHandler struct {
	service settings.Service
	logger  *zap.Logger
}

func NewSettingsHandler(service settings.Service, logger *zap.Logger) *SettingsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SettingsHandler{
		service: service,
		logger:  logger.With(zap.String("component", "settings_handler")),
	}
}

func (h *SettingsHandler) GetSettings(c *fiber.Ctx) error {
	doc, err := h.service.Get(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(doc)
}

func (h *SettingsHandler) UpdateUserInfo(c *fiber.Ctx) error {
	var input models.UpdateUserInfoInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	doc, err := h.service.UpdateUserInfo(c.UserContext(), middleware.UserID(c), &input)
	if err != nil {
		return h.fail(c, err)
	}
	return updated(c, doc)
}

func (h *SettingsHandler) UpdateNotifications(c *fiber.Ctx) error {
	var input models.UpdateNotificationsInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	doc, err := h.service.UpdateNotifications(c.UserContext(), middleware.UserID(c), &input)
	if err != nil {
		return h.fail(c, err)
	}
	return updated(c, doc)
}

func (h *SettingsHandler) UpdatePreferences(c *fiber.Ctx) error {
	var input models.UpdatePreferencesInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	doc, err := h.service.UpdatePreferences(c.UserContext(), middleware.UserID(c), &input)
	if err != nil {
		return h.fail(c, err)
	}
	return updated(c, doc)
}

func updated(c *fiber.Ctx, doc *models.SettingsDocument) error {
	return c.JSON(fiber.Map{
		"success":  true,
		"settings": doc,
	})
}

func (h *SettingsHandler) fail(c *fiber.Ctx, err error) error {
	if errors.Is(err, settings.ErrInvalidSettings) {
		return response.ValidationError(c, err)
	}
	h.logger.Error("settings request failed", zap.Error(err))
	return response.ServerError(c, "Failed to process settings")
}
