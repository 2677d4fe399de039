package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	engineName         = "cypher-ml-v1"
	healthCheckTimeout = 2 * time.Second
)

// HealthCheckFunc probes one backing service.
type HealthCheckFunc func(ctx context.Context) error

type HealthHandler struct {
	mlEnabled bool
	checks    map[string]HealthCheckFunc
}

// NewHealthHandler reports on the scorer mode and every named check.
func NewHealthHandler(mlEnabled bool, checks map[string]HealthCheckFunc) *HealthHandler {
	return &HealthHandler{mlEnabled: mlEnabled, checks: checks}
}

func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), healthCheckTimeout)
	defer cancel()

	status := "active"
	services := fiber.Map{}
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			services[name] = "unavailable"
			status = "degraded"
			continue
		}
		services[name] = "connected"
	}

	return c.JSON(fiber.Map{
		"status":     status,
		"engine":     engineName,
		"ml_enabled": h.mlEnabled,
		"services":   services,
	})
}
