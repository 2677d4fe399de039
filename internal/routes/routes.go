// Package routes defines the API routing configuration.
// It sets up all HTTP routes and their corresponding handlers,
// including middleware and rate limits.
package routes

import (
	"time"

	"cypher/internal/handlers"
	"cypher/internal/middleware"
	"cypher/internal/utils/response"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Dependencies are the handlers and settings the router mounts.
type Dependencies struct {
	Analysis *handlers.AnalysisHandler
	ML       *handlers.MLHandler
	Health   *handlers.HealthHandler
	Auth     *middleware.AuthMiddleware

	// Settings is nil when no database is configured.
	Settings *handlers.SettingsHandler

	Metrics prometheus.Gatherer

	RateLimitMax    int
	RateLimitWindow time.Duration
}

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, deps Dependencies) {
	app.Get("/health", deps.Health.HealthCheck)
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Metrics, promhttp.HandlerOpts{})))
	}

	identified := app.Group("", deps.Auth.OptionalAuth)

	scoring := identified.Group("/analyze", rateLimit(deps.RateLimitMax, deps.RateLimitWindow))
	scoring.Post("/", deps.Analysis.Analyze)
	scoring.Post("/qr", deps.Analysis.AnalyzeQR)
	identified.Get("/history", deps.Analysis.History)

	api := identified.Group("/api")

	ml := api.Group("/ml")
	ml.Post("/predict_payee_risk", rateLimit(deps.RateLimitMax, deps.RateLimitWindow), deps.ML.PredictPayeeRisk)
	ml.Post("/predict_batch", rateLimit(deps.RateLimitMax, deps.RateLimitWindow), deps.ML.PredictBatch)
	ml.Get("/health", deps.ML.Health)

	setupSettingsRoutes(api.Group("/user"), deps.Settings)
}

func setupSettingsRoutes(router fiber.Router, h *handlers.SettingsHandler) {
	if h == nil {
		router.Use(func(c *fiber.Ctx) error {
			return response.ServiceUnavailable(c, "Settings storage is unavailable")
		})
		return
	}

	router.Get("/settings", h.GetSettings)
	router.Post("/info", h.UpdateUserInfo)
	router.Post("/notifications", h.UpdateNotifications)
	router.Post("/preferences", h.UpdatePreferences)
}

func rateLimit(limit int, window time.Duration) fiber.Handler {
	if limit <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	return limiter.New(limiter.Config{
		Max:        limit,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
			})
		},
	})
}
