// Package main is the entry point for the application.
// It initializes all dependencies, sets up the HTTP server,
// and starts the application.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cypher/internal/config"
	"cypher/internal/handlers"
	"cypher/internal/logger"
	"cypher/internal/metrics"
	"cypher/internal/middleware"
	"cypher/internal/repositories"
	"cypher/internal/repositories/cache"
	"cypher/internal/routes"
	"cypher/internal/services/analysis"
	"cypher/internal/services/phishing"
	"cypher/internal/services/risk"
	"cypher/internal/services/settings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	config.LoadEnv()
	cfg := config.Load()

	log := logger.NewOrNop(cfg.IsProduction())
	defer func() { _ = log.Sync() }()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	loader := phishing.NewLoader(cfg.ModelPath, log)
	var estimator risk.PhishingEstimator
	if est, err := loader.Get(); err != nil {
		log.Warn("phishing model unavailable, scoring with rules only",
			zap.String("path", loader.Path()), zap.Error(err))
	} else {
		estimator = est
	}
	scorer := risk.NewScorer(estimator, risk.Config{CurrencySymbol: cfg.CurrencySymbol}, m, log)

	checks := map[string]handlers.HealthCheckFunc{}

	var cacheRepo repositories.CacheRepository
	redisClient := cache.NewRedisClient(cfg.Redis)
	cacheService := cache.NewCacheService(redisClient, cfg.HistoryCacheTTL)
	if err := cacheService.HealthCheck(context.Background()); err != nil {
		log.Warn("redis unavailable, running without cache", zap.Error(err))
	} else {
		cacheRepo = cacheService
		checks["redis"] = cacheService.HealthCheck
	}
	defer func() {
		if err := cacheService.Close(); err != nil {
			log.Warn("failed to close redis connection", zap.Error(err))
		}
	}()

	var (
		scans        repositories.ScanRepository
		settingsRepo repositories.SettingsRepository
	)
	db, err := repositories.InitDB(cfg.DB, log)
	if err != nil {
		log.Warn("database unavailable, history and settings disabled", zap.Error(err))
	} else {
		scans = repositories.NewScanRepository(db, cacheRepo, cfg.HistoryCacheTTL, log)
		settingsRepo = repositories.NewSettingsRepository(db, cacheRepo, cfg.HistoryCacheTTL, log)
		checks["database"] = pingDB(db)
		defer func() {
			if err := repositories.Close(db); err != nil {
				log.Warn("failed to close database connection", zap.Error(err))
			}
		}()
	}

	analysisService := analysis.NewService(scorer, scans, analysis.Config{}, m, log)

	var settingsHandler *handlers.SettingsHandler
	if settingsRepo != nil {
		settingsHandler = handlers.NewSettingsHandler(settings.NewService(settingsRepo, time.Now, log), log)
	}

	auth := middleware.NewAuthMiddleware(cfg.JWTSecret, log)
	if !auth.Enabled() {
		log.Info("JWT_SECRET not set, all requests are anonymous")
	}

	app := fiber.New(fiber.Config{
		AppName:               "cypher",
		DisableStartupMessage: cfg.IsProduction(),
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,HEAD,OPTIONS",
	}))

	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	routes.SetupRoutes(app, routes.Dependencies{
		Analysis:        handlers.NewAnalysisHandler(analysisService, log),
		ML:              handlers.NewMLHandler(loader, log),
		Health:          handlers.NewHealthHandler(scorer.MLEnabled(), checks),
		Auth:            auth,
		Settings:        settingsHandler,
		Metrics:         registry,
		RateLimitMax:    cfg.RateLimitMax,
		RateLimitWindow: cfg.RateLimitWindow,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		log.Info("shutting down server")
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			log.Error("server shutdown failed", zap.Error(err))
		}
	}()

	log.Info("server starting",
		zap.String("port", cfg.Port),
		zap.Bool("ml_enabled", scorer.MLEnabled()),
		zap.String("env", cfg.Env))

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Error("server stopped", zap.Error(err))
	}
}

func pingDB(db *gorm.DB) handlers.HealthCheckFunc {
	return func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}
}
