package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestHealthHandler(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("dial tcp: refused") }

	tests := []struct {
		name       string
		mlEnabled  bool
		checks     map[string]HealthCheckFunc
		wantStatus string
	}{
		{"no dependencies", false, nil, "active"},
		{"all connected", true, map[string]HealthCheckFunc{"database": ok, "redis": ok}, "active"},
		{"redis down", true, map[string]HealthCheckFunc{"database": ok, "redis": down}, "degraded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/health", NewHealthHandler(tt.mlEnabled, tt.checks).HealthCheck)

			status, body := doJSON(t, app, http.MethodGet, "/health", "")

			assert.Equal(t, http.StatusOK, status)
			assert.Equal(t, tt.wantStatus, body["status"])
			assert.Equal(t, "cypher-ml-v1", body["engine"])
			assert.Equal(t, tt.mlEnabled, body["ml_enabled"])

			services := body["services"].(map[string]interface{})
			for name, check := range tt.checks {
				want := "connected"
				if check(context.Background()) != nil {
					want = "unavailable"
				}
				assert.Equal(t, want, services[name])
			}
		})
	}
}
