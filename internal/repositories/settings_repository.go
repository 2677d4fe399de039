package repositories

import (
	"context"

	"cypher/internal/models"
)

// SettingsRepository defines the persistence operations for user settings
type SettingsRepository interface {
	// GetByUserID returns ErrSettingsNotFound when the user has no row yet
	GetByUserID(ctx context.Context, userID string) (*models.UserSettings, error)

	Create(ctx context.Context, settings *models.UserSettings) error

	// Update saves every column and invalidates the cached copy
	Update(ctx context.Context, settings *models.UserSettings) error
}
