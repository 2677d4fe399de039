package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cypher/internal/models"
	"cypher/internal/repositories/cache"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type settingsRepository struct {
	db     *gorm.DB
	cache  CacheRepository
	ttl    time.Duration
	logger *zap.Logger
}

// NewSettingsRepository creates a new instance of SettingsRepository
func NewSettingsRepository(db *gorm.DB, cache CacheRepository, ttl time.Duration, logger *zap.Logger) SettingsRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &settingsRepository{
		db:     db,
		cache:  cache,
		ttl:    ttl,
		logger: logger.With(zap.String("component", "settings_repository")),
	}
}

func (r *settingsRepository) GetByUserID(ctx context.Context, userID string) (*models.UserSettings, error) {
	key := cache.SettingsKey(userID)

	// Try cache first
	if r.cache != nil {
		var settings models.UserSettings
		if found, err := r.cache.Get(ctx, key, &settings); err == nil && found {
			return &settings, nil
		} else if err != nil {
			r.logger.Warn("settings cache read failed", zap.String("key", key), zap.Error(err))
		}
	}

	var settings models.UserSettings
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&settings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSettingsNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrDatabaseOperation, err)
	}

	r.store(ctx, &settings)
	return &settings, nil
}

func (r *settingsRepository) Create(ctx context.Context, settings *models.UserSettings) error {
	if err := r.db.WithContext(ctx).Create(settings).Error; err != nil {
		return fmt.Errorf("%w: %v", ErrDatabaseOperation, err)
	}
	r.store(ctx, settings)
	return nil
}

func (r *settingsRepository) Update(ctx context.Context, settings *models.UserSettings) error {
	if err := r.db.WithContext(ctx).Save(settings).Error; err != nil {
		return fmt.Errorf("%w: %v", ErrDatabaseOperation, err)
	}

	if r.cache != nil {
		if err := r.cache.Delete(ctx, cache.SettingsKey(settings.UserID)); err != nil {
			r.logger.Warn("failed to invalidate settings cache",
				zap.String("user_id", settings.UserID), zap.Error(err))
		}
	}
	return nil
}

func (r *settingsRepository) store(ctx context.Context, settings *models.UserSettings) {
	if r.cache == nil {
		return
	}
	if err := r.cache.SetWithTTL(ctx, cache.SettingsKey(settings.UserID), settings, r.ttl); err != nil {
		r.logger.Warn("failed to cache settings", zap.String("user_id", settings.UserID), zap.Error(err))
	}
}
