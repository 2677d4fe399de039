package repositories

import (
	"context"
	"fmt"
	"time"

	"cypher/internal/models"
	"cypher/internal/repositories/cache"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type scanRepository struct {
	db     *gorm.DB
	cache  CacheRepository
	ttl    time.Duration
	logger *zap.Logger
}

// NewScanRepository creates a new instance of ScanRepository. History pages
// are cached for ttl when cache is not nil.
func NewScanRepository(db *gorm.DB, cache CacheRepository, ttl time.Duration, logger *zap.Logger) ScanRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &scanRepository{
		db:     db,
		cache:  cache,
		ttl:    ttl,
		logger: logger.With(zap.String("component", "scan_repository")),
	}
}

func (r *scanRepository) Create(ctx context.Context, scan *models.ScanRecord) error {
	if err := r.db.WithContext(ctx).Create(scan).Error; err != nil {
		return fmt.Errorf("%w: %v", ErrDatabaseOperation, err)
	}

	if r.cache != nil {
		if err := r.cache.DeleteMatching(ctx, cache.HistoryPattern(scan.UserID)); err != nil {
			r.logger.Warn("failed to invalidate history cache",
				zap.String("user_id", scan.UserID), zap.Error(err))
		}
	}
	return nil
}

func (r *scanRepository) ListByUser(ctx context.Context, userID string, limit, offset int) (*models.ScanPage, error) {
	key := cache.HistoryKey(userID, limit, offset)

	if r.cache != nil {
		var page models.ScanPage
		found, err := r.cache.Get(ctx, key, &page)
		if err != nil {
			r.logger.Warn("history cache read failed", zap.String("key", key), zap.Error(err))
		} else if found {
			return &page, nil
		}
	}

	page := &models.ScanPage{Scans: []models.ScanRecord{}}
	query := r.db.WithContext(ctx).Model(&models.ScanRecord{}).Where("user_id = ?", userID)

	if err := query.Count(&page.Total).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseOperation, err)
	}
	if err := query.Order("timestamp DESC, id DESC").
		Limit(limit).Offset(offset).
		Find(&page.Scans).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseOperation, err)
	}

	if r.cache != nil {
		if err := r.cache.SetWithTTL(ctx, key, page, r.ttl); err != nil {
			r.logger.Warn("failed to cache history page", zap.String("key", key), zap.Error(err))
		}
	}
	return page, nil
}
