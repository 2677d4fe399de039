// Package settings manages per-user profile, notification and preference
// settings. A user without a stored row gets the defaults on first read.
package settings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cypher/internal/models"
	"cypher/internal/repositories"
	"cypher/internal/utils/validation"

	"go.uber.org/zap"
)

const DefaultLanguage = "English"

// Service defines the settings operations
type Service interface {
	Get(ctx context.Context, userID string) (*models.SettingsDocument, error)
	UpdateUserInfo(ctx context.Context, userID string, in *models.UpdateUserInfoInput) (*models.SettingsDocument, error)
	UpdateNotifications(ctx context.Context, userID string, in *models.UpdateNotificationsInput) (*models.SettingsDocument, error)
	UpdatePreferences(ctx context.Context, userID string, in *models.UpdatePreferencesInput) (*models.SettingsDocument, error)
}

type service struct {
	repo   repositories.SettingsRepository
	now    func() time.Time
	logger *zap.Logger
}

// NewService creates a new settings service
func NewService(repo repositories.SettingsRepository, now func() time.Time, logger *zap.Logger) Service {
	if repo == nil {
		panic("repo is required")
	}
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{
		repo:   repo,
		now:    now,
		logger: logger.With(zap.String("component", "settings")),
	}
}

func (s *service) Get(ctx context.Context, userID string) (*models.SettingsDocument, error) {
	row, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	doc := row.Document()
	return &doc, nil
}

func (s *service) UpdateUserInfo(ctx context.Context, userID string, in *models.UpdateUserInfoInput) (*models.SettingsDocument, error) {
	if err := validation.ValidateUserInfo(in); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	return s.update(ctx, userID, func(row *models.UserSettings) {
		if in.Name != nil && *in.Name != "" {
			row.Name = *in.Name
		}
		if in.Email != nil && *in.Email != "" {
			row.Email = *in.Email
		}
	})
}

func (s *service) UpdateNotifications(ctx context.Context, userID string, in *models.UpdateNotificationsInput) (*models.SettingsDocument, error) {
	return s.update(ctx, userID, func(row *models.UserSettings) {
		if in.PushEnabled != nil {
			row.PushEnabled = *in.PushEnabled
		}
		if in.EmailAlerts != nil {
			row.EmailAlerts = *in.EmailAlerts
		}
		if in.SecurityAlerts != nil {
			row.SecurityAlerts = *in.SecurityAlerts
		}
	})
}

func (s *service) UpdatePreferences(ctx context.Context, userID string, in *models.UpdatePreferencesInput) (*models.SettingsDocument, error) {
	if err := validation.ValidatePreferences(in); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	return s.update(ctx, userID, func(row *models.UserSettings) {
		if in.DarkMode != nil {
			row.DarkMode = *in.DarkMode
		}
		if in.HapticFeedback != nil {
			row.HapticFeedback = *in.HapticFeedback
		}
		if in.Language != nil {
			row.Language = *in.Language
		}
	})
}

func (s *service) update(ctx context.Context, userID string, apply func(*models.UserSettings)) (*models.SettingsDocument, error) {
	row, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	apply(row)
	if err := s.repo.Update(ctx, row); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	doc := row.Document()
	return &doc, nil
}

// load returns the stored row, creating it with defaults on first use.
func (s *service) load(ctx context.Context, userID string) (*models.UserSettings, error) {
	if userID == "" {
		userID = models.AnonymousUserID
	}

	row, err := s.repo.GetByUserID(ctx, userID)
	if err == nil {
		return row, nil
	}
	if !errors.Is(err, repositories.ErrSettingsNotFound) {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	row = Defaults(userID, s.now())
	if err := s.repo.Create(ctx, row); err != nil {
		return nil, fmt.Errorf("failed to create settings: %w", err)
	}
	s.logger.Info("created default settings", zap.String("user_id", userID))
	return row, nil
}

// Defaults is the settings row a new user starts with.
func Defaults(userID string, now time.Time) *models.UserSettings {
	return &models.UserSettings{
		UserID:         userID,
		MemberSince:    now.Format("January 2006"),
		PushEnabled:    true,
		EmailAlerts:    true,
		SecurityAlerts: true,
		DarkMode:       true,
		HapticFeedback: true,
		Language:       DefaultLanguage,
	}
}
