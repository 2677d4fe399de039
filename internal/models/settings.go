package models

import "time"

// UserSettings holds the profile, notification and preference settings of a user.
type UserSettings struct {
	ID     uint   `gorm:"primarykey" json:"id"`
	UserID string `gorm:"size:120;uniqueIndex;not null" json:"user_id"`

	Name        string `gorm:"size:120" json:"name"`
	Email       string `gorm:"size:255" json:"email"`
	MemberSince string `gorm:"size:40" json:"member_since"`
	AvatarURL   string `gorm:"size:500" json:"avatar_url"`

	PushEnabled    bool `gorm:"not null" json:"push_enabled"`
	EmailAlerts    bool `gorm:"not null" json:"email_alerts"`
	SecurityAlerts bool `gorm:"not null" json:"security_alerts"`

	DarkMode       bool   `gorm:"not null" json:"dark_mode"`
	HapticFeedback bool   `gorm:"not null" json:"haptic_feedback"`
	Language       string `gorm:"size:40" json:"language"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserInfo is the profile section of the settings document.
type UserInfo struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	MemberSince string `json:"member_since"`
	AvatarURL   string `json:"avatar_url"`
}

// NotificationSettings is the notifications section of the settings document.
type NotificationSettings struct {
	PushEnabled    bool `json:"push_enabled"`
	EmailAlerts    bool `json:"email_alerts"`
	SecurityAlerts bool `json:"security_alerts"`
}

// Preferences is the preferences section of the settings document.
type Preferences struct {
	DarkMode       bool   `json:"dark_mode"`
	HapticFeedback bool   `json:"haptic_feedback"`
	Language       string `json:"language"`
}

// SettingsDocument is the nested shape served to clients.
type SettingsDocument struct {
	User          UserInfo             `json:"user"`
	Notifications NotificationSettings `json:"notifications"`
	Preferences   Preferences          `json:"preferences"`
}

// Document converts the stored row into its client shape.
func (s *UserSettings) Document() SettingsDocument {
	return SettingsDocument{
		User: UserInfo{
			Name:        s.Name,
			Email:       s.Email,
			MemberSince: s.MemberSince,
			AvatarURL:   s.AvatarURL,
		},
		Notifications: NotificationSettings{
			PushEnabled:    s.PushEnabled,
			EmailAlerts:    s.EmailAlerts,
			SecurityAlerts: s.SecurityAlerts,
		},
		Preferences: Preferences{
			DarkMode:       s.DarkMode,
			HapticFeedback: s.HapticFeedback,
			Language:       s.Language,
		},
	}
}

// UpdateUserInfoInput carries a partial profile update. Empty strings are ignored.
type UpdateUserInfoInput struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// UpdateNotificationsInput carries a partial notifications update.
type UpdateNotificationsInput struct {
	PushEnabled    *bool `json:"push_enabled"`
	EmailAlerts    *bool `json:"email_alerts"`
	SecurityAlerts *bool `json:"security_alerts"`
}

// UpdatePreferencesInput carries a partial preferences update.
type UpdatePreferencesInput struct {
	DarkMode       *bool   `json:"dark_mode"`
	HapticFeedback *bool   `json:"haptic_feedback"`
	Language       *string `json:"language"`
}
