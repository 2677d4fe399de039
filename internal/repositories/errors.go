package repositories

import "errors"

var (
	ErrSettingsNotFound  = errors.New("settings not found")
	ErrDatabaseOperation = errors.New("database operation failed")
)
