package cache

import "fmt"

type EntityType string

const (
	EntitySettings EntityType = "settings"
	EntityHistory  EntityType = "history"
)

type KeyType string

const (
	KeyUser KeyType = "user"
)

// GenerateKey creates a standardized cache key
func GenerateKey(entity EntityType, keyType KeyType, value interface{}) string {
	return fmt.Sprintf("%s:%s:%v", entity, keyType, value)
}

// SettingsKey is where a user's settings row is cached.
func SettingsKey(userID string) string {
	return GenerateKey(EntitySettings, KeyUser, userID)
}

// HistoryKey is where one page of a user's scan history is cached.
func HistoryKey(userID string, limit, offset int) string {
	return fmt.Sprintf("%s:%d:%d", GenerateKey(EntityHistory, KeyUser, userID), limit, offset)
}

// HistoryPattern matches every cached history page of a user.
func HistoryPattern(userID string) string {
	return GenerateKey(EntityHistory, KeyUser, userID) + ":*"
}
