package cache

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeys(t *testing.T) {
	assert.Equal(t, "settings:user:u-1", SettingsKey("u-1"))
	assert.Equal(t, "history:user:u-1:20:40", HistoryKey("u-1", 20, 40))
	assert.Equal(t, "history:user:u-1:*", HistoryPattern("u-1"))
}

func TestHistoryPattern_ScopedToUser(t *testing.T) {
	prefix := strings.TrimSuffix(HistoryPattern("u-1"), "*")

	assert.True(t, strings.HasPrefix(HistoryKey("u-1", 20, 0), prefix))
	assert.False(t, strings.HasPrefix(HistoryKey("u-10", 20, 0), prefix))
}
