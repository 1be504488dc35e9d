package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("BOT_DEBUG", "")
	t.Setenv("ADMIN_IDS", "")
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_PORT", "")
	t.Setenv("BOT_TOKEN", "123:token")
	t.Setenv("DB_USER", "postgres")
	t.Setenv("API_URL", "http://127.0.0.1:1234")

	require.NoError(t, Load())

	assert.Equal(t, "development", AppConfig.Environment)
	assert.True(t, AppConfig.Bot.Debug)
	assert.Empty(t, AppConfig.Bot.AdminIDs)
	assert.Equal(t, "localhost", AppConfig.Database.Host)
	assert.Equal(t, 5432, AppConfig.Database.Port)
	assert.Equal(t, "disable", AppConfig.Database.SSLMode)
	assert.Equal(t, "google/gemma-3-12b", AppConfig.LLM.LocalModel)
	assert.Equal(t, "deepseek-chat", AppConfig.LLM.DeepSeekModel)
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")
	t.Setenv("DB_USER", "")
	t.Setenv("API_URL", "")
	t.Setenv("DEEPSEEK_KEY", "")

	err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "BOT_TOKEN is required")
	assert.Contains(t, err.Error(), "DB_USER is required")
	assert.Contains(t, err.Error(), "at least one of API_URL or DEEPSEEK_KEY")
}

func TestLoad_ProductionRequiresPassword(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("BOT_TOKEN", "123:token")
	t.Setenv("DB_USER", "postgres")
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("DEEPSEEK_KEY", "sk-key")

	err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PASSWORD is required in production")
}

func TestLoad_ProductionSSLMode(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("BOT_TOKEN", "123:token")
	t.Setenv("DB_USER", "postgres")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DEEPSEEK_KEY", "sk-key")

	require.NoError(t, Load())

	assert.Equal(t, "require", AppConfig.Database.SSLMode)
	assert.False(t, AppConfig.Bot.Debug)
}

func TestParseAdminIDs(t *testing.T) {
	assert.Empty(t, parseAdminIDs(""))
	assert.Equal(t, []int64{42}, parseAdminIDs("42"))
	assert.Equal(t, []int64{1, 2, 3}, parseAdminIDs("1, 2 ,3"))
	// Мусор в списке пропускается, валидные ID остаются.
	assert.Equal(t, []int64{7}, parseAdminIDs("abc,7"))
}
