package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// DatabaseConfig конфигурация БД
type DatabaseConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Name     string
	SSLMode  string
}

// Load загружает конфигурацию
func Load() error {
	env := getEnv("APP_ENV", "development")

	AppConfig = &Config{
		Environment: env,
		Bot: BotConfig{
			Token:    getEnv("BOT_TOKEN", ""),
			Debug:    getEnvAsBool("BOT_DEBUG", env != "production"),
			AdminIDs: parseAdminIDs(getEnv("ADMIN_IDS", "")),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			Username: getEnv("DB_USER", ""),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "auramind-db"),
			SSLMode:  getSSLMode(env),
		},
		LLM: LLMConfig{
			LocalAPIURL:    getEnv("API_URL", ""),
			LocalModel:     getEnv("LOCAL_MODEL", "google/gemma-3-12b"),
			DeepSeekAPIURL: getEnv("DEEPSEEK_API_URL", "https://api.deepseek.com/v1/chat/completions"),
			DeepSeekAPIKey: getEnv("DEEPSEEK_KEY", ""),
			DeepSeekModel:  getEnv("DEEPSEEK_MODEL", "deepseek-chat"),
			SystemPrompt:   getEnv("SYSTEM_PROMPT", ""),
		},
	}

	return validate()
}

// validate проверяет обязательные параметры
func validate() error {
	var errors []string

	if AppConfig.Bot.Token == "" {
		errors = append(errors, "BOT_TOKEN is required")
	}

	if AppConfig.Database.Username == "" {
		errors = append(errors, "DB_USER is required")
	}

	if AppConfig.Database.Password == "" && AppConfig.Environment == "production" {
		errors = append(errors, "DB_PASSWORD is required in production")
	}

	if AppConfig.LLM.LocalAPIURL == "" && AppConfig.LLM.DeepSeekAPIKey == "" {
		errors = append(errors, "at least one of API_URL or DEEPSEEK_KEY is required")
	}

	if len(errors) > 0 {
		return fmt.Errorf("config validation failed: %s", strings.Join(errors, ", "))
	}

	return nil
}

// getSSLMode возвращает режим SSL в зависимости от окружения
func getSSLMode(env string) string {
	if env == "production" {
		return "require" // В продакшене всегда SSL
	}
	return "disable" // В разработке можно отключить
}

// parseAdminIDs парсит список ID администраторов
func parseAdminIDs(ids string) []int64 {
	if ids == "" {
		return []int64{}
	}

	var result []int64
	for _, idStr := range strings.Split(ids, ",") {
		if id, err := strconv.ParseInt(strings.TrimSpace(idStr), 10, 64); err == nil {
			result = append(result, id)
		}
	}
	return result
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if value, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return value
	}
	return fallback
}
