package config

// AppConfig глобальная конфигурация приложения
var AppConfig *Config

// Config основной конфиг
type Config struct {
	Environment string
	Bot         BotConfig
	Database    DatabaseConfig
	LLM         LLMConfig
}

type BotConfig struct {
	Token    string
	Debug    bool
	AdminIDs []int64 // ID администраторов, которым доступна панель ключей
}

// LLMConfig настройки бэкендов генерации
type LLMConfig struct {
	LocalAPIURL    string // базовый URL локального completion-эндпоинта
	LocalModel     string
	DeepSeekAPIURL string
	DeepSeekAPIKey string
	DeepSeekModel  string
	SystemPrompt   string
}
