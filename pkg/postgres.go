package database

import (
	"fmt"

	"auramind-bot/internal/models/config"

	"github.com/jmoiron/sqlx"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
    user_id BIGINT PRIMARY KEY,
    username TEXT NOT NULL DEFAULT '',
    first_name TEXT NOT NULL DEFAULT '',
    last_name TEXT NOT NULL DEFAULT '',
    bot_gender TEXT NOT NULL DEFAULT '',
    user_gender TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS messages (
    id BIGSERIAL PRIMARY KEY,
    user_id BIGINT REFERENCES users(user_id),
    message_text TEXT NOT NULL,
    is_bot BOOLEAN NOT NULL,
    sent_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_messages_user_sent ON messages (user_id, sent_at DESC);

CREATE TABLE IF NOT EXISTS subscriptions (
    user_id BIGINT PRIMARY KEY REFERENCES users(user_id),
    is_premium BOOLEAN NOT NULL DEFAULT FALSE,
    trial_activated BOOLEAN NOT NULL DEFAULT FALSE,
    trial_start_date TIMESTAMPTZ,
    activation_key TEXT
);

CREATE TABLE IF NOT EXISTS activation_keys (
    key TEXT PRIMARY KEY,
    is_used BOOLEAN NOT NULL DEFAULT FALSE,
    used_by_user_id BIGINT,
    created_at TIMESTAMPTZ NOT NULL,
    used_at TIMESTAMPTZ
);
`

func NewPostgres() (*sqlx.DB, error) {
	cfg := config.AppConfig.Database

	connStr := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.Username,
		cfg.Password,
		cfg.Name,
		cfg.SSLMode,
	)

	db, err := sqlx.Connect("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("schema init failed: %w", err)
	}

	return db, nil
}
