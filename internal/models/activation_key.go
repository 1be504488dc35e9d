package models

import "time"

// ActivationKey — одноразовый ключ премиум-доступа. После использования
// привязка к пользователю не меняется.
type ActivationKey struct {
	Key          string     `db:"key" json:"key"`
	IsUsed       bool       `db:"is_used" json:"is_used"`
	UsedByUserID *int64     `db:"used_by_user_id" json:"used_by_user_id,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UsedAt       *time.Time `db:"used_at" json:"used_at,omitempty"`
}

// CREATE TABLE activation_keys (
//     key TEXT PRIMARY KEY,
//     is_used BOOLEAN NOT NULL DEFAULT FALSE,
//     used_by_user_id BIGINT,
//     created_at TIMESTAMPTZ NOT NULL,
//     used_at TIMESTAMPTZ
// );
