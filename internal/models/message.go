package models

import "time"

type Message struct {
	ID     int64     `db:"id" json:"id"`
	UserID int64     `db:"user_id" json:"user_id"`
	Text   string    `db:"message_text" json:"message_text"`
	IsBot  bool      `db:"is_bot" json:"is_bot"`
	SentAt time.Time `db:"sent_at" json:"sent_at"`
}

// CREATE TABLE messages (
//     id BIGSERIAL PRIMARY KEY,
//     user_id BIGINT REFERENCES users(user_id),
//     message_text TEXT NOT NULL,
//     is_bot BOOLEAN NOT NULL,
//     sent_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
// );
