package models

import "time"

type User struct {
	ID         int64     `db:"user_id" json:"user_id"`
	Username   string    `db:"username" json:"username"`
	FirstName  string    `db:"first_name" json:"first_name"`
	LastName   string    `db:"last_name" json:"last_name"`
	BotGender  string    `db:"bot_gender" json:"bot_gender"`
	UserGender string    `db:"user_gender" json:"user_gender"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// CREATE TABLE users (
//     user_id BIGINT PRIMARY KEY,
//     username TEXT NOT NULL DEFAULT '',
//     first_name TEXT NOT NULL DEFAULT '',
//     last_name TEXT NOT NULL DEFAULT '',
//     bot_gender TEXT NOT NULL DEFAULT '',
//     user_gender TEXT NOT NULL DEFAULT '',
//     created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
// );
