package models

import "time"

type Subscription struct {
	UserID         int64      `db:"user_id" json:"user_id"`
	IsPremium      bool       `db:"is_premium" json:"is_premium"`
	TrialActivated bool       `db:"trial_activated" json:"trial_activated"`
	TrialStartDate *time.Time `db:"trial_start_date" json:"trial_start_date,omitempty"`
	ActivationKey  *string    `db:"activation_key" json:"activation_key,omitempty"`
}

// CREATE TABLE subscriptions (
//     user_id BIGINT PRIMARY KEY REFERENCES users(user_id),
//     is_premium BOOLEAN NOT NULL DEFAULT FALSE,
//     trial_activated BOOLEAN NOT NULL DEFAULT FALSE,
//     trial_start_date TIMESTAMPTZ,
//     activation_key TEXT
// );
