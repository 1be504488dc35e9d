package message

import (
	"auramind-bot/internal/models"
	"auramind-bot/internal/repository"

	"github.com/jmoiron/sqlx"
)

type messageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Append(msg *models.Message) error {
	query := `
		INSERT INTO messages (user_id, message_text, is_bot, sent_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	return r.db.QueryRow(query, msg.UserID, msg.Text, msg.IsBot, msg.SentAt).Scan(&msg.ID)
}

func (r *messageRepository) RecentDesc(userID int64, limit int) ([]models.Message, error) {
	var msgs []models.Message
	query := `
		SELECT id, user_id, message_text, is_bot, sent_at
		FROM messages
		WHERE user_id = $1
		ORDER BY sent_at DESC, id DESC
		LIMIT $2
	`
	err := r.db.Select(&msgs, query, userID, limit)
	return msgs, err
}

func (r *messageRepository) DeleteByUser(userID int64) error {
	query := `DELETE FROM messages WHERE user_id = $1`
	_, err := r.db.Exec(query, userID)
	return err
}
