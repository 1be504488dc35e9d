package subscription

import (
	"fmt"
	"time"

	"auramind-bot/internal/models"
	"auramind-bot/internal/repository"
	"auramind-bot/internal/repository/activationkey"

	"github.com/jmoiron/sqlx"
)

type subscriptionRepository struct {
	db *sqlx.DB
}

func NewSubscriptionRepository(db *sqlx.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) Register(userID int64) error {
	query := `
		INSERT INTO subscriptions (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO NOTHING
	`
	_, err := r.db.Exec(query, userID)
	return err
}

func (r *subscriptionRepository) Get(userID int64) (*models.Subscription, error) {
	var subscription models.Subscription
	query := `SELECT * FROM subscriptions WHERE user_id = $1`
	err := r.db.Get(&subscription, query, userID)
	return &subscription, err
}

func (r *subscriptionRepository) ActivateTrial(userID int64, startedAt time.Time) (bool, error) {
	query := `
		UPDATE subscriptions
		SET trial_activated = TRUE,
		    trial_start_date = $2
		WHERE user_id = $1 AND trial_activated = FALSE
	`
	result, err := r.db.Exec(query, userID, startedAt)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// ActivatePremium — единственное место, где меняются сразу две сущности.
// Гашение ключа и включение премиума идут в одной транзакции: ключ не может
// остаться погашенным без апгрейда подписки, и наоборот.
func (r *subscriptionRepository) ActivatePremium(userID int64, key string, usedAt time.Time) (bool, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return false, fmt.Errorf("begin tx: %w", err)
	}

	consumed, err := activationkey.ConsumeExec(tx, key, userID, usedAt)
	if err != nil {
		tx.Rollback()
		return false, fmt.Errorf("consume key: %w", err)
	}
	if !consumed {
		tx.Rollback()
		return false, nil
	}

	query := `
		UPDATE subscriptions
		SET is_premium = TRUE,
		    activation_key = $2
		WHERE user_id = $1
	`
	result, err := tx.Exec(query, userID, key)
	if err != nil {
		tx.Rollback()
		return false, fmt.Errorf("set premium: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		tx.Rollback()
		return false, err
	}
	if affected == 0 {
		// Нет строки подписки — откатываем и гашение ключа.
		tx.Rollback()
		return false, nil
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit tx: %w", err)
	}
	return true, nil
}
