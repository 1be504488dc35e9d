package activationkey

import (
	"time"

	"auramind-bot/internal/models"
	"auramind-bot/internal/repository"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

type activationKeyRepository struct {
	db *sqlx.DB
}

func NewActivationKeyRepository(db *sqlx.DB) repository.ActivationKeyRepository {
	return &activationKeyRepository{db: db}
}

func (r *activationKeyRepository) Create(key *models.ActivationKey) error {
	query := `
		INSERT INTO activation_keys (key, created_at)
		VALUES ($1, $2)
	`
	_, err := r.db.Exec(query, key.Key, key.CreatedAt)
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == uniqueViolation {
		return repository.ErrDuplicateKey
	}
	return err
}

func (r *activationKeyRepository) Consume(key string, userID int64, usedAt time.Time) (bool, error) {
	return ConsumeExec(r.db, key, userID, usedAt)
}

// ConsumeExec гасит ключ одним условным UPDATE: из любого числа конкурентных
// вызовов с одним ключом успешен максимум один. Выполняется и на *sqlx.DB,
// и внутри транзакции активации премиума.
func ConsumeExec(ext repository.Ext, key string, userID int64, usedAt time.Time) (bool, error) {
	query := `
		UPDATE activation_keys
		SET is_used = TRUE,
		    used_by_user_id = $2,
		    used_at = $3
		WHERE key = $1 AND is_used = FALSE
	`
	result, err := ext.Exec(query, key, userID, usedAt)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Delete удаляет ключ независимо от того, использован он или нет:
// администратор может отзывать утёкшие и чистить погашенные ключи.
func (r *activationKeyRepository) Delete(key string) (bool, error) {
	result, err := r.db.Exec(`DELETE FROM activation_keys WHERE key = $1`, key)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
