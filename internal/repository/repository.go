package repository

import (
	"errors"
	"time"

	"auramind-bot/internal/models"

	"github.com/jmoiron/sqlx"
)

// ErrDuplicateKey возвращается при коллизии идентификатора ключа активации.
// Молча перезаписывать существующий ключ нельзя.
var ErrDuplicateKey = errors.New("activation key already exists")

type UserRepository interface {
	CreateIfAbsent(user *models.User) error
	GetByID(userID int64) (*models.User, error)
	GetGenders(userID int64) (botGender, userGender string, err error)
	UpdateBotGender(userID int64, gender string) error
	UpdateUserGender(userID int64, gender string) error
}

type MessageRepository interface {
	Append(msg *models.Message) error
	// RecentDesc возвращает последние limit сообщений в порядке убывания времени.
	RecentDesc(userID int64, limit int) ([]models.Message, error)
	DeleteByUser(userID int64) error
}

type SubscriptionRepository interface {
	Register(userID int64) error
	Get(userID int64) (*models.Subscription, error)
	// ActivateTrial выставляет trial один раз; повторный вызов возвращает false
	// и не трогает trial_start_date.
	ActivateTrial(userID int64, startedAt time.Time) (bool, error)
	// ActivatePremium в одной транзакции гасит ключ и включает премиум.
	// false без ошибки — ключ неизвестен или уже использован.
	ActivatePremium(userID int64, key string, usedAt time.Time) (bool, error)
}

type ActivationKeyRepository interface {
	Create(key *models.ActivationKey) error
	// Consume — условный апдейт: успешен не более чем у одного вызова за всю
	// жизнь ключа, даже при конкурентных попытках. Нетранзакционная форма
	// гашения; активация премиума выполняет тот же апдейт внутри своей
	// транзакции через activationkey.ConsumeExec.
	Consume(key string, userID int64, usedAt time.Time) (bool, error)
	Delete(key string) (bool, error)
}

// Ext объединяет *sqlx.DB и *sqlx.Tx, чтобы условное гашение ключа
// выполнялось и само по себе, и внутри транзакции активации премиума.
type Ext = sqlx.Ext
