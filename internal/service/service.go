package service

import (
	"auramind-bot/internal/models"
)

type UserService interface {
	// Register создаёт пользователя при первом контакте; повторные вызовы — no-op.
	Register(userID int64, username, firstName, lastName string) error
}

type SubscriptionService interface {
	Register(userID int64) error
	// ActivateTrial разрешён каждому пользователю ровно один раз.
	ActivateTrial(userID int64) (bool, error)
	// TrialDaysLeft — 0, если триал не активирован или истёк.
	// Чистая функция от состояния подписки и текущего времени.
	TrialDaysLeft(userID int64) (int, error)
	ActivatePremium(userID int64, key string) (bool, error)
	// HasAccess — премиум или живой триал. Проверяется на каждом ходе диалога.
	HasAccess(userID int64) (bool, error)

	// Операции администратора.
	CreateActivationKey() (string, error)
	DeleteActivationKey(key string) (bool, error)
}

type HistoryService interface {
	// Append пишет сообщение в журнал; ошибка записи логируется и глотается,
	// потерянная запись не должна блокировать ответ пользователю.
	Append(userID int64, text string, isBot bool)
	// Recent — последние limit сообщений в хронологическом порядке.
	Recent(userID int64, limit int) []models.Message
	// Clear не привязан ни к одной кнопке, но остаётся поддерживаемой
	// операцией для сброса/удаления истории.
	Clear(userID int64) error
}
