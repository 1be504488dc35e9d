// Package settings хранит настройки диалога пользователей в памяти процесса.
//
// В БД уходят и оттуда же перечитываются только два поля — пол бота и пол
// пользователя. Возраст, стиль и флаг советов живут до перезапуска процесса;
// это осознанное ограничение, а не ошибка.
package settings

import (
	"sync"

	"auramind-bot/internal/models"
	"auramind-bot/internal/repository"

	"go.uber.org/zap"
)

type Cache struct {
	mu       sync.RWMutex
	sessions map[int64]*models.UserSettings
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewCache(userRepo repository.UserRepository, log *zap.Logger) *Cache {
	return &Cache{
		sessions: make(map[int64]*models.UserSettings),
		userRepo: userRepo,
		log:      log,
	}
}

// Get возвращает копию настроек, при первом обращении — значения по умолчанию.
func (c *Cache) Get(userID int64) models.UserSettings {
	c.mu.Lock()
	defer c.mu.Unlock()
	return *c.session(userID)
}

// Reset сбрасывает настройки к значениям по умолчанию (команда /start).
func (c *Cache) Reset(userID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessions[userID] = models.DefaultSettings()
}

// Reconcile перечитывает из БД сохранённые поля пола и затирает ими копию в
// кеше. Остальные поля не трогает. Вызывается на каждом ходе диалога:
// для этих двух полей хранилище важнее кеша.
func (c *Cache) Reconcile(userID int64) {
	botGender, userGender, err := c.userRepo.GetGenders(userID)
	if err != nil {
		c.log.Warn("не удалось перечитать настройки пола",
			zap.Int64("user_id", userID),
			zap.Error(err))
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	st := c.session(userID)
	st.BotGender = botGender
	st.UserGender = userGender
}

func (c *Cache) SetAge(userID int64, age string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session(userID).Age = age
}

func (c *Cache) SetStyle(userID int64, style string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session(userID).Style = style
}

func (c *Cache) SetAdvice(userID int64, advice bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session(userID).Advice = advice
}

// SetBotGender меняет кеш сразу и синхронно сохраняет значение в БД.
func (c *Cache) SetBotGender(userID int64, gender string) error {
	c.mu.Lock()
	c.session(userID).BotGender = gender
	c.mu.Unlock()
	return c.userRepo.UpdateBotGender(userID, gender)
}

func (c *Cache) SetUserGender(userID int64, gender string) error {
	c.mu.Lock()
	c.session(userID).UserGender = gender
	c.mu.Unlock()
	return c.userRepo.UpdateUserGender(userID, gender)
}

// session возвращает живую запись; вызывающий держит c.mu.
func (c *Cache) session(userID int64) *models.UserSettings {
	st, ok := c.sessions[userID]
	if !ok {
		st = models.DefaultSettings()
		c.sessions[userID] = st
	}
	return st
}
