package history_service

import (
	"auramind-bot/internal/clock"
	"auramind-bot/internal/models"
	"auramind-bot/internal/repository"
	"auramind-bot/internal/service"

	"go.uber.org/zap"
)

type historyService struct {
	messageRepo repository.MessageRepository
	clock       clock.Clock
	log         *zap.Logger
}

func NewHistoryService(messageRepo repository.MessageRepository, clk clock.Clock, log *zap.Logger) service.HistoryService {
	return &historyService{
		messageRepo: messageRepo,
		clock:       clk,
		log:         log,
	}
}

func (s *historyService) Append(userID int64, text string, isBot bool) {
	msg := &models.Message{
		UserID: userID,
		Text:   text,
		IsBot:  isBot,
		SentAt: s.clock.Now(),
	}
	if err := s.messageRepo.Append(msg); err != nil {
		s.log.Warn("не удалось сохранить сообщение в журнал",
			zap.Int64("user_id", userID),
			zap.Bool("is_bot", isBot),
			zap.Error(err))
	}
}

func (s *historyService) Recent(userID int64, limit int) []models.Message {
	msgs, err := s.messageRepo.RecentDesc(userID, limit)
	if err != nil {
		s.log.Warn("не удалось прочитать историю диалога",
			zap.Int64("user_id", userID),
			zap.Error(err))
		return nil
	}

	// Хранилище отдаёт от новых к старым, промпту нужен хронологический порядок.
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs
}

func (s *historyService) Clear(userID int64) error {
	return s.messageRepo.DeleteByUser(userID)
}
