// Package llm собирает промпт и ходит за ответом в бэкенды генерации:
// сначала локальный completion-эндпоинт, при его отказе — удалённый
// chat-completion API.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"auramind-bot/internal/models/config"

	"go.uber.org/zap"
)

// Метки ролей в промпте. На них же локальный бэкенд останавливает генерацию.
const (
	userLabel      = "Пользователь:"
	assistantLabel = "Ассистент:"
	systemLabel    = "Система:"
)

var (
	// ErrNoChoices — в ответе бэкенда нет ни одного варианта.
	ErrNoChoices = errors.New("no choices in completion response")
	// ErrEmptyCompletion — бэкенд вернул пустой текст; молча отдавать его нельзя.
	ErrEmptyCompletion = errors.New("empty completion")
)

// Turn — один ход диалога: полный промпт для completion-бэкенда и
// исходная реплика для chat-бэкенда.
type Turn struct {
	Prompt   string
	UserText string
}

type Backend interface {
	Name() string
	Complete(ctx context.Context, turn Turn) (string, error)
}

type Gateway struct {
	primary  Backend
	fallback Backend
	log      *zap.Logger
}

func NewGateway(primary, fallback Backend, log *zap.Logger) *Gateway {
	return &Gateway{
		primary:  primary,
		fallback: fallback,
		log:      log,
	}
}

// NewGatewayFromConfig собирает шлюз по глобальной конфигурации.
func NewGatewayFromConfig(log *zap.Logger) *Gateway {
	cfg := config.AppConfig.LLM
	return NewGateway(
		NewLocalClient(cfg.LocalAPIURL, cfg.LocalModel),
		NewDeepSeekClient(cfg.DeepSeekAPIURL, cfg.DeepSeekAPIKey, cfg.DeepSeekModel, cfg.SystemPrompt),
		log,
	)
}

// Generate пробует бэкенды в строгом порядке. Отказ первичного — явная
// ветка на результате вызова, а не обработчик паники/исключения.
func (g *Gateway) Generate(ctx context.Context, turn Turn) (string, error) {
	raw, err := g.primary.Complete(ctx, turn)
	if err != nil {
		g.log.Warn("первичный бэкенд недоступен, переключаюсь на резервный",
			zap.String("backend", g.primary.Name()),
			zap.Error(err))

		raw, err = g.fallback.Complete(ctx, turn)
		if err != nil {
			return "", fmt.Errorf("fallback backend %s: %w", g.fallback.Name(), err)
		}
	}

	return normalize(raw)
}

// normalize приводит сырой ответ к финальной реплике: обрезает пробелы,
// отбрасывает эхо промпта до последней метки ассистента, пустой результат
// превращает в ошибку.
func normalize(raw string) (string, error) {
	reply := strings.TrimSpace(raw)
	if idx := strings.LastIndex(reply, assistantLabel); idx >= 0 {
		reply = strings.TrimSpace(reply[idx+len(assistantLabel):])
	}
	if reply == "" {
		return "", ErrEmptyCompletion
	}
	return reply, nil
}
