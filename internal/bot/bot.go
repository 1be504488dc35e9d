package bot

import (
	"fmt"
	"sync"

	"auramind-bot/internal/llm"
	"auramind-bot/internal/models/config"
	"auramind-bot/internal/service"
	"auramind-bot/internal/service/settings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	"go.uber.org/zap"
)

type adminState int

const (
	adminStateIdle adminState = iota
	adminStateAwaitingKeyToDelete
)

// sender — единственный метод API, которым обработчики отвечают пользователю.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type Bot struct {
	api                 *tgbotapi.BotAPI
	send                sender
	UserService         service.UserService
	SubscriptionService service.SubscriptionService
	HistoryService      service.HistoryService
	Settings            *settings.Cache
	Gateway             *llm.Gateway
	log                 *zap.Logger

	adminIDs    map[int64]struct{}
	adminStates map[int64]adminState // userID -> ожидаемый ввод администратора
	mu          sync.RWMutex

	quit     chan struct{}
	stopOnce sync.Once
}

func NewBot(
	userService service.UserService,
	subscriptionService service.SubscriptionService,
	historyService service.HistoryService,
	settingsCache *settings.Cache,
	gateway *llm.Gateway,
	log *zap.Logger,
) (*Bot, error) {
	cfg := config.AppConfig.Bot

	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot API: %w", err)
	}

	api.Debug = cfg.Debug

	admins := make(map[int64]struct{}, len(cfg.AdminIDs))
	for _, id := range cfg.AdminIDs {
		admins[id] = struct{}{}
	}

	log.Info("🤖 бот инициализирован",
		zap.String("username", api.Self.UserName),
		zap.Bool("debug", cfg.Debug),
		zap.Int64s("admin_ids", cfg.AdminIDs))

	return &Bot{
		api:                 api,
		send:                api,
		UserService:         userService,
		SubscriptionService: subscriptionService,
		HistoryService:      historyService,
		Settings:            settingsCache,
		Gateway:             gateway,
		log:                 log,
		adminIDs:            admins,
		adminStates:         make(map[int64]adminState),
		quit:                make(chan struct{}),
	}, nil
}

func (b *Bot) Start() error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates, err := b.api.GetUpdatesChan(u)
	if err != nil {
		return err
	}

	b.log.Info("🚀 бот запущен", zap.String("username", b.api.Self.UserName))

	for {
		select {
		case <-b.quit:
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.CallbackQuery != nil {
				go b.handleCallback(update.CallbackQuery)
				continue
			}
			if update.Message != nil {
				go b.handleMessage(update.Message)
			}
		}
	}
}

func (b *Bot) Stop() {
	b.stopOnce.Do(func() {
		close(b.quit)
	})
}

func (b *Bot) isAdmin(userID int64) bool {
	_, ok := b.adminIDs[userID]
	return ok
}

func (b *Bot) adminStateFor(userID int64) adminState {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.adminStates[userID]
}

func (b *Bot) setAdminState(userID int64, state adminState) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if state == adminStateIdle {
		delete(b.adminStates, userID)
		return
	}
	b.adminStates[userID] = state
}

// sendMarkdown отправляет текст как есть, с Markdown-разметкой.
func (b *Bot) sendMarkdown(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := b.send.Send(msg); err != nil {
		b.log.Warn("не удалось отправить сообщение", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

func (b *Bot) sendWithMainKeyboard(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = createMainKeyboard()
	if _, err := b.send.Send(msg); err != nil {
		b.log.Warn("не удалось отправить сообщение", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

// replyEscaped отвечает на сообщение, экранировав Markdown-символы.
func (b *Bot) replyEscaped(message *tgbotapi.Message, text string) {
	msg := tgbotapi.NewMessage(message.Chat.ID, escapeMarkdown(text))
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyToMessageID = message.MessageID
	if _, err := b.send.Send(msg); err != nil {
		b.log.Warn("не удалось отправить ответ", zap.Int64("chat_id", message.Chat.ID), zap.Error(err))
	}
}

func (b *Bot) editWithKeyboard(chatID int64, messageID int, text string, keyboard tgbotapi.InlineKeyboardMarkup) {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	edit.ReplyMarkup = &keyboard
	if _, err := b.send.Send(edit); err != nil {
		b.log.Warn("не удалось обновить сообщение", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}
