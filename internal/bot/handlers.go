package bot

import (
	"context"
	"fmt"
	"strings"

	"auramind-bot/internal/llm"
	"auramind-bot/internal/models/config"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	"go.uber.org/zap"
)

// historyLimit — сколько сообщений журнала поднимается под один ход диалога.
const historyLimit = 10

func (b *Bot) handleMessage(message *tgbotapi.Message) {
	if message.From == nil || message.Text == "" {
		return
	}

	userID := int64(message.From.ID)
	chatID := message.Chat.ID

	b.log.Debug("входящее сообщение",
		zap.String("username", message.From.UserName),
		zap.String("text", message.Text))

	// Администратор, от которого ждём ключ на удаление, обрабатывается
	// раньше команд и кнопок.
	if b.isAdmin(userID) && b.adminStateFor(userID) == adminStateAwaitingKeyToDelete {
		b.handleAdminKeyDeletion(chatID, userID, strings.TrimSpace(message.Text))
		return
	}

	if message.IsCommand() {
		switch message.Command() {
		case "start":
			b.handleStart(message)
		case "menu":
			b.sendWithMainKeyboard(chatID, menuText)
		case "help":
			b.sendMarkdown(chatID, helpText)
		case "admin":
			b.handleAdmin(message)
		case "activate":
			b.handleActivate(chatID, userID, strings.TrimSpace(message.CommandArguments()))
		default:
			// Неизвестная команда — обычная реплика диалога.
			b.handleChat(message)
		}
		return
	}

	switch message.Text {
	case btnHelp:
		b.sendMarkdown(chatID, helpText)
	case btnSettings:
		msg := tgbotapi.NewMessage(chatID, settingsTitle)
		msg.ReplyMarkup = createSettingsKeyboard()
		if _, err := b.send.Send(msg); err != nil {
			b.log.Warn("не удалось открыть настройки", zap.Int64("chat_id", chatID), zap.Error(err))
		}
	case btnTrial:
		b.handleTrial(chatID, userID)
	case btnActivateKey:
		b.sendMarkdown(chatID, activateHintText)
	default:
		b.handleChat(message)
	}
}

func (b *Bot) handleStart(message *tgbotapi.Message) {
	userID := int64(message.From.ID)

	b.Settings.Reset(userID)

	if err := b.UserService.Register(userID, message.From.UserName, message.From.FirstName, message.From.LastName); err != nil {
		b.log.Error("ошибка регистрации пользователя", zap.Int64("user_id", userID), zap.Error(err))
	}
	if err := b.SubscriptionService.Register(userID); err != nil {
		b.log.Error("ошибка создания подписки", zap.Int64("user_id", userID), zap.Error(err))
	}

	b.sendWithMainKeyboard(message.Chat.ID, welcomeText)
}

func (b *Bot) handleAdmin(message *tgbotapi.Message) {
	if !b.isAdmin(int64(message.From.ID)) {
		b.replyEscaped(message, adminDeniedText)
		return
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, adminPanelText)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = createAdminKeyboard()
	if _, err := b.send.Send(msg); err != nil {
		b.log.Warn("не удалось открыть панель администратора", zap.Error(err))
	}
}

func (b *Bot) handleAdminKeyDeletion(chatID, userID int64, key string) {
	b.setAdminState(userID, adminStateIdle)

	deleted, err := b.SubscriptionService.DeleteActivationKey(key)
	if err != nil {
		b.log.Error("ошибка удаления ключа", zap.Error(err))
		b.sendMarkdown(chatID, genericErrorText)
		return
	}

	if deleted {
		b.sendMarkdown(chatID, fmt.Sprintf("Ключ `%s` успешно удален.", key))
	} else {
		b.sendMarkdown(chatID, fmt.Sprintf("Не удалось удалить ключ `%s`. Возможно, его не существует.", key))
	}
}

func (b *Bot) handleTrial(chatID, userID int64) {
	activated, err := b.SubscriptionService.ActivateTrial(userID)
	if err != nil {
		b.log.Error("ошибка активации бесплатного периода", zap.Int64("user_id", userID), zap.Error(err))
		b.sendWithMainKeyboard(chatID, genericErrorText)
		return
	}

	if !activated {
		b.sendWithMainKeyboard(chatID, trialRefusedText)
		return
	}

	days, err := b.SubscriptionService.TrialDaysLeft(userID)
	if err != nil {
		b.log.Warn("не удалось посчитать остаток бесплатного периода", zap.Int64("user_id", userID), zap.Error(err))
	}
	b.sendWithMainKeyboard(chatID, fmt.Sprintf(trialGrantedText, days))
}

func (b *Bot) handleActivate(chatID, userID int64, key string) {
	if key == "" {
		b.sendMarkdown(chatID, activateHintText)
		return
	}

	activated, err := b.SubscriptionService.ActivatePremium(userID, key)
	if err != nil {
		b.log.Error("ошибка активации премиума", zap.Int64("user_id", userID), zap.Error(err))
		b.sendWithMainKeyboard(chatID, genericErrorText)
		return
	}

	if activated {
		b.sendWithMainKeyboard(chatID, activationOKText)
	} else {
		b.sendWithMainKeyboard(chatID, activationFailText)
	}
}

// handleChat — один ход диалога: проверка доступа, сверка настроек,
// журнал, промпт, шлюз генерации, ответ.
func (b *Bot) handleChat(message *tgbotapi.Message) {
	userID := int64(message.From.ID)
	chatID := message.Chat.ID

	hasAccess, err := b.SubscriptionService.HasAccess(userID)
	if err != nil {
		b.log.Error("ошибка проверки подписки", zap.Int64("user_id", userID), zap.Error(err))
		b.replyEscaped(message, genericErrorText)
		return
	}
	if !hasAccess {
		// Обычный отказ, не ошибка: ход диалога не расходуется,
		// генерация не вызывается.
		b.sendWithMainKeyboard(chatID, noAccessText)
		return
	}

	b.Settings.Reconcile(userID)
	st := b.Settings.Get(userID)

	b.HistoryService.Append(userID, message.Text, false)

	if _, err := b.send.Send(tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping)); err != nil {
		b.log.Debug("не удалось отправить индикатор набора", zap.Error(err))
	}

	history := b.HistoryService.Recent(userID, historyLimit)
	prompt := llm.BuildPrompt(config.AppConfig.LLM.SystemPrompt, st, history, message.Text)

	reply, err := b.Gateway.Generate(context.Background(), llm.Turn{
		Prompt:   prompt,
		UserText: message.Text,
	})
	if err != nil {
		b.log.Error("генерация ответа не удалась", zap.Int64("user_id", userID), zap.Error(err))
		// Ошибка тоже попадает в журнал как реплика бота, чтобы контекст
		// диалога оставался согласованным. В журнал — без экранирования.
		b.HistoryService.Append(userID, genericErrorText, true)
		b.replyEscaped(message, genericErrorText)
		return
	}

	b.log.Info("ответ сгенерирован", zap.Int64("user_id", userID), zap.Int("length", len(reply)))
	b.HistoryService.Append(userID, reply, true)
	b.replyEscaped(message, reply)
}
