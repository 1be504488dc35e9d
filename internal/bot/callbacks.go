package bot

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	"go.uber.org/zap"
)

// handleCallback маршрутизирует нажатия инлайн-кнопок настроек и панели
// администратора. Идентификатор кнопки — это имя конкретного действия,
// свободный текст в изменение схемы не попадает.
func (b *Bot) handleCallback(query *tgbotapi.CallbackQuery) {
	if query.Message == nil {
		return
	}

	userID := int64(query.From.ID)
	chatID := query.Message.Chat.ID
	messageID := query.Message.MessageID
	data := query.Data

	answerText := ""

	switch data {
	case "age":
		b.editWithKeyboard(chatID, messageID, "Выберите ваш возраст:", createAgeKeyboard(b.Settings.Get(userID)))
	case "style":
		b.editWithKeyboard(chatID, messageID, "Выберите стиль ответов:", createStyleKeyboard(b.Settings.Get(userID)))
	case "advice":
		b.editWithKeyboard(chatID, messageID, "Хотите ли вы получать советы?", createAdviceKeyboard(b.Settings.Get(userID)))
	case "bot_gender":
		b.editWithKeyboard(chatID, messageID, "Выберите пол бота:", createBotGenderKeyboard(b.Settings.Get(userID)))
	case "user_gender":
		b.editWithKeyboard(chatID, messageID, "Укажите ваш пол:", createUserGenderKeyboard(b.Settings.Get(userID)))
	case "back_to_settings":
		b.editWithKeyboard(chatID, messageID, settingsTitle, createSettingsKeyboard())
	case "back_to_main":
		if _, err := b.api.DeleteMessage(tgbotapi.NewDeleteMessage(chatID, messageID)); err != nil {
			b.log.Debug("не удалось удалить сообщение настроек", zap.Error(err))
		}
		b.sendWithMainKeyboard(chatID, settingsSavedText)
	case "admin_create_key":
		answerText = b.handleAdminCreateKey(chatID, userID)
	case "admin_delete_key":
		if !b.isAdmin(userID) {
			answerText = adminDeniedButton
			break
		}
		b.setAdminState(userID, adminStateAwaitingKeyToDelete)
		b.sendMarkdown(chatID, enterKeyToDelete)
	default:
		b.handleSettingsSelection(userID, chatID, messageID, data)
	}

	if _, err := b.api.AnswerCallbackQuery(tgbotapi.NewCallback(query.ID, answerText)); err != nil {
		b.log.Debug("не удалось подтвердить callback", zap.Error(err))
	}
}

// handleSettingsSelection применяет выбранное значение и перерисовывает
// клавиатуру с отметкой текущего выбора.
func (b *Bot) handleSettingsSelection(userID, chatID int64, messageID int, data string) {
	switch {
	case strings.HasPrefix(data, "age_"):
		age := strings.ReplaceAll(strings.TrimPrefix(data, "age_"), "_", "-")
		b.Settings.SetAge(userID, age)
		b.editWithKeyboard(chatID, messageID, "Выберите ваш возраст:", createAgeKeyboard(b.Settings.Get(userID)))

	case strings.HasPrefix(data, "style_"):
		b.Settings.SetStyle(userID, strings.TrimPrefix(data, "style_"))
		b.editWithKeyboard(chatID, messageID, "Выберите стиль ответов:", createStyleKeyboard(b.Settings.Get(userID)))

	case strings.HasPrefix(data, "advice_"):
		b.Settings.SetAdvice(userID, data == "advice_yes")
		b.editWithKeyboard(chatID, messageID, "Хотите ли вы получать советы?", createAdviceKeyboard(b.Settings.Get(userID)))

	case strings.HasPrefix(data, "bot_gender_"):
		if err := b.Settings.SetBotGender(userID, strings.TrimPrefix(data, "bot_gender_")); err != nil {
			b.log.Warn("не удалось сохранить пол бота", zap.Int64("user_id", userID), zap.Error(err))
		}
		b.editWithKeyboard(chatID, messageID, "Выберите пол бота:", createBotGenderKeyboard(b.Settings.Get(userID)))

	case strings.HasPrefix(data, "user_gender_"):
		if err := b.Settings.SetUserGender(userID, strings.TrimPrefix(data, "user_gender_")); err != nil {
			b.log.Warn("не удалось сохранить пол пользователя", zap.Int64("user_id", userID), zap.Error(err))
		}
		b.editWithKeyboard(chatID, messageID, "Укажите ваш пол:", createUserGenderKeyboard(b.Settings.Get(userID)))
	}
}

func (b *Bot) handleAdminCreateKey(chatID, userID int64) string {
	if !b.isAdmin(userID) {
		return adminDeniedButton
	}

	key, err := b.SubscriptionService.CreateActivationKey()
	if err != nil {
		b.log.Error("ошибка создания ключа активации", zap.Error(err))
		b.sendMarkdown(chatID, genericErrorText)
		return ""
	}

	b.sendMarkdown(chatID, fmt.Sprintf("🔑 Новый ключ активации: `%s`", key))
	return ""
}
