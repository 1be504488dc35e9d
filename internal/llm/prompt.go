package llm

import (
	"fmt"
	"strings"

	"auramind-bot/internal/models"
)

// historyWindow — сколько последних реплик попадает в промпт.
const historyWindow = 5

// BuildPrompt собирает текст запроса к completion-бэкенду.
// Порядок блоков фиксирован и менять его нельзя: системная инструкция,
// блок настроек, окно истории, текущая реплика с открытой меткой ассистента.
func BuildPrompt(systemPrompt string, st models.UserSettings, history []models.Message, current string) string {
	var b strings.Builder

	if systemPrompt != "" {
		b.WriteString(systemPrompt)
		b.WriteString("\n\n")
	}

	b.WriteString("О пользователе:\n")
	if st.Age != "" {
		fmt.Fprintf(&b, "Возраст: %s\n", st.Age)
	}
	if st.Style != "" {
		fmt.Fprintf(&b, "Он хочет чтобы ты отвечал: %s\n", styleRu(st.Style))
	}
	fmt.Fprintf(&b, "Хочет ли он чтобы ты давал советы: %s\n", yesNo(st.Advice))
	if st.BotGender != "" {
		fmt.Fprintf(&b, "Пол бота: %s\n", genderRu(st.BotGender))
	}
	if st.UserGender != "" {
		fmt.Fprintf(&b, "Пол пользователя: %s\n", genderRu(st.UserGender))
	}
	if st.BotGender == models.GenderNeutral || st.UserGender == models.GenderNeutral {
		b.WriteString("Составляй ответы так, чтобы не был понятен твой пол и пол собеседника.\n")
	}
	b.WriteString("\n")

	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}
	for _, msg := range history {
		role := userLabel
		if msg.IsBot {
			role = assistantLabel
		}
		fmt.Fprintf(&b, "%s %s\n", role, msg.Text)
	}

	fmt.Fprintf(&b, "%s %s\n%s", userLabel, current, assistantLabel)
	return b.String()
}

func styleRu(style string) string {
	if style == models.StyleLong {
		return "Развёрнуто"
	}
	return "Кратко"
}

func yesNo(v bool) string {
	if v {
		return "Да"
	}
	return "Нет"
}

func genderRu(gender string) string {
	switch gender {
	case models.GenderFemale:
		return "женский"
	case models.GenderMale:
		return "мужской"
	default:
		return "нейтральный"
	}
}
