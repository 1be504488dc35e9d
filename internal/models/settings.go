package models

const (
	GenderFemale  = "female"
	GenderMale    = "male"
	GenderNeutral = "neutral"

	StyleShort = "short"
	StyleLong  = "long"

	AgeTeen  = "13-18"
	AgeAdult = "19-35"
)

// UserSettings — настройки диалога одного пользователя.
// В БД сохраняются только BotGender и UserGender (колонки в users),
// остальные поля живут в памяти процесса и сбрасываются при перезапуске.
type UserSettings struct {
	Age        string // "13-18", "19-35" или "" если не выбран
	Style      string // "short" или "long"
	Advice     bool
	BotGender  string
	UserGender string
}

// DefaultSettings — стартовое состояние: краткий стиль и нейтральный пол
// обеих сторон, как и значения в строке users при регистрации.
func DefaultSettings() *UserSettings {
	return &UserSettings{
		Style:      StyleShort,
		BotGender:  GenderNeutral,
		UserGender: GenderNeutral,
	}
}
