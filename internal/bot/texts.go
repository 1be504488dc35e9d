package bot

// Подписи кнопок основной клавиатуры. Совпадающий с ними текст
// обрабатывается как команда, а не как реплика диалога.
const (
	btnSettings    = "⚙️ Настройки"
	btnHelp        = "❓ Помощь"
	btnTrial       = "🎁 Попробовать бесплатно"
	btnActivateKey = "🔑 Активировать ключ"
)

const welcomeText = `
*Привет!* 👋
Я *AuraMind*. Здесь ты можешь спокойно и безопасно поделиться всем, что тебя волнует. Я не даю советов, но помогу тебе разобраться в твоих мыслях. Начну с того, что спрошу: что сейчас происходит в твоей жизни, что привело тебя сюда? 💙

Настройки необязательны, но вы можете настроить бота под себя в меню "⚙️ Настройки"

🎁 Попробуйте бесплатный период на 3 дня!

🔑 Активируйте премиум-подписку с помощью ключа!
`

const menuText = `
*Главное меню* 📱

Выберите действие:
`

const helpText = `
*🕊️ AuraMind — ваш ИИ-психолог*

• Все общение анонимно и конфиденциально
• Вы можете говорить со мной о любых проблемах
• Телефон доверия для детей и подростков: 8-800-2000-122
`

const (
	adminPanelText    = "*Панель администратора* 🔒\n\nВыберите действие:"
	adminDeniedText   = "У вас нет доступа к этой команде."
	adminDeniedButton = "У вас нет доступа к этой функции."
	enterKeyToDelete  = "Введите ключ, который хотите удалить:"

	noAccessText = "❌ У вас нет активной подписки. Активируйте бесплатный период или приобретите премиум-подписку."

	trialGrantedText = "🎉 Поздравляем! Вам активирован бесплатный период на %d дней!"
	trialRefusedText = "❌ К сожалению, вы уже использовали бесплатный период. Приобретите премиум-подписку для продолжения использования."

	activateHintText   = "Пожалуйста, введите ваш ключ активации. Например: `/activate ВАШ_КЛЮЧ`"
	activationOKText   = "✅ Ваш премиум-доступ успешно активирован!"
	activationFailText = "❌ Неверный ключ активации или он уже использован."

	settingsTitle     = "⚙️ Настройки"
	settingsSavedText = "Настройки сохранены"

	genericErrorText = "*Произошла ошибка. Пожалуйста, попробуйте позже.* ❌"
)
