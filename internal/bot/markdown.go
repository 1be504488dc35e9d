package bot

import "strings"

// markdownEscaper экранирует символы, которые Telegram трактует как
// Markdown-разметку. Применяется только к исходящему тексту: в журнал
// диалога реплики пишутся как есть.
var markdownEscaper = strings.NewReplacer(
	"*", `\*`,
	"_", `\_`,
	"[", `\[`,
	"`", "\\`",
)

func escapeMarkdown(text string) string {
	return markdownEscaper.Replace(text)
}
