package i18n

var UK = Messages{
	"syntax_error":           "Синтаксична помилка",
	"mismatched_closing_tag": "Закриваючий тег </%s> не відповідає відкриваючому тегу <%s>",
	"unclosed_element":       "Елемент <%s> ніколи не закривається",
	"change_closing_tag":     "Змінити закриваючий тег на </%s>",
	"add_closing_tag":        "Додати закриваючий тег </%s>",
}
