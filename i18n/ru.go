package i18n

var RU = Messages{
	"syntax_error":           "Синтаксическая ошибка",
	"mismatched_closing_tag": "Закрывающий тег </%s> не соответствует открывающему тегу <%s>",
	"unclosed_element":       "Элемент <%s> никогда не закрывается",
	"change_closing_tag":     "Изменить закрывающий тег на </%s>",
	"add_closing_tag":        "Добавить закрывающий тег </%s>",
}
