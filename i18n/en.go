package i18n

var EN = Messages{
	"syntax_error":           "Syntax error",
	"mismatched_closing_tag": "Closing tag </%s> does not match opening tag <%s>",
	"unclosed_element":       "Element <%s> is never closed",
	"change_closing_tag":     "Change closing tag to </%s>",
	"add_closing_tag":        "Add closing tag </%s>",
}
