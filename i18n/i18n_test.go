package i18n

import "testing"

func TestL(t *testing.T) {
	if L("syntax_error") != "Syntax error" {
		t.Errorf("got %q", L("syntax_error"))
	}

	msg := L("mismatched_closing_tag", "b", "a")

	if msg != "Closing tag </b> does not match opening tag <a>" {
		t.Errorf("got %q", msg)
	}
}

func TestSetLocale(t *testing.T) {
	defer func() {
		Locale = "en"
	}()

	if err := SetLocale("uk"); err != nil {
		t.Fatalf("SetLocale: %v", err)
	}

	if Locale != "uk" {
		t.Errorf("got %s, expected uk", Locale)
	}

	if err := SetLocale("xx"); err == nil {
		t.Error("expected error for unsupported locale")
	}

	if Locale != "uk" {
		t.Error("failed SetLocale must not change the locale")
	}
}
