package providers

import "testing"

func TestLogOnly(t *testing.T) {
	LogOnly("Diagnostic")

	t.Cleanup(func() {
		LogOnly("")
	})

	if logOnly != "Diagnostic" {
		t.Errorf("got %q, expected the prefix filter set", logOnly)
	}

	// must not touch the filter, only the guarded log path
	LogDebug("Other message", nil)

	if logOnly != "Diagnostic" {
		t.Error("LogDebug must not change the filter")
	}
}
