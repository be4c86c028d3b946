package providers

import (
	"encoding/json"
	"strings"
)

var logOnly string

func Debugf(msg string, args ...any) {
	if server == nil {
		return
	}

	server.Log.Debugf(msg, args...)
}

func LogDebug(msg string, data any) {
	if logOnly != "" && !strings.HasPrefix(msg, logOnly) {
		return
	}

	if server == nil || server.Log.GetMaxLevel() < 2 {
		return
	}

	str, _ := json.MarshalIndent(data, "", "  ")
	Debugf(msg, str)
}

func LogOnly(prefix string) {
	logOnly = prefix
}
