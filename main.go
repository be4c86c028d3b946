package main

import (
	"github.com/spf13/pflag"
	lsp "github.com/taglink/taglink-lsp/providers"
)

func init() {
	pflag.CommandLine.ParseErrorsWhitelist.UnknownFlags = true
	pflag.Int("web-socket", 0, "Start websocket server on port")
	pflag.Int("verbose", 0, "Log verbosity level")
	pflag.String("log", "", "Log to file")
	pflag.String("log-only", "", "Log only debug messages with given prefix")
	pflag.Parse()
}

func main() {
	err := lsp.StartServer()

	if err != nil {
		panic(err)
	}
}
