//go:build !wasm && !wasip1

package providers

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	"github.com/tliron/glsp"
	serv "github.com/tliron/glsp/server"
)

func StartServer() error {
	webSocketPort, err := pflag.CommandLine.GetInt("web-socket")

	if err != nil {
		return err
	}

	verbose, err := pflag.CommandLine.GetInt("verbose")

	if err != nil {
		return err
	}

	logFile, err := pflag.CommandLine.GetString("log")

	if err != nil {
		return err
	}

	logPrefix, err := pflag.CommandLine.GetString("log-only")

	if err != nil {
		return err
	}

	if logPrefix != "" {
		LogOnly(logPrefix)
	}

	var path *string

	if logFile != "" {
		path = &logFile
	}

	commonlog.Configure(verbose, path)

	server = CreateServer(
		NewLinkedEditingHandlers(),
		NewProtocolHandlers(),
		NewDiagnosticHandlers(),
		NewConfigurationHandlers(),
	)

	if webSocketPort > 0 {
		return server.RunWebSocket(fmt.Sprintf("127.0.0.1:%d", webSocketPort))
	}

	return server.RunStdio()
}

func CreateServer(handlers ...glsp.Handler) *serv.Server {
	return serv.NewServer(CreateRequestHandler(handlers...), ServerName, false)
}
