//go:build wasm || wasip1

package providers

import (
	"context"
	"os"

	"github.com/sourcegraph/jsonrpc2"
)

func StartServer() error {
	stream := &ReadWriteCloser{
		reader: os.Stdin,
		writer: os.Stdout,
	}

	handler := CreateRequestHandler(
		NewLinkedEditingHandlers(),
		NewProtocolHandlers(),
		NewDiagnosticHandlers(),
		NewConfigurationHandlers(),
	)

	conn := jsonrpc2.NewConn(
		context.Background(),
		jsonrpc2.NewBufferedStream(stream, jsonrpc2.VSCodeObjectCodec{}),
		jsonrpc2.HandlerWithError(handler.RpcHandle),
	)

	<-conn.DisconnectNotify()

	return nil
}
