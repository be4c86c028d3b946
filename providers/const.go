package providers

import (
	"github.com/taglink/taglink-lsp/linked"
	"github.com/taglink/taglink-lsp/state"
	serv "github.com/tliron/glsp/server"
)

const ServerName = "taglink"

var (
	server *serv.Server
	root   *state.Root

	tagProvider   = &linked.TagProvider{}
	linkedAdapter *linked.Adapter
)

var supportDiagnostics = false
var warnUnclosedTags = true
