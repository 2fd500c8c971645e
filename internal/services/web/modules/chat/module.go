// Package chat serves the table chat panel and accepts posted messages.
package chat

import (
	"net/http"

	module "github.com/louisbranch/tablekit/internal/services/web/module"
	"github.com/louisbranch/tablekit/internal/services/web/routepath"
)

// Module provides chat room routes.
type Module struct{}

// New returns a chat module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "chat" }

// Mount wires chat route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(deps))
	return module.Mount{Prefix: routepath.ChatPrefix, Handler: mux}, nil
}
