// Package public serves the root redirects, the health probe and the
// catch-all not-found page.
package public

import (
	"net/http"

	module "github.com/louisbranch/tablekit/internal/services/web/module"
	"github.com/louisbranch/tablekit/internal/services/web/routepath"
)

// Module provides unprefixed public routes.
type Module struct{}

// New returns a public module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "public" }

// Mount wires public route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(deps), deps))
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
