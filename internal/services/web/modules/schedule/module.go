// Package schedule serves the session schedule on the web and activity
// surfaces.
package schedule

import (
	"net/http"

	module "github.com/louisbranch/tablekit/internal/services/web/module"
	"github.com/louisbranch/tablekit/internal/services/web/platform/pagerender"
	"github.com/louisbranch/tablekit/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/tablekit/internal/services/web/routepath"
)

// Module provides schedule routes under one surface prefix.
type Module struct {
	id      string
	prefix  string
	surface pagerender.Surface
	policy  requestmeta.SchemePolicy
}

// New returns the web schedule module.
func New() Module {
	return Module{id: "schedule", prefix: routepath.SchedulePrefix, surface: pagerender.SurfaceApp}
}

// NewActivity returns the embedded-activity schedule module.
func NewActivity() Module {
	return Module{id: "activity-schedule", prefix: routepath.ActivitySchedulePrefix, surface: pagerender.SurfaceActivity}
}

// WithSchemePolicy sets how absolute reminder links resolve their scheme.
func (m Module) WithSchemePolicy(policy requestmeta.SchemePolicy) Module {
	m.policy = policy
	return m
}

// ID returns a stable module identifier.
func (m Module) ID() string { return m.id }

// Mount wires schedule route handlers.
func (m Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(deps.Sessions), deps, m)
	registerRoutes(mux, m.prefix, h)
	return module.Mount{Prefix: m.prefix, Handler: mux}, nil
}
