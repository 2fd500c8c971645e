package public

import (
	"net/http"

	apperrors "github.com/louisbranch/tablekit/internal/platform/errors"
	module "github.com/louisbranch/tablekit/internal/services/web/module"
	"github.com/louisbranch/tablekit/internal/services/web/platform/httpx"
	"github.com/louisbranch/tablekit/internal/services/web/platform/pagerender"
	"github.com/louisbranch/tablekit/internal/services/web/platform/weberror"
	"github.com/louisbranch/tablekit/internal/services/web/routepath"
)

type handlers struct {
	svc  service
	deps module.Dependencies
}

func newHandlers(svc service, deps module.Dependencies) handlers {
	return handlers{svc: svc, deps: deps}
}

func (h handlers) handleRoot(w http.ResponseWriter, r *http.Request) {
	httpx.WriteRedirect(w, r, routepath.Schedule())
}

func (h handlers) handleActivityRoot(w http.ResponseWriter, r *http.Request) {
	httpx.WriteRedirect(w, r, routepath.ActivitySchedule())
}

func (h handlers) handleHealth(w http.ResponseWriter, r *http.Request) {
	body, err := h.svc.health(r.Context())
	status := http.StatusOK
	if err != nil {
		h.deps.Log().Printf("health check failed err=%v", err)
		status = apperrors.HTTPStatus(err)
	}
	if err := httpx.WriteJSON(w, status, body); err != nil {
		h.deps.Log().Printf("write health response err=%v", err)
	}
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	l, lang := pagerender.Localizer(w, r)
	weberror.WriteModuleError(w, r, apperrors.E(apperrors.KindNotFound, "page not found"), pagerender.ModulePage{
		Surface: pagerender.SurfaceApp,
		HomeURL: routepath.Schedule(),
		Loc:     l,
		Lang:    lang,
	})
}
