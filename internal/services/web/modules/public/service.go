package public

import (
	"context"

	apperrors "github.com/louisbranch/tablekit/internal/platform/errors"
	module "github.com/louisbranch/tablekit/internal/services/web/module"
	"github.com/louisbranch/tablekit/internal/services/web/storage"
)

type service struct {
	sessions storage.SessionStore
}

// health is the body of the health probe.
type health struct {
	Status   string `json:"status"`
	Sessions int    `json:"sessions"`
}

func newService(deps module.Dependencies) service {
	return service{sessions: deps.Sessions}
}

// health reports ok once the session store answers a count.
func (s service) health(ctx context.Context) (health, error) {
	if s.sessions == nil {
		return health{Status: "unavailable"}, apperrors.E(apperrors.KindUnavailable, "session store is not configured")
	}
	count, err := s.sessions.CountSessions(ctx)
	if err != nil {
		return health{Status: "unavailable"}, apperrors.Wrap(apperrors.KindUnavailable, "", "count sessions", err)
	}
	return health{Status: "ok", Sessions: count}, nil
}
