package chat

import (
	"net/http"

	"github.com/louisbranch/tablekit/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.ChatPrefix+"rooms/{roomID}", h.handlePanel)
	mux.HandleFunc(http.MethodPost+" "+routepath.ChatPrefix+"rooms/{roomID}/messages", h.handlePost)
}
