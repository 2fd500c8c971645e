package schedule

import "net/http"

func registerRoutes(mux *http.ServeMux, prefix string, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+prefix+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+prefix+"events/{eventID}", h.handleEvent)
	mux.HandleFunc(http.MethodGet+" "+prefix+"events/{eventID}/card", h.handleCard)
	mux.HandleFunc(http.MethodPost+" "+prefix+"events/{eventID}/join", h.handleJoin)
	mux.HandleFunc(http.MethodGet+" "+prefix+"events/{eventID}/reminder.ics", h.handleReminder)
	mux.HandleFunc(http.MethodGet+" "+prefix+"{rest...}", h.handleNotFound)
}
