// Package weberror renders shared error responses for web modules.
package weberror

import (
	"log"
	"net/http"
	"strings"

	apperrors "github.com/louisbranch/tablekit/internal/platform/errors"
	"github.com/louisbranch/tablekit/internal/services/web/platform/httpx"
	"github.com/louisbranch/tablekit/internal/services/web/platform/pagerender"
	"github.com/louisbranch/tablekit/internal/ui/layouts"
	"github.com/louisbranch/tablekit/internal/ui/loc"
	"github.com/louisbranch/tablekit/internal/ui/pages"
)

var statusKeys = map[int]string{
	http.StatusBadRequest:          "errors.bad_request",
	http.StatusNotFound:            "errors.not_found",
	http.StatusConflict:            "errors.conflict",
	http.StatusServiceUnavailable:  "errors.unavailable",
	http.StatusInternalServerError: "errors.internal",
}

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(l loc.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if key := apperrors.LocalizationKey(err); key != "" {
		if localized := strings.TrimSpace(loc.T(l, key)); localized != "" {
			return localized
		}
	}
	return StatusMessage(l, publicStatus(err))
}

// StatusMessage is the generic localized message for an HTTP status.
func StatusMessage(l loc.Localizer, statusCode int) string {
	if key, ok := statusKeys[statusCode]; ok {
		return loc.T(l, key)
	}
	if text := strings.TrimSpace(http.StatusText(statusCode)); text != "" {
		return text
	}
	return loc.T(l, "errors.internal")
}

// WriteModuleError writes a localized error page for err. HTMX requests are
// retargeted at the main content so the page replaces the swapped fragment.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error, page pagerender.ModulePage) {
	if w == nil {
		return
	}
	statusCode := publicStatus(err)
	l, lang := page.Loc, page.Lang
	if l == nil {
		l, lang = pagerender.Localizer(w, r)
	}
	backURL := page.HomeURL
	if backURL == "" {
		backURL = "/schedule/"
	}

	page.StatusCode = statusCode
	page.Loc = l
	page.Lang = lang
	page.Title = loc.T(l, "errors.title")
	page.Fragment = pages.ErrorPage(pages.ErrorPageView{
		Status:  statusCode,
		Message: PublicMessage(l, err),
		BackURL: backURL,
		Loc:     l,
	})
	if httpx.IsHTMXRequest(r) {
		w.Header().Set("HX-Retarget", "#"+layouts.MainID)
		w.Header().Set("HX-Reswap", "innerHTML")
	}
	if renderErr := pagerender.WriteModulePage(w, r, page); renderErr != nil {
		log.Printf("render error page status=%d request_id=%s err=%v", statusCode, httpx.RequestIDFrom(r), renderErr)
	}
}

func publicStatus(err error) int {
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		return http.StatusInternalServerError
	}
	return statusCode
}
