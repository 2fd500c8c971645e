package schedule

import (
	"net/http"
	"strings"
	"time"

	apperrors "github.com/louisbranch/tablekit/internal/platform/errors"
	"github.com/louisbranch/tablekit/internal/services/web/platform/requestmeta"
)

const (
	// TimezoneParam selects the IANA zone used for day labels.
	TimezoneParam = "tz"
	// TimezoneCookie remembers an explicit zone choice.
	TimezoneCookie = "tablekit_tz"

	timezoneCookieMaxAge = 365 * 24 * 60 * 60
)

// resolveLocation picks the zone for day labels: the tz query parameter,
// then the tz cookie, then fallback. An unknown tz parameter is an error;
// an unknown cookie is ignored.
func resolveLocation(w http.ResponseWriter, r *http.Request, fallback *time.Location) (*time.Location, error) {
	if fallback == nil {
		fallback = time.UTC
	}
	if r == nil {
		return fallback, nil
	}
	if raw := strings.TrimSpace(r.URL.Query().Get(TimezoneParam)); raw != "" {
		loc, err := loadLocation(raw)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.KindInvalidInput, "errors.schedule.timezone", "unknown time zone "+raw, err)
		}
		http.SetCookie(w, &http.Cookie{
			Name:     TimezoneCookie,
			Value:    loc.String(),
			Path:     "/",
			MaxAge:   timezoneCookieMaxAge,
			HttpOnly: true,
			Secure:   requestmeta.IsHTTPS(r),
			SameSite: http.SameSiteLaxMode,
		})
		return loc, nil
	}
	if cookie, err := r.Cookie(TimezoneCookie); err == nil {
		if loc, err := loadLocation(cookie.Value); err == nil {
			return loc, nil
		}
	}
	return fallback, nil
}

// loadLocation accepts IANA names only; "Local" would leak the host zone.
func loadLocation(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, "local") {
		return nil, apperrors.E(apperrors.KindInvalidInput, "time zone is required")
	}
	return time.LoadLocation(name)
}
