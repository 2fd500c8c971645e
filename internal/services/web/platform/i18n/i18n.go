// Package i18n resolves the request language for web handlers.
package i18n

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"

	platformi18n "github.com/louisbranch/tablekit/internal/platform/i18n"
	"github.com/louisbranch/tablekit/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/tablekit/internal/services/web/routepath"
	"github.com/louisbranch/tablekit/internal/ui/layouts"
	"github.com/louisbranch/tablekit/internal/ui/loc"
)

const (
	// LangParam is the query parameter that switches language.
	LangParam = "lang"
	// LangCookie remembers an explicit language choice.
	LangCookie = "tablekit_lang"

	cookieMaxAge = 365 * 24 * 60 * 60
)

// ResolveTag picks the request language from the lang query parameter, then
// the language cookie, then Accept-Language.
func ResolveTag(r *http.Request) language.Tag {
	if r == nil {
		return platformi18n.DefaultTag()
	}
	if tag, ok := queryTag(r); ok {
		return tag
	}
	if cookie, err := r.Cookie(LangCookie); err == nil {
		if tag, ok := platformi18n.ParseTag(cookie.Value); ok {
			return tag
		}
	}
	if header := strings.TrimSpace(r.Header.Get("Accept-Language")); header != "" {
		tags, _, err := language.ParseAcceptLanguage(header)
		if err == nil && len(tags) > 0 {
			return platformi18n.MatchTags(tags)
		}
	}
	return platformi18n.DefaultTag()
}

// SetLanguageCookie persists tag for later requests.
func SetLanguageCookie(w http.ResponseWriter, r *http.Request, tag language.Tag) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookie,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   cookieMaxAge,
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPS(r),
		SameSite: http.SameSiteLaxMode,
	})
}

// ResolveLocalizer returns a printer for the request language and its tag. An
// explicit lang query parameter is remembered in a cookie.
func ResolveLocalizer(w http.ResponseWriter, r *http.Request) (loc.Localizer, string) {
	tag := ResolveTag(r)
	if _, ok := queryTag(r); ok {
		SetLanguageCookie(w, r, tag)
	}
	return loc.Printer(tag), tag.String()
}

// LanguageOptions lists the supported languages as switcher links back to
// the current page.
func LanguageOptions(r *http.Request, l loc.Localizer, current string) []layouts.LanguageOption {
	path := routepath.Root
	if r != nil && r.URL != nil {
		path = r.URL.RequestURI()
	}
	tags := platformi18n.SupportedTags()
	options := make([]layouts.LanguageOption, 0, len(tags))
	for _, tag := range tags {
		value := tag.String()
		options = append(options, layouts.LanguageOption{
			Tag:    value,
			Label:  loc.T(l, "core.language."+value),
			URL:    routepath.WithQuery(path, LangParam, value),
			Active: value == current,
		})
	}
	return options
}

func queryTag(r *http.Request) (language.Tag, bool) {
	if r == nil || r.URL == nil {
		return language.Tag{}, false
	}
	return platformi18n.ParseTag(r.URL.Query().Get(LangParam))
}
