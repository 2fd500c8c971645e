// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/louisbranch/tablekit/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/tablekit/internal/services/web/platform/i18n"
	"github.com/louisbranch/tablekit/internal/services/web/routepath"
	"github.com/louisbranch/tablekit/internal/ui/layouts"
	"github.com/louisbranch/tablekit/internal/ui/loc"
)

const tracerName = "github.com/louisbranch/tablekit/internal/services/web/platform/pagerender"

// Surface selects the document shell.
type Surface int

const (
	// SurfaceApp is the full web app with navigation.
	SurfaceApp Surface = iota
	// SurfaceActivity is the embedded activity frame.
	SurfaceActivity
)

// ModulePage describes a module page response for both full-page and HTMX flows.
type ModulePage struct {
	Title      string
	StatusCode int
	Surface    Surface
	// HomeURL overrides the brand and schedule nav target.
	HomeURL  string
	Fragment templ.Component
	// Loc and Lang come from Localizer; they are resolved when Loc is nil.
	Loc  loc.Localizer
	Lang string
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WriteModulePage writes a module page using shared shell rendering contracts.
// HTMX requests that are not boosted navigations receive only the main
// content fragment.
func WriteModulePage(w http.ResponseWriter, r *http.Request, page ModulePage) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = emptyComponent{}
	}

	ctx, span := otel.Tracer(tracerName).Start(httpx.RequestContext(r), "pagerender.WriteModulePage",
		trace.WithAttributes(
			attribute.Int("http.status_code", statusCode),
			attribute.Bool("htmx.fragment", isFragmentRequest(r)),
		),
	)
	defer span.End()

	l, lang := page.Loc, page.Lang
	if l == nil {
		l, lang = webi18n.ResolveLocalizer(w, r)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Add("Vary", "HX-Request")
	w.WriteHeader(statusCode)

	ctx = templ.WithChildren(ctx, fragment)
	var err error
	if isFragmentRequest(r) {
		err = layouts.MainContent().Render(ctx, w)
	} else {
		err = shell(r, page, l, lang).Render(ctx, w)
	}
	if err != nil {
		span.RecordError(err)
	}
	return err
}

// WriteFragment writes c alone, for HTMX swaps that replace a single
// component rather than the main content.
func WriteFragment(w http.ResponseWriter, r *http.Request, statusCode int, c templ.Component) error {
	if w == nil || c == nil {
		return nil
	}
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	ctx, span := otel.Tracer(tracerName).Start(httpx.RequestContext(r), "pagerender.WriteFragment",
		trace.WithAttributes(attribute.Int("http.status_code", statusCode)),
	)
	defer span.End()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	err := c.Render(ctx, w)
	if err != nil {
		span.RecordError(err)
	}
	return err
}

// Localizer resolves the request localizer and language tag. It may set the
// language cookie, so call it before writing the response.
func Localizer(w http.ResponseWriter, r *http.Request) (loc.Localizer, string) {
	return webi18n.ResolveLocalizer(w, r)
}

func shell(r *http.Request, page ModulePage, l loc.Localizer, lang string) templ.Component {
	opts := layouts.LayoutOptions{
		Title:        page.Title,
		Lang:         lang,
		Loc:          l,
		StaticPrefix: routepath.Static,
		HomeURL:      page.HomeURL,
		Languages:    webi18n.LanguageOptions(r, l, lang),
	}
	if r != nil && r.URL != nil {
		opts.CurrentPath = r.URL.Path
	}
	if page.Surface == SurfaceActivity {
		return layouts.ActivityLayout(opts)
	}
	return layouts.AppLayout(opts)
}

func isFragmentRequest(r *http.Request) bool {
	return httpx.IsHTMXRequest(r) && !httpx.IsBoostedRequest(r)
}
