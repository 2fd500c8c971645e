// Package layouts provides the document shells for the web and embedded
// activity surfaces plus the HTMX fragment wrapper.
package layouts

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/louisbranch/tablekit/internal/platform/branding"
	"github.com/louisbranch/tablekit/internal/ui/atoms"
	"github.com/louisbranch/tablekit/internal/ui/loc"
	"github.com/louisbranch/tablekit/internal/ui/markup"
)

const htmxScriptURL = "https://unpkg.com/htmx.org@2.0.4"

// MainID is the element id swapped by HTMX navigation.
const MainID = "main"

// LanguageOption is one entry of the language switcher.
type LanguageOption struct {
	Tag    string
	Label  string
	URL    string
	Active bool
}

// LayoutOptions configures a document shell.
type LayoutOptions struct {
	Title       string
	Lang        string
	Loc         loc.Localizer
	CurrentPath string
	// StaticPrefix is where embedded css/js are served, "/static/" by default.
	StaticPrefix string
	Languages    []LanguageOption
	// HomeURL is the target of the brand link and the schedule nav entry.
	HomeURL string
}

// AppLayout renders a full document with navigation chrome around the
// context children.
func AppLayout(opts LayoutOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		children := templ.GetChildren(ctx)
		ctx = templ.ClearChildren(ctx)

		m := markup.New(w)
		writeHead(m, opts, "app")
		m.Open("body", markup.A("class", "min-h-screen bg-base-100"), markup.TestID("app-layout"))
		m.Component(ctx, atoms.Sprite())
		m.Element("a", loc.T(opts.Loc, "core.nav.skip"), markup.A("href", "#"+MainID), markup.A("class", "sr-only focus:not-sr-only"))

		m.Open("header", markup.A("class", "navbar bg-base-200 px-4"), markup.TestID("app-nav"))
		m.Open("div", markup.A("class", "flex-1 gap-4"))
		m.Element("a", branding.AppName, markup.URL("href", homeURL(opts)), markup.A("class", "text-lg font-bold"), markup.TestID("app-brand"))
		m.Element("a", loc.T(opts.Loc, "core.nav.schedule"),
			markup.URL("href", homeURL(opts)),
			markup.A("hx-boost", "true"),
			markup.Opt("aria-current", current(opts.CurrentPath == homeURL(opts))),
			markup.A("class", "link link-hover"),
			markup.TestID("nav-schedule"),
		)
		m.Close("div")
		writeLanguages(m, opts.Languages)
		m.Close("header")

		m.Open("main", markup.A("id", MainID), markup.A("class", "container mx-auto max-w-6xl p-4"))
		m.Component(templ.WithChildren(ctx, children), MainContent())
		m.Close("main")
		m.Close("body")
		m.Close("html")
		return m.Err()
	})
}

// ActivityLayout renders a compact document for the embedded activity
// surface: no navigation chrome, tighter spacing.
func ActivityLayout(opts LayoutOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		children := templ.GetChildren(ctx)
		ctx = templ.ClearChildren(ctx)

		m := markup.New(w)
		writeHead(m, opts, "activity")
		m.Open("body", markup.A("class", "bg-base-100"), markup.TestID("activity-layout"))
		m.Component(ctx, atoms.Sprite())
		m.Open("main", markup.A("id", MainID), markup.A("class", "p-2"))
		m.Component(templ.WithChildren(ctx, children), MainContent())
		m.Close("main")
		m.Close("body")
		m.Close("html")
		return m.Err()
	})
}

// MainContent wraps the context children as the swappable page fragment.
func MainContent() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		children := templ.GetChildren(ctx)
		ctx = templ.ClearChildren(ctx)

		m := markup.New(w)
		m.Open("div", markup.A("id", "main-content"), markup.A("class", "flex flex-col gap-6"), markup.TestID("main-content"))
		m.Component(ctx, children)
		m.Close("div")
		return m.Err()
	})
}

func writeHead(m *markup.Writer, opts LayoutOptions, surface string) {
	lang := opts.Lang
	if lang == "" {
		lang = "en-US"
	}
	prefix := opts.StaticPrefix
	if prefix == "" {
		prefix = "/static/"
	}

	m.Raw("<!DOCTYPE html>")
	m.Open("html", markup.A("lang", lang), markup.A("data-theme", "dark"), markup.A("data-surface", surface))
	m.Open("head")
	m.Void("meta", markup.A("charset", "utf-8"))
	m.Void("meta", markup.A("name", "viewport"), markup.A("content", "width=device-width, initial-scale=1"))
	m.Element("title", branding.PageTitle(opts.Title))
	m.Void("link", markup.A("rel", "stylesheet"), markup.URL("href", prefix+"app.css"))
	m.Open("script", markup.URL("src", htmxScriptURL), markup.Bool("defer", true))
	m.Close("script")
	m.Open("script", markup.URL("src", prefix+"app.js"), markup.Bool("defer", true))
	m.Close("script")
	m.Close("head")
}

func writeLanguages(m *markup.Writer, options []LanguageOption) {
	if len(options) == 0 {
		return
	}
	m.Open("ul", markup.A("class", "menu menu-horizontal gap-1"), markup.TestID("language-switcher"))
	for _, option := range options {
		m.Open("li")
		m.Element("a", option.Label,
			markup.URL("href", option.URL),
			markup.A("hreflang", option.Tag),
			markup.Class(templ.KV("menu-active", option.Active)),
			markup.Opt("aria-current", current(option.Active)),
		)
		m.Close("li")
	}
	m.Close("ul")
}

func homeURL(opts LayoutOptions) string {
	if opts.HomeURL != "" {
		return opts.HomeURL
	}
	return "/schedule/"
}

func current(active bool) string {
	if active {
		return "page"
	}
	return ""
}
