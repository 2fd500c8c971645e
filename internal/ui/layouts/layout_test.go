package layouts

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"github.com/louisbranch/tablekit/internal/ui/uitest"
)

type textComponent string

func (c textComponent) Render(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, string(c))
	return err
}

func renderWithChildren(t *testing.T, layout templ.Component, child templ.Component) string {
	t.Helper()
	var b strings.Builder
	if err := layout.Render(templ.WithChildren(context.Background(), child), &b); err != nil {
		t.Fatalf("render layout: %v", err)
	}
	return b.String()
}

func TestAppLayoutWrapsChildrenWithChrome(t *testing.T) {
	t.Parallel()

	got := renderWithChildren(t, AppLayout(LayoutOptions{
		Title:       "Schedule",
		Lang:        "pt-BR",
		CurrentPath: "/schedule/",
		Languages: []LanguageOption{
			{Tag: "en-US", Label: "English", URL: "?lang=en-US"},
			{Tag: "pt-BR", Label: "Português (Brasil)", URL: "?lang=pt-BR", Active: true},
		},
	}), textComponent(`<section id="fragment-root">ok</section>`))

	if !strings.HasPrefix(strings.ToLower(got), "<!doctype html>") {
		t.Fatalf("expected full document: %q", got)
	}
	for _, marker := range []string{`lang="pt-BR"`, `<title>Schedule | Tablekit</title>`, `id="fragment-root"`, `id="lucide-calendar"`} {
		if !strings.Contains(got, marker) {
			t.Fatalf("layout missing %q", marker)
		}
	}

	doc := uitest.Parse(t, got)
	if uitest.Find(doc, "app-nav") == nil {
		t.Fatal("expected navigation chrome")
	}
	if got := uitest.Attr(uitest.MustFind(t, doc, "nav-schedule"), "aria-current"); got != "page" {
		t.Fatalf("nav aria-current = %q", got)
	}
	if uitest.Find(doc, "language-switcher") == nil {
		t.Fatal("expected language switcher")
	}
}

func TestActivityLayoutOmitsNavigation(t *testing.T) {
	t.Parallel()

	got := renderWithChildren(t, ActivityLayout(LayoutOptions{Title: "Schedule"}), textComponent(`<p id="child">hi</p>`))
	doc := uitest.Parse(t, got)
	if uitest.Find(doc, "activity-layout") == nil {
		t.Fatal("expected activity body")
	}
	if uitest.Find(doc, "app-nav") != nil {
		t.Fatal("activity layout should not render navigation")
	}
	if !strings.Contains(got, `data-surface="activity"`) || !strings.Contains(got, `id="child"`) {
		t.Fatalf("activity layout output = %q", got)
	}
}

func TestMainContentIsFragment(t *testing.T) {
	t.Parallel()

	got := renderWithChildren(t, MainContent(), textComponent(`<p>fragment</p>`))
	if strings.Contains(strings.ToLower(got), "<html") {
		t.Fatalf("expected fragment without document wrapper: %q", got)
	}
	if !strings.Contains(got, `id="main-content"`) || !strings.Contains(got, "<p>fragment</p>") {
		t.Fatalf("fragment = %q", got)
	}
}
