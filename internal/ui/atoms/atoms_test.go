package atoms

import (
	"strings"
	"testing"

	"github.com/louisbranch/tablekit/internal/platform/icons"
	"github.com/louisbranch/tablekit/internal/ui/uitest"
)

func TestButtonRendersLinkWhenHrefSet(t *testing.T) {
	t.Parallel()

	doc := uitest.Render(t, Button(ButtonProps{
		Label:   "Set Reminder",
		Href:    "/schedule/events/abc/reminder.ics",
		Icon:    icons.IDReminder,
		TestID:  "remind",
		Variant: VariantNeutral,
	}))
	btn := uitest.MustFind(t, doc, "remind")
	if btn.Data != "a" {
		t.Fatalf("element = %s, want a", btn.Data)
	}
	if got := uitest.Attr(btn, "href"); got != "/schedule/events/abc/reminder.ics" {
		t.Fatalf("href = %q", got)
	}
	if !uitest.HasClass(btn, "btn-neutral") {
		t.Fatalf("class = %q", uitest.Attr(btn, "class"))
	}
	if got := uitest.Text(btn); got != "Set Reminder" {
		t.Fatalf("text = %q", got)
	}
}

func TestButtonRendersHTMXPost(t *testing.T) {
	t.Parallel()

	doc := uitest.Render(t, Button(ButtonProps{
		Label:   "Join Now",
		HXPost:  "/schedule/events/abc/join",
		Variant: VariantSuccess,
		TestID:  "join",
	}))
	btn := uitest.MustFind(t, doc, "join")
	if btn.Data != "button" {
		t.Fatalf("element = %s, want button", btn.Data)
	}
	if got := uitest.Attr(btn, "hx-post"); got != "/schedule/events/abc/join" {
		t.Fatalf("hx-post = %q", got)
	}
	if !uitest.HasClass(btn, "btn-success") {
		t.Fatalf("class = %q", uitest.Attr(btn, "class"))
	}
}

func TestDisabledButtonDropsHooks(t *testing.T) {
	t.Parallel()

	for _, props := range []ButtonProps{
		{Label: "Join Now", HXPost: "/join", Disabled: true, TestID: "action"},
		{Label: "Open", Href: "/open", Disabled: true, TestID: "action"},
	} {
		doc := uitest.Render(t, Button(props))
		btn := uitest.MustFind(t, doc, "action")
		if btn.Data != "button" {
			t.Fatalf("element = %s, want button", btn.Data)
		}
		if _, ok := uitest.LookupAttr(btn, "disabled"); !ok {
			t.Fatal("expected disabled attribute")
		}
		if uitest.AnyAttr(btn, "href", "hx-post", "hx-get") {
			t.Fatal("disabled button kept an interaction hook")
		}
	}
}

func TestBadgeVariantFallsBackToNeutral(t *testing.T) {
	t.Parallel()

	doc := uitest.Render(t, Badge(BadgeProps{Label: "In 5m", Variant: Variant("shiny"), TestID: "badge"}))
	badge := uitest.MustFind(t, doc, "badge")
	if !uitest.HasClass(badge, "badge-neutral") {
		t.Fatalf("class = %q", uitest.Attr(badge, "class"))
	}
	if got := uitest.Text(badge); got != "In 5m" {
		t.Fatalf("text = %q", got)
	}
}

func TestIconReferencesSprite(t *testing.T) {
	t.Parallel()

	got := uitest.RenderString(t, Icon(IconProps{ID: icons.IDChat}))
	if !strings.Contains(got, `href="#lucide-message-circle"`) {
		t.Fatalf("icon markup = %q", got)
	}
	if !strings.Contains(got, `aria-hidden="true"`) {
		t.Fatalf("decorative icon should be hidden: %q", got)
	}

	labelled := uitest.RenderString(t, Icon(IconProps{ID: icons.IDLive, Label: "Live"}))
	if !strings.Contains(labelled, `aria-label="Live"`) {
		t.Fatalf("labelled icon markup = %q", labelled)
	}
}

func TestLoadingRendersRingOnly(t *testing.T) {
	t.Parallel()

	got := uitest.RenderString(t, Loading(""))
	if !strings.Contains(got, `class="loading loading-ring loading-md"`) {
		t.Fatalf("Loading output missing loading ring classes: %q", got)
	}
	if strings.Contains(got, "sr-only") {
		t.Fatalf("Loading output should not include message: %q", got)
	}

	labelled := uitest.RenderString(t, Loading("Loading…"))
	if !strings.Contains(labelled, `<span class="sr-only">Loading…</span>`) {
		t.Fatalf("Loading output should include sr-only message: %q", labelled)
	}
}

func TestAvatar(t *testing.T) {
	t.Parallel()

	doc := uitest.Render(t, Avatar(AvatarProps{Name: "ada lovelace", TestID: "avatar"}))
	if got := uitest.Text(uitest.MustFind(t, doc, "avatar")); got != "AL" {
		t.Fatalf("initials = %q", got)
	}

	doc = uitest.Render(t, Avatar(AvatarProps{Name: "Ada", ImageURL: "https://cdn.example/ada.png", TestID: "avatar"}))
	if !strings.Contains(uitest.RenderString(t, Avatar(AvatarProps{Name: "Ada", ImageURL: "https://cdn.example/ada.png"})), `src="https://cdn.example/ada.png"`) {
		t.Fatal("expected image avatar")
	}
	if uitest.Find(doc, "avatar") == nil {
		t.Fatal("expected avatar test id on image avatar")
	}
}

func TestInitials(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"":                "?",
		"  ":              "?",
		"gm":              "G",
		"Ana Clara Souza": "AC",
		"élodie roux":     "ÉR",
	}
	for name, want := range tests {
		if got := Initials(name); got != want {
			t.Errorf("Initials(%q) = %q, want %q", name, got, want)
		}
	}
}
