package molecules

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/louisbranch/tablekit/internal/ui/atoms"
	"github.com/louisbranch/tablekit/internal/ui/loc"
	"github.com/louisbranch/tablekit/internal/ui/markup"
)

// ChatMessageView is one rendered chat line.
type ChatMessageView struct {
	ID        string
	Author    string
	AvatarURL string
	Body      string
	SentAt    time.Time
	// Own aligns the bubble to the viewer's side.
	Own bool
}

// ChatMessage renders a chat bubble with a relative timestamp.
func ChatMessage(v ChatMessageView, now time.Time, l loc.Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		author := strings.TrimSpace(v.Author)
		if author == "" {
			author = loc.T(l, "chat.author.anonymous")
		}
		side := "chat-start"
		if v.Own {
			side = "chat-end"
		}

		m := markup.New(w)
		m.Open("div", markup.Class("chat", side), markup.Opt("id", messageDOMID(v.ID)), markup.TestID("chat-message"))
		m.Open("div", markup.A("class", "chat-image"))
		m.Component(ctx, atoms.Avatar(atoms.AvatarProps{Name: author, ImageURL: v.AvatarURL}))
		m.Close("div")
		m.Open("div", markup.A("class", "chat-header"))
		m.Element("span", author, markup.TestID("chat-author"))
		m.Raw(" ")
		m.Element("time", loc.RelTime(l, v.SentAt, now),
			markup.A("class", "text-xs opacity-50"),
			markup.A("datetime", v.SentAt.UTC().Format(time.RFC3339)),
			markup.TestID("chat-time"),
		)
		m.Close("div")
		m.Element("div", v.Body, markup.A("class", "chat-bubble"), markup.TestID("chat-body"))
		m.Close("div")
		return m.Err()
	})
}

func messageDOMID(id string) string {
	if id == "" {
		return ""
	}
	return "chat-message-" + id
}
