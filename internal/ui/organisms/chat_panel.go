package organisms

import (
	"context"
	"io"
	"strconv"
	"time"

	"github.com/a-h/templ"

	"github.com/louisbranch/tablekit/internal/platform/icons"
	"github.com/louisbranch/tablekit/internal/ui/atoms"
	"github.com/louisbranch/tablekit/internal/ui/loc"
	"github.com/louisbranch/tablekit/internal/ui/markup"
	"github.com/louisbranch/tablekit/internal/ui/molecules"
)

// ChatPanelProps is a room's message history and composer.
type ChatPanelProps struct {
	RoomID   string
	Messages []molecules.ChatMessageView
	Now      time.Time
	// PostURL receives the composer form; the response replaces the panel.
	PostURL    string
	RefreshURL string
	MaxLength  int
	Disabled   bool
	// Error is an already localized message shown above the composer.
	Error     string
	Localizer loc.Localizer
}

// ChatPanelDOMID is the element id of the panel for room.
func ChatPanelDOMID(room string) string {
	return "chat-panel-" + room
}

// ChatPanel renders the chat history and composer.
func ChatPanel(p ChatPanelProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		l := p.Localizer
		panelID := ChatPanelDOMID(p.RoomID)

		attrs := []markup.Attr{
			markup.A("id", panelID),
			markup.A("class", "card bg-base-200 shadow-sm"),
			markup.TestID("chat-panel"),
		}
		if p.RefreshURL != "" && !p.Disabled {
			attrs = append(attrs,
				markup.URL("hx-get", p.RefreshURL),
				markup.A("hx-trigger", "every 10s"),
				markup.A("hx-swap", "outerHTML"),
			)
		}

		m := markup.New(w)
		m.Open("section", attrs...)
		m.Open("div", markup.A("class", "card-body gap-3"))
		m.Open("h2", markup.A("class", "card-title text-base"))
		m.Component(ctx, atoms.Icon(atoms.IconProps{ID: icons.IDChat}))
		m.Text(loc.T(l, "chat.title"))
		m.Close("h2")

		m.Open("div", markup.A("class", "flex max-h-96 flex-col overflow-y-auto"), markup.A("aria-live", "polite"), markup.TestID("chat-messages"))
		if len(p.Messages) == 0 {
			m.Element("p", loc.T(l, "chat.empty"), markup.A("class", "opacity-70"), markup.TestID("chat-empty"))
		}
		for _, message := range p.Messages {
			m.Component(ctx, molecules.ChatMessage(message, p.Now, l))
		}
		m.Close("div")

		if p.Error != "" {
			m.Element("div", p.Error, markup.A("role", "alert"), markup.A("class", "alert alert-error text-sm"), markup.TestID("chat-error"))
		}

		formAttrs := []markup.Attr{markup.A("class", "join w-full"), markup.TestID("chat-form")}
		if !p.Disabled && p.PostURL != "" {
			formAttrs = append(formAttrs,
				markup.URL("action", p.PostURL),
				markup.A("method", "post"),
				markup.URL("hx-post", p.PostURL),
				markup.A("hx-target", "#"+panelID),
				markup.A("hx-swap", "outerHTML"),
			)
		}
		m.Open("form", formAttrs...)
		inputAttrs := []markup.Attr{
			markup.A("type", "text"),
			markup.A("name", "body"),
			markup.A("class", "input join-item w-full"),
			markup.A("placeholder", loc.T(l, "chat.placeholder")),
			markup.A("autocomplete", "off"),
			markup.Bool("required", true),
			markup.Bool("disabled", p.Disabled),
			markup.TestID("chat-input"),
		}
		if p.MaxLength > 0 {
			inputAttrs = append(inputAttrs, markup.A("maxlength", strconv.Itoa(p.MaxLength)))
		}
		m.Void("input", inputAttrs...)
		m.Open("button",
			markup.A("type", "submit"),
			markup.A("class", "btn btn-primary join-item"),
			markup.Bool("disabled", p.Disabled),
			markup.TestID("chat-send"),
		)
		m.Component(ctx, atoms.Icon(atoms.IconProps{ID: icons.IDSend}))
		m.Element("span", loc.T(l, "chat.send"), markup.A("class", "sr-only sm:not-sr-only"))
		m.Close("button")
		m.Close("form")

		m.Close("div")
		m.Close("section")
		return m.Err()
	})
}
