package organisms

import (
	"context"
	"io"
	"strconv"
	"time"

	"github.com/a-h/templ"

	"github.com/louisbranch/tablekit/internal/platform/icons"
	"github.com/louisbranch/tablekit/internal/schedule"
	"github.com/louisbranch/tablekit/internal/ui/atoms"
	"github.com/louisbranch/tablekit/internal/ui/loc"
	"github.com/louisbranch/tablekit/internal/ui/markup"
	"github.com/louisbranch/tablekit/internal/ui/molecules"
)

// DefaultRefreshEvery is the card self-refresh interval when RefreshURL is set.
const DefaultRefreshEvery = time.Minute

// EventCardProps is the display data and hooks for one scheduled session.
type EventCardProps struct {
	ID          string
	Title       string
	System      string
	Description string
	CoverURL    string
	Summary     schedule.Summary
	// Timezone is a display string only; the summary already carries the
	// location used for day labels.
	Timezone     string
	SeatsTaken   int
	SeatCapacity int
	Recurring    bool

	// Loading dims the card and removes every interaction hook.
	Loading bool

	// OnClick opens the session.
	OnClick string
	// OnJoin is posted by the Join Now action while the session is live.
	OnJoin string
	// OnRemind is the Set Reminder download for sessions not yet live.
	OnRemind string

	// RefreshURL re-renders the card in place every RefreshEvery.
	RefreshURL   string
	RefreshEvery time.Duration

	Localizer loc.Localizer
}

// CardAction is the primary action a card offers.
type CardAction int

const (
	ActionNone CardAction = iota
	ActionJoin
	ActionRemind
)

// PrimaryAction selects the card action for a summary: remind before the
// start, join while live. A started point-in-time event has no window to
// join and nothing left to remind about.
func PrimaryAction(s schedule.Summary) CardAction {
	switch s.Phase {
	case schedule.PhaseUpcoming:
		return ActionRemind
	case schedule.PhaseLive:
		return ActionJoin
	default:
		return ActionNone
	}
}

// CardDOMID is the element id of the card for id.
func CardDOMID(id string) string {
	return "event-card-" + id
}

// EventCard renders a scheduled session card.
func EventCard(p EventCardProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		l := p.Localizer
		live := p.Summary.Live()
		interactive := !p.Loading

		attrs := []markup.Attr{
			markup.Opt("id", cardID(p.ID)),
			markup.Class("card", "bg-base-200", "shadow-sm", "transition-opacity",
				templ.KV("ring-2 ring-success", live),
				templ.KV("opacity-60 pointer-events-none", p.Loading),
			),
			markup.A("data-phase", p.Summary.Phase.String()),
			markup.Opt("aria-busy", busy(p.Loading)),
			markup.TestID("event-card"),
		}
		if interactive && p.RefreshURL != "" {
			attrs = append(attrs,
				markup.URL("hx-get", p.RefreshURL),
				markup.A("hx-trigger", "every "+refreshSeconds(p.RefreshEvery)),
				markup.A("hx-swap", "outerHTML"),
			)
		}

		m := markup.New(w)
		m.Open("article", attrs...)
		if p.CoverURL != "" {
			m.Open("figure", markup.A("class", "h-32 overflow-hidden"))
			m.Void("img", markup.URL("src", p.CoverURL), markup.A("alt", ""), markup.A("class", "w-full object-cover"), markup.TestID("event-cover"))
			m.Close("figure")
		}
		m.Open("div", markup.A("class", "card-body gap-3"))

		m.Open("div", markup.A("class", "flex items-start justify-between gap-2"))
		m.Open("h3", markup.A("class", "card-title text-base"))
		if interactive && p.OnClick != "" {
			m.Element("a", p.Title, markup.URL("href", p.OnClick), markup.A("class", "link link-hover"), markup.TestID("event-title"))
		} else {
			m.Element("span", p.Title, markup.TestID("event-title"))
		}
		m.Close("h3")
		m.Component(ctx, molecules.CountdownBadge(p.Summary, l))
		m.Close("div")

		if p.System != "" || p.Recurring {
			m.Open("div", markup.A("class", "flex flex-wrap gap-1"))
			if p.System != "" {
				m.Component(ctx, atoms.Badge(atoms.BadgeProps{Label: p.System, Variant: atoms.VariantGhost, Icon: icons.IDRoll, TestID: "event-system"}))
			}
			if p.Recurring {
				m.Component(ctx, atoms.Badge(atoms.BadgeProps{Label: loc.T(l, "schedule.recurring"), Variant: atoms.VariantGhost, TestID: "event-recurring"}))
			}
			m.Close("div")
		}
		if p.Description != "" {
			m.Element("p", p.Description, markup.A("class", "text-sm opacity-80"), markup.TestID("event-description"))
		}

		m.Component(ctx, molecules.DateChip(p.Summary, l, p.Timezone))
		if p.SeatCapacity > 0 || p.SeatsTaken > 0 {
			m.Component(ctx, molecules.SeatCount(p.SeatsTaken, p.SeatCapacity, l))
		}

		m.Open("div", markup.A("class", "card-actions items-center justify-end"), markup.TestID("event-actions"))
		if p.Loading {
			m.Component(ctx, atoms.Loading(loc.T(l, "core.loading")))
		}
		switch PrimaryAction(p.Summary) {
		case ActionJoin:
			m.Component(ctx, atoms.Button(atoms.ButtonProps{
				Label:    loc.T(l, "schedule.action.join"),
				Variant:  atoms.VariantSuccess,
				Size:     atoms.SizeSmall,
				Icon:     icons.IDJoin,
				HXPost:   p.OnJoin,
				Disabled: p.Loading || p.OnJoin == "",
				TestID:   "event-join",
			}))
		case ActionRemind:
			m.Component(ctx, atoms.Button(atoms.ButtonProps{
				Label:    loc.T(l, "schedule.action.remind"),
				Variant:  atoms.VariantNeutral,
				Size:     atoms.SizeSmall,
				Icon:     icons.IDReminder,
				Href:     p.OnRemind,
				Download: true,
				Disabled: p.Loading || p.OnRemind == "",
				TestID:   "event-remind",
			}))
		}
		m.Close("div")

		m.Close("div")
		m.Close("article")
		return m.Err()
	})
}

func cardID(id string) string {
	if id == "" {
		return ""
	}
	return CardDOMID(id)
}

func busy(loading bool) string {
	if loading {
		return "true"
	}
	return ""
}

func refreshSeconds(every time.Duration) string {
	if every < time.Second {
		every = DefaultRefreshEvery
	}
	return strconv.Itoa(int(every/time.Second)) + "s"
}
