// Package pages composes organisms into full page fragments. Layouts wrap
// them for full-document responses.
package pages

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/louisbranch/tablekit/internal/ui/atoms"
	"github.com/louisbranch/tablekit/internal/ui/loc"
	"github.com/louisbranch/tablekit/internal/ui/markup"
	"github.com/louisbranch/tablekit/internal/ui/organisms"
)

// SchedulePageView lists sessions grouped by phase.
type SchedulePageView struct {
	Live     []organisms.EventCardProps
	Upcoming []organisms.EventCardProps
	Ended    []organisms.EventCardProps
	// Timezone names the location used for day labels.
	Timezone string
	Loc      loc.Localizer
}

// SchedulePage renders live sessions first, then upcoming, then recently ended.
func SchedulePage(v SchedulePageView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := markup.New(w)
		m.Open("div", markup.A("class", "flex flex-col gap-6"), markup.TestID("schedule-page"))
		m.Open("div", markup.A("class", "flex items-baseline justify-between"))
		m.Element("h1", loc.T(v.Loc, "schedule.title"), markup.A("class", "text-2xl font-bold"))
		if v.Timezone != "" {
			m.Element("span", loc.T(v.Loc, "schedule.timezone", v.Timezone), markup.A("class", "text-sm opacity-70"), markup.TestID("schedule-timezone"))
		}
		m.Close("div")

		if len(v.Live) > 0 {
			m.Component(ctx, organisms.EventList(organisms.EventListProps{
				Heading: loc.T(v.Loc, "schedule.section.live"),
				Cards:   v.Live,
				TestID:  "schedule-live",
			}))
		}
		m.Component(ctx, organisms.EventList(organisms.EventListProps{
			Heading: loc.T(v.Loc, "schedule.section.upcoming"),
			Empty:   loc.T(v.Loc, "schedule.empty"),
			Cards:   v.Upcoming,
			TestID:  "schedule-upcoming",
		}))
		if len(v.Ended) > 0 {
			m.Component(ctx, organisms.EventList(organisms.EventListProps{
				Heading: loc.T(v.Loc, "schedule.section.ended"),
				Cards:   v.Ended,
				TestID:  "schedule-ended",
			}))
		}
		m.Close("div")
		return m.Err()
	})
}

// EventPageView is one session with its table chat.
type EventPageView struct {
	Card organisms.EventCardProps
	Chat organisms.ChatPanelProps
	// BackURL returns to the schedule.
	BackURL string
	Loc     loc.Localizer
}

// EventPage renders the session card beside its chat panel.
func EventPage(v EventPageView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := markup.New(w)
		m.Open("div", markup.A("class", "grid gap-6 lg:grid-cols-2"), markup.TestID("event-page"))
		m.Open("div", markup.A("class", "flex flex-col gap-3"))
		if v.BackURL != "" {
			m.Element("a", loc.T(v.Loc, "schedule.title"), markup.URL("href", v.BackURL), markup.A("class", "link text-sm"), markup.TestID("event-back"))
		}
		m.Component(ctx, organisms.EventCard(v.Card))
		m.Close("div")
		m.Component(ctx, organisms.ChatPanel(v.Chat))
		m.Close("div")
		return m.Err()
	})
}

// ErrorPageView is a status page with an already localized message.
type ErrorPageView struct {
	Status  int
	Message string
	BackURL string
	Loc     loc.Localizer
}

// ErrorPage renders an error status message with a way back.
func ErrorPage(v ErrorPageView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := markup.New(w)
		m.Open("section", markup.A("class", "hero min-h-64"), markup.TestID("error-page"))
		m.Open("div", markup.A("class", "hero-content flex-col text-center"))
		if v.Status > 0 {
			m.Element("p", strconv.Itoa(v.Status), markup.A("class", "text-5xl font-bold"), markup.TestID("error-status"))
		}
		m.Element("h1", loc.T(v.Loc, "errors.title"), markup.A("class", "text-xl"))
		if v.Message != "" {
			m.Element("p", v.Message, markup.TestID("error-message"))
		}
		if v.BackURL != "" {
			m.Component(ctx, atoms.Button(atoms.ButtonProps{
				Label:   loc.T(v.Loc, "errors.back"),
				Variant: atoms.VariantPrimary,
				Href:    v.BackURL,
				TestID:  "error-back",
			}))
		}
		m.Close("div")
		m.Close("section")
		return m.Err()
	})
}
