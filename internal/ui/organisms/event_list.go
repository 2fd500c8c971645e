package organisms

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/louisbranch/tablekit/internal/ui/markup"
)

// EventListProps is a titled grid of event cards.
type EventListProps struct {
	Heading string
	Empty   string
	Cards   []EventCardProps
	TestID  string
}

// EventList renders the cards, or the empty message when there are none.
func EventList(p EventListProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := markup.New(w)
		m.Open("section", markup.A("class", "flex flex-col gap-3"), markup.TestID(p.TestID))
		if p.Heading != "" {
			m.Element("h2", p.Heading, markup.A("class", "text-lg font-semibold"))
		}
		if len(p.Cards) == 0 {
			m.Element("p", p.Empty, markup.A("class", "opacity-70"), markup.TestID("event-list-empty"))
		} else {
			m.Open("div", markup.A("class", "grid gap-4 sm:grid-cols-2 xl:grid-cols-3"))
			for _, card := range p.Cards {
				m.Component(ctx, EventCard(card))
			}
			m.Close("div")
		}
		m.Close("section")
		return m.Err()
	})
}
