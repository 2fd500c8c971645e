package molecules

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/louisbranch/tablekit/internal/platform/icons"
	"github.com/louisbranch/tablekit/internal/ui/atoms"
	"github.com/louisbranch/tablekit/internal/ui/loc"
	"github.com/louisbranch/tablekit/internal/ui/markup"
)

// SeatCount renders taken seats against capacity. A zero capacity means the
// table is uncapped and only the taken count is shown.
func SeatCount(taken, capacity int, l loc.Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := markup.New(w)
		m.Open("div", markup.A("class", "flex items-center gap-2 text-sm"), markup.TestID("event-seats"))
		m.Component(ctx, atoms.Icon(atoms.IconProps{ID: icons.IDSeats}))
		m.Element("span", seatLabel(taken, capacity, l))
		m.Close("div")
		return m.Err()
	})
}

func seatLabel(taken, capacity int, l loc.Localizer) string {
	if taken < 0 {
		taken = 0
	}
	switch {
	case capacity <= 0:
		return loc.T(l, "schedule.seats.count", loc.Count(taken))
	case taken >= capacity:
		return loc.T(l, "schedule.seats.full")
	default:
		return loc.T(l, "schedule.seats.taken", loc.Count(taken), loc.Count(capacity))
	}
}
