// Package molecules combines atoms into schedule-aware display pieces.
package molecules

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/louisbranch/tablekit/internal/platform/icons"
	"github.com/louisbranch/tablekit/internal/schedule"
	"github.com/louisbranch/tablekit/internal/ui/atoms"
	"github.com/louisbranch/tablekit/internal/ui/loc"
	"github.com/louisbranch/tablekit/internal/ui/markup"
)

// CountdownBadge renders the countdown label, or the live badge when the
// summary is live.
func CountdownBadge(s schedule.Summary, l loc.Localizer) templ.Component {
	props := atoms.BadgeProps{
		Label:   loc.Countdown(l, s.Countdown),
		Variant: atoms.VariantNeutral,
		Icon:    icons.IDClock,
		TestID:  "event-countdown",
	}
	switch s.Phase {
	case schedule.PhaseLive:
		props.Variant = atoms.VariantSuccess
		props.Icon = icons.IDLive
	case schedule.PhaseEnded:
		props.Label = loc.T(l, "schedule.action.ended")
		props.Variant = atoms.VariantGhost
	}
	return atoms.Badge(props)
}

// DateChip renders the date label, the local start time and an optional
// free-form timezone display string.
func DateChip(s schedule.Summary, l loc.Localizer, timezone string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := markup.New(w)
		m.Open("div", markup.A("class", "flex items-center gap-2 text-sm opacity-80"), markup.TestID("event-date"))
		m.Component(ctx, atoms.Icon(atoms.IconProps{ID: icons.IDCalendar}))
		m.Element("span", loc.Date(l, s.Date), markup.TestID("event-date-label"))
		start := s.Start.Time()
		m.Element("time", loc.ClockTime(start), markup.A("datetime", s.Start.String()), markup.TestID("event-time"))
		if timezone != "" {
			m.Element("span", loc.T(l, "schedule.timezone", timezone), markup.A("class", "text-xs"), markup.TestID("event-timezone"))
		}
		m.Close("div")
		return m.Err()
	})
}
