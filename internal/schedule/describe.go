package schedule

// Phase places an event on its timeline relative to now.
type Phase int

const (
	// PhaseUpcoming is before the start.
	PhaseUpcoming Phase = iota
	// PhaseLive is inside [start, end).
	PhaseLive
	// PhaseStarted is after the start of an event with no known end.
	PhaseStarted
	// PhaseEnded is at or after a known end.
	PhaseEnded
)

// String returns a stable lowercase name, used for data attributes.
func (p Phase) String() string {
	switch p {
	case PhaseLive:
		return "live"
	case PhaseStarted:
		return "started"
	case PhaseEnded:
		return "ended"
	default:
		return "upcoming"
	}
}

// IsLive reports whether start <= now < end. Events without an end are never
// live; an end before the start is never live either.
func IsLive(e Event, now Instant) bool {
	end, ok := e.EndTime()
	if !ok {
		return false
	}
	return !now.Before(e.Start) && now.Before(end)
}

// PhaseAt classifies e at now.
func PhaseAt(e Event, now Instant) Phase {
	if now.Before(e.Start) {
		return PhaseUpcoming
	}
	end, ok := e.EndTime()
	if !ok {
		return PhaseStarted
	}
	if now.Before(end) {
		return PhaseLive
	}
	return PhaseEnded
}

// Summary is everything a card needs to describe when an event happens.
type Summary struct {
	Phase     Phase
	Countdown Countdown
	Date      DateLabel
	Start     Instant
	End       Instant
	HasEnd    bool
}

// Describe computes the display summary of e at now. A live event replaces its
// countdown with the live bucket.
func Describe(e Event, now Instant) Summary {
	end, hasEnd := e.EndTime()
	summary := Summary{
		Phase:     PhaseAt(e, now),
		Countdown: CountdownAt(e.Start, now),
		Date:      DateLabelAt(e.Start, now),
		Start:     e.Start.In(now.Location()),
		HasEnd:    hasEnd,
	}
	if hasEnd {
		summary.End = end.In(now.Location())
	}
	if summary.Phase == PhaseLive {
		summary.Countdown = Countdown{Bucket: BucketLive}
	}
	return summary
}

// Live reports whether the summary is in the live phase.
func (s Summary) Live() bool { return s.Phase == PhaseLive }

// CountdownText is the English countdown, "Live Now" for live events.
func (s Summary) CountdownText() string { return s.Countdown.String() }

// DateText is the English date label.
func (s Summary) DateText() string { return s.Date.String() }
