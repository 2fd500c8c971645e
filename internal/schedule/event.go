package schedule

import "time"

// Event is the timing portion of a scheduled table session.
//
// End and DurationMinutes are both optional. An explicit End wins over a
// duration; with neither the event is a start with no visible end.
type Event struct {
	Start           Instant
	End             *Instant
	DurationMinutes *int
}

// At returns a point-in-time event starting at start.
func At(start Instant) Event {
	return Event{Start: start}
}

// Until returns a copy of e with an explicit end.
func (e Event) Until(end Instant) Event {
	e.End = &end
	return e
}

// Lasting returns a copy of e with a duration in minutes. Negative values are
// kept as given and produce an end before the start.
func (e Event) Lasting(minutes int) Event {
	e.DurationMinutes = &minutes
	return e
}

// EndTime resolves the end of an event: the explicit end when present,
// otherwise start plus the duration. ok is false when neither is known.
func EndTime(start Instant, end *Instant, durationMinutes *int) (Instant, bool) {
	if end != nil {
		return *end, true
	}
	if durationMinutes != nil {
		return start.Add(time.Duration(*durationMinutes) * time.Minute), true
	}
	return Instant{}, false
}

// EndTime resolves e's end; see the package-level EndTime.
func (e Event) EndTime() (Instant, bool) {
	return EndTime(e.Start, e.End, e.DurationMinutes)
}
