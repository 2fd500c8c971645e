// Package reminder builds calendar files for the "Set Reminder" action.
package reminder

import (
	"errors"
	"strconv"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/louisbranch/tablekit/internal/schedule"
)

const productID = "-//tablekit//schedule//EN"

// DefaultLead is how long before the start the alarm fires.
const DefaultLead = 15 * time.Minute

// Session is the data a reminder needs.
type Session struct {
	UID         string
	Title       string
	Description string
	URL         string
	Event       schedule.Event
	// Lead overrides DefaultLead when positive.
	Lead time.Duration
}

// Build renders s as a single-event iCalendar document with a display alarm.
// stamp is recorded as DTSTAMP.
func Build(s Session, stamp schedule.Instant) (string, error) {
	uid := strings.TrimSpace(s.UID)
	if uid == "" {
		return "", errors.New("reminder uid is required")
	}
	if s.Event.Start.IsZero() {
		return "", errors.New("reminder start is required")
	}
	title := strings.TrimSpace(s.Title)

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(productID)

	event := cal.AddEvent(uid)
	event.SetDtStampTime(stamp.Time().UTC())
	event.SetStartAt(s.Event.Start.Time().UTC())
	if end, ok := s.Event.EndTime(); ok && end.After(s.Event.Start) {
		event.SetEndAt(end.Time().UTC())
	}
	if title != "" {
		event.SetSummary(title)
	}
	if description := strings.TrimSpace(s.Description); description != "" {
		event.SetDescription(description)
	}
	if url := strings.TrimSpace(s.URL); url != "" {
		event.SetURL(url)
	}

	lead := s.Lead
	if lead <= 0 {
		lead = DefaultLead
	}
	alarm := event.AddAlarm()
	alarm.SetAction(ics.ActionDisplay)
	alarm.SetTrigger(trigger(lead))
	alarm.SetProperty(ics.ComponentPropertyDescription, title)

	return cal.Serialize(), nil
}

// trigger formats lead as a negative ISO 8601 duration, e.g. -PT15M.
func trigger(lead time.Duration) string {
	minutes := int(lead / time.Minute)
	if minutes < 1 {
		minutes = 1
	}
	var b strings.Builder
	b.WriteString("-P")
	if days := minutes / (24 * 60); days > 0 {
		b.WriteString(strconv.Itoa(days))
		b.WriteString("D")
		minutes -= days * 24 * 60
	}
	if minutes == 0 {
		return b.String()
	}
	b.WriteString("T")
	if hours := minutes / 60; hours > 0 {
		b.WriteString(strconv.Itoa(hours))
		b.WriteString("H")
		minutes -= hours * 60
	}
	if minutes > 0 {
		b.WriteString(strconv.Itoa(minutes))
		b.WriteString("M")
	}
	return b.String()
}
