package reminder

import (
	"strings"
	"testing"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/louisbranch/tablekit/internal/schedule"
)

func TestBuildProducesParsableCalendar(t *testing.T) {
	t.Parallel()

	start := schedule.MustParseInstant("2024-01-17T22:00:00Z")
	out, err := Build(Session{
		UID:         "session-1@tablekit",
		Title:       "The Sunken Keep",
		Description: "Session 12",
		URL:         "https://example.test/schedule/events/session-1",
		Event:       schedule.At(start).Lasting(180),
	}, schedule.MustParseInstant("2024-01-15T12:00:00Z"))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	cal, err := ics.ParseCalendar(strings.NewReader(out))
	if err != nil {
		t.Fatalf("ParseCalendar() error = %v", err)
	}
	events := cal.Events()
	if len(events) != 1 {
		t.Fatalf("events = %d, want 1", len(events))
	}
	event := events[0]
	if got := event.GetProperty(ics.ComponentPropertySummary).Value; got != "The Sunken Keep" {
		t.Fatalf("SUMMARY = %q", got)
	}
	gotStart, err := event.GetStartAt()
	if err != nil {
		t.Fatalf("GetStartAt() error = %v", err)
	}
	if !gotStart.Equal(start.Time()) {
		t.Fatalf("DTSTART = %v, want %v", gotStart, start.Time())
	}
	gotEnd, err := event.GetEndAt()
	if err != nil {
		t.Fatalf("GetEndAt() error = %v", err)
	}
	if !gotEnd.Equal(start.Add(3 * time.Hour).Time()) {
		t.Fatalf("DTEND = %v", gotEnd)
	}
	for _, marker := range []string{"BEGIN:VALARM", "TRIGGER:-PT15M", "ACTION:DISPLAY", "METHOD:PUBLISH"} {
		if !strings.Contains(out, marker) {
			t.Fatalf("calendar missing %q:\n%s", marker, out)
		}
	}
}

func TestBuildOmitsEndForPointInTimeSession(t *testing.T) {
	t.Parallel()

	out, err := Build(Session{
		UID:   "session-2",
		Title: "One-shot",
		Event: schedule.At(schedule.MustParseInstant("2024-01-17T22:00:00Z")),
	}, schedule.MustParseInstant("2024-01-15T12:00:00Z"))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if strings.Contains(out, "DTEND") {
		t.Fatalf("unexpected DTEND:\n%s", out)
	}
}

func TestBuildRequiresUIDAndStart(t *testing.T) {
	t.Parallel()

	stamp := schedule.MustParseInstant("2024-01-15T12:00:00Z")
	if _, err := Build(Session{Event: schedule.At(stamp)}, stamp); err == nil {
		t.Fatal("expected missing uid error")
	}
	if _, err := Build(Session{UID: "x"}, stamp); err == nil {
		t.Fatal("expected missing start error")
	}
}

func TestTrigger(t *testing.T) {
	t.Parallel()

	tests := map[time.Duration]string{
		15 * time.Minute:           "-PT15M",
		time.Hour:                  "-PT1H",
		90 * time.Minute:           "-PT1H30M",
		24 * time.Hour:             "-P1D",
		25*time.Hour + time.Minute: "-P1DT1H1M",
		10 * time.Second:           "-PT1M",
	}
	for lead, want := range tests {
		if got := trigger(lead); got != want {
			t.Fatalf("trigger(%v) = %q, want %q", lead, got, want)
		}
	}
}
