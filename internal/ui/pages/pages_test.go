package pages

import (
	"net/http"
	"testing"
	"time"

	"github.com/louisbranch/tablekit/internal/schedule"
	"github.com/louisbranch/tablekit/internal/ui/organisms"
	"github.com/louisbranch/tablekit/internal/ui/uitest"
)

var now = schedule.MustParseInstant("2024-01-15T12:00:00Z")

func card(id string, e schedule.Event) organisms.EventCardProps {
	return organisms.EventCardProps{ID: id, Title: "Session " + id, Summary: schedule.Describe(e, now)}
}

func TestSchedulePageGroupsSections(t *testing.T) {
	t.Parallel()

	doc := uitest.Render(t, SchedulePage(SchedulePageView{
		Live:     []organisms.EventCardProps{card("live", schedule.At(now.Add(-time.Hour)).Lasting(180))},
		Upcoming: []organisms.EventCardProps{card("next", schedule.At(now.Add(time.Hour))), card("later", schedule.At(now.Add(48*time.Hour)))},
		Timezone: "UTC",
	}))

	if got := len(uitest.FindAll(uitest.MustFind(t, doc, "schedule-live"), "event-card")); got != 1 {
		t.Fatalf("live cards = %d", got)
	}
	if got := len(uitest.FindAll(uitest.MustFind(t, doc, "schedule-upcoming"), "event-card")); got != 2 {
		t.Fatalf("upcoming cards = %d", got)
	}
	if uitest.Find(doc, "schedule-ended") != nil {
		t.Fatal("ended section should be omitted when empty")
	}
	if got := uitest.Text(uitest.MustFind(t, doc, "schedule-timezone")); got != "Times in UTC" {
		t.Fatalf("timezone = %q", got)
	}
}

func TestSchedulePageEmpty(t *testing.T) {
	t.Parallel()

	doc := uitest.Render(t, SchedulePage(SchedulePageView{}))
	if uitest.Find(doc, "schedule-live") != nil {
		t.Fatal("live section should be omitted when empty")
	}
	if got := uitest.Text(uitest.MustFind(t, doc, "event-list-empty")); got != "No sessions scheduled." {
		t.Fatalf("empty = %q", got)
	}
}

func TestEventPageRendersCardAndChat(t *testing.T) {
	t.Parallel()

	doc := uitest.Render(t, EventPage(EventPageView{
		Card:    card("s1", schedule.At(now.Add(time.Hour))),
		Chat:    organisms.ChatPanelProps{RoomID: "s1", Now: now.Time()},
		BackURL: "/schedule/",
	}))
	if uitest.Find(doc, "event-card") == nil || uitest.Find(doc, "chat-panel") == nil {
		t.Fatal("expected card and chat panel")
	}
	if got := uitest.Attr(uitest.MustFind(t, doc, "event-back"), "href"); got != "/schedule/" {
		t.Fatalf("back href = %q", got)
	}
}

func TestErrorPage(t *testing.T) {
	t.Parallel()

	doc := uitest.Render(t, ErrorPage(ErrorPageView{Status: http.StatusNotFound, Message: "We couldn't find that page.", BackURL: "/schedule/"}))
	if got := uitest.Text(uitest.MustFind(t, doc, "error-status")); got != "404" {
		t.Fatalf("status = %q", got)
	}
	if got := uitest.Text(uitest.MustFind(t, doc, "error-message")); got != "We couldn't find that page." {
		t.Fatalf("message = %q", got)
	}
	if uitest.Find(doc, "error-back") == nil {
		t.Fatal("expected back link")
	}
}
