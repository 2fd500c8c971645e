package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/louisbranch/tablekit/internal/services/web/storage"
)

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open(context.Background(), ""); err == nil {
		t.Fatal("expected empty path error")
	}
}

func TestPutGetListSessions(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()
	start := time.Date(2024, 1, 15, 19, 0, 0, 0, time.UTC)
	end := start.Add(3 * time.Hour)
	duration := 90

	inputs := []storage.SessionRecord{
		{
			ID:              "sess-2",
			Title:           "  Lantern Keep  ",
			System:          "Daggerheart",
			Start:           start.Add(24 * time.Hour),
			DurationMinutes: &duration,
			SeatsTaken:      3,
			Capacity:        5,
			Rule:            "FREQ=WEEKLY;COUNT=4",
			TimezoneLabel:   "UTC",
		},
		{
			ID:      "sess-1",
			Title:   "One-shot",
			Start:   start,
			End:     &end,
			JoinURL: "https://play.example.test/tables/1",
		},
	}
	for _, input := range inputs {
		if err := store.PutSession(ctx, input); err != nil {
			t.Fatalf("PutSession(%s) error = %v", input.ID, err)
		}
	}

	got, err := store.GetSession(ctx, "sess-2")
	if err != nil {
		t.Fatalf("GetSession() error = %v", err)
	}
	if got.Title != "Lantern Keep" {
		t.Fatalf("title = %q, want trimmed", got.Title)
	}
	if got.DurationMinutes == nil || *got.DurationMinutes != 90 {
		t.Fatalf("duration = %v, want 90", got.DurationMinutes)
	}
	if got.End != nil {
		t.Fatalf("end = %v, want nil", got.End)
	}
	if !got.Start.Equal(start.Add(24 * time.Hour)) {
		t.Fatalf("start = %v", got.Start)
	}

	list, err := store.ListSessions(ctx)
	if err != nil {
		t.Fatalf("ListSessions() error = %v", err)
	}
	if len(list) != 2 || list[0].ID != "sess-1" || list[1].ID != "sess-2" {
		t.Fatalf("ListSessions() order = %+v", list)
	}
	if list[0].End == nil || !list[0].End.Equal(end) {
		t.Fatalf("end = %v, want %v", list[0].End, end)
	}

	count, err := store.CountSessions(ctx)
	if err != nil {
		t.Fatalf("CountSessions() error = %v", err)
	}
	if count != 2 {
		t.Fatalf("CountSessions() = %d, want 2", count)
	}
}

func TestPutSessionUpsertsByID(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()
	record := storage.SessionRecord{ID: "sess-1", Title: "Draft", Start: time.Now()}
	if err := store.PutSession(ctx, record); err != nil {
		t.Fatalf("PutSession() error = %v", err)
	}
	record.Title = "Final"
	record.SeatsTaken = 2
	if err := store.PutSession(ctx, record); err != nil {
		t.Fatalf("PutSession() error = %v", err)
	}
	got, err := store.GetSession(ctx, "sess-1")
	if err != nil {
		t.Fatalf("GetSession() error = %v", err)
	}
	if got.Title != "Final" || got.SeatsTaken != 2 {
		t.Fatalf("got %+v, want updated row", got)
	}
}

func TestGetSessionMissingReturnsNotFound(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	for _, id := range []string{"", "missing"} {
		if _, err := store.GetSession(context.Background(), id); !errors.Is(err, storage.ErrNotFound) {
			t.Fatalf("GetSession(%q) error = %v, want ErrNotFound", id, err)
		}
	}
}

func TestPutSessionValidatesRecord(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	tests := []struct {
		name   string
		record storage.SessionRecord
	}{
		{name: "missing id", record: storage.SessionRecord{Title: "x", Start: time.Now()}},
		{name: "missing title", record: storage.SessionRecord{ID: "a", Start: time.Now()}},
		{name: "missing start", record: storage.SessionRecord{ID: "a", Title: "x"}},
		{name: "negative seats", record: storage.SessionRecord{ID: "a", Title: "x", Start: time.Now(), SeatsTaken: -1}},
	}
	for _, tc := range tests {
		if err := store.PutSession(context.Background(), tc.record); err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
}

func TestStoreRejectsCanceledContext(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := store.ListSessions(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("ListSessions() error = %v, want context.Canceled", err)
	}
}

func TestNilStoreIsNotConfigured(t *testing.T) {
	t.Parallel()

	var store *Store
	if _, err := store.CountSessions(context.Background()); err == nil {
		t.Fatal("expected error for nil store")
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
}

func openTempStore(t *testing.T) *Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "sessions.sqlite")
	store, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close store: %v", err)
		}
	})
	return store
}
