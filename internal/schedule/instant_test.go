package schedule

import (
	"errors"
	"testing"
	"time"
)

func TestParseInstantAcceptsSupportedLayouts(t *testing.T) {
	t.Parallel()

	want := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	for _, value := range []string{
		"2024-01-15T12:00:00Z",
		"2024-01-15T09:00:00-03:00",
		"2024-01-15T12:00:00.000Z",
		"2024-01-15T12:00:00",
		"2024-01-15 12:00",
		" 2024-01-15T12:00Z ",
	} {
		got, err := ParseInstant(value)
		if err != nil {
			t.Fatalf("ParseInstant(%q) error = %v", value, err)
		}
		if !got.Time().Equal(want) {
			t.Fatalf("ParseInstant(%q) = %v, want %v", value, got.Time(), want)
		}
	}
}

func TestParseInstantInUsesLocationForNaiveValues(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("BRT", -3*60*60)
	got, err := ParseInstantIn("2024-01-15T09:00", loc)
	if err != nil {
		t.Fatalf("ParseInstantIn() error = %v", err)
	}
	if !got.Time().Equal(time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("ParseInstantIn() = %v", got.Time())
	}
}

func TestParseInstantRejectsInvalidValues(t *testing.T) {
	t.Parallel()

	for _, value := range []string{"", "   ", "tomorrow", "2024-13-45", "15/01/2024"} {
		_, err := ParseInstant(value)
		if err == nil {
			t.Fatalf("ParseInstant(%q) expected error", value)
		}
		if !errors.Is(err, ErrInvalidInstant) {
			t.Fatalf("ParseInstant(%q) error = %v, want ErrInvalidInstant", value, err)
		}
	}
}

func TestNowInDefaults(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	loc := time.FixedZone("X", 3600)
	got := NowIn(FixedClock(fixed), loc)
	if !got.Time().Equal(fixed) || got.Location() != loc {
		t.Fatalf("NowIn() = %v", got.Time())
	}
	if NowIn(nil, nil).Location() != time.UTC {
		t.Fatal("NowIn(nil, nil) location != UTC")
	}
}
