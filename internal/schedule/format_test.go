package schedule

import (
	"testing"
	"time"
)

var referenceNow = MustParseInstant("2024-01-15T12:00:00Z")

func TestFormatCountdownBuckets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		delta time.Duration
		want  string
	}{
		{name: "long past", delta: -48 * time.Hour, want: "Started"},
		{name: "one nanosecond past", delta: -time.Nanosecond, want: "Started"},
		{name: "exactly now", delta: 0, want: "Starting now"},
		{name: "thirty seconds", delta: 30 * time.Second, want: "Starting now"},
		{name: "just under a minute", delta: time.Minute - time.Millisecond, want: "Starting now"},
		{name: "minute edge", delta: time.Minute, want: "In 1m"},
		{name: "thirty minutes", delta: 30 * time.Minute, want: "In 30m"},
		{name: "floors minutes", delta: 59*time.Minute + 59*time.Second, want: "In 59m"},
		{name: "hour edge", delta: time.Hour, want: "In 1h"},
		{name: "three hours", delta: 3 * time.Hour, want: "In 3h"},
		{name: "floors hours", delta: 23*time.Hour + 59*time.Minute, want: "In 23h"},
		{name: "day edge", delta: 24 * time.Hour, want: "In 1d"},
		{name: "three days", delta: 3 * 24 * time.Hour, want: "In 3d"},
		{name: "floors days", delta: 3*24*time.Hour + 23*time.Hour, want: "In 3d"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := FormatCountdown(referenceNow.Add(tc.delta), referenceNow)
			if got != tc.want {
				t.Fatalf("FormatCountdown(now%+v) = %q, want %q", tc.delta, got, tc.want)
			}
		})
	}
}

func TestFormatCountdownStartingNowAcrossFirstMinute(t *testing.T) {
	t.Parallel()

	for ms := int64(0); ms < 60_000; ms += 997 {
		start := referenceNow.Add(time.Duration(ms) * time.Millisecond)
		if got := FormatCountdown(start, referenceNow); got != "Starting now" {
			t.Fatalf("delta %dms = %q, want %q", ms, got, "Starting now")
		}
	}
}

func TestFormatCountdownStartedForNegativeDeltas(t *testing.T) {
	t.Parallel()

	for _, ms := range []int64{-1, -999, -60_000, -3_600_000, -86_400_000 * 400} {
		start := referenceNow.Add(time.Duration(ms) * time.Millisecond)
		if got := FormatCountdown(start, referenceNow); got != "Started" {
			t.Fatalf("delta %dms = %q, want %q", ms, got, "Started")
		}
	}
}

func TestCountdownAtReportsFlooredValue(t *testing.T) {
	t.Parallel()

	got := CountdownAt(referenceNow.Add(90*time.Minute), referenceNow)
	if got.Bucket != BucketHours || got.Value != 1 {
		t.Fatalf("CountdownAt() = %+v, want hours bucket with value 1", got)
	}
}

func TestFormatCountdownIsIdempotent(t *testing.T) {
	t.Parallel()

	start := referenceNow.Add(42 * time.Minute)
	first := FormatCountdown(start, referenceNow)
	second := FormatCountdown(start, referenceNow)
	if first != second {
		t.Fatalf("FormatCountdown() not stable: %q then %q", first, second)
	}
	if FormatDate(start, referenceNow) != FormatDate(start, referenceNow) {
		t.Fatal("FormatDate() not stable")
	}
}

func TestFormatDateLabels(t *testing.T) {
	t.Parallel()

	// 2024-01-15 is a Monday.
	tests := []struct {
		name  string
		start string
		want  string
	}{
		{name: "same day later", start: "2024-01-15T23:59:00Z", want: "Today"},
		{name: "same day earlier", start: "2024-01-15T00:00:00Z", want: "Today"},
		{name: "next day", start: "2024-01-16T00:00:00Z", want: "Tomorrow"},
		{name: "two days", start: "2024-01-17T09:00:00Z", want: "Wednesday"},
		{name: "six days", start: "2024-01-21T09:00:00Z", want: "Sunday"},
		{name: "seven days", start: "2024-01-22T09:00:00Z", want: "Mon, Jan 22"},
		{name: "yesterday", start: "2024-01-14T20:00:00Z", want: "Sun, Jan 14"},
		{name: "next year", start: "2025-03-01T20:00:00Z", want: "Sat, Mar 1"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := FormatDate(MustParseInstant(tc.start), referenceNow)
			if got != tc.want {
				t.Fatalf("FormatDate(%s) = %q, want %q", tc.start, got, tc.want)
			}
		})
	}
}

func TestFormatDateUsesNowLocation(t *testing.T) {
	t.Parallel()

	tokyo := time.FixedZone("JST", 9*60*60)
	// 2024-01-15T20:00Z is already 2024-01-16 05:00 in Tokyo.
	now := NewInstant(time.Date(2024, 1, 15, 21, 0, 0, 0, tokyo))
	start := MustParseInstant("2024-01-15T20:00:00Z")
	if got := FormatDate(start, now); got != "Tomorrow" {
		t.Fatalf("FormatDate() = %q, want %q", got, "Tomorrow")
	}
	if got := FormatDate(start, now.In(time.UTC)); got != "Today" {
		t.Fatalf("FormatDate() in UTC = %q, want %q", got, "Today")
	}
}

func TestCalendarDaysBetweenIgnoresDSTShift(t *testing.T) {
	t.Parallel()

	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	// Clocks spring forward on 2024-03-10.
	before := time.Date(2024, 3, 9, 23, 30, 0, 0, ny)
	after := time.Date(2024, 3, 11, 0, 15, 0, 0, ny)
	if got := calendarDaysBetween(before, after); got != 2 {
		t.Fatalf("calendarDaysBetween() = %d, want 2", got)
	}
}
