package schedule

import (
	"fmt"
	"time"
)

const day = 24 * time.Hour

// weekdayWindow is the last day offset that is labelled by weekday name.
const weekdayWindow = 6

// CountdownBucket is one of the fixed relative-time buckets.
type CountdownBucket int

const (
	BucketStarted CountdownBucket = iota
	BucketStartingNow
	BucketMinutes
	BucketHours
	BucketDays
	BucketLive
)

// Countdown is a bucketed distance from now to a start time. Value holds the
// floored count for the minute, hour and day buckets and is zero otherwise.
type Countdown struct {
	Bucket CountdownBucket
	Value  int
}

// CountdownAt buckets the signed delta start-now. Bucket edges belong to the
// larger bucket.
func CountdownAt(start, now Instant) Countdown {
	d := start.Sub(now)
	switch {
	case d < 0:
		return Countdown{Bucket: BucketStarted}
	case d < time.Minute:
		return Countdown{Bucket: BucketStartingNow}
	case d < time.Hour:
		return Countdown{Bucket: BucketMinutes, Value: int(d / time.Minute)}
	case d < day:
		return Countdown{Bucket: BucketHours, Value: int(d / time.Hour)}
	default:
		return Countdown{Bucket: BucketDays, Value: int(d / day)}
	}
}

// String renders the English label for c.
func (c Countdown) String() string {
	switch c.Bucket {
	case BucketLive:
		return "Live Now"
	case BucketStarted:
		return "Started"
	case BucketStartingNow:
		return "Starting now"
	case BucketMinutes:
		return fmt.Sprintf("In %dm", c.Value)
	case BucketHours:
		return fmt.Sprintf("In %dh", c.Value)
	case BucketDays:
		return fmt.Sprintf("In %dd", c.Value)
	default:
		return ""
	}
}

// FormatCountdown returns the English countdown label for start as seen at now.
func FormatCountdown(start, now Instant) string {
	return CountdownAt(start, now).String()
}

// DateKind classifies a start day against the current day.
type DateKind int

const (
	DateToday DateKind = iota
	DateTomorrow
	DateWeekday
	DateCalendar
)

// DateLabel is a start day classified against now. Day is the start time
// presented in now's location.
type DateLabel struct {
	Kind DateKind
	Day  time.Time
}

// DateLabelAt classifies start's calendar day against now's calendar day.
// Both are compared in now's location.
func DateLabelAt(start, now Instant) DateLabel {
	local := start.In(now.Location()).Time()
	offset := calendarDaysBetween(now.Time(), local)
	switch {
	case offset == 0:
		return DateLabel{Kind: DateToday, Day: local}
	case offset == 1:
		return DateLabel{Kind: DateTomorrow, Day: local}
	case offset > 1 && offset <= weekdayWindow:
		return DateLabel{Kind: DateWeekday, Day: local}
	default:
		return DateLabel{Kind: DateCalendar, Day: local}
	}
}

// String renders the English label for d.
func (d DateLabel) String() string {
	switch d.Kind {
	case DateToday:
		return "Today"
	case DateTomorrow:
		return "Tomorrow"
	case DateWeekday:
		return d.Day.Weekday().String()
	default:
		return d.Day.Format("Mon, Jan 2")
	}
}

// FormatDate returns the English date label for start as seen at now.
func FormatDate(start, now Instant) string {
	return DateLabelAt(start, now).String()
}

// calendarDaysBetween counts calendar days from a to b using their wall dates,
// so DST transitions do not shift the result.
func calendarDaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	from := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	to := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from) / day)
}
