// Package loc provides the localizer contract shared by UI components and
// the localized renderings of schedule labels.
package loc

import (
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	platformi18n "github.com/louisbranch/tablekit/internal/platform/i18n"
	"github.com/louisbranch/tablekit/internal/schedule"
)

// Localizer provides translated strings for components.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// Printer returns a message printer for tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

var fallback = Printer(platformi18n.DefaultTag())

// T returns a translated string. A nil localizer uses the default language.
func T(l Localizer, key message.Reference, args ...any) string {
	if l == nil {
		return fallback.Sprintf(key, args...)
	}
	return l.Sprintf(key, args...)
}

// Countdown renders a countdown bucket.
func Countdown(l Localizer, c schedule.Countdown) string {
	switch c.Bucket {
	case schedule.BucketLive:
		return T(l, "schedule.countdown.live")
	case schedule.BucketStarted:
		return T(l, "schedule.countdown.started")
	case schedule.BucketStartingNow:
		return T(l, "schedule.countdown.starting_now")
	case schedule.BucketMinutes:
		return T(l, "schedule.countdown.minutes", c.Value)
	case schedule.BucketHours:
		return T(l, "schedule.countdown.hours", c.Value)
	case schedule.BucketDays:
		return T(l, "schedule.countdown.days", c.Value)
	default:
		return ""
	}
}

// Date renders a classified start day.
func Date(l Localizer, d schedule.DateLabel) string {
	switch d.Kind {
	case schedule.DateToday:
		return T(l, "schedule.date.today")
	case schedule.DateTomorrow:
		return T(l, "schedule.date.tomorrow")
	case schedule.DateWeekday:
		return Weekday(l, d.Day.Weekday())
	default:
		return T(l, "schedule.date.calendar",
			T(l, "schedule.weekday.short."+strconv.Itoa(int(d.Day.Weekday()))),
			T(l, "schedule.month.short."+strconv.Itoa(int(d.Day.Month()))),
			d.Day.Day(),
		)
	}
}

// Weekday renders the full weekday name.
func Weekday(l Localizer, wd time.Weekday) string {
	return T(l, "schedule.weekday."+strconv.Itoa(int(wd)))
}

// ClockTime renders the wall-clock start time.
func ClockTime(t time.Time) string {
	return t.Format("15:04")
}

// Count renders an integer with digit grouping.
func Count(n int) string {
	return humanize.Comma(int64(n))
}

// RelTime renders then relative to now ("3 minutes ago").
func RelTime(l Localizer, then, now time.Time) string {
	magnitudes := []humanize.RelTimeMagnitude{
		{D: time.Second, Format: T(l, "chat.ago.now"), DivBy: time.Second},
		{D: time.Minute, Format: T(l, "chat.ago.seconds"), DivBy: time.Second},
		{D: 2 * time.Minute, Format: T(l, "chat.ago.minute"), DivBy: 1},
		{D: time.Hour, Format: T(l, "chat.ago.minutes"), DivBy: time.Minute},
		{D: 2 * time.Hour, Format: T(l, "chat.ago.hour"), DivBy: 1},
		{D: humanize.Day, Format: T(l, "chat.ago.hours"), DivBy: time.Hour},
		{D: 2 * humanize.Day, Format: T(l, "chat.ago.day"), DivBy: 1},
		{D: humanize.LongTime, Format: T(l, "chat.ago.days"), DivBy: humanize.Day},
	}
	return humanize.CustomRelTime(then, now, T(l, "chat.ago.suffix"), T(l, "chat.ago.future"), magnitudes)
}
