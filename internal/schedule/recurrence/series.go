// Package recurrence expands recurring table sessions into concrete events.
package recurrence

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/louisbranch/tablekit/internal/schedule"
)

const defaultMaxOccurrences = 50

// ErrInvalidRule reports an RRULE that could not be parsed.
var ErrInvalidRule = errors.New("invalid recurrence rule")

// Series is a recurring session: an RRULE anchored on its first start.
//
// Location controls the wall clock the rule repeats in, so a weekly 19:00
// session stays at 19:00 across DST changes. A nil Location uses the anchor's
// own location.
type Series struct {
	Rule            string
	Anchor          schedule.Instant
	DurationMinutes *int
	Location        *time.Location
}

// Window bounds an expansion. Occurrences that are still running at From are
// included so live sessions stay visible.
type Window struct {
	From  schedule.Instant
	To    schedule.Instant
	Limit int
}

// Validate parses the rule without expanding it.
func (s Series) Validate() error {
	_, err := s.rule()
	return err
}

// Expand returns the occurrences of s that overlap w, oldest first.
func (s Series) Expand(w Window) ([]schedule.Event, error) {
	if w.To.Before(w.From) {
		return nil, fmt.Errorf("expand series: window ends before it starts")
	}
	r, err := s.rule()
	if err != nil {
		return nil, err
	}
	limit := w.Limit
	if limit <= 0 {
		limit = defaultMaxOccurrences
	}

	// Step back by one duration so occurrences already in progress are found.
	lookback := time.Duration(0)
	if s.DurationMinutes != nil && *s.DurationMinutes > 0 {
		lookback = time.Duration(*s.DurationMinutes) * time.Minute
	}
	loc := s.location()
	from := w.From.Add(-lookback).Time().In(loc)
	to := w.To.Time().In(loc)

	events := make([]schedule.Event, 0)
	for _, start := range r.Between(from, to, true) {
		event := schedule.Event{
			Start:           schedule.NewInstant(start),
			DurationMinutes: s.DurationMinutes,
		}
		if end, ok := event.EndTime(); ok && end.Before(w.From) {
			continue
		}
		if _, ok := event.EndTime(); !ok && event.Start.Before(w.From) {
			continue
		}
		events = append(events, event)
		if len(events) == limit {
			break
		}
	}
	return events, nil
}

func (s Series) rule() (*rrule.RRule, error) {
	raw := strings.TrimSpace(s.Rule)
	raw = strings.TrimPrefix(raw, "RRULE:")
	if raw == "" {
		return nil, fmt.Errorf("%w: empty rule", ErrInvalidRule)
	}
	if s.Anchor.IsZero() {
		return nil, fmt.Errorf("%w: anchor is required", ErrInvalidRule)
	}
	r, err := rrule.StrToRRule(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRule, err)
	}
	r.DTStart(s.Anchor.Time().In(s.location()))
	return r, nil
}

func (s Series) location() *time.Location {
	if s.Location != nil {
		return s.Location
	}
	return s.Anchor.Location()
}
