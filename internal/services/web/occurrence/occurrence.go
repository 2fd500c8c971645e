// Package occurrence resolves stored sessions into concrete sittings.
//
// A one-off session has a single occurrence whose id is the session id. A
// recurring session has one occurrence per rule instance, identified as
// "<sessionID>@<unixSeconds>".
package occurrence

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/louisbranch/tablekit/internal/platform/errors"
	"github.com/louisbranch/tablekit/internal/schedule"
	"github.com/louisbranch/tablekit/internal/schedule/recurrence"
	"github.com/louisbranch/tablekit/internal/services/web/storage"
)

// separator joins a session id and an occurrence start.
const separator = "@"

// Occurrence is one concrete sitting of a stored session.
type Occurrence struct {
	ID        string
	Record    storage.SessionRecord
	Event     schedule.Event
	Recurring bool
}

// ID returns the occurrence id of the sitting of sessionID starting at start.
func ID(sessionID string, start schedule.Instant) string {
	return sessionID + separator + strconv.FormatInt(start.Time().Unix(), 10)
}

// Split separates an occurrence id into its session id and start. ok is
// false for a bare session id.
func Split(id string) (sessionID string, startUnix int64, ok bool) {
	id = strings.TrimSpace(id)
	base, suffix, found := strings.Cut(id, separator)
	if !found {
		return id, 0, false
	}
	unix, err := strconv.ParseInt(suffix, 10, 64)
	if err != nil {
		return id, 0, false
	}
	return base, unix, true
}

// Resolve loads the session behind id and returns the named sitting. A bare
// id of a recurring session names its first sitting.
func Resolve(ctx context.Context, sessions storage.SessionStore, id string) (Occurrence, error) {
	if sessions == nil {
		return Occurrence{}, apperrors.E(apperrors.KindUnavailable, "session store is not configured")
	}
	baseID, startUnix, hasStart := Split(id)
	record, err := sessions.GetSession(ctx, baseID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return Occurrence{}, apperrors.E(apperrors.KindNotFound, "session not found")
		}
		return Occurrence{}, apperrors.Wrap(apperrors.KindUnavailable, "", "get session", err)
	}

	recurring := strings.TrimSpace(record.Rule) != ""
	if !hasStart {
		return Occurrence{ID: record.ID, Record: record, Event: baseEvent(record), Recurring: recurring}, nil
	}
	if !recurring {
		return Occurrence{}, apperrors.E(apperrors.KindNotFound, "session is not recurring")
	}

	start := schedule.NewInstant(time.Unix(startUnix, 0).UTC())
	events, err := series(record).Expand(recurrence.Window{From: start, To: start})
	if err != nil {
		return Occurrence{}, apperrors.Wrap(apperrors.KindUnknown, "", "expand session", err)
	}
	for _, event := range events {
		if event.Start.Equal(start) {
			return Occurrence{ID: ID(record.ID, event.Start), Record: record, Event: event, Recurring: true}, nil
		}
	}
	return Occurrence{}, apperrors.E(apperrors.KindNotFound, "occurrence not found")
}

// Expand returns the sittings of record overlapping w. A one-off session
// yields itself regardless of w.
func Expand(record storage.SessionRecord, w recurrence.Window) ([]Occurrence, error) {
	if strings.TrimSpace(record.Rule) == "" {
		return []Occurrence{{ID: record.ID, Record: record, Event: baseEvent(record)}}, nil
	}
	events, err := series(record).Expand(w)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindUnknown, "", "expand session "+record.ID, err)
	}
	out := make([]Occurrence, 0, len(events))
	for _, event := range events {
		out = append(out, Occurrence{ID: ID(record.ID, event.Start), Record: record, Event: event, Recurring: true})
	}
	return out, nil
}

func baseEvent(record storage.SessionRecord) schedule.Event {
	event := schedule.Event{
		Start:           schedule.NewInstant(record.Start),
		DurationMinutes: record.DurationMinutes,
	}
	if record.End != nil {
		end := schedule.NewInstant(*record.End)
		event.End = &end
	}
	return event
}

// series repeats in the session's home zone when its timezone label names
// one, so a weekly 19:00 table keeps its wall clock across DST.
func series(record storage.SessionRecord) recurrence.Series {
	s := recurrence.Series{
		Rule:            record.Rule,
		Anchor:          schedule.NewInstant(record.Start),
		DurationMinutes: durationOf(record),
	}
	if name := strings.TrimSpace(record.TimezoneLabel); name != "" && !strings.EqualFold(name, "local") {
		if loc, err := time.LoadLocation(name); err == nil {
			s.Location = loc
		}
	}
	return s
}

// durationOf gives recurring sessions a length; an explicit end on the
// anchor is converted to minutes.
func durationOf(record storage.SessionRecord) *int {
	if record.DurationMinutes != nil {
		return record.DurationMinutes
	}
	if record.End != nil {
		minutes := int(record.End.Sub(record.Start) / time.Minute)
		return &minutes
	}
	return nil
}
