package schedule

import (
	"context"
	"sort"
	"time"

	apperrors "github.com/louisbranch/tablekit/internal/platform/errors"
	"github.com/louisbranch/tablekit/internal/schedule"
	"github.com/louisbranch/tablekit/internal/schedule/recurrence"
	"github.com/louisbranch/tablekit/internal/services/web/occurrence"
	"github.com/louisbranch/tablekit/internal/services/web/storage"
)

const (
	// endedLookback keeps recently finished sessions on the schedule.
	endedLookback = 12 * time.Hour
	// recurrenceHorizon bounds how far ahead recurring sessions expand.
	recurrenceHorizon = 14 * 24 * time.Hour
)

// listing groups occurrences by phase at one instant.
type listing struct {
	Live     []occurrence.Occurrence
	Upcoming []occurrence.Occurrence
	Ended    []occurrence.Occurrence
}

type service struct {
	sessions storage.SessionStore
}

func newService(sessions storage.SessionStore) service {
	return service{sessions: sessions}
}

// list loads every stored session, expands recurring ones around now and
// groups the result. Live and upcoming sort by start; ended sorts most
// recently finished first.
func (s service) list(ctx context.Context, now schedule.Instant) (listing, error) {
	if s.sessions == nil {
		return listing{}, apperrors.E(apperrors.KindUnavailable, "session store is not configured")
	}
	records, err := s.sessions.ListSessions(ctx)
	if err != nil {
		return listing{}, apperrors.Wrap(apperrors.KindUnavailable, "", "list sessions", err)
	}

	var out listing
	for _, record := range records {
		occurrences, err := expand(record, now)
		if err != nil {
			return listing{}, err
		}
		for _, occ := range occurrences {
			switch schedule.PhaseAt(occ.Event, now) {
			case schedule.PhaseLive:
				out.Live = append(out.Live, occ)
			case schedule.PhaseEnded:
				if end, _ := occ.Event.EndTime(); now.Sub(end) <= endedLookback {
					out.Ended = append(out.Ended, occ)
				}
			case schedule.PhaseStarted:
				if now.Sub(occ.Event.Start) <= endedLookback {
					out.Upcoming = append(out.Upcoming, occ)
				}
			default:
				out.Upcoming = append(out.Upcoming, occ)
			}
		}
	}

	byStart := func(items []occurrence.Occurrence) {
		sort.SliceStable(items, func(i, j int) bool { return items[i].Event.Start.Before(items[j].Event.Start) })
	}
	byStart(out.Live)
	byStart(out.Upcoming)
	sort.SliceStable(out.Ended, func(i, j int) bool {
		a, _ := out.Ended[i].Event.EndTime()
		b, _ := out.Ended[j].Event.EndTime()
		return a.After(b)
	})
	return out, nil
}

// get resolves a session or one occurrence of a recurring session.
func (s service) get(ctx context.Context, id string) (occurrence.Occurrence, error) {
	return occurrence.Resolve(ctx, s.sessions, id)
}

func expand(record storage.SessionRecord, now schedule.Instant) ([]occurrence.Occurrence, error) {
	return occurrence.Expand(record, recurrence.Window{
		From: now.Add(-endedLookback),
		To:   now.Add(recurrenceHorizon),
	})
}
