// Package seed loads demo sessions from YAML into an empty session store.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/louisbranch/tablekit/internal/platform/id"
	"github.com/louisbranch/tablekit/internal/schedule"
	"github.com/louisbranch/tablekit/internal/schedule/recurrence"
	"github.com/louisbranch/tablekit/internal/services/web/storage"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultSeed []byte

// File is the YAML document shape.
type File struct {
	Sessions []Session `yaml:"sessions"`
}

// Session is one seeded table. Start is an absolute timestamp; StartOffset is
// a Go duration relative to load time and wins when both are set.
type Session struct {
	ID              string `yaml:"id"`
	Title           string `yaml:"title"`
	System          string `yaml:"system"`
	Description     string `yaml:"description"`
	Start           string `yaml:"start"`
	StartOffset     string `yaml:"start_offset"`
	End             string `yaml:"end"`
	DurationMinutes *int   `yaml:"duration_minutes"`
	SeatsTaken      int    `yaml:"seats_taken"`
	Capacity        int    `yaml:"capacity"`
	JoinURL         string `yaml:"join_url"`
	RRule           string `yaml:"rrule"`
	TimezoneLabel   string `yaml:"timezone_label"`
	CoverAsset      string `yaml:"cover_asset"`
}

// Default returns the embedded demo seed.
func Default() io.Reader {
	return bytes.NewReader(defaultSeed)
}

// Open returns the seed at path, or the embedded default when path is empty.
func Open(path string) (io.ReadCloser, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return io.NopCloser(Default()), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	return f, nil
}

// Decode parses a seed document into session records. Naive timestamps are
// read in loc; now anchors relative offsets.
func Decode(r io.Reader, now time.Time, loc *time.Location) ([]storage.SessionRecord, error) {
	if r == nil {
		return nil, errors.New("seed reader is required")
	}
	if loc == nil {
		loc = time.UTC
	}
	var file File
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode seed: %w", err)
	}

	records := make([]storage.SessionRecord, 0, len(file.Sessions))
	for i, entry := range file.Sessions {
		record, err := entry.record(now, loc)
		if err != nil {
			return nil, fmt.Errorf("seed session %d: %w", i, err)
		}
		records = append(records, record)
	}
	return records, nil
}

func (s Session) record(now time.Time, loc *time.Location) (storage.SessionRecord, error) {
	title := strings.TrimSpace(s.Title)
	if title == "" {
		return storage.SessionRecord{}, errors.New("title is required")
	}

	var start time.Time
	switch {
	case strings.TrimSpace(s.StartOffset) != "":
		offset, err := time.ParseDuration(strings.TrimSpace(s.StartOffset))
		if err != nil {
			return storage.SessionRecord{}, fmt.Errorf("parse start_offset: %w", err)
		}
		start = now.Add(offset).Truncate(time.Minute)
	case strings.TrimSpace(s.Start) != "":
		instant, err := schedule.ParseInstantIn(s.Start, loc)
		if err != nil {
			return storage.SessionRecord{}, err
		}
		start = instant.Time()
	default:
		return storage.SessionRecord{}, errors.New("start or start_offset is required")
	}

	record := storage.SessionRecord{
		ID:              strings.TrimSpace(s.ID),
		Title:           title,
		System:          s.System,
		Description:     s.Description,
		Start:           start,
		DurationMinutes: s.DurationMinutes,
		SeatsTaken:      s.SeatsTaken,
		Capacity:        s.Capacity,
		JoinURL:         s.JoinURL,
		Rule:            s.RRule,
		TimezoneLabel:   s.TimezoneLabel,
		CoverAssetID:    s.CoverAsset,
	}
	if strings.TrimSpace(s.End) != "" {
		end, err := schedule.ParseInstantIn(s.End, loc)
		if err != nil {
			return storage.SessionRecord{}, err
		}
		endTime := end.Time()
		record.End = &endTime
	}
	if rule := strings.TrimSpace(s.RRule); rule != "" {
		series := recurrence.Series{Rule: rule, Anchor: schedule.NewInstant(start)}
		if err := series.Validate(); err != nil {
			return storage.SessionRecord{}, err
		}
	}
	return record, nil
}

// Apply writes records into store when it holds no sessions yet and returns
// how many were written. Records without an id get a generated one.
func Apply(ctx context.Context, store storage.SessionStore, records []storage.SessionRecord) (int, error) {
	if store == nil {
		return 0, errors.New("session store is required")
	}
	count, err := store.CountSessions(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}
	for i, record := range records {
		if record.ID == "" {
			generated, err := id.NewID()
			if err != nil {
				return i, err
			}
			record.ID = generated
		}
		if err := store.PutSession(ctx, record); err != nil {
			return i, fmt.Errorf("seed session %q: %w", record.Title, err)
		}
	}
	return len(records), nil
}
