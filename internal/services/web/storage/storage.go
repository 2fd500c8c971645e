// Package storage defines persistence contracts for scheduled table sessions.
package storage

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound indicates a requested session record is missing.
	ErrNotFound = errors.New("record not found")
	// ErrConflict indicates a write conflicts with uniqueness constraints.
	ErrConflict = errors.New("record conflict")
)

// SessionRecord stores one scheduled table session.
//
// End and DurationMinutes are both optional; when neither is set the session
// is a point-in-time start. Rule, when set, is an RRULE anchored on Start.
type SessionRecord struct {
	ID              string
	Title           string
	System          string
	Description     string
	Start           time.Time
	End             *time.Time
	DurationMinutes *int
	SeatsTaken      int
	Capacity        int
	JoinURL         string
	Rule            string
	TimezoneLabel   string
	CoverAssetID    string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// SessionStore persists scheduled sessions.
type SessionStore interface {
	PutSession(ctx context.Context, record SessionRecord) error
	GetSession(ctx context.Context, id string) (SessionRecord, error)
	ListSessions(ctx context.Context) ([]SessionRecord, error)
	CountSessions(ctx context.Context) (int, error)
}
