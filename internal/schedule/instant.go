// Package schedule classifies a table session against the current time.
//
// Every function in this package is pure: the reference time is always passed
// in explicitly. Callers read the wall clock once at the request boundary (see
// Clock) and thread the resulting Instant through rendering.
package schedule

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidInstant reports a value that could not be parsed as a point in time.
var ErrInvalidInstant = errors.New("invalid instant")

// zonedLayouts carry their own offset.
var zonedLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
}

// naiveLayouts are interpreted in the location supplied by the caller.
var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Instant is a validated point in time.
//
// The zero Instant is not a valid schedule value; constructors never return it
// without an error.
type Instant struct {
	t time.Time
}

// NewInstant wraps t as an Instant.
func NewInstant(t time.Time) Instant {
	return Instant{t: t}
}

// ParseInstant parses value as an Instant. Values without an explicit offset
// are read as UTC.
func ParseInstant(value string) (Instant, error) {
	return ParseInstantIn(value, time.UTC)
}

// ParseInstantIn parses value as an Instant. Values without an explicit
// offset are read in loc.
func ParseInstantIn(value string, loc *time.Location) (Instant, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Instant{}, fmt.Errorf("%w: empty value", ErrInvalidInstant)
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return Instant{t: t}, nil
		}
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, trimmed, loc); err == nil {
			return Instant{t: t}, nil
		}
	}
	return Instant{}, fmt.Errorf("%w: %q", ErrInvalidInstant, trimmed)
}

// MustParseInstant is ParseInstant for fixtures and seeds; it panics on error.
func MustParseInstant(value string) Instant {
	instant, err := ParseInstant(value)
	if err != nil {
		panic(err)
	}
	return instant
}

// Time returns the wrapped time.
func (i Instant) Time() time.Time { return i.t }

// IsZero reports whether i holds no time.
func (i Instant) IsZero() bool { return i.t.IsZero() }

// Add returns i shifted by d.
func (i Instant) Add(d time.Duration) Instant { return Instant{t: i.t.Add(d)} }

// Sub returns the signed duration i-other.
func (i Instant) Sub(other Instant) time.Duration { return i.t.Sub(other.t) }

// Before reports whether i is strictly before other.
func (i Instant) Before(other Instant) bool { return i.t.Before(other.t) }

// After reports whether i is strictly after other.
func (i Instant) After(other Instant) bool { return i.t.After(other.t) }

// Equal reports whether i and other are the same point in time.
func (i Instant) Equal(other Instant) bool { return i.t.Equal(other.t) }

// In returns the same instant presented in loc.
func (i Instant) In(loc *time.Location) Instant {
	if loc == nil {
		return i
	}
	return Instant{t: i.t.In(loc)}
}

// Location returns the presentation location of i.
func (i Instant) Location() *time.Location { return i.t.Location() }

// String formats i as RFC 3339.
func (i Instant) String() string {
	if i.t.IsZero() {
		return ""
	}
	return i.t.Format(time.RFC3339)
}
