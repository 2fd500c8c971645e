package schedule

import "time"

// Clock reads the wall clock. Only request boundaries should hold one.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time { return time.Now() }

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time { return f() }

// FixedClock returns a Clock that always reports t.
func FixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}

// NowIn reads c once and presents the result in loc. A nil clock falls back to
// SystemClock and a nil location to UTC.
func NowIn(c Clock, loc *time.Location) Instant {
	if c == nil {
		c = SystemClock{}
	}
	if loc == nil {
		loc = time.UTC
	}
	return NewInstant(c.Now().In(loc))
}
