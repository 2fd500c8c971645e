// Package routepath owns the URL layout of the web surfaces.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root   = "/"
	Health = "/up"
	Static = "/static/"

	SchedulePrefix         = "/schedule/"
	ActivityPrefix         = "/activity/"
	ActivitySchedulePrefix = "/activity/schedule/"
	ChatPrefix             = "/chat/"
)

// Schedule is the web schedule page.
func Schedule() string { return SchedulePrefix }

// ActivitySchedule is the embedded-activity schedule page.
func ActivitySchedule() string { return ActivitySchedulePrefix }

// Event is the page of one session under the given schedule prefix.
func Event(prefix, eventID string) string {
	return schedulePrefix(prefix) + "events/" + escape(eventID)
}

// EventCard is the HTMX card fragment of a session.
func EventCard(prefix, eventID string) string {
	return Event(prefix, eventID) + "/card"
}

// EventJoin is the Join Now target of a session.
func EventJoin(prefix, eventID string) string {
	return Event(prefix, eventID) + "/join"
}

// EventReminder is the iCalendar download of a session.
func EventReminder(prefix, eventID string) string {
	return Event(prefix, eventID) + "/reminder.ics"
}

// ChatRoom is the chat panel fragment of a room.
func ChatRoom(roomID string) string {
	return ChatPrefix + "rooms/" + escape(roomID)
}

// ChatMessages receives posted chat messages for a room.
func ChatMessages(roomID string) string {
	return ChatRoom(roomID) + "/messages"
}

// WithQuery appends key=value to path, replacing any existing value.
func WithQuery(path, key, value string) string {
	parsed, err := url.Parse(path)
	if err != nil || strings.TrimSpace(key) == "" {
		return path
	}
	query := parsed.Query()
	if value == "" {
		query.Del(key)
	} else {
		query.Set(key, value)
	}
	parsed.RawQuery = query.Encode()
	return parsed.String()
}

func schedulePrefix(prefix string) string {
	if prefix == ActivitySchedulePrefix {
		return ActivitySchedulePrefix
	}
	return SchedulePrefix
}

func escape(segment string) string {
	return url.PathEscape(strings.TrimSpace(segment))
}
