package icons

import "strings"

// ID identifies an icon independently of its artwork.
type ID string

const (
	IDGeneric  ID = "generic"
	IDSession  ID = "session"
	IDCalendar ID = "calendar"
	IDClock    ID = "clock"
	IDReminder ID = "reminder"
	IDLive     ID = "live"
	IDJoin     ID = "join"
	IDSeats    ID = "seats"
	IDChat     ID = "chat"
	IDSend     ID = "send"
	IDRoll     ID = "roll"
)

// Definition describes a core icon entry.
type Definition struct {
	ID          ID
	Name        string
	Description string
}

var catalog = []Definition{
	{ID: IDGeneric, Name: "Generic", Description: "Default icon for uncategorized entries."},
	{ID: IDSession, Name: "Session", Description: "Scheduled play sessions."},
	{ID: IDCalendar, Name: "Calendar", Description: "Session dates."},
	{ID: IDClock, Name: "Clock", Description: "Start times and countdowns."},
	{ID: IDReminder, Name: "Reminder", Description: "Set Reminder action."},
	{ID: IDLive, Name: "Live", Description: "Sessions in progress."},
	{ID: IDJoin, Name: "Join", Description: "Join Now action."},
	{ID: IDSeats, Name: "Seats", Description: "Seat counts and table capacity."},
	{ID: IDChat, Name: "Chat", Description: "Table chat and communication."},
	{ID: IDSend, Name: "Send", Description: "Send a chat message."},
	{ID: IDRoll, Name: "Roll", Description: "Game systems and dice."},
}

// Catalog returns a copy of the icon catalog definitions.
func Catalog() []Definition {
	result := make([]Definition, len(catalog))
	copy(result, catalog)
	return result
}

// Lookup returns the definition for id.
func Lookup(id ID) (Definition, bool) {
	for _, def := range catalog {
		if def.ID == id {
			return def, true
		}
	}
	return Definition{}, false
}

// CatalogMarkdown renders the icon catalog as markdown.
func CatalogMarkdown() string {
	var builder strings.Builder
	builder.WriteString("# Icon Catalog\n\n")
	builder.WriteString("| Icon ID | Lucide | Name | Description |\n")
	builder.WriteString("| --- | --- | --- | --- |\n")
	for _, def := range catalog {
		builder.WriteString("| ")
		builder.WriteString(string(def.ID))
		builder.WriteString(" | ")
		builder.WriteString(LucideNameOrDefault(def.ID))
		builder.WriteString(" | ")
		builder.WriteString(def.Name)
		builder.WriteString(" | ")
		builder.WriteString(def.Description)
		builder.WriteString(" |\n")
	}
	return builder.String()
}
