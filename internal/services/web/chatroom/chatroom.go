// Package chatroom keeps a bounded in-memory message history per table room.
package chatroom

import (
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	apperrors "github.com/louisbranch/tablekit/internal/platform/errors"
	"github.com/louisbranch/tablekit/internal/platform/id"
	"github.com/louisbranch/tablekit/internal/schedule"
)

const (
	// DefaultHistory is how many messages a room keeps.
	DefaultHistory = 50
	// DefaultMaxLength caps a message body in runes.
	DefaultMaxLength = 500
	// DefaultMaxRooms caps how many rooms keep history at once.
	DefaultMaxRooms = 256
)

// Message is one posted chat line.
type Message struct {
	ID       string
	RoomID   string
	Author   string
	Body     string
	SentAt   time.Time
	ClientID string
}

// Options configures a Rooms registry.
type Options struct {
	History   int
	MaxLength int
	// MaxRooms bounds the rooms held in memory. Posting to a new room at the
	// cap evicts the room that went quiet longest.
	MaxRooms int
	Clock    schedule.Clock
}

// Rooms is safe for concurrent use.
type Rooms struct {
	mu        sync.Mutex
	rooms     map[string]*room
	seq       uint64
	history   int
	maxLength int
	maxRooms  int
	clock     schedule.Clock
}

type room struct {
	messages []Message
	// lastPost orders rooms for eviction.
	lastPost uint64
}

// New returns an empty registry.
func New(opts Options) *Rooms {
	if opts.History <= 0 {
		opts.History = DefaultHistory
	}
	if opts.MaxLength <= 0 {
		opts.MaxLength = DefaultMaxLength
	}
	if opts.MaxRooms <= 0 {
		opts.MaxRooms = DefaultMaxRooms
	}
	if opts.Clock == nil {
		opts.Clock = schedule.SystemClock{}
	}
	return &Rooms{
		rooms:     make(map[string]*room),
		history:   opts.History,
		maxLength: opts.MaxLength,
		maxRooms:  opts.MaxRooms,
		clock:     opts.Clock,
	}
}

// MaxLength is the longest accepted body in runes.
func (r *Rooms) MaxLength() int {
	if r == nil {
		return DefaultMaxLength
	}
	return r.maxLength
}

// Post appends a message to room and returns it. The oldest messages are
// dropped once the room exceeds its history.
func (r *Rooms) Post(roomID, author, clientID, body string) (Message, error) {
	if r == nil {
		return Message{}, apperrors.E(apperrors.KindUnavailable, "chat is not configured")
	}
	roomID = strings.TrimSpace(roomID)
	if roomID == "" {
		return Message{}, apperrors.E(apperrors.KindNotFound, "chat room is required")
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return Message{}, apperrors.EK(apperrors.KindInvalidInput, "errors.chat.empty_message", "message body is empty")
	}
	if utf8.RuneCountInString(body) > r.maxLength {
		return Message{}, apperrors.EK(apperrors.KindInvalidInput, "errors.chat.too_long", "message body is too long")
	}
	messageID, err := id.NewID()
	if err != nil {
		return Message{}, apperrors.Wrap(apperrors.KindUnknown, "", "post chat message", err)
	}

	msg := Message{
		ID:       messageID,
		RoomID:   roomID,
		Author:   strings.TrimSpace(author),
		Body:     body,
		SentAt:   r.clock.Now().UTC(),
		ClientID: clientID,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.rooms[roomID]
	if !ok {
		if len(r.rooms) >= r.maxRooms {
			r.evictQuietest()
		}
		current = &room{}
		r.rooms[roomID] = current
	}
	r.seq++
	current.lastPost = r.seq
	current.messages = append(current.messages, msg)
	if over := len(current.messages) - r.history; over > 0 {
		current.messages = append([]Message(nil), current.messages[over:]...)
	}
	return msg, nil
}

// Len returns how many rooms hold history.
func (r *Rooms) Len() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rooms)
}

func (r *Rooms) evictQuietest() {
	var (
		quietest string
		oldest   uint64
	)
	for id, candidate := range r.rooms {
		if quietest == "" || candidate.lastPost < oldest {
			quietest, oldest = id, candidate.lastPost
		}
	}
	delete(r.rooms, quietest)
}

// History returns a copy of room's messages, oldest first.
func (r *Rooms) History(roomID string) []Message {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.rooms[strings.TrimSpace(roomID)]
	if !ok || len(current.messages) == 0 {
		return nil
	}
	return append([]Message(nil), current.messages...)
}
