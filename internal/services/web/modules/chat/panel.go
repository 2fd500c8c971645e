package chat

import (
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/tablekit/internal/platform/id"
	"github.com/louisbranch/tablekit/internal/services/web/chatroom"
	"github.com/louisbranch/tablekit/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/tablekit/internal/services/web/routepath"
	"github.com/louisbranch/tablekit/internal/ui/loc"
	"github.com/louisbranch/tablekit/internal/ui/molecules"
	"github.com/louisbranch/tablekit/internal/ui/organisms"
)

const (
	// ClientCookie marks which posted messages belong to the browser.
	ClientCookie = "tablekit_chat"

	maxRoomIDLength = 64
)

// ClientID returns the browser's chat identity, or "" when it has none.
func ClientID(r *http.Request) string {
	if r == nil {
		return ""
	}
	cookie, err := r.Cookie(ClientCookie)
	if err != nil || !id.Valid(cookie.Value) {
		return ""
	}
	return cookie.Value
}

// ensureClientID returns the browser's chat identity, issuing one if needed.
func ensureClientID(w http.ResponseWriter, r *http.Request) (string, error) {
	if existing := ClientID(r); existing != "" {
		return existing, nil
	}
	issued, err := id.NewID()
	if err != nil {
		return "", err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     ClientCookie,
		Value:    issued,
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPS(r),
		SameSite: http.SameSiteLaxMode,
	})
	return issued, nil
}

// PanelInput is what a chat panel needs besides the room history.
type PanelInput struct {
	RoomID   string
	ClientID string
	Now      time.Time
	Error    string
	Loc      loc.Localizer
}

// PanelProps builds the chat panel of a room from its history.
func PanelProps(rooms *chatroom.Rooms, in PanelInput) organisms.ChatPanelProps {
	history := rooms.History(in.RoomID)
	messages := make([]molecules.ChatMessageView, 0, len(history))
	for _, msg := range history {
		messages = append(messages, molecules.ChatMessageView{
			ID:     msg.ID,
			Author: msg.Author,
			Body:   msg.Body,
			SentAt: msg.SentAt,
			Own:    in.ClientID != "" && msg.ClientID == in.ClientID,
		})
	}
	return organisms.ChatPanelProps{
		RoomID:     in.RoomID,
		Messages:   messages,
		Now:        in.Now,
		PostURL:    routepath.ChatMessages(in.RoomID),
		RefreshURL: routepath.ChatRoom(in.RoomID),
		MaxLength:  rooms.MaxLength(),
		Disabled:   rooms == nil,
		Error:      in.Error,
		Localizer:  in.Loc,
	}
}

func validRoomID(roomID string) bool {
	if roomID == "" || len(roomID) > maxRoomIDLength {
		return false
	}
	for _, r := range roomID {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case strings.ContainsRune("-_@", r):
		default:
			return false
		}
	}
	return true
}
