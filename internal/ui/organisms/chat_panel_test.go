package organisms

import (
	"testing"
	"time"

	"github.com/louisbranch/tablekit/internal/ui/molecules"
	"github.com/louisbranch/tablekit/internal/ui/uitest"
)

func TestChatPanelEmptyState(t *testing.T) {
	t.Parallel()

	doc := uitest.Render(t, ChatPanel(ChatPanelProps{RoomID: "r1", PostURL: "/chat/rooms/r1/messages", Now: now.Time()}))
	if uitest.Find(doc, "chat-empty") == nil {
		t.Fatal("expected empty state")
	}
	form := uitest.MustFind(t, doc, "chat-form")
	if got := uitest.Attr(form, "hx-post"); got != "/chat/rooms/r1/messages" {
		t.Fatalf("hx-post = %q", got)
	}
	if got := uitest.Attr(form, "hx-target"); got != "#chat-panel-r1" {
		t.Fatalf("hx-target = %q", got)
	}
}

func TestChatPanelRendersMessagesAndError(t *testing.T) {
	t.Parallel()

	doc := uitest.Render(t, ChatPanel(ChatPanelProps{
		RoomID: "r1",
		Now:    now.Time(),
		Messages: []molecules.ChatMessageView{
			{ID: "a", Author: "Rin", Body: "ready", SentAt: now.Time().Add(-time.Minute)},
			{ID: "b", Author: "Kai", Body: "rolling", SentAt: now.Time()},
		},
		MaxLength: 280,
		Error:     "Messages can't be empty.",
	}))
	if got := len(uitest.FindAll(doc, "chat-message")); got != 2 {
		t.Fatalf("messages = %d", got)
	}
	if uitest.Find(doc, "chat-empty") != nil {
		t.Fatal("unexpected empty state")
	}
	if got := uitest.Text(uitest.MustFind(t, doc, "chat-error")); got != "Messages can't be empty." {
		t.Fatalf("error = %q", got)
	}
	if got := uitest.Attr(uitest.MustFind(t, doc, "chat-input"), "maxlength"); got != "280" {
		t.Fatalf("maxlength = %q", got)
	}
}

func TestChatPanelDisabledDropsHooks(t *testing.T) {
	t.Parallel()

	doc := uitest.Render(t, ChatPanel(ChatPanelProps{RoomID: "r1", PostURL: "/post", RefreshURL: "/get", Disabled: true}))
	panel := uitest.MustFind(t, doc, "chat-panel")
	if uitest.AnyAttr(panel, "hx-post", "hx-get", "action") {
		t.Fatal("disabled panel kept an interaction hook")
	}
}
