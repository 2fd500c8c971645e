package chat

import (
	"net/http"
	"strings"

	apperrors "github.com/louisbranch/tablekit/internal/platform/errors"
	module "github.com/louisbranch/tablekit/internal/services/web/module"
	"github.com/louisbranch/tablekit/internal/services/web/occurrence"
	"github.com/louisbranch/tablekit/internal/services/web/platform/httpx"
	"github.com/louisbranch/tablekit/internal/services/web/platform/pagerender"
	"github.com/louisbranch/tablekit/internal/services/web/platform/weberror"
	"github.com/louisbranch/tablekit/internal/services/web/routepath"
	"github.com/louisbranch/tablekit/internal/ui/loc"
	"github.com/louisbranch/tablekit/internal/ui/organisms"
)

// maxFormBytes bounds a posted message form.
const maxFormBytes = 16 << 10

type handlers struct {
	deps module.Dependencies
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{deps: deps}
}

// room maps the path room id onto a scheduled occurrence. Rooms exist only
// for sittings the schedule knows about.
func (h handlers) room(r *http.Request) (string, error) {
	roomID := r.PathValue("roomID")
	if !validRoomID(roomID) {
		return "", apperrors.E(apperrors.KindNotFound, "chat room not found")
	}
	occ, err := occurrence.Resolve(r.Context(), h.deps.Sessions, roomID)
	if err != nil {
		return "", err
	}
	return occ.ID, nil
}

func (h handlers) handlePanel(w http.ResponseWriter, r *http.Request) {
	l, lang := pagerender.Localizer(w, r)
	roomID, err := h.room(r)
	if err != nil {
		h.writeError(w, r, err, l, lang)
		return
	}
	props := PanelProps(h.deps.Chat, PanelInput{
		RoomID:   roomID,
		ClientID: ClientID(r),
		Now:      h.deps.Now().Time(),
		Loc:      l,
	})
	h.writePanel(w, r, http.StatusOK, props, lang)
}

func (h handlers) handlePost(w http.ResponseWriter, r *http.Request) {
	l, lang := pagerender.Localizer(w, r)
	roomID, err := h.room(r)
	if err != nil {
		h.writeError(w, r, err, l, lang)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		h.writeError(w, r, apperrors.Wrap(apperrors.KindInvalidInput, "", "parse chat form", err), l, lang)
		return
	}
	clientID, err := ensureClientID(w, r)
	if err != nil {
		h.writeError(w, r, apperrors.Wrap(apperrors.KindUnknown, "", "issue chat client id", err), l, lang)
		return
	}

	in := PanelInput{RoomID: roomID, ClientID: clientID, Loc: l}
	msg, err := h.deps.Chat.Post(roomID, r.PostForm.Get("author"), clientID, r.PostForm.Get("body"))
	if err != nil {
		if apperrors.KindOf(err) != apperrors.KindInvalidInput {
			h.writeError(w, r, err, l, lang)
			return
		}
		in.Now = h.deps.Now().Time()
		in.Error = weberror.PublicMessage(l, err)
		h.writePanel(w, r, apperrors.HTTPStatus(err), PanelProps(h.deps.Chat, in), lang)
		return
	}
	h.deps.Log().Printf("chat message posted room=%s message_id=%s", roomID, msg.ID)

	if !httpx.IsHTMXRequest(r) {
		http.Redirect(w, r, backURL(r, roomID), http.StatusSeeOther)
		return
	}
	in.Now = h.deps.Now().Time()
	h.writePanel(w, r, http.StatusOK, PanelProps(h.deps.Chat, in), lang)
}

// writePanel swaps the panel alone for HTMX and wraps it in the activity
// shell for plain navigation.
func (h handlers) writePanel(w http.ResponseWriter, r *http.Request, status int, props organisms.ChatPanelProps, lang string) {
	panel := organisms.ChatPanel(props)
	var err error
	if httpx.IsHTMXRequest(r) {
		err = pagerender.WriteFragment(w, r, status, panel)
	} else {
		err = pagerender.WriteModulePage(w, r, pagerender.ModulePage{
			Title:      loc.T(props.Localizer, "chat.title"),
			StatusCode: status,
			Surface:    pagerender.SurfaceActivity,
			Fragment:   panel,
			Loc:        props.Localizer,
			Lang:       lang,
		})
	}
	if err != nil {
		h.deps.Log().Printf("render chat panel room=%s err=%v", props.RoomID, err)
	}
}

func (h handlers) writeError(w http.ResponseWriter, r *http.Request, err error, l loc.Localizer, lang string) {
	weberror.WriteModuleError(w, r, err, pagerender.ModulePage{Surface: pagerender.SurfaceActivity, Loc: l, Lang: lang})
}

// backURL returns to the page that posted the form; same-origin is enforced
// by composition before the handler runs.
func backURL(r *http.Request, roomID string) string {
	if referer := strings.TrimSpace(r.Referer()); referer != "" {
		return referer
	}
	return routepath.ChatRoom(roomID)
}
