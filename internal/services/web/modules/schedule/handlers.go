package schedule

import (
	"net/http"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/louisbranch/tablekit/internal/platform/assets/catalog"
	"github.com/louisbranch/tablekit/internal/platform/assets/imagecdn"
	apperrors "github.com/louisbranch/tablekit/internal/platform/errors"
	"github.com/louisbranch/tablekit/internal/schedule"
	"github.com/louisbranch/tablekit/internal/schedule/reminder"
	module "github.com/louisbranch/tablekit/internal/services/web/module"
	"github.com/louisbranch/tablekit/internal/services/web/modules/chat"
	"github.com/louisbranch/tablekit/internal/services/web/occurrence"
	"github.com/louisbranch/tablekit/internal/services/web/platform/httpx"
	"github.com/louisbranch/tablekit/internal/services/web/platform/pagerender"
	"github.com/louisbranch/tablekit/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/tablekit/internal/services/web/platform/weberror"
	"github.com/louisbranch/tablekit/internal/services/web/routepath"
	"github.com/louisbranch/tablekit/internal/ui/loc"
	"github.com/louisbranch/tablekit/internal/ui/organisms"
	"github.com/louisbranch/tablekit/internal/ui/pages"
)

const (
	coverAssetVersion = "v1"
	coverWidthPX      = 640
	// soonRefresh polls cards that are live or about to start.
	soonRefresh = 30 * time.Second
)

type handlers struct {
	svc     service
	deps    module.Dependencies
	prefix  string
	surface pagerender.Surface
	policy  requestmeta.SchemePolicy
}

func newHandlers(svc service, deps module.Dependencies, m Module) handlers {
	return handlers{svc: svc, deps: deps, prefix: m.prefix, surface: m.surface, policy: m.policy}
}

// request carries what every handler resolves first.
type request struct {
	loc  loc.Localizer
	lang string
	now  schedule.Instant
}

func (h handlers) begin(w http.ResponseWriter, r *http.Request) (request, bool) {
	l, lang := pagerender.Localizer(w, r)
	zone, err := resolveLocation(w, r, h.deps.Location)
	if err != nil {
		h.writeError(w, r, err, l, lang)
		return request{}, false
	}
	return request{loc: l, lang: lang, now: schedule.NowIn(h.deps.Clock, zone)}, true
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	req, ok := h.begin(w, r)
	if !ok {
		return
	}
	groups, err := h.svc.list(r.Context(), req.now)
	if err != nil {
		h.writeError(w, r, err, req.loc, req.lang)
		return
	}
	view := pages.SchedulePageView{
		Live:     h.cards(groups.Live, req),
		Upcoming: h.cards(groups.Upcoming, req),
		Ended:    h.cards(groups.Ended, req),
		Timezone: req.now.Location().String(),
		Loc:      req.loc,
	}
	h.writePage(w, r, req, loc.T(req.loc, "schedule.title"), pages.SchedulePage(view))
}

func (h handlers) handleEvent(w http.ResponseWriter, r *http.Request) {
	req, ok := h.begin(w, r)
	if !ok {
		return
	}
	occ, err := h.svc.get(r.Context(), r.PathValue("eventID"))
	if err != nil {
		h.writeError(w, r, err, req.loc, req.lang)
		return
	}
	view := pages.EventPageView{
		Card: h.card(occ, req),
		Chat: chat.PanelProps(h.deps.Chat, chat.PanelInput{
			RoomID:   occ.ID,
			ClientID: chat.ClientID(r),
			Now:      req.now.Time(),
			Loc:      req.loc,
		}),
		BackURL: h.prefix,
		Loc:     req.loc,
	}
	h.writePage(w, r, req, occ.Record.Title, pages.EventPage(view))
}

func (h handlers) handleCard(w http.ResponseWriter, r *http.Request) {
	req, ok := h.begin(w, r)
	if !ok {
		return
	}
	occ, err := h.svc.get(r.Context(), r.PathValue("eventID"))
	if err != nil {
		h.writeError(w, r, err, req.loc, req.lang)
		return
	}
	if err := pagerender.WriteFragment(w, r, http.StatusOK, organisms.EventCard(h.card(occ, req))); err != nil {
		h.deps.Log().Printf("render event card id=%s err=%v", occ.ID, err)
	}
}

// handleJoin sends the viewer to the table while the session is live.
func (h handlers) handleJoin(w http.ResponseWriter, r *http.Request) {
	req, ok := h.begin(w, r)
	if !ok {
		return
	}
	occ, err := h.svc.get(r.Context(), r.PathValue("eventID"))
	if err != nil {
		h.writeError(w, r, err, req.loc, req.lang)
		return
	}
	if !schedule.IsLive(occ.Event, req.now) {
		h.writeError(w, r, apperrors.EK(apperrors.KindConflict, "errors.schedule.not_live", "session is not live"), req.loc, req.lang)
		return
	}
	joinURL := strings.TrimSpace(occ.Record.JoinURL)
	if joinURL == "" {
		h.writeError(w, r, apperrors.EK(apperrors.KindConflict, "errors.schedule.no_join_url", "session has no join url"), req.loc, req.lang)
		return
	}
	h.deps.Log().Printf("session join id=%s surface=%s", occ.ID, h.prefix)
	httpx.WriteRedirect(w, r, joinURL)
}

// handleReminder downloads the session as an iCalendar event with an alarm.
func (h handlers) handleReminder(w http.ResponseWriter, r *http.Request) {
	req, ok := h.begin(w, r)
	if !ok {
		return
	}
	occ, err := h.svc.get(r.Context(), r.PathValue("eventID"))
	if err != nil {
		h.writeError(w, r, err, req.loc, req.lang)
		return
	}
	doc, err := reminder.Build(reminder.Session{
		UID:         occ.ID + "@tablekit",
		Title:       occ.Record.Title,
		Description: occ.Record.Description,
		URL:         requestmeta.AbsoluteURL(r, h.policy, routepath.Event(h.prefix, occ.ID)),
		Event:       occ.Event,
	}, req.now)
	if err != nil {
		h.writeError(w, r, apperrors.Wrap(apperrors.KindUnknown, "", "build reminder", err), req.loc, req.lang)
		return
	}
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+reminderFilename(occ.ID)+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(doc))
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	l, lang := pagerender.Localizer(w, r)
	h.writeError(w, r, apperrors.E(apperrors.KindNotFound, "page not found"), l, lang)
}

func (h handlers) cards(items []occurrence.Occurrence, req request) []organisms.EventCardProps {
	out := make([]organisms.EventCardProps, 0, len(items))
	for _, occ := range items {
		out = append(out, h.card(occ, req))
	}
	return out
}

// card maps an occurrence onto card props. Times and day labels use the
// request zone, which is also what the timezone line names.
func (h handlers) card(occ occurrence.Occurrence, req request) organisms.EventCardProps {
	summary := schedule.Describe(occ.Event, req.now)
	props := organisms.EventCardProps{
		ID:           occ.ID,
		Title:        occ.Record.Title,
		System:       occ.Record.System,
		Description:  occ.Record.Description,
		CoverURL:     h.coverURL(occ),
		Summary:      summary,
		Timezone:     req.now.Location().String(),
		SeatsTaken:   occ.Record.SeatsTaken,
		SeatCapacity: occ.Record.Capacity,
		Recurring:    occ.Recurring,
		OnClick:      routepath.Event(h.prefix, occ.ID),
		OnRemind:     routepath.EventReminder(h.prefix, occ.ID),
		Localizer:    req.loc,
	}
	if strings.TrimSpace(occ.Record.JoinURL) != "" {
		props.OnJoin = routepath.EventJoin(h.prefix, occ.ID)
	}
	if summary.Phase != schedule.PhaseEnded {
		props.RefreshURL = routepath.EventCard(h.prefix, occ.ID)
		props.RefreshEvery = refreshEvery(summary, req.now)
	}
	return props
}

func refreshEvery(summary schedule.Summary, now schedule.Instant) time.Duration {
	if summary.Live() {
		return soonRefresh
	}
	if summary.Phase == schedule.PhaseUpcoming && summary.Start.Sub(now) < time.Hour {
		return soonRefresh
	}
	return organisms.DefaultRefreshEvery
}

// coverURL resolves the session cover through the cover catalog. Covers are
// only shown when an asset CDN is configured.
func (h handlers) coverURL(occ occurrence.Occurrence) string {
	if !h.deps.CDN.Configured() {
		return ""
	}
	setID, assetID, err := h.deps.Covers.ResolveSelection(catalog.SelectionInput{
		EntityType: catalog.EntitySession,
		EntityID:   occ.Record.ID,
		AssetID:    occ.Record.CoverAssetID,
	})
	if err != nil {
		return ""
	}
	key, err := catalog.AssetKey(coverAssetVersion, catalog.DomainSessionCovers, setID, assetID)
	if err != nil {
		return ""
	}
	url, err := h.deps.CDN.URL(imagecdn.Request{
		AssetID:   key,
		Extension: ".png",
		Delivery:  &imagecdn.Delivery{WidthPX: coverWidthPX},
	})
	if err != nil {
		return ""
	}
	return url
}

func (h handlers) writePage(w http.ResponseWriter, r *http.Request, req request, title string, fragment templ.Component) {
	page := h.page(req.loc, req.lang)
	page.Title = title
	page.Fragment = fragment
	if err := pagerender.WriteModulePage(w, r, page); err != nil {
		h.deps.Log().Printf("render schedule page path=%s err=%v", r.URL.Path, err)
	}
}

func (h handlers) writeError(w http.ResponseWriter, r *http.Request, err error, l loc.Localizer, lang string) {
	if apperrors.HTTPStatus(err) >= http.StatusInternalServerError {
		h.deps.Log().Printf("schedule request failed path=%s err=%v", r.URL.Path, err)
	}
	weberror.WriteModuleError(w, r, err, h.page(l, lang))
}

func (h handlers) page(l loc.Localizer, lang string) pagerender.ModulePage {
	return pagerender.ModulePage{Surface: h.surface, HomeURL: h.prefix, Loc: l, Lang: lang}
}

func reminderFilename(id string) string {
	var b strings.Builder
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	return "tablekit-" + b.String() + ".ics"
}
