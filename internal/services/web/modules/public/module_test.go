package public

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	module "github.com/louisbranch/tablekit/internal/services/web/module"
	"github.com/louisbranch/tablekit/internal/services/web/routepath"
	"github.com/louisbranch/tablekit/internal/services/web/storage"
	"github.com/louisbranch/tablekit/internal/ui/uitest"
)

type countingStore struct {
	storage.SessionStore
	count int
	err   error
}

func (s countingStore) CountSessions(context.Context) (int, error) {
	return s.count, s.err
}

func mountPublic(t *testing.T, store storage.SessionStore) http.Handler {
	t.Helper()
	mount, err := New().Mount(module.Dependencies{Sessions: store, Logger: log.New(io.Discard, "", 0)})
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.Root {
		t.Fatalf("prefix = %q, want %q", mount.Prefix, routepath.Root)
	}
	return mount.Handler
}

func TestModuleIDReturnsPublic(t *testing.T) {
	t.Parallel()

	if got := New().ID(); got != "public" {
		t.Fatalf("ID() = %q, want %q", got, "public")
	}
}

func TestRootRedirects(t *testing.T) {
	t.Parallel()

	h := mountPublic(t, countingStore{})
	tests := []struct {
		path string
		want string
	}{
		{path: routepath.Root, want: routepath.Schedule()},
		{path: routepath.ActivityPrefix, want: routepath.ActivitySchedule()},
	}
	for _, tc := range tests {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tc.path, nil))
		if rr.Code != http.StatusSeeOther {
			t.Fatalf("%s status = %d, want %d", tc.path, rr.Code, http.StatusSeeOther)
		}
		if got := rr.Header().Get("Location"); got != tc.want {
			t.Fatalf("%s Location = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestRootRedirectForHTMX(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, routepath.Root, nil)
	req.Header.Set("HX-Request", "true")
	rr := httptest.NewRecorder()
	mountPublic(t, countingStore{}).ServeHTTP(rr, req)
	if got := rr.Header().Get("HX-Redirect"); got != routepath.Schedule() {
		t.Fatalf("HX-Redirect = %q", got)
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		store      storage.SessionStore
		wantStatus int
		wantBody   health
	}{
		{name: "ok", store: countingStore{count: 3}, wantStatus: http.StatusOK, wantBody: health{Status: "ok", Sessions: 3}},
		{name: "store failure", store: countingStore{err: errors.New("locked")}, wantStatus: http.StatusServiceUnavailable, wantBody: health{Status: "unavailable"}},
		{name: "no store", store: nil, wantStatus: http.StatusServiceUnavailable, wantBody: health{Status: "unavailable"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rr := httptest.NewRecorder()
			mountPublic(t, tc.store).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.Health, nil))
			if rr.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rr.Code, tc.wantStatus)
			}
			var got health
			if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if got != tc.wantBody {
				t.Fatalf("body = %+v, want %+v", got, tc.wantBody)
			}
		})
	}
}

func TestUnknownPathRendersNotFoundPage(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	mountPublic(t, countingStore{}).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	doc := uitest.Parse(t, rr.Body.String())
	uitest.MustFind(t, doc, "error-page")
	if got := uitest.Text(uitest.MustFind(t, doc, "error-status")); got != "404" {
		t.Fatalf("status text = %q", got)
	}
}
