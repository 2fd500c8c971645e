package app

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	module "github.com/louisbranch/tablekit/internal/services/web/module"
)

func TestComposeRejectsDuplicateModulePrefix(t *testing.T) {
	t.Parallel()

	_, err := Compose(ComposeInput{
		Modules: []module.Module{
			stubModule{id: "one", mount: module.Mount{Prefix: "/one/", Handler: noContent()}},
			stubModule{id: "two", mount: module.Mount{Prefix: "one", Handler: noContent()}},
		},
	})
	if err == nil {
		t.Fatalf("expected duplicate prefix error")
	}
}

func TestComposeRejectsInvalidMounts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		feature module.Module
	}{
		{name: "nil module", feature: nil},
		{name: "empty prefix", feature: stubModule{id: "x", mount: module.Mount{Handler: noContent()}}},
		{name: "nil handler", feature: stubModule{id: "x", mount: module.Mount{Prefix: "/x/"}}},
		{name: "mount error", feature: stubModule{id: "x", err: errors.New("boom")}},
	}
	for _, tc := range tests {
		if _, err := Compose(ComposeInput{Modules: []module.Module{tc.feature}}); err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
}

func TestComposeMountsNormalizedPrefix(t *testing.T) {
	t.Parallel()

	h, err := Compose(ComposeInput{
		Modules: []module.Module{stubModule{id: "schedule", mount: module.Mount{Prefix: "schedule", Handler: noContent()}}},
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/schedule/events/1", nil))
	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNoContent)
	}
}

func TestComposeRejectsCrossOriginPosts(t *testing.T) {
	t.Parallel()

	h, err := Compose(ComposeInput{
		Modules: []module.Module{stubModule{id: "chat", mount: module.Mount{Prefix: "/chat/", Handler: noContent()}}},
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "http://tables.example.test/chat/rooms/1/messages", nil)
	req.Header.Set("Origin", "http://evil.example.test")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("cross-origin status = %d, want %d", rr.Code, http.StatusForbidden)
	}

	req = httptest.NewRequest(http.MethodPost, "http://tables.example.test/chat/rooms/1/messages", nil)
	req.Header.Set("Origin", "http://tables.example.test")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("same-origin status = %d, want %d", rr.Code, http.StatusNoContent)
	}
}

type stubModule struct {
	id    string
	mount module.Mount
	err   error
}

func (m stubModule) ID() string { return m.id }

func (m stubModule) Mount(module.Dependencies) (module.Mount, error) {
	return m.mount, m.err
}

func noContent() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}
