package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResolveTagPrecedence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		target string
		cookie string
		accept string
		want   string
	}{
		{name: "default", target: "/schedule/", want: "en-US"},
		{name: "accept language", target: "/schedule/", accept: "pt-BR,pt;q=0.9", want: "pt-BR"},
		{name: "accept base language", target: "/schedule/", accept: "pt", want: "pt-BR"},
		{name: "unsupported accept", target: "/schedule/", accept: "ja", want: "en-US"},
		{name: "cookie beats header", target: "/schedule/", cookie: "pt-BR", accept: "en-US", want: "pt-BR"},
		{name: "query beats cookie", target: "/schedule/?lang=en-US", cookie: "pt-BR", want: "en-US"},
		{name: "invalid query falls through", target: "/schedule/?lang=zz", cookie: "pt-BR", want: "pt-BR"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: LangCookie, Value: tc.cookie})
			}
			if tc.accept != "" {
				req.Header.Set("Accept-Language", tc.accept)
			}
			if got := ResolveTag(req).String(); got != tc.want {
				t.Fatalf("ResolveTag() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestResolveLocalizerRemembersQueryChoice(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/schedule/?lang=pt-BR", nil)
	l, lang := ResolveLocalizer(rr, req)
	if lang != "pt-BR" {
		t.Fatalf("lang = %q, want pt-BR", lang)
	}
	if got := l.Sprintf("schedule.action.join"); got != "Entrar agora" {
		t.Fatalf("join label = %q", got)
	}
	cookies := rr.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != LangCookie || cookies[0].Value != "pt-BR" {
		t.Fatalf("cookies = %+v, want language cookie", cookies)
	}

	rr = httptest.NewRecorder()
	_, _ = ResolveLocalizer(rr, httptest.NewRequest(http.MethodGet, "/schedule/", nil))
	if got := len(rr.Result().Cookies()); got != 0 {
		t.Fatalf("cookies = %d, want none without explicit choice", got)
	}
}

func TestLanguageOptionsLinkBackToCurrentPage(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/schedule/?tz=UTC", nil)
	options := LanguageOptions(req, nil, "pt-BR")
	if len(options) != 2 {
		t.Fatalf("len = %d, want 2", len(options))
	}
	if options[0].Tag != "en-US" || options[0].Active || options[0].Label != "English" {
		t.Fatalf("first option = %+v", options[0])
	}
	if options[1].URL != "/schedule/?lang=pt-BR&tz=UTC" || !options[1].Active {
		t.Fatalf("second option = %+v", options[1])
	}
}
