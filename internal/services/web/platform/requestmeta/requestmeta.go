// Package requestmeta resolves the origin a request was addressed to.
package requestmeta

import (
	"net/http"
	"net/url"
	"strings"
)

// SchemePolicy controls how the request scheme is resolved.
//
// X-Forwarded-Proto is only read when TrustForwardedProto is set.
type SchemePolicy struct {
	TrustForwardedProto bool
}

// Origin is a normalized scheme, host and port triple.
type Origin struct {
	Scheme string
	Host   string
	Port   string
}

// String renders the origin as a URL prefix, omitting default ports.
func (o Origin) String() string {
	if o.Scheme == "" || o.Host == "" {
		return ""
	}
	host := o.Host
	if strings.Contains(host, ":") {
		host = "[" + host + "]"
	}
	if o.Port != "" && o.Port != defaultPort(o.Scheme) {
		host += ":" + o.Port
	}
	return o.Scheme + "://" + host
}

func (o Origin) matches(other Origin) bool {
	return o.Scheme != "" && o.Host != "" && o.Port != "" &&
		o.Scheme == other.Scheme && o.Host == other.Host && o.Port == other.Port
}

// RequestOrigin returns the origin r was addressed to.
func RequestOrigin(r *http.Request, policy SchemePolicy) Origin {
	if r == nil {
		return Origin{}
	}
	scheme := requestScheme(r, policy)
	host, port := splitHost(r.Host)
	if host == "" && r.URL != nil {
		host, port = splitHost(r.URL.Host)
	}
	if host == "" {
		return Origin{}
	}
	if port == "" {
		port = defaultPort(scheme)
	}
	return Origin{Scheme: scheme, Host: host, Port: port}
}

// AbsoluteURL resolves path against the request origin. It returns path
// unchanged when the origin is unknown.
func AbsoluteURL(r *http.Request, policy SchemePolicy, path string) string {
	base := RequestOrigin(r, policy).String()
	if base == "" {
		return path
	}
	return base + "/" + strings.TrimLeft(path, "/")
}

// IsHTTPS reports whether a request should be treated as HTTPS.
func IsHTTPS(r *http.Request) bool {
	return IsHTTPSWithPolicy(r, SchemePolicy{})
}

// IsHTTPSWithPolicy reports whether a request should be treated as HTTPS.
func IsHTTPSWithPolicy(r *http.Request, policy SchemePolicy) bool {
	return r != nil && requestScheme(r, policy) == "https"
}

// HasSameOriginProof reports whether Origin or Referer proves same-origin.
func HasSameOriginProof(r *http.Request) bool {
	return HasSameOriginProofWithPolicy(r, SchemePolicy{})
}

// HasSameOriginProofWithPolicy reports whether Origin, or Referer when Origin
// is absent, names the request origin.
func HasSameOriginProofWithPolicy(r *http.Request, policy SchemePolicy) bool {
	target := RequestOrigin(r, policy)
	if target.Host == "" {
		return false
	}
	claim := strings.TrimSpace(r.Header.Get("Origin"))
	if claim == "" {
		claim = strings.TrimSpace(r.Header.Get("Referer"))
	}
	if claim == "" {
		return false
	}
	return parseOrigin(claim).matches(target)
}

func parseOrigin(raw string) Origin {
	parsed, err := url.Parse(raw)
	if err != nil {
		return Origin{}
	}
	scheme := strings.ToLower(strings.TrimSpace(parsed.Scheme))
	port := strings.TrimSpace(parsed.Port())
	if port == "" {
		port = defaultPort(scheme)
	}
	return Origin{
		Scheme: scheme,
		Host:   strings.ToLower(strings.TrimSpace(parsed.Hostname())),
		Port:   port,
	}
}

func requestScheme(r *http.Request, policy SchemePolicy) string {
	if policy.TrustForwardedProto {
		if forwarded := strings.ToLower(strings.TrimSpace(r.Header.Get("X-Forwarded-Proto"))); forwarded == "http" || forwarded == "https" {
			return forwarded
		}
	}
	if r.URL != nil {
		if scheme := strings.ToLower(strings.TrimSpace(r.URL.Scheme)); scheme == "http" || scheme == "https" {
			return scheme
		}
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

func defaultPort(scheme string) string {
	switch scheme {
	case "https":
		return "443"
	case "http":
		return "80"
	default:
		return ""
	}
}

func splitHost(rawHost string) (string, string) {
	parsed, err := url.Parse("//" + strings.TrimSpace(rawHost))
	if err != nil {
		return "", ""
	}
	return strings.ToLower(strings.TrimSpace(parsed.Hostname())), strings.TrimSpace(parsed.Port())
}
