package gateway

import (
	"net/http"

	"github.com/google/uuid"
)

// Source provides the current bearer credential. The bool result is false
// while the session is not authenticated, in which case outbound requests
// must not carry a token.
type Source interface {
	BearerToken() (string, bool)
}

// Transport decorates outbound requests with the current bearer credential
// and a request correlation ID. It implements http.RoundTripper so any
// feature client (portfolio, alerts, news) can be pointed at protected
// endpoints without duplicating the decoration rule.
type Transport struct {
	source Source
	base   http.RoundTripper
}

// NewTransport wraps base with bearer decoration from source. A nil base
// falls back to http.DefaultTransport.
func NewTransport(source Source, base http.RoundTripper) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Transport{source: source, base: base}
}

// RoundTrip implements http.RoundTripper. The request is cloned before
// mutation, per the RoundTripper contract.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	if token, ok := t.source.BearerToken(); ok {
		clone.Header.Set("Authorization", "Bearer "+token)
	} else {
		clone.Header.Del("Authorization")
	}
	if clone.Header.Get("X-Request-ID") == "" {
		clone.Header.Set("X-Request-ID", uuid.NewString())
	}
	return t.base.RoundTrip(clone)
}
