package apiclient

import (
	"net/http"

	"github.com/google/uuid"
)

// TokenSource yields the bearer token to attach to outgoing requests, or ""
// when unauthenticated. *session.Manager satisfies it.
type TokenSource interface {
	Token() string
}

// TokenSourceFunc adapts a plain function to a TokenSource.
type TokenSourceFunc func() string

func (f TokenSourceFunc) Token() string { return f() }

// Authenticator is an http.RoundTripper that attaches the current bearer
// token to every outgoing request and reports 401 responses through an
// injectable callback, so tests can assert the forced-logout path fires
// without a real network stack.
//
// The callback receives the rejected token; the session manager ignores the
// signal unless that token is still current, which keeps concurrent
// rejections from clearing a fresh session. The original response is
// returned unchanged; the request is never retried here.
type Authenticator struct {
	next           http.RoundTripper
	source         TokenSource
	onUnauthorized func(rejectedToken string)
}

func NewAuthenticator(next http.RoundTripper, source TokenSource, onUnauthorized func(string)) *Authenticator {
	if next == nil {
		next = http.DefaultTransport
	}
	return &Authenticator{next: next, source: source, onUnauthorized: onUnauthorized}
}

func (a *Authenticator) RoundTrip(req *http.Request) (*http.Response, error) {
	var token string
	if a.source != nil {
		token = a.source.Token()
	}

	// per RoundTripper contract the original request is not mutated
	req2 := req.Clone(req.Context())
	if token != "" && req2.Header.Get("Authorization") == "" {
		req2.Header.Set("Authorization", "Bearer "+token)
	}
	req2.Header.Set("X-Request-ID", uuid.New().String())

	resp, err := a.next.RoundTrip(req2)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusUnauthorized && token != "" && a.onUnauthorized != nil {
		a.onUnauthorized(token)
	}
	return resp, nil
}
