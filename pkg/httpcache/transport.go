package httpcache

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/socialpanel/cachekit/pkg/cache"
)

// Entry is a cached HTTP response: status, headers, and the full body.
type Entry struct {
	Status int         `json:"status"`
	Header http.Header `json:"header"`
	Body   []byte      `json:"body"`
}

// Transport is an http.RoundTripper that serves repeated GET requests
// from an in-memory cache. Only 200 responses are stored; everything
// else passes through untouched.
type Transport struct {
	next  http.RoundTripper
	cache *cache.Cache[*Entry]
	ttl   time.Duration
}

// Option configures the transport.
type Option func(*Transport)

// WithTransport sets the underlying round tripper, defaulting to
// http.DefaultTransport.
func WithTransport(rt http.RoundTripper) Option {
	if rt == nil {
		panic("httpcache: WithTransport requires a non-nil round tripper")
	}
	return func(t *Transport) { t.next = rt }
}

// WithTTL overrides the cache's default TTL for stored responses.
func WithTTL(d time.Duration) Option {
	if d <= 0 {
		panic("httpcache: WithTTL requires a positive duration")
	}
	return func(t *Transport) { t.ttl = d }
}

// NewTransport wraps c in a caching round tripper.
func NewTransport(c *cache.Cache[*Entry], opts ...Option) *Transport {
	t := &Transport{
		next:  http.DefaultTransport,
		cache: c,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Key derives the cache key from the request signature.
func Key(req *http.Request) string {
	return req.Method + " " + req.URL.String()
}

// RoundTrip serves cacheable requests from memory when possible. Cached
// responses carry an "X-Cache: HIT" header so callers can tell them
// apart from origin responses.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Method != http.MethodGet {
		return t.next.RoundTrip(req)
	}

	key := Key(req)
	if e, ok := t.cache.Get(key); ok {
		return e.response(req), nil
	}

	resp, err := t.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return resp, nil
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, err
	}

	e := &Entry{
		Status: resp.StatusCode,
		Header: resp.Header.Clone(),
		Body:   body,
	}
	if t.ttl > 0 {
		t.cache.Set(key, e, t.ttl)
	} else {
		t.cache.Set(key, e)
	}

	resp.Body = io.NopCloser(bytes.NewReader(body))
	return resp, nil
}

// response materializes a fresh http.Response from the cached entry.
// The body reader is independent per call, so concurrent consumers of
// the same entry do not share read state.
func (e *Entry) response(req *http.Request) *http.Response {
	header := e.Header.Clone()
	header.Set("X-Cache", "HIT")
	return &http.Response{
		StatusCode:    e.Status,
		Status:        http.StatusText(e.Status),
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(e.Body)),
		ContentLength: int64(len(e.Body)),
		Request:       req,
	}
}
