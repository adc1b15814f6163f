package admin_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/socialpanel/cachekit/pkg/admin"
	"github.com/socialpanel/cachekit/pkg/cache"
)

// stubStore fakes the cache surface so verdicts can be forced directly.
type stubStore struct {
	stats   cache.Stats
	health  cache.Health
	deleted []string
	cleared bool
}

func (s *stubStore) Stats() cache.Stats   { return s.stats }
func (s *stubStore) Health() cache.Health { return s.health }
func (s *stubStore) Delete(key string) bool {
	s.deleted = append(s.deleted, key)
	return true
}
func (s *stubStore) Clear() { s.cleared = true }

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestRouter_Stats(t *testing.T) {
	c := cache.New[string]()
	c.Set("a", "v")
	c.Get("a")
	c.Get("missing")

	r := admin.NewRouter(c, discardLogger())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stats", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	var s cache.Stats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &s))
	assert.Equal(t, 1, s.Size)
	assert.Equal(t, uint64(1), s.TotalHits)
	assert.Equal(t, uint64(1), s.TotalMisses)
}

func TestRouter_Health(t *testing.T) {
	t.Run("healthy cache returns 200", func(t *testing.T) {
		r := admin.NewRouter(cache.New[string](), discardLogger())

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var h cache.Health
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &h))
		assert.Equal(t, cache.StatusHealthy, h.Status)
		assert.NotNil(t, h.Issues, "issues must encode as [] not null")
	})

	t.Run("critical verdict returns 503", func(t *testing.T) {
		store := &stubStore{health: cache.Health{
			Status:          cache.StatusCritical,
			Issues:          []string{"Low cache hit rate", "High memory usage", "High eviction rate"},
			Recommendations: []string{"Increase cache size or extend TTL"},
		}}
		r := admin.NewRouter(store, discardLogger())

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestRouter_Delete(t *testing.T) {
	t.Run("removes an existing key", func(t *testing.T) {
		c := cache.New[string]()
		c.Set("user:42", "v")

		r := admin.NewRouter(c, discardLogger())

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/keys/user:42", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, c.Has("user:42"))
	})

	t.Run("missing key returns 404", func(t *testing.T) {
		r := admin.NewRouter(cache.New[string](), discardLogger())

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/keys/nope", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestRouter_Clear(t *testing.T) {
	c := cache.New[string]()
	c.Set("a", "v")
	c.Get("a")

	r := admin.NewRouter(c, discardLogger())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/clear", nil))

	require.Equal(t, http.StatusNoContent, rec.Code)

	s := c.Stats()
	assert.Zero(t, s.Size)
	assert.Zero(t, s.TotalHits)
}

func TestRouter_RequestID(t *testing.T) {
	r := admin.NewRouter(cache.New[string](), discardLogger())

	t.Run("generates an id when absent", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stats", nil))

		assert.NotEmpty(t, rec.Header().Get(admin.Header))
	})

	t.Run("echoes a valid client id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/stats", nil)
		req.Header.Set(admin.Header, "client-supplied-123")

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, "client-supplied-123", rec.Header().Get(admin.Header))
	})

	t.Run("replaces an invalid client id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/stats", nil)
		req.Header.Set(admin.Header, "bad id with spaces!")

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		got := rec.Header().Get(admin.Header)
		assert.NotEmpty(t, got)
		assert.NotEqual(t, "bad id with spaces!", got)
	})
}
