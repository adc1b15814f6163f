package admin

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/socialpanel/cachekit/pkg/cache"
	"github.com/socialpanel/cachekit/pkg/logger"
)

// Store is the slice of the cache surface the admin API consumes:
// read-only telemetry plus the two operator actions.
type Store interface {
	Stats() cache.Stats
	Health() cache.Health
	Delete(key string) bool
	Clear()
}

// NewRouter builds the operator API over the given store:
//
//	GET    /stats   – statistics snapshot
//	GET    /health  – health verdict (503 when critical)
//	DELETE /keys/*  – drop a single key
//	POST   /clear   – empty the store and reset counters
func NewRouter(store Store, log *slog.Logger) *chi.Mux {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(requestLogger(log))

	r.Get("/stats", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, store.Stats())
	})

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		h := store.Health()
		status := http.StatusOK
		if h.Status == cache.StatusCritical {
			status = http.StatusServiceUnavailable
		}
		writeJSON(w, status, h)
	})

	r.Delete("/keys/*", func(w http.ResponseWriter, req *http.Request) {
		key := chi.URLParam(req, "*")
		if key == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing key"})
			return
		}
		deleted := store.Delete(key)
		status := http.StatusOK
		if !deleted {
			status = http.StatusNotFound
		}
		writeJSON(w, status, map[string]any{"key": key, "deleted": deleted})
	})

	r.Post("/clear", func(w http.ResponseWriter, req *http.Request) {
		store.Clear()
		log.InfoContext(req.Context(), "cache cleared by operator", logger.Component("admin"))
		w.WriteHeader(http.StatusNoContent)
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
