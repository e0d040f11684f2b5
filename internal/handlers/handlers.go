// Package handlers maps HTTP requests onto the stores and the media host.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/petermazzocco/go-video-project/internal/auth"
	"github.com/petermazzocco/go-video-project/internal/media"
	"github.com/petermazzocco/go-video-project/internal/metrics"
	"github.com/petermazzocco/go-video-project/internal/store"
)

type Handler struct {
	Users    *store.UserStore
	Videos   *store.VideoStore
	Media    media.Host
	Sessions *auth.SessionManager
	Metrics  *metrics.Collector
	Log      *slog.Logger
}

func New(users *store.UserStore, videos *store.VideoStore, host media.Host,
	sessions *auth.SessionManager, collector *metrics.Collector, log *slog.Logger) *Handler {
	return &Handler{
		Users:    users,
		Videos:   videos,
		Media:    host,
		Sessions: sessions,
		Metrics:  collector,
		Log:      log,
	}
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
