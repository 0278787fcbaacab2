package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"runtime"
	"time"
)

// DashboardStatus is a short summary of the running service.
type DashboardStatus struct {
	Uptime      string `json:"uptime"`
	Goroutines  int    `json:"goroutines"`
	Status      string `json:"status"`
	Sessions    int    `json:"sessions"`
	CatalogSize int    `json:"catalog_size"`
}

// SessionCounter reports how many sessions are stored.
type SessionCounter interface {
	Count(ctx context.Context) (int, error)
}

// Handler serves DashboardStatus as JSON.
type Handler struct {
	sessions    SessionCounter
	catalogSize int
	startedAt   time.Time
}

func NewHandler(sessions SessionCounter, catalogSize int) *Handler {
	return &Handler{sessions: sessions, catalogSize: catalogSize, startedAt: time.Now()}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	status := DashboardStatus{
		Uptime:      time.Since(h.startedAt).Round(time.Second).String(),
		Goroutines:  runtime.NumGoroutine(),
		Status:      "ok",
		CatalogSize: h.catalogSize,
	}

	n, err := h.sessions.Count(r.Context())
	if err != nil {
		status.Status = "degraded"
		n = -1
	}
	status.Sessions = n

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(status)
}
