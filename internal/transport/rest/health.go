package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/heartmarshall/insight-calendar/internal/domain"
)

const pingTimeout = 3 * time.Second

type healthStore interface {
	Ping(ctx context.Context) error
	GetByDate(ctx context.Context, date string) (*domain.Insight, error)
}

// HealthInfo describes the running configuration echoed by /health.
type HealthInfo struct {
	Store   string // "mock", "postgres" or "sqlite"
	Model   string // text model in use
	Version string
}

// HealthHandler serves the probe endpoints.
type HealthHandler struct {
	store healthStore
	info  HealthInfo
	now   func() time.Time
}

func NewHealthHandler(store healthStore, info HealthInfo, now func() time.Time) *HealthHandler {
	if now == nil {
		now = time.Now
	}
	return &HealthHandler{store: store, info: info, now: now}
}

// HealthResponse is the body of /live, /ready and /health.
type HealthResponse struct {
	Status     string                `json:"status"`
	Store      string                `json:"store,omitempty"`
	Model      string                `json:"model,omitempty"`
	Version    string                `json:"version,omitempty"`
	Today      string                `json:"today,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Live always answers 200.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.now()})
}

// Ready answers 503 while the store does not respond to a ping.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	resp := HealthResponse{Status: "ok", Store: h.info.Store, Timestamp: h.now()}
	code := http.StatusOK
	if err := h.store.Ping(ctx); err != nil {
		resp.Status, code = "down", http.StatusServiceUnavailable
	}
	writeJSON(w, code, resp)
}

// Health reports the store ping and whether today's (KST) insight has been
// generated yet. A missing insight is reported but does not fail the check;
// the store being down does.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	now := h.now()
	today := domain.Today(now)
	resp := HealthResponse{
		Status:     "ok",
		Store:      h.info.Store,
		Model:      h.info.Model,
		Version:    h.info.Version,
		Today:      today,
		Components: make(map[string]CompStatus, 2),
		Timestamp:  now,
	}

	start := time.Now()
	if err := h.store.Ping(ctx); err != nil {
		resp.Status = "down"
		resp.Components["store"] = CompStatus{Status: "down", Error: err.Error()}
		writeJSON(w, http.StatusServiceUnavailable, resp)
		return
	}
	resp.Components["store"] = CompStatus{Status: "ok", Latency: time.Since(start).String()}

	_, err := h.store.GetByDate(ctx, today)
	switch {
	case err == nil:
		resp.Components["today_insight"] = CompStatus{Status: "ok"}
	case errors.Is(err, domain.ErrNotFound):
		resp.Components["today_insight"] = CompStatus{Status: "missing"}
	default:
		resp.Components["today_insight"] = CompStatus{Status: "unknown", Error: err.Error()}
	}
	writeJSON(w, http.StatusOK, resp)
}
